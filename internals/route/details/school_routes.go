// file: internals/route/details/school_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sectionRoute "presensiku_backend/internals/features/school/class_sections/route"
	sessionRoute "presensiku_backend/internals/features/school/class_sessions/route"
	deviceRoute "presensiku_backend/internals/features/school/devices/route"
	studentRoute "presensiku_backend/internals/features/school/students/route"
	authRoute "presensiku_backend/internals/features/users/auth/route"
)

// SchoolAdminRoutes: master data sekolah, semua di bawah group admin.
func SchoolAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	studentRoute.StudentAdminRoutes(admin, db, v)
	deviceRoute.DeviceAdminRoutes(admin, db, v)
	sectionRoute.ClassSectionAdminRoutes(admin, db, v)
	authRoute.UserAdminRoutes(admin, db, v)
}

// SchoolUserRoutes: data sekolah yang boleh dibaca guru.
func SchoolUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	sessionRoute.ClassSessionUserRoutes(user, db, v)
}
