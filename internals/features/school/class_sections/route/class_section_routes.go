// file: internals/features/school/class_sections/route/class_section_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sectionController "presensiku_backend/internals/features/school/class_sections/controller"
)

// ClassSectionAdminRoutes dipasang di bawah group /api/a.
func ClassSectionAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := sectionController.NewClassSectionController(db, v)

	g := admin.Group("/class-sections")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
}
