// file: internals/features/school/students/route/student_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentController "presensiku_backend/internals/features/school/students/controller"
)

// StudentAdminRoutes dipasang di bawah group /api/a (sudah auth + role admin).
func StudentAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := studentController.NewStudentController(db, v)

	g := admin.Group("/students")
	g.Post("/", ctrl.Create)
	g.Get("/", ctrl.List)
	g.Get("/:id", ctrl.GetByID)
	g.Patch("/:id", ctrl.Update)
}
