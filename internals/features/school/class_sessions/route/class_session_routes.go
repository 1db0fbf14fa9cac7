// file: internals/features/school/class_sessions/route/class_session_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	sessionController "presensiku_backend/internals/features/school/class_sessions/controller"
)

// ClassSessionUserRoutes dipasang di bawah group /api/u (guru & admin).
// Guru sendiri yang membuka sesi pertemuan, jadi create ada di sini.
func ClassSessionUserRoutes(user fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := sessionController.NewClassSessionController(db, v)

	g := user.Group("/class-sessions")
	g.Post("/", ctrl.Create)
	g.Get("/today", ctrl.ListToday)
}
