// file: internals/features/users/auth/route/auth_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "presensiku_backend/internals/features/users/auth/controller"
	"presensiku_backend/internals/middlewares"
)

// AuthRoutes: login publik, dibatasi rate limiter khusus.
func AuthRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	ctrl := authController.NewAuthController(db, v)

	g := app.Group("/api/auth", middlewares.LoginRateLimiter())
	g.Post("/login", ctrl.Login)
}

// UserAdminRoutes: admin menambah user di tenant-nya (dipasang di /api/a).
func UserAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := authController.NewAuthController(db, v)

	admin.Post("/users", ctrl.RegisterUser)
}
