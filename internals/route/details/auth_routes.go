// file: internals/route/details/auth_routes.go
package details

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authRoute "presensiku_backend/internals/features/users/auth/route"
)

func AuthRoutes(app *fiber.App, db *gorm.DB, v *validator.Validate) {
	authRoute.AuthRoutes(app, db, v)
}
