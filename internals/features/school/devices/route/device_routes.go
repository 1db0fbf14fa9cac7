// file: internals/features/school/devices/route/device_routes.go
package route

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	deviceController "presensiku_backend/internals/features/school/devices/controller"
)

// DeviceAdminRoutes dipasang di bawah group /api/a (sudah auth + role admin).
func DeviceAdminRoutes(admin fiber.Router, db *gorm.DB, v *validator.Validate) {
	ctrl := deviceController.NewDeviceController(db, v)

	g := admin.Group("/devices")
	g.Post("/", ctrl.Register)
	g.Get("/", ctrl.List)
	g.Patch("/:id", ctrl.Update)
}
