// file: internals/features/attendance/live/route/live_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	liveController "presensiku_backend/internals/features/attendance/live/controller"
	liveService "presensiku_backend/internals/features/attendance/live/service"
	authMw "presensiku_backend/internals/middlewares/auth"
)

// LiveRoutes: stream SSE presensi realtime untuk dashboard guru.
func LiveRoutes(app *fiber.App, db *gorm.DB, hub *liveService.Hub) {
	ctrl := &liveController.StreamController{Hub: hub}

	g := app.Group("/api/u/attendance",
		authMw.AuthMiddleware(db),
		authMw.OnlyTeacherOrAdmin("attendance-stream"),
	)
	g.Get("/stream", ctrl.StreamAttendance)
}
