// file: internals/features/attendance/events/route/attendance_event_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventController "presensiku_backend/internals/features/attendance/events/controller"
	eventService "presensiku_backend/internals/features/attendance/events/service"
	"presensiku_backend/internals/middlewares"
	authMw "presensiku_backend/internals/middlewares/auth"
	deviceMw "presensiku_backend/internals/middlewares/device"
)

// DeviceEventRoutes: endpoint mesin presensi.
// Auth pakai HMAC device (bukan JWT) + rate limit per device code.
func DeviceEventRoutes(app *fiber.App, db *gorm.DB, ingest *eventService.IngestService) {
	ctrl := &eventController.DeviceEventController{Ingest: ingest}

	g := app.Group("/api/device",
		middlewares.DeviceEventRateLimiter(),
		deviceMw.DeviceAuthMiddleware(db),
	)
	g.Post("/events", ctrl.CreateDeviceEvent)
}

// TeacherAttendanceRoutes: entri manual & feed untuk guru/admin.
func TeacherAttendanceRoutes(app *fiber.App, db *gorm.DB, ingest *eventService.IngestService) {
	ctrl := &eventController.TeacherAttendanceController{DB: db, Ingest: ingest}

	g := app.Group("/api/u/attendance",
		authMw.AuthMiddleware(db),
		authMw.OnlyTeacherOrAdmin("attendance"),
	)
	g.Post("/manual", ctrl.CreateManualAttendance)
	g.Get("/feed", ctrl.GetLiveFeed)
}
