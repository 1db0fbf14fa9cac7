// file: internals/route/details/attendance_routes.go
package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventRoute "presensiku_backend/internals/features/attendance/events/route"
	liveRoute "presensiku_backend/internals/features/attendance/live/route"
	syncRoute "presensiku_backend/internals/features/attendance/sync/route"
	eventService "presensiku_backend/internals/features/attendance/events/service"
	liveService "presensiku_backend/internals/features/attendance/live/service"
	syncService "presensiku_backend/internals/features/attendance/sync/service"
)

// AttendanceRoutes: seluruh pipeline presensi — ingest mesin, entri manual
// guru, stream realtime, dan kontrol sinkronisasi diary.
func AttendanceRoutes(
	app *fiber.App,
	db *gorm.DB,
	ingest *eventService.IngestService,
	queue *syncService.QueueService,
	hub *liveService.Hub,
) {
	eventRoute.DeviceEventRoutes(app, db, ingest)
	eventRoute.TeacherAttendanceRoutes(app, db, ingest)
	liveRoute.LiveRoutes(app, db, hub)
	syncRoute.InternalSyncRoutes(app, db, queue)
}
