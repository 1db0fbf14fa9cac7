// file: internals/route/index.go
package routes

import (
	"log"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	eventService "presensiku_backend/internals/features/attendance/events/service"
	liveService "presensiku_backend/internals/features/attendance/live/service"
	syncService "presensiku_backend/internals/features/attendance/sync/service"
	routeDetails "presensiku_backend/internals/route/details"
	authMw "presensiku_backend/internals/middlewares/auth"
)

var startTime time.Time

// AppServices dibangun sekali di main lalu dibagikan ke route —
// worker, hub, dan ingest tidak boleh punya state global sendiri.
type AppServices struct {
	Ingest *eventService.IngestService
	Queue  *syncService.QueueService
	Hub    *liveService.Hub
}

func SetupRoutes(app *fiber.App, db *gorm.DB, svc AppServices) {
	startTime = time.Now()
	v := validator.New()

	// ===================== AUTH =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, db, v)

	// ===================== ATTENDANCE PIPELINE =====================
	log.Println("[INFO] Setting up AttendanceRoutes...")
	routeDetails.AttendanceRoutes(app, db, svc.Ingest, svc.Queue, svc.Hub)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE (user) group...")
	user := app.Group("/api/u",
		authMw.AuthMiddleware(db),
		authMw.OnlyTeacherOrAdmin("user-area"),
	)
	routeDetails.SchoolUserRoutes(user, db, v)

	// ===================== ADMIN (per school) =====================
	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMw.AuthMiddleware(db),
		authMw.OnlyAdmin("admin-area"),
	)
	routeDetails.SchoolAdminRoutes(admin, db, v)
}
