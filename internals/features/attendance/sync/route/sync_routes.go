// file: internals/features/attendance/sync/route/sync_routes.go
package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	syncController "presensiku_backend/internals/features/attendance/sync/controller"
	syncService "presensiku_backend/internals/features/attendance/sync/service"
	"presensiku_backend/internals/middlewares"
	authMw "presensiku_backend/internals/middlewares/auth"
)

// InternalSyncRoutes: trigger batch manual + ops view antrian.
// Masuk lewat API key internal (X-Internal-Api-Key) atau JWT admin.
func InternalSyncRoutes(app *fiber.App, db *gorm.DB, queue *syncService.QueueService) {
	ctrl := &syncController.InternalSyncController{DB: db, Queue: queue}

	g := app.Group("/api/internal/diary-sync",
		middlewares.InternalRateLimiter(),
		authMw.OptionalAuthMiddleware(db),
		authMw.OnlyInternalOrAdmin("diary-sync"),
	)
	g.Post("/run-once", ctrl.RunSyncNow)
	g.Get("/queue", ctrl.ListQueueItems)
}
