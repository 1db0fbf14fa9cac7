// file: internals/features/attendance/sync/controller/internal_sync_controller.go
package controller

import (
	"context"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	queueModel "presensiku_backend/internals/features/attendance/sync/model"
	syncService "presensiku_backend/internals/features/attendance/sync/service"
	helper "presensiku_backend/internals/helpers"
	"gorm.io/gorm"
)

type InternalSyncController struct {
	DB    *gorm.DB
	Queue *syncService.QueueService
}

// TRIGGER SYNC MANUAL (recovery operasional)
// POST /api/internal/diary-sync/run-once
// Menjalankan satu batch yang sama dengan worker background, sinkron.
func (h *InternalSyncController) RunSyncNow(c *fiber.Ctx) error {
	// pakai deadline sendiri — batch bisa lebih lama dari timeout request biasa
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	summary, err := h.Queue.RunOnce(ctx, 0)
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menjalankan batch sync")
	}
	return helper.JsonOK(c, "Batch sync selesai", summary)
}

/* =========================================================
   OPS VIEW — read-only
   GET /api/internal/diary-sync/queue?status=&page=&per_page=
========================================================= */
func (h *InternalSyncController) ListQueueItems(c *fiber.Ctx) error {
	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	perPage := c.QueryInt("per_page", 20)
	if perPage <= 0 || perPage > 200 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	q := h.DB.Model(&queueModel.AttendanceSyncQueueModel{})
	if raw := strings.ToUpper(strings.TrimSpace(c.Query("status"))); raw != "" {
		switch queueModel.SyncQueueStatus(raw) {
		case queueModel.SyncQueueStatusPending, queueModel.SyncQueueStatusSent, queueModel.SyncQueueStatusError:
			q = q.Where("sync_queue_status = ?", raw)
		default:
			return fiber.NewError(fiber.StatusBadRequest, "status tidak dikenal (PENDING/SENT/ERROR)")
		}
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal hitung antrian")
	}

	var items []queueModel.AttendanceSyncQueueModel
	if err := q.
		Order("sync_queue_created_at DESC").
		Limit(perPage).Offset(offset).
		Find(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil antrian")
	}

	return helper.JsonList(c, "Antrian sync diary", items,
		helper.BuildPaginationFromOffset(total, offset, perPage))
}
