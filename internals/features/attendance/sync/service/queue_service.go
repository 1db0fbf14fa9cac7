// file: internals/features/attendance/sync/service/queue_service.go
package service

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/bytedance/sonic"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventModel "presensiku_backend/internals/features/attendance/events/model"
	queueModel "presensiku_backend/internals/features/attendance/sync/model"
)

const noteSyncExhausted = "Gagal sinkron ke diary setelah mencapai batas percobaan"

// QueueService memegang outbox pengiriman ke diary: enqueue satu transaksi
// dengan event induk, proses per item dengan backoff, dan batch drain.
type QueueService struct {
	DB          *gorm.DB
	Sink        DiarySink
	MaxAttempts int
	BatchSize   int
}

func NewQueueService(db *gorm.DB, sink DiarySink, maxAttempts, batchSize int) *QueueService {
	if maxAttempts <= 0 {
		maxAttempts = 10
	}
	if batchSize <= 0 {
		batchSize = 100
	}
	return &QueueService{DB: db, Sink: sink, MaxAttempts: maxAttempts, BatchSize: batchSize}
}

// CalculateBackoffMinutes: min(2^max(1, attempts), 30) menit.
func CalculateBackoffMinutes(attempts int) int {
	if attempts < 1 {
		attempts = 1
	}
	if attempts >= 5 {
		return 30 // 2^5 = 32 sudah lewat cap
	}
	return 1 << uint(attempts)
}

// Enqueue membuat item PENDING di dalam transaksi pemanggil (ingest).
// next_retry_at = sekarang supaya langsung eligible.
func (s *QueueService) Enqueue(
	tx *gorm.DB,
	schoolID, attendanceEventID uuid.UUID,
	classSessionID *uuid.UUID,
	payload DiaryPayload,
) (uuid.UUID, error) {
	raw, err := sonic.Marshal(payload)
	if err != nil {
		return uuid.Nil, err
	}

	now := time.Now()
	item := queueModel.AttendanceSyncQueueModel{
		SyncQueueSchoolID:          schoolID,
		SyncQueueAttendanceEventID: attendanceEventID,
		SyncQueueClassSessionID:    classSessionID,
		SyncQueuePayload:           raw,
		SyncQueueAttempts:          0,
		SyncQueueStatus:            queueModel.SyncQueueStatusPending,
		SyncQueueNextRetryAt:       &now,
	}
	if err := tx.Create(&item).Error; err != nil {
		return uuid.Nil, err
	}
	return item.SyncQueueID, nil
}

type ProcessResult struct {
	QueueID uuid.UUID
	Sent    bool
	Err     error
}

// ProcessItem mengirim satu item ke diary dan memutasi status item + event
// induknya. Error pengiriman tidak pernah di-propagate ke pengirim event —
// cukup tercermin di hasil.
func (s *QueueService) ProcessItem(ctx context.Context, item *queueModel.AttendanceSyncQueueModel) ProcessResult {
	var payload DiaryPayload
	if err := sonic.Unmarshal(item.SyncQueuePayload, &payload); err != nil {
		// payload korup dianggap kegagalan pengiriman biasa (masuk backoff)
		return s.markFailure(item, err)
	}

	if err := s.Sink.SendAttendance(ctx, payload); err != nil {
		return s.markFailure(item, err)
	}

	// Sukses: item SENT, error & jadwal retry dibersihkan.
	if err := s.DB.Model(&queueModel.AttendanceSyncQueueModel{}).
		Where("sync_queue_id = ?", item.SyncQueueID).
		Updates(map[string]interface{}{
			"sync_queue_status":        queueModel.SyncQueueStatusSent,
			"sync_queue_attempts":      gorm.Expr("sync_queue_attempts + 1"),
			"sync_queue_last_error":    nil,
			"sync_queue_next_retry_at": nil,
		}).Error; err != nil {
		log.Printf("[SYNC ERROR] gagal update item %s jadi SENT: %v", item.SyncQueueID, err)
		return ProcessResult{QueueID: item.SyncQueueID, Err: err}
	}

	// Event induk naik ke PROCESSED — guard idempoten: hanya dari
	// RECEIVED/FAILED, supaya replay tidak menimpa status lain.
	if err := s.DB.Model(&eventModel.AttendanceEventModel{}).
		Where("attendance_event_id = ? AND attendance_event_status IN ?",
			item.SyncQueueAttendanceEventID,
			[]eventModel.AttendanceEventStatus{
				eventModel.AttendanceEventStatusReceived,
				eventModel.AttendanceEventStatusFailed,
			}).
		Update("attendance_event_status", eventModel.AttendanceEventStatusProcessed).Error; err != nil {
		log.Printf("[SYNC ERROR] gagal update event %s jadi PROCESSED: %v", item.SyncQueueAttendanceEventID, err)
		return ProcessResult{QueueID: item.SyncQueueID, Err: err}
	}

	log.Printf("[SYNC] item terkirim queue_id=%s event_id=%s", item.SyncQueueID, item.SyncQueueAttendanceEventID)
	return ProcessResult{QueueID: item.SyncQueueID, Sent: true}
}

func (s *QueueService) markFailure(item *queueModel.AttendanceSyncQueueModel, sendErr error) ProcessResult {
	attempts := item.SyncQueueAttempts + 1
	backoff := time.Duration(CalculateBackoffMinutes(attempts)) * time.Minute
	nextRetry := time.Now().Add(backoff)
	msg := sendErr.Error()

	if err := s.DB.Model(&queueModel.AttendanceSyncQueueModel{}).
		Where("sync_queue_id = ?", item.SyncQueueID).
		Updates(map[string]interface{}{
			"sync_queue_status":        queueModel.SyncQueueStatusError,
			"sync_queue_attempts":      attempts,
			"sync_queue_last_error":    msg,
			"sync_queue_next_retry_at": nextRetry,
		}).Error; err != nil {
		log.Printf("[SYNC ERROR] gagal update item %s jadi ERROR: %v", item.SyncQueueID, err)
	}

	// Habis jatah: event induk FAILED, item tidak akan dipilih batch lagi
	// (seleksi batch join ke event yang masih RECEIVED).
	if attempts >= s.MaxAttempts {
		if err := s.DB.Model(&eventModel.AttendanceEventModel{}).
			Where("attendance_event_id = ?", item.SyncQueueAttendanceEventID).
			Updates(map[string]interface{}{
				"attendance_event_status":    eventModel.AttendanceEventStatusFailed,
				"attendance_event_flow_note": noteSyncExhausted,
			}).Error; err != nil {
			log.Printf("[SYNC ERROR] gagal tandai event %s FAILED: %v", item.SyncQueueAttendanceEventID, err)
		}
		log.Printf("[SYNC WARN] max attempts tercapai queue_id=%s attempts=%d", item.SyncQueueID, attempts)
	}

	log.Printf("[SYNC ERROR] item gagal queue_id=%s attempts=%d err=%v", item.SyncQueueID, attempts, sendErr)
	return ProcessResult{QueueID: item.SyncQueueID, Err: sendErr}
}

// ProcessByID dipakai ingest untuk pengiriman segera best-effort setelah
// commit. Kegagalan di sini aman — worker background yang jadi jaminannya.
func (s *QueueService) ProcessByID(ctx context.Context, queueID uuid.UUID) error {
	var item queueModel.AttendanceSyncQueueModel
	if err := s.DB.Where("sync_queue_id = ?", queueID).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("queue item tidak ditemukan")
		}
		return err
	}

	res := s.ProcessItem(ctx, &item)
	return res.Err
}

type BatchSummary struct {
	Processed int `json:"processed"`
	Sent      int `json:"sent"`
	Errors    int `json:"errors"`
}

// RunOnce menguras satu batch: item PENDING/ERROR yang sudah eligible
// (next_retry_at <= now) dan event induknya masih RECEIVED, urut dari yang
// paling tua (fairness). Diproses sekuensial.
func (s *QueueService) RunOnce(ctx context.Context, limit int) (BatchSummary, error) {
	if limit <= 0 {
		limit = s.BatchSize
	}

	var items []queueModel.AttendanceSyncQueueModel
	if err := s.DB.
		Select("attendance_sync_queue.*").
		Joins("JOIN attendance_events ON attendance_event_id = sync_queue_attendance_event_id").
		Where(`
			sync_queue_status IN ?
			AND sync_queue_next_retry_at <= NOW()
			AND attendance_event_status = ?
		`,
			[]queueModel.SyncQueueStatus{queueModel.SyncQueueStatusPending, queueModel.SyncQueueStatusError},
			eventModel.AttendanceEventStatusReceived,
		).
		Order("sync_queue_created_at ASC").
		Limit(limit).
		Find(&items).Error; err != nil {
		return BatchSummary{}, err
	}

	var summary BatchSummary
	for i := range items {
		res := s.ProcessItem(ctx, &items[i])
		summary.Processed++
		if res.Sent {
			summary.Sent++
		} else {
			summary.Errors++
		}
	}

	if summary.Processed > 0 {
		log.Printf("[SYNC] batch selesai processed=%d sent=%d errors=%d",
			summary.Processed, summary.Sent, summary.Errors)
	}
	return summary, nil
}

// StartWorker menjalankan siklus background: satu goroutine, sleep-loop,
// jadi tidak mungkin dua batch periodik jalan bersamaan.
func (s *QueueService) StartWorker(interval time.Duration) {
	if interval <= 0 {
		interval = time.Minute
	}

	go func() {
		log.Printf("[SYNC WORKER] start, interval=%s", interval)
		for {
			if _, err := s.RunOnce(context.Background(), s.BatchSize); err != nil {
				log.Printf("[SYNC WORKER ERROR] %v", err)
			}
			time.Sleep(interval)
		}
	}()
}
