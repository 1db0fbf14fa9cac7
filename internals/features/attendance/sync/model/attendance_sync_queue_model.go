package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================
   Enums (selaras dgn DB)
========================= */

// Status item antrian: PENDING → SENT, atau PENDING/ERROR → ERROR (retry
// dengan backoff). Item ERROR yang event induknya sudah FAILED tidak
// dipilih lagi oleh batch.
type SyncQueueStatus string

const (
	SyncQueueStatusPending SyncQueueStatus = "PENDING"
	SyncQueueStatusSent    SyncQueueStatus = "SENT"
	SyncQueueStatusError   SyncQueueStatus = "ERROR"
)

/* =========================================
   Model: attendance_sync_queue
   Outbox pengiriman ke diary — dibuat satu
   transaksi dengan event induknya (1:1).
========================================= */

type AttendanceSyncQueueModel struct {
	// PK
	SyncQueueID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:sync_queue_id" json:"sync_queue_id"`

	// Tenant & relasi utama
	SyncQueueSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:sync_queue_school_id" json:"sync_queue_school_id"`
	// 1:1 dengan attendance_events — unik supaya tidak ada double outbox
	SyncQueueAttendanceEventID uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_sync_queue_event;column:sync_queue_attendance_event_id" json:"sync_queue_attendance_event_id"`
	SyncQueueClassSessionID    *uuid.UUID `gorm:"type:uuid;column:sync_queue_class_session_id" json:"sync_queue_class_session_id,omitempty"`

	// Payload final yang dikirim ke diary (sudah diserialisasi saat enqueue)
	SyncQueuePayload datatypes.JSON `gorm:"type:jsonb;not null;column:sync_queue_payload" json:"sync_queue_payload"`

	SyncQueueAttempts  int             `gorm:"not null;default:0;column:sync_queue_attempts" json:"sync_queue_attempts"`
	SyncQueueLastError *string         `gorm:"type:text;column:sync_queue_last_error" json:"sync_queue_last_error,omitempty"`
	SyncQueueStatus    SyncQueueStatus `gorm:"type:varchar(16);not null;default:'PENDING';index:idx_sync_queue_status_retry;column:sync_queue_status" json:"sync_queue_status"`

	// Kapan item boleh dicoba lagi (NULL kalau sudah SENT)
	SyncQueueNextRetryAt *time.Time `gorm:"type:timestamptz;index:idx_sync_queue_status_retry;column:sync_queue_next_retry_at" json:"sync_queue_next_retry_at,omitempty"`

	SyncQueueCreatedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:sync_queue_created_at" json:"sync_queue_created_at"`
}

func (AttendanceSyncQueueModel) TableName() string { return "attendance_sync_queue" }
