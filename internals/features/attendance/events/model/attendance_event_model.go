package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

/* =========================
   Enums (selaras dgn DB)
========================= */

type AttendanceEventType string

const (
	AttendanceEventTypeIn  AttendanceEventType = "IN"
	AttendanceEventTypeOut AttendanceEventType = "OUT"
)

type AttendanceEventMethod string

const (
	AttendanceEventMethodFingerprint AttendanceEventMethod = "FINGERPRINT"
	AttendanceEventMethodRFID        AttendanceEventMethod = "RFID"
	AttendanceEventMethodQR          AttendanceEventMethod = "QR"
	AttendanceEventMethodManual      AttendanceEventMethod = "MANUAL"
)

// Status lifecycle satu event:
// RECEIVED → PROCESSED (sync sukses) atau RECEIVED → FAILED (sync habis retry).
// IGNORED_DUPLICATE / FAILED (flow) terpasang sejak insert dan final.
type AttendanceEventStatus string

const (
	AttendanceEventStatusReceived         AttendanceEventStatus = "RECEIVED"
	AttendanceEventStatusIgnoredDuplicate AttendanceEventStatus = "IGNORED_DUPLICATE"
	AttendanceEventStatusFailed           AttendanceEventStatus = "FAILED"
	AttendanceEventStatusProcessed        AttendanceEventStatus = "PROCESSED"
)

/* =========================================
   Model: attendance_events
   Satu baris = satu kejadian fisik masuk/keluar.
   Tidak pernah dihapus (audit trail).
========================================= */

type AttendanceEventModel struct {
	// PK
	AttendanceEventID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_event_id" json:"attendance_event_id"`

	// Tenant & relasi utama
	AttendanceEventSchoolID  uuid.UUID  `gorm:"type:uuid;not null;index;column:attendance_event_school_id" json:"attendance_event_school_id"`
	AttendanceEventStudentID uuid.UUID  `gorm:"type:uuid;not null;index:idx_attendance_events_student_time;column:attendance_event_student_id" json:"attendance_event_student_id"`
	AttendanceEventDeviceID  *uuid.UUID `gorm:"type:uuid;column:attendance_event_device_id" json:"attendance_event_device_id,omitempty"` // NULL = entri manual

	// Kejadian
	AttendanceEventType   AttendanceEventType   `gorm:"type:varchar(8);not null;column:attendance_event_type" json:"attendance_event_type"`
	AttendanceEventTime   time.Time             `gorm:"type:timestamptz;not null;index:idx_attendance_events_student_time;column:attendance_event_time" json:"attendance_event_time"`
	AttendanceEventMethod AttendanceEventMethod `gorm:"type:varchar(16);not null;column:attendance_event_method" json:"attendance_event_method"`

	// Payload mentah untuk audit (body asli dari mesin / operator)
	AttendanceEventRawPayload datatypes.JSON `gorm:"type:jsonb;column:attendance_event_raw_payload" json:"attendance_event_raw_payload,omitempty"`

	// Idempotency — hash deterministik, unik global.
	// Baris kedua dengan key sama tidak akan pernah tercipta.
	AttendanceEventUniqueKey string `gorm:"type:varchar(64);not null;uniqueIndex:uq_attendance_events_unique_key;column:attendance_event_unique_key" json:"attendance_event_unique_key"`

	AttendanceEventStatus   AttendanceEventStatus `gorm:"type:varchar(24);not null;default:'RECEIVED';column:attendance_event_status" json:"attendance_event_status"`
	AttendanceEventFlowNote *string               `gorm:"type:text;column:attendance_event_flow_note" json:"attendance_event_flow_note,omitempty"`

	// Jam server saat event diterima (bukan jam device)
	AttendanceEventReceivedAt time.Time `gorm:"type:timestamptz;not null;default:now();column:attendance_event_received_at" json:"attendance_event_received_at"`
}

func (AttendanceEventModel) TableName() string { return "attendance_events" }
