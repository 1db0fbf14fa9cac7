// file: internals/features/attendance/events/dto/attendance_event_dto.go
package dto

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

/* =========================================================
   1) REQUEST DTO
========================================================= */

// Event dari mesin presensi (device sudah terautentikasi HMAC)
type DeviceEventRequest struct {
	StudentCode string `json:"student_code" validate:"required,max=64"`
	EventType   string `json:"event_type" validate:"required"`
	EventTime   string `json:"event_time" validate:"required"`
	Method      string `json:"method" validate:"required"`
}

// Entri manual oleh guru — selalu lewat jalur skip-flow + override status
type ManualAttendanceRequest struct {
	ClassSessionID uuid.UUID  `json:"class_session_id" validate:"required"`
	StudentID      *uuid.UUID `json:"student_id" validate:"omitempty"`
	StudentCode    string     `json:"student_code" validate:"omitempty,max=64"`
	Status         string     `json:"status" validate:"required,oneof=PRESENT LATE LEFT present late left"`
	Justification  *string    `json:"justification" validate:"omitempty,max=500"`
	Timestamp      *string    `json:"timestamp" validate:"omitempty"`
}

/* =========================================================
   2) Helpers
========================================================= */

// Format waktu yang diterima dari mesin/operator
var acceptedTimeLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
}

// ParseEventTime menerima beberapa format umum; tanpa zona → zona server.
func ParseEventTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return time.Time{}, fmt.Errorf("event_time kosong")
	}
	for _, layout := range acceptedTimeLayouts {
		if layout == time.RFC3339 {
			if t, err := time.Parse(layout, raw); err == nil {
				return t, nil
			}
			continue
		}
		if t, err := time.ParseInLocation(layout, raw, time.Local); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("event_time %q tidak dikenali", raw)
}
