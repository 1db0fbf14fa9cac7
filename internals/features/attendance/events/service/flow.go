// file: internals/features/attendance/events/service/flow.go
package service

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"

	eventModel "presensiku_backend/internals/features/attendance/events/model"
)

// Sentinel device untuk entri manual di unique key
const deviceKeySentinel = "NONE"

// BuildUniqueKey menghasilkan idempotency key deterministik untuk satu
// kejadian fisik: tenant, siswa, device (atau sentinel), jenis, waktu
// kanonik (UTC), dan metode. Submit ulang tuple sama → key sama → baris sama.
func BuildUniqueKey(
	schoolID, studentID uuid.UUID,
	deviceID *uuid.UUID,
	eventType eventModel.AttendanceEventType,
	eventTime time.Time,
	method eventModel.AttendanceEventMethod,
) string {
	devicePart := deviceKeySentinel
	if deviceID != nil {
		devicePart = deviceID.String()
	}

	base := fmt.Sprintf("%s|%s|%s|%s|%s|%s",
		schoolID, studentID, devicePart,
		eventType, eventTime.UTC().Format(time.RFC3339Nano), method)

	sum := sha256.Sum256([]byte(base))
	return hex.EncodeToString(sum[:])
}

// DecideFlow menerapkan kebijakan urutan IN/OUT harian terhadap event
// valid terakhir hari itu (nil kalau belum ada):
//   - belum ada event + OUT      → FAILED (OUT tanpa IN)
//   - jenis sama dengan terakhir → IGNORED_DUPLICATE
//   - selain itu                 → RECEIVED
//
// Catatan: event fisik tetap dicatat apa pun keputusannya — FAILED di sini
// adalah outcome bisnis, bukan error sistem.
func DecideFlow(lastType *eventModel.AttendanceEventType, newType eventModel.AttendanceEventType) (eventModel.AttendanceEventStatus, *string) {
	if lastType == nil {
		if newType == eventModel.AttendanceEventTypeOut {
			note := "OUT tanpa IN sebelumnya di hari yang sama"
			return eventModel.AttendanceEventStatusFailed, &note
		}
		return eventModel.AttendanceEventStatusReceived, nil
	}

	if *lastType == newType {
		note := fmt.Sprintf("Event %s beruntun", newType)
		return eventModel.AttendanceEventStatusIgnoredDuplicate, &note
	}

	return eventModel.AttendanceEventStatusReceived, nil
}
