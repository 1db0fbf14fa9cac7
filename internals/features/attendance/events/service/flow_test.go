// file: internals/features/attendance/events/service/flow_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	eventModel "presensiku_backend/internals/features/attendance/events/model"
)

func typePtr(t eventModel.AttendanceEventType) *eventModel.AttendanceEventType {
	return &t
}

func TestDecideFlow(t *testing.T) {
	tests := []struct {
		name       string
		lastType   *eventModel.AttendanceEventType
		newType    eventModel.AttendanceEventType
		wantStatus eventModel.AttendanceEventStatus
		wantNote   bool
	}{
		{
			name:       "IN pertama hari itu diterima",
			lastType:   nil,
			newType:    eventModel.AttendanceEventTypeIn,
			wantStatus: eventModel.AttendanceEventStatusReceived,
		},
		{
			name:       "OUT tanpa IN ditolak",
			lastType:   nil,
			newType:    eventModel.AttendanceEventTypeOut,
			wantStatus: eventModel.AttendanceEventStatusFailed,
			wantNote:   true,
		},
		{
			name:       "IN beruntun diabaikan",
			lastType:   typePtr(eventModel.AttendanceEventTypeIn),
			newType:    eventModel.AttendanceEventTypeIn,
			wantStatus: eventModel.AttendanceEventStatusIgnoredDuplicate,
			wantNote:   true,
		},
		{
			name:       "OUT beruntun diabaikan",
			lastType:   typePtr(eventModel.AttendanceEventTypeOut),
			newType:    eventModel.AttendanceEventTypeOut,
			wantStatus: eventModel.AttendanceEventStatusIgnoredDuplicate,
			wantNote:   true,
		},
		{
			name:       "OUT setelah IN diterima",
			lastType:   typePtr(eventModel.AttendanceEventTypeIn),
			newType:    eventModel.AttendanceEventTypeOut,
			wantStatus: eventModel.AttendanceEventStatusReceived,
		},
		{
			name:       "IN setelah OUT diterima (masuk lagi)",
			lastType:   typePtr(eventModel.AttendanceEventTypeOut),
			newType:    eventModel.AttendanceEventTypeIn,
			wantStatus: eventModel.AttendanceEventStatusReceived,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, note := DecideFlow(tt.lastType, tt.newType)
			if status != tt.wantStatus {
				t.Errorf("status = %s, want %s", status, tt.wantStatus)
			}
			if tt.wantNote && note == nil {
				t.Errorf("note = nil, want non-nil")
			}
			if !tt.wantNote && note != nil {
				t.Errorf("note = %q, want nil", *note)
			}
		})
	}
}

func TestBuildUniqueKeyDeterministic(t *testing.T) {
	schoolID := uuid.MustParse("8f14e45f-ceea-467f-a0f6-7c3b7f9a0001")
	studentID := uuid.MustParse("8f14e45f-ceea-467f-a0f6-7c3b7f9a0002")
	deviceID := uuid.MustParse("8f14e45f-ceea-467f-a0f6-7c3b7f9a0003")
	at := time.Date(2026, 3, 2, 7, 55, 0, 0, time.UTC)

	k1 := BuildUniqueKey(schoolID, studentID, &deviceID, eventModel.AttendanceEventTypeIn, at, eventModel.AttendanceEventMethodFingerprint)
	k2 := BuildUniqueKey(schoolID, studentID, &deviceID, eventModel.AttendanceEventTypeIn, at, eventModel.AttendanceEventMethodFingerprint)
	if k1 != k2 {
		t.Fatalf("key tidak deterministik: %s vs %s", k1, k2)
	}
	if len(k1) != 64 {
		t.Fatalf("panjang key = %d, want 64 hex char", len(k1))
	}
}

func TestBuildUniqueKeyFieldSensitivity(t *testing.T) {
	schoolID := uuid.New()
	studentID := uuid.New()
	deviceID := uuid.New()
	at := time.Date(2026, 3, 2, 7, 55, 0, 0, time.UTC)

	base := BuildUniqueKey(schoolID, studentID, &deviceID, eventModel.AttendanceEventTypeIn, at, eventModel.AttendanceEventMethodRFID)

	variants := map[string]string{
		"jenis beda":   BuildUniqueKey(schoolID, studentID, &deviceID, eventModel.AttendanceEventTypeOut, at, eventModel.AttendanceEventMethodRFID),
		"waktu beda":   BuildUniqueKey(schoolID, studentID, &deviceID, eventModel.AttendanceEventTypeIn, at.Add(time.Second), eventModel.AttendanceEventMethodRFID),
		"metode beda":  BuildUniqueKey(schoolID, studentID, &deviceID, eventModel.AttendanceEventTypeIn, at, eventModel.AttendanceEventMethodQR),
		"tanpa device": BuildUniqueKey(schoolID, studentID, nil, eventModel.AttendanceEventTypeIn, at, eventModel.AttendanceEventMethodRFID),
	}
	for name, k := range variants {
		if k == base {
			t.Errorf("%s: key tidak berubah", name)
		}
	}
}

func TestBuildUniqueKeyTimezoneCanonical(t *testing.T) {
	schoolID := uuid.New()
	studentID := uuid.New()

	jakarta := time.FixedZone("WIB", 7*3600)
	utc := time.Date(2026, 3, 2, 0, 55, 0, 0, time.UTC)
	wib := time.Date(2026, 3, 2, 7, 55, 0, 0, jakarta) // instant yang sama

	k1 := BuildUniqueKey(schoolID, studentID, nil, eventModel.AttendanceEventTypeIn, utc, eventModel.AttendanceEventMethodManual)
	k2 := BuildUniqueKey(schoolID, studentID, nil, eventModel.AttendanceEventTypeIn, wib, eventModel.AttendanceEventMethodManual)
	if k1 != k2 {
		t.Fatalf("instant sama beda zona harus menghasilkan key sama")
	}
}
