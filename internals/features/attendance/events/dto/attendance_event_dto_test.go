// file: internals/features/attendance/events/dto/attendance_event_dto_test.go
package dto

import (
	"testing"
	"time"
)

func TestParseEventTime(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		wantErr bool
	}{
		{"RFC3339 dengan zona", "2026-03-02T07:55:00+07:00", false},
		{"RFC3339 UTC", "2026-03-02T00:55:00Z", false},
		{"tanpa zona pakai T", "2026-03-02T07:55:00", false},
		{"tanpa zona pakai spasi", "2026-03-02 07:55:00", false},
		{"kosong", "", true},
		{"spasi doang", "   ", true},
		{"format ngawur", "kemarin sore", true},
		{"tanggal doang", "2026-03-02", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseEventTime(tt.raw)
			if tt.wantErr {
				if err == nil {
					t.Errorf("ParseEventTime(%q) harus error, got %v", tt.raw, got)
				}
				return
			}
			if err != nil {
				t.Errorf("ParseEventTime(%q): %v", tt.raw, err)
			}
		})
	}
}

func TestParseEventTimeLocalAssumption(t *testing.T) {
	got, err := ParseEventTime("2026-03-02 07:55:00")
	if err != nil {
		t.Fatal(err)
	}
	want := time.Date(2026, 3, 2, 7, 55, 0, 0, time.Local)
	if !got.Equal(want) {
		t.Errorf("timestamp tanpa zona harus diasumsikan waktu lokal: got %v, want %v", got, want)
	}
}
