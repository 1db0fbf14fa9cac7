// file: internals/features/school/class_sessions/service/session_resolver_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"

	csModel "presensiku_backend/internals/features/school/class_sessions/model"
)

func makeSession(startsAt time.Time) csModel.ClassSessionModel {
	return csModel.ClassSessionModel{
		ClassSessionID:       uuid.New(),
		ClassSessionStartsAt: startsAt,
		ClassSessionEndsAt:   startsAt.Add(90 * time.Minute),
	}
}

func TestPickNearestSession(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	s0800 := makeSession(day.Add(8 * time.Hour))
	s1000 := makeSession(day.Add(10 * time.Hour))
	s1300 := makeSession(day.Add(13 * time.Hour))
	sessions := []csModel.ClassSessionModel{s0800, s1000, s1300}

	tests := []struct {
		name string
		at   time.Time
		want uuid.UUID
	}{
		{"jam 07:45 → sesi 08:00", day.Add(7*time.Hour + 45*time.Minute), s0800.ClassSessionID},
		{"jam 09:30 → sesi 10:00 (lebih dekat)", day.Add(9*time.Hour + 30*time.Minute), s1000.ClassSessionID},
		{"jam 08:50 → sesi 08:00 (lebih dekat)", day.Add(8*time.Hour + 50*time.Minute), s0800.ClassSessionID},
		{"jam 16:00 → sesi 13:00 (paling akhir)", day.Add(16 * time.Hour), s1300.ClassSessionID},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PickNearestSession(sessions, tt.at)
			if got == nil {
				t.Fatalf("got nil, want session")
			}
			if got.ClassSessionID != tt.want {
				t.Errorf("session = %s (mulai %s), want %s", got.ClassSessionID, got.ClassSessionStartsAt, tt.want)
			}
		})
	}
}

func TestPickNearestSessionEmpty(t *testing.T) {
	if got := PickNearestSession(nil, time.Now()); got != nil {
		t.Fatalf("tanpa sesi harus nil, got %+v", got)
	}
}

func TestPickNearestSessionTieFirstWins(t *testing.T) {
	day := time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)
	// 09:00 berjarak sama ke 08:00 dan 10:00 — yang pertama di slice menang
	first := makeSession(day.Add(8 * time.Hour))
	second := makeSession(day.Add(10 * time.Hour))

	got := PickNearestSession([]csModel.ClassSessionModel{first, second}, day.Add(9*time.Hour))
	if got == nil || got.ClassSessionID != first.ClassSessionID {
		t.Fatalf("seri jarak harus pilih sesi pertama")
	}
}
