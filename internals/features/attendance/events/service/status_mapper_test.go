// file: internals/features/attendance/events/service/status_mapper_test.go
package service

import (
	"testing"
	"time"

	eventModel "presensiku_backend/internals/features/attendance/events/model"
	sessionModel "presensiku_backend/internals/features/school/class_sessions/model"
)

func sessionStartingAt(t time.Time) *sessionModel.ClassSessionModel {
	return &sessionModel.ClassSessionModel{ClassSessionStartsAt: t}
}

func strPtr(s string) *string { return &s }

func TestMapDiaryStatus(t *testing.T) {
	startsAt := time.Date(2026, 3, 2, 8, 0, 0, 0, time.UTC)
	session := sessionStartingAt(startsAt)

	tests := []struct {
		name      string
		eventType eventModel.AttendanceEventType
		eventTime time.Time
		session   *sessionModel.ClassSessionModel
		override  *string
		want      string
	}{
		{
			name:      "override dipakai apa adanya",
			eventType: eventModel.AttendanceEventTypeIn,
			eventTime: startsAt.Add(time.Hour),
			session:   session,
			override:  strPtr(DiaryStatusLate),
			want:      DiaryStatusLate,
		},
		{
			name:      "OUT selalu LEFT meski telat",
			eventType: eventModel.AttendanceEventTypeOut,
			eventTime: startsAt.Add(2 * time.Hour),
			session:   session,
			want:      DiaryStatusLeft,
		},
		{
			name:      "IN tanpa sesi = PRESENT",
			eventType: eventModel.AttendanceEventTypeIn,
			eventTime: startsAt.Add(3 * time.Hour),
			session:   nil,
			want:      DiaryStatusPresent,
		},
		{
			name:      "IN sebelum jam mulai = PRESENT",
			eventType: eventModel.AttendanceEventTypeIn,
			eventTime: startsAt.Add(-20 * time.Minute),
			session:   session,
			want:      DiaryStatusPresent,
		},
		{
			name:      "IN tepat di batas toleransi (08:10:00) = PRESENT",
			eventType: eventModel.AttendanceEventTypeIn,
			eventTime: startsAt.Add(10 * time.Minute),
			session:   session,
			want:      DiaryStatusPresent,
		},
		{
			name:      "IN sedetik lewat batas (08:10:01) = LATE",
			eventType: eventModel.AttendanceEventTypeIn,
			eventTime: startsAt.Add(10*time.Minute + time.Second),
			session:   session,
			want:      DiaryStatusLate,
		},
		{
			name:      "override kosong diabaikan",
			eventType: eventModel.AttendanceEventTypeIn,
			eventTime: startsAt.Add(time.Hour),
			session:   session,
			override:  strPtr(""),
			want:      DiaryStatusLate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := MapDiaryStatus(tt.eventType, tt.eventTime, tt.session, tt.override)
			if got != tt.want {
				t.Errorf("MapDiaryStatus() = %s, want %s", got, tt.want)
			}
		})
	}
}
