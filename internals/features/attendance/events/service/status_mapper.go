// file: internals/features/attendance/events/service/status_mapper.go
package service

import (
	"time"

	eventModel "presensiku_backend/internals/features/attendance/events/model"
	sessionModel "presensiku_backend/internals/features/school/class_sessions/model"
)

// Status yang dikenal diary
const (
	DiaryStatusPresent = "PRESENT"
	DiaryStatusLate    = "LATE"
	DiaryStatusLeft    = "LEFT"
)

// Toleransi telat: IN sampai starts_at + 10 menit (inklusif) masih PRESENT.
const lateGracePeriod = 10 * time.Minute

// MapDiaryStatus menurunkan status diary untuk satu event yang diterima.
// Urutan aturan:
//  1. override dari koreksi manual dipakai apa adanya
//  2. OUT selalu LEFT
//  3. IN tanpa pertemuan terjadwal = PRESENT
//  4. IN dengan pertemuan: PRESENT kalau masih di dalam toleransi, selain itu LATE
func MapDiaryStatus(
	eventType eventModel.AttendanceEventType,
	eventTime time.Time,
	session *sessionModel.ClassSessionModel,
	override *string,
) string {
	if override != nil && *override != "" {
		return *override
	}

	if eventType == eventModel.AttendanceEventTypeOut {
		return DiaryStatusLeft
	}

	if session == nil {
		return DiaryStatusPresent
	}

	cutoff := session.ClassSessionStartsAt.Add(lateGracePeriod)
	if eventTime.After(cutoff) {
		return DiaryStatusLate
	}
	return DiaryStatusPresent
}
