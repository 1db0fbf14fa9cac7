// file: internals/features/school/class_sessions/service/session_resolver.go
package service

import (
	"time"

	"gorm.io/gorm"

	csModel "presensiku_backend/internals/features/school/class_sessions/model"

	"github.com/google/uuid"
)

// ResolveClassSession mencari pertemuan terjadwal yang paling cocok untuk
// satu event presensi: tanggal kalender sama dengan event, rombel sama,
// dan jam mulai paling dekat dengan jam event. Tidak ada pertemuan adalah
// hasil yang sah — event di luar jadwal tetap dicatat.
// Read-only, aman dipanggil di dalam transaksi ingest.
func ResolveClassSession(tx *gorm.DB, schoolID, classSectionID uuid.UUID, at time.Time) (*csModel.ClassSessionModel, error) {
	var sessions []csModel.ClassSessionModel
	if err := tx.
		Where(`
			class_session_school_id = ?
			AND class_session_class_section_id = ?
			AND class_session_date = ?
		`, schoolID, classSectionID, at.Format("2006-01-02")).
		Find(&sessions).Error; err != nil {
		return nil, err
	}

	return PickNearestSession(sessions, at), nil
}

// PickNearestSession memilih pertemuan dengan |starts_at - at| terkecil.
// Kalau selisihnya sama persis, yang pertama menang (urutan query stabil).
func PickNearestSession(sessions []csModel.ClassSessionModel, at time.Time) *csModel.ClassSessionModel {
	var best *csModel.ClassSessionModel
	var bestDiff time.Duration

	for i := range sessions {
		diff := sessions[i].ClassSessionStartsAt.Sub(at)
		if diff < 0 {
			diff = -diff
		}
		if best == nil || diff < bestDiff {
			best = &sessions[i]
			bestDiff = diff
		}
	}
	return best
}
