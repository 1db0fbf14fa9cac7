package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================
   Model: class_sessions (jadwal pertemuan)
   Dipakai resolver presensi untuk hitung telat,
   read-only bagi pipeline event.
========================================= */

type ClassSessionModel struct {
	// PK
	ClassSessionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_session_id" json:"class_session_id"`

	// Tenant & relasi utama
	ClassSessionSchoolID       uuid.UUID  `gorm:"type:uuid;not null;index;column:class_session_school_id" json:"class_session_school_id"`
	ClassSessionClassSectionID uuid.UUID  `gorm:"type:uuid;not null;index:idx_class_sessions_section_date;column:class_session_class_section_id" json:"class_session_class_section_id"`
	ClassSessionTeacherID      *uuid.UUID `gorm:"type:uuid;column:class_session_teacher_id" json:"class_session_teacher_id,omitempty"`

	// Info pertemuan
	ClassSessionSubject *string `gorm:"type:varchar(160);column:class_session_subject" json:"class_session_subject,omitempty"`

	// Occurrence
	ClassSessionDate     time.Time `gorm:"type:date;not null;index:idx_class_sessions_section_date;column:class_session_date" json:"class_session_date"`
	ClassSessionStartsAt time.Time `gorm:"type:timestamptz;not null;column:class_session_starts_at" json:"class_session_starts_at"`
	ClassSessionEndsAt   time.Time `gorm:"type:timestamptz;not null;column:class_session_ends_at" json:"class_session_ends_at"`

	// Audit
	ClassSessionCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_session_created_at" json:"class_session_created_at"`
	ClassSessionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_session_updated_at" json:"class_session_updated_at"`
	ClassSessionDeletedAt gorm.DeletedAt `gorm:"column:class_session_deleted_at;index" json:"-"`
}

func (ClassSessionModel) TableName() string { return "class_sessions" }
