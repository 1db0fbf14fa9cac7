// file: internals/features/school/class_sessions/dto/class_session_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"presensiku_backend/internals/features/school/class_sessions/model"
)

type CreateClassSessionRequest struct {
	ClassSessionClassSectionID uuid.UUID  `json:"class_session_class_section_id" validate:"required"`
	ClassSessionTeacherID      *uuid.UUID `json:"class_session_teacher_id" validate:"omitempty"`
	ClassSessionSubject        *string    `json:"class_session_subject" validate:"omitempty,max=160"`
	ClassSessionStartsAt       string     `json:"class_session_starts_at" validate:"required"`
	ClassSessionEndsAt         string     `json:"class_session_ends_at" validate:"required"`
}

type ClassSessionResponse struct {
	ClassSessionID             uuid.UUID  `json:"class_session_id"`
	ClassSessionSchoolID       uuid.UUID  `json:"class_session_school_id"`
	ClassSessionClassSectionID uuid.UUID  `json:"class_session_class_section_id"`
	ClassSessionTeacherID      *uuid.UUID `json:"class_session_teacher_id,omitempty"`
	ClassSessionSubject        *string    `json:"class_session_subject,omitempty"`
	ClassSessionDate           string     `json:"class_session_date"`
	ClassSessionStartsAt       time.Time  `json:"class_session_starts_at"`
	ClassSessionEndsAt         time.Time  `json:"class_session_ends_at"`
}

func ToClassSessionResponse(m model.ClassSessionModel) ClassSessionResponse {
	return ClassSessionResponse{
		ClassSessionID:             m.ClassSessionID,
		ClassSessionSchoolID:       m.ClassSessionSchoolID,
		ClassSessionClassSectionID: m.ClassSessionClassSectionID,
		ClassSessionTeacherID:      m.ClassSessionTeacherID,
		ClassSessionSubject:        m.ClassSessionSubject,
		ClassSessionDate:           m.ClassSessionDate.Format("2006-01-02"),
		ClassSessionStartsAt:       m.ClassSessionStartsAt,
		ClassSessionEndsAt:         m.ClassSessionEndsAt,
	}
}
