// file: internals/features/school/class_sections/dto/class_section_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"presensiku_backend/internals/features/school/class_sections/model"
)

type CreateClassSectionRequest struct {
	ClassSectionName string `json:"class_section_name" validate:"required,min=1,max=120"`
}

func (r *CreateClassSectionRequest) Normalize() {
	r.ClassSectionName = strings.TrimSpace(r.ClassSectionName)
}

type ClassSectionResponse struct {
	ClassSectionID       uuid.UUID `json:"class_section_id"`
	ClassSectionSchoolID uuid.UUID `json:"class_section_school_id"`
	ClassSectionName     string    `json:"class_section_name"`
	ClassSectionIsActive bool      `json:"class_section_is_active"`
}

func ToClassSectionResponse(m model.ClassSectionModel) ClassSectionResponse {
	return ClassSectionResponse{
		ClassSectionID:       m.ClassSectionID,
		ClassSectionSchoolID: m.ClassSectionSchoolID,
		ClassSectionName:     m.ClassSectionName,
		ClassSectionIsActive: m.ClassSectionIsActive,
	}
}
