// file: internals/features/school/students/dto/student_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"presensiku_backend/internals/features/school/students/model"
)

/* =========================
   Request
========================= */

type CreateStudentRequest struct {
	StudentCode           string     `json:"student_code" validate:"required,min=1,max=64"`
	StudentName           string     `json:"student_name" validate:"required,min=1,max=160"`
	StudentClassSectionID *uuid.UUID `json:"student_class_section_id" validate:"omitempty"`
}

type UpdateStudentRequest struct {
	StudentName           *string    `json:"student_name" validate:"omitempty,min=1,max=160"`
	StudentClassSectionID *uuid.UUID `json:"student_class_section_id" validate:"omitempty"`
	StudentStatus         *string    `json:"student_status" validate:"omitempty,oneof=ACTIVE INACTIVE"`
}

func (r *CreateStudentRequest) Normalize() {
	r.StudentCode = strings.TrimSpace(r.StudentCode)
	r.StudentName = strings.TrimSpace(r.StudentName)
}

/* =========================
   Response
========================= */

type StudentResponse struct {
	StudentID             uuid.UUID  `json:"student_id"`
	StudentSchoolID       uuid.UUID  `json:"student_school_id"`
	StudentClassSectionID *uuid.UUID `json:"student_class_section_id,omitempty"`
	StudentCode           string     `json:"student_code"`
	StudentName           string     `json:"student_name"`
	StudentStatus         string     `json:"student_status"`
}

func ToStudentResponse(m model.StudentModel) StudentResponse {
	return StudentResponse{
		StudentID:             m.StudentID,
		StudentSchoolID:       m.StudentSchoolID,
		StudentClassSectionID: m.StudentClassSectionID,
		StudentCode:           m.StudentCode,
		StudentName:           m.StudentName,
		StudentStatus:         string(m.StudentStatus),
	}
}
