package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================
   Enums (selaras dgn DB)
========================= */

type StudentStatus string

const (
	StudentStatusActive   StudentStatus = "ACTIVE"
	StudentStatusInactive StudentStatus = "INACTIVE"
)

/* =========================================
   Model: students
========================================= */

type StudentModel struct {
	// PK
	StudentID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`

	// Tenant & relasi utama
	StudentSchoolID       uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:uq_students_code_per_school;column:student_school_id" json:"student_school_id"`
	StudentClassSectionID *uuid.UUID `gorm:"type:uuid;index;column:student_class_section_id" json:"student_class_section_id,omitempty"`

	// Kode eksternal (NIS) — unik per sekolah, dipakai mesin & diary
	StudentCode string `gorm:"type:varchar(64);not null;uniqueIndex:uq_students_code_per_school;column:student_code" json:"student_code"`
	StudentName string `gorm:"type:varchar(160);not null;column:student_name" json:"student_name"`

	StudentStatus StudentStatus `gorm:"type:varchar(16);not null;default:'ACTIVE';column:student_status" json:"student_status"`

	// Audit
	StudentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_created_at" json:"student_created_at"`
	StudentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:student_updated_at" json:"student_updated_at"`
	StudentDeletedAt gorm.DeletedAt `gorm:"column:student_deleted_at;index" json:"-"`
}

func (StudentModel) TableName() string { return "students" }
