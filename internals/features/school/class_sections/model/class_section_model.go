package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================
   Model: class_sections (rombel / kelas)
========================================= */

type ClassSectionModel struct {
	// PK
	ClassSectionID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:class_section_id" json:"class_section_id"`

	// Tenant
	ClassSectionSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_class_sections_name_per_school;column:class_section_school_id" json:"class_section_school_id"`

	ClassSectionName     string `gorm:"type:varchar(120);not null;uniqueIndex:uq_class_sections_name_per_school;column:class_section_name" json:"class_section_name"`
	ClassSectionIsActive bool   `gorm:"not null;default:true;column:class_section_is_active" json:"class_section_is_active"`

	// Audit
	ClassSectionCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_section_created_at" json:"class_section_created_at"`
	ClassSectionUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:class_section_updated_at" json:"class_section_updated_at"`
	ClassSectionDeletedAt gorm.DeletedAt `gorm:"column:class_section_deleted_at;index" json:"-"`
}

func (ClassSectionModel) TableName() string { return "class_sections" }
