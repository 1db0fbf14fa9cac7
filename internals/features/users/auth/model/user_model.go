package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================
   Model: users (admin / teacher / internal)
========================================= */

type UserModel struct {
	// PK
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	// Tenant
	UserSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:user_school_id" json:"user_school_id"`

	UserName  string `gorm:"type:varchar(160);not null;column:user_name" json:"user_name"`
	UserEmail string `gorm:"type:varchar(160);not null;uniqueIndex:uq_users_email;column:user_email" json:"user_email"`

	// Hash bcrypt — tidak pernah ikut response
	UserPassword string `gorm:"type:text;not null;column:user_password" json:"-"`

	UserRole     string `gorm:"type:varchar(16);not null;default:'teacher';column:user_role" json:"user_role"`
	UserIsActive bool   `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	// Audit
	UserCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:user_created_at" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:user_updated_at" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"-"`
}

func (UserModel) TableName() string { return "users" }
