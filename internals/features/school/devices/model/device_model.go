package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

/* =========================================
   Model: devices (mesin presensi fisik)
========================================= */

type DeviceModel struct {
	// PK
	DeviceID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:device_id" json:"device_id"`

	// Tenant
	DeviceSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:device_school_id" json:"device_school_id"`

	// Identitas mesin — code unik global, dipakai di header X-Device-Code
	DeviceCode     string `gorm:"type:varchar(64);not null;uniqueIndex:uq_devices_code;column:device_code" json:"device_code"`
	DeviceLocation string `gorm:"type:varchar(160);not null;default:'';column:device_location" json:"device_location"`

	// Secret untuk HMAC signature body (tidak pernah ikut response)
	DeviceSecret string `gorm:"type:text;not null;column:device_secret" json:"-"`

	DeviceIsActive bool `gorm:"not null;default:true;column:device_is_active" json:"device_is_active"`

	// Audit
	DeviceCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:device_created_at" json:"device_created_at"`
	DeviceUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:device_updated_at" json:"device_updated_at"`
	DeviceDeletedAt gorm.DeletedAt `gorm:"column:device_deleted_at;index" json:"-"`
}

func (DeviceModel) TableName() string { return "devices" }
