// file: internals/features/school/devices/dto/device_dto.go
package dto

import (
	"strings"

	"github.com/google/uuid"

	"presensiku_backend/internals/features/school/devices/model"
)

type RegisterDeviceRequest struct {
	DeviceCode     string `json:"device_code" validate:"required,min=1,max=64"`
	DeviceLocation string `json:"device_location" validate:"omitempty,max=160"`
}

type UpdateDeviceRequest struct {
	DeviceLocation *string `json:"device_location" validate:"omitempty,max=160"`
	DeviceIsActive *bool   `json:"device_is_active" validate:"omitempty"`
}

func (r *RegisterDeviceRequest) Normalize() {
	r.DeviceCode = strings.TrimSpace(r.DeviceCode)
	r.DeviceLocation = strings.TrimSpace(r.DeviceLocation)
}

type DeviceResponse struct {
	DeviceID       uuid.UUID `json:"device_id"`
	DeviceSchoolID uuid.UUID `json:"device_school_id"`
	DeviceCode     string    `json:"device_code"`
	DeviceLocation string    `json:"device_location"`
	DeviceIsActive bool      `json:"device_is_active"`
}

// RegisterDeviceResponse menyertakan secret SEKALI SAJA saat registrasi.
// Secret tidak bisa diambil ulang lewat endpoint manapun.
type RegisterDeviceResponse struct {
	DeviceResponse
	DeviceSecret string `json:"device_secret"`
}

func ToDeviceResponse(m model.DeviceModel) DeviceResponse {
	return DeviceResponse{
		DeviceID:       m.DeviceID,
		DeviceSchoolID: m.DeviceSchoolID,
		DeviceCode:     m.DeviceCode,
		DeviceLocation: m.DeviceLocation,
		DeviceIsActive: m.DeviceIsActive,
	}
}
