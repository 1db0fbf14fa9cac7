// file: internals/features/school/devices/controller/device_controller.go
package controller

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/devices/dto"
	"presensiku_backend/internals/features/school/devices/model"
	helper "presensiku_backend/internals/helpers"
	helperAuth "presensiku_backend/internals/helpers/auth"
)

type DeviceController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewDeviceController(db *gorm.DB, v *validator.Validate) *DeviceController {
	return &DeviceController{DB: db, Validate: v}
}

// secret 32 byte acak → 64 char hex, dipakai mesin untuk HMAC body
func generateDeviceSecret() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}

// POST /api/a/devices
// Secret hanya muncul di response registrasi ini, simpan baik-baik.
func (ctl *DeviceController) Register(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.RegisterDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	secret, err := generateDeviceSecret()
	if err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat secret perangkat")
	}

	m := model.DeviceModel{
		DeviceSchoolID: schoolID,
		DeviceCode:     req.DeviceCode,
		DeviceLocation: req.DeviceLocation,
		DeviceSecret:   secret,
		DeviceIsActive: true,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "uq_devices_code") ||
			errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "Kode perangkat sudah terpakai")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mendaftarkan perangkat")
	}

	return helper.JsonCreated(c, "Perangkat terdaftar", dto.RegisterDeviceResponse{
		DeviceResponse: dto.ToDeviceResponse(m),
		DeviceSecret:   secret,
	})
}

// GET /api/a/devices
func (ctl *DeviceController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.DeviceModel
	if err := ctl.DB.
		Where("device_school_id = ?", schoolID).
		Order("device_created_at DESC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil perangkat")
	}

	out := make([]dto.DeviceResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToDeviceResponse(m))
	}
	return helper.JsonOK(c, "Daftar perangkat", out)
}

// PATCH /api/a/devices/:id — nonaktifkan / pindah lokasi
func (ctl *DeviceController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateDeviceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.DeviceModel
	if err := ctl.DB.
		Where("device_id = ? AND device_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Perangkat tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil perangkat")
	}

	updates := map[string]interface{}{}
	if req.DeviceLocation != nil {
		updates["device_location"] = strings.TrimSpace(*req.DeviceLocation)
	}
	if req.DeviceIsActive != nil {
		updates["device_is_active"] = *req.DeviceIsActive
	}
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "Tidak ada perubahan", dto.ToDeviceResponse(m))
	}

	if err := ctl.DB.Model(&m).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui perangkat")
	}
	return helper.JsonUpdated(c, "Perangkat diperbarui", dto.ToDeviceResponse(m))
}
