// internals/middlewares/device/device_auth_middleware.go
package device

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	deviceModel "presensiku_backend/internals/features/school/devices/model"
)

// DeviceAuthMiddleware memverifikasi identitas mesin presensi:
// header X-Device-Code → lookup device aktif, lalu X-Signature harus
// sama dengan HMAC-SHA256(raw body, device_secret).
// Device yang lolos dipasang di Locals("device").
func DeviceAuthMiddleware(db *gorm.DB) fiber.Handler {
	return func(c *fiber.Ctx) error {
		deviceCode := strings.TrimSpace(c.Get("X-Device-Code"))
		signature := strings.TrimSpace(c.Get("X-Signature"))

		if deviceCode == "" || signature == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Header autentikasi device tidak lengkap")
		}

		var device deviceModel.DeviceModel
		if err := db.
			Where("device_code = ? AND device_is_active = TRUE", deviceCode).
			First(&device).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fiber.NewError(fiber.StatusUnauthorized, "Device tidak dikenal atau nonaktif")
			}
			log.Println("[ERROR] DB error saat lookup device:", err)
			return fiber.NewError(fiber.StatusInternalServerError, "Internal Server Error")
		}

		if !verifyHmac(c.Body(), device.DeviceSecret, signature) {
			return fiber.NewError(fiber.StatusUnauthorized, "Signature device tidak valid")
		}

		c.Locals("device", &device)
		return c.Next()
	}
}

// GetDeviceFromLocals mengambil device hasil DeviceAuthMiddleware.
func GetDeviceFromLocals(c *fiber.Ctx) (*deviceModel.DeviceModel, error) {
	d, ok := c.Locals("device").(*deviceModel.DeviceModel)
	if !ok || d == nil {
		return nil, fiber.NewError(fiber.StatusUnauthorized, "Device tidak ditemukan di context")
	}
	return d, nil
}

func verifyHmac(rawBody []byte, secret, signature string) bool {
	mac := hmac.New(sha256.New, []byte(secret))
	_, _ = mac.Write(rawBody)
	expected := hex.EncodeToString(mac.Sum(nil))
	// perbandingan constant-time, signature boleh uppercase
	return hmac.Equal([]byte(expected), []byte(strings.ToLower(signature)))
}
