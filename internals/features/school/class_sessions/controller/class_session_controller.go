// file: internals/features/school/class_sessions/controller/class_session_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	sectionModel "presensiku_backend/internals/features/school/class_sections/model"
	"presensiku_backend/internals/features/school/class_sessions/dto"
	"presensiku_backend/internals/features/school/class_sessions/model"
	helper "presensiku_backend/internals/helpers"
	helperAuth "presensiku_backend/internals/helpers/auth"
)

type ClassSessionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassSessionController(db *gorm.DB, v *validator.Validate) *ClassSessionController {
	return &ClassSessionController{DB: db, Validate: v}
}

// format timestamp yang diterima request (tanpa zona = waktu server)
func parseSessionTime(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if t, err := time.Parse(time.RFC3339, raw); err == nil {
		return t, nil
	}
	if t, err := time.ParseInLocation("2006-01-02T15:04:05", raw, time.Local); err == nil {
		return t, nil
	}
	return time.ParseInLocation("2006-01-02 15:04:05", raw, time.Local)
}

// POST /api/u/class-sessions — guru membuka sesi pertemuan
func (ctl *ClassSessionController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateClassSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	startsAt, err := parseSessionTime(req.ClassSessionStartsAt)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_session_starts_at tidak valid")
	}
	endsAt, err := parseSessionTime(req.ClassSessionEndsAt)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "class_session_ends_at tidak valid")
	}
	if !endsAt.After(startsAt) {
		return fiber.NewError(fiber.StatusBadRequest, "class_session_ends_at harus setelah starts_at")
	}

	// rombel harus milik tenant yang sama
	var section sectionModel.ClassSectionModel
	if err := ctl.DB.
		Where("class_section_id = ? AND class_section_school_id = ?",
			req.ClassSessionClassSectionID, schoolID).
		First(&section).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Rombel tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memeriksa rombel")
	}

	// default pengajar = user yang membuka sesi
	teacherID := req.ClassSessionTeacherID
	if teacherID == nil {
		if actorID, err := helperAuth.GetUserIDFromToken(c); err == nil {
			teacherID = &actorID
		}
	}

	day, _ := time.ParseInLocation("2006-01-02", startsAt.Format("2006-01-02"), time.Local)
	m := model.ClassSessionModel{
		ClassSessionSchoolID:       schoolID,
		ClassSessionClassSectionID: req.ClassSessionClassSectionID,
		ClassSessionTeacherID:      teacherID,
		ClassSessionSubject:        req.ClassSessionSubject,
		ClassSessionDate:           day,
		ClassSessionStartsAt:       startsAt,
		ClassSessionEndsAt:         endsAt,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat sesi")
	}

	return helper.JsonCreated(c, "Sesi berhasil dibuat", dto.ToClassSessionResponse(m))
}

// GET /api/u/class-sessions/today?class_section_id=
// Sesi hari ini untuk dashboard guru.
func (ctl *ClassSessionController) ListToday(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	db := ctl.DB.Model(&model.ClassSessionModel{}).
		Where("class_session_school_id = ? AND class_session_date = ?",
			schoolID, time.Now().Format("2006-01-02"))

	if raw := strings.TrimSpace(c.Query("class_section_id")); raw != "" {
		sectionID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "class_section_id tidak valid")
		}
		db = db.Where("class_session_class_section_id = ?", sectionID)
	}

	var rows []model.ClassSessionModel
	if err := db.Order("class_session_starts_at ASC").Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}

	out := make([]dto.ClassSessionResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToClassSessionResponse(m))
	}
	return helper.JsonOK(c, "Sesi hari ini", out)
}
