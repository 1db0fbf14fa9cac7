// file: internals/features/school/class_sections/controller/class_section_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/class_sections/dto"
	"presensiku_backend/internals/features/school/class_sections/model"
	helper "presensiku_backend/internals/helpers"
	helperAuth "presensiku_backend/internals/helpers/auth"
)

type ClassSectionController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewClassSectionController(db *gorm.DB, v *validator.Validate) *ClassSectionController {
	return &ClassSectionController{DB: db, Validate: v}
}

// POST /api/a/class-sections
func (ctl *ClassSectionController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateClassSectionRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.ClassSectionModel{
		ClassSectionSchoolID: schoolID,
		ClassSectionName:     req.ClassSectionName,
		ClassSectionIsActive: true,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "uq_class_sections_name_per_school") ||
			errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "Nama rombel sudah terpakai di sekolah ini")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat rombel")
	}

	return helper.JsonCreated(c, "Rombel berhasil dibuat", dto.ToClassSectionResponse(m))
}

// GET /api/a/class-sections
func (ctl *ClassSectionController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var rows []model.ClassSectionModel
	if err := ctl.DB.
		Where("class_section_school_id = ?", schoolID).
		Order("class_section_name ASC").
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil rombel")
	}

	out := make([]dto.ClassSectionResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToClassSectionResponse(m))
	}
	return helper.JsonOK(c, "Daftar rombel", out)
}
