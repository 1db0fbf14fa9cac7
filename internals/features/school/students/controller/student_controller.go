// file: internals/features/school/students/controller/student_controller.go
package controller

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"presensiku_backend/internals/features/school/students/dto"
	"presensiku_backend/internals/features/school/students/model"
	helper "presensiku_backend/internals/helpers"
	helperAuth "presensiku_backend/internals/helpers/auth"
)

type StudentController struct {
	DB       *gorm.DB
	Validate *validator.Validate
}

func NewStudentController(db *gorm.DB, v *validator.Validate) *StudentController {
	return &StudentController{DB: db, Validate: v}
}

// POST /api/a/students
func (ctl *StudentController) Create(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	req.Normalize()
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := model.StudentModel{
		StudentSchoolID:       schoolID,
		StudentClassSectionID: req.StudentClassSectionID,
		StudentCode:           req.StudentCode,
		StudentName:           req.StudentName,
		StudentStatus:         model.StudentStatusActive,
	}
	if err := ctl.DB.Create(&m).Error; err != nil {
		if strings.Contains(strings.ToLower(err.Error()), "uq_students_code_per_school") ||
			errors.Is(err, gorm.ErrDuplicatedKey) {
			return fiber.NewError(fiber.StatusConflict, "Kode siswa sudah terpakai di sekolah ini")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal membuat siswa")
	}

	return helper.JsonCreated(c, "Siswa berhasil dibuat", dto.ToStudentResponse(m))
}

// GET /api/a/students?search=&class_section_id=&page=&per_page=
func (ctl *StudentController) List(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	perPage := c.QueryInt("per_page", 20)
	if perPage <= 0 || perPage > 200 {
		perPage = 20
	}
	offset := (page - 1) * perPage

	db := ctl.DB.Model(&model.StudentModel{}).
		Where("student_school_id = ?", schoolID)

	if search := strings.TrimSpace(c.Query("search")); search != "" {
		s := "%" + strings.ToLower(search) + "%"
		db = db.Where("(LOWER(student_name) LIKE ? OR LOWER(student_code) LIKE ?)", s, s)
	}
	if raw := strings.TrimSpace(c.Query("class_section_id")); raw != "" {
		sectionID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "class_section_id tidak valid")
		}
		db = db.Where("student_class_section_id = ?", sectionID)
	}

	var total int64
	if err := db.Count(&total).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal menghitung siswa")
	}

	var rows []model.StudentModel
	if err := db.
		Order("student_name ASC").
		Limit(perPage).Offset(offset).
		Find(&rows).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}

	out := make([]dto.StudentResponse, 0, len(rows))
	for _, m := range rows {
		out = append(out, dto.ToStudentResponse(m))
	}
	return helper.JsonList(c, "Daftar siswa", out,
		helper.BuildPaginationFromOffset(total, offset, perPage))
}

// GET /api/a/students/:id
func (ctl *StudentController) GetByID(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var m model.StudentModel
	if err := ctl.DB.
		Where("student_id = ? AND student_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}

	return helper.JsonOK(c, "Detail siswa", dto.ToStudentResponse(m))
}

// PATCH /api/a/students/:id
func (ctl *StudentController) Update(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "ID tidak valid")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := ctl.Validate.Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.StudentModel
	if err := ctl.DB.
		Where("student_id = ? AND student_school_id = ?", id, schoolID).
		First(&m).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}

	updates := map[string]interface{}{}
	if req.StudentName != nil {
		updates["student_name"] = strings.TrimSpace(*req.StudentName)
	}
	if req.StudentClassSectionID != nil {
		updates["student_class_section_id"] = *req.StudentClassSectionID
	}
	if req.StudentStatus != nil {
		updates["student_status"] = strings.ToUpper(*req.StudentStatus)
	}
	if len(updates) == 0 {
		return helper.JsonUpdated(c, "Tidak ada perubahan", dto.ToStudentResponse(m))
	}

	if err := ctl.DB.Model(&m).Updates(updates).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal memperbarui siswa")
	}
	return helper.JsonUpdated(c, "Siswa diperbarui", dto.ToStudentResponse(m))
}
