// file: internals/features/attendance/events/controller/teacher_attendance_controller.go
package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	eventDTO "presensiku_backend/internals/features/attendance/events/dto"
	eventModel "presensiku_backend/internals/features/attendance/events/model"
	eventService "presensiku_backend/internals/features/attendance/events/service"
	sessionModel "presensiku_backend/internals/features/school/class_sessions/model"
	studentModel "presensiku_backend/internals/features/school/students/model"
	helper "presensiku_backend/internals/helpers"
	helperAuth "presensiku_backend/internals/helpers/auth"
)

type TeacherAttendanceController struct {
	DB     *gorm.DB
	Ingest *eventService.IngestService
}

// ENTRI MANUAL (koreksi guru)
// POST /api/teacher/attendance/manual
func (h *TeacherAttendanceController) CreateManualAttendance(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}
	actorID, err := helperAuth.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req eventDTO.ManualAttendanceRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}
	if req.StudentID == nil && strings.TrimSpace(req.StudentCode) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "student_id atau student_code wajib diisi")
	}

	status := strings.ToUpper(strings.TrimSpace(req.Status))

	// Sesi wajib ada dan milik tenant guru
	var session sessionModel.ClassSessionModel
	if err := h.DB.
		Where("class_session_id = ? AND class_session_school_id = ?", req.ClassSessionID, schoolID).
		First(&session).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Sesi pertemuan tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil sesi")
	}

	// Siswa harus satu rombel dengan sesinya
	var student studentModel.StudentModel
	q := h.DB.Where("student_school_id = ?", schoolID)
	if req.StudentID != nil {
		q = q.Where("student_id = ?", *req.StudentID)
	} else {
		q = q.Where("student_code = ?", strings.TrimSpace(req.StudentCode))
	}
	if err := q.First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil siswa")
	}
	if student.StudentClassSectionID == nil ||
		*student.StudentClassSectionID != session.ClassSessionClassSectionID {
		return fiber.NewError(fiber.StatusBadRequest, "Siswa bukan anggota rombel sesi ini")
	}

	// LEFT dicatat sebagai OUT, selain itu IN; default waktu = jam mulai sesi
	eventType := eventModel.AttendanceEventTypeIn
	if status == eventService.DiaryStatusLeft {
		eventType = eventModel.AttendanceEventTypeOut
	}
	eventTime := session.ClassSessionStartsAt
	if req.Timestamp != nil && strings.TrimSpace(*req.Timestamp) != "" {
		parsed, err := eventDTO.ParseEventTime(*req.Timestamp)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, err.Error())
		}
		eventTime = parsed
	}

	studentID := student.StudentID
	result, err := h.Ingest.Submit(c.UserContext(), eventService.IngestInput{
		SchoolID:  schoolID,
		StudentID: &studentID,
		EventType: eventType,
		EventTime: eventTime,
		Method:    eventModel.AttendanceEventMethodManual,
		RawPayload: mustMarshalRawPayload(fiber.Map{
			"source":           "MANUAL_TEACHER",
			"status":           status,
			"justification":    req.Justification,
			"class_session_id": req.ClassSessionID,
			"actor_user_id":    actorID,
		}),
		SkipFlowValidation:  true,
		DiaryStatusOverride: &status,
	})
	if err != nil {
		return err
	}

	return helper.JsonCreated(c, "Presensi manual tercatat", result)
}

/* =========================================================
   LIVE FEED (polling)
   GET /api/teacher/attendance/feed?class_section_id=&limit=
========================================================= */

type LiveFeedItem struct {
	AttendanceEventID uuid.UUID                        `json:"attendance_event_id"`
	EventType         eventModel.AttendanceEventType   `json:"event_type"`
	EventTime         time.Time                        `json:"event_time"`
	Method            eventModel.AttendanceEventMethod `json:"method"`
	Status            eventModel.AttendanceEventStatus `json:"status"`
	FlowNote          *string                          `json:"flow_note,omitempty"`
	StudentID         uuid.UUID                        `json:"student_id"`
	StudentName       string                           `json:"student_name"`
	StudentCode       string                           `json:"student_code"`
	ClassSectionID    *uuid.UUID                       `json:"class_section_id,omitempty"`
	DeviceCode        *string                          `json:"device_code,omitempty"`
	DeviceLocation    *string                          `json:"device_location,omitempty"`
}

func (h *TeacherAttendanceController) GetLiveFeed(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	limit := c.QueryInt("limit", 100)
	if limit <= 0 || limit > 200 {
		limit = 100
	}

	q := h.DB.
		Table("attendance_events AS ae").
		Select(`
			ae.attendance_event_id,
			ae.attendance_event_type  AS event_type,
			ae.attendance_event_time  AS event_time,
			ae.attendance_event_method AS method,
			ae.attendance_event_status AS status,
			ae.attendance_event_flow_note AS flow_note,
			s.student_id,
			s.student_name,
			s.student_code,
			s.student_class_section_id AS class_section_id,
			d.device_code,
			d.device_location
		`).
		Joins("JOIN students s ON s.student_id = ae.attendance_event_student_id").
		Joins("LEFT JOIN devices d ON d.device_id = ae.attendance_event_device_id").
		Where("ae.attendance_event_school_id = ?", schoolID)

	if raw := strings.TrimSpace(c.Query("class_section_id")); raw != "" {
		sectionID, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "class_section_id tidak valid")
		}
		q = q.Where("s.student_class_section_id = ?", sectionID)
	}

	var items []LiveFeedItem
	if err := q.
		Order("ae.attendance_event_time DESC, ae.attendance_event_received_at DESC").
		Limit(limit).
		Scan(&items).Error; err != nil {
		return fiber.NewError(fiber.StatusInternalServerError, "Gagal mengambil feed")
	}

	return helper.JsonOK(c, "Live feed presensi", items)
}

func mustMarshalRawPayload(m fiber.Map) []byte {
	raw, err := sonic.Marshal(m)
	if err != nil {
		return []byte("{}")
	}
	return raw
}
