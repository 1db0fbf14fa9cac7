// file: internals/features/attendance/events/service/ingest_service.go
package service

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"

	eventModel "presensiku_backend/internals/features/attendance/events/model"
	liveService "presensiku_backend/internals/features/attendance/live/service"
	syncService "presensiku_backend/internals/features/attendance/sync/service"
	sessionService "presensiku_backend/internals/features/school/class_sessions/service"
	studentModel "presensiku_backend/internals/features/school/students/model"
)

// IngestService: inti transaksional pipeline presensi. Satu Submit = satu
// transaksi insert event (+ outbox kalau diterima), lalu side effect
// post-commit (broadcast live + pengiriman segera best-effort).
type IngestService struct {
	DB    *gorm.DB
	Queue *syncService.QueueService
	Hub   *liveService.Hub
}

func NewIngestService(db *gorm.DB, queue *syncService.QueueService, hub *liveService.Hub) *IngestService {
	return &IngestService{DB: db, Queue: queue, Hub: hub}
}

type IngestInput struct {
	SchoolID    uuid.UUID
	StudentID   *uuid.UUID // salah satu dari ID / Code wajib ada
	StudentCode string
	DeviceID    *uuid.UUID // nil = entri manual
	EventType   eventModel.AttendanceEventType
	EventTime   time.Time
	Method      eventModel.AttendanceEventMethod
	RawPayload  []byte

	// Jalur koreksi manual yang terpercaya boleh melewati kebijakan urutan
	// dan memaksa status diary.
	SkipFlowValidation  bool
	DiaryStatusOverride *string
}

type IngestStudent struct {
	StudentID      uuid.UUID  `json:"student_id"`
	StudentCode    string     `json:"student_code"`
	StudentName    string     `json:"student_name"`
	ClassSectionID *uuid.UUID `json:"class_section_id"`
}

type IngestResult struct {
	EventID        uuid.UUID                        `json:"event_id"`
	Status         eventModel.AttendanceEventStatus `json:"status"`
	Duplicate      bool                             `json:"duplicate"`
	Ignored        bool                             `json:"ignored"`
	QueueID        *uuid.UUID                       `json:"queue_id,omitempty"`
	ClassSessionID *uuid.UUID                       `json:"class_session_id,omitempty"`
	DiaryStatus    *string                          `json:"diary_status,omitempty"`
	FlowNote       *string                          `json:"flow_note,omitempty"`
	Student        *IngestStudent                   `json:"student,omitempty"`
}

// Submit memproses satu event masuk/keluar. Kontrak error:
//   - 400 VALIDATION_ERROR : input rusak, tidak ada yang dipersist
//   - 404 NOT_FOUND        : siswa tidak ada di tenant
//   - 409 CONFLICT         : siswa nonaktif
//
// Penolakan kebijakan urutan BUKAN error — event tetap dicatat dengan
// status FAILED/IGNORED_DUPLICATE dan dikembalikan sebagai hasil normal.
func (s *IngestService) Submit(ctx context.Context, in IngestInput) (*IngestResult, error) {
	if err := validateInput(&in); err != nil {
		return nil, err
	}

	var (
		result    IngestResult
		uniqueKey string
	)

	txErr := s.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1) Resolve siswa di dalam tenant
		student, err := findStudent(tx, in)
		if err != nil {
			return err
		}
		if student.StudentStatus != studentModel.StudentStatusActive {
			return fiber.NewError(fiber.StatusConflict, "Siswa nonaktif")
		}
		result.Student = &IngestStudent{
			StudentID:      student.StudentID,
			StudentCode:    student.StudentCode,
			StudentName:    student.StudentName,
			ClassSectionID: student.StudentClassSectionID,
		}

		// 2) Idempotency pre-check (constraint DB tetap jadi backstop)
		uniqueKey = BuildUniqueKey(in.SchoolID, student.StudentID, in.DeviceID, in.EventType, in.EventTime, in.Method)
		var existing eventModel.AttendanceEventModel
		err = tx.Where("attendance_event_unique_key = ?", uniqueKey).First(&existing).Error
		if err == nil {
			result.EventID = existing.AttendanceEventID
			result.Status = existing.AttendanceEventStatus
			result.Duplicate = true
			return nil // replay aman: kembalikan outcome lama tanpa mutasi
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		// 3) Kebijakan urutan IN/OUT harian
		status := eventModel.AttendanceEventStatusReceived
		var flowNote *string
		if !in.SkipFlowValidation {
			lastType, err := lastValidTypeOfDay(tx, in.SchoolID, student.StudentID, in.EventTime)
			if err != nil {
				return err
			}
			status, flowNote = DecideFlow(lastType, in.EventType)
		}

		// 4) Persist event dengan outcome-nya
		rawPayload := in.RawPayload
		if len(rawPayload) == 0 {
			rawPayload = []byte("{}")
		}
		event := eventModel.AttendanceEventModel{
			AttendanceEventSchoolID:   in.SchoolID,
			AttendanceEventStudentID:  student.StudentID,
			AttendanceEventDeviceID:   in.DeviceID,
			AttendanceEventType:       in.EventType,
			AttendanceEventTime:       in.EventTime,
			AttendanceEventMethod:     in.Method,
			AttendanceEventRawPayload: datatypes.JSON(rawPayload),
			AttendanceEventUniqueKey:  uniqueKey,
			AttendanceEventStatus:     status,
			AttendanceEventFlowNote:   flowNote,
			AttendanceEventReceivedAt: time.Now(),
		}
		if err := tx.Create(&event).Error; err != nil {
			return err // duplicate key ditangani setelah transaksi
		}

		result.EventID = event.AttendanceEventID
		result.Status = status
		result.FlowNote = flowNote
		result.Ignored = status == eventModel.AttendanceEventStatusIgnoredDuplicate

		// 5) Hanya event diterima yang dapat sesi + status diary + outbox
		if status == eventModel.AttendanceEventStatusReceived {
			var sessionID *uuid.UUID
			if student.StudentClassSectionID != nil {
				resolved, err := sessionService.ResolveClassSession(tx, in.SchoolID, *student.StudentClassSectionID, in.EventTime)
				if err != nil {
					return err
				}
				if resolved != nil {
					sessionID = &resolved.ClassSessionID
				}
				diaryStatus := MapDiaryStatus(in.EventType, in.EventTime, resolved, in.DiaryStatusOverride)
				result.DiaryStatus = &diaryStatus
			} else {
				diaryStatus := MapDiaryStatus(in.EventType, in.EventTime, nil, in.DiaryStatusOverride)
				result.DiaryStatus = &diaryStatus
			}
			result.ClassSessionID = sessionID

			payload := syncService.DiaryPayload{
				SchoolID:       in.SchoolID.String(),
				ClassSessionID: uuidPtrToStringPtr(sessionID),
				StudentCode:    student.StudentCode,
				Timestamp:      in.EventTime.UTC().Format(time.RFC3339),
				Status:         *result.DiaryStatus,
			}
			queueID, err := s.Queue.Enqueue(tx, in.SchoolID, event.AttendanceEventID, sessionID, payload)
			if err != nil {
				return err
			}
			result.QueueID = &queueID
		}

		return nil
	})

	if txErr != nil {
		// Kalah balapan di unique key: baca baris pemenang dan kembalikan
		// outcome-nya — strategi optimistic-concurrency, bukan error.
		if isDuplicateKeyError(txErr) && uniqueKey != "" {
			var winner eventModel.AttendanceEventModel
			if err := s.DB.Where("attendance_event_unique_key = ?", uniqueKey).First(&winner).Error; err == nil {
				return &IngestResult{
					EventID:   winner.AttendanceEventID,
					Status:    winner.AttendanceEventStatus,
					Duplicate: true,
				}, nil
			}
		}
		return nil, txErr
	}

	// Side effect post-commit — sengaja di luar transaksi supaya kegagalan
	// publish/kirim tidak bisa membatalkan fakta yang sudah tercatat.
	if result.Status == eventModel.AttendanceEventStatusReceived && !result.Duplicate {
		s.publishBroadcast(in, result)

		if result.QueueID != nil {
			// pengiriman segera, best-effort; worker background yang jamin
			if err := s.Queue.ProcessByID(ctx, *result.QueueID); err != nil {
				log.Printf("[INGEST] pengiriman segera gagal queue_id=%s err=%v (akan di-retry worker)", result.QueueID, err)
			}
		}
	}

	return &result, nil
}

func (s *IngestService) publishBroadcast(in IngestInput, result IngestResult) {
	source := "MANUAL"
	if in.DeviceID != nil {
		source = "DEVICE"
	}
	s.Hub.Publish(liveService.AttendanceBroadcast{
		SchoolID:       in.SchoolID,
		ClassSectionID: result.Student.ClassSectionID,
		StudentID:      result.Student.StudentID,
		StudentName:    result.Student.StudentName,
		StudentCode:    result.Student.StudentCode,
		EventID:        result.EventID,
		EventType:      string(in.EventType),
		EventTime:      in.EventTime,
		Method:         string(in.Method),
		Status:         string(result.Status),
		ClassSessionID: result.ClassSessionID,
		DiaryStatus:    result.DiaryStatus,
		FlowNote:       result.FlowNote,
		Source:         source,
	})
}

/* =========================
   Internal helpers
========================= */

func validateInput(in *IngestInput) error {
	switch in.EventType {
	case eventModel.AttendanceEventTypeIn, eventModel.AttendanceEventTypeOut:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "event_type tidak valid (IN/OUT)")
	}

	switch in.Method {
	case eventModel.AttendanceEventMethodFingerprint,
		eventModel.AttendanceEventMethodRFID,
		eventModel.AttendanceEventMethodQR,
		eventModel.AttendanceEventMethodManual:
	default:
		return fiber.NewError(fiber.StatusBadRequest, "method tidak valid")
	}

	if in.EventTime.IsZero() {
		return fiber.NewError(fiber.StatusBadRequest, "event_time tidak valid")
	}
	if in.SchoolID == uuid.Nil {
		return fiber.NewError(fiber.StatusBadRequest, "school_id tidak ter-resolve untuk event")
	}
	if in.StudentID == nil && strings.TrimSpace(in.StudentCode) == "" {
		return fiber.NewError(fiber.StatusBadRequest, "student_id atau student_code wajib diisi")
	}
	return nil
}

func findStudent(tx *gorm.DB, in IngestInput) (*studentModel.StudentModel, error) {
	var student studentModel.StudentModel
	q := tx.Where("student_school_id = ?", in.SchoolID)
	if in.StudentID != nil {
		q = q.Where("student_id = ?", *in.StudentID)
	} else {
		q = q.Where("student_code = ?", strings.TrimSpace(in.StudentCode))
	}
	if err := q.First(&student).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fiber.NewError(fiber.StatusNotFound, "Siswa tidak ditemukan")
		}
		return nil, err
	}
	return &student, nil
}

// lastValidTypeOfDay: jenis event valid (RECEIVED/PROCESSED) terakhir milik
// siswa pada tanggal kalender yang sama. Urutan: waktu event, lalu waktu
// diterima server — dua event berstempel sama → insert terakhir yang menang.
func lastValidTypeOfDay(tx *gorm.DB, schoolID, studentID uuid.UUID, at time.Time) (*eventModel.AttendanceEventType, error) {
	dayStart := time.Date(at.Year(), at.Month(), at.Day(), 0, 0, 0, 0, at.Location())
	dayEnd := dayStart.Add(24 * time.Hour)

	var last eventModel.AttendanceEventModel
	err := tx.
		Where(`
			attendance_event_school_id = ?
			AND attendance_event_student_id = ?
			AND attendance_event_time >= ? AND attendance_event_time < ?
			AND attendance_event_status IN ?
		`, schoolID, studentID, dayStart, dayEnd,
			[]eventModel.AttendanceEventStatus{
				eventModel.AttendanceEventStatusReceived,
				eventModel.AttendanceEventStatusProcessed,
			}).
		Order("attendance_event_time DESC, attendance_event_received_at DESC").
		First(&last).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &last.AttendanceEventType, nil
}

func isDuplicateKeyError(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "uq_attendance_events_unique_key") ||
		strings.Contains(msg, "duplicate") ||
		strings.Contains(msg, "unique")
}

func uuidPtrToStringPtr(id *uuid.UUID) *string {
	if id == nil {
		return nil
	}
	s := id.String()
	return &s
}
