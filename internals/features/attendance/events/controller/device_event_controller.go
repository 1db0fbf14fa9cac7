// file: internals/features/attendance/events/controller/device_event_controller.go
package controller

import (
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"

	eventDTO "presensiku_backend/internals/features/attendance/events/dto"
	eventModel "presensiku_backend/internals/features/attendance/events/model"
	eventService "presensiku_backend/internals/features/attendance/events/service"
	helper "presensiku_backend/internals/helpers"
	deviceMw "presensiku_backend/internals/middlewares/device"
)

type DeviceEventController struct {
	Ingest *eventService.IngestService
}

// CREATE EVENT DARI MESIN
// POST /api/device/events
func (h *DeviceEventController) CreateDeviceEvent(c *fiber.Ctx) error {
	device, err := deviceMw.GetDeviceFromLocals(c)
	if err != nil {
		return err
	}

	var req eventDTO.DeviceEventRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Payload tidak valid")
	}
	if err := validator.New().Struct(req); err != nil {
		return helper.ValidationError(c, err)
	}

	eventTime, err := eventDTO.ParseEventTime(req.EventTime)
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, err.Error())
	}

	deviceID := device.DeviceID
	result, err := h.Ingest.Submit(c.UserContext(), eventService.IngestInput{
		SchoolID:    device.DeviceSchoolID,
		StudentCode: strings.TrimSpace(req.StudentCode),
		DeviceID:    &deviceID,
		EventType:   eventModel.AttendanceEventType(strings.ToUpper(strings.TrimSpace(req.EventType))),
		EventTime:   eventTime,
		Method:      eventModel.AttendanceEventMethod(strings.ToUpper(strings.TrimSpace(req.Method))),
		RawPayload:  c.Body(),
	})
	if err != nil {
		return err
	}

	// Penolakan kebijakan urutan: event tetap tercatat, tapi mesin perlu
	// tahu bahwa transisinya ditolak.
	if result.Status == eventModel.AttendanceEventStatusFailed {
		message := "Urutan presensi tidak valid"
		if result.FlowNote != nil {
			message = *result.FlowNote
		}
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"success":    false,
			"message":    message,
			"error_code": "FLOW_INVALID",
			"data":       result,
		})
	}

	return helper.JsonCreated(c, "Event presensi diterima", result)
}
