// file: internals/features/attendance/live/controller/stream_controller.go
package controller

import (
	"bufio"
	"fmt"
	"strings"
	"time"

	"github.com/bytedance/sonic"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"

	liveService "presensiku_backend/internals/features/attendance/live/service"
	helperAuth "presensiku_backend/internals/helpers/auth"
)

// Interval heartbeat supaya koneksi mati cepat ketahuan dan proxy tidak
// menutup stream yang idle.
const heartbeatInterval = 25 * time.Second

type StreamController struct {
	Hub *liveService.Hub
}

// STREAM PRESENSI REALTIME (SSE)
// GET /api/teacher/attendance/stream?class_section_id=
func (h *StreamController) StreamAttendance(c *fiber.Ctx) error {
	schoolID, err := helperAuth.GetSchoolIDFromToken(c)
	if err != nil {
		return err
	}

	var classSectionID *uuid.UUID
	if raw := strings.TrimSpace(c.Query("class_section_id")); raw != "" {
		parsed, err := uuid.Parse(raw)
		if err != nil {
			return fiber.NewError(fiber.StatusBadRequest, "class_section_id tidak valid")
		}
		classSectionID = &parsed
	}

	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")
	c.Set("X-Accel-Buffering", "no") // nginx: jangan buffer SSE

	hub := h.Hub
	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		sub := hub.Subscribe(schoolID, classSectionID)
		defer hub.Unsubscribe(sub)

		// event pembuka supaya klien tahu langganan aktif
		if err := writeSSE(w, "ready", []byte(`{"ok":true}`)); err != nil {
			return
		}

		ticker := time.NewTicker(heartbeatInterval)
		defer ticker.Stop()

		for {
			select {
			case msg, ok := <-sub.C():
				if !ok {
					return
				}
				data, err := sonic.Marshal(msg)
				if err != nil {
					continue
				}
				if err := writeSSE(w, "attendance", data); err != nil {
					return // klien putus → unsubscribe via defer
				}
			case <-ticker.C:
				if err := writeSSE(w, "ping", []byte("{}")); err != nil {
					return
				}
			}
		}
	}))

	return nil
}

func writeSSE(w *bufio.Writer, event string, data []byte) error {
	if _, err := fmt.Fprintf(w, "event: %s\ndata: %s\n\n", event, data); err != nil {
		return err
	}
	return w.Flush()
}
