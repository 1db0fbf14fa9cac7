// file: internals/features/attendance/live/service/hub.go
package service

import (
	"log"
	"sync"
	"time"

	"github.com/google/uuid"
)

// AttendanceBroadcast: pesan ephemeral untuk subscriber live — tidak pernah
// dipersist, hidup hanya selama satu kali publish.
type AttendanceBroadcast struct {
	SchoolID       uuid.UUID  `json:"school_id"`
	ClassSectionID *uuid.UUID `json:"class_section_id"`
	StudentID      uuid.UUID  `json:"student_id"`
	StudentName    string     `json:"student_name"`
	StudentCode    string     `json:"student_code"`
	EventID        uuid.UUID  `json:"event_id"`
	EventType      string     `json:"event_type"`
	EventTime      time.Time  `json:"event_time"`
	Method         string     `json:"method"`
	Status         string     `json:"status"`
	ClassSessionID *uuid.UUID `json:"class_session_id"`
	DiaryStatus    *string    `json:"diary_status"`
	FlowNote       *string    `json:"flow_note"`
	Source         string     `json:"source"` // DEVICE | MANUAL
}

// Subscriber: satu koneksi live. Channel buffered — publisher tidak pernah
// nunggu subscriber yang lambat.
type Subscriber struct {
	id             uint64
	schoolID       uuid.UUID
	classSectionID *uuid.UUID // nil = semua rombel
	ch             chan AttendanceBroadcast
}

// C: channel baca untuk handler stream.
func (s *Subscriber) C() <-chan AttendanceBroadcast { return s.ch }

// Hub: registry subscriber in-memory. Aman diakses paralel dari jalur
// ingest (Publish) dan jalur transport (Subscribe/Unsubscribe).
type Hub struct {
	mu          sync.RWMutex
	subscribers map[uint64]*Subscriber
	nextID      uint64
}

func NewHub() *Hub {
	return &Hub{subscribers: make(map[uint64]*Subscriber)}
}

// Subscribe mendaftarkan satu koneksi; classSectionID nil berarti terima
// semua rombel di sekolah itu.
func (h *Hub) Subscribe(schoolID uuid.UUID, classSectionID *uuid.UUID) *Subscriber {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.nextID++
	sub := &Subscriber{
		id:             h.nextID,
		schoolID:       schoolID,
		classSectionID: classSectionID,
		ch:             make(chan AttendanceBroadcast, 16),
	}
	h.subscribers[sub.id] = sub
	log.Printf("[LIVE] subscriber masuk id=%d total=%d", sub.id, len(h.subscribers))
	return sub
}

// Unsubscribe melepas koneksi secara deterministik: setelah return,
// Publish tidak akan pernah pegang referensi ke channel ini lagi.
func (h *Hub) Unsubscribe(sub *Subscriber) {
	if sub == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.subscribers[sub.id]; !ok {
		return
	}
	delete(h.subscribers, sub.id)
	close(sub.ch)
	log.Printf("[LIVE] subscriber keluar id=%d total=%d", sub.id, len(h.subscribers))
}

// Publish fan-out ke semua subscriber yang cocok tenant + rombel.
// Best-effort per subscriber: buffer penuh → pesan di-drop untuk subscriber
// itu saja, publish tidak pernah blok atau gagal.
func (h *Hub) Publish(msg AttendanceBroadcast) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for _, sub := range h.subscribers {
		if sub.schoolID != msg.SchoolID {
			continue
		}
		if sub.classSectionID != nil &&
			(msg.ClassSectionID == nil || *sub.classSectionID != *msg.ClassSectionID) {
			continue
		}

		select {
		case sub.ch <- msg:
		default:
			// subscriber ketinggalan — jangan tahan jalur ingest
		}
	}
}

// Count: jumlah subscriber aktif (untuk health/ops).
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.subscribers)
}
