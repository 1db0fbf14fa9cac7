// file: internals/features/attendance/live/service/hub_test.go
package service

import (
	"testing"

	"github.com/google/uuid"
)

func broadcastFor(schoolID uuid.UUID, sectionID *uuid.UUID) AttendanceBroadcast {
	return AttendanceBroadcast{
		SchoolID:       schoolID,
		ClassSectionID: sectionID,
		StudentID:      uuid.New(),
		EventID:        uuid.New(),
		EventType:      "IN",
		Status:         "RECEIVED",
		Source:         "DEVICE",
	}
}

func TestHubTenantIsolation(t *testing.T) {
	hub := NewHub()
	schoolA := uuid.New()
	schoolB := uuid.New()

	subA := hub.Subscribe(schoolA, nil)
	subB := hub.Subscribe(schoolB, nil)
	defer hub.Unsubscribe(subA)
	defer hub.Unsubscribe(subB)

	hub.Publish(broadcastFor(schoolA, nil))

	select {
	case msg := <-subA.C():
		if msg.SchoolID != schoolA {
			t.Errorf("school_id = %s, want %s", msg.SchoolID, schoolA)
		}
	default:
		t.Fatal("subscriber tenant yang sama tidak menerima pesan")
	}

	select {
	case <-subB.C():
		t.Fatal("pesan bocor ke tenant lain")
	default:
	}
}

func TestHubSectionFilter(t *testing.T) {
	hub := NewHub()
	schoolID := uuid.New()
	sectionX := uuid.New()
	sectionY := uuid.New()

	all := hub.Subscribe(schoolID, nil)
	onlyX := hub.Subscribe(schoolID, &sectionX)
	onlyY := hub.Subscribe(schoolID, &sectionY)
	defer hub.Unsubscribe(all)
	defer hub.Unsubscribe(onlyX)
	defer hub.Unsubscribe(onlyY)

	hub.Publish(broadcastFor(schoolID, &sectionX))

	if len(all.C()) != 1 {
		t.Error("subscriber tanpa filter harus menerima")
	}
	if len(onlyX.C()) != 1 {
		t.Error("subscriber rombel X harus menerima")
	}
	if len(onlyY.C()) != 0 {
		t.Error("subscriber rombel Y tidak boleh menerima")
	}

	// event tanpa rombel tidak cocok dengan filter spesifik
	hub.Publish(broadcastFor(schoolID, nil))
	if len(onlyX.C()) != 1 {
		t.Error("event tanpa rombel bocor ke subscriber terfilter")
	}
	if len(all.C()) != 2 {
		t.Error("subscriber tanpa filter harus menerima event tanpa rombel")
	}
}

func TestHubUnsubscribeClosesChannel(t *testing.T) {
	hub := NewHub()
	sub := hub.Subscribe(uuid.New(), nil)

	hub.Unsubscribe(sub)
	if _, ok := <-sub.C(); ok {
		t.Fatal("channel harus tertutup setelah unsubscribe")
	}
	if hub.Count() != 0 {
		t.Fatalf("Count = %d, want 0", hub.Count())
	}

	// unsubscribe dua kali harus aman
	hub.Unsubscribe(sub)
}

func TestHubPublishNeverBlocks(t *testing.T) {
	hub := NewHub()
	schoolID := uuid.New()
	sub := hub.Subscribe(schoolID, nil)
	defer hub.Unsubscribe(sub)

	// lebih banyak dari kapasitas buffer; kelebihan di-drop, bukan blok
	for i := 0; i < 100; i++ {
		hub.Publish(broadcastFor(schoolID, nil))
	}

	if got := len(sub.C()); got == 0 || got > cap(sub.ch) {
		t.Errorf("buffer berisi %d pesan, harus 1..%d", got, cap(sub.ch))
	}
}
