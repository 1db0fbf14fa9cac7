// file: internals/features/attendance/sync/service/diary_client_test.go
package service

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/bytedance/sonic"
)

func testPayload() DiaryPayload {
	sessionID := "11111111-2222-3333-4444-555555555555"
	return DiaryPayload{
		SchoolID:       "99999999-8888-7777-6666-555555555555",
		ClassSessionID: &sessionID,
		StudentCode:    "S-001",
		Timestamp:      "2026-03-02T07:55:00Z",
		Status:         "PRESENT",
	}
}

func TestDiaryClientSendAttendance(t *testing.T) {
	var gotAuth, gotPath string
	var gotBody DiaryPayload

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAuth = r.Header.Get("Authorization")
		gotPath = r.URL.Path
		if err := sonic.ConfigDefault.NewDecoder(r.Body).Decode(&gotBody); err != nil {
			t.Errorf("decode body: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := NewDiaryClient(srv.URL, "token-rahasia", 2*time.Second)
	if err := c.SendAttendance(context.Background(), testPayload()); err != nil {
		t.Fatalf("SendAttendance: %v", err)
	}

	if gotPath != "/api/attendance" {
		t.Errorf("path = %s, want /api/attendance", gotPath)
	}
	if gotAuth != "Bearer token-rahasia" {
		t.Errorf("Authorization = %q", gotAuth)
	}
	if gotBody.StudentCode != "S-001" || gotBody.Status != "PRESENT" {
		t.Errorf("body tidak utuh: %+v", gotBody)
	}
}

func TestDiaryClientNon2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
		_, _ = w.Write([]byte("upstream mati"))
	}))
	defer srv.Close()

	c := NewDiaryClient(srv.URL, "token", 2*time.Second)
	err := c.SendAttendance(context.Background(), testPayload())
	if err == nil {
		t.Fatal("status 502 harus jadi error")
	}
	if !strings.Contains(err.Error(), "502") {
		t.Errorf("error tidak menyebut status: %v", err)
	}
	if !strings.Contains(err.Error(), "upstream mati") {
		t.Errorf("error tidak menyertakan potongan body: %v", err)
	}
}

func TestDiaryClientNetworkErrorIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close() // langsung dimatikan → connection refused

	c := NewDiaryClient(srv.URL, "token", time.Second)
	if err := c.SendAttendance(context.Background(), testPayload()); err == nil {
		t.Fatal("koneksi gagal harus jadi error")
	}
}

func TestDiaryClientMissingConfig(t *testing.T) {
	c := NewDiaryClient("", "", time.Second)
	if err := c.SendAttendance(context.Background(), testPayload()); err == nil {
		t.Fatal("tanpa base URL harus error, bukan panic atau no-op")
	}
}
