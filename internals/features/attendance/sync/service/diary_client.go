// file: internals/features/attendance/sync/service/diary_client.go
package service

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/bytedance/sonic"

	"presensiku_backend/internals/configs"
)

// DiaryPayload adalah bentuk final yang dikirim ke diary (sistem rekap
// eksternal). Diserialisasi sekali saat enqueue dan disimpan di outbox.
type DiaryPayload struct {
	SchoolID       string  `json:"school_id"`
	ClassSessionID *string `json:"class_session_id"`
	StudentCode    string  `json:"student_code"`
	Timestamp      string  `json:"timestamp"` // RFC3339
	Status         string  `json:"status"`    // PRESENT | LATE | LEFT
}

// DiarySink: target pengiriman — di-interface-kan supaya queue bisa dites
// tanpa HTTP beneran.
type DiarySink interface {
	SendAttendance(ctx context.Context, payload DiaryPayload) error
}

// DiaryClient: klien HTTP ke diary. Diary bisa lambat atau mati; semua
// kegagalan (transport maupun non-2xx) dianggap retryable oleh queue.
type DiaryClient struct {
	BaseURL string
	Token   string
	HTTP    *http.Client
}

func NewDiaryClient(baseURL, token string, timeout time.Duration) *DiaryClient {
	return &DiaryClient{
		BaseURL: strings.TrimRight(baseURL, "/"),
		Token:   token,
		HTTP:    &http.Client{Timeout: timeout},
	}
}

// NewDiaryClientFromEnv: pakai konfigurasi DIARY_* yang dimuat LoadEnv.
func NewDiaryClientFromEnv() *DiaryClient {
	return NewDiaryClient(configs.DiaryBaseURL, configs.DiaryToken, configs.DiaryTimeout)
}

func (c *DiaryClient) SendAttendance(ctx context.Context, payload DiaryPayload) error {
	if c.BaseURL == "" {
		return fmt.Errorf("DIARY_BASE_URL belum dikonfigurasi")
	}
	if c.Token == "" {
		return fmt.Errorf("DIARY_TOKEN belum dikonfigurasi")
	}

	body, err := sonic.Marshal(payload)
	if err != nil {
		return fmt.Errorf("marshal payload diary: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.BaseURL+"/api/attendance", bytes.NewReader(body))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.Token)

	resp, err := c.HTTP.Do(req)
	if err != nil {
		return fmt.Errorf("kirim ke diary: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("diary membalas status %d: %s", resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return nil
}
