// file: internals/features/attendance/sync/service/queue_service_test.go
package service

import "testing"

func TestCalculateBackoffMinutes(t *testing.T) {
	tests := []struct {
		attempts int
		want     int
	}{
		{0, 2},  // dinormalisasi ke attempt pertama
		{1, 2},
		{2, 4},
		{3, 8},
		{4, 16},
		{5, 30}, // cap
		{6, 30},
		{10, 30},
		{100, 30},
	}

	for _, tt := range tests {
		if got := CalculateBackoffMinutes(tt.attempts); got != tt.want {
			t.Errorf("CalculateBackoffMinutes(%d) = %d, want %d", tt.attempts, got, tt.want)
		}
	}
}

func TestNewQueueServiceDefaults(t *testing.T) {
	s := NewQueueService(nil, nil, 0, 0)
	if s.MaxAttempts != 10 {
		t.Errorf("MaxAttempts default = %d, want 10", s.MaxAttempts)
	}
	if s.BatchSize != 100 {
		t.Errorf("BatchSize default = %d, want 100", s.BatchSize)
	}
}
