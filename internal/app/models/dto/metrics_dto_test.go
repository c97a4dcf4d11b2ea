package dto

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/emre/progtrack/internal/app/models"
)

func TestNewMetricsResponseRefreshInterval(t *testing.T) {
	snapshot := &models.MetricsSnapshot{
		LastClassDay:  time.Date(2025, 11, 22, 0, 0, 0, 0, time.UTC),
		TimeRemaining: time.Hour,
	}
	at := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name     string
		interval time.Duration
		want     int
	}{
		{"whole seconds", 5 * time.Second, 5},
		{"sub-second rounds up to one", 500 * time.Millisecond, 1},
		{"zero rounds up to one", 0, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := NewMetricsResponse("id", at, snapshot, tt.interval)
			assert.Equal(t, tt.want, resp.RefreshIntervalSeconds)
		})
	}
}
