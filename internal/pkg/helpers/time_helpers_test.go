package helpers

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		name     string
		duration time.Duration
		want     string
	}{
		{"one of each unit", 90061 * time.Second, "1d 1h 1m 1s"},
		{"seconds only", 42 * time.Second, "0d 0h 0m 42s"},
		{"exact days", 48 * time.Hour, "2d 0h 0m 0s"},
		{"sub-second truncated", 1500 * time.Millisecond, "0d 0h 0m 1s"},
		{"zero is completed", 0, CountdownCompleted},
		{"negative is completed", -5 * time.Second, CountdownCompleted},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatCountdown(tt.duration))
		})
	}
}

func TestParseDuration(t *testing.T) {
	assert.Equal(t, 30*time.Second, ParseDuration("30s", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("not-a-duration", time.Minute))
	assert.Equal(t, time.Minute, ParseDuration("", time.Minute))
}
