package helpers

import (
	"fmt"
	"time"

	"github.com/rs/zerolog/log"
)

// CountdownCompleted is the sentinel rendered once the countdown target has
// passed (or is exactly now).
const CountdownCompleted = "Completed"

// ParseDuration parses a duration string, returns default duration on error.
func ParseDuration(durationStr string, defaultDuration time.Duration) time.Duration {
	duration, err := time.ParseDuration(durationStr)
	if err != nil {
		// Use the global logger here, assuming logger might not be configured when this is called.
		log.Warn().Err(err).Str("durationStr", durationStr).Dur("defaultDuration", defaultDuration).Msg("Failed to parse duration string, using default")
		return defaultDuration
	}
	return duration
}

// FormatCountdown renders a remaining duration as "{d}d {h}h {m}m {s}s",
// truncating to whole seconds. Durations of zero or less render as the
// CountdownCompleted sentinel.
func FormatCountdown(d time.Duration) string {
	if d <= 0 {
		return CountdownCompleted
	}

	total := int64(d / time.Second)
	days := total / 86400
	total %= 86400
	hours := total / 3600
	total %= 3600
	minutes := total / 60
	seconds := total % 60

	return fmt.Sprintf("%dd %dh %dm %ds", days, hours, minutes, seconds)
}
