package dto

import (
	"time"

	"github.com/emre/progtrack/internal/app/models"
	"github.com/emre/progtrack/internal/pkg/helpers"
)

// MetricsResponse carries one computed countdown snapshot
type MetricsResponse struct {
	ScheduleID              string    `json:"scheduleId"`
	At                      time.Time `json:"at"`
	ClassesLeftToProgramEnd int       `json:"classesLeftToProgramEnd" example:"38"`
	ClassesLeftToYearEnd    int       `json:"classesLeftToYearEnd" example:"21"`
	ClassWeekendsLeft       int       `json:"classWeekendsLeft" example:"11"`
	CoursesLeft             int       `json:"coursesLeft" example:"6"`
	LastClassDay            string    `json:"lastClassDay" example:"2025-11-22"`
	TimeRemainingSeconds    int64     `json:"timeRemainingSeconds" example:"7423511"`
	TimeRemaining           string    `json:"timeRemaining" example:"85d 21h 5m 11s"`
	Completed               bool      `json:"completed" example:"false"`
	// RefreshIntervalSeconds suggests how often dashboard clients should poll.
	RefreshIntervalSeconds int `json:"refreshIntervalSeconds" example:"1"`
}

// NewMetricsResponse maps an engine snapshot to its API representation
func NewMetricsResponse(scheduleID string, at time.Time, snapshot *models.MetricsSnapshot, refreshInterval time.Duration) MetricsResponse {
	refreshSeconds := int(refreshInterval / time.Second)
	if refreshSeconds < 1 {
		refreshSeconds = 1
	}

	return MetricsResponse{
		ScheduleID:              scheduleID,
		At:                      at,
		ClassesLeftToProgramEnd: snapshot.ClassesLeftToProgramEnd,
		ClassesLeftToYearEnd:    snapshot.ClassesLeftToYearEnd,
		ClassWeekendsLeft:       snapshot.ClassWeekendsLeft,
		CoursesLeft:             snapshot.CoursesLeft,
		LastClassDay:            snapshot.LastClassDay.Format(dateLayout),
		TimeRemainingSeconds:    int64(snapshot.TimeRemaining / time.Second),
		TimeRemaining:           helpers.FormatCountdown(snapshot.TimeRemaining),
		Completed:               snapshot.TimeRemaining <= 0,
		RefreshIntervalSeconds:  refreshSeconds,
	}
}
