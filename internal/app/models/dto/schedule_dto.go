package dto

import (
	"time"

	"github.com/emre/progtrack/internal/app/models"
)

const dateLayout = "2006-01-02"

// ScheduleUploadResponse summarizes a successfully loaded schedule
type ScheduleUploadResponse struct {
	ScheduleID   string    `json:"scheduleId" example:"9f1b2c3d-4e5f-6a7b-8c9d-0e1f2a3b4c5d"`
	SessionCount int       `json:"sessionCount" example:"42"`
	DroppedRows  int       `json:"droppedRows" example:"1"`
	FirstDate    string    `json:"firstDate" example:"2025-01-06"`
	LastDate     string    `json:"lastDate" example:"2025-11-22"`
	LoadedAt     time.Time `json:"loadedAt"`
}

// NewScheduleUploadResponse maps a loaded schedule to its upload summary
func NewScheduleUploadResponse(schedule *models.Schedule) ScheduleUploadResponse {
	return ScheduleUploadResponse{
		ScheduleID:   schedule.ID.String(),
		SessionCount: len(schedule.Sessions),
		DroppedRows:  schedule.DroppedRows,
		FirstDate:    schedule.FirstDate().Format(dateLayout),
		LastDate:     schedule.LastDate().Format(dateLayout),
		LoadedAt:     schedule.LoadedAt,
	}
}

// SessionResponse represents one session row for display
type SessionResponse struct {
	Date           string `json:"date" example:"2025-01-06"`
	MorningLabel   string `json:"morningLabel,omitempty" example:"Strategy 1"`
	AfternoonLabel string `json:"afternoonLabel,omitempty" example:"Corporate Finance"`
}

// SessionListResponse represents a filtered session list for display
type SessionListResponse struct {
	ScheduleID string            `json:"scheduleId"`
	Count      int               `json:"count" example:"12"`
	Sessions   []SessionResponse `json:"sessions"`
}

// NewSessionListResponse maps a session slice to its display list
func NewSessionListResponse(scheduleID string, sessions []models.Session) SessionListResponse {
	items := make([]SessionResponse, 0, len(sessions))
	for _, session := range sessions {
		items = append(items, SessionResponse{
			Date:           session.Date.Format(dateLayout),
			MorningLabel:   session.MorningLabel,
			AfternoonLabel: session.AfternoonLabel,
		})
	}
	return SessionListResponse{
		ScheduleID: scheduleID,
		Count:      len(items),
		Sessions:   items,
	}
}
