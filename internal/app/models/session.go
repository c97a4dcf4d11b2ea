package models

import (
	"time"

	"github.com/google/uuid"
)

// Session represents one scheduled class occurrence on a specific date, with
// up to two labeled slots. Date carries local midnight in the program zone.
// Either label may be empty when no class is held in that slot.
type Session struct {
	Date           time.Time `json:"date"`
	MorningLabel   string    `json:"morningLabel,omitempty"`
	AfternoonLabel string    `json:"afternoonLabel,omitempty"`
}

// Schedule is the ordered collection of all sessions for a program, sorted by
// date ascending. It is built once at load time and never mutated afterwards;
// replacing the schedule means loading a new one.
type Schedule struct {
	// ID identifies one loaded schedule version, so dashboard clients can
	// detect that the schedule was re-uploaded between polls.
	ID       uuid.UUID `json:"id"`
	Sessions []Session `json:"sessions"`
	// DroppedRows counts input rows discarded because their date failed
	// strict parsing.
	DroppedRows int       `json:"droppedRows"`
	LoadedAt    time.Time `json:"loadedAt"`
}

// FirstDate returns the date of the earliest session.
func (s *Schedule) FirstDate() time.Time {
	return s.Sessions[0].Date
}

// LastDate returns the date of the final session.
func (s *Schedule) LastDate() time.Time {
	return s.Sessions[len(s.Sessions)-1].Date
}
