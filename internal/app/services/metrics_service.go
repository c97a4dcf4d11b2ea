package services

import (
	"strings"
	"time"

	"github.com/emre/progtrack/internal/app/models"
	"github.com/emre/progtrack/internal/pkg/apperrors"
	"github.com/emre/progtrack/internal/pkg/normalize"
)

// MetricsConfig carries the fixed per-program settings the engine applies to
// every computation.
type MetricsConfig struct {
	// Location is the program time zone; the reference instant is truncated
	// to its calendar date in this zone before filtering.
	Location *time.Location
	// ExclusionStart/ExclusionEnd bound the inclusive window removed from
	// the weekends metric only. Ignored unless HasExclusion is set.
	ExclusionStart time.Time
	ExclusionEnd   time.Time
	HasExclusion   bool
	// FinalMarker pins the last class day to the latest session whose label
	// contains this substring (case-insensitive). Empty disables pinning.
	FinalMarker string
}

// MetricsService computes countdown snapshots from a loaded schedule.
// Compute is a pure function: identical inputs yield identical snapshots,
// and concurrent calls need no coordination.
type MetricsService interface {
	Compute(schedule *models.Schedule, now time.Time) (*models.MetricsSnapshot, error)
}

// metricsServiceImpl implements the MetricsService interface
type metricsServiceImpl struct {
	config MetricsConfig
}

// NewMetricsService creates a new metrics service instance
func NewMetricsService(config MetricsConfig) MetricsService {
	if config.Location == nil {
		config.Location = time.UTC
	}
	return &metricsServiceImpl{config: config}
}

func (s *metricsServiceImpl) Compute(schedule *models.Schedule, now time.Time) (*models.MetricsSnapshot, error) {
	if schedule == nil || len(schedule.Sessions) == 0 {
		return nil, apperrors.ErrEmptySchedule
	}

	// "Remaining" is evaluated at date granularity: a session still counts
	// for the whole of its calendar day.
	localNow := now.In(s.config.Location)
	cutoff := time.Date(localNow.Year(), localNow.Month(), localNow.Day(), 0, 0, 0, 0, s.config.Location)

	upcoming := make([]models.Session, 0, len(schedule.Sessions))
	for _, session := range schedule.Sessions {
		if !session.Date.Before(cutoff) {
			upcoming = append(upcoming, session)
		}
	}

	yearEnd := time.Date(localNow.Year(), time.December, 31, 23, 59, 59, 0, s.config.Location)
	withinYear := make([]models.Session, 0, len(upcoming))
	for _, session := range upcoming {
		if !session.Date.After(yearEnd) {
			withinYear = append(withinYear, session)
		}
	}

	weekendSessions := s.weekendSessions(upcoming)
	lastClassDay := s.lastClassDay(schedule)
	target := time.Date(lastClassDay.Year(), lastClassDay.Month(), lastClassDay.Day(), 23, 59, 59, 0, s.config.Location)

	return &models.MetricsSnapshot{
		ClassesLeftToProgramEnd: distinctLabelsPerDay(upcoming),
		ClassesLeftToYearEnd:    distinctLabelsPerDay(withinYear),
		ClassWeekendsLeft:       distinctISOWeeks(weekendSessions),
		CoursesLeft:             distinctBaseCourses(upcoming),
		LastClassDay:            lastClassDay,
		TimeRemaining:           target.Sub(now),
		Upcoming:                upcoming,
		WeekendSessions:         weekendSessions,
	}, nil
}

// weekendSessions removes sessions falling inside the exclusion window, which
// affects the weekends metric only.
func (s *metricsServiceImpl) weekendSessions(upcoming []models.Session) []models.Session {
	if !s.config.HasExclusion {
		return upcoming
	}

	kept := make([]models.Session, 0, len(upcoming))
	for _, session := range upcoming {
		if !session.Date.Before(s.config.ExclusionStart) && !session.Date.After(s.config.ExclusionEnd) {
			continue
		}
		kept = append(kept, session)
	}
	return kept
}

// lastClassDay scans the whole schedule for final-marker matches; with no
// marker configured, or no match, the schedule's final date wins.
func (s *metricsServiceImpl) lastClassDay(schedule *models.Schedule) time.Time {
	if s.config.FinalMarker == "" {
		return schedule.LastDate()
	}

	marker := strings.ToLower(s.config.FinalMarker)
	var last time.Time
	found := false
	for _, session := range schedule.Sessions {
		if !strings.Contains(strings.ToLower(session.MorningLabel), marker) &&
			!strings.Contains(strings.ToLower(session.AfternoonLabel), marker) {
			continue
		}
		if !found || session.Date.After(last) {
			last = session.Date
			found = true
		}
	}

	if !found {
		return schedule.LastDate()
	}
	return last
}

// distinctLabelsPerDay counts each distinct normalized label once per calendar
// day, so a duplicate row repeats nothing while the same course on another day
// counts again.
func distinctLabelsPerDay(sessions []models.Session) int {
	perDay := make(map[string]map[string]struct{})
	for _, session := range sessions {
		day := session.Date.Format(dateLayout)
		labels := perDay[day]
		if labels == nil {
			labels = make(map[string]struct{})
			perDay[day] = labels
		}
		if label, ok := normalize.Label(session.MorningLabel); ok {
			labels[label] = struct{}{}
		}
		if label, ok := normalize.Label(session.AfternoonLabel); ok {
			labels[label] = struct{}{}
		}
	}

	total := 0
	for _, labels := range perDay {
		total += len(labels)
	}
	return total
}

// distinctISOWeeks buckets sessions by ISO-8601 week (Monday start) and counts
// the buckets.
func distinctISOWeeks(sessions []models.Session) int {
	weeks := make(map[[2]int]struct{})
	for _, session := range sessions {
		year, week := session.Date.ISOWeek()
		weeks[[2]int{year, week}] = struct{}{}
	}
	return len(weeks)
}

// distinctBaseCourses counts distinct base courses, preferring the morning
// label and falling back to the afternoon one.
func distinctBaseCourses(sessions []models.Session) int {
	courses := make(map[string]struct{})
	for _, session := range sessions {
		base, ok := normalize.BaseCourse(session.MorningLabel)
		if !ok {
			base, ok = normalize.BaseCourse(session.AfternoonLabel)
		}
		if !ok {
			continue
		}
		courses[base] = struct{}{}
	}
	return len(courses)
}
