package services

import (
	"encoding/csv"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/emre/progtrack/internal/app/models"
	"github.com/emre/progtrack/internal/pkg/apperrors"
)

const dateLayout = "2006-01-02"

// ScheduleService loads schedules from uploaded CSV data and holds the most
// recently loaded one for the process lifetime. Loading a new schedule
// replaces the previous one; loaded schedules are never mutated.
type ScheduleService interface {
	// LoadCSV parses a three-column CSV (date, morning label, afternoon
	// label), drops rows whose date is not strict YYYY-MM-DD, and installs
	// the result as the current schedule.
	LoadCSV(r io.Reader) (*models.Schedule, error)
	// Current returns the active schedule, or apperrors.ErrNoSchedule when
	// nothing has been loaded yet.
	Current() (*models.Schedule, error)
}

// scheduleServiceImpl implements the ScheduleService interface
type scheduleServiceImpl struct {
	location *time.Location
	logger   zerolog.Logger

	mu      sync.RWMutex
	current *models.Schedule
}

// NewScheduleService creates a new schedule service instance
func NewScheduleService(location *time.Location, logger zerolog.Logger) ScheduleService {
	return &scheduleServiceImpl{
		location: location,
		logger:   logger,
	}
}

func (s *scheduleServiceImpl) LoadCSV(r io.Reader) (*models.Schedule, error) {
	reader := csv.NewReader(r)
	// Column position is load-bearing, column count is not: short rows are
	// handled below rather than failing the whole file.
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	sessions := make([]models.Session, 0, 64)
	dropped := 0

	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, apperrors.NewCustomError(apperrors.ErrUnreadableFile, fmt.Sprintf("malformed CSV: %v", err))
		}

		session, ok := s.parseRow(record)
		if !ok {
			// Header rows fail the strict date parse and land here too.
			dropped++
			continue
		}
		sessions = append(sessions, session)
	}

	if len(sessions) == 0 {
		s.logger.Warn().Int("droppedRows", dropped).Msg("Uploaded schedule contains no valid sessions")
		return nil, apperrors.ErrEmptySchedule
	}

	// Stable sort keeps same-date rows in their original relative order.
	sort.SliceStable(sessions, func(i, j int) bool {
		return sessions[i].Date.Before(sessions[j].Date)
	})

	schedule := &models.Schedule{
		ID:          uuid.New(),
		Sessions:    sessions,
		DroppedRows: dropped,
		LoadedAt:    time.Now(),
	}

	s.mu.Lock()
	s.current = schedule
	s.mu.Unlock()

	s.logger.Info().
		Str("scheduleId", schedule.ID.String()).
		Int("sessions", len(sessions)).
		Int("droppedRows", dropped).
		Str("firstDate", schedule.FirstDate().Format(dateLayout)).
		Str("lastDate", schedule.LastDate().Format(dateLayout)).
		Msg("Schedule loaded")

	return schedule, nil
}

// parseRow maps one CSV record onto a session. The date must parse strictly
// as YYYY-MM-DD and is bound to local midnight in the program zone.
func (s *scheduleServiceImpl) parseRow(record []string) (models.Session, bool) {
	if len(record) == 0 {
		return models.Session{}, false
	}

	date, err := time.ParseInLocation(dateLayout, strings.TrimSpace(record[0]), s.location)
	if err != nil {
		return models.Session{}, false
	}

	session := models.Session{Date: date}
	if len(record) > 1 {
		session.MorningLabel = strings.TrimSpace(record[1])
	}
	if len(record) > 2 {
		session.AfternoonLabel = strings.TrimSpace(record[2])
	}
	return session, true
}

func (s *scheduleServiceImpl) Current() (*models.Schedule, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if s.current == nil {
		return nil, apperrors.ErrNoSchedule
	}
	return s.current, nil
}
