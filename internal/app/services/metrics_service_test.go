package services

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/emre/progtrack/internal/app/models"
	"github.com/emre/progtrack/internal/pkg/apperrors"
)

func day(t *testing.T, date string) time.Time {
	t.Helper()
	parsed, err := time.ParseInLocation("2006-01-02", date, time.UTC)
	require.NoError(t, err)
	return parsed
}

func testSchedule(t *testing.T, sessions ...models.Session) *models.Schedule {
	t.Helper()
	return &models.Schedule{
		ID:       uuid.New(),
		Sessions: sessions,
		LoadedAt: time.Now(),
	}
}

func session(t *testing.T, date, am, pm string) models.Session {
	t.Helper()
	return models.Session{Date: day(t, date), MorningLabel: am, AfternoonLabel: pm}
}

func TestComputeUniquePerDayClassCount(t *testing.T) {
	// Duplicate same-day identical label counts once; the same course on a
	// later date counts again.
	schedule := testSchedule(t,
		session(t, "2025-01-06", "Strategy 1", ""),
		session(t, "2025-01-06", "Strategy 1", ""),
		session(t, "2025-01-13", "Strategy 2", ""),
	)

	svc := NewMetricsService(MetricsConfig{Location: time.UTC})
	snapshot, err := svc.Compute(schedule, day(t, "2025-01-01"))
	require.NoError(t, err)

	assert.Equal(t, 2, snapshot.ClassesLeftToProgramEnd)
	assert.Equal(t, 1, snapshot.CoursesLeft)
}

func TestComputeCountsBothSlots(t *testing.T) {
	schedule := testSchedule(t,
		session(t, "2025-01-06", "Strategy 1", "Corporate Finance"),
		session(t, "2025-01-06", "strategy  1", ""), // same label after normalization
	)

	svc := NewMetricsService(MetricsConfig{Location: time.UTC})
	snapshot, err := svc.Compute(schedule, day(t, "2025-01-01"))
	require.NoError(t, err)

	assert.Equal(t, 2, snapshot.ClassesLeftToProgramEnd)
	// The afternoon course never contributes while a morning label exists.
	assert.Equal(t, 1, snapshot.CoursesLeft)
}

func TestComputeYearEndIsSubsetOfProgramEnd(t *testing.T) {
	schedule := testSchedule(t,
		session(t, "2025-10-06", "Strategy 1", ""),
		session(t, "2025-12-08", "Strategy 2", ""),
		session(t, "2026-01-12", "Capstone", ""),
	)

	svc := NewMetricsService(MetricsConfig{Location: time.UTC})
	snapshot, err := svc.Compute(schedule, day(t, "2025-09-01"))
	require.NoError(t, err)

	assert.Equal(t, 3, snapshot.ClassesLeftToProgramEnd)
	assert.Equal(t, 2, snapshot.ClassesLeftToYearEnd)
	assert.GreaterOrEqual(t, snapshot.ClassesLeftToProgramEnd, snapshot.ClassesLeftToYearEnd)
}

func TestComputeIgnoresPastSessions(t *testing.T) {
	schedule := testSchedule(t,
		session(t, "2024-11-04", "Accounting 1", ""),
		session(t, "2025-01-06", "Strategy 1", ""),
	)

	svc := NewMetricsService(MetricsConfig{Location: time.UTC})
	snapshot, err := svc.Compute(schedule, day(t, "2025-01-01"))
	require.NoError(t, err)

	assert.Equal(t, 1, snapshot.ClassesLeftToProgramEnd)
	assert.Len(t, snapshot.Upcoming, 1)
	assert.Equal(t, "Strategy 1", snapshot.Upcoming[0].MorningLabel)
}

func TestComputeSessionCountsForWholeOfItsDay(t *testing.T) {
	schedule := testSchedule(t,
		session(t, "2025-01-06", "Strategy 1", ""),
	)

	svc := NewMetricsService(MetricsConfig{Location: time.UTC})

	// Mid-morning on class day: the session still counts until midnight.
	now := time.Date(2025, 1, 6, 10, 30, 0, 0, time.UTC)
	snapshot, err := svc.Compute(schedule, now)
	require.NoError(t, err)

	assert.Equal(t, 1, snapshot.ClassesLeftToProgramEnd)
}

func TestComputeWeekendExclusionWindow(t *testing.T) {
	// Both sessions share ISO week 2025-W33; excluding one must not remove
	// the bucket the other still occupies.
	inWindow := session(t, "2025-08-16", "Residency", "")
	outOfWindow := session(t, "2025-08-11", "Strategy 1", "")
	nextWeek := session(t, "2025-08-23", "Strategy 2", "")

	base := MetricsConfig{Location: time.UTC}
	withWindow := MetricsConfig{
		Location:       time.UTC,
		ExclusionStart: day(t, "2025-08-15"),
		ExclusionEnd:   time.Date(2025, 8, 17, 23, 59, 59, 0, time.UTC),
		HasExclusion:   true,
	}
	now := day(t, "2025-08-01")

	schedule := testSchedule(t, outOfWindow, inWindow, nextWeek)

	plain, err := NewMetricsService(base).Compute(schedule, now)
	require.NoError(t, err)
	assert.Equal(t, 2, plain.ClassWeekendsLeft)
	assert.Len(t, plain.WeekendSessions, 3)

	excluded, err := NewMetricsService(withWindow).Compute(schedule, now)
	require.NoError(t, err)
	// Same week still counted through the non-excluded session.
	assert.Equal(t, 2, excluded.ClassWeekendsLeft)
	assert.Len(t, excluded.WeekendSessions, 2)

	// Drop the companion session and the excluded week disappears.
	lonely := testSchedule(t, inWindow, nextWeek)
	lonelySnapshot, err := NewMetricsService(withWindow).Compute(lonely, now)
	require.NoError(t, err)
	assert.Equal(t, 1, lonelySnapshot.ClassWeekendsLeft)

	// The exclusion window never touches the class counts.
	assert.Equal(t, 2, lonelySnapshot.ClassesLeftToProgramEnd)
}

func TestComputeCoursesLeftBoundedByFullScheduleCourses(t *testing.T) {
	// Past sessions contribute base courses to the full schedule but not,
	// once elapsed, to the remaining count.
	schedule := testSchedule(t,
		session(t, "2024-10-07", "Accounting 1", ""),
		session(t, "2024-11-04", "Economics: Micro", ""),
		session(t, "2025-01-06", "Strategy 1", ""),
		session(t, "2025-01-13", "Strategy 2", ""),
	)
	// Distinct base courses over the full schedule: accounting, economics, strategy.
	fullScheduleCourses := 3

	svc := NewMetricsService(MetricsConfig{Location: time.UTC})
	snapshot, err := svc.Compute(schedule, day(t, "2025-01-01"))
	require.NoError(t, err)

	assert.Equal(t, 1, snapshot.CoursesLeft)
	assert.LessOrEqual(t, snapshot.CoursesLeft, fullScheduleCourses)

	// Moving the reference instant earlier can only grow the count, still
	// within the full-schedule bound.
	earlier, err := svc.Compute(schedule, day(t, "2024-09-01"))
	require.NoError(t, err)
	assert.Equal(t, fullScheduleCourses, earlier.CoursesLeft)
	assert.LessOrEqual(t, earlier.CoursesLeft, fullScheduleCourses)
}

func TestComputeLastClassDayPinnedByFinalMarker(t *testing.T) {
	schedule := testSchedule(t,
		session(t, "2025-10-06", "Strategy 1", ""),
		session(t, "2025-11-15", "Capstone Presentations", ""),
		session(t, "2025-12-08", "Electives Workshop", ""),
	)

	svc := NewMetricsService(MetricsConfig{Location: time.UTC, FinalMarker: "capstone"})
	snapshot, err := svc.Compute(schedule, day(t, "2025-09-01"))
	require.NoError(t, err)

	assert.Equal(t, day(t, "2025-11-15"), snapshot.LastClassDay)

	target := time.Date(2025, 11, 15, 23, 59, 59, 0, time.UTC)
	assert.Equal(t, target.Sub(day(t, "2025-09-01")), snapshot.TimeRemaining)
}

func TestComputeLastClassDayWithoutMarkerMatch(t *testing.T) {
	schedule := testSchedule(t,
		session(t, "2025-10-06", "Strategy 1", ""),
		session(t, "2025-12-08", "Electives Workshop", ""),
	)

	svc := NewMetricsService(MetricsConfig{Location: time.UTC, FinalMarker: "capstone"})
	snapshot, err := svc.Compute(schedule, day(t, "2025-09-01"))
	require.NoError(t, err)

	assert.Equal(t, day(t, "2025-12-08"), snapshot.LastClassDay)
}

func TestComputeMarkerMatchesAfternoonLabel(t *testing.T) {
	schedule := testSchedule(t,
		session(t, "2025-11-15", "", "CAPSTONE wrap-up"),
		session(t, "2025-12-08", "Electives", ""),
	)

	svc := NewMetricsService(MetricsConfig{Location: time.UTC, FinalMarker: "capstone"})
	snapshot, err := svc.Compute(schedule, day(t, "2025-09-01"))
	require.NoError(t, err)

	assert.Equal(t, day(t, "2025-11-15"), snapshot.LastClassDay)
}

func TestComputeAfterProgramEnd(t *testing.T) {
	schedule := testSchedule(t,
		session(t, "2025-01-06", "Strategy 1", ""),
	)

	svc := NewMetricsService(MetricsConfig{Location: time.UTC})
	snapshot, err := svc.Compute(schedule, day(t, "2025-06-01"))
	require.NoError(t, err)

	assert.Equal(t, 0, snapshot.ClassesLeftToProgramEnd)
	assert.Equal(t, 0, snapshot.ClassWeekendsLeft)
	assert.Equal(t, 0, snapshot.CoursesLeft)
	assert.Empty(t, snapshot.Upcoming)
	assert.Negative(t, snapshot.TimeRemaining)
}

func TestComputeEmptySchedule(t *testing.T) {
	svc := NewMetricsService(MetricsConfig{Location: time.UTC})

	_, err := svc.Compute(nil, day(t, "2025-01-01"))
	assert.ErrorIs(t, err, apperrors.ErrEmptySchedule)

	_, err = svc.Compute(testSchedule(t), day(t, "2025-01-01"))
	assert.ErrorIs(t, err, apperrors.ErrEmptySchedule)
}

func TestComputeIsDeterministic(t *testing.T) {
	schedule := testSchedule(t,
		session(t, "2025-01-06", "Strategy 1", "Corporate Finance"),
		session(t, "2025-01-13", "Strategy 2", ""),
		session(t, "2025-02-10", "Marketing: Core", "Leadership Lab"),
	)

	svc := NewMetricsService(MetricsConfig{Location: time.UTC, FinalMarker: "leadership"})
	now := day(t, "2025-01-01")

	first, err := svc.Compute(schedule, now)
	require.NoError(t, err)
	second, err := svc.Compute(schedule, now)
	require.NoError(t, err)

	assert.Equal(t, first, second)
}
