package models

import "time"

// MetricsSnapshot is the engine output for one (schedule, reference instant)
// pair. All counts are non-negative; TimeRemaining may be negative once the
// program has ended.
type MetricsSnapshot struct {
	// ClassesLeftToProgramEnd counts distinct normalized labels once per
	// calendar day per label, from the reference instant to program end.
	ClassesLeftToProgramEnd int
	// ClassesLeftToYearEnd is the same count bounded by Dec 31 23:59:59 of
	// the reference instant's year.
	ClassesLeftToYearEnd int
	// ClassWeekendsLeft counts distinct ISO calendar weeks among remaining
	// sessions, after removing sessions inside the exclusion window.
	ClassWeekendsLeft int
	// CoursesLeft counts distinct base courses among remaining sessions.
	CoursesLeft int
	// LastClassDay is the final session date, possibly pinned by a
	// final-marker label match.
	LastClassDay time.Time
	// TimeRemaining is LastClassDay 23:59:59 local minus the reference
	// instant.
	TimeRemaining time.Duration

	// Display lists for the presentation layer.
	Upcoming        []Session
	WeekendSessions []Session
}
