package booking

import (
	"fmt"
	"time"
)

const dayFormat = "2006-01-02"

// DayOf normalizes a timestamp to its calendar day at midnight UTC. All
// range arithmetic and comparisons work on day-normalized values.
func DayOf(t time.Time) time.Time {
	t = t.UTC()

	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ValidateCheckIn rejects check-in dates before today.
func ValidateCheckIn(candidate, today time.Time) error {
	if DayOf(candidate).Before(DayOf(today)) {
		return fmt.Errorf("check-in %v: %w", candidate.Format(dayFormat), ErrDateInPast)
	}

	return nil
}

// ValidateCheckOut rejects past dates and anything not strictly after the
// current check-in.
func ValidateCheckOut(candidate time.Time, checkIn *time.Time, today time.Time) error {
	if DayOf(candidate).Before(DayOf(today)) {
		return fmt.Errorf("check-out %v: %w", candidate.Format(dayFormat), ErrDateInPast)
	}

	if checkIn != nil && !DayOf(candidate).After(DayOf(*checkIn)) {
		return fmt.Errorf(
			"check-out %v against check-in %v: %w",
			candidate.Format(dayFormat),
			checkIn.Format(dayFormat),
			ErrInvalidDateOrder,
		)
	}

	return nil
}
