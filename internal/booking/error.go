package booking

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDateOrder       = errors.New("check-out must be after check-in")
	ErrDateInPast             = errors.New("date is in the past")
	ErrBookingNotFound        = errors.New("booking not found")
	ErrConcurrentModification = errors.New("booking store modified concurrently")
	ErrFlowState              = errors.New("invalid booking flow state")
	ErrNextID                 = errors.New("get next id from generator")
)

// IncompleteBookingError reports every gate a draft still fails, keyed by
// field. Returning it never mutates the draft or the store.
type IncompleteBookingError struct {
	fields map[string][]string
}

func newIncompleteBookingError() *IncompleteBookingError {
	return &IncompleteBookingError{
		fields: make(map[string][]string),
	}
}

func IsIncompleteBookingError(err error) *IncompleteBookingError {
	if err == nil {
		return nil
	}

	var incompleteErr *IncompleteBookingError

	if errors.As(err, &incompleteErr) {
		return incompleteErr
	}

	return nil
}

func (e *IncompleteBookingError) fieldsCount() int {
	return len(e.fields)
}

func (e *IncompleteBookingError) addError(field, msg string) {
	e.fields[field] = append(e.fields[field], msg)
}

func (e *IncompleteBookingError) Error() string {
	return fmt.Sprintf("booking incomplete: %+v", e.fields)
}

func (e *IncompleteBookingError) Fields() map[string][]string {
	return e.fields
}
