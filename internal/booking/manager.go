package booking

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/trace"

	"github.com/staybook/staybook/internal/logger"
)

type idGenerator interface {
	GetID(ctx context.Context) (string, error)
}

// bookingStore is the persistence gateway: the whole aggregate in, the
// whole aggregate out. Save rewrites the single durable document.
type bookingStore interface {
	Load(ctx context.Context) (*Store, error)
	Save(ctx context.Context, store *Store) error
}

// Manager orchestrates the draft -> finalize -> cancel lifecycle.
type Manager struct {
	l           *logger.Logger
	store       bookingStore
	idGenerator idGenerator
	now         func() time.Time
}

func New(l *logger.Logger, store bookingStore, idGenerator idGenerator, now func() time.Time) *Manager {
	if now == nil {
		now = time.Now
	}

	return &Manager{
		l:           l,
		store:       store,
		idGenerator: idGenerator,
		now:         now,
	}
}

func (m *Manager) validateDraft(d *Draft) error {
	incompleteErr := newIncompleteBookingError()

	if !d.ReadyForPayment() {
		incompleteErr.addError("dates", "select check-in and check-out dates")
	}

	if err := d.guestInfoErrors(); err != nil {
		if fieldErrs := IsIncompleteBookingError(err); fieldErrs != nil {
			for field, msgs := range fieldErrs.Fields() {
				for _, msg := range msgs {
					incompleteErr.addError(field, msg)
				}
			}
		}
	}

	if incompleteErr.fieldsCount() > 0 {
		return incompleteErr
	}

	return nil
}

// Finalize turns a complete draft into a persisted upcoming booking. It is
// all-or-nothing: an incomplete draft or a failed save leaves both the
// draft and the stored aggregate exactly as they were.
func (m *Manager) Finalize(ctx context.Context, d *Draft) (*Booking, error) {
	if d.State() == StateFinalized {
		return nil, fmt.Errorf("draft already finalized, start a new flow: %w", ErrFlowState)
	}

	if err := m.validateDraft(d); err != nil {
		return nil, err
	}

	id, err := m.idGenerator.GetID(ctx)
	if err != nil {
		return nil, ErrNextID
	}

	now := m.now().UTC()

	record := Booking{
		ID:          id,
		Hotel:       d.Hotel(),
		CheckIn:     *d.CheckIn(),
		CheckOut:    *d.CheckOut(),
		Guests:      d.Guests(),
		Rooms:       d.Rooms(),
		GuestInfo:   d.GuestInfo(),
		Payment:     d.Payment(),
		TotalPrice:  d.Breakdown().Total,
		Status:      StatusUpcoming,
		BookingDate: now,
	}

	store, err := m.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load booking store: %w", err)
	}

	store.Upcoming = append(store.Upcoming, record)

	if err := m.store.Save(ctx, store); err != nil {
		return nil, fmt.Errorf("save booking store: %w", err)
	}

	d.markFinalized()

	m.l.LogInfo(
		"type: booking_finalized, id: %v, hotel: %v, total: %.2f, flowID: %v, traceID: %v",
		record.ID,
		record.Hotel.Name,
		RoundCurrency(record.TotalPrice),
		flowIDForLog(ctx),
		traceIDFromContext(ctx),
	)

	return &record, nil
}

// Cancel moves a booking from upcoming to cancelled, preserving every other
// field. Bookings in completed or already in cancelled cannot be cancelled;
// history is never deleted.
func (m *Manager) Cancel(ctx context.Context, bookingID string) error {
	store, err := m.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load booking store: %w", err)
	}

	idx := -1

	for i := range store.Upcoming {
		if store.Upcoming[i].ID == bookingID {
			idx = i

			break
		}
	}

	if idx == -1 {
		return fmt.Errorf("booking %v is not in upcoming: %w", bookingID, ErrBookingNotFound)
	}

	record := store.Upcoming[idx]
	record.Status = StatusCancelled

	store.Upcoming = append(store.Upcoming[:idx], store.Upcoming[idx+1:]...)
	store.Cancelled = append(store.Cancelled, record)

	if err := m.store.Save(ctx, store); err != nil {
		return fmt.Errorf("save booking store: %w", err)
	}

	m.l.LogInfo(
		"type: booking_cancelled, id: %v, flowID: %v, traceID: %v",
		bookingID,
		flowIDForLog(ctx),
		traceIDFromContext(ctx),
	)

	return nil
}

// ListByStatus returns the partition as stored, insertion order preserved.
func (m *Manager) ListByStatus(ctx context.Context, status Status) ([]Booking, error) {
	store, err := m.store.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load booking store: %w", err)
	}

	partition := store.Partition(status)
	out := make([]Booking, len(partition))
	copy(out, partition)

	return out, nil
}

// CompleteElapsed moves upcoming bookings whose check-out day has passed
// into the completed partition. It returns how many moved and skips the
// write entirely when nothing changed.
func (m *Manager) CompleteElapsed(ctx context.Context) (int, error) {
	store, err := m.store.Load(ctx)
	if err != nil {
		return 0, fmt.Errorf("load booking store: %w", err)
	}

	today := DayOf(m.now())
	remaining := store.Upcoming[:0]
	moved := 0

	for _, record := range store.Upcoming {
		if DayOf(record.CheckOut).Before(today) {
			record.Status = StatusCompleted
			store.Completed = append(store.Completed, record)
			moved++

			continue
		}

		remaining = append(remaining, record)
	}

	if moved == 0 {
		return 0, nil
	}

	store.Upcoming = remaining

	if err := m.store.Save(ctx, store); err != nil {
		return 0, fmt.Errorf("save booking store: %w", err)
	}

	m.l.LogInfo("type: bookings_completed, moved: %v", moved)

	return moved, nil
}

func traceIDFromContext(ctx context.Context) string {
	if sc := trace.SpanContextFromContext(ctx); sc.IsValid() {
		return sc.TraceID().String()
	}

	return ""
}

func flowIDForLog(ctx context.Context) string {
	id, _ := FlowIDFromContext(ctx)

	return id
}
