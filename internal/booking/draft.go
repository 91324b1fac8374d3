package booking

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

type FlowState string

const (
	StateDrafting          FlowState = "drafting"
	StateAwaitingPayment   FlowState = "awaiting_payment"
	StateAwaitingGuestInfo FlowState = "awaiting_guest_info"
	StateReview            FlowState = "review"
	StateFinalized         FlowState = "finalized"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// Defaults seeds a fresh draft from the traveller's saved profile.
type Defaults struct {
	GuestInfo GuestInfo
	Payment   PaymentMethod
}

// Draft is one in-progress booking flow session. Each flow gets its own
// Draft; there is no shared singleton, so concurrent flows never interfere.
type Draft struct {
	hotel    Hotel
	checkIn  *time.Time
	checkOut *time.Time
	guests   int
	rooms    int
	guest    GuestInfo
	payment  PaymentMethod
	state    FlowState
	now      func() time.Time
}

// NewDraft starts a flow for the given hotel. A nil now falls back to
// time.Now. Guests and rooms start at 1; payment defaults to cash when the
// profile carries nothing.
func NewDraft(hotel Hotel, defaults Defaults, now func() time.Time) *Draft {
	if now == nil {
		now = time.Now
	}

	payment := defaults.Payment
	if payment.Kind == "" {
		payment = PaymentMethod{Kind: PaymentCash, Card: nil}
	}

	return &Draft{
		hotel:    hotel,
		checkIn:  nil,
		checkOut: nil,
		guests:   1,
		rooms:    1,
		guest:    defaults.GuestInfo,
		payment:  payment,
		state:    StateDrafting,
		now:      now,
	}
}

func (d *Draft) Hotel() Hotel { return d.hotel }

func (d *Draft) State() FlowState { return d.state }

func (d *Draft) CheckIn() *time.Time {
	if d.checkIn == nil {
		return nil
	}

	t := *d.checkIn

	return &t
}

func (d *Draft) CheckOut() *time.Time {
	if d.checkOut == nil {
		return nil
	}

	t := *d.checkOut

	return &t
}

// SelectCheckIn sets a new check-in and always clears any check-out, so a
// check-out can never refer to a stale check-in.
func (d *Draft) SelectCheckIn(candidate time.Time) error {
	if err := ValidateCheckIn(candidate, d.now()); err != nil {
		return err
	}

	day := DayOf(candidate)
	d.checkIn = &day
	d.checkOut = nil

	return nil
}

// SelectCheckOut sets the check-out only when it validates against the
// current check-in; otherwise the draft is left untouched.
func (d *Draft) SelectCheckOut(candidate time.Time) error {
	if err := ValidateCheckOut(candidate, d.checkIn, d.now()); err != nil {
		return err
	}

	day := DayOf(candidate)
	d.checkOut = &day

	return nil
}

func (d *Draft) ClearDates() {
	d.checkIn = nil
	d.checkOut = nil
}

func (d *Draft) Guests() int { return d.guests }

func (d *Draft) Rooms() int { return d.rooms }

func (d *Draft) IncrementGuests() { d.guests++ }

func (d *Draft) DecrementGuests() {
	if d.guests > 1 {
		d.guests--
	}
}

func (d *Draft) IncrementRooms() { d.rooms++ }

func (d *Draft) DecrementRooms() {
	if d.rooms > 1 {
		d.rooms--
	}
}

func (d *Draft) GuestInfo() GuestInfo { return d.guest }

// SetGuestInfo merges the patch into the draft. Emptiness is not checked
// here: validation is a gate at transition time, not at every keystroke.
func (d *Draft) SetGuestInfo(patch GuestInfoPatch) {
	if patch.Name != nil {
		d.guest.Name = *patch.Name
	}

	if patch.Email != nil {
		d.guest.Email = *patch.Email
	}

	if patch.Phone != nil {
		d.guest.Phone = *patch.Phone
	}
}

func (d *Draft) Payment() PaymentMethod { return d.payment }

func (d *Draft) PayWithCash() {
	d.payment = PaymentMethod{Kind: PaymentCash, Card: nil}
}

// PayWithCard stores a card on file from a full card number. Only the last
// four digits survive.
func (d *Draft) PayWithCard(number, expiry, holderName string) {
	card := NewCardOnFile(number, expiry, holderName)
	d.payment = PaymentMethod{Kind: PaymentCard, Card: &card}
}

func (d *Draft) ReadyForPayment() bool {
	return d.checkIn != nil && d.checkOut != nil
}

func (d *Draft) ReadyForReview() bool {
	return validate.Struct(d.guest) == nil
}

// Breakdown is recomputed from the current draft on every call, never cached.
func (d *Draft) Breakdown() Breakdown {
	return ComputeBreakdown(d.hotel.NightlyRate, Nights(d.checkIn, d.checkOut), d.rooms)
}

// Proceed advances the wizard one step, gated on the readiness checks for
// the step being left. The Review -> Finalized transition belongs to
// Manager.Finalize and cannot be taken here.
func (d *Draft) Proceed() error {
	switch d.state {
	case StateDrafting:
		if !d.ReadyForPayment() {
			incompleteErr := newIncompleteBookingError()
			incompleteErr.addError("dates", "select check-in and check-out dates")

			return incompleteErr
		}

		d.state = StateAwaitingPayment
	case StateAwaitingPayment:
		if d.payment.Kind == "" {
			incompleteErr := newIncompleteBookingError()
			incompleteErr.addError("payment", "select a payment method")

			return incompleteErr
		}

		d.state = StateAwaitingGuestInfo
	case StateAwaitingGuestInfo:
		if err := d.guestInfoErrors(); err != nil {
			return err
		}

		d.state = StateReview
	case StateReview:
		return fmt.Errorf("finalize the booking to leave review: %w", ErrFlowState)
	case StateFinalized:
		return fmt.Errorf("flow is finalized: %w", ErrFlowState)
	}

	return nil
}

func (d *Draft) guestInfoErrors() error {
	err := validate.Struct(d.guest)
	if err == nil {
		return nil
	}

	incompleteErr := newIncompleteBookingError()

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		incompleteErr.addError("guestInfo", "provide guest details")

		return incompleteErr
	}

	for _, fieldErr := range fieldErrs {
		field := "guestInfo." + strings.ToLower(fieldErr.Field())

		if fieldErr.Tag() == "email" {
			incompleteErr.addError(field, "provide valid email")

			continue
		}

		incompleteErr.addError(field, "provide "+field)
	}

	return incompleteErr
}

func (d *Draft) markFinalized() {
	d.state = StateFinalized
}
