package booking

import "time"

// Hotel is a read-only snapshot of a catalog entry. It is copied into a
// draft when a flow starts and must not change for the flow's lifetime.
type Hotel struct {
	ID                  string  `json:"id"`
	Name                string  `json:"name"`
	Location            string  `json:"location"`
	NightlyRate         float64 `json:"nightly_rate"`
	OriginalNightlyRate float64 `json:"original_nightly_rate,omitempty"`
	Image               string  `json:"image,omitempty"`
}

// DiscountPercent is display-only: the charged rate is always NightlyRate.
func (h Hotel) DiscountPercent() float64 {
	if h.OriginalNightlyRate <= h.NightlyRate || h.OriginalNightlyRate <= 0 {
		return 0
	}

	return (h.OriginalNightlyRate - h.NightlyRate) / h.OriginalNightlyRate * 100 //nolint:gomnd
}

type GuestInfo struct {
	Name  string `json:"name" validate:"required"`
	Email string `json:"email" validate:"required,email"`
	Phone string `json:"phone" validate:"required"`
}

// GuestInfoPatch carries the fields a caller wants to change. A nil field
// leaves the current value alone.
type GuestInfoPatch struct {
	Name  *string
	Email *string
	Phone *string
}

type PaymentKind string

const (
	PaymentCash PaymentKind = "cash"
	PaymentCard PaymentKind = "card"
)

// CardOnFile holds everything the app may retain about a card. There is
// deliberately no field for the full number.
type CardOnFile struct {
	Last4      string `json:"last4"`
	Expiry     string `json:"expiry"`
	HolderName string `json:"holder_name"`
}

// NewCardOnFile strips a card number down to its last four digits.
func NewCardOnFile(number, expiry, holderName string) CardOnFile {
	last4 := number
	if len(number) > 4 { //nolint:gomnd
		last4 = number[len(number)-4:]
	}

	return CardOnFile{
		Last4:      last4,
		Expiry:     expiry,
		HolderName: holderName,
	}
}

type PaymentMethod struct {
	Kind PaymentKind `json:"kind"`
	Card *CardOnFile `json:"card,omitempty"`
}

type Status string

const (
	StatusUpcoming  Status = "upcoming"
	StatusCompleted Status = "completed"
	StatusCancelled Status = "cancelled"
)

// Booking is a finalized reservation. Everything except Status is immutable
// once persisted.
type Booking struct {
	ID          string        `json:"id"`
	Hotel       Hotel         `json:"hotel"`
	CheckIn     time.Time     `json:"check_in"`
	CheckOut    time.Time     `json:"check_out"`
	Guests      int           `json:"guests"`
	Rooms       int           `json:"rooms"`
	GuestInfo   GuestInfo     `json:"guest_info"`
	Payment     PaymentMethod `json:"payment"`
	TotalPrice  float64       `json:"total_price"`
	Status      Status        `json:"status"`
	BookingDate time.Time     `json:"booking_date"`
}

// Receipt is the derived view shown after a booking is finalized. The
// breakdown is recomputed from the stored inputs, never stored itself.
type Receipt struct {
	BookingID string
	Hotel     string
	Location  string
	CheckIn   time.Time
	CheckOut  time.Time
	Guests    int
	Rooms     int
	Breakdown Breakdown
	IssuedAt  time.Time
}

func (b *Booking) Receipt(issuedAt time.Time) Receipt {
	checkIn, checkOut := b.CheckIn, b.CheckOut

	return Receipt{
		BookingID: b.ID,
		Hotel:     b.Hotel.Name,
		Location:  b.Hotel.Location,
		CheckIn:   checkIn,
		CheckOut:  checkOut,
		Guests:    b.Guests,
		Rooms:     b.Rooms,
		Breakdown: ComputeBreakdown(b.Hotel.NightlyRate, Nights(&checkIn, &checkOut), b.Rooms),
		IssuedAt:  issuedAt,
	}
}

// Store is the persisted aggregate: one ordered partition per status.
// The version stamp guards Save against clobbering a concurrent write.
type Store struct {
	Version   int64     `json:"version"`
	Upcoming  []Booking `json:"upcoming"`
	Completed []Booking `json:"completed"`
	Cancelled []Booking `json:"cancelled"`
}

func NewStore() *Store {
	return &Store{
		Version:   0,
		Upcoming:  []Booking{},
		Completed: []Booking{},
		Cancelled: []Booking{},
	}
}

func (s *Store) Partition(status Status) []Booking {
	switch status {
	case StatusUpcoming:
		return s.Upcoming
	case StatusCompleted:
		return s.Completed
	case StatusCancelled:
		return s.Cancelled
	}

	return nil
}
