package booking

import (
	"math"
	"time"
)

const (
	taxRate     = 0.10
	serviceFee  = 25.0
	hoursPerDay = 24
)

// Breakdown is the derived price decomposition for a draft or booking.
// A breakdown with zero nights charges nothing at all: the flat fee is
// suppressed, not folded into a zero-night total.
type Breakdown struct {
	Nights     int     `json:"nights"`
	BasePrice  float64 `json:"base_price"`
	Tax        float64 `json:"tax"`
	ServiceFee float64 `json:"service_fee"`
	Total      float64 `json:"total"`
}

// Priced reports whether the breakdown carries a chargeable total. Callers
// hide the total entirely when it is false.
func (b Breakdown) Priced() bool {
	return b.Nights > 0
}

// Nights returns the whole-day length of the stay. Absent dates, a same-day
// pair, or an inverted pair all count as zero nights, never negative.
func Nights(checkIn, checkOut *time.Time) int {
	if checkIn == nil || checkOut == nil {
		return 0
	}

	nights := int(math.Ceil(DayOf(*checkOut).Sub(DayOf(*checkIn)).Hours() / hoursPerDay))
	if nights < 0 {
		return 0
	}

	return nights
}

// ComputeBreakdown is pure arithmetic: base = rate x nights x rooms,
// tax = 10% of base, flat service fee, no intermediate rounding. Negative
// rates are the caller's responsibility to avoid.
func ComputeBreakdown(nightlyRate float64, nights, rooms int) Breakdown {
	if nights <= 0 {
		return Breakdown{} //nolint:exhaustruct
	}

	base := nightlyRate * float64(nights) * float64(rooms)
	tax := base * taxRate

	return Breakdown{
		Nights:     nights,
		BasePrice:  base,
		Tax:        tax,
		ServiceFee: serviceFee,
		Total:      base + tax + serviceFee,
	}
}

// RoundCurrency rounds to 2 decimal places for presentation. Internal
// arithmetic keeps full precision.
func RoundCurrency(v float64) float64 {
	return math.Round(v*100) / 100 //nolint:gomnd
}
