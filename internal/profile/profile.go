// Package profile turns the configured traveller identity into draft
// defaults, keeping hardcoded sample data out of the core.
package profile

import (
	"github.com/staybook/staybook/internal/booking"
	"github.com/staybook/staybook/internal/config"
)

type Profile struct {
	Guest   booking.GuestInfo
	Payment booking.PaymentMethod
}

func FromConfig(conf config.Profile) Profile {
	p := Profile{
		Guest: booking.GuestInfo{
			Name:  conf.GuestName,
			Email: conf.GuestEmail,
			Phone: conf.GuestPhone,
		},
		Payment: booking.PaymentMethod{Kind: booking.PaymentCash, Card: nil},
	}

	if conf.PaymentKind == string(booking.PaymentCard) && conf.CardLast4 != "" {
		p.Payment = booking.PaymentMethod{
			Kind: booking.PaymentCard,
			Card: &booking.CardOnFile{
				Last4:      conf.CardLast4,
				Expiry:     conf.CardExpiry,
				HolderName: conf.CardHolder,
			},
		}
	}

	return p
}

func (p Profile) Defaults() booking.Defaults {
	return booking.Defaults{
		GuestInfo: p.Guest,
		Payment:   p.Payment,
	}
}
