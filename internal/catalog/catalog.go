// Package catalog is the hotel inventory the booking flow reads from. The
// core treats hotels as immutable snapshots; this sample set mirrors the
// app's home screen.
package catalog

import "github.com/staybook/staybook/internal/booking"

type Catalog struct {
	hotels []booking.Hotel
}

func Sample() *Catalog {
	return &Catalog{
		hotels: []booking.Hotel{
			{
				ID:                  "1",
				Name:                "Elysium Gardens",
				Location:            "Paris, France",
				NightlyRate:         1500,
				OriginalNightlyRate: 0,
				Image:               "https://images.unsplash.com/photo-1566073771259-6a8506099945?w=500&h=300&fit=crop",
			},
			{
				ID:                  "2",
				Name:                "Azure Heights Resort",
				Location:            "Rome, Italy",
				NightlyRate:         1200,
				OriginalNightlyRate: 0,
				Image:               "https://images.unsplash.com/photo-1551882547-ff40c63fe5fa?w=500&h=300&fit=crop",
			},
			{
				ID:                  "3",
				Name:                "Solara Springs Hotel",
				Location:            "London, UK",
				NightlyRate:         950,
				OriginalNightlyRate: 1100,
				Image:               "https://images.unsplash.com/photo-1542314831-068cd1dbfeeb?w=500&h=300&fit=crop",
			},
		},
	}
}

func (c *Catalog) All() []booking.Hotel {
	out := make([]booking.Hotel, len(c.hotels))
	copy(out, c.hotels)

	return out
}

func (c *Catalog) ByID(id string) (booking.Hotel, bool) {
	for _, hotel := range c.hotels {
		if hotel.ID == id {
			return hotel, true
		}
	}

	return booking.Hotel{}, false //nolint:exhaustruct
}
