package catalog_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staybook/staybook/internal/catalog"
)

func TestByID(t *testing.T) {
	hotels := catalog.Sample()

	hotel, ok := hotels.ByID("1")
	require.True(t, ok)
	assert.Equal(t, "Elysium Gardens", hotel.Name)
	assert.InDelta(t, 1500.0, hotel.NightlyRate, 1e-9)

	_, ok = hotels.ByID("missing")
	assert.False(t, ok)
}

func TestDiscountOnlyWhereOriginalRateIsHigher(t *testing.T) {
	hotels := catalog.Sample()

	solara, ok := hotels.ByID("3")
	require.True(t, ok)
	assert.Greater(t, solara.DiscountPercent(), 0.0)

	elysium, ok := hotels.ByID("1")
	require.True(t, ok)
	assert.Zero(t, elysium.DiscountPercent())
}
