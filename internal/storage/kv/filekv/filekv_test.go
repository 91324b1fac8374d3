package filekv_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staybook/staybook/internal/logger"
	"github.com/staybook/staybook/internal/storage/kv/filekv"
)

func TestGetAbsentKey(t *testing.T) {
	db, err := filekv.New(filekv.Config{L: logger.NewNop(), Dir: t.TempDir()})
	require.NoError(t, err)

	value, ok, err := db.Get(context.Background(), "userBookings")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestSetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	db, err := filekv.New(filekv.Config{L: logger.NewNop(), Dir: t.TempDir()})
	require.NoError(t, err)

	require.NoError(t, db.Set(ctx, "userBookings", `{"version":1,"upcoming":[]}`))

	value, ok, err := db.Get(ctx, "userBookings")

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"version":1,"upcoming":[]}`, value)
}

func TestValueSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	db, err := filekv.New(filekv.Config{L: logger.NewNop(), Dir: dir})
	require.NoError(t, err)
	require.NoError(t, db.Set(ctx, "userBookings", `{"version":3}`))

	reopened, err := filekv.New(filekv.Config{L: logger.NewNop(), Dir: dir})
	require.NoError(t, err)

	value, ok, err := reopened.Get(ctx, "userBookings")

	require.NoError(t, err)
	require.True(t, ok, "the document must survive an app restart")
	assert.Equal(t, `{"version":3}`, value)
}

func TestSetOverwritesWholeDocument(t *testing.T) {
	ctx := context.Background()
	db, err := filekv.New(filekv.Config{L: logger.NewNop(), Dir: t.TempDir()})
	require.NoError(t, err)

	require.NoError(t, db.Set(ctx, "userBookings", `{"version":1}`))
	require.NoError(t, db.Set(ctx, "userBookings", `{"version":2}`))

	value, ok, err := db.Get(ctx, "userBookings")

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"version":2}`, value)
}
