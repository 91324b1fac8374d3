package gormkv_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staybook/staybook/internal/logger"
	"github.com/staybook/staybook/internal/storage/kv/gormkv"
)

func open(t *testing.T, path string) *gormkv.DB {
	t.Helper()

	db, err := gormkv.New(gormkv.Config{L: logger.NewNop(), Path: path})
	require.NoError(t, err)

	t.Cleanup(func() {
		require.NoError(t, db.Close())
	})

	return db
}

func TestGetAbsentKey(t *testing.T) {
	db := open(t, filepath.Join(t.TempDir(), "staybook.db"))

	value, ok, err := db.Get(context.Background(), "userBookings")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestSetGetRoundTrip(t *testing.T) {
	ctx := context.Background()
	db := open(t, filepath.Join(t.TempDir(), "staybook.db"))

	require.NoError(t, db.Set(ctx, "userBookings", `{"version":1}`))

	value, ok, err := db.Get(ctx, "userBookings")

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"version":1}`, value)
}

func TestSetUpserts(t *testing.T) {
	ctx := context.Background()
	db := open(t, filepath.Join(t.TempDir(), "staybook.db"))

	require.NoError(t, db.Set(ctx, "userBookings", `{"version":1}`))
	require.NoError(t, db.Set(ctx, "userBookings", `{"version":2}`))

	value, ok, err := db.Get(ctx, "userBookings")

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"version":2}`, value)
}
