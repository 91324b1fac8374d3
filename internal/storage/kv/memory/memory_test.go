package memory_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/staybook/staybook/internal/logger"
	"github.com/staybook/staybook/internal/storage/kv/memory"
)

func TestGetAbsentKey(t *testing.T) {
	db := memory.New(memory.Config{L: logger.NewNop()})

	value, ok, err := db.Get(context.Background(), "userBookings")

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, value)
}

func TestSetOverwrites(t *testing.T) {
	ctx := context.Background()
	db := memory.New(memory.Config{L: logger.NewNop()})

	require.NoError(t, db.Set(ctx, "userBookings", `{"version":1}`))
	require.NoError(t, db.Set(ctx, "userBookings", `{"version":2}`))

	value, ok, err := db.Get(ctx, "userBookings")

	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, `{"version":2}`, value)
}
