// Package gateway persists the booking aggregate as one JSON document under
// a single well-known key of the local key-value store.
package gateway

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/staybook/staybook/internal/booking"
	"github.com/staybook/staybook/internal/logger"
	"github.com/staybook/staybook/internal/storage/kv"
)

// DefaultKey matches the document key the mobile app has always used.
const DefaultKey = "userBookings"

var ErrPersistenceWrite = errors.New("booking store write failed")

type Config struct {
	L   *logger.Logger
	KV  kv.Store
	Key string
}

type Gateway struct {
	l   *logger.Logger
	kv  kv.Store
	key string
}

func New(conf Config) *Gateway {
	key := conf.Key
	if key == "" {
		key = DefaultKey
	}

	return &Gateway{
		l:   conf.L,
		kv:  conf.KV,
		key: key,
	}
}

// Load reads the whole aggregate. An absent document is first use, not an
// error: it loads as the empty three-partition store at version zero.
func (g *Gateway) Load(ctx context.Context) (*booking.Store, error) {
	raw, ok, err := g.kv.Get(ctx, g.key)
	if err != nil {
		return nil, fmt.Errorf("read booking store under %q: %w", g.key, err)
	}

	if !ok {
		return booking.NewStore(), nil
	}

	var store booking.Store

	if err := json.Unmarshal([]byte(raw), &store); err != nil {
		return nil, fmt.Errorf("decode booking store: %w", err)
	}

	return &store, nil
}

// Save rewrites the whole document. The stored version must still equal the
// version the caller loaded; otherwise another writer got there first and
// Save fails with booking.ErrConcurrentModification instead of clobbering
// its work. The caller's in-memory store is only stamped with the new
// version after the write lands.
func (g *Gateway) Save(ctx context.Context, store *booking.Store) error {
	current, err := g.storedVersion(ctx)
	if err != nil {
		return err
	}

	if current != store.Version {
		return fmt.Errorf(
			"stored version %v, loaded version %v: %w",
			current,
			store.Version,
			booking.ErrConcurrentModification,
		)
	}

	doc := *store
	doc.Version = store.Version + 1

	raw, err := json.Marshal(&doc)
	if err != nil {
		return fmt.Errorf("encode booking store: %w", err)
	}

	if err := g.kv.Set(ctx, g.key, string(raw)); err != nil {
		return fmt.Errorf("%w: %v", ErrPersistenceWrite, err)
	}

	store.Version = doc.Version

	return nil
}

func (g *Gateway) storedVersion(ctx context.Context) (int64, error) {
	raw, ok, err := g.kv.Get(ctx, g.key)
	if err != nil {
		return 0, fmt.Errorf("read booking store before save: %w", err)
	}

	if !ok {
		return 0, nil
	}

	var stamp struct {
		Version int64 `json:"version"`
	}

	if err := json.Unmarshal([]byte(raw), &stamp); err != nil {
		return 0, fmt.Errorf("decode stored version: %w", err)
	}

	return stamp.Version, nil
}
