// Package kv defines the on-device key-value primitive the persistence
// gateway runs on: one opaque string document per well-known key.
package kv

import "context"

type Store interface {
	// Get returns the stored value. ok is false when the key is absent,
	// which is not an error: first use of the app finds nothing.
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	// Set overwrites the whole value for the key.
	Set(ctx context.Context, key, value string) error
}
