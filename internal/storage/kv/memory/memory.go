package memory

import (
	"context"
	"sync"

	"github.com/staybook/staybook/internal/logger"
)

type Config struct {
	L *logger.Logger
}

type DB struct {
	mu      sync.Mutex
	l       *logger.Logger
	records map[string]string
}

func New(conf Config) *DB {
	return &DB{
		mu:      sync.Mutex{},
		l:       conf.L,
		records: make(map[string]string),
	}
}

func (db *DB) Get(_ context.Context, key string) (string, bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	value, ok := db.records[key]

	return value, ok, nil
}

func (db *DB) Set(_ context.Context, key, value string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	db.records[key] = value

	return nil
}
