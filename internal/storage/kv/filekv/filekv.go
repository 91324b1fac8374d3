// Package filekv stores each key as a single JSON document on disk, the
// closest server-free analog of a mobile device's local storage.
package filekv

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/staybook/staybook/internal/logger"
)

type Config struct {
	L   *logger.Logger
	Dir string
}

type DB struct {
	mu  sync.Mutex
	l   *logger.Logger
	dir string
}

func New(conf Config) (*DB, error) {
	if err := os.MkdirAll(conf.Dir, 0o700); err != nil {
		return nil, fmt.Errorf("create data dir %v: %w", conf.Dir, err)
	}

	return &DB{
		mu:  sync.Mutex{},
		l:   conf.L,
		dir: conf.Dir,
	}, nil
}

func (db *DB) path(key string) string {
	return filepath.Join(db.dir, key+".json")
}

func (db *DB) Get(_ context.Context, key string) (string, bool, error) {
	db.mu.Lock()
	defer db.mu.Unlock()

	raw, err := os.ReadFile(db.path(key))
	if errors.Is(err, fs.ErrNotExist) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("read %v: %w", db.path(key), err)
	}

	return string(raw), true, nil
}

// Set writes through a temp file and renames it over the target, so a
// crashed write never leaves a half-written document behind.
func (db *DB) Set(_ context.Context, key, value string) error {
	db.mu.Lock()
	defer db.mu.Unlock()

	tmp, err := os.CreateTemp(db.dir, key+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file in %v: %w", db.dir, err)
	}

	if _, err := tmp.WriteString(value); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())

		return fmt.Errorf("write temp file %v: %w", tmp.Name(), err)
	}

	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("close temp file %v: %w", tmp.Name(), err)
	}

	if err := os.Rename(tmp.Name(), db.path(key)); err != nil {
		os.Remove(tmp.Name())

		return fmt.Errorf("rename %v to %v: %w", tmp.Name(), db.path(key), err)
	}

	return nil
}
