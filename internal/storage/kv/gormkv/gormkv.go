// Package gormkv keeps each key as one row of a sqlite documents table.
package gormkv

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/staybook/staybook/internal/logger"
)

type document struct {
	Key   string `gorm:"primaryKey;size:255"`
	Value string
}

func (document) TableName() string {
	return "documents"
}

type Config struct {
	L    *logger.Logger
	Path string
}

type DB struct {
	l  *logger.Logger
	db *gorm.DB
}

func New(conf Config) (*DB, error) {
	db, err := gorm.Open(sqlite.Open(conf.Path), &gorm.Config{}) //nolint:exhaustruct
	if err != nil {
		return nil, fmt.Errorf("open sqlite at %v: %w", conf.Path, err)
	}

	if err := db.AutoMigrate(&document{}); err != nil {
		return nil, fmt.Errorf("migrate documents table: %w", err)
	}

	return &DB{
		l:  conf.L,
		db: db,
	}, nil
}

func (db *DB) Get(ctx context.Context, key string) (string, bool, error) {
	var doc document

	err := db.db.WithContext(ctx).First(&doc, "key = ?", key).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("select document %v: %w", key, err)
	}

	return doc.Value, true, nil
}

func (db *DB) Set(ctx context.Context, key, value string) error {
	doc := document{Key: key, Value: value}

	err := db.db.WithContext(ctx).
		Clauses(clause.OnConflict{ //nolint:exhaustruct
			Columns:   []clause.Column{{Name: "key"}}, //nolint:exhaustruct
			DoUpdates: clause.AssignmentColumns([]string{"value"}),
		}).
		Create(&doc).Error
	if err != nil {
		return fmt.Errorf("upsert document %v: %w", key, err)
	}

	return nil
}

func (db *DB) Close() error {
	sqlDB, err := db.db.DB()
	if err != nil {
		return fmt.Errorf("unwrap sql db: %w", err)
	}

	if err := sqlDB.Close(); err != nil {
		return fmt.Errorf("close sqlite: %w", err)
	}

	return nil
}
