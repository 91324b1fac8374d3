package rediskv

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/staybook/staybook/internal/logger"
)

type Config struct {
	L            *logger.Logger
	Addr         string
	Password     string
	DB           int
	DialTimeout  time.Duration
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
}

type DB struct {
	l      *logger.Logger
	client *redis.Client
}

func New(ctx context.Context, conf Config) (*DB, error) {
	client := redis.NewClient(&redis.Options{ //nolint:exhaustruct
		Addr:         conf.Addr,
		Password:     conf.Password,
		DB:           conf.DB,
		DialTimeout:  conf.DialTimeout,
		ReadTimeout:  conf.ReadTimeout,
		WriteTimeout: conf.WriteTimeout,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		client.Close()

		return nil, fmt.Errorf("ping redis at %v: %w", conf.Addr, err)
	}

	return &DB{
		l:      conf.L,
		client: client,
	}, nil
}

func (db *DB) Get(ctx context.Context, key string) (string, bool, error) {
	value, err := db.client.Get(ctx, key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}

	if err != nil {
		return "", false, fmt.Errorf("get %v from redis: %w", key, err)
	}

	return value, true, nil
}

func (db *DB) Set(ctx context.Context, key, value string) error {
	if err := db.client.Set(ctx, key, value, 0).Err(); err != nil {
		return fmt.Errorf("set %v in redis: %w", key, err)
	}

	return nil
}

func (db *DB) Close() error {
	if err := db.client.Close(); err != nil {
		return fmt.Errorf("close redis client: %w", err)
	}

	return nil
}
