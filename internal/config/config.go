package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Backend string

const (
	BackendMemory Backend = "memory"
	BackendFile   Backend = "file"
	BackendRedis  Backend = "redis"
	BackendSQLite Backend = "sqlite"
)

// Profile is the traveller's saved identity and card on file. The original
// app hardcoded these into its screens; here they come from the
// environment. Only the last four card digits are ever configured.
type Profile struct {
	GuestName  string
	GuestEmail string
	GuestPhone string

	PaymentKind string
	CardLast4   string
	CardExpiry  string
	CardHolder  string
}

type Config struct {
	Backend Backend

	DataDir    string
	SQLitePath string

	RedisAddr     string
	RedisPassword string
	RedisDB       int

	StoreKey string

	Profile Profile
}

func Load() (*Config, error) {
	_ = godotenv.Load()

	conf := &Config{
		Backend:       Backend(getEnv("STAYBOOK_BACKEND", string(BackendFile))),
		DataDir:       getEnv("STAYBOOK_DATA_DIR", "./data"),
		SQLitePath:    getEnv("STAYBOOK_SQLITE_PATH", "./data/staybook.db"),
		RedisAddr:     getEnv("STAYBOOK_REDIS_ADDR", "localhost:6379"),
		RedisPassword: getEnv("STAYBOOK_REDIS_PASSWORD", ""),
		RedisDB:       getEnvInt("STAYBOOK_REDIS_DB", 0),
		StoreKey:      getEnv("STAYBOOK_STORE_KEY", "userBookings"),
		Profile: Profile{
			GuestName:   getEnv("STAYBOOK_PROFILE_NAME", ""),
			GuestEmail:  getEnv("STAYBOOK_PROFILE_EMAIL", ""),
			GuestPhone:  getEnv("STAYBOOK_PROFILE_PHONE", ""),
			PaymentKind: getEnv("STAYBOOK_PROFILE_PAYMENT", ""),
			CardLast4:   getEnv("STAYBOOK_PROFILE_CARD_LAST4", ""),
			CardExpiry:  getEnv("STAYBOOK_PROFILE_CARD_EXPIRY", ""),
			CardHolder:  getEnv("STAYBOOK_PROFILE_CARD_HOLDER", ""),
		},
	}

	switch conf.Backend {
	case BackendMemory, BackendFile, BackendRedis, BackendSQLite:
	default:
		return nil, fmt.Errorf("unknown storage backend %q", conf.Backend)
	}

	return conf, nil
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}

	return fallback
}

func getEnvInt(key string, fallback int) int {
	value := os.Getenv(key)
	if value == "" {
		return fallback
	}

	parsed, err := strconv.Atoi(value)
	if err != nil {
		return fallback
	}

	return parsed
}
