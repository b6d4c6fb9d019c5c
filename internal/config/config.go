// Package config reads runtime settings from the environment, loading a .env
// file first when one exists.
package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strings"

	"github.com/joho/godotenv"

	"lg/nutrition-tracker-go-api/internal/logging"
	"lg/nutrition-tracker-go-api/internal/storage"
	"lg/nutrition-tracker-go-api/internal/storage/postgres"
	"lg/nutrition-tracker-go-api/internal/storage/sqlite"
)

// Storage drivers accepted in STORAGE_DRIVER.
const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"
	DriverMemory   = "memory"
)

type Config struct {
	Addr           string
	StorageDriver  string
	DBPath         string
	DBURL          string
	AllowedOrigins []string
	LogLevel       slog.Level
}

// Load reads .env (if present) and then the environment.
func Load() (Config, error) {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return Config{}, fmt.Errorf("error loading .env: %w", err)
	}
	return FromEnv(), nil
}

// FromEnv builds a Config from the current environment only.
func FromEnv() Config {
	return Config{
		Addr:           getEnv("ADDR", "localhost:3000"),
		StorageDriver:  strings.ToLower(getEnv("STORAGE_DRIVER", DriverSQLite)),
		DBPath:         getEnv("DB_PATH", "./data/nutrition.db"),
		DBURL:          os.Getenv("DB_URL"),
		AllowedOrigins: splitList(getEnv("ALLOWED_ORIGINS", "http://localhost:5173")),
		LogLevel:       logging.ParseLevel(os.Getenv("LOG_LEVEL")),
	}
}

// OpenKV opens the key-value backend selected by StorageDriver.
func (c Config) OpenKV(ctx context.Context) (storage.KV, error) {
	switch c.StorageDriver {
	case DriverSQLite:
		store, err := sqlite.New(c.DBPath)
		if err != nil {
			return nil, err
		}
		return store, nil
	case DriverPostgres:
		if c.DBURL == "" {
			return nil, errors.New("DB_URL is required for the postgres driver")
		}
		store, err := postgres.New(ctx, c.DBURL)
		if err != nil {
			return nil, err
		}
		return store, nil
	case DriverMemory:
		return storage.NewMemoryKV(), nil
	default:
		return nil, fmt.Errorf("unknown STORAGE_DRIVER %q (want sqlite, postgres or memory)", c.StorageDriver)
	}
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func splitList(s string) []string {
	var out []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
