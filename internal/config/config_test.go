package config

import (
	"context"
	"log/slog"
	"path/filepath"
	"reflect"
	"testing"
)

func TestFromEnv_Defaults(t *testing.T) {
	for _, k := range []string{"ADDR", "STORAGE_DRIVER", "DB_PATH", "DB_URL", "ALLOWED_ORIGINS", "LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	c := FromEnv()
	if c.Addr != "localhost:3000" {
		t.Errorf("Addr = %q", c.Addr)
	}
	if c.StorageDriver != DriverSQLite {
		t.Errorf("StorageDriver = %q", c.StorageDriver)
	}
	if c.DBPath != "./data/nutrition.db" {
		t.Errorf("DBPath = %q", c.DBPath)
	}
	if !reflect.DeepEqual(c.AllowedOrigins, []string{"http://localhost:5173"}) {
		t.Errorf("AllowedOrigins = %v", c.AllowedOrigins)
	}
	if c.LogLevel != slog.LevelInfo {
		t.Errorf("LogLevel = %v", c.LogLevel)
	}
}

func TestFromEnv_Overrides(t *testing.T) {
	t.Setenv("ADDR", ":8080")
	t.Setenv("STORAGE_DRIVER", "Postgres")
	t.Setenv("DB_URL", "postgres://localhost/nutrition")
	t.Setenv("ALLOWED_ORIGINS", "http://a.test, ,http://b.test")
	t.Setenv("LOG_LEVEL", "debug")

	c := FromEnv()
	if c.Addr != ":8080" || c.StorageDriver != DriverPostgres || c.DBURL != "postgres://localhost/nutrition" {
		t.Errorf("config = %+v", c)
	}
	if !reflect.DeepEqual(c.AllowedOrigins, []string{"http://a.test", "http://b.test"}) {
		t.Errorf("AllowedOrigins = %v", c.AllowedOrigins)
	}
	if c.LogLevel != slog.LevelDebug {
		t.Errorf("LogLevel = %v", c.LogLevel)
	}
}

func TestOpenKV(t *testing.T) {
	ctx := context.Background()

	t.Run("memory", func(t *testing.T) {
		kv, err := Config{StorageDriver: DriverMemory}.OpenKV(ctx)
		if err != nil {
			t.Fatalf("OpenKV: %v", err)
		}
		kv.Close()
	})

	t.Run("sqlite", func(t *testing.T) {
		kv, err := Config{StorageDriver: DriverSQLite, DBPath: filepath.Join(t.TempDir(), "n.db")}.OpenKV(ctx)
		if err != nil {
			t.Fatalf("OpenKV: %v", err)
		}
		kv.Close()
	})

	t.Run("postgres without DB_URL", func(t *testing.T) {
		if _, err := (Config{StorageDriver: DriverPostgres}).OpenKV(ctx); err == nil {
			t.Error("expected error when DB_URL is empty")
		}
	})

	t.Run("unknown driver", func(t *testing.T) {
		if _, err := (Config{StorageDriver: "redis"}).OpenKV(ctx); err == nil {
			t.Error("expected error for unknown driver")
		}
	})
}
