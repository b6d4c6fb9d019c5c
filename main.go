package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/gin-gonic/gin"

	"lg/nutrition-tracker-go-api/internal/config"
	"lg/nutrition-tracker-go-api/internal/logging"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		logging.Setup()
		slog.Error("Failed to load config", "error", err)
		os.Exit(1)
	}
	logging.SetupWithLevel(cfg.LogLevel)

	if cfg.LogLevel > slog.LevelDebug {
		gin.SetMode(gin.ReleaseMode)
	}

	kv, err := cfg.OpenKV(context.Background())
	if err != nil {
		slog.Error("Failed to initialize storage", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	defer kv.Close()
	slog.Info("Storage initialized", "driver", cfg.StorageDriver)

	router := newRouter(NewHandler(kv), cfg.AllowedOrigins)

	slog.Info("Server starting", "address", cfg.Addr)
	if err := router.Run(cfg.Addr); err != nil {
		slog.Error("Server failed", "error", err)
		os.Exit(1)
	}
}
