// ABOUTME: Main entry point for the HTTP router without the CLI wrapper
// ABOUTME: Loads .env and config, then serves POST /handle until signalled
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"github.com/harper/tag-router/internal/config"
	"github.com/harper/tag-router/internal/core"
	"github.com/harper/tag-router/internal/httpapi"
	"github.com/harper/tag-router/internal/logging"
	"github.com/harper/tag-router/internal/metrics"
	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists (for API keys)
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logging.Get().Fatal("invalid configuration", "err", err)
	}

	logger := logging.Init(logging.Options{Level: cfg.LogLevel, JSON: cfg.LogJSON})
	if envErr != nil {
		logger.Info("no .env file found (this is okay for production)", "err", envErr)
	}
	if cfg.GeminiKey == "" {
		logger.Warn("GEMINI_API_KEY not set - [Io] requests will fail")
	}
	if cfg.LumoKey == "" {
		logger.Warn("LUMO_API_KEY not set - [Lumo] requests will fail")
	}

	gin.SetMode(cfg.GinMode)

	m := metrics.New()
	dispatcher := core.NewDispatcher(core.NewHandlers(cfg), core.WithMetrics(m), core.WithLogger(logger))
	srv := httpapi.NewServer(dispatcher, m, logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := srv.Run(ctx, cfg.Addr, cfg.BackendTimeout+httpapi.WriteTimeoutSlack); err != nil {
		logger.Fatal("server error", "err", err)
	}
}
