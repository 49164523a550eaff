// ABOUTME: Shared startup for CLI commands: .env, config, logging, dispatcher
// ABOUTME: Configuration is loaded once here and passed down read-only
package commands

import (
	"fmt"

	charmlog "github.com/charmbracelet/log"
	"github.com/harper/tag-router/internal/config"
	"github.com/harper/tag-router/internal/core"
	"github.com/harper/tag-router/internal/logging"
	"github.com/harper/tag-router/internal/metrics"
	"github.com/harper/tag-router/internal/models"
	"github.com/joho/godotenv"
)

// runtime is everything a command needs to dispatch messages
type runtime struct {
	cfg        *config.Config
	logger     *charmlog.Logger
	metrics    *metrics.Metrics
	dispatcher *core.Dispatcher
}

// loadRuntime loads .env and config, sets up logging, and builds the dispatcher
func loadRuntime() (*runtime, error) {
	// Load .env file if it exists (for API keys)
	envErr := godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	level := cfg.LogLevel
	switch {
	case verbose:
		level = "debug"
	case quiet:
		level = "error"
	}
	logger := logging.Init(logging.Options{Level: level, JSON: cfg.LogJSON})

	if envErr != nil {
		logger.Debug("no .env file loaded", "err", envErr)
	}
	logCredentials(logger, cfg)

	m := metrics.New()
	d := core.NewDispatcher(core.NewHandlers(cfg), core.WithMetrics(m), core.WithLogger(logger))

	return &runtime{cfg: cfg, logger: logger, metrics: m, dispatcher: d}, nil
}

// logCredentials reports which backends have keys, masked
func logCredentials(logger *charmlog.Logger, cfg *config.Config) {
	keys := map[models.Tag]string{
		models.TagIo:      cfg.GeminiKey,
		models.TagLumo:    cfg.LumoKey,
		models.TagCopilot: cfg.CopilotKey,
	}
	for _, tag := range models.TagPriority {
		key := keys[tag]
		if key == "" && tag != models.TagCopilot {
			logger.Warn("backend credential not set, requests will fail", "tag", tag)
			continue
		}
		logger.Debug("backend credential", "tag", tag, "key", config.MaskSecret(key))
	}
}
