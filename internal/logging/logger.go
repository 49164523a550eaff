// ABOUTME: Process-wide structured logger built on charmbracelet/log
// ABOUTME: Level and formatter come from config; defaults to info text on stderr
package logging

import (
	"io"
	"os"
	"sync"

	charmlog "github.com/charmbracelet/log"
)

var (
	mu            sync.RWMutex
	defaultLogger = charmlog.NewWithOptions(os.Stderr, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           charmlog.InfoLevel,
	})
)

// Options controls logger setup
type Options struct {
	Level  string
	JSON   bool
	Output io.Writer
}

// Init replaces the default logger. Unknown levels fall back to info.
func Init(opts Options) *charmlog.Logger {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}
	level, err := charmlog.ParseLevel(opts.Level)
	if err != nil {
		level = charmlog.InfoLevel
	}

	logger := charmlog.NewWithOptions(out, charmlog.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
	if opts.JSON {
		logger.SetFormatter(charmlog.JSONFormatter)
	} else {
		logger.SetFormatter(charmlog.TextFormatter)
	}

	mu.Lock()
	defaultLogger = logger
	mu.Unlock()
	return logger
}

// Get returns the current default logger
func Get() *charmlog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}

// With returns a child logger carrying the given key/value pairs
func With(keyvals ...any) *charmlog.Logger {
	return Get().With(keyvals...)
}

// Discard returns a logger that drops everything, for tests
func Discard() *charmlog.Logger {
	return charmlog.New(io.Discard)
}
