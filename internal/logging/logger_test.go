// ABOUTME: Tests for logger setup
// ABOUTME: Verifies level parsing and JSON output

package logging

import (
	"bytes"
	"strings"
	"testing"

	charmlog "github.com/charmbracelet/log"
)

func TestInit_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := Init(Options{Level: "debug", JSON: true, Output: &buf})

	logger.Debug("routed", "tag", "Io")

	out := buf.String()
	if !strings.Contains(out, `"msg":"routed"`) {
		t.Errorf("expected JSON msg field, got %q", out)
	}
	if !strings.Contains(out, `"tag":"Io"`) {
		t.Errorf("expected JSON tag field, got %q", out)
	}
}

func TestInit_LevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	logger := Init(Options{Level: "warn", Output: &buf})

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Errorf("info should be filtered at warn level, got %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Errorf("warn should be logged, got %q", buf.String())
	}
}

func TestInit_UnknownLevelFallsBackToInfo(t *testing.T) {
	logger := Init(Options{Level: "chatty", Output: &bytes.Buffer{}})

	if logger.GetLevel() != charmlog.InfoLevel {
		t.Errorf("level = %v, want info", logger.GetLevel())
	}
}

func TestGet_ReturnsInitializedLogger(t *testing.T) {
	logger := Init(Options{Level: "error", Output: &bytes.Buffer{}})

	if Get() != logger {
		t.Error("Get() should return the logger set by Init")
	}
}
