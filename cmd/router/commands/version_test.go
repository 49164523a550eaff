// ABOUTME: Tests for version command
// ABOUTME: Verifies version info display and SetVersion functionality

package commands

import (
	"bytes"
	"runtime"
	"strings"
	"testing"
)

func restoreVersion(t *testing.T) {
	t.Helper()
	saved := versionInfo
	t.Cleanup(func() { versionInfo = saved })
}

func TestVersionCmd_Output(t *testing.T) {
	restoreVersion(t)
	SetVersion("1.2.3", "abc123", "2026-10-17")

	cmd := NewVersionCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetErr(&output)
	cmd.SetArgs([]string{})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}

	for _, expected := range []string{
		"Tag Router 1.2.3",
		"Commit: abc123",
		"Built:  2026-10-17",
		"Go:     " + runtime.Version(),
	} {
		if !strings.Contains(output.String(), expected) {
			t.Errorf("Output should contain %q, got:\n%s", expected, output.String())
		}
	}
}

func TestSetVersion(t *testing.T) {
	restoreVersion(t)

	SetVersion("2.0.0-beta", "deadbeef", "2026-06-15T10:30:00Z")

	if versionInfo.Version != "2.0.0-beta" {
		t.Errorf("Version = %q, want %q", versionInfo.Version, "2.0.0-beta")
	}
	if versionInfo.Commit != "deadbeef" {
		t.Errorf("Commit = %q, want %q", versionInfo.Commit, "deadbeef")
	}
	if versionInfo.Date != "2026-06-15T10:30:00Z" {
		t.Errorf("Date = %q, want %q", versionInfo.Date, "2026-06-15T10:30:00Z")
	}
}

func TestVersionCmd_Short(t *testing.T) {
	restoreVersion(t)
	SetVersion("1.2.3", "abc123", "2026-10-17")

	cmd := NewVersionCmd()
	var output bytes.Buffer
	cmd.SetOut(&output)
	cmd.SetArgs([]string{"--short"})

	if err := cmd.Execute(); err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if got := output.String(); got != "1.2.3\n" {
		t.Errorf("--short output = %q, want %q", got, "1.2.3\n")
	}
}

func TestVersionCmd_RejectsArgs(t *testing.T) {
	cmd := NewVersionCmd()
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs([]string{"extra"})

	if err := cmd.Execute(); err == nil {
		t.Error("version should reject positional arguments")
	}
}
