// ABOUTME: Tests for the leveled logger and npm loglevel mapping
// ABOUTME: Validates level filtering, output redirection and alias translation

package log

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

// captureOutput swaps the writer and level for the duration of a test.
// Tests using it must not run in parallel.
func captureOutput(t *testing.T, l slog.Level) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	prevOut := SetOutput(&buf)
	prevLevel := GetLevel()
	SetLevel(l)
	t.Cleanup(func() {
		SetOutput(prevOut)
		SetLevel(prevLevel)
	})
	return &buf
}

func TestSetLevel(t *testing.T) {
	saved := GetLevel()
	defer SetLevel(saved)

	SetLevel(LevelDebug)
	if GetLevel() != LevelDebug {
		t.Errorf("expected LevelDebug, got %v", GetLevel())
	}

	SetLevel(LevelError)
	if GetLevel() != LevelError {
		t.Errorf("expected LevelError, got %v", GetLevel())
	}
}

func TestDebugSuppressedAtInfoLevel(t *testing.T) {
	buf := captureOutput(t, LevelInfo)

	Debug("this should be suppressed: %s", "test")
	if buf.Len() != 0 {
		t.Errorf("expected no output, got %q", buf.String())
	}
}

func TestDebugEmittedAtDebugLevel(t *testing.T) {
	buf := captureOutput(t, LevelDebug)

	Debug("resolved %s", "lodash")
	if got := buf.String(); got != "[DEBUG] resolved lodash\n" {
		t.Errorf("output = %q", got)
	}
}

func TestErrorAlwaysEmitted(t *testing.T) {
	buf := captureOutput(t, LevelError+4)

	Warn("hidden")
	Error("boom %d", 1)
	if got := buf.String(); got != "[ERROR] boom 1\n" {
		t.Errorf("output = %q", got)
	}
}

func TestAllLevels(t *testing.T) {
	buf := captureOutput(t, LevelDebug)

	Debug("debug: %d", 1)
	Info("info: %d", 2)
	Warn("warn: %d", 3)
	Error("error: %d", 4)

	for _, want := range []string{"[DEBUG] debug: 1", "[INFO] info: 2", "[WARN] warn: 3", "[ERROR] error: 4"} {
		if !strings.Contains(buf.String(), want) {
			t.Errorf("missing %q in %q", want, buf.String())
		}
	}
}

func TestParseLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in      string
		want    slog.Level
		wantErr bool
	}{
		{"debug", LevelDebug, false},
		{"INFO", LevelInfo, false},
		{" warn ", LevelWarn, false},
		{"error", LevelError, false},
		{"loud", LevelInfo, true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseLevel(tt.in)
			if (err != nil) != tt.wantErr {
				t.Fatalf("err = %v; wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("ParseLevel(%q) = %v; want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestNPMLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in     string
		want   string
		wantOK bool
	}{
		{"", "", false},
		{"silly", "silly", true},
		{"Verbose", "verbose", true},
		{"debug", "verbose", true},
		{"trace", "silly", true},
		{"quiet", "silent", true},
		{"warning", "warn", true},
		{"chatty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := NPMLevel(tt.in)
			if got != tt.want || ok != tt.wantOK {
				t.Errorf("NPMLevel(%q) = %q, %v; want %q, %v", tt.in, got, ok, tt.want, tt.wantOK)
			}
		})
	}
}

func TestFromLevel(t *testing.T) {
	t.Parallel()
	tests := []struct {
		level slog.Level
		want  string
	}{
		{LevelDebug, "verbose"},
		{LevelInfo, "notice"},
		{LevelWarn, "warn"},
		{LevelError, "error"},
	}

	for _, tt := range tests {
		if got := FromLevel(tt.level); got != tt.want {
			t.Errorf("FromLevel(%v) = %q; want %q", tt.level, got, tt.want)
		}
	}
}
