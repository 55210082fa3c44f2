package logging

import (
	"bytes"
	"log/slog"
	"strings"
	"testing"
)

func TestParseLevel(t *testing.T) {
	cases := map[string]Level{
		"debug":    LevelDebug,
		" DEBUG ":  LevelDebug,
		"info":     LevelInfo,
		"warn":     LevelWarn,
		"warning":  LevelWarn,
		"error":    LevelError,
		"":         LevelInfo,
		"verbose":  LevelInfo,
		"CRITICAL": LevelInfo,
	}
	for input, want := range cases {
		if got := ParseLevel(input); got != want {
			t.Fatalf("ParseLevel(%q) = %v, want %v", input, got, want)
		}
	}
}

func TestLevelString(t *testing.T) {
	cases := map[Level]string{
		LevelDebug: "debug",
		LevelInfo:  "info",
		LevelWarn:  "warn",
		LevelError: "error",
	}
	for level, want := range cases {
		if got := level.String(); got != want {
			t.Fatalf("Level(%d).String() = %q, want %q", level, got, want)
		}
	}

	// Round trip through ParseLevel.
	for level := range cases {
		if ParseLevel(level.String()) != level {
			t.Fatalf("ParseLevel(%q) did not round-trip", level.String())
		}
	}
}

func TestNewLoggerNilWriter(t *testing.T) {
	logger := NewLogger(nil, LevelInfo)
	if logger == nil {
		t.Fatalf("expected logger")
	}
}

func TestNewLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger(&buf, LevelWarn)

	logger.Info("hidden")
	if buf.Len() != 0 {
		t.Fatalf("info record should be filtered at warn level: %q", buf.String())
	}

	logger.Warn("shown")
	if !strings.Contains(buf.String(), "shown") {
		t.Fatalf("warn record missing: %q", buf.String())
	}
}

func TestWriterForwardsLines(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	w := NewWriter(logger)
	n, err := w.Write([]byte("usage: coachcfg [command]\n"))
	if err != nil {
		t.Fatalf("Write: %v", err)
	}
	if n != len("usage: coachcfg [command]\n") {
		t.Fatalf("short write: %d", n)
	}
	if !strings.Contains(buf.String(), "usage: coachcfg [command]") {
		t.Fatalf("line not forwarded: %q", buf.String())
	}

	buf.Reset()
	if _, err := w.Write([]byte("\n")); err != nil {
		t.Fatalf("Write: %v", err)
	}
	if buf.Len() != 0 {
		t.Fatalf("blank line should not be logged: %q", buf.String())
	}
}
