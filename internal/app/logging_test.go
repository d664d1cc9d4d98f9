package app

import (
	"bytes"
	"strings"
	"testing"
	"time"
)

func newTestLogger(level LogLevel) (*Logger, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewLogger(LoggerConfig{Level: level, Output: &buf, Prefix: "test"})
	l.now = func() time.Time { return time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC) }
	return l, &buf
}

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LogLevelDebug, "DEBUG"},
		{LogLevelInfo, "INFO"},
		{LogLevelWarn, "WARN"},
		{LogLevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		if got := tt.level.String(); got != tt.expected {
			t.Errorf("LogLevel(%d).String() = %q, expected %q", tt.level, got, tt.expected)
		}
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		input    string
		expected LogLevel
		ok       bool
	}{
		{"debug", LogLevelDebug, true},
		{"DEBUG", LogLevelDebug, true},
		{"info", LogLevelInfo, true},
		{"warn", LogLevelWarn, true},
		{"Warning", LogLevelWarn, true},
		{"error", LogLevelError, true},
		{"verbose", LogLevelInfo, false},
		{"", LogLevelInfo, false},
	}

	for _, tt := range tests {
		got, ok := ParseLogLevel(tt.input)
		if got != tt.expected || ok != tt.ok {
			t.Errorf("ParseLogLevel(%q) = %v, %v, expected %v, %v", tt.input, got, ok, tt.expected, tt.ok)
		}
	}
}

func TestLogger_Format(t *testing.T) {
	logger, buf := newTestLogger(LogLevelInfo)

	logger.Info("created %s %d", "region", 3)

	want := "2024-05-01T12:00:00.000 [INFO] test: created region 3\n"
	if got := buf.String(); got != want {
		t.Errorf("output = %q, want %q", got, want)
	}
}

func TestLogger_LevelFiltering(t *testing.T) {
	logger, buf := newTestLogger(LogLevelWarn)

	logger.Debug("debug")
	logger.Info("info")
	logger.Warn("warn")
	logger.Error("error")

	output := buf.String()
	for _, absent := range []string{"[DEBUG]", "[INFO]"} {
		if strings.Contains(output, absent) {
			t.Errorf("expected %s to be filtered out", absent)
		}
	}
	for _, present := range []string{"[WARN]", "[ERROR]"} {
		if !strings.Contains(output, present) {
			t.Errorf("expected %s in output", present)
		}
	}

	logger.SetLevel(LogLevelDebug)
	logger.Debug("now visible")
	if !strings.Contains(buf.String(), "now visible") {
		t.Error("expected output after SetLevel")
	}
}

func TestLogger_FieldsSorted(t *testing.T) {
	logger, buf := newTestLogger(LogLevelInfo)

	logger.WithComponent("engine").WithFields(map[string]any{
		"regions": 2,
		"action":  "commit",
	}).Info("done")

	if !strings.HasSuffix(buf.String(), "done {action=commit, component=engine, regions=2}\n") {
		t.Errorf("unexpected output %q", buf.String())
	}
}

func TestLogger_DerivedDoesNotLeakFields(t *testing.T) {
	logger, buf := newTestLogger(LogLevelInfo)

	_ = logger.WithField("key", "value")
	logger.Info("plain")

	if strings.Contains(buf.String(), "key=value") {
		t.Errorf("parent logger picked up a derived field: %q", buf.String())
	}
}

func TestLogger_SetOutput(t *testing.T) {
	logger, buf1 := newTestLogger(LogLevelInfo)
	var buf2 bytes.Buffer

	logger.SetOutput(&buf2)
	logger.Info("to buf2")
	if buf1.Len() != 0 || buf2.Len() == 0 {
		t.Errorf("buf1 = %q, buf2 = %q", buf1.String(), buf2.String())
	}
}

func TestNullLogger(t *testing.T) {
	NullLogger.Debug("test")
	NullLogger.WithComponent("x").Error("test")

	var nilLogger *Logger
	nilLogger.Info("no panic")
}

func TestGetLogger(t *testing.T) {
	logger := GetLogger()
	if logger == nil {
		t.Fatal("GetLogger() returned nil")
	}
	if logger != GetLogger() {
		t.Error("expected GetLogger() to return same instance")
	}
}

func TestDefaultLoggerConfig(t *testing.T) {
	cfg := DefaultLoggerConfig()

	if cfg.Level != LogLevelInfo {
		t.Errorf("expected default level INFO, got %v", cfg.Level)
	}
	if cfg.Output == nil {
		t.Error("expected default output to be set")
	}
	if cfg.Prefix != "annotext" {
		t.Errorf("expected prefix 'annotext', got %q", cfg.Prefix)
	}
}
