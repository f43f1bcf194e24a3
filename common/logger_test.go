package common

import (
	"bytes"
	"errors"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func TestLogLevel_String(t *testing.T) {
	tests := []struct {
		level    LogLevel
		expected string
	}{
		{LevelDebug, "DEBUG"},
		{LevelInfo, "INFO"},
		{LevelWarn, "WARN"},
		{LevelError, "ERROR"},
		{LogLevel(99), "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			if got := tt.level.String(); got != tt.expected {
				t.Errorf("LogLevel.String() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestParseLogLevel(t *testing.T) {
	tests := []struct {
		name  string
		level LogLevel
		ok    bool
	}{
		{"debug", LevelDebug, true},
		{"INFO", LevelInfo, true},
		{"", LevelInfo, true},
		{" warn ", LevelWarn, true},
		{"warning", LevelWarn, true},
		{"error", LevelError, true},
		{"verbose", LevelInfo, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			level, ok := ParseLogLevel(tt.name)
			if level != tt.level || ok != tt.ok {
				t.Errorf("ParseLogLevel(%q) = %v, %v, want %v, %v", tt.name, level, ok, tt.level, tt.ok)
			}
		})
	}
}

func TestAppLogger_SetLevel(t *testing.T) {
	logger := &AppLogger{level: LevelInfo}

	logger.SetLevel(LevelDebug)
	if logger.Level() != LevelDebug {
		t.Errorf("SetLevel did not update level, got %v, want %v", logger.Level(), LevelDebug)
	}
}

func TestAppLogger_LogFiltering(t *testing.T) {
	var buf bytes.Buffer

	logger := &AppLogger{level: LevelWarn}
	logger.SetOutput(&buf)

	logger.Debug("debug message")
	logger.Info("info message")

	if buf.Len() > 0 {
		t.Error("Debug/Info messages should be filtered when level is Warn")
	}

	logger.Warn("warn message")
	if !strings.Contains(buf.String(), "WARN") {
		t.Error("Warn message should be logged")
	}

	buf.Reset()
	logger.Error("error message")
	if !strings.Contains(buf.String(), "ERROR") {
		t.Error("Error message should be logged")
	}
}

func TestAppLogger_LogFormatting(t *testing.T) {
	var buf bytes.Buffer

	logger := &AppLogger{
		level:  LevelDebug,
		output: &buf,
		logger: log.New(&buf, "", 0),
	}

	logger.Info("Switched theme to %s", "Nord")

	output := buf.String()

	if !strings.Contains(output, time.Now().Format("2006/01/02")) {
		t.Error("Log should contain date in YYYY/MM/DD format")
	}
	if !strings.Contains(output, "[INFO]") {
		t.Error("Log should contain level indicator")
	}
	if !strings.Contains(output, "logger_test.go:") {
		t.Errorf("Log should contain caller, got %q", output)
	}
	if !strings.Contains(output, "Switched theme to Nord") {
		t.Error("Log should contain formatted message")
	}
}

func TestAppLogger_LiteralPercent(t *testing.T) {
	var buf bytes.Buffer
	logger := &AppLogger{level: LevelDebug}
	logger.SetOutput(&buf)

	logger.Info("progress at 100%")

	if !strings.Contains(buf.String(), "progress at 100%") {
		t.Errorf("message without args must be logged verbatim, got %q", buf.String())
	}
}

func TestAppLogger_FileLogging(t *testing.T) {
	dir := t.TempDir()

	logger := &AppLogger{
		level:       LevelInfo,
		maxFileSize: defaultMaxFileSize,
		maxBackups:  defaultMaxBackups,
	}
	if err := logger.EnableFileLogging(dir); err != nil {
		t.Fatalf("EnableFileLogging() error = %v", err)
	}
	logger.Info("written to file")
	if err := logger.Close(); err != nil {
		t.Fatalf("Close() error = %v", err)
	}

	data, err := os.ReadFile(filepath.Join(dir, LogFileName))
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "written to file") {
		t.Errorf("log file = %q, want message", data)
	}
}

func TestAppLogger_FileLoggingEmptyDir(t *testing.T) {
	logger := &AppLogger{}
	if err := logger.EnableFileLogging(""); err == nil {
		t.Error("EnableFileLogging(\"\") should fail")
	}
}

func TestLogRotation(t *testing.T) {
	dir := t.TempDir()
	logFile := filepath.Join(dir, "test.log")

	write := func(path string, size int) {
		t.Helper()
		if err := os.WriteFile(path, []byte(strings.Repeat("x", size)), 0600); err != nil {
			t.Fatal(err)
		}
	}

	logger := &AppLogger{
		maxFileSize: 512,
		maxBackups:  2,
	}

	write(logFile, 1024)
	logger.rotateIfNeeded(logFile)
	write(logFile, 1024)
	logger.rotateIfNeeded(logFile)
	write(logFile, 1024)
	logger.rotateIfNeeded(logFile)

	if FileExists(logFile) {
		t.Error("Original log file should be moved away after rotation")
	}
	for _, suffix := range []string{".1", ".2"} {
		if !FileExists(logFile + suffix) {
			t.Errorf("backup %s should exist", suffix)
		}
	}
	if FileExists(logFile + ".3") {
		t.Error("backups beyond maxBackups should be removed")
	}

	// Small files stay in place.
	write(logFile, 10)
	logger.rotateIfNeeded(logFile)
	if !FileExists(logFile) {
		t.Error("file under the size limit should not rotate")
	}
}

func TestWrapError(t *testing.T) {
	wrapped := WrapError(ErrEmptyCatalogue, "starting application")

	if wrapped == nil {
		t.Fatal("WrapError should return non-nil error")
	}
	if !strings.Contains(wrapped.Error(), "starting application") {
		t.Error("WrapError should include additional context")
	}
	if !errors.Is(wrapped, ErrEmptyCatalogue) {
		t.Error("WrapError should keep the wrapped error reachable")
	}
	if WrapError(nil, "context") != nil {
		t.Error("WrapError(nil) should return nil")
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		v, want float64
	}{
		{-1, 0},
		{0, 0},
		{42.5, 42.5},
		{100, 100},
		{250, 100},
	}
	for _, tt := range tests {
		if got := Clamp(tt.v, 0, 100); got != tt.want {
			t.Errorf("Clamp(%v) = %v, want %v", tt.v, got, tt.want)
		}
	}
}

func TestGetConfigDir(t *testing.T) {
	dir, err := GetConfigDir()
	if err != nil {
		t.Fatalf("GetConfigDir() error = %v", err)
	}
	if !strings.HasSuffix(dir, ConfigDirName) {
		t.Errorf("GetConfigDir() = %v, should end with %v", dir, ConfigDirName)
	}
	if !strings.HasSuffix(GetLogDir(), filepath.Join(ConfigDirName, "logs")) {
		t.Errorf("GetLogDir() = %v", GetLogDir())
	}
}
