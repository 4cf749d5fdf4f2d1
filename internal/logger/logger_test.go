package logger

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
)

func TestInitializeWithConfig_TUIMode(t *testing.T) {
	tmpDir := t.TempDir()

	originalHome := os.Getenv("HOME")
	os.Setenv("HOME", tmpDir)
	defer os.Setenv("HOME", originalHome)

	cfg := Config{
		Level:   "DEBUG",
		Format:  "text",
		File:    "", // auto-generate under the home dir
		TUIMode: true,
	}

	InitializeWithConfig(cfg)

	if logger == nil {
		t.Fatal("Logger should be initialized")
	}

	if logLevel != slog.LevelDebug {
		t.Errorf("Expected log level DEBUG, got %v", logLevel)
	}

	if logFile == "" {
		t.Error("Log file should be set in TUI mode")
	}

	expectedLogFile := filepath.Join(tmpDir, ".datebook", "logs", "datebook.log")
	if logFile != expectedLogFile {
		t.Errorf("Expected log file %s, got %s", expectedLogFile, logFile)
	}

	if !tuiMode {
		t.Error("TUI mode should be true")
	}

	logDir := filepath.Join(tmpDir, ".datebook", "logs")
	if _, err := os.Stat(logDir); os.IsNotExist(err) {
		t.Errorf("Log directory should be created: %s", logDir)
	}
}

func TestInitializeWithConfig_NonTUIMode(t *testing.T) {
	cfg := Config{
		Level:   "INFO",
		Format:  "json",
		File:    "",
		TUIMode: false,
	}

	InitializeWithConfig(cfg)

	if logger == nil {
		t.Fatal("Logger should be initialized")
	}

	if logLevel != slog.LevelInfo {
		t.Errorf("Expected log level INFO, got %v", logLevel)
	}

	if logFile != "" {
		t.Errorf("Log file should not be set in non-TUI mode, got %s", logFile)
	}

	if tuiMode {
		t.Error("TUI mode should be false")
	}

	if logFormat != "json" {
		t.Errorf("Expected log format json, got %s", logFormat)
	}
}

func TestInitializeWithConfig_ExplicitLogFile(t *testing.T) {
	tmpDir := t.TempDir()
	customLogFile := filepath.Join(tmpDir, "custom.log")

	cfg := Config{
		Level:   "WARN",
		Format:  "text",
		File:    customLogFile,
		TUIMode: false,
	}

	InitializeWithConfig(cfg)

	if logLevel != slog.LevelWarn {
		t.Errorf("Expected log level WARN, got %v", logLevel)
	}

	if logFile != customLogFile {
		t.Errorf("Expected log file %s, got %s", customLogFile, logFile)
	}
}

func TestLogLevelParsing(t *testing.T) {
	tests := []struct {
		input    string
		expected slog.Level
	}{
		{"DEBUG", slog.LevelDebug},
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"info", slog.LevelInfo},
		{"WARN", slog.LevelWarn},
		{"warn", slog.LevelWarn},
		{"WARNING", slog.LevelWarn},
		{"ERROR", slog.LevelError},
		{"error", slog.LevelError},
		{"", slog.LevelInfo},        // default
		{"invalid", slog.LevelInfo}, // default
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			InitializeWithConfig(Config{Level: tt.input, Format: "text"})

			if logLevel != tt.expected {
				t.Errorf("For input %q, expected level %v, got %v", tt.input, tt.expected, logLevel)
			}
		})
	}
}

func TestGetters(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "test.log")

	InitializeWithConfig(Config{
		Level:   "DEBUG",
		Format:  "json",
		File:    file,
		TUIMode: true,
	})

	if GetLevel() != slog.LevelDebug {
		t.Errorf("GetLevel() returned %v, expected %v", GetLevel(), slog.LevelDebug)
	}

	if GetFormat() != "json" {
		t.Errorf("GetFormat() returned %s, expected json", GetFormat())
	}

	if GetLogFile() != file {
		t.Errorf("GetLogFile() returned %s, expected %s", GetLogFile(), file)
	}

	if !IsTUIMode() {
		t.Error("IsTUIMode() returned false, expected true")
	}
}

func TestLoggingFunctions(t *testing.T) {
	tmpDir := t.TempDir()
	file := filepath.Join(tmpDir, "out.log")

	InitializeWithConfig(Config{Level: "DEBUG", Format: "text", File: file})

	Debug("debug message", "key", "value")
	Info("info message")
	Warn("warn message")
	Error("error message")

	data, err := os.ReadFile(file)
	if err != nil {
		t.Fatalf("failed to read log file: %v", err)
	}
	if len(data) == 0 {
		t.Error("expected log output, file is empty")
	}
}
