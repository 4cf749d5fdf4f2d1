package logger

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

var (
	logger    *slog.Logger
	logLevel  slog.Level
	logFormat string
	logFile   string
	tuiMode   bool
	once      sync.Once
	mu        sync.Mutex
)

// Config controls logger initialization.
type Config struct {
	Level   string // DEBUG, INFO, WARN, ERROR
	Format  string // text or json
	File    string // explicit log file path; empty = auto (TUI) or stderr
	TUIMode bool   // in TUI mode stderr is the screen, so log to a file
}

func init() {
	Initialize()
}

// Initialize sets up the logger from the environment. Safe to call multiple
// times; only the first call wins.
func Initialize() {
	once.Do(func() {
		levelStr := os.Getenv("LOG_LEVEL")
		if levelStr == "" {
			debug := os.Getenv("DATEBOOK_DEBUG")
			if debug == "1" || debug == "true" {
				levelStr = "DEBUG"
			} else {
				levelStr = "INFO"
			}
		}

		format := os.Getenv("LOG_FORMAT")
		if format == "" {
			format = "text"
		}

		configure(Config{Level: levelStr, Format: format})
	})
}

// InitializeWithConfig reconfigures the logger explicitly, overriding any
// environment-driven setup.
func InitializeWithConfig(cfg Config) {
	once.Do(func() {}) // consume the env path so Initialize becomes a no-op
	configure(cfg)
}

func configure(cfg Config) {
	mu.Lock()
	defer mu.Unlock()

	logLevel = parseLevel(cfg.Level)
	logFormat = strings.ToLower(cfg.Format)
	if logFormat == "" {
		logFormat = "text"
	}
	tuiMode = cfg.TUIMode
	logFile = cfg.File

	if logFile == "" && tuiMode {
		if home, err := os.UserHomeDir(); err == nil {
			logFile = filepath.Join(home, ".datebook", "logs", "datebook.log")
		}
	}

	var out io.Writer = os.Stderr
	if logFile != "" {
		if err := os.MkdirAll(filepath.Dir(logFile), 0755); err == nil {
			if f, err := os.OpenFile(logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644); err == nil {
				out = f
			}
		}
	}

	opts := &slog.HandlerOptions{Level: logLevel}

	var handler slog.Handler
	if logFormat == "json" {
		handler = slog.NewJSONHandler(out, opts)
	} else {
		handler = slog.NewTextHandler(out, opts)
	}

	logger = slog.New(handler)
}

func parseLevel(s string) slog.Level {
	switch strings.ToUpper(s) {
	case "DEBUG":
		return slog.LevelDebug
	case "INFO":
		return slog.LevelInfo
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func GetLogger() *slog.Logger {
	if logger == nil {
		Initialize()
	}
	return logger
}

func GetLevel() slog.Level {
	if logger == nil {
		Initialize()
	}
	return logLevel
}

func GetFormat() string {
	if logger == nil {
		Initialize()
	}
	return logFormat
}

func GetLogFile() string {
	if logger == nil {
		Initialize()
	}
	return logFile
}

func IsTUIMode() bool {
	if logger == nil {
		Initialize()
	}
	return tuiMode
}

func Debug(msg string, args ...any) {
	GetLogger().Debug(msg, args...)
}

func Info(msg string, args ...any) {
	GetLogger().Info(msg, args...)
}

func Warn(msg string, args ...any) {
	GetLogger().Warn(msg, args...)
}

func Error(msg string, args ...any) {
	GetLogger().Error(msg, args...)
}
