package adapter

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/natefinch/lumberjack.v2"
)

// SetupLogger initializes the slog logger with file or stdout output
func SetupLogger(cfg *LoggingConfig) (*slog.Logger, error) {
	w, err := logWriter(cfg)
	if err != nil {
		return nil, err
	}

	// Create JSON handler for structured logging
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Level),
	})

	return slog.New(handler), nil
}

// IsConsole reports whether logs go to stdout or stderr
func (c LoggingConfig) IsConsole() bool {
	switch strings.ToLower(strings.TrimSpace(c.File)) {
	case "", "stdout", "stderr":
		return true
	}
	return false
}

// WithFileOutput returns a copy that writes to fallback when c targets the console.
// Full-screen programs use it to keep log lines off the terminal.
func (c LoggingConfig) WithFileOutput(fallback string) LoggingConfig {
	if c.IsConsole() {
		c.File = fallback
	}
	return c
}

// logWriter resolves the configured destination. Files rotate through lumberjack.
func logWriter(cfg *LoggingConfig) (io.Writer, error) {
	switch strings.ToLower(cfg.File) {
	case "", "stdout":
		return os.Stdout, nil
	case "stderr":
		return os.Stderr, nil
	}

	// Expand ~ in path
	logPath := cfg.File
	if strings.HasPrefix(logPath, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("failed to get home directory: %w", err)
		}
		logPath = filepath.Join(home, logPath[1:])
	}

	// Ensure log directory exists
	if err := os.MkdirAll(filepath.Dir(logPath), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}

	return &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    cfg.MaxSizeMB,
		MaxBackups: cfg.MaxBackups,
	}, nil
}

// parseLogLevel converts a string log level to slog.Level
func parseLogLevel(level string) slog.Level {
	switch strings.ToUpper(level) {
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

// NullLogger returns a logger that discards all output
func NullLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
