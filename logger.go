package main

import (
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/adrg/xdg"
	"github.com/filetug/filechooser/pkg/chooser/chstate"
	"github.com/lmittmann/tint"
)

var logDir = func() string {
	return filepath.Join(xdg.StateHome, chstate.AppDirName, "logs")
}

// createTUILogger writes JSON logs to a file so they do not interfere with
// the terminal UI. The returned func closes the file.
func createTUILogger(logLevel string) (*slog.Logger, func()) {
	discard := func() (*slog.Logger, func()) {
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{
			Level: slog.LevelError,
		})), func() {}
	}
	dir := logDir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return discard()
	}
	file, err := os.OpenFile(filepath.Join(dir, "filechooser.log"), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return discard()
	}
	logger := slog.New(slog.NewJSONHandler(file, &slog.HandlerOptions{
		Level: parseLogLevel(logLevel),
	}))
	return logger, func() {
		_ = file.Close()
	}
}

// createCLILogger logs to stderr for commands that do not start the UI.
func createCLILogger(logLevel string) *slog.Logger {
	return slog.New(tint.NewHandler(stderr, &tint.Options{
		Level: parseLogLevel(logLevel),
	}))
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}
