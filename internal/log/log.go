// Package log provides category-scoped structured logging for audioreg.
//
// Logging is disabled until Init or SetOutput is called, so library code can
// log freely without forcing output on embedders.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"sync"
)

// Category tags a log record with the subsystem that produced it.
type Category string

const (
	CatConfig    Category = "config"
	CatSound     Category = "sound"
	CatEngine    Category = "engine"
	CatScript    Category = "script"
	CatWatch     Category = "watch"
	CatTelemetry Category = "telemetry"
)

var (
	mu     sync.RWMutex
	logger = slog.New(slog.DiscardHandler)
)

// Init opens (or creates) the log file at path and routes all records to it
// as JSON. An empty path logs to stderr. The returned function closes the file.
func Init(path, level string) (func() error, error) {
	if path == "" {
		SetOutput(os.Stderr, level)
		return func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	SetOutput(f, level)
	return f.Close, nil
}

// SetOutput routes records to w at the given minimum level.
func SetOutput(w io.Writer, level string) {
	handler := slog.NewJSONHandler(w, &slog.HandlerOptions{Level: ParseLevel(level)})
	mu.Lock()
	logger = slog.New(handler)
	mu.Unlock()
}

// ParseLevel maps a level name to a slog level. Unknown names map to INFO.
func ParseLevel(level string) slog.Level {
	switch strings.ToUpper(strings.TrimSpace(level)) {
	case "DEBUG":
		return slog.LevelDebug
	case "WARN", "WARNING":
		return slog.LevelWarn
	case "ERROR":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

func current() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return logger
}

func Debug(cat Category, msg string, args ...any) {
	current().Debug(msg, append([]any{"cat", string(cat)}, args...)...)
}

func Info(cat Category, msg string, args ...any) {
	current().Info(msg, append([]any{"cat", string(cat)}, args...)...)
}

func Warn(cat Category, msg string, args ...any) {
	current().Warn(msg, append([]any{"cat", string(cat)}, args...)...)
}

func Error(cat Category, msg string, args ...any) {
	current().Error(msg, append([]any{"cat", string(cat)}, args...)...)
}

// ErrorErr logs msg at ERROR with err attached under the "error" key.
func ErrorErr(cat Category, msg string, err error, args ...any) {
	Error(cat, msg, append([]any{"error", err}, args...)...)
}

// SafeGo runs fn in a goroutine and logs any panic under cat instead of
// crashing.
func SafeGo(cat Category, name string, fn func()) {
	go func() {
		defer func() {
			if r := recover(); r != nil {
				Error(cat, "goroutine panicked",
					"goroutine", name,
					"panic", fmt.Sprint(r),
					"stack", string(debug.Stack()))
			}
		}()
		fn()
	}()
}
