// Package logger wraps log/slog with printf-style helpers, caller capture and
// tag/package/file filtering configured from the [logger] config section.
package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"
)

var (
	mu            sync.RWMutex
	defaultLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelInfo}))
	logLevel      = new(slog.LevelVar)
)

// Init installs a logger writing to output, honouring cfg's level and filters.
// Calling Init again replaces the previous logger.
func Init(cfg Config, output io.Writer) {
	if output == nil {
		output = io.Discard
	}
	cfg.process()
	logLevel.Set(cfg.level.Level())

	opts := slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.SourceKey {
				if source, ok := a.Value.Any().(*slog.Source); ok && source != nil {
					source.File = filepath.Base(source.File)
				}
			}
			if a.Key == slog.TimeKey {
				a.Value = slog.StringValue(a.Value.Time().Format(time.TimeOnly))
			}
			return a
		},
	}
	handler := newFilteringHandler(slog.NewTextHandler(output, &opts), &cfg)

	mu.Lock()
	defaultLogger = slog.New(handler)
	mu.Unlock()

	r := slog.NewRecord(time.Now(), slog.LevelInfo, "Logger initialized", 0)
	r.AddAttrs(slog.String("level", cfg.level.Level().String()))
	_ = handler.baseHandler.Handle(context.Background(), r)
}

// SetLevel changes the minimum level at runtime.
func SetLevel(level slog.Level) {
	logLevel.Set(level)
}

// logAtLevel builds a record attributed to the caller of the public wrapper.
func logAtLevel(level slog.Level, tag string, format string, args ...interface{}) {
	l := Get()
	if !l.Enabled(context.Background(), level) {
		return
	}

	var pcs [1]uintptr
	// Skip runtime.Callers, logAtLevel and the exported wrapper.
	runtime.Callers(3, pcs[:])

	r := slog.NewRecord(time.Now(), level, fmt.Sprintf(format, args...), pcs[0])
	if tag != "" {
		r.AddAttrs(slog.String(tagKey, tag))
	}
	_ = l.Handler().Handle(context.Background(), r)
}

// Debugf logs a debug message using Printf-style formatting.
func Debugf(format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, "", format, args...)
}

// DebugTagf logs a debug message carrying tag, so it can be filtered by tag.
func DebugTagf(tag string, format string, args ...interface{}) {
	logAtLevel(slog.LevelDebug, tag, format, args...)
}

// Infof logs an info message using Printf-style formatting.
func Infof(format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, "", format, args...)
}

// InfoTagf logs an info message carrying tag.
func InfoTagf(tag string, format string, args ...interface{}) {
	logAtLevel(slog.LevelInfo, tag, format, args...)
}

// Warnf logs a warning message using Printf-style formatting.
func Warnf(format string, args ...interface{}) {
	logAtLevel(slog.LevelWarn, "", format, args...)
}

// Errorf logs an error message using Printf-style formatting.
func Errorf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
}

// Fatalf logs an error message then exits.
func Fatalf(format string, args ...interface{}) {
	logAtLevel(slog.LevelError, "", format, args...)
	os.Exit(1)
}

// Get retrieves the configured logger instance.
func Get() *slog.Logger {
	mu.RLock()
	defer mu.RUnlock()
	return defaultLogger
}
