package logger

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
)

// debugFilter traces filter decisions to stderr. Enabled with
// LEDITOR_LOG_FILTER_DEBUG=1 when a filter setup does not behave as expected.
var debugFilter = os.Getenv("LEDITOR_LOG_FILTER_DEBUG") == "1"

// Config holds all settings for the logger.
type Config struct {
	// LogLevel is one of "debug", "info", "warn", "error".
	LogLevel string `toml:"level"`

	// LogFilePath is the output log file. Empty or "-" means stderr.
	LogFilePath string `toml:"file"`

	// EnabledTags only logs tagged messages with these tags (if non-empty).
	// DisabledTags overrides it.
	EnabledTags  []string `toml:"enabled_tags"`
	DisabledTags []string `toml:"disabled_tags"`

	// Package name is the immediate directory name, e.g. "history" or "core".
	EnabledPackages  []string `toml:"enabled_packages"`
	DisabledPackages []string `toml:"disabled_packages"`

	// File name is the base name, e.g. "journal.go".
	EnabledFiles  []string `toml:"enabled_files"`
	DisabledFiles []string `toml:"disabled_files"`

	level               slog.Leveler
	enabledTagsSet      map[string]struct{}
	disabledTagsSet     map[string]struct{}
	enabledPackagesSet  map[string]struct{}
	disabledPackagesSet map[string]struct{}
	enabledFilesSet     map[string]struct{}
	disabledFilesSet    map[string]struct{}
}

// NewConfig creates a new Config with default values
func NewConfig() Config {
	return Config{
		LogLevel:    "info",
		LogFilePath: "",
	}
}

// ParseLevel maps a level name to a slog level, defaulting to info.
func ParseLevel(name string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error", "err":
		return slog.LevelError
	}
	return slog.LevelInfo
}

// process parses string levels/lists into lookup sets.
func (c *Config) process() {
	c.level = ParseLevel(c.LogLevel)

	c.enabledTagsSet = sliceToSet(c.EnabledTags)
	c.disabledTagsSet = sliceToSet(c.DisabledTags)
	c.enabledPackagesSet = sliceToSet(c.EnabledPackages)
	c.disabledPackagesSet = sliceToSet(c.DisabledPackages)
	c.enabledFilesSet = sliceToSet(c.EnabledFiles)
	c.disabledFilesSet = sliceToSet(c.DisabledFiles)

	if debugFilter {
		fmt.Fprintf(os.Stderr, "[CONFIG PROCESS] level=%v tags=+%v/-%v packages=+%v/-%v files=+%v/-%v\n",
			c.level, c.EnabledTags, c.DisabledTags, c.EnabledPackages, c.DisabledPackages, c.EnabledFiles, c.DisabledFiles)
	}
}

func sliceToSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		if item != "" {
			set[strings.ToLower(item)] = struct{}{}
		}
	}
	if len(set) == 0 {
		return nil
	}
	return set
}
