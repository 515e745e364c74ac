package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/BurntSushi/toml"
	"github.com/bethropolis/leditor/internal/logger"
	"github.com/bethropolis/leditor/internal/types"
)

// ErrHistoryLimit is returned when history_limit is explicitly set below one.
var ErrHistoryLimit = errors.New("history_limit must be at least 1")

// Config holds the application's combined configuration.
type Config struct {
	Logger logger.Config `toml:"logger"`
	Editor EditorConfig  `toml:"editor"`
}

// EditorConfig holds editor-specific settings.
type EditorConfig struct {
	HistoryLimit    int   `toml:"history_limit"`
	LevelWidth      int   `toml:"level_width"`
	LevelHeight     int   `toml:"level_height"`
	DefaultLayer    int   `toml:"default_layer"`
	NoiseSeed       int64 `toml:"noise_seed"` // 0 picks a seed at start-up
	SystemClipboard bool  `toml:"system_clipboard"`
}

var (
	loadedConfig *Config
	loadOnce     sync.Once
	loadErr      error
)

// NewDefaultConfig creates a Config struct with default values.
func NewDefaultConfig() *Config {
	return &Config{
		Logger: logger.NewConfig(),
		Editor: EditorConfig{
			HistoryLimit:    DefaultHistoryLimit,
			LevelWidth:      DefaultLevelWidth,
			LevelHeight:     DefaultLevelHeight,
			DefaultLayer:    DefaultLayer,
			SystemClipboard: SystemClipboard,
		},
	}
}

// DefaultPath returns $XDG_CONFIG_HOME/leditor/config.toml, or "" when the
// user config directory cannot be determined.
func DefaultPath() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, DefaultConfigFileName)
}

// ThemesDir returns the directory user themes are loaded from.
func ThemesDir() string {
	dir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(dir, AppName, ThemesDirName)
}

// mergeFile decodes filePath over cfg. A missing file is not an error.
func mergeFile(cfg *Config, filePath string) error {
	_, err := os.Stat(filePath)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("error checking config file '%s': %w", filePath, err)
	}

	metadata, err := toml.DecodeFile(filePath, cfg)
	if err != nil {
		return fmt.Errorf("failed to parse config file '%s': %w", filePath, err)
	}
	if undecoded := metadata.Undecoded(); len(undecoded) > 0 {
		logger.Warnf("Config file '%s': Unrecognized keys: %v", filePath, undecoded)
	}
	if metadata.IsDefined("editor", "history_limit") && cfg.Editor.HistoryLimit <= 0 {
		return fmt.Errorf("config file '%s': %w (got %d)", filePath, ErrHistoryLimit, cfg.Editor.HistoryLimit)
	}
	return nil
}

// validate resets invalid values to defaults. HistoryLimit is checked by
// callers because an explicit bad value is fatal.
func (c *Config) validate() {
	defaults := NewDefaultConfig()

	if c.Editor.HistoryLimit <= 0 {
		c.Editor.HistoryLimit = defaults.Editor.HistoryLimit
	}
	if c.Editor.LevelWidth <= 0 {
		c.Editor.LevelWidth = defaults.Editor.LevelWidth
	}
	if c.Editor.LevelHeight <= 0 {
		c.Editor.LevelHeight = defaults.Editor.LevelHeight
	}
	if c.Editor.DefaultLayer < 0 || c.Editor.DefaultLayer >= types.LayerCount {
		c.Editor.DefaultLayer = defaults.Editor.DefaultLayer
	}
	if c.Logger.LogLevel == "" {
		c.Logger.LogLevel = defaults.Logger.LogLevel
	}
}

// Load builds a configuration from defaults, the TOML file at configFilePath
// (DefaultPath when empty) and any flags that were set.
func Load(configFilePath string, flags *Flags) (*Config, error) {
	cfg := NewDefaultConfig()

	path := configFilePath
	if path == "" {
		path = DefaultPath()
	}
	if path != "" {
		if err := mergeFile(cfg, path); err != nil {
			return nil, err
		}
	}

	if flags != nil {
		if err := flags.ApplyOverrides(cfg); err != nil {
			return nil, err
		}
	}

	cfg.validate()
	return cfg, nil
}

// LoadConfig loads the configuration once and stores it for Get.
func LoadConfig(configFilePath string, flags *Flags) (*Config, error) {
	loadOnce.Do(func() {
		loadedConfig, loadErr = Load(configFilePath, flags)
	})
	return loadedConfig, loadErr
}

// Get returns the loaded application configuration. Panics if LoadConfig wasn't called.
func Get() *Config {
	if loadedConfig == nil {
		panic("config.Get() called before config.LoadConfig()")
	}
	return loadedConfig
}
