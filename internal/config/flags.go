package config

import (
	"flag"
	"fmt"
	"strings"

	"github.com/bethropolis/leditor/internal/logger"
)

// Flags holds values parsed from command-line flags.
type Flags struct {
	fs *flag.FlagSet

	ConfigFilePath  *string
	Version         *bool
	LogLevel        *string
	LogFilePath     *string
	EnableTags      *string
	DisableTags     *string
	EnablePkgs      *string
	DisablePkgs     *string
	EnableFiles     *string
	DisableFiles    *string
	HistoryLimit    *int
	Width           *int
	Height          *int
	Seed            *int64
	SystemClipboard *bool
}

// DefineFlags registers the flags on fs, or on flag.CommandLine when fs is nil.
func (f *Flags) DefineFlags(fs *flag.FlagSet) {
	if fs == nil {
		fs = flag.CommandLine
	}
	f.fs = fs
	f.ConfigFilePath = fs.String("config", "", fmt.Sprintf("Path to TOML configuration file (default ~/.config/%s/%s)", AppName, DefaultConfigFileName))
	f.Version = fs.Bool("version", false, "Show version information and exit")
	f.LogLevel = fs.String("loglevel", "", "Log level (debug, info, warn, error) - Overrides config file")
	f.LogFilePath = fs.String("logfile", "", "Path to write log file (use '-' for stderr) - Overrides config file")
	f.EnableTags = fs.String("log-tags", "", "Comma-separated list of tags to enable - Overrides config file")
	f.DisableTags = fs.String("log-disable-tags", "", "Comma-separated list of tags to disable - Overrides config file")
	f.EnablePkgs = fs.String("log-packages", "", "Comma-separated list of packages to enable - Overrides config file")
	f.DisablePkgs = fs.String("log-disable-packages", "", "Comma-separated list of packages to disable - Overrides config file")
	f.EnableFiles = fs.String("log-files", "", "Comma-separated list of files to enable - Overrides config file")
	f.DisableFiles = fs.String("log-disable-files", "", "Comma-separated list of files to disable - Overrides config file")
	f.HistoryLimit = fs.Int("history", 0, "Number of undo steps kept - Overrides config file")
	f.Width = fs.Int("width", 0, "Width of the initial level in cells")
	f.Height = fs.Int("height", 0, "Height of the initial level in cells")
	f.Seed = fs.Int64("seed", 0, "Seed for the noise tool")
	f.SystemClipboard = fs.Bool("system-clipboard", SystemClipboard, "Exchange copied regions with the system clipboard")
}

// ParseFlags defines and parses flags from args, returning the remaining arguments.
func (f *Flags) ParseFlags(fs *flag.FlagSet, args []string) ([]string, error) {
	f.DefineFlags(fs)
	if err := f.fs.Parse(args); err != nil {
		return nil, err
	}
	return f.fs.Args(), nil
}

// ApplyOverrides copies every flag that was explicitly set into cfg.
func (f *Flags) ApplyOverrides(cfg *Config) error {
	if f.fs == nil {
		return nil
	}
	var err error
	f.fs.Visit(func(fl *flag.Flag) {
		logger.DebugTagf("config", "Applying flag override: %s=%s", fl.Name, fl.Value)
		switch fl.Name {
		case "loglevel":
			if *f.LogLevel != "" {
				cfg.Logger.LogLevel = *f.LogLevel
			}
		case "logfile":
			cfg.Logger.LogFilePath = *f.LogFilePath
		case "log-tags":
			cfg.Logger.EnabledTags = splitCommaList(*f.EnableTags)
		case "log-disable-tags":
			cfg.Logger.DisabledTags = splitCommaList(*f.DisableTags)
		case "log-packages":
			cfg.Logger.EnabledPackages = splitCommaList(*f.EnablePkgs)
		case "log-disable-packages":
			cfg.Logger.DisabledPackages = splitCommaList(*f.DisablePkgs)
		case "log-files":
			cfg.Logger.EnabledFiles = splitCommaList(*f.EnableFiles)
		case "log-disable-files":
			cfg.Logger.DisabledFiles = splitCommaList(*f.DisableFiles)
		case "history":
			if *f.HistoryLimit <= 0 {
				err = fmt.Errorf("flag -history: %w (got %d)", ErrHistoryLimit, *f.HistoryLimit)
				return
			}
			cfg.Editor.HistoryLimit = *f.HistoryLimit
		case "width":
			cfg.Editor.LevelWidth = *f.Width
		case "height":
			cfg.Editor.LevelHeight = *f.Height
		case "seed":
			cfg.Editor.NoiseSeed = *f.Seed
		case "system-clipboard":
			cfg.Editor.SystemClipboard = *f.SystemClipboard
		}
	})
	return err
}

func splitCommaList(list string) []string {
	if list == "" {
		return nil
	}
	items := strings.Split(list, ",")
	result := make([]string, 0, len(items))
	for _, item := range items {
		trimmed := strings.TrimSpace(item)
		if trimmed != "" {
			result = append(result, trimmed)
		}
	}
	return result
}
