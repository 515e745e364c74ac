// cmd/leditor/main.go
package main

import (
	"flag"
	"fmt"
	"io"
	stlog "log"
	"os"

	"github.com/bethropolis/leditor/internal/app"
	"github.com/bethropolis/leditor/internal/config"
	"github.com/bethropolis/leditor/internal/logger"
)

const version = "0.1.0"

func main() {
	flags := &config.Flags{}
	if _, err := flags.ParseFlags(flag.CommandLine, os.Args[1:]); err != nil {
		stlog.Fatalf("Failed to parse flags: %v", err)
	}
	if *flags.Version {
		fmt.Printf("%s %s\n", config.AppName, version)
		return
	}

	cfg, err := config.LoadConfig(*flags.ConfigFilePath, flags)
	if err != nil {
		stlog.Fatalf("Failed to load configuration: %v", err)
	}

	logOutput, closeLog, err := openLog(cfg.Logger.LogFilePath)
	if err != nil {
		stlog.Fatalf("Failed to open log file: %v", err)
	}
	defer closeLog()
	logger.Init(cfg.Logger, logOutput)

	logger.Infof("Starting %s %s", config.AppName, version)
	logger.Debugf("Level %dx%d, history limit %d, seed %d",
		cfg.Editor.LevelWidth, cfg.Editor.LevelHeight, cfg.Editor.HistoryLimit, cfg.Editor.NoiseSeed)

	editorApp, err := app.NewApp(cfg)
	if err != nil {
		logger.Fatalf("Error initializing application: %v", err)
	}
	if err := editorApp.Run(); err != nil {
		logger.Errorf("Application exited with error: %v", err)
		closeLog()
		os.Exit(1)
	}
	logger.Infof("%s finished.", config.AppName)
}

// openLog returns the log destination. The terminal belongs to the editor,
// so an unset path writes to leditor.log and "-" selects stderr.
func openLog(path string) (io.Writer, func(), error) {
	switch path {
	case "-":
		return os.Stderr, func() {}, nil
	case "":
		path = config.DefaultLogFileName
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("'%s': %w", path, err)
	}
	return f, func() { _ = f.Close() }, nil
}
