// internal/modehandler/modehandler.go
package modehandler

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/bethropolis/leditor/internal/core"
	"github.com/bethropolis/leditor/internal/event"
	"github.com/bethropolis/leditor/internal/input"
	"github.com/bethropolis/leditor/internal/logger"
	"github.com/bethropolis/leditor/internal/plugin"
	"github.com/bethropolis/leditor/internal/statusbar"
	"github.com/gdamore/tcell/v2"
)

// InputMode defines the different states for user input.
type InputMode int

const (
	ModeNormal InputMode = iota
	ModeCommand
)

func (m InputMode) String() string {
	switch m {
	case ModeNormal:
		return "NORMAL"
	case ModeCommand:
		return "COMMAND"
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

var (
	ErrEmptyCommandName = errors.New("command name cannot be empty")
	ErrCommandExists    = errors.New("command already registered")
)

// fastStep is how far the fast movement keys jump.
const fastStep = 8

// ModeHandler turns key presses into editor operations and runs commands.
type ModeHandler struct {
	editor         *core.Editor
	inputProcessor *input.InputProcessor
	eventManager   *event.Manager
	statusBar      *statusbar.StatusBar
	quitSignal     chan<- struct{}
	quitOnce       sync.Once

	currentMode      InputMode
	cmdBuffer        string
	commands         map[string]plugin.CommandFunc
	forceQuitPending bool
}

// Config holds dependencies for the ModeHandler.
type Config struct {
	Editor         *core.Editor
	InputProcessor *input.InputProcessor
	EventManager   *event.Manager
	StatusBar      *statusbar.StatusBar
	QuitSignal     chan<- struct{}
}

// New creates a ModeHandler. Missing dependencies are a programming error.
func New(cfg Config) *ModeHandler {
	if cfg.Editor == nil || cfg.InputProcessor == nil || cfg.EventManager == nil || cfg.StatusBar == nil || cfg.QuitSignal == nil {
		panic("modehandler.New: Missing required dependencies in Config")
	}
	mh := &ModeHandler{
		editor:         cfg.Editor,
		inputProcessor: cfg.InputProcessor,
		eventManager:   cfg.EventManager,
		statusBar:      cfg.StatusBar,
		quitSignal:     cfg.QuitSignal,
		currentMode:    ModeNormal,
		commands:       make(map[string]plugin.CommandFunc),
	}
	mh.statusBar.SetEditorMode(mh.currentMode.String())
	return mh
}

// HandleKeyEvent routes a key press by mode. It reports whether the screen
// needs a redraw.
func (mh *ModeHandler) HandleKeyEvent(ev *tcell.EventKey) bool {
	mh.eventManager.Dispatch(event.TypeKeyPressed, event.KeyPressedData{KeyEvent: ev})

	switch mh.currentMode {
	case ModeNormal:
		return mh.executeAction(mh.inputProcessor.ProcessEvent(ev))
	case ModeCommand:
		return mh.handleActionCommand(mh.inputProcessor.ProcessCommandEvent(ev))
	}
	logger.Warnf("ModeHandler: unknown input mode %v", mh.currentMode)
	return false
}

func (mh *ModeHandler) setMode(m InputMode) {
	mh.currentMode = m
	mh.statusBar.SetEditorMode(m.String())
	mh.statusBar.SetCommandInput(mh.cmdBuffer, m == ModeCommand)
}

// Quit closes the quit channel. Repeated calls are no-ops.
func (mh *ModeHandler) Quit() {
	mh.quitOnce.Do(func() {
		logger.Infof("ModeHandler: quit requested")
		close(mh.quitSignal)
	})
}

// RegisterCommand adds a command to the registry.
func (mh *ModeHandler) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	if name == "" {
		return ErrEmptyCommandName
	}
	if _, exists := mh.commands[name]; exists {
		return fmt.Errorf("'%s': %w", name, ErrCommandExists)
	}
	mh.commands[name] = cmdFunc
	logger.Debugf("ModeHandler: Registered command ':%s'", name)
	return nil
}

// Commands lists registered command names, sorted.
func (mh *ModeHandler) Commands() []string {
	names := make([]string, 0, len(mh.commands))
	for name := range mh.commands {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func (mh *ModeHandler) GetCurrentMode() InputMode {
	return mh.currentMode
}

// GetCommandBuffer returns the command being typed, or "" outside command mode.
func (mh *ModeHandler) GetCommandBuffer() string {
	if mh.currentMode == ModeCommand {
		return mh.cmdBuffer
	}
	return ""
}
