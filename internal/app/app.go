// internal/app/app.go
package app

import (
	"fmt"

	"github.com/bethropolis/leditor/internal/config"
	"github.com/bethropolis/leditor/internal/core"
	"github.com/bethropolis/leditor/internal/core/clipboard"
	"github.com/bethropolis/leditor/internal/event"
	"github.com/bethropolis/leditor/internal/input"
	"github.com/bethropolis/leditor/internal/logger"
	"github.com/bethropolis/leditor/internal/modehandler"
	"github.com/bethropolis/leditor/internal/plugin"
	"github.com/bethropolis/leditor/internal/statusbar"
	"github.com/bethropolis/leditor/internal/theme"
	"github.com/bethropolis/leditor/internal/tui"
	"github.com/gdamore/tcell/v2"
)

// App wires the editor, the terminal and the plugins together and runs the
// main loop.
type App struct {
	cfg           *config.Config
	tuiManager    *tui.TUI
	editor        *core.Editor
	statusBar     *statusbar.StatusBar
	eventManager  *event.Manager
	pluginManager *plugin.Manager
	modeHandler   *modehandler.ModeHandler
	themeManager  *theme.Manager
	clipboard     *clipboard.Manager
	editorAPI     plugin.EditorAPI

	quit          chan struct{}
	redrawRequest chan struct{}
}

// NewApp creates the application on the real terminal.
func NewApp(cfg *config.Config) (*App, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return newApp(cfg, screen, clipboard.NewManager(cfg.Editor.SystemClipboard), config.ThemesDir())
}

func newApp(cfg *config.Config, screen tcell.Screen, clip *clipboard.Manager, themesDir string) (*App, error) {
	editor, err := core.NewEditor(core.Config{
		Width:        cfg.Editor.LevelWidth,
		Height:       cfg.Editor.LevelHeight,
		HistoryLimit: cfg.Editor.HistoryLimit,
		Layer:        cfg.Editor.DefaultLayer,
		Seed:         cfg.Editor.NoiseSeed,
	})
	if err != nil {
		return nil, fmt.Errorf("editor initialization failed: %w", err)
	}

	themeManager := theme.NewManager(themesDir)
	tuiManager, err := tui.NewWithScreen(screen, themeManager.Current().GetStyle(theme.StyleDefault))
	if err != nil {
		return nil, fmt.Errorf("TUI initialization failed: %w", err)
	}

	statusBar := statusbar.New(statusbar.Config{MessageTimeout: config.MessageTimeout})
	eventManager := event.NewManager()
	quitChan := make(chan struct{})

	editor.SetEventManager(eventManager)

	modeHandler := modehandler.New(modehandler.Config{
		Editor:         editor,
		InputProcessor: input.NewInputProcessor(),
		EventManager:   eventManager,
		StatusBar:      statusBar,
		QuitSignal:     quitChan,
	})

	a := &App{
		cfg:           cfg,
		tuiManager:    tuiManager,
		editor:        editor,
		statusBar:     statusBar,
		eventManager:  eventManager,
		pluginManager: plugin.NewManager(),
		modeHandler:   modeHandler,
		themeManager:  themeManager,
		clipboard:     clip,
		quit:          quitChan,
		redrawRequest: make(chan struct{}, 1),
	}
	a.editorAPI = newEditorAPI(a)

	a.subscribeEvents()
	registerAppCommands(a)

	if err := registerPlugins(a.pluginManager); err != nil {
		logger.Warnf("App: some plugins failed to register: %v", err)
	}
	if err := a.pluginManager.InitializePlugins(a.editorAPI); err != nil {
		logger.Warnf("App: some plugins failed to initialize: %v", err)
	}

	logger.Infof("App: %dx%d level, history limit %d, session %s",
		editor.Width(), editor.Height(), cfg.Editor.HistoryLimit, editor.Journal().Session())
	return a, nil
}

const startupHint = "leditor - Ctrl+Z/Ctrl+Y or u/U undo/redo | :q quit | ESC cancel"

// Run starts the input goroutine and draws until quit is signalled.
func (a *App) Run() error {
	defer a.tuiManager.Close()
	defer a.pluginManager.ShutdownPlugins()

	go a.eventLoop()

	a.eventManager.Dispatch(event.TypeAppReady, event.AppReadyData{})
	a.statusBar.SetTemporaryMessage(startupHint)
	a.requestRedraw()

	for {
		select {
		case <-a.quit:
			a.eventManager.Dispatch(event.TypeAppQuit, event.AppQuitData{})
			logger.Infof("Exiting application with %d journal entries.", a.editor.Journal().Len())
			return nil
		case <-a.redrawRequest:
			a.drawEditor()
		}
	}
}

// eventLoop delegates key events to the mode handler.
func (a *App) eventLoop() {
	for {
		ev := a.tuiManager.PollEvent()
		if ev == nil {
			return
		}

		needsRedraw := false
		switch eventData := ev.(type) {
		case *tcell.EventResize:
			a.tuiManager.Sync()
			needsRedraw = true
		case *tcell.EventKey:
			needsRedraw = a.modeHandler.HandleKeyEvent(eventData)
		}

		if needsRedraw {
			a.requestRedraw()
		}
	}
}

// GetModeHandler allows the API adapter to reach the command registry.
func (a *App) GetModeHandler() *modehandler.ModeHandler {
	return a.modeHandler
}

func (a *App) GetTheme() *theme.Theme {
	return a.themeManager.Current()
}
