package app

import (
	"github.com/bethropolis/leditor/internal/event"
	"github.com/bethropolis/leditor/internal/logger"
)

func (a *App) subscribeEvents() {
	a.eventManager.Subscribe(event.TypeGridModified, a.handleGridModified)
	a.eventManager.Subscribe(event.TypeHistoryChanged, a.handleHistoryChanged)
	a.eventManager.Subscribe(event.TypeCursorMoved, a.handleRedrawOnly)
	a.eventManager.Subscribe(event.TypeToolChanged, a.handleRedrawOnly)
	a.eventManager.Subscribe(event.TypeLevelLoaded, a.handleLevelLoaded)
	a.eventManager.Subscribe(event.TypeThemeChanged, a.handleRedrawOnly)
}

func (a *App) handleGridModified(e event.Event) bool {
	if data, ok := e.Data.(event.GridModifiedData); ok {
		logger.DebugTagf("history", "App: %s edit at %v wrote %d cells (undo=%v)",
			data.Kind, data.Origin, data.Cells, data.Undo)
	}
	a.requestRedraw()
	return false
}

func (a *App) handleHistoryChanged(e event.Event) bool {
	if data, ok := e.Data.(event.HistoryChangedData); ok {
		logger.DebugTagf("history", "App: journal cursor %d of %d (capacity %d)",
			data.Cursor, data.Len, data.Capacity)
	}
	a.requestRedraw()
	return false
}

func (a *App) handleLevelLoaded(e event.Event) bool {
	if data, ok := e.Data.(event.LevelLoadedData); ok {
		a.statusBar.SetTemporaryMessage("Level %dx%d, history cleared", data.Width, data.Height)
	}
	a.requestRedraw()
	return false
}

func (a *App) handleRedrawOnly(event.Event) bool {
	a.requestRedraw()
	return false
}
