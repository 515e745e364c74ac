// internal/app/editor_api.go
package app

import (
	"github.com/bethropolis/leditor/internal/event"
	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/logger"
	"github.com/bethropolis/leditor/internal/plugin"
	"github.com/bethropolis/leditor/internal/theme"
	"github.com/bethropolis/leditor/internal/types"
	"github.com/gdamore/tcell/v2"
)

var (
	_ plugin.EditorAPI = (*appEditorAPI)(nil)
	_ theme.ThemeAPI   = (*appEditorAPI)(nil)
)

// appEditorAPI is the EditorAPI handed to plugins and app commands.
type appEditorAPI struct {
	app *App
}

func newEditorAPI(app *App) *appEditorAPI {
	return &appEditorAPI{app: app}
}

// --- Level Access ---

func (api *appEditorAPI) GetLevelSize() (int, int) {
	return api.app.editor.Width(), api.app.editor.Height()
}

func (api *appEditorAPI) GetCell(pos types.Position) (geo.Cell, bool) {
	return api.app.editor.Cell(pos)
}

func (api *appEditorAPI) CountCells(layer int) map[geo.GeoType]int {
	return api.app.editor.Count(layer)
}

// --- Cursor ---

func (api *appEditorAPI) GetCursor() types.Position {
	return api.app.editor.GetCursor()
}

func (api *appEditorAPI) SetCursor(pos types.Position) {
	api.app.editor.SetCursor(pos)
}

// --- History ---

func (api *appEditorAPI) HistoryState() plugin.HistoryState {
	j := api.app.editor.Journal()
	return plugin.HistoryState{
		Session:  j.Session(),
		Cursor:   j.Cursor(),
		Len:      j.Len(),
		Capacity: j.Capacity(),
	}
}

func (api *appEditorAPI) Undo() bool {
	return api.app.editor.Undo()
}

func (api *appEditorAPI) Redo() bool {
	return api.app.editor.Redo()
}

// --- Event Bus ---

func (api *appEditorAPI) DispatchEvent(eventType event.Type, data interface{}) {
	api.app.eventManager.Dispatch(eventType, data)
}

func (api *appEditorAPI) SubscribeEvent(eventType event.Type, handler event.Handler) {
	api.app.eventManager.Subscribe(eventType, handler)
}

// --- Commands ---

func (api *appEditorAPI) RegisterCommand(name string, cmdFunc plugin.CommandFunc) error {
	return api.app.GetModeHandler().RegisterCommand(name, cmdFunc)
}

// --- Status Bar ---

func (api *appEditorAPI) SetStatusMessage(format string, args ...interface{}) {
	api.app.SetStatusMessage(format, args...)
}

// --- Theme ---

func (api *appEditorAPI) GetThemeStyle(styleName string) tcell.Style {
	return api.app.GetTheme().GetStyle(styleName)
}

// SetTheme activates a theme, repaints the background and announces the change.
func (api *appEditorAPI) SetTheme(name string) error {
	if err := api.app.themeManager.SetTheme(name); err != nil {
		return err
	}
	current := api.app.themeManager.Current()
	api.app.tuiManager.SetStyle(current.GetStyle(theme.StyleDefault))
	logger.Debugf("EditorAPI: theme now %s", current.Name)
	api.app.eventManager.Dispatch(event.TypeThemeChanged, event.ThemeChangedData{Theme: current.Name})
	return nil
}

func (api *appEditorAPI) GetTheme() *theme.Theme {
	return api.app.GetTheme()
}

func (api *appEditorAPI) ListThemes() []string {
	return api.app.themeManager.ListThemes()
}
