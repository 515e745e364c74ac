// internal/plugin/plugin.go
package plugin

import (
	"github.com/bethropolis/leditor/internal/event"
	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/theme"
	"github.com/bethropolis/leditor/internal/types"
	"github.com/gdamore/tcell/v2"
)

// CommandFunc is the signature of commands registered by plugins.
type CommandFunc func(args []string) error

// HistoryState summarises the edit journal.
type HistoryState struct {
	Session  string
	Cursor   int // -1 when nothing can be undone
	Len      int
	Capacity int
}

// EditorAPI is what plugins may touch. Level access is read-only; changes go
// through undo/redo so they stay in the journal.
type EditorAPI interface {
	// --- Level Access ---
	GetLevelSize() (width, height int)
	GetCell(pos types.Position) (geo.Cell, bool)
	CountCells(layer int) map[geo.GeoType]int

	// --- Cursor ---
	GetCursor() types.Position
	SetCursor(pos types.Position)

	// --- History ---
	HistoryState() HistoryState
	Undo() bool
	Redo() bool

	// --- Event Bus ---
	DispatchEvent(eventType event.Type, data interface{})
	SubscribeEvent(eventType event.Type, handler event.Handler)

	// --- Commands ---
	RegisterCommand(name string, cmdFunc CommandFunc) error

	// --- Status Bar ---
	SetStatusMessage(format string, args ...interface{})

	// --- Theme ---
	GetThemeStyle(styleName string) tcell.Style
	SetTheme(name string) error
	GetTheme() *theme.Theme
	ListThemes() []string
}

// Plugin is implemented by every plugin.
type Plugin interface {
	// Name returns the unique identifier of the plugin.
	Name() string

	// Initialize is called once at startup. Plugins subscribe to events and
	// register commands here.
	Initialize(api EditorAPI) error

	// Shutdown is called once when the editor is closing.
	Shutdown() error
}
