package event

import (
	"fmt"

	"github.com/bethropolis/leditor/internal/types"
	"github.com/gdamore/tcell/v2"
)

// Type identifies the kind of event.
type Type int

const (
	TypeUnknown Type = iota

	// Editor
	TypeGridModified   // cells were written by an edit, undo or redo
	TypeHistoryChanged // the journal cursor or length changed
	TypeCursorMoved    // cursor position or layer changed
	TypeToolChanged    // active tool changed
	TypeLevelLoaded    // a level was created or resized

	TypeKeyPressed

	// Application lifecycle
	TypeAppReady
	TypeAppQuit

	TypeThemeChanged
)

var typeNames = map[Type]string{
	TypeUnknown:        "unknown",
	TypeGridModified:   "grid-modified",
	TypeHistoryChanged: "history-changed",
	TypeCursorMoved:    "cursor-moved",
	TypeToolChanged:    "tool-changed",
	TypeLevelLoaded:    "level-loaded",
	TypeKeyPressed:     "key-pressed",
	TypeAppReady:       "app-ready",
	TypeAppQuit:        "app-quit",
	TypeThemeChanged:   "theme-changed",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("event(%d)", int(t))
}

// Event is the structure passed through the event bus.
type Event struct {
	Type Type
	Data interface{}
}

// GridModifiedData describes cells written on the level.
type GridModifiedData struct {
	Origin types.Position
	Kind   string // action kind: cell, region or group
	Cells  int    // number of cells written
	Undo   bool   // true when the write reverted an action
}

// HistoryChangedData mirrors the journal state after a change.
type HistoryChangedData struct {
	Cursor   int
	Len      int
	Capacity int
}

// CursorMovedData contains the new cursor position.
type CursorMovedData struct {
	NewPosition types.Position
}

// ToolChangedData names the newly active tool.
type ToolChangedData struct {
	Tool string
}

// LevelLoadedData carries the level dimensions.
type LevelLoadedData struct {
	Width  int
	Height int
}

// KeyPressedData contains the raw tcell key event.
type KeyPressedData struct {
	KeyEvent *tcell.EventKey
}

type AppQuitData struct{}

type AppReadyData struct{}

// ThemeChangedData names the theme now in use.
type ThemeChangedData struct {
	Theme string
}
