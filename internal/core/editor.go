// Package core holds the geometry editor: the level, its edit journal and the
// tools that turn user gestures into recorded actions.
package core

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bethropolis/leditor/internal/core/history"
	"github.com/bethropolis/leditor/internal/event"
	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/grid"
	"github.com/bethropolis/leditor/internal/logger"
	"github.com/bethropolis/leditor/internal/types"
)

var (
	// ErrNoMemory is returned when pasting before anything was copied.
	ErrNoMemory = errors.New("nothing copied")
	// ErrNoBackLayer is returned when back-copying from the last layer.
	ErrNoBackLayer = errors.New("no layer behind the current one")
	// ErrInvalidLayer is returned when selecting a layer outside 0..2.
	ErrInvalidLayer = errors.New("invalid layer")
)

// DefaultFill is the terrain new levels start with, per layer.
var DefaultFill = [types.LayerCount]geo.GeoType{geo.Solid, geo.Solid, geo.Air}

// Config describes the level an Editor starts with.
type Config struct {
	Width        int
	Height       int
	HistoryLimit int
	Layer        int
	Seed         int64
}

// Editor owns the level and mediates every change to it through the journal.
// It is safe to read from the draw loop while input is handled elsewhere.
type Editor struct {
	mu sync.RWMutex

	level   *grid.Matrix
	journal *history.Journal
	limit   int

	cursor types.Position
	tool   Tool
	brush  geo.GeoType

	anchor    types.Position
	hasAnchor bool

	stroke []history.CellEdit // nil when no stroke is in progress
	memory *grid.Region

	noise *noiseField

	eventManager *event.Manager
}

// NewEditor creates an editor on a fresh level.
func NewEditor(cfg Config) (*Editor, error) {
	level, err := grid.NewMatrix(cfg.Width, cfg.Height, DefaultFill)
	if err != nil {
		return nil, fmt.Errorf("creating level: %w", err)
	}
	journal, err := history.NewJournal(cfg.HistoryLimit)
	if err != nil {
		return nil, err
	}
	layer := cfg.Layer
	if layer < 0 || layer >= types.LayerCount {
		layer = 0
	}
	return &Editor{
		level:   level,
		journal: journal,
		limit:   cfg.HistoryLimit,
		cursor:  types.Position{Layer: layer},
		tool:    ToolPaint,
		brush:   geo.Solid,
		noise:   newNoiseField(cfg.Seed),
	}, nil
}

// SetEventManager sets the event manager for dispatching events
func (e *Editor) SetEventManager(mgr *event.Manager) {
	e.eventManager = mgr
}

func (e *Editor) GetEventManager() *event.Manager {
	return e.eventManager
}

// Journal exposes the edit history. The journal does its own locking.
func (e *Editor) Journal() *history.Journal {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.journal
}

func (e *Editor) Width() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.level.Width()
}

func (e *Editor) Height() int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.level.Height()
}

// Cell returns the level cell at pos.
func (e *Editor) Cell(pos types.Position) (geo.Cell, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.level.Get(pos)
}

// LayerSnapshot copies a whole layer for drawing.
func (e *Editor) LayerSnapshot(layer int) *grid.Region {
	e.mu.RLock()
	defer e.mu.RUnlock()
	r, err := grid.Snapshot(e.level, types.Position{Layer: layer}, e.level.Width(), e.level.Height())
	if err != nil {
		return nil
	}
	return r
}

// Count tallies terrain kinds on a layer.
func (e *Editor) Count(layer int) map[geo.GeoType]int {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.level.Count(layer)
}

// Resize changes the level dimensions. Edits recorded against the old
// dimensions cannot be replayed, so the journal is cleared.
func (e *Editor) Resize(width, height int) error {
	e.mu.Lock()
	if err := e.level.Resize(width, height, DefaultFill); err != nil {
		e.mu.Unlock()
		return fmt.Errorf("resizing level: %w", err)
	}
	e.resetLocked()
	e.journal.Clear()
	e.mu.Unlock()

	logger.Infof("Editor: level resized to %dx%d", width, height)
	e.publish(outcome{level: true, history: true, cursor: true})
	return nil
}

// NewLevel replaces the level with a fresh one and starts a new journal.
func (e *Editor) NewLevel(width, height int) error {
	level, err := grid.NewMatrix(width, height, DefaultFill)
	if err != nil {
		return fmt.Errorf("creating level: %w", err)
	}
	journal, err := history.NewJournal(e.limit)
	if err != nil {
		return err
	}

	e.mu.Lock()
	e.level = level
	e.journal = journal
	e.resetLocked()
	e.mu.Unlock()

	logger.Infof("Editor: new %dx%d level", width, height)
	e.publish(outcome{level: true, history: true, cursor: true})
	return nil
}

// resetLocked drops gesture state and clamps the cursor to the level.
func (e *Editor) resetLocked() {
	e.stroke = nil
	e.hasAnchor = false
	e.cursor = e.clampLocked(e.cursor)
}

// outcome collects what changed under the lock so events can be
// dispatched after it is released; handlers may call back into the editor.
type outcome struct {
	modified []event.GridModifiedData
	history  bool
	cursor   bool
	tool     bool
	level    bool
}

func (o *outcome) wrote(a history.Action, cells int, undo bool) {
	o.modified = append(o.modified, event.GridModifiedData{
		Origin: a.Origin(),
		Kind:   a.Kind().String(),
		Cells:  cells,
		Undo:   undo,
	})
}

func (e *Editor) publish(o outcome) {
	if e.eventManager == nil {
		return
	}
	if o.level {
		e.eventManager.Dispatch(event.TypeLevelLoaded, event.LevelLoadedData{Width: e.Width(), Height: e.Height()})
	}
	for _, m := range o.modified {
		e.eventManager.Dispatch(event.TypeGridModified, m)
	}
	if o.history {
		j := e.Journal()
		e.eventManager.Dispatch(event.TypeHistoryChanged, event.HistoryChangedData{
			Cursor:   j.Cursor(),
			Len:      j.Len(),
			Capacity: j.Capacity(),
		})
	}
	if o.cursor {
		e.eventManager.Dispatch(event.TypeCursorMoved, event.CursorMovedData{NewPosition: e.GetCursor()})
	}
	if o.tool {
		e.eventManager.Dispatch(event.TypeToolChanged, event.ToolChangedData{Tool: e.Tool().String()})
	}
}
