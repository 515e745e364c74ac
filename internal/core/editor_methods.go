package core

import (
	"github.com/bethropolis/leditor/internal/core/history"
	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/logger"
	"github.com/bethropolis/leditor/internal/types"
)

// commitLocked applies actions to the level and records them as one batch.
func (e *Editor) commitLocked(o *outcome, actions ...history.Action) {
	if len(actions) == 0 {
		return
	}
	for _, a := range actions {
		o.wrote(a, history.ApplyForward(a, e.level), false)
	}
	e.journal.ProceedMany(actions...)
	o.history = true
}

// brushCellLocked computes what painting the brush at pos produces.
func (e *Editor) brushCellLocked(pos types.Position, current geo.Cell) geo.Cell {
	if isSlope(e.brush) {
		if slope, ok := resolveSlope(e.level, pos); ok {
			return current.WithType(slope)
		}
		return current
	}
	return current.WithType(e.brush)
}

// PaintCell paints the brush terrain on the cursor cell.
// It reports whether the level changed.
func (e *Editor) PaintCell() bool {
	var o outcome
	e.mu.Lock()
	pos := e.cursor
	prev, ok := e.level.Get(pos)
	if ok {
		next := e.brushCellLocked(pos, prev)
		if !next.Equal(prev) {
			e.commitLocked(&o, history.CellEdit{Position: pos, Previous: prev, Next: next})
		}
	}
	e.mu.Unlock()

	e.publish(o)
	return len(o.modified) > 0
}

// ToggleFeature flips a feature on the cursor cell. Enabling a shortcut
// entrance clears the cell's terrain to air.
func (e *Editor) ToggleFeature(id geo.FeatureID) bool {
	var o outcome
	e.mu.Lock()
	pos := e.cursor
	if prev, ok := e.level.Get(pos); ok {
		e.commitLocked(&o, history.CellEdit{Position: pos, Previous: prev, Next: prev.Toggle(id)})
	}
	e.mu.Unlock()

	e.publish(o)
	return len(o.modified) > 0
}

// Undo reverts the most recent action. A stroke in progress is committed
// first so it is what gets undone.
func (e *Editor) Undo() bool {
	var o outcome
	e.mu.Lock()
	e.endStrokeLocked(&o)
	e.hasAnchor = false
	a, ok := e.journal.Undo()
	if ok {
		o.wrote(a, history.ApplyBackward(a, e.level), true)
		o.history = true
		logger.Debugf("Editor: undid %s", a)
	}
	e.mu.Unlock()

	e.publish(o)
	return ok
}

// Redo replays the next undone action.
func (e *Editor) Redo() bool {
	var o outcome
	e.mu.Lock()
	e.endStrokeLocked(&o)
	e.hasAnchor = false
	a, ok := e.journal.Redo()
	if ok {
		o.wrote(a, history.ApplyForward(a, e.level), false)
		o.history = true
		logger.Debugf("Editor: redid %s", a)
	}
	e.mu.Unlock()

	e.publish(o)
	return ok
}

// Cancel abandons a pending stroke or rectangle.
// It reports whether there was anything to cancel.
func (e *Editor) Cancel() bool {
	if e.CancelStroke() {
		return true
	}
	return e.CancelRect()
}
