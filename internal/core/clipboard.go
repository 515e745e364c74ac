package core

import (
	"github.com/bethropolis/leditor/internal/core/history"
	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/grid"
	"github.com/bethropolis/leditor/internal/logger"
	"github.com/bethropolis/leditor/internal/types"
)

// Memory returns a copy of the copied region, or nil.
func (e *Editor) Memory() *grid.Region {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if e.memory == nil {
		return nil
	}
	return e.memory.Clone()
}

// SetMemory replaces the copied region, e.g. with one read from the system clipboard.
func (e *Editor) SetMemory(r *grid.Region) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if r == nil {
		e.memory = nil
		return
	}
	e.memory = r.Clone()
}

func (e *Editor) copyLocked(rect Rect) error {
	r, err := grid.Snapshot(e.level, rect.Min, rect.Width(), rect.Height())
	if err != nil {
		return err
	}
	e.memory = r
	logger.Debugf("Editor: copied %dx%d region from %v", r.Width(), r.Height(), rect.Min)
	return nil
}

// middle is the offset of the cell a pasted region is centred on.
func middle(n int) int {
	if n < 3 {
		return 0
	}
	if n%2 == 0 {
		return n/2 - 1
	}
	return n / 2
}

// PasteMemory pastes the copied region centred on the cursor. Air cells in
// memory keep the level's terrain while features are always pasted. The
// merged result is recorded, so undo restores the level exactly.
func (e *Editor) PasteMemory() error {
	var o outcome
	e.mu.Lock()
	if e.memory == nil {
		e.mu.Unlock()
		return ErrNoMemory
	}
	mem := e.memory
	rect := Rect{Min: types.Position{
		X:     e.cursor.X - middle(mem.Width()),
		Y:     e.cursor.Y - middle(mem.Height()),
		Layer: e.cursor.Layer,
	}}
	rect.Max = rect.Min.Offset(mem.Width()-1, mem.Height()-1)

	edit, changed, err := e.regionEditLocked(rect, rect.Min.Layer, true, func(x, y int, c geo.Cell) geo.Cell {
		return history.Overlay(c, mem.At(x-rect.Min.X, y-rect.Min.Y), false)
	})
	if err == nil && changed {
		e.commitLocked(&o, edit)
	}
	e.mu.Unlock()

	e.publish(o)
	return err
}
