package core

import (
	"fmt"

	"github.com/bethropolis/leditor/internal/types"
)

// GetCursor returns the cursor position, including the active layer.
func (e *Editor) GetCursor() types.Position {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.cursor
}

func (e *Editor) clampLocked(pos types.Position) types.Position {
	pos.X = max(0, min(pos.X, e.level.Width()-1))
	pos.Y = max(0, min(pos.Y, e.level.Height()-1))
	if !pos.ValidLayer() {
		pos.Layer = 0
	}
	return pos
}

// MoveCursor moves the cursor by a delta, clamped to the level. During a
// brush stroke the new cell is painted.
func (e *Editor) MoveCursor(dx, dy int) {
	e.SetCursor(e.GetCursor().Offset(dx, dy))
}

// SetCursor places the cursor on the active layer, clamped to the level.
func (e *Editor) SetCursor(pos types.Position) {
	var o outcome
	e.mu.Lock()
	pos.Layer = e.cursor.Layer
	pos = e.clampLocked(pos)
	if pos == e.cursor {
		e.mu.Unlock()
		return
	}
	e.cursor = pos
	o.cursor = true
	if e.stroke != nil {
		e.strokeAtLocked(pos, &o)
	}
	e.mu.Unlock()

	e.publish(o)
}

// SetLayer switches the active layer. A pending stroke is committed and a
// pending rectangle dropped, since both belong to the previous layer.
func (e *Editor) SetLayer(layer int) error {
	if layer < 0 || layer >= types.LayerCount {
		return fmt.Errorf("%w %d: want 1-%d", ErrInvalidLayer, layer+1, types.LayerCount)
	}
	var o outcome
	e.mu.Lock()
	if e.cursor.Layer == layer {
		e.mu.Unlock()
		return nil
	}
	e.endStrokeLocked(&o)
	e.hasAnchor = false
	e.cursor.Layer = layer
	o.cursor = true
	e.mu.Unlock()

	e.publish(o)
	return nil
}

// CycleLayer moves to the next layer, wrapping around.
func (e *Editor) CycleLayer() {
	_ = e.SetLayer((e.GetCursor().Layer + 1) % types.LayerCount)
}
