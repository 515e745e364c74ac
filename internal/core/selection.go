package core

import (
	"fmt"

	"github.com/bethropolis/leditor/internal/core/history"
	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/grid"
	"github.com/bethropolis/leditor/internal/logger"
	"github.com/bethropolis/leditor/internal/types"
)

// Rect is an inclusive cell rectangle on one layer.
type Rect struct {
	Min, Max types.Position
}

func (r Rect) Width() int  { return r.Max.X - r.Min.X + 1 }
func (r Rect) Height() int { return r.Max.Y - r.Min.Y + 1 }

// Contains reports whether (x, y) lies in r, ignoring layers.
func (r Rect) Contains(x, y int) bool {
	return x >= r.Min.X && x <= r.Max.X && y >= r.Min.Y && y <= r.Max.Y
}

func rectBetween(a, b types.Position) Rect {
	return Rect{
		Min: types.Position{X: min(a.X, b.X), Y: min(a.Y, b.Y), Layer: b.Layer},
		Max: types.Position{X: max(a.X, b.X), Y: max(a.Y, b.Y), Layer: b.Layer},
	}
}

// Anchor returns the first corner of a pending rectangle.
func (e *Editor) Anchor() (types.Position, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.anchor, e.hasAnchor
}

// PendingRect returns the rectangle between the anchor and the cursor.
func (e *Editor) PendingRect() (Rect, bool) {
	e.mu.RLock()
	defer e.mu.RUnlock()
	if !e.hasAnchor {
		return Rect{}, false
	}
	return rectBetween(e.anchor, e.cursor), true
}

// CancelRect drops a pending rectangle. It reports whether one was pending.
func (e *Editor) CancelRect() bool {
	e.mu.Lock()
	pending := e.hasAnchor
	e.hasAnchor = false
	e.mu.Unlock()
	if pending {
		e.publish(outcome{cursor: true})
	}
	return pending
}

// RectClick drives the two-phase rectangle tools: the first click sets the
// anchor at the cursor, the second runs the active tool over the rectangle.
// With the paint tool it paints the cursor cell instead.
func (e *Editor) RectClick() error {
	if e.Tool() == ToolPaint {
		e.PaintCell()
		return nil
	}

	var o outcome
	e.mu.Lock()
	if !e.hasAnchor {
		e.endStrokeLocked(&o)
		e.anchor = e.cursor
		e.hasAnchor = true
		e.mu.Unlock()
		o.cursor = true
		e.publish(o)
		return nil
	}
	rect := rectBetween(e.anchor, e.cursor)
	e.hasAnchor = false
	err := e.applyRectLocked(rect, &o)
	e.mu.Unlock()

	o.cursor = true
	e.publish(o)
	return err
}

func (e *Editor) applyRectLocked(rect Rect, o *outcome) error {
	logger.Debugf("Editor: %s over %dx%d at %v", e.tool, rect.Width(), rect.Height(), rect.Min)
	switch e.tool {
	case ToolRectSolid:
		return e.fillRectLocked(rect, rect.Min.Layer, o, func(_, _ int, c geo.Cell) geo.Cell { return c.WithType(geo.Solid) })
	case ToolRectAir:
		return e.fillRectLocked(rect, rect.Min.Layer, o, func(_, _ int, c geo.Cell) geo.Cell { return c.WithType(geo.Air) })
	case ToolNoise:
		return e.fillRectLocked(rect, rect.Min.Layer, o, func(x, y int, c geo.Cell) geo.Cell {
			return c.WithType(e.noise.terrain(x, y))
		})
	case ToolEraseAll:
		return e.eraseAllLocked(rect, o)
	case ToolBackCopy:
		return e.backCopyLocked(rect, o)
	case ToolCopy:
		return e.copyLocked(rect)
	}
	return fmt.Errorf("tool %s does not work on rectangles", e.tool)
}

// regionEditLocked snapshots rect on layer and builds the edit produced by
// transform. It returns false when transform leaves every cell unchanged.
func (e *Editor) regionEditLocked(rect Rect, layer int, fillAir bool, transform func(x, y int, c geo.Cell) geo.Cell) (history.Action, bool, error) {
	origin := types.Position{X: rect.Min.X, Y: rect.Min.Y, Layer: layer}
	prev, err := grid.Snapshot(e.level, origin, rect.Width(), rect.Height())
	if err != nil {
		return nil, false, err
	}
	next := prev.Clone()
	for dy := 0; dy < rect.Height(); dy++ {
		for dx := 0; dx < rect.Width(); dx++ {
			next.Put(dx, dy, transform(origin.X+dx, origin.Y+dy, prev.At(dx, dy)))
		}
	}
	if next.Equal(prev) {
		return nil, false, nil
	}
	edit, err := history.NewRegionEdit(origin, prev, next, fillAir)
	if err != nil {
		return nil, false, err
	}
	return edit, true, nil
}

func (e *Editor) fillRectLocked(rect Rect, layer int, o *outcome, transform func(x, y int, c geo.Cell) geo.Cell) error {
	edit, changed, err := e.regionEditLocked(rect, layer, true, transform)
	if err != nil || !changed {
		return err
	}
	e.commitLocked(o, edit)
	return nil
}

// eraseAllLocked clears terrain and features in rect on every layer,
// recording one region edit per layer that changes.
func (e *Editor) eraseAllLocked(rect Rect, o *outcome) error {
	var edits []history.Action
	for layer := 0; layer < types.LayerCount; layer++ {
		edit, changed, err := e.regionEditLocked(rect, layer, true, func(_, _ int, _ geo.Cell) geo.Cell { return geo.Default() })
		if err != nil {
			return err
		}
		if changed {
			edits = append(edits, edit)
		}
	}
	e.commitLocked(o, edits...)
	return nil
}

// backCopyLocked copies the terrain of rect onto the layer behind it.
// Features on the target layer are kept.
func (e *Editor) backCopyLocked(rect Rect, o *outcome) error {
	src := rect.Min.Layer
	if src+1 >= types.LayerCount {
		return fmt.Errorf("back copy from layer %d: %w", src+1, ErrNoBackLayer)
	}
	return e.fillRectLocked(rect, src+1, o, func(x, y int, c geo.Cell) geo.Cell {
		front, _ := e.level.Get(types.Position{X: x, Y: y, Layer: src})
		return c.WithType(front.Type)
	})
}
