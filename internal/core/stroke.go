package core

import (
	"github.com/bethropolis/leditor/internal/core/history"
	"github.com/bethropolis/leditor/internal/logger"
	"github.com/bethropolis/leditor/internal/types"
)

// Stroking reports whether a brush stroke is in progress.
func (e *Editor) Stroking() bool {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.stroke != nil
}

// BeginStroke starts a brush stroke and paints the cursor cell. Cells are
// written as the stroke moves; the journal sees a single group at EndStroke.
func (e *Editor) BeginStroke() {
	var o outcome
	e.mu.Lock()
	if e.stroke == nil {
		e.stroke = []history.CellEdit{}
		e.hasAnchor = false
		e.strokeAtLocked(e.cursor, &o)
		logger.Debugf("Editor: stroke started at %v", e.cursor)
	}
	e.mu.Unlock()
	e.publish(o)
}

// StrokeAt paints pos as part of the current stroke. It does nothing when
// no stroke is in progress.
func (e *Editor) StrokeAt(pos types.Position) {
	var o outcome
	e.mu.Lock()
	if e.stroke != nil {
		pos.Layer = e.cursor.Layer
		e.strokeAtLocked(pos, &o)
	}
	e.mu.Unlock()
	e.publish(o)
}

func (e *Editor) strokeAtLocked(pos types.Position, o *outcome) {
	prev, ok := e.level.Get(pos)
	if !ok {
		return
	}
	next := e.brushCellLocked(pos, prev)
	if next.Equal(prev) {
		return
	}
	edit := history.CellEdit{Position: pos, Previous: prev, Next: next}
	history.ApplyForward(edit, e.level)
	e.stroke = append(e.stroke, edit)
	o.wrote(edit, 1, false)
}

// EndStroke commits the stroke as one group edit. A stroke that left every
// cell as it was records nothing.
func (e *Editor) EndStroke() {
	var o outcome
	e.mu.Lock()
	e.endStrokeLocked(&o)
	e.mu.Unlock()
	e.publish(o)
}

func (e *Editor) endStrokeLocked(o *outcome) {
	if e.stroke == nil {
		return
	}
	group := history.NewGroupEdit(e.stroke...)
	e.stroke = nil

	changed := group.Edits[:0]
	for _, edit := range group.Edits {
		if edit.Changed() {
			changed = append(changed, edit)
		}
	}
	group.Edits = changed
	if len(group.Edits) == 0 {
		return
	}
	// Cells are already on the level, so only the journal is updated.
	e.journal.Proceed(group)
	o.history = true
	logger.Debugf("Editor: stroke committed, %s", group)
}

// CancelStroke reverts the cells painted by the current stroke.
// It reports whether a stroke was in progress.
func (e *Editor) CancelStroke() bool {
	var o outcome
	e.mu.Lock()
	active := e.stroke != nil
	if active {
		group := history.NewGroupEdit(e.stroke...)
		e.stroke = nil
		if len(group.Edits) > 0 {
			o.wrote(group, history.ApplyBackward(group, e.level), true)
		}
	}
	e.mu.Unlock()
	e.publish(o)
	return active
}
