package history

import (
	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/grid"
	"github.com/bethropolis/leditor/internal/logger"
)

// ApplyForward writes the Next state of a onto g (redo / first application).
// It returns the number of cells written.
func ApplyForward(a Action, g grid.Grid) int {
	return apply(a, g, true)
}

// ApplyBackward writes the Previous state of a onto g (undo).
// It returns the number of cells written.
func ApplyBackward(a Action, g grid.Grid) int {
	return apply(a, g, false)
}

// apply is shared by both directions so undo and redo cannot diverge.
// Positions outside g are skipped.
func apply(a Action, g grid.Grid, forward bool) int {
	if a == nil || g == nil {
		return 0
	}
	written := 0
	switch act := a.(type) {
	case CellEdit:
		written = applyCell(act, g, forward)
	case RegionEdit:
		written = applyRegion(act, g, forward)
	case GroupEdit:
		for _, e := range act.Edits {
			written += applyCell(e, g, forward)
		}
	default:
		logger.Warnf("History: cannot apply unknown action type %T", a)
	}
	logger.DebugTagf("history", "Applied %s (forward=%v): %d cells written", a, forward, written)
	return written
}

func applyCell(e CellEdit, g grid.Grid, forward bool) int {
	cell := e.Previous
	if forward {
		cell = e.Next
	}
	if g.Set(e.Position, cell) {
		return 1
	}
	return 0
}

func applyRegion(e RegionEdit, g grid.Grid, forward bool) int {
	src := e.Previous
	if forward {
		src = e.Next
	}
	if src == nil {
		return 0
	}
	written := 0
	for dy := 0; dy < src.Height(); dy++ {
		for dx := 0; dx < src.Width(); dx++ {
			pos := e.Position.Offset(dx, dy)
			cell := src.At(dx, dy)
			if !e.FillAir {
				existing, ok := g.Get(pos)
				if !ok {
					continue
				}
				cell = Overlay(existing, cell, false)
			}
			if g.Set(pos, cell) {
				written++
			}
		}
	}
	return written
}

// Overlay returns src written over existing. With fillAir false an Air src
// keeps existing's terrain; features always come from src.
func Overlay(existing, src geo.Cell, fillAir bool) geo.Cell {
	if fillAir {
		return src.Clone()
	}
	out := existing.Clone()
	out.Features = src.Features
	if !src.IsAir() {
		out.Type = src.Type
	}
	return out
}
