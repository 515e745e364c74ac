// Package history provides the bounded undo/redo journal of geometry edits
// and the single apply protocol used to replay or revert them on a grid.
package history

import (
	"fmt"

	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/grid"
	"github.com/bethropolis/leditor/internal/types"
)

// Kind identifies the variant of an Action.
type Kind int

const (
	KindCell Kind = iota
	KindRegion
	KindGroup
)

func (k Kind) String() string {
	switch k {
	case KindCell:
		return "cell"
	case KindRegion:
		return "region"
	case KindGroup:
		return "group"
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Action is one reversible edit. The set of implementations is closed:
// CellEdit, RegionEdit and GroupEdit.
type Action interface {
	Kind() Kind
	Origin() types.Position
	String() string
	sealed()
}

// CellEdit replaces a single cell.
type CellEdit struct {
	Position types.Position
	Previous geo.Cell
	Next     geo.Cell
}

func (CellEdit) Kind() Kind               { return KindCell }
func (e CellEdit) Origin() types.Position { return e.Position }
func (CellEdit) sealed()                  {}

// Changed reports whether the edit actually alters the cell.
func (e CellEdit) Changed() bool { return !e.Previous.Equal(e.Next) }

func (e CellEdit) String() string {
	return fmt.Sprintf("cell %v %v -> %v", e.Position, e.Previous, e.Next)
}

// RegionEdit replaces a rectangle of cells on one layer. When FillAir is
// false, Air cells of the applied snapshot keep the grid's existing terrain
// (features are always written).
type RegionEdit struct {
	Position types.Position
	Previous *grid.Region
	Next     *grid.Region
	FillAir  bool
}

// NewRegionEdit builds a RegionEdit from before/after snapshots. Both
// snapshots are copied so later changes to the arguments cannot leak in.
func NewRegionEdit(origin types.Position, previous, next *grid.Region, fillAir bool) (RegionEdit, error) {
	if previous == nil || next == nil {
		return RegionEdit{}, fmt.Errorf("region edit at %v: missing snapshot", origin)
	}
	if !previous.SameSize(next) {
		return RegionEdit{}, fmt.Errorf("region edit at %v: snapshot sizes differ (%dx%d vs %dx%d)",
			origin, previous.Width(), previous.Height(), next.Width(), next.Height())
	}
	return RegionEdit{
		Position: origin,
		Previous: previous.Clone(),
		Next:     next.Clone(),
		FillAir:  fillAir,
	}, nil
}

func (RegionEdit) Kind() Kind               { return KindRegion }
func (e RegionEdit) Origin() types.Position { return e.Position }
func (RegionEdit) sealed()                  {}

func (e RegionEdit) String() string {
	w, h := 0, 0
	if e.Next != nil {
		w, h = e.Next.Width(), e.Next.Height()
	}
	return fmt.Sprintf("region %v %dx%d fillAir=%v", e.Position, w, h, e.FillAir)
}

// GroupEdit is a set of cell edits committed as one step, e.g. a brush stroke.
// Positions are pairwise distinct, so application order does not matter.
type GroupEdit struct {
	Edits []CellEdit
}

// NewGroupEdit collapses repeated positions into one edit that keeps the
// first Previous and the last Next, preserving first-touch order.
func NewGroupEdit(edits ...CellEdit) GroupEdit {
	index := make(map[types.Position]int, len(edits))
	out := make([]CellEdit, 0, len(edits))
	for _, e := range edits {
		if i, seen := index[e.Position]; seen {
			out[i].Next = e.Next.Clone()
			continue
		}
		index[e.Position] = len(out)
		out = append(out, CellEdit{Position: e.Position, Previous: e.Previous.Clone(), Next: e.Next.Clone()})
	}
	return GroupEdit{Edits: out}
}

func (GroupEdit) Kind() Kind { return KindGroup }

// Origin returns the position of the first edit, or the zero position when empty.
func (e GroupEdit) Origin() types.Position {
	if len(e.Edits) == 0 {
		return types.Position{}
	}
	return e.Edits[0].Position
}

func (GroupEdit) sealed() {}

func (e GroupEdit) String() string {
	return fmt.Sprintf("group of %d cells from %v", len(e.Edits), e.Origin())
}
