package grid

import (
	"fmt"

	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/types"
)

// Region is an owned, row-major rectangle of cells with explicit dimensions.
type Region struct {
	width  int
	height int
	cells  []geo.Cell
}

// NewRegion returns a width x height region of Air cells.
func NewRegion(width, height int) (*Region, error) {
	if !validSize(width, height) {
		return nil, fmt.Errorf("new region %dx%d: %w", width, height, ErrInvalidSize)
	}
	return &Region{
		width:  width,
		height: height,
		cells:  make([]geo.Cell, width*height),
	}, nil
}

// FilledRegion returns a region where every cell is a copy of cell.
func FilledRegion(width, height int, cell geo.Cell) (*Region, error) {
	r, err := NewRegion(width, height)
	if err != nil {
		return nil, err
	}
	for i := range r.cells {
		r.cells[i] = cell.Clone()
	}
	return r, nil
}

// Snapshot copies the rectangle of layer origin.Layer starting at origin out
// of g. Cells that fall outside g are recorded as Air.
func Snapshot(g Grid, origin types.Position, width, height int) (*Region, error) {
	r, err := NewRegion(width, height)
	if err != nil {
		return nil, err
	}
	for dy := 0; dy < height; dy++ {
		for dx := 0; dx < width; dx++ {
			if c, ok := g.Get(origin.Offset(dx, dy)); ok {
				r.cells[dy*width+dx] = c
			}
		}
	}
	return r, nil
}

// Width returns the number of columns.
func (r *Region) Width() int { return r.width }

// Height returns the number of rows.
func (r *Region) Height() int { return r.height }

func (r *Region) inBounds(x, y int) bool {
	return x >= 0 && x < r.width && y >= 0 && y < r.height
}

// At returns a copy of the cell at column x, row y, or Air when out of range.
func (r *Region) At(x, y int) geo.Cell {
	if !r.inBounds(x, y) {
		return geo.Default()
	}
	return r.cells[y*r.width+x].Clone()
}

// Put stores a copy of cell at column x, row y.
func (r *Region) Put(x, y int, cell geo.Cell) bool {
	if !r.inBounds(x, y) {
		return false
	}
	r.cells[y*r.width+x] = cell.Clone()
	return true
}

// Clone returns an independent copy.
func (r *Region) Clone() *Region {
	out := &Region{width: r.width, height: r.height, cells: make([]geo.Cell, len(r.cells))}
	copy(out.cells, r.cells)
	return out
}

// Equal reports whether both regions have the same size and cells.
func (r *Region) Equal(other *Region) bool {
	if other == nil || r.width != other.width || r.height != other.height {
		return false
	}
	for i, c := range r.cells {
		if !c.Equal(other.cells[i]) {
			return false
		}
	}
	return true
}

// SameSize reports whether other has identical dimensions.
func (r *Region) SameSize(other *Region) bool {
	return other != nil && r.width == other.width && r.height == other.height
}
