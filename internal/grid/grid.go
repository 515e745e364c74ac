// Package grid holds the level's cell storage and the rectangular region
// snapshots used by the edit history.
package grid

import (
	"errors"
	"fmt"

	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/types"
)

// ErrInvalidSize is returned when a grid or region is given a non-positive
// dimension or more than MaxCells cells.
var ErrInvalidSize = errors.New("invalid grid dimensions")

// MaxCells caps the number of cells in one layer or region.
const MaxCells = 1 << 20

// validSize reports whether a width x height plane can be allocated.
func validSize(width, height int) bool {
	return width > 0 && height > 0 && width <= MaxCells/height
}

// Grid is the cell storage the edit history applies actions to.
// Out-of-bounds reads report false and out-of-bounds writes are ignored.
type Grid interface {
	Get(pos types.Position) (geo.Cell, bool)
	Set(pos types.Position, cell geo.Cell) bool
	Width() int
	Height() int
}

// Matrix is the level geometry: LayerCount planes of Width x Height cells,
// each stored as a flat row-major slice.
type Matrix struct {
	width  int
	height int
	layers [types.LayerCount][]geo.Cell
}

// Ensure Matrix satisfies Grid.
var _ Grid = (*Matrix)(nil)

// NewMatrix creates a level whose layers are filled with the given terrain.
func NewMatrix(width, height int, fill [types.LayerCount]geo.GeoType) (*Matrix, error) {
	if !validSize(width, height) {
		return nil, fmt.Errorf("new matrix %dx%d: %w", width, height, ErrInvalidSize)
	}
	m := &Matrix{width: width, height: height}
	for l := range m.layers {
		m.layers[l] = make([]geo.Cell, width*height)
		for i := range m.layers[l] {
			m.layers[l][i] = geo.NewCell(fill[l])
		}
	}
	return m, nil
}

// Width returns the number of columns.
func (m *Matrix) Width() int { return m.width }

// Height returns the number of rows.
func (m *Matrix) Height() int { return m.height }

// Contains reports whether pos lies inside the level.
func (m *Matrix) Contains(pos types.Position) bool {
	return pos.ValidLayer() && pos.X >= 0 && pos.X < m.width && pos.Y >= 0 && pos.Y < m.height
}

// Get returns a copy of the cell at pos.
func (m *Matrix) Get(pos types.Position) (geo.Cell, bool) {
	if !m.Contains(pos) {
		return geo.Default(), false
	}
	return m.layers[pos.Layer][pos.Y*m.width+pos.X].Clone(), true
}

// Set stores a copy of cell at pos. It returns false when pos is outside the level.
func (m *Matrix) Set(pos types.Position, cell geo.Cell) bool {
	if !m.Contains(pos) {
		return false
	}
	m.layers[pos.Layer][pos.Y*m.width+pos.X] = cell.Clone()
	return true
}

// Resize changes the level dimensions, keeping the overlapping top-left area
// and filling new cells per layer.
func (m *Matrix) Resize(width, height int, fill [types.LayerCount]geo.GeoType) error {
	if !validSize(width, height) {
		return fmt.Errorf("resize matrix to %dx%d: %w", width, height, ErrInvalidSize)
	}
	for l := range m.layers {
		resized := make([]geo.Cell, width*height)
		for y := 0; y < height; y++ {
			for x := 0; x < width; x++ {
				if x < m.width && y < m.height {
					resized[y*width+x] = m.layers[l][y*m.width+x]
				} else {
					resized[y*width+x] = geo.NewCell(fill[l])
				}
			}
		}
		m.layers[l] = resized
	}
	m.width = width
	m.height = height
	return nil
}

// Count tallies the terrain types of one layer.
func (m *Matrix) Count(layer int) map[geo.GeoType]int {
	counts := make(map[geo.GeoType]int)
	if layer < 0 || layer >= types.LayerCount {
		return counts
	}
	for _, c := range m.layers[layer] {
		counts[c.Type]++
	}
	return counts
}

// Clone returns an independent copy of the level.
func (m *Matrix) Clone() *Matrix {
	out := &Matrix{width: m.width, height: m.height}
	for l := range m.layers {
		out.layers[l] = make([]geo.Cell, len(m.layers[l]))
		copy(out.layers[l], m.layers[l])
	}
	return out
}

// Equal reports whether both levels have the same size and cells.
func (m *Matrix) Equal(other *Matrix) bool {
	if other == nil || m.width != other.width || m.height != other.height {
		return false
	}
	for l := range m.layers {
		for i, c := range m.layers[l] {
			if !c.Equal(other.layers[l][i]) {
				return false
			}
		}
	}
	return true
}
