// internal/types/position.go
package types

import "fmt"

// LayerCount is the number of stacked depth layers in a level.
const LayerCount = 3

// Position addresses one cell of the level grid.
// X and Y are 0-based column and row indices.
// Layer is the depth plane, 0 (front) to LayerCount-1 (back).
type Position struct {
	X     int
	Y     int
	Layer int
}

// Offset returns the position moved by dx, dy on the same layer.
func (p Position) Offset(dx, dy int) Position {
	return Position{X: p.X + dx, Y: p.Y + dy, Layer: p.Layer}
}

// ValidLayer reports whether the layer index is one of the grid's planes.
func (p Position) ValidLayer() bool {
	return p.Layer >= 0 && p.Layer < LayerCount
}

func (p Position) String() string {
	return fmt.Sprintf("(%d, %d, L%d)", p.X, p.Y, p.Layer+1)
}
