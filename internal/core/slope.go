package core

import (
	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/grid"
	"github.com/bethropolis/leditor/internal/types"
)

func isSlope(t geo.GeoType) bool {
	switch t {
	case geo.SlopeNE, geo.SlopeNW, geo.SlopeES, geo.SlopeSW:
		return true
	}
	return false
}

// resolveSlope picks the slope orientation that fits the solid cells
// directly around pos. It reports false when no orientation fits.
func resolveSlope(g grid.Grid, pos types.Position) (geo.GeoType, bool) {
	solid := func(dx, dy int) bool {
		c, ok := g.Get(pos.Offset(dx, dy))
		return ok && c.Type == geo.Solid
	}
	up, down := solid(0, -1), solid(0, 1)
	left, right := solid(-1, 0), solid(1, 0)

	switch {
	case !up && down && left && !right:
		return geo.SlopeNE, true
	case !up && down && !left && right:
		return geo.SlopeNW, true
	case up && !down && left && !right:
		return geo.SlopeES, true
	case up && !down && !left && right:
		return geo.SlopeSW, true
	}
	return geo.Air, false
}
