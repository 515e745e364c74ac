// Package render turns level layers into the glyphs and style names the
// terminal view draws. It has no screen dependency.
package render

import (
	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/grid"
	"github.com/bethropolis/leditor/internal/theme"
	"github.com/bethropolis/leditor/internal/types"
)

// Glyph is what one screen cell shows.
type Glyph struct {
	Rune  rune
	Style string
}

var featureGlyphs = map[geo.FeatureID]rune{
	geo.HorizontalPole:          '─',
	geo.VerticalPole:            '│',
	geo.Bathive:                 'b',
	geo.FeatureShortcutEntrance: 'E',
	geo.ShortcutPath:            '·',
	geo.RoomEntrance:            'R',
	geo.DragonDen:               'D',
	geo.PlaceRock:               'o',
	geo.PlaceSpear:              '/',
	geo.CrackedTerrain:          'x',
	geo.Waterfall:               'w',
	geo.WormGrass:               'v',
}

// FeatureGlyph returns the mark drawn for a feature slot.
func FeatureGlyph(id geo.FeatureID) rune {
	if r, ok := featureGlyphs[id]; ok {
		return r
	}
	return '*'
}

// Frame holds copies of all layers and the layer being edited.
type Frame struct {
	Layers [types.LayerCount]*grid.Region
	Active int
}

// GlyphAt resolves the glyph for column x, row y:
// features of the active layer first, then its terrain, then the first
// solid-ish cell on a layer behind it (dimmed), then air.
func (f Frame) GlyphAt(x, y int) Glyph {
	active := f.Layers[f.Active]
	if active == nil {
		return Glyph{Rune: ' ', Style: theme.StyleDefault}
	}

	c := active.At(x, y)
	if ids := c.Features.Enabled(); len(ids) > 0 {
		return Glyph{Rune: FeatureGlyph(ids[0]), Style: theme.StyleFeature}
	}
	if !c.IsAir() {
		return Glyph{Rune: c.Type.Glyph(), Style: theme.GeoStyleName(c.Type)}
	}

	for l := f.Active + 1; l < types.LayerCount; l++ {
		if f.Layers[l] == nil {
			continue
		}
		if behind := f.Layers[l].At(x, y); !behind.IsAir() {
			return Glyph{Rune: behind.Type.Glyph(), Style: theme.StyleLowerLayer}
		}
	}

	return Glyph{Rune: geo.Air.Glyph(), Style: theme.GeoStyleName(geo.Air)}
}

// Viewport returns the level coordinate drawn at the top-left screen cell so
// that the cursor stays near the middle of a view smaller than the level.
func Viewport(cursor types.Position, levelW, levelH, viewW, viewH int) (int, int) {
	return axisOffset(cursor.X, levelW, viewW), axisOffset(cursor.Y, levelH, viewH)
}

func axisOffset(pos, size, view int) int {
	if view <= 0 || size <= view {
		return 0
	}
	return max(0, min(pos-view/2, size-view))
}
