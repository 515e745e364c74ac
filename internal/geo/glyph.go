package geo

var glyphs = map[GeoType]rune{
	Air:              '.',
	Solid:            '#',
	SlopeNE:          '◢',
	SlopeNW:          '◣',
	SlopeES:          '◥',
	SlopeSW:          '◤',
	Platform:         '-',
	ShortcutEntrance: '▣',
	Glass:            '░',
}

// Glyph returns the single-rune representation of t used by the terminal
// view and the region text format.
func (t GeoType) Glyph() rune {
	if r, ok := glyphs[t]; ok {
		return r
	}
	return '?'
}

// GeoTypeFromGlyph is the inverse of Glyph.
func GeoTypeFromGlyph(r rune) (GeoType, bool) {
	for t, g := range glyphs {
		if g == r {
			return t, true
		}
	}
	return Air, false
}
