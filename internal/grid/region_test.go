package grid

import (
	"testing"

	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRegionRejectsInvalidSize(t *testing.T) {
	_, err := NewRegion(0, 1)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestRegionAtPutBounds(t *testing.T) {
	r, err := NewRegion(2, 3)
	require.NoError(t, err)

	assert.True(t, r.Put(1, 2, geo.NewCell(geo.Solid)))
	assert.Equal(t, geo.Solid, r.At(1, 2).Type)
	assert.False(t, r.Put(2, 0, geo.NewCell(geo.Solid)))
	assert.Equal(t, geo.Air, r.At(-1, 0).Type)
}

func TestRegionCloneDoesNotShareRows(t *testing.T) {
	r, err := FilledRegion(3, 2, geo.NewCell(geo.Solid))
	require.NoError(t, err)
	c := r.Clone()
	c.Put(0, 0, geo.NewCell(geo.Air))

	assert.Equal(t, geo.Solid, r.At(0, 0).Type)
	assert.Equal(t, geo.Solid, r.At(0, 1).Type, "rows must not alias each other")
	assert.False(t, r.Equal(c))
}

func TestSnapshotClampsToGrid(t *testing.T) {
	m := newTestMatrix(t, 3, 3)
	m.Set(types.Position{X: 2, Y: 2, Layer: 1}, geo.NewCell(geo.Glass))

	r, err := Snapshot(m, types.Position{X: 1, Y: 1, Layer: 1}, 3, 3)
	require.NoError(t, err)
	assert.Equal(t, geo.Solid, r.At(0, 0).Type)
	assert.Equal(t, geo.Glass, r.At(1, 1).Type)
	assert.Equal(t, geo.Air, r.At(2, 2).Type, "outside the grid records Air")
}

func TestRegionTextRoundTrip(t *testing.T) {
	r, err := NewRegion(3, 2)
	require.NoError(t, err)
	r.Put(0, 0, geo.NewCell(geo.Solid))
	r.Put(1, 0, geo.NewCell(geo.SlopeNE).WithFeature(geo.VerticalPole, true))
	r.Put(2, 1, geo.NewCell(geo.Glass).WithFeature(geo.HorizontalPole, true).WithFeature(geo.Waterfall, true))

	text, err := r.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "region 3 2\n#◢.\n..░\n@1,0:2\n@2,1:1,18\n", string(text))

	parsed, err := ParseRegion(text)
	require.NoError(t, err)
	assert.True(t, parsed.Equal(r))
}

func TestParseRegionErrors(t *testing.T) {
	tests := []struct {
		name string
		text string
	}{
		{"empty", ""},
		{"bad header", "grid 2 2\n..\n..\n"},
		{"zero size", "region 0 2\n"},
		{"huge header", "region 10000000000000 1\n#\n"},
		{"overflowing header", "region 4294967296 4294967296\n"},
		{"missing row", "region 2 2\n..\n"},
		{"short row", "region 2 1\n.\n"},
		{"unknown glyph", "region 1 1\nx\n"},
		{"bad feature coords", "region 1 1\n.\n@3,0:1\n"},
		{"bad feature id", "region 1 1\n.\n@0,0:40\n"},
		{"stray line", "region 1 1\n.\nhello\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseRegion([]byte(tt.text))
			assert.ErrorIs(t, err, ErrMalformedRegion)
		})
	}
}
