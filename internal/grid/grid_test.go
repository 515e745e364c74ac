package grid

import (
	"testing"

	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var solidSolidAir = [types.LayerCount]geo.GeoType{geo.Solid, geo.Solid, geo.Air}

func newTestMatrix(t *testing.T, w, h int) *Matrix {
	t.Helper()
	m, err := NewMatrix(w, h, solidSolidAir)
	require.NoError(t, err)
	return m
}

func TestNewMatrixRejectsInvalidSize(t *testing.T) {
	_, err := NewMatrix(0, 5, solidSolidAir)
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = NewMatrix(5, -1, solidSolidAir)
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = NewMatrix(MaxCells+1, 1, solidSolidAir)
	assert.ErrorIs(t, err, ErrInvalidSize)
	_, err = NewMatrix(1<<40, 1<<40, solidSolidAir)
	assert.ErrorIs(t, err, ErrInvalidSize)
}

func TestMatrixResizeRejectsOversize(t *testing.T) {
	m := newTestMatrix(t, 4, 4)
	assert.ErrorIs(t, m.Resize(1<<40, 1<<40, solidSolidAir), ErrInvalidSize)
	assert.ErrorIs(t, m.Resize(MaxCells, 2, solidSolidAir), ErrInvalidSize)
	assert.Equal(t, 4, m.Width())
	assert.Equal(t, 4, m.Height())
	require.NoError(t, m.Resize(64, 64, solidSolidAir))
}

func TestMatrixLayerFill(t *testing.T) {
	m := newTestMatrix(t, 4, 3)
	for l, want := range solidSolidAir {
		c, ok := m.Get(types.Position{X: 3, Y: 2, Layer: l})
		require.True(t, ok)
		assert.Equal(t, want, c.Type, "layer %d", l)
	}
}

func TestMatrixOutOfBounds(t *testing.T) {
	m := newTestMatrix(t, 4, 3)
	for _, pos := range []types.Position{
		{X: -1, Y: 0}, {X: 4, Y: 0}, {X: 0, Y: 3}, {X: 0, Y: 0, Layer: 3},
	} {
		_, ok := m.Get(pos)
		assert.False(t, ok, "get %v", pos)
		assert.False(t, m.Set(pos, geo.NewCell(geo.Glass)), "set %v", pos)
	}
}

func TestMatrixSetStoresCopy(t *testing.T) {
	m := newTestMatrix(t, 2, 2)
	pos := types.Position{X: 1, Y: 1, Layer: 2}
	c := geo.NewCell(geo.Platform).WithFeature(geo.HorizontalPole, true)
	require.True(t, m.Set(pos, c))

	c.Features[geo.VerticalPole] = true
	got, _ := m.Get(pos)
	assert.False(t, got.Has(geo.VerticalPole))
	assert.True(t, got.Has(geo.HorizontalPole))
}

func TestMatrixResize(t *testing.T) {
	m := newTestMatrix(t, 3, 3)
	marker := geo.NewCell(geo.Glass)
	m.Set(types.Position{X: 1, Y: 1}, marker)

	require.NoError(t, m.Resize(5, 2, [types.LayerCount]geo.GeoType{geo.Air, geo.Air, geo.Air}))
	assert.Equal(t, 5, m.Width())
	assert.Equal(t, 2, m.Height())

	got, ok := m.Get(types.Position{X: 1, Y: 1})
	require.True(t, ok)
	assert.True(t, got.Equal(marker))

	grown, _ := m.Get(types.Position{X: 4, Y: 0})
	assert.Equal(t, geo.Air, grown.Type)
	kept, _ := m.Get(types.Position{X: 2, Y: 0})
	assert.Equal(t, geo.Solid, kept.Type)

	assert.ErrorIs(t, m.Resize(0, 1, solidSolidAir), ErrInvalidSize)
}

func TestMatrixCount(t *testing.T) {
	m := newTestMatrix(t, 2, 2)
	m.Set(types.Position{X: 0, Y: 0}, geo.NewCell(geo.Air))
	counts := m.Count(0)
	assert.Equal(t, 3, counts[geo.Solid])
	assert.Equal(t, 1, counts[geo.Air])
	assert.Empty(t, m.Count(7))
}

func TestMatrixCloneIsIndependent(t *testing.T) {
	m := newTestMatrix(t, 2, 2)
	c := m.Clone()
	require.True(t, m.Equal(c))
	c.Set(types.Position{}, geo.NewCell(geo.Glass))
	assert.False(t, m.Equal(c))
}
