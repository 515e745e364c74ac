package history

import (
	"testing"

	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/grid"
	"github.com/bethropolis/leditor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newMatrix(t *testing.T, w, h int) *grid.Matrix {
	t.Helper()
	m, err := grid.NewMatrix(w, h, [types.LayerCount]geo.GeoType{geo.Air, geo.Air, geo.Air})
	require.NoError(t, err)
	return m
}

func pos(x, y int) types.Position { return types.Position{X: x, Y: y} }

// record applies a forward and journals it, the way the editor does.
func record(j *Journal, g grid.Grid, a Action) {
	ApplyForward(a, g)
	j.Proceed(a)
}

func TestCellEditRoundTrip(t *testing.T) {
	g := newMatrix(t, 4, 4)
	j := newJournal(t, 10)
	before := g.Clone()

	record(j, g, CellEdit{Position: pos(1, 1), Previous: geo.Default(), Next: geo.NewCell(geo.Solid)})
	cell, _ := g.Get(pos(1, 1))
	assert.Equal(t, geo.Solid, cell.Type)

	a, ok := j.Undo()
	require.True(t, ok)
	assert.Equal(t, 1, ApplyBackward(a, g))
	assert.True(t, before.Equal(g))

	a, ok = j.Redo()
	require.True(t, ok)
	ApplyForward(a, g)
	cell, _ = g.Get(pos(1, 1))
	assert.Equal(t, geo.Solid, cell.Type)
}

func TestFullHistoryRoundTrip(t *testing.T) {
	g := newMatrix(t, 5, 5)
	j := newJournal(t, 10)
	initial := g.Clone()

	solid := geo.NewCell(geo.Solid)
	record(j, g, CellEdit{Position: pos(0, 0), Previous: geo.Default(), Next: solid})
	record(j, g, NewGroupEdit(
		CellEdit{Position: pos(1, 0), Previous: geo.Default(), Next: solid},
		CellEdit{Position: pos(2, 0), Previous: geo.Default(), Next: solid.WithFeature(geo.VerticalPole, true)},
	))

	prev, err := grid.Snapshot(g, pos(0, 0), 3, 2)
	require.NoError(t, err)
	next, err := grid.FilledRegion(3, 2, geo.NewCell(geo.Glass))
	require.NoError(t, err)
	region, err := NewRegionEdit(pos(0, 0), prev, next, true)
	require.NoError(t, err)
	record(j, g, region)

	final := g.Clone()

	for {
		a, ok := j.Undo()
		if !ok {
			break
		}
		ApplyBackward(a, g)
	}
	assert.True(t, initial.Equal(g), "undoing everything restores the initial grid")

	for {
		a, ok := j.Redo()
		if !ok {
			break
		}
		ApplyForward(a, g)
	}
	assert.True(t, final.Equal(g), "redoing everything restores the final grid")
}

func TestRegionFillAirFalseKeepsTerrain(t *testing.T) {
	g := newMatrix(t, 3, 1)
	g.Set(pos(0, 0), geo.NewCell(geo.Solid))
	g.Set(pos(1, 0), geo.NewCell(geo.Solid))

	prev, err := grid.Snapshot(g, pos(0, 0), 3, 1)
	require.NoError(t, err)
	next, err := grid.NewRegion(3, 1)
	require.NoError(t, err)
	next.Put(0, 0, geo.Default().WithFeature(geo.HorizontalPole, true))
	next.Put(1, 0, geo.NewCell(geo.Platform))
	next.Put(2, 0, geo.NewCell(geo.Glass))

	e, err := NewRegionEdit(pos(0, 0), prev, next, false)
	require.NoError(t, err)
	assert.Equal(t, 3, ApplyForward(e, g))

	c0, _ := g.Get(pos(0, 0))
	assert.Equal(t, geo.Solid, c0.Type, "air in the source keeps the existing terrain")
	assert.True(t, c0.Has(geo.HorizontalPole), "features are always written")
	c1, _ := g.Get(pos(1, 0))
	assert.Equal(t, geo.Platform, c1.Type)
	c2, _ := g.Get(pos(2, 0))
	assert.Equal(t, geo.Glass, c2.Type)
}

func TestRegionFillAirFalseBackwardTestsPrevious(t *testing.T) {
	g := newMatrix(t, 2, 1)
	g.Set(pos(0, 0), geo.NewCell(geo.Solid))

	prev, _ := grid.Snapshot(g, pos(0, 0), 2, 1)
	next, _ := grid.FilledRegion(2, 1, geo.NewCell(geo.Glass))
	e, err := NewRegionEdit(pos(0, 0), prev, next, false)
	require.NoError(t, err)

	ApplyForward(e, g)
	ApplyBackward(e, g)

	c0, _ := g.Get(pos(0, 0))
	assert.Equal(t, geo.Solid, c0.Type, "non-air previous terrain is restored")
	c1, _ := g.Get(pos(1, 0))
	assert.Equal(t, geo.Glass, c1.Type, "air previous terrain is not written back")
}

func TestRegionFillAirTrueWritesAir(t *testing.T) {
	g := newMatrix(t, 2, 2)
	g.Set(pos(0, 0), geo.NewCell(geo.Solid))

	prev, _ := grid.Snapshot(g, pos(0, 0), 2, 2)
	next, _ := grid.NewRegion(2, 2)
	e, err := NewRegionEdit(pos(0, 0), prev, next, true)
	require.NoError(t, err)

	ApplyForward(e, g)
	c, _ := g.Get(pos(0, 0))
	assert.True(t, c.IsAir())
}

func TestRegionClipsToGrid(t *testing.T) {
	g := newMatrix(t, 3, 3)
	prev, _ := grid.NewRegion(3, 3)
	next, _ := grid.FilledRegion(3, 3, geo.NewCell(geo.Solid))
	e, err := NewRegionEdit(types.Position{X: 2, Y: 2}, prev, next, true)
	require.NoError(t, err)

	assert.Equal(t, 1, ApplyForward(e, g), "only the overlapping cell is written")
	c, _ := g.Get(pos(2, 2))
	assert.Equal(t, geo.Solid, c.Type)

	e.Position = types.Position{X: -5, Y: -5}
	assert.Equal(t, 0, ApplyForward(e, g))
}

func TestRegionTargetsItsLayer(t *testing.T) {
	g := newMatrix(t, 2, 2)
	prev, _ := grid.NewRegion(1, 1)
	next, _ := grid.FilledRegion(1, 1, geo.NewCell(geo.Solid))
	e, err := NewRegionEdit(types.Position{Layer: 2}, prev, next, true)
	require.NoError(t, err)

	ApplyForward(e, g)
	top, _ := g.Get(types.Position{Layer: 0})
	back, _ := g.Get(types.Position{Layer: 2})
	assert.True(t, top.IsAir())
	assert.Equal(t, geo.Solid, back.Type)
}

func TestNewRegionEditValidation(t *testing.T) {
	a, _ := grid.NewRegion(2, 2)
	b, _ := grid.NewRegion(3, 2)

	_, err := NewRegionEdit(pos(0, 0), a, b, true)
	assert.Error(t, err)
	_, err = NewRegionEdit(pos(0, 0), nil, b, true)
	assert.Error(t, err)

	e, err := NewRegionEdit(pos(0, 0), a, a, true)
	require.NoError(t, err)
	a.Put(0, 0, geo.NewCell(geo.Solid))
	assert.True(t, e.Next.At(0, 0).IsAir(), "edit keeps its own copy of the snapshot")
}

func TestNewGroupEditCollapsesDuplicates(t *testing.T) {
	solid := geo.NewCell(geo.Solid)
	glass := geo.NewCell(geo.Glass)

	g := NewGroupEdit(
		CellEdit{Position: pos(0, 0), Previous: geo.Default(), Next: solid},
		CellEdit{Position: pos(1, 0), Previous: geo.Default(), Next: solid},
		CellEdit{Position: pos(0, 0), Previous: solid, Next: glass},
	)

	require.Len(t, g.Edits, 2)
	assert.Equal(t, pos(0, 0), g.Edits[0].Position)
	assert.True(t, g.Edits[0].Previous.IsAir())
	assert.Equal(t, geo.Glass, g.Edits[0].Next.Type)
	assert.Equal(t, pos(0, 0), g.Origin())
}

func TestGroupEditRoundTrip(t *testing.T) {
	g := newMatrix(t, 3, 3)
	before := g.Clone()
	group := NewGroupEdit(
		CellEdit{Position: pos(0, 0), Previous: geo.Default(), Next: geo.NewCell(geo.Solid)},
		CellEdit{Position: pos(2, 2), Previous: geo.Default(), Next: geo.NewCell(geo.Platform)},
		CellEdit{Position: pos(9, 9), Previous: geo.Default(), Next: geo.NewCell(geo.Platform)},
	)

	assert.Equal(t, 2, ApplyForward(group, g), "out of bounds member is skipped")
	ApplyBackward(group, g)
	assert.True(t, before.Equal(g))
}

func TestGroupEditOrderIndependent(t *testing.T) {
	g := newMatrix(t, 4, 4)
	g.Set(pos(3, 0), geo.NewCell(geo.Solid))
	group := NewGroupEdit(
		CellEdit{Position: pos(0, 0), Previous: geo.Default(), Next: geo.NewCell(geo.Solid)},
		CellEdit{Position: pos(1, 2), Previous: geo.Default(), Next: geo.NewCell(geo.Glass)},
		CellEdit{Position: pos(3, 0), Previous: geo.NewCell(geo.Solid), Next: geo.Default()},
		CellEdit{Position: pos(2, 3), Previous: geo.Default(), Next: geo.NewCell(geo.Platform)},
	)
	reversed := GroupEdit{Edits: make([]CellEdit, len(group.Edits))}
	for i, e := range group.Edits {
		reversed.Edits[len(group.Edits)-1-i] = e
	}

	a, b := g.Clone(), g.Clone()
	ApplyForward(group, a)
	ApplyForward(reversed, b)
	assert.True(t, a.Equal(b))
	assert.False(t, a.Equal(g))

	ApplyBackward(group, a)
	ApplyBackward(reversed, b)
	assert.True(t, a.Equal(b))
	assert.True(t, a.Equal(g))
}

func TestApplyNil(t *testing.T) {
	g := newMatrix(t, 1, 1)
	assert.Equal(t, 0, ApplyForward(nil, g))
	assert.Equal(t, 0, ApplyBackward(CellEdit{}, nil))
}

func TestKindAndString(t *testing.T) {
	assert.Equal(t, KindCell, CellEdit{}.Kind())
	assert.Equal(t, KindRegion, RegionEdit{}.Kind())
	assert.Equal(t, KindGroup, GroupEdit{}.Kind())
	assert.Equal(t, "group", KindGroup.String())
	assert.Contains(t, RegionEdit{}.String(), "0x0")
	assert.False(t, CellEdit{}.Changed())
}
