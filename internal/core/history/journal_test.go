package history

import (
	"testing"

	"github.com/bethropolis/leditor/internal/geo"
	"github.com/bethropolis/leditor/internal/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// edit builds a distinguishable action for journal bookkeeping tests.
func edit(x int) Action {
	return CellEdit{
		Position: types.Position{X: x},
		Previous: geo.Default(),
		Next:     geo.NewCell(geo.Solid),
	}
}

func newJournal(t *testing.T, capacity int) *Journal {
	t.Helper()
	j, err := NewJournal(capacity)
	require.NoError(t, err)
	return j
}

func TestNewJournalRejectsInvalidCapacity(t *testing.T) {
	for _, c := range []int{0, -1} {
		j, err := NewJournal(c)
		assert.Nil(t, j)
		assert.ErrorIs(t, err, ErrInvalidCapacity)
	}
}

func TestEmptyJournal(t *testing.T) {
	j := newJournal(t, 3)

	assert.Equal(t, -1, j.Cursor())
	assert.Equal(t, 0, j.Len())
	assert.Equal(t, 3, j.Capacity())
	assert.NotEmpty(t, j.Session())

	_, ok := j.Current()
	assert.False(t, ok)
	_, ok = j.Undo()
	assert.False(t, ok)
	_, ok = j.Redo()
	assert.False(t, ok)
	assert.Equal(t, -1, j.Cursor())
}

func TestProceedMovesCursorToTail(t *testing.T) {
	j := newJournal(t, 5)
	a, b := edit(1), edit(2)

	j.Proceed(a)
	j.Proceed(b)

	assert.Equal(t, 1, j.Cursor())
	cur, ok := j.Current()
	require.True(t, ok)
	assert.Equal(t, b, cur)
	assert.True(t, j.CanUndo())
	assert.False(t, j.CanRedo())
}

func TestProceedNilIsIgnored(t *testing.T) {
	j := newJournal(t, 2)
	j.Proceed(nil)
	j.ProceedMany(nil, edit(1), nil)
	assert.Equal(t, 1, j.Len())
}

func TestCapacityEvictsOldest(t *testing.T) {
	j := newJournal(t, 3)
	a, b, c, d := edit(1), edit(2), edit(3), edit(4)

	j.ProceedMany(a, b, c, d)

	assert.Equal(t, []Action{b, c, d}, j.Entries())
	assert.Equal(t, 2, j.Cursor())

	for _, want := range []Action{d, c, b} {
		got, ok := j.Undo()
		require.True(t, ok)
		assert.Equal(t, want, got)
	}
	assert.Equal(t, -1, j.Cursor())

	_, ok := j.Undo()
	assert.False(t, ok, "a was evicted and cannot be undone")
}

func TestCapacityOne(t *testing.T) {
	j := newJournal(t, 1)
	a, b := edit(1), edit(2)
	j.Proceed(a)
	j.Proceed(b)

	assert.Equal(t, []Action{b}, j.Entries())
	got, ok := j.Undo()
	require.True(t, ok)
	assert.Equal(t, b, got)
	_, ok = j.Undo()
	assert.False(t, ok)
}

func TestBranchTruncation(t *testing.T) {
	j := newJournal(t, 10)
	a, b, c, x := edit(1), edit(2), edit(3), edit(9)

	j.ProceedMany(a, b, c)
	j.Undo()
	j.Undo()
	j.Proceed(x)

	assert.Equal(t, []Action{a, x}, j.Entries())
	assert.Equal(t, 1, j.Cursor())
	_, ok := j.Redo()
	assert.False(t, ok, "redo branch must be gone")
}

func TestProceedAfterFullUndoTruncatesEverything(t *testing.T) {
	j := newJournal(t, 10)
	j.ProceedMany(edit(1), edit(2))
	j.Undo()
	j.Undo()

	x := edit(7)
	j.Proceed(x)
	assert.Equal(t, []Action{x}, j.Entries())
	assert.Equal(t, 0, j.Cursor())
}

func TestUndoRedoSymmetry(t *testing.T) {
	j := newJournal(t, 10)
	a, b, c := edit(1), edit(2), edit(3)
	j.ProceedMany(a, b, c)

	for i := 0; i < 3; i++ {
		_, ok := j.Undo()
		require.True(t, ok)
	}
	var redone []Action
	for i := 0; i < 3; i++ {
		r, ok := j.Redo()
		require.True(t, ok)
		redone = append(redone, r)
	}

	assert.Equal(t, []Action{a, b, c}, redone)
	assert.Equal(t, 2, j.Cursor())
	_, ok := j.Redo()
	assert.False(t, ok)
}

func TestCurrentIsPure(t *testing.T) {
	j := newJournal(t, 4)
	j.ProceedMany(edit(1), edit(2))

	first, _ := j.Current()
	second, _ := j.Current()
	assert.Equal(t, first, second)
	assert.Equal(t, 1, j.Cursor())
}

func TestCursorInvariantUnderRandomOps(t *testing.T) {
	j := newJournal(t, 3)
	ops := "ppuurpppuupurrrpuuuuprr"
	for i, op := range ops {
		switch op {
		case 'p':
			j.Proceed(edit(i))
		case 'u':
			j.Undo()
		case 'r':
			j.Redo()
		}
		assert.LessOrEqual(t, j.Len(), j.Capacity())
		assert.GreaterOrEqual(t, j.Cursor(), -1)
		assert.Less(t, j.Cursor(), j.Len())
	}
}

func TestEntriesReturnsCopy(t *testing.T) {
	j := newJournal(t, 2)
	j.Proceed(edit(1))
	entries := j.Entries()
	entries[0] = edit(5)
	cur, _ := j.Current()
	assert.Equal(t, edit(1), cur)
}

func TestClear(t *testing.T) {
	j := newJournal(t, 2)
	j.ProceedMany(edit(1), edit(2))
	j.Clear()
	assert.Equal(t, 0, j.Len())
	assert.Equal(t, -1, j.Cursor())
	assert.False(t, j.CanUndo())
	assert.False(t, j.CanRedo())
}
