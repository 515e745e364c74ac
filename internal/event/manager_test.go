package event

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDispatchReachesSubscribersInOrder(t *testing.T) {
	m := NewManager()
	var got []string

	m.Subscribe(TypeGridModified, func(e Event) bool {
		got = append(got, "first:"+e.Type.String())
		return false
	})
	m.Subscribe(TypeGridModified, func(e Event) bool {
		data := e.Data.(GridModifiedData)
		got = append(got, "second:"+data.Kind)
		return false
	})
	m.Subscribe(TypeCursorMoved, func(e Event) bool {
		got = append(got, "wrong")
		return false
	})

	m.Dispatch(TypeGridModified, GridModifiedData{Kind: "cell", Cells: 1})

	assert.Equal(t, []string{"first:grid-modified", "second:cell"}, got)
}

func TestDispatchWithoutHandlers(t *testing.T) {
	m := NewManager()
	assert.NotPanics(t, func() { m.Dispatch(TypeAppQuit, AppQuitData{}) })
}

func TestSubscribeDuringDispatch(t *testing.T) {
	m := NewManager()
	calls := 0
	m.Subscribe(TypeAppReady, func(Event) bool {
		calls++
		m.Subscribe(TypeAppReady, func(Event) bool { calls++; return false })
		return false
	})

	m.Dispatch(TypeAppReady, nil)
	assert.Equal(t, 1, calls, "handlers added mid-dispatch run on the next dispatch")

	m.Dispatch(TypeAppReady, nil)
	assert.Equal(t, 3, calls)
}

func TestTypeString(t *testing.T) {
	assert.Equal(t, "history-changed", TypeHistoryChanged.String())
	assert.Equal(t, "event(99)", Type(99).String())
}
