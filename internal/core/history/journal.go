package history

import (
	"errors"
	"fmt"
	"sync"

	"github.com/bethropolis/leditor/internal/logger"
	"github.com/google/uuid"
)

// DefaultCapacity is the number of actions kept when no limit is configured.
const DefaultCapacity = 40

// ErrInvalidCapacity is returned by NewJournal for a capacity below one.
var ErrInvalidCapacity = errors.New("history: capacity must be at least 1")

// Journal is a bounded undo/redo log of actions.
//
// cursor indexes the most recently applied action; -1 means nothing applied.
// Entries after the cursor are redoable. When the log grows past capacity the
// oldest entry is evicted and the cursor shifts with it.
type Journal struct {
	entries  []Action
	cursor   int
	capacity int
	session  string
	mutex    sync.Mutex
}

// NewJournal creates an empty journal holding at most capacity actions.
func NewJournal(capacity int) (*Journal, error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w (got %d)", ErrInvalidCapacity, capacity)
	}
	j := &Journal{
		entries:  make([]Action, 0, capacity),
		cursor:   -1,
		capacity: capacity,
		session:  uuid.NewString(),
	}
	logger.InfoTagf("history", "History: journal %s created with capacity %d", j.session, capacity)
	return j, nil
}

// Session returns the id of this editing session's journal.
func (j *Journal) Session() string {
	return j.session
}

// Proceed records a freshly applied action. Any redoable entries are
// discarded first.
func (j *Journal) Proceed(a Action) {
	if a == nil {
		return
	}
	j.mutex.Lock()
	defer j.mutex.Unlock()
	j.proceedLocked(a)
}

// ProceedMany records several actions, in order, as individual entries.
func (j *Journal) ProceedMany(actions ...Action) {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	for _, a := range actions {
		if a != nil {
			j.proceedLocked(a)
		}
	}
}

func (j *Journal) proceedLocked(a Action) {
	if dropped := len(j.entries) - (j.cursor + 1); dropped > 0 {
		clear(j.entries[j.cursor+1:])
		j.entries = j.entries[:j.cursor+1]
		logger.DebugTagf("history", "History: discarded %d redo entries", dropped)
	}

	j.entries = append(j.entries, a)
	j.cursor = len(j.entries) - 1

	for len(j.entries) > j.capacity {
		evicted := j.entries[0]
		copy(j.entries, j.entries[1:])
		j.entries[len(j.entries)-1] = nil
		j.entries = j.entries[:len(j.entries)-1]
		j.cursor--
		logger.DebugTagf("history", "History: evicted oldest entry %s", evicted)
	}

	logger.DebugTagf("history", "History: recorded %s. Cursor: %d, Count: %d", a, j.cursor, len(j.entries))
}

// Current returns the most recently applied action without moving the cursor.
func (j *Journal) Current() (Action, bool) {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	if j.cursor < 0 {
		return nil, false
	}
	return j.entries[j.cursor], true
}

// Undo returns the action to revert and steps the cursor back.
// It reports false when there is nothing to undo.
func (j *Journal) Undo() (Action, bool) {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	if j.cursor < 0 {
		logger.DebugTagf("history", "History: nothing to undo")
		return nil, false
	}
	a := j.entries[j.cursor]
	j.cursor--
	logger.DebugTagf("history", "History: undo %s. Cursor: %d", a, j.cursor)
	return a, true
}

// Redo steps the cursor forward and returns the action to replay.
// It reports false when there is nothing to redo.
func (j *Journal) Redo() (Action, bool) {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	if j.cursor >= len(j.entries)-1 {
		logger.DebugTagf("history", "History: nothing to redo")
		return nil, false
	}
	j.cursor++
	a := j.entries[j.cursor]
	logger.DebugTagf("history", "History: redo %s. Cursor: %d", a, j.cursor)
	return a, true
}

// CanUndo reports whether Undo would return an action.
func (j *Journal) CanUndo() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cursor >= 0
}

// CanRedo reports whether Redo would return an action.
func (j *Journal) CanRedo() bool {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cursor < len(j.entries)-1
}

// Cursor returns the index of the current action, or -1.
func (j *Journal) Cursor() int {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return j.cursor
}

// Len returns the number of recorded actions.
func (j *Journal) Len() int {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	return len(j.entries)
}

// Capacity returns the maximum number of entries kept.
func (j *Journal) Capacity() int {
	return j.capacity
}

// Entries returns a copy of the recorded actions, oldest first.
func (j *Journal) Entries() []Action {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	out := make([]Action, len(j.entries))
	copy(out, j.entries)
	return out
}

// Clear drops every entry and resets the cursor.
func (j *Journal) Clear() {
	j.mutex.Lock()
	defer j.mutex.Unlock()
	clear(j.entries)
	j.entries = j.entries[:0]
	j.cursor = -1
	logger.DebugTagf("history", "History: cleared")
}
