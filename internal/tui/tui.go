// internal/tui/tui.go
package tui

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
)

// TUI manages the terminal screen using tcell.
type TUI struct {
	screen    tcell.Screen
	closeOnce sync.Once
}

// New creates and initializes the terminal screen with base as its
// background style.
func New(base tcell.Style) (*TUI, error) {
	s, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("failed to create tcell screen: %w", err)
	}
	return NewWithScreen(s, base)
}

// NewWithScreen wraps an existing screen, e.g. a simulation screen in tests.
func NewWithScreen(s tcell.Screen, base tcell.Style) (*TUI, error) {
	if err := s.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize tcell screen: %w", err)
	}
	s.SetStyle(base)
	return &TUI{screen: s}, nil
}

// Close finalizes the screen. Later calls do nothing.
func (t *TUI) Close() {
	t.closeOnce.Do(func() {
		if t.screen != nil {
			t.screen.Fini()
		}
	})
}

func (t *TUI) PollEvent() tcell.Event {
	return t.screen.PollEvent()
}

func (t *TUI) Clear() {
	t.screen.Clear()
}

func (t *TUI) Show() {
	t.screen.Show()
}

// Sync redraws the whole terminal, used after a resize.
func (t *TUI) Sync() {
	t.screen.Sync()
}

func (t *TUI) SetStyle(style tcell.Style) {
	t.screen.SetStyle(style)
}

func (t *TUI) Size() (int, int) {
	return t.screen.Size()
}

// GetScreen provides direct access (use with caution).
func (t *TUI) GetScreen() tcell.Screen {
	return t.screen
}
