// Package clipboard exchanges copied regions with the system clipboard as text.
package clipboard

import (
	"errors"
	"fmt"
	"strings"

	sysclip "github.com/atotto/clipboard"
	"github.com/bethropolis/leditor/internal/grid"
	"github.com/bethropolis/leditor/internal/logger"
)

var (
	// ErrEmpty is returned when there is nothing to yank or put.
	ErrEmpty = errors.New("clipboard is empty")
	// ErrDisabled is returned when the system clipboard is off or unsupported.
	ErrDisabled = errors.New("system clipboard unavailable")
)

// Backend reads and writes clipboard text.
type Backend interface {
	ReadAll() (string, error)
	WriteAll(text string) error
}

type systemBackend struct{}

func (systemBackend) ReadAll() (string, error)   { return sysclip.ReadAll() }
func (systemBackend) WriteAll(text string) error { return sysclip.WriteAll(text) }

// Manager moves regions between the editor memory and a clipboard backend.
type Manager struct {
	backend Backend
}

// NewManager returns a manager on the system clipboard, or a disabled one
// when enabled is false or the platform has no clipboard tool.
func NewManager(enabled bool) *Manager {
	if !enabled || sysclip.Unsupported {
		logger.Debugf("ClipboardManager: system clipboard disabled (enabled=%v, unsupported=%v)", enabled, sysclip.Unsupported)
		return &Manager{}
	}
	return &Manager{backend: systemBackend{}}
}

// NewManagerWithBackend uses b instead of the system clipboard.
func NewManagerWithBackend(b Backend) *Manager {
	return &Manager{backend: b}
}

func (m *Manager) Enabled() bool {
	return m.backend != nil
}

// Yank writes r to the clipboard in the region text format.
func (m *Manager) Yank(r *grid.Region) error {
	if m.backend == nil {
		return ErrDisabled
	}
	if r == nil {
		return ErrEmpty
	}
	text, err := r.MarshalText()
	if err != nil {
		return fmt.Errorf("encoding region: %w", err)
	}
	if err := m.backend.WriteAll(string(text)); err != nil {
		return fmt.Errorf("writing system clipboard: %w", err)
	}
	logger.Debugf("ClipboardManager: yanked %dx%d region (%d bytes)", r.Width(), r.Height(), len(text))
	return nil
}

// Put reads a region from the clipboard.
func (m *Manager) Put() (*grid.Region, error) {
	if m.backend == nil {
		return nil, ErrDisabled
	}
	text, err := m.backend.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading system clipboard: %w", err)
	}
	if strings.TrimSpace(text) == "" {
		return nil, ErrEmpty
	}
	r, err := grid.ParseRegion([]byte(text))
	if err != nil {
		return nil, err
	}
	logger.Debugf("ClipboardManager: put %dx%d region", r.Width(), r.Height())
	return r, nil
}
