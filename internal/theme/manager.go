// internal/theme/manager.go
package theme

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/bethropolis/leditor/internal/logger"
	"github.com/gdamore/tcell/v2"
)

// ErrThemeNotFound is returned by SetTheme for unknown names.
var ErrThemeNotFound = errors.New("theme not found")

// Manager holds loaded themes keyed by lowercase name and tracks the active one.
type Manager struct {
	themes      map[string]*Theme
	activeTheme *Theme
	themesDir   string
	mutex       sync.RWMutex
}

// NewManager registers the built-in themes and then any *.toml files in
// themesDir. An empty themesDir skips the directory scan.
func NewManager(themesDir string) *Manager {
	mgr := &Manager{
		themes:    make(map[string]*Theme),
		themesDir: themesDir,
	}

	mgr.add(&CaveDark)
	mgr.add(&CaveLight)

	if themesDir != "" {
		if err := mgr.LoadThemesFromDir(); err != nil {
			logger.Errorf("Error loading themes from '%s': %v", themesDir, err)
		}
	}

	mgr.activeTheme = mgr.themes[strings.ToLower(CaveDark.Name)]
	logger.Infof("Initial active theme set to: %s", mgr.activeTheme.Name)
	return mgr
}

func (m *Manager) add(t *Theme) {
	key := strings.ToLower(t.Name)
	if existing, ok := m.themes[key]; ok {
		logger.Warnf("Theme '%s' overrides existing theme '%s'", t.Name, existing.Name)
	}
	m.themes[key] = t
}

// LoadThemesFromDir loads every .toml file in the themes directory. A
// missing directory is created and is not an error. Broken files are
// skipped with a warning.
func (m *Manager) LoadThemesFromDir() error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	if m.themesDir == "" {
		return errors.New("theme directory path is not set")
	}

	files, err := os.ReadDir(m.themesDir)
	if errors.Is(err, os.ErrNotExist) {
		logger.Infof("Theme directory '%s' does not exist. No custom themes loaded.", m.themesDir)
		if err := os.MkdirAll(m.themesDir, 0o755); err != nil {
			return fmt.Errorf("failed to create theme dir: %w", err)
		}
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed to read theme directory '%s': %w", m.themesDir, err)
	}

	loaded := 0
	for _, file := range files {
		if file.IsDir() || !strings.EqualFold(filepath.Ext(file.Name()), ".toml") {
			continue
		}
		path := filepath.Join(m.themesDir, file.Name())
		theme, err := LoadThemeFromFile(path)
		if err != nil {
			logger.Warnf("Failed to load theme: %v", err)
			continue
		}
		m.add(theme)
		loaded++
	}
	logger.Infof("Loaded %d custom themes from %s", loaded, m.themesDir)
	return nil
}

// Current returns the active theme, never nil.
func (m *Manager) Current() *Theme {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	if m.activeTheme == nil {
		return &Theme{Name: "Failsafe", Styles: map[string]tcell.Style{StyleDefault: tcell.StyleDefault}}
	}
	return m.activeTheme
}

// SetTheme activates a theme by case-insensitive name.
func (m *Manager) SetTheme(name string) error {
	m.mutex.Lock()
	defer m.mutex.Unlock()

	theme, ok := m.themes[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return fmt.Errorf("%w: '%s'", ErrThemeNotFound, name)
	}
	if m.activeTheme != theme {
		m.activeTheme = theme
		logger.Infof("Active theme set to: %s", theme.Name)
	}
	return nil
}

// ListThemes returns the display names of all loaded themes, sorted.
func (m *Manager) ListThemes() []string {
	m.mutex.RLock()
	defer m.mutex.RUnlock()

	names := make([]string, 0, len(m.themes))
	for _, theme := range m.themes {
		names = append(names, theme.Name)
	}
	sort.Strings(names)
	return names
}

// GetTheme looks up a theme by case-insensitive name.
func (m *Manager) GetTheme(name string) (*Theme, bool) {
	m.mutex.RLock()
	defer m.mutex.RUnlock()
	theme, ok := m.themes[strings.ToLower(name)]
	return theme, ok
}
