// internal/plugin/manager.go
package plugin

import (
	"errors"
	"fmt"
	"sort"
	"sync"

	"github.com/bethropolis/leditor/internal/logger"
)

var (
	ErrEmptyName     = errors.New("plugin name cannot be empty")
	ErrAlreadyExists = errors.New("plugin already registered")
)

// Manager handles registration and lifecycle of plugins. Plugins are
// initialized and shut down in name order.
type Manager struct {
	mu      sync.RWMutex
	plugins map[string]Plugin
	api     EditorAPI
}

func NewManager() *Manager {
	return &Manager{
		plugins: make(map[string]Plugin),
	}
}

// Register adds a plugin. Call it before InitializePlugins.
func (m *Manager) Register(plugin Plugin) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	name := plugin.Name()
	if name == "" {
		return fmt.Errorf("plugin registration failed: %w", ErrEmptyName)
	}
	if _, exists := m.plugins[name]; exists {
		return fmt.Errorf("plugin registration failed: '%s': %w", name, ErrAlreadyExists)
	}

	m.plugins[name] = plugin
	logger.Debugf("Plugin Manager: Registered plugin '%s'", name)
	return nil
}

func (m *Manager) sorted() []Plugin {
	names := make([]string, 0, len(m.plugins))
	for name := range m.plugins {
		names = append(names, name)
	}
	sort.Strings(names)

	out := make([]Plugin, 0, len(names))
	for _, name := range names {
		out = append(out, m.plugins[name])
	}
	return out
}

// InitializePlugins calls Initialize on every plugin. A failing plugin is
// logged and skipped; the joined errors are returned.
func (m *Manager) InitializePlugins(api EditorAPI) error {
	m.mu.Lock()
	m.api = api
	plugins := m.sorted()
	m.mu.Unlock()

	logger.Infof("Plugin Manager: Initializing %d plugins...", len(plugins))
	var errs []error
	for _, p := range plugins {
		if err := p.Initialize(api); err != nil {
			logger.Errorf("Plugin Manager: ERROR initializing plugin '%s': %v", p.Name(), err)
			errs = append(errs, fmt.Errorf("%s: %w", p.Name(), err))
			continue
		}
		logger.Debugf("Plugin Manager: Initialized plugin '%s'", p.Name())
	}
	return errors.Join(errs...)
}

// ShutdownPlugins calls Shutdown on every plugin.
func (m *Manager) ShutdownPlugins() {
	m.mu.RLock()
	plugins := m.sorted()
	m.mu.RUnlock()

	logger.Infof("Plugin Manager: Shutting down %d plugins...", len(plugins))
	for _, p := range plugins {
		if err := p.Shutdown(); err != nil {
			logger.Errorf("Plugin Manager: ERROR shutting down plugin '%s': %v", p.Name(), err)
		}
	}
}

// GetPlugin returns a registered plugin by name.
func (m *Manager) GetPlugin(name string) (Plugin, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	p, exists := m.plugins[name]
	return p, exists
}

// Names lists registered plugins in initialization order.
func (m *Manager) Names() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()
	names := make([]string, 0, len(m.plugins))
	for _, p := range m.sorted() {
		names = append(names, p.Name())
	}
	return names
}
