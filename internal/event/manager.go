package event

import (
	"sync"

	"github.com/bethropolis/leditor/internal/logger"
)

// Handler receives a dispatched event. The return value reports whether the
// event was consumed; Dispatch currently calls every handler regardless.
type Handler func(e Event) bool

// Manager handles event subscriptions and dispatching.
type Manager struct {
	mu       sync.RWMutex
	handlers map[Type][]Handler
}

// NewManager creates a new event manager.
func NewManager() *Manager {
	return &Manager{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe adds a handler function for a specific event type.
func (m *Manager) Subscribe(eventType Type, handler Handler) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.handlers[eventType] = append(m.handlers[eventType], handler)
	logger.Debugf("Event Manager: Handler subscribed to %v", eventType)
}

// Dispatch sends an event synchronously to all handlers registered for its type.
// Handlers may subscribe further handlers while running.
func (m *Manager) Dispatch(eventType Type, data interface{}) {
	e := Event{Type: eventType, Data: data}

	m.mu.RLock()
	handlers := make([]Handler, len(m.handlers[eventType]))
	copy(handlers, m.handlers[eventType])
	m.mu.RUnlock()

	if len(handlers) == 0 {
		return
	}

	logger.Debugf("Event Manager: Dispatching %v to %d handler(s)", eventType, len(handlers))
	for _, handler := range handlers {
		handler(e)
	}
}
