package swipe

import (
	"sync"

	"github.com/matheus3301/chatshell/internal/bus"
	"go.uber.org/zap"
)

// Closer executes close instructions on the visual panel of a row.
type Closer interface {
	CloseRow(id string)
}

// CloserFunc adapts a function to Closer.
type CloserFunc func(id string)

// CloseRow calls f(id).
func (f CloserFunc) CloseRow(id string) { f(id) }

// Manager enforces that at most one row has its action panel open.
// It addresses rows purely by id and never holds view handles.
type Manager struct {
	mu     sync.Mutex
	state  State
	closer Closer
	bus    *bus.Bus
	logger *zap.Logger
}

// NewManager creates a manager in the Closed state.
func NewManager(closer Closer, b *bus.Bus, logger *zap.Logger) *Manager {
	return &Manager{closer: closer, bus: b, logger: logger}
}

// State returns the current snapshot.
func (m *Manager) State() State {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state
}

// RequestOpen handles a row about to reveal its panel. Any other open row is
// instructed to close before the new row is recorded as open.
func (m *Manager) RequestOpen(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	next, closes := m.state.RequestOpen(id)
	m.commit(next, closes)
}

// RequestClose handles a row reporting that its panel closed.
func (m *Manager) RequestClose(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.commit(m.state.RequestClose(id), nil)
}

// CloseAll closes whatever row is open. Called on row taps and overlay opens.
func (m *Manager) CloseAll() {
	m.mu.Lock()
	defer m.mu.Unlock()
	next, closes := m.state.CloseAll()
	m.commit(next, closes)
}

// commit must be called with m.mu held. Closers must not call back into the manager.
func (m *Manager) commit(next State, closes []string) {
	for _, id := range closes {
		m.logger.Debug("closing swipe row", zap.String("row_id", id))
		if m.closer != nil {
			m.closer.CloseRow(id)
		}
	}
	if next == m.state {
		return
	}
	m.state = next
	m.bus.Publish(bus.NewEvent(bus.KindSwipeChanged, next))
}
