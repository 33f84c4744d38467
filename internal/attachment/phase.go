package attachment

import (
	"fmt"
	"slices"
	"sync"

	"github.com/matheus3301/chatshell/internal/bus"
)

// Phase is the pipeline's runtime phase.
type Phase string

const (
	Idle    Phase = "IDLE"
	Picking Phase = "PICKING"
)

// validTransitions defines allowed phase transitions.
var validTransitions = map[Phase][]Phase{
	Idle:    {Picking},
	Picking: {Idle},
}

// Machine tracks and enforces pipeline phase transitions.
type Machine struct {
	mu      sync.RWMutex
	current Phase
	bus     *bus.Bus
}

// NewMachine creates a machine in the Idle phase.
func NewMachine(b *bus.Bus) *Machine {
	return &Machine{
		current: Idle,
		bus:     b,
	}
}

// Current returns the current phase.
func (m *Machine) Current() Phase {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.current
}

// Transition attempts to move to a new phase.
func (m *Machine) Transition(to Phase) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	allowed := validTransitions[m.current]
	if !slices.Contains(allowed, to) {
		return fmt.Errorf("invalid transition from %s to %s", m.current, to)
	}
	from := m.current
	m.current = to
	m.bus.Publish(bus.NewEvent(bus.KindAttachmentPhase, PhaseChange{From: from, To: to}))
	return nil
}

// PhaseChange is the payload for phase change events.
type PhaseChange struct {
	From Phase
	To   Phase
}
