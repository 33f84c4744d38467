package overlay

import (
	"sync"

	"github.com/matheus3301/chatshell/internal/bus"
	"go.uber.org/zap"
)

// Presenter is the single source of truth for the visible overlay.
type Presenter struct {
	mu     sync.RWMutex
	state  State
	onShow []func()
	bus    *bus.Bus
	logger *zap.Logger
}

// NewPresenter creates a presenter with no overlay shown. b may be nil.
func NewPresenter(b *bus.Bus, logger *zap.Logger) *Presenter {
	return &Presenter{bus: b, logger: logger}
}

// OnShow registers a hook that runs every time an overlay opens.
func (p *Presenter) OnShow(fn func()) {
	p.mu.Lock()
	p.onShow = append(p.onShow, fn)
	p.mu.Unlock()
}

// State returns the current overlay snapshot.
func (p *Presenter) State() State {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.state
}

// Show opens kind, superseding any overlay already shown.
func (p *Presenter) Show(kind Kind) error {
	return p.apply(func(s State) (State, error) { return s.Show(kind) })
}

// ShowPreview opens the full-screen preview for ref.
func (p *Presenter) ShowPreview(ref string) error {
	return p.apply(func(s State) (State, error) { return s.ShowPreview(ref) })
}

// Dismiss closes the active overlay, if any.
func (p *Presenter) Dismiss() {
	_ = p.apply(func(s State) (State, error) { return s.Dismiss(), nil })
}

func (p *Presenter) apply(next func(State) (State, error)) error {
	p.mu.Lock()
	from := p.state
	to, err := next(from)
	if err != nil {
		p.mu.Unlock()
		return err
	}
	p.state = to
	hooks := p.onShow
	p.mu.Unlock()

	if to.Visible() {
		for _, fn := range hooks {
			fn()
		}
	}
	if from != to {
		p.logger.Debug("overlay changed",
			zap.Stringer("from", from.Active),
			zap.Stringer("to", to.Active))
		p.bus.Publish(bus.NewEvent(bus.KindOverlayChanged, Change{From: from, To: to}))
	}
	return nil
}

// Change is the payload for overlay change events.
type Change struct {
	From State
	To   State
}
