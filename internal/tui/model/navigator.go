package model

import (
	"fmt"
	"sync"

	"github.com/matheus3301/chatshell/internal/bus"
	"go.uber.org/zap"
)

// Screen is one of the two base screens.
type Screen int

const (
	ScreenHome Screen = iota
	ScreenChat
)

func (s Screen) String() string {
	switch s {
	case ScreenHome:
		return "home"
	case ScreenChat:
		return "chat"
	default:
		return fmt.Sprintf("screen(%d)", int(s))
	}
}

// Navigator switches the base screen.
type Navigator interface {
	NavigateTo(screen Screen)
}

// NavigatorFunc adapts a function to Navigator.
type NavigatorFunc func(Screen)

func (f NavigatorFunc) NavigateTo(s Screen) { f(s) }

// Router is the app's Navigator. The UI follows it through KindNavigate events.
type Router struct {
	mu      sync.RWMutex
	current Screen
	bus     *bus.Bus
	logger  *zap.Logger
}

// NewRouter starts on the Home screen.
func NewRouter(b *bus.Bus, logger *zap.Logger) *Router {
	return &Router{bus: b, logger: logger}
}

// Current returns the active screen.
func (r *Router) Current() Screen {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.current
}

// NavigateTo switches to screen. Navigating to the current screen still
// publishes, so a freshly opened chat gets redrawn.
func (r *Router) NavigateTo(screen Screen) {
	r.mu.Lock()
	from := r.current
	r.current = screen
	r.mu.Unlock()

	r.logger.Debug("navigate", zap.Stringer("from", from), zap.Stringer("to", screen))
	r.bus.Publish(bus.NewEvent(bus.KindNavigate, screen))
}
