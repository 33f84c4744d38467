package timeline

import (
	"sync"
	"time"
)

// DefaultScrollDelay lets the view re-render before scrolling to the new end.
const DefaultScrollDelay = 100 * time.Millisecond

// Scroller schedules a best-effort scroll-to-end after a fixed delay. A new
// request supersedes the pending one.
type Scroller struct {
	mu     sync.Mutex
	delay  time.Duration
	scroll func()
	timer  *time.Timer
}

// NewScroller creates a scroller that calls scroll after delay.
func NewScroller(delay time.Duration, scroll func()) *Scroller {
	if delay <= 0 {
		delay = DefaultScrollDelay
	}
	return &Scroller{delay: delay, scroll: scroll}
}

// Request schedules a scroll, cancelling any pending one.
func (s *Scroller) Request() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.delay, s.scroll)
}

// Stop cancels a pending scroll.
func (s *Scroller) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
