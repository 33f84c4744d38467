package bus

import (
	"strings"
	"sync"
	"sync/atomic"
)

// Bus fans change events out to subscribers. Views subscribe to learn that a
// snapshot changed and must be re-rendered; they never read payloads as state.
type Bus struct {
	mu      sync.RWMutex
	subs    map[int]*subscription
	next    int
	dropped atomic.Uint64
}

type subscription struct {
	prefixes []string
	ch       chan Event
}

func (s *subscription) wants(kind string) bool {
	if len(s.prefixes) == 0 {
		return true
	}
	for _, p := range s.prefixes {
		if strings.HasPrefix(kind, p) {
			return true
		}
	}
	return false
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{subs: make(map[int]*subscription)}
}

// Publish delivers evt to every matching subscriber without blocking.
// A full subscriber misses the event and is counted in Dropped. A nil bus
// drops everything.
func (b *Bus) Publish(evt Event) {
	if b == nil {
		return
	}
	b.mu.RLock()
	defer b.mu.RUnlock()
	for _, sub := range b.subs {
		if !sub.wants(evt.Kind) {
			continue
		}
		select {
		case sub.ch <- evt:
		default:
			b.dropped.Add(1)
		}
	}
}

// Subscribe returns a channel receiving events whose kind starts with one of
// the given namespaces (all events when none are given). The returned func
// unsubscribes and closes the channel; calling it again is a no-op.
func (b *Bus) Subscribe(bufSize int, namespaces ...string) (<-chan Event, func()) {
	sub := &subscription{prefixes: namespaces, ch: make(chan Event, bufSize)}
	b.mu.Lock()
	id := b.next
	b.next++
	b.subs[id] = sub
	b.mu.Unlock()

	var once sync.Once
	return sub.ch, func() {
		once.Do(func() {
			b.mu.Lock()
			delete(b.subs, id)
			b.mu.Unlock()
			close(sub.ch)
		})
	}
}

// Dropped reports how many deliveries were skipped because a subscriber was full.
func (b *Bus) Dropped() uint64 {
	return b.dropped.Load()
}
