package swipe

import "sync"

// Handle closes the revealed panel of one mounted row.
type Handle interface {
	Close()
}

// HandleFunc adapts a function to Handle.
type HandleFunc func()

// Close calls f.
func (f HandleFunc) Close() { f() }

// Registry maps row ids to the handles of currently mounted rows. Rows are
// added on mount and removed on unmount so it never holds stale handles.
type Registry struct {
	mu      sync.RWMutex
	handles map[string]Handle
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{handles: make(map[string]Handle)}
}

// Mount registers h for row id, replacing any previous handle.
func (r *Registry) Mount(id string, h Handle) {
	r.mu.Lock()
	r.handles[id] = h
	r.mu.Unlock()
}

// Unmount forgets row id.
func (r *Registry) Unmount(id string) {
	r.mu.Lock()
	delete(r.handles, id)
	r.mu.Unlock()
}

// UnmountAll forgets every row, e.g. before the list is rebuilt.
func (r *Registry) UnmountAll() {
	r.mu.Lock()
	r.handles = make(map[string]Handle)
	r.mu.Unlock()
}

// Len returns the number of mounted rows.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.handles)
}

// CloseRow implements Closer. Unmounted rows are ignored.
func (r *Registry) CloseRow(id string) {
	r.mu.RLock()
	h, ok := r.handles[id]
	r.mu.RUnlock()
	if ok {
		h.Close()
	}
}
