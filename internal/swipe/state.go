package swipe

// State records which row, if any, has its action panel revealed.
// The zero value is Closed.
type State struct {
	OpenRowID string
}

// IsOpen reports whether id is the open row.
func (s State) IsOpen(id string) bool {
	return id != "" && s.OpenRowID == id
}

// Closed reports whether no row is open.
func (s State) Closed() bool {
	return s.OpenRowID == ""
}

// RequestOpen moves to OpenFor(id). It returns the rows that must be closed
// first; at most one.
func (s State) RequestOpen(id string) (State, []string) {
	if id == "" || s.OpenRowID == id {
		return s, nil
	}
	var closes []string
	if s.OpenRowID != "" {
		closes = []string{s.OpenRowID}
	}
	return State{OpenRowID: id}, closes
}

// RequestClose closes id only if it is the open row. Stale signals from a
// superseded row are ignored.
func (s State) RequestClose(id string) State {
	if s.IsOpen(id) {
		return State{}
	}
	return s
}

// CloseAll forces Closed and returns the row whose panel must be closed.
func (s State) CloseAll() (State, []string) {
	if s.OpenRowID == "" {
		return s, nil
	}
	return State{}, []string{s.OpenRowID}
}
