package bus

import "time"

// Namespaces accepted by Subscribe.
const (
	NamespaceHome       = "home."
	NamespaceNav        = "nav."
	NamespaceOverlay    = "overlay."
	NamespaceTimeline   = "timeline."
	NamespaceAttachment = "attachment."
)

// Event kinds published by the shell.
const (
	KindFilterChanged     = "home.filter_changed"
	KindSwipeChanged      = "home.swipe_changed"
	KindNavigate          = "nav.navigate"
	KindOverlayChanged    = "overlay.changed"
	KindTimelineAppended  = "timeline.appended"
	KindAttachmentPhase   = "attachment.phase_changed"
	KindAttachmentFailed  = "attachment.failed"
	KindAttachmentSkipped = "attachment.cancelled"
)

// Event is a state change notification published on the bus.
type Event struct {
	Kind      string
	Timestamp time.Time
	Payload   any
}

// NewEvent stamps an event with the current time.
func NewEvent(kind string, payload any) Event {
	return Event{Kind: kind, Timestamp: time.Now(), Payload: payload}
}
