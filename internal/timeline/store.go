package timeline

import (
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/matheus3301/chatshell/internal/bus"
	"go.uber.org/zap"
)

// TimeLayout formats the timestamp label captured at append time.
const TimeLayout = "15:04"

// Appended is the payload for timeline.appended events.
type Appended struct {
	ConversationID string
	Message        Message
	Len            int
}

// Store is the append-only message log of one conversation. Appends are
// serialized: each one assigns its id and timestamp and lands at the end
// before the next is applied.
type Store struct {
	mu             sync.RWMutex
	conversationID string
	msgs           []Message

	now      func() time.Time
	newID    func() string
	bus      *bus.Bus
	logger   *zap.Logger
	onAppend []func(Message)
}

// Option configures a Store.
type Option func(*Store)

// WithClock overrides the clock used for timestamp labels.
func WithClock(now func() time.Time) Option {
	return func(s *Store) { s.now = now }
}

// WithIDs overrides id generation.
func WithIDs(newID func() string) Option {
	return func(s *Store) { s.newID = newID }
}

// WithBus publishes an event for every append.
func WithBus(b *bus.Bus) Option {
	return func(s *Store) { s.bus = b }
}

// NewStore creates a store seeded with history, oldest first.
func NewStore(conversationID string, seed []Message, logger *zap.Logger, opts ...Option) *Store {
	s := &Store{
		conversationID: conversationID,
		msgs:           append([]Message(nil), seed...),
		now:            time.Now,
		newID:          newMessageID,
		logger:         logger,
	}
	for _, o := range opts {
		o(s)
	}
	return s
}

// newMessageID returns a time-ordered UUIDv7, falling back to v4.
func newMessageID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}

// ConversationID returns the conversation this log belongs to.
func (s *Store) ConversationID() string {
	return s.conversationID
}

// OnAppend registers a hook that runs after every successful append,
// outside the store lock. Used to schedule scroll-to-end.
func (s *Store) OnAppend(fn func(Message)) {
	s.mu.Lock()
	s.onAppend = append(s.onAppend, fn)
	s.mu.Unlock()
}

// AppendText appends an outgoing text message. Content that is empty after
// trimming is rejected with a *ValidationError and nothing is appended.
func (s *Store) AppendText(content string) (Message, error) {
	if strings.TrimSpace(content) == "" {
		return Message{}, &ValidationError{Field: "text", Reason: "message is empty"}
	}
	return s.append(Message{Kind: Text, Text: content, Outgoing: true})
}

// AppendImage appends an outgoing image message.
func (s *Store) AppendImage(imageRef string) (Message, error) {
	if strings.TrimSpace(imageRef) == "" {
		return Message{}, &ValidationError{Field: "image", Reason: "image reference is empty"}
	}
	return s.append(Message{Kind: Image, ImageRef: imageRef, Outgoing: true})
}

func (s *Store) append(m Message) (Message, error) {
	s.mu.Lock()
	m.ID = s.newID()
	m.TimestampLabel = s.now().Format(TimeLayout)
	s.msgs = append(s.msgs, m)
	n := len(s.msgs)
	hooks := s.onAppend
	s.mu.Unlock()

	s.logger.Debug("message appended",
		zap.String("conversation_id", s.conversationID),
		zap.String("msg_id", m.ID),
		zap.Stringer("kind", m.Kind))
	s.bus.Publish(bus.NewEvent(bus.KindTimelineAppended, Appended{
		ConversationID: s.conversationID,
		Message:        m,
		Len:            n,
	}))
	for _, fn := range hooks {
		fn(m)
	}
	return m, nil
}

// Snapshot returns a copy of the log, oldest first.
func (s *Store) Snapshot() []Message {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]Message, len(s.msgs))
	copy(out, s.msgs)
	return out
}

// Len returns the number of messages.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.msgs)
}

// Find returns the message with the given id.
func (s *Store) Find(id string) (Message, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, m := range s.msgs {
		if m.ID == id {
			return m, true
		}
	}
	return Message{}, false
}
