package timeline

import (
	"sync"

	"go.uber.org/zap"
)

// SeedFunc loads the initial history of a conversation.
type SeedFunc func(conversationID string) ([]Message, error)

// Registry owns one Store per conversation, created on first use. Stores
// outlive screen and overlay changes for the lifetime of the process.
type Registry struct {
	mu     sync.Mutex
	stores map[string]*Store
	seed   SeedFunc
	opts   []Option
	logger *zap.Logger
}

// NewRegistry creates a registry. seed may be nil for empty histories.
func NewRegistry(seed SeedFunc, logger *zap.Logger, opts ...Option) *Registry {
	return &Registry{
		stores: make(map[string]*Store),
		seed:   seed,
		opts:   opts,
		logger: logger,
	}
}

// For returns the store of a conversation, seeding it on first access.
func (r *Registry) For(conversationID string) (*Store, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if s, ok := r.stores[conversationID]; ok {
		return s, nil
	}
	var history []Message
	if r.seed != nil {
		var err error
		history, err = r.seed(conversationID)
		if err != nil {
			return nil, err
		}
	}
	s := NewStore(conversationID, history, r.logger, r.opts...)
	r.stores[conversationID] = s
	r.logger.Debug("timeline created",
		zap.String("conversation_id", conversationID),
		zap.Int("seeded", len(history)))
	return s, nil
}
