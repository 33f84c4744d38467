package model

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/matheus3301/chatshell/internal/attachment"
	"github.com/matheus3301/chatshell/internal/conversation"
	"github.com/matheus3301/chatshell/internal/overlay"
	"github.com/matheus3301/chatshell/internal/timeline"
	"go.uber.org/zap"
)

// ErrNoConversation is returned when the Chat screen has nothing open.
var ErrNoConversation = errors.New("no conversation open")

// ChatSnapshot is an immutable view of the Chat screen.
type ChatSnapshot struct {
	Conversation conversation.Item
	Messages     []timeline.Message
	Overlay      overlay.State
	Picking      bool
}

// Chat is the view-model for a single conversation thread.
type Chat struct {
	mu sync.RWMutex

	items     []conversation.Item
	active    conversation.Item
	store     *timeline.Store
	hooked    map[*timeline.Store]bool
	scrollEnd func()

	timelines *timeline.Registry
	pipeline  *attachment.Pipeline
	overlays  *overlay.Presenter
	nav       Navigator
	logger    *zap.Logger

	refreshCh chan struct{}
}

// NewChat creates the Chat view-model.
func NewChat(items []conversation.Item, timelines *timeline.Registry, pipeline *attachment.Pipeline, overlays *overlay.Presenter, nav Navigator, logger *zap.Logger) *Chat {
	return &Chat{
		items:     append([]conversation.Item(nil), items...),
		hooked:    make(map[*timeline.Store]bool),
		timelines: timelines,
		pipeline:  pipeline,
		overlays:  overlays,
		nav:       nav,
		logger:    logger,
		refreshCh: make(chan struct{}, 1),
	}
}

// RefreshCh returns the channel that signals UI refresh.
func (c *Chat) RefreshCh() <-chan struct{} {
	return c.refreshCh
}

func (c *Chat) signalRefresh() {
	select {
	case c.refreshCh <- struct{}{}:
	default:
	}
}

// SetScrollRequester installs the scroll-to-end side effect, normally a
// timeline.Scroller's Request.
func (c *Chat) SetScrollRequester(fn func()) {
	c.mu.Lock()
	c.scrollEnd = fn
	c.mu.Unlock()
}

func (c *Chat) requestScroll() {
	c.mu.RLock()
	fn := c.scrollEnd
	c.mu.RUnlock()
	if fn != nil {
		fn()
	}
}

// Open makes id the active conversation.
func (c *Chat) Open(id string) error {
	it, ok := conversation.Find(c.items, id)
	if !ok {
		return fmt.Errorf("open %q: %w", id, ErrUnknownConversation)
	}
	store, err := c.timelines.For(id)
	if err != nil {
		return err
	}

	c.mu.Lock()
	c.active = it
	c.store = store
	hook := !c.hooked[store]
	c.hooked[store] = true
	c.mu.Unlock()

	if hook {
		store.OnAppend(func(timeline.Message) {
			if c.isActive(store) {
				c.signalRefresh()
				c.requestScroll()
			}
		})
	}
	c.logger.Debug("conversation opened", zap.String("conversation", id))
	c.signalRefresh()
	c.requestScroll()
	return nil
}

func (c *Chat) isActive(store *timeline.Store) bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.store == store
}

func (c *Chat) current() (*timeline.Store, error) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if c.store == nil {
		return nil, ErrNoConversation
	}
	return c.store, nil
}

// Send appends a text message to the active conversation.
func (c *Chat) Send(text string) (timeline.Message, error) {
	store, err := c.current()
	if err != nil {
		return timeline.Message{}, err
	}
	return store.AppendText(text)
}

// Attach runs the picker and appends the chosen image.
func (c *Chat) Attach(ctx context.Context) (attachment.Result, error) {
	store, err := c.current()
	if err != nil {
		return attachment.Result{}, err
	}
	c.signalRefresh()
	defer c.signalRefresh()
	// The store is bound now, so a late pick lands where it started.
	res, err := c.pipeline.PickAndAttach(ctx, store)
	if res.Attached != nil {
		c.logger.Info("image attached",
			zap.String("conversation", store.ConversationID()),
			zap.String("message", res.Attached.ID))
	}
	return res, err
}

// Preview shows the full-screen preview of an image message.
func (c *Chat) Preview(messageID string) error {
	store, err := c.current()
	if err != nil {
		return err
	}
	m, ok := store.Find(messageID)
	if !ok {
		return fmt.Errorf("message %q not found", messageID)
	}
	if m.Kind != timeline.Image {
		return fmt.Errorf("message %q is not an image", messageID)
	}
	if err := c.overlays.ShowPreview(m.ImageRef); err != nil {
		return err
	}
	c.signalRefresh()
	return nil
}

// Dismiss closes the active overlay.
func (c *Chat) Dismiss() {
	c.overlays.Dismiss()
	c.signalRefresh()
}

// Back returns to the Home screen.
func (c *Chat) Back() {
	c.overlays.Dismiss()
	c.nav.NavigateTo(ScreenHome)
}

// Snapshot returns the current screen state.
func (c *Chat) Snapshot() ChatSnapshot {
	c.mu.RLock()
	snap := ChatSnapshot{Conversation: c.active}
	store := c.store
	c.mu.RUnlock()

	if store != nil {
		snap.Messages = store.Snapshot()
	}
	snap.Overlay = c.overlays.State()
	snap.Picking = c.pipeline.Phase() == attachment.Picking
	return snap
}
