package model

import (
	"errors"
	"fmt"
	"net/mail"
	"net/url"
	"strings"
	"sync"

	"github.com/matheus3301/chatshell/internal/bus"
	"github.com/matheus3301/chatshell/internal/conversation"
	"github.com/matheus3301/chatshell/internal/overlay"
	"github.com/matheus3301/chatshell/internal/swipe"
	"github.com/matheus3301/chatshell/internal/timeline"
	"go.uber.org/zap"
)

// ErrUnknownConversation is returned for ids not in the catalog.
var ErrUnknownConversation = errors.New("unknown conversation")

// InviteSubject is the subject line of the invite link.
const InviteSubject = "Join me on chatshell"

// HomeSnapshot is an immutable view of the Home screen.
type HomeSnapshot struct {
	Filter    conversation.FilterState
	Visible   []conversation.Item
	Total     int
	OpenRowID string
	Overlay   overlay.State
	// PendingID is the conversation whose invite/agreement overlay is shown.
	PendingID   string
	PendingName string
	InviteLink  string
}

// Home is the view-model for the conversation list screen.
type Home struct {
	mu sync.RWMutex

	items      []conversation.Item
	filter     conversation.FilterState
	pendingID  string
	inviteLink string

	swipe    *swipe.Manager
	overlays *overlay.Presenter
	chat     *Chat
	nav      Navigator
	bus      *bus.Bus
	logger   *zap.Logger

	refreshCh chan struct{}
}

// NewHome creates the Home view-model over a fixed item list.
func NewHome(items []conversation.Item, sw *swipe.Manager, overlays *overlay.Presenter, chat *Chat, nav Navigator, b *bus.Bus, logger *zap.Logger) *Home {
	return &Home{
		items:     append([]conversation.Item(nil), items...),
		swipe:     sw,
		overlays:  overlays,
		chat:      chat,
		nav:       nav,
		bus:       b,
		logger:    logger,
		refreshCh: make(chan struct{}, 1),
	}
}

// RefreshCh returns the channel that signals UI refresh.
func (h *Home) RefreshCh() <-chan struct{} {
	return h.refreshCh
}

func (h *Home) signalRefresh() {
	select {
	case h.refreshCh <- struct{}{}:
	default:
	}
}

// Snapshot returns the current screen state.
func (h *Home) Snapshot() HomeSnapshot {
	h.mu.RLock()
	snap := HomeSnapshot{
		Filter:     h.filter,
		Visible:    conversation.ComputeVisible(h.items, h.filter),
		Total:      len(h.items),
		PendingID:  h.pendingID,
		InviteLink: h.inviteLink,
	}
	if it, ok := conversation.Find(h.items, h.pendingID); ok {
		snap.PendingName = it.DisplayName
	}
	h.mu.RUnlock()

	snap.OpenRowID = h.swipe.State().OpenRowID
	snap.Overlay = h.overlays.State()
	return snap
}

// Items returns the full catalog in display order.
func (h *Home) Items() []conversation.Item {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return append([]conversation.Item(nil), h.items...)
}

// SelectTab switches the category filter.
func (h *Home) SelectTab(c conversation.Category) {
	h.updateFilter(func(f conversation.FilterState) conversation.FilterState { return f.WithCategory(c) })
}

// SetQuery replaces the search text.
func (h *Home) SetQuery(q string) {
	h.updateFilter(func(f conversation.FilterState) conversation.FilterState { return f.WithQuery(q) })
}

// ClearQuery empties the search text and keeps the tab.
func (h *Home) ClearQuery() {
	h.updateFilter(conversation.FilterState.ClearQuery)
}

func (h *Home) updateFilter(next func(conversation.FilterState) conversation.FilterState) {
	h.mu.Lock()
	from := h.filter
	h.filter = next(from)
	to := h.filter
	visible := conversation.ComputeVisible(h.items, to)
	h.mu.Unlock()

	if from == to {
		return
	}
	// A row the filter hides cannot keep its panel open.
	if open := h.swipe.State().OpenRowID; open != "" {
		if _, ok := conversation.Find(visible, open); !ok {
			h.swipe.CloseAll()
		}
	}
	h.bus.Publish(bus.NewEvent(bus.KindFilterChanged, to))
	h.signalRefresh()
}

// SwipeOpen reveals the action panel of id, closing any other.
func (h *Home) SwipeOpen(id string) {
	h.swipe.RequestOpen(id)
	h.signalRefresh()
}

// SwipeClose hides the action panel of id.
func (h *Home) SwipeClose(id string) {
	h.swipe.RequestClose(id)
	h.signalRefresh()
}

// TapRow closes any open panel, then either shows the row's pending overlay
// or opens the conversation.
func (h *Home) TapRow(id string) error {
	h.swipe.CloseAll()

	h.mu.RLock()
	it, ok := conversation.Find(h.items, id)
	h.mu.RUnlock()
	if !ok {
		return fmt.Errorf("tap %q: %w", id, ErrUnknownConversation)
	}

	if it.PendingOverlay != overlay.None {
		if err := h.overlays.Show(it.PendingOverlay); err != nil {
			return err
		}
		h.mu.Lock()
		h.pendingID = id
		h.inviteLink = ""
		h.mu.Unlock()
		h.signalRefresh()
		return nil
	}
	return h.openChat(id)
}

// AcceptAgreement dismisses the agreement and opens its conversation.
func (h *Home) AcceptAgreement() error {
	if h.overlays.State().Active != overlay.Agreement {
		return errors.New("no agreement is shown")
	}
	h.mu.Lock()
	id := h.pendingID
	h.pendingID = ""
	h.mu.Unlock()

	h.overlays.Dismiss()
	return h.openChat(id)
}

// SubmitInvite validates email and exposes the invite link. The overlay stays open.
func (h *Home) SubmitInvite(email string) (string, error) {
	if h.overlays.State().Active != overlay.Invite {
		return "", errors.New("no invite is shown")
	}
	addr, err := mail.ParseAddress(strings.TrimSpace(email))
	if err != nil {
		return "", &timeline.ValidationError{Field: "email", Reason: "not a valid address"}
	}
	link := "mailto:" + addr.Address + "?subject=" + url.PathEscape(InviteSubject)

	h.mu.Lock()
	h.inviteLink = link
	id := h.pendingID
	h.mu.Unlock()
	h.logger.Info("invite link created", zap.String("conversation", id))
	h.signalRefresh()
	return link, nil
}

// Dismiss closes the active overlay.
func (h *Home) Dismiss() {
	h.overlays.Dismiss()
	h.mu.Lock()
	h.pendingID = ""
	h.inviteLink = ""
	h.mu.Unlock()
	h.signalRefresh()
}

func (h *Home) openChat(id string) error {
	if err := h.chat.Open(id); err != nil {
		return err
	}
	h.nav.NavigateTo(ScreenChat)
	return nil
}
