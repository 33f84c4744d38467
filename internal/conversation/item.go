package conversation

import "github.com/matheus3301/chatshell/internal/overlay"

// Item is one row of the conversation list. Items are immutable once loaded.
type Item struct {
	ID              string
	DisplayName     string
	PreviewText     string
	TimestampLabel  string
	IsGroup         bool
	AvatarRef       string // empty when the row has no avatar
	MemberAvatarRef string // secondary avatar shown on group rows
	PendingOverlay  overlay.Kind
}

// HasAvatar reports whether the row carries its own avatar.
func (it Item) HasAvatar() bool {
	return it.AvatarRef != ""
}

// Find returns the item with the given id.
func Find(items []Item, id string) (Item, bool) {
	for _, it := range items {
		if it.ID == id {
			return it, true
		}
	}
	return Item{}, false
}
