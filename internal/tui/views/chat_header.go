package views

import (
	"fmt"

	"github.com/matheus3301/chatshell/internal/conversation"
	"github.com/matheus3301/chatshell/internal/tui/ui"
	"github.com/rivo/tview"
)

// ChatHeader shows who the open conversation is with.
type ChatHeader struct {
	*tview.TextView
	theme *ui.Theme
}

// NewChatHeader creates a new chat header.
func NewChatHeader(theme *ui.Theme) *ChatHeader {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 1, 1)

	return &ChatHeader{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders the header for it.
func (ch *ChatHeader) Update(it conversation.Item) {
	ch.Clear()
	if it.ID == "" {
		return
	}

	fg := ui.Tag(ch.theme.FgColor)
	muted := ui.Tag(ch.theme.MutedColor)
	key := ui.Tag(ch.theme.MenuKeyColor)

	kind := "Direct message"
	if it.IsGroup {
		kind = "Group"
	}
	last := it.TimestampLabel
	if last == "" {
		last = "-"
	}

	_, _ = fmt.Fprintf(ch,
		"[%s::b]<Esc>[-:-:-] %s [%s::b]%s[-:-:-]\n[%s]%s · last active %s[-]",
		key, avatarMarker(it), fg, tview.Escape(sanitizeLine(it.DisplayName)),
		muted, kind, tview.Escape(last),
	)
}
