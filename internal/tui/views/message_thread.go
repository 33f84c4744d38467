package views

import (
	"fmt"
	"strings"

	"github.com/matheus3301/chatshell/internal/conversation"
	"github.com/matheus3301/chatshell/internal/timeline"
	"github.com/matheus3301/chatshell/internal/tui/ui"
	"github.com/rivo/tview"
)

// MessageThread displays the header, the messages and a composer for a
// single conversation. Image messages are regions that can be highlighted
// and opened in the preview.
type MessageThread struct {
	*tview.Flex
	theme    *ui.Theme
	header   *ChatHeader
	messages *tview.TextView
	composer *Composer

	images  []string
	current int
}

// NewMessageThread creates a new message thread view.
func NewMessageThread(theme *ui.Theme) *MessageThread {
	messages := tview.NewTextView().
		SetDynamicColors(true).
		SetRegions(true).
		SetScrollable(true).
		SetWordWrap(true)
	messages.SetBorder(true)
	messages.SetBorderColor(theme.BorderColor)
	messages.SetBackgroundColor(theme.BgColor)
	messages.SetTextColor(theme.FgColor)
	messages.SetTitle(" Messages ")
	messages.SetTitleColor(theme.TitleColor)

	header := NewChatHeader(theme)
	composer := NewComposer(theme)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 2, 0, false).
		AddItem(messages, 0, 1, true).
		AddItem(composer, 3, 0, false)

	return &MessageThread{
		Flex:     flex,
		theme:    theme,
		header:   header,
		messages: messages,
		composer: composer,
		current:  -1,
	}
}

// Name implements Component.
func (mt *MessageThread) Name() string { return "Chat" }

// Hints implements Component.
func (mt *MessageThread) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "i", Description: "Compose"},
		{Key: "Tab", Description: "Next image"},
		{Key: "Enter", Description: "Preview"},
		{Key: "Esc", Description: "Back"},
	}
}

// SetOnSend sets the callback when a message is sent.
func (mt *MessageThread) SetOnSend(fn func(text string) bool) {
	mt.composer.SetOnSend(fn)
}

// Update renders the conversation. It does not scroll; scrolling to the
// end is requested separately.
func (mt *MessageThread) Update(it conversation.Item, msgs []timeline.Message) {
	mt.header.Update(it)
	mt.messages.SetTitle(fmt.Sprintf(" %s ", tview.Escape(sanitizeLine(it.DisplayName))))

	mt.messages.Clear()
	mt.images = mt.images[:0]
	_, _ = fmt.Fprint(mt.messages, mt.renderMessages(it, msgs))

	if mt.current >= len(mt.images) {
		mt.current = -1
	}
	mt.highlight()
}

func (mt *MessageThread) renderMessages(it conversation.Item, msgs []timeline.Message) string {
	out := ui.Tag(mt.theme.OutgoingColor)
	in := ui.Tag(mt.theme.IncomingColor)
	muted := ui.Tag(mt.theme.MutedColor)

	var b strings.Builder
	for _, m := range msgs {
		sender, color := it.DisplayName, in
		if m.Outgoing {
			sender, color = "You", out
		}
		fmt.Fprintf(&b, "[%s::b]%s[-:-:-]", color, tview.Escape(sanitizeLine(sender)))
		if m.TimestampLabel != "" {
			fmt.Fprintf(&b, " [%s]%s[-]", muted, tview.Escape(m.TimestampLabel))
		}
		b.WriteString("\n")

		switch m.Kind {
		case timeline.Image:
			mt.images = append(mt.images, m.ID)
			fmt.Fprintf(&b, "[\"%s\"][::u]▣ image[::-][\"\"] [%s]%s[-]\n\n",
				regionID(m.ID), muted, tview.Escape(m.ImageRef))
		default:
			fmt.Fprintf(&b, "%s\n\n", tview.Escape(sanitizeForTerminal(m.Text)))
		}
	}
	return b.String()
}

// regionID keeps message ids usable as tview region names.
func regionID(id string) string {
	return "img-" + strings.Map(func(r rune) rune {
		if r == '"' || r == '[' || r == ']' {
			return '_'
		}
		return r
	}, id)
}

// NextImage highlights the next image message, wrapping around.
func (mt *MessageThread) NextImage() {
	if len(mt.images) == 0 {
		return
	}
	mt.current = (mt.current + 1) % len(mt.images)
	mt.highlight()
}

// SelectedImage returns the id of the highlighted image message, or the
// last image when none is highlighted.
func (mt *MessageThread) SelectedImage() string {
	switch {
	case len(mt.images) == 0:
		return ""
	case mt.current < 0:
		return mt.images[len(mt.images)-1]
	default:
		return mt.images[mt.current]
	}
}

func (mt *MessageThread) highlight() {
	if mt.current < 0 {
		mt.messages.Highlight()
		return
	}
	region := regionID(mt.images[mt.current])
	mt.messages.Highlight(region)
	mt.messages.ScrollToHighlight()
}

// ScrollToEnd moves the view to the newest message.
func (mt *MessageThread) ScrollToEnd() {
	mt.messages.ScrollToEnd()
}

// Messages returns the messages text view (for focus management).
func (mt *MessageThread) Messages() *tview.TextView {
	return mt.messages
}

// Composer returns the composer input field (for focus management).
func (mt *MessageThread) Composer() *Composer {
	return mt.composer
}

// ResetSelection clears the image highlight, e.g. when another conversation opens.
func (mt *MessageThread) ResetSelection() {
	mt.current = -1
	mt.messages.Highlight()
}
