package views

import (
	"fmt"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/chatshell/internal/conversation"
	"github.com/matheus3301/chatshell/internal/swipe"
	"github.com/matheus3301/chatshell/internal/tui/ui"
	"github.com/rivo/tview"
)

// EmptyPlaceholder is shown when no conversation passes the filter.
const EmptyPlaceholder = "No messages found"

// MoreAction is the label of the revealed row action.
const MoreAction = "More"

// ConversationList is the Home screen table. Each visible row is mounted in
// the swipe registry so the exclusivity manager can close its panel.
type ConversationList struct {
	*tview.Table
	theme *ui.Theme
	rows  *swipe.Registry

	mu       sync.Mutex
	items    []conversation.Item
	revealed map[string]bool
}

// NewConversationList creates a new conversation list table.
func NewConversationList(theme *ui.Theme, rows *swipe.Registry) *ConversationList {
	table := tview.NewTable().
		SetSelectable(true, false).
		SetBorders(false).
		SetFixed(1, 0)
	table.SetBorder(true)
	table.SetBorderColor(theme.BorderColor)
	table.SetBackgroundColor(theme.BgColor)
	table.SetSelectedStyle(tcell.StyleDefault.
		Foreground(theme.TableCursorFg).
		Background(theme.TableCursorBg))
	table.SetTitle(" Conversations ")
	table.SetTitleColor(theme.TitleColor)

	return &ConversationList{
		Table:    table,
		theme:    theme,
		rows:     rows,
		revealed: make(map[string]bool),
	}
}

// Name implements Component.
func (cl *ConversationList) Name() string { return "Home" }

// Hints implements Component.
func (cl *ConversationList) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Open"},
		{Key: "l", Description: "Reveal"},
		{Key: "h", Description: "Hide"},
	}
}

// Update re-renders the list from the visible items and keeps the swipe
// registry in step with the rows on screen.
func (cl *ConversationList) Update(items []conversation.Item, total int) {
	cl.mu.Lock()
	prev := cl.items
	cl.items = items
	cl.mu.Unlock()

	cl.remount(prev, items)
	cl.render(total)
}

func (cl *ConversationList) remount(prev, next []conversation.Item) {
	if len(next) == 0 {
		cl.rows.UnmountAll()
		cl.mu.Lock()
		clear(cl.revealed)
		cl.mu.Unlock()
		return
	}
	keep := make(map[string]bool, len(next))
	for _, it := range next {
		keep[it.ID] = true
	}
	for _, it := range prev {
		if !keep[it.ID] {
			cl.rows.Unmount(it.ID)
			cl.setRevealed(it.ID, false)
		}
	}
	for _, it := range next {
		id := it.ID
		cl.rows.Mount(id, swipe.HandleFunc(func() { cl.setRevealed(id, false) }))
	}
}

// Reveal shows the action panel of id.
func (cl *ConversationList) Reveal(id string) {
	cl.setRevealed(id, true)
}

// Conceal hides the action panel of id.
func (cl *ConversationList) Conceal(id string) {
	cl.setRevealed(id, false)
}

// Revealed reports whether id shows its action panel.
func (cl *ConversationList) Revealed(id string) bool {
	cl.mu.Lock()
	defer cl.mu.Unlock()
	return cl.revealed[id]
}

func (cl *ConversationList) setRevealed(id string, open bool) {
	cl.mu.Lock()
	if open {
		cl.revealed[id] = true
	} else {
		delete(cl.revealed, id)
	}
	cl.mu.Unlock()
}

func (cl *ConversationList) render(total int) {
	row, _ := cl.GetSelection()
	cl.Clear()

	headers := []struct {
		text string
		exp  int
	}{
		{" ", 0},
		{" NAME", 1},
		{" LAST MESSAGE", 2},
		{" TIME", 0},
		{" ", 0},
	}
	for col, h := range headers {
		cell := tview.NewTableCell(h.text).
			SetSelectable(false).
			SetTextColor(cl.theme.TableHeaderFg).
			SetBackgroundColor(cl.theme.TableHeaderBg).
			SetAttributes(tcell.AttrBold).
			SetExpansion(h.exp)
		cl.SetCell(0, col, cell)
	}

	cl.mu.Lock()
	items := cl.items
	revealed := make(map[string]bool, len(cl.revealed))
	for id := range cl.revealed {
		revealed[id] = true
	}
	cl.mu.Unlock()

	if len(items) == 0 {
		cl.SetCell(1, 1, tview.NewTableCell(" "+EmptyPlaceholder).
			SetSelectable(false).
			SetTextColor(cl.theme.MutedColor).
			SetExpansion(1))
		cl.SetTitle(fmt.Sprintf(" Conversations (0/%d) ", total))
		return
	}

	for i, it := range items {
		r := i + 1
		cl.SetCell(r, 0, tview.NewTableCell(avatarMarker(it)).SetTextColor(cl.markerColor(it)))
		cl.SetCell(r, 1, tview.NewTableCell(" "+tview.Escape(sanitizeLine(it.DisplayName))).SetExpansion(1).SetTextColor(cl.theme.FgColor))
		cl.SetCell(r, 2, tview.NewTableCell(" "+tview.Escape(sanitizeLine(it.PreviewText))).SetExpansion(2).SetTextColor(cl.theme.MutedColor))
		cl.SetCell(r, 3, tview.NewTableCell(" "+tview.Escape(it.TimestampLabel)).SetTextColor(cl.theme.MutedColor).SetAlign(tview.AlignRight))

		action := tview.NewTableCell("")
		if revealed[it.ID] {
			action = tview.NewTableCell(" " + MoreAction + " ").
				SetTextColor(cl.theme.RevealFg).
				SetBackgroundColor(cl.theme.RevealBg).
				SetAttributes(tcell.AttrBold)
		}
		cl.SetCell(r, 4, action)
	}

	if row < 1 {
		row = 1
	}
	if row > len(items) {
		row = len(items)
	}
	cl.Select(row, 0)

	if len(items) == total {
		cl.SetTitle(fmt.Sprintf(" Conversations (%d) ", total))
	} else {
		cl.SetTitle(fmt.Sprintf(" Conversations (%d/%d) ", len(items), total))
	}
}

// Rerender draws the current rows again, e.g. after a panel closed.
func (cl *ConversationList) Rerender(total int) {
	cl.render(total)
}

// SelectedID returns the id of the selected row, or empty.
func (cl *ConversationList) SelectedID() string {
	row, _ := cl.GetSelection()
	cl.mu.Lock()
	defer cl.mu.Unlock()
	idx := row - 1
	if idx < 0 || idx >= len(cl.items) {
		return ""
	}
	return cl.items[idx].ID
}

// avatarMarker stands in for the avatar image. Groups show the member avatar too.
func avatarMarker(it conversation.Item) string {
	switch {
	case it.IsGroup:
		return " ●●"
	case it.HasAvatar():
		return " ● "
	default:
		return " ○ "
	}
}

func (cl *ConversationList) markerColor(it conversation.Item) tcell.Color {
	if it.IsGroup {
		return cl.theme.GroupMarkerColor
	}
	return cl.theme.IncomingColor
}
