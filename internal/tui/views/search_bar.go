package views

import (
	"fmt"
	"strings"

	"github.com/matheus3301/chatshell/internal/conversation"
	"github.com/matheus3301/chatshell/internal/tui/ui"
	"github.com/rivo/tview"
)

// SearchBar shows the category tabs and the current search text with its
// clear affordance. Editing happens in the prompt.
type SearchBar struct {
	*tview.TextView
	theme *ui.Theme
}

// NewSearchBar creates a new search bar.
func NewSearchBar(theme *ui.Theme) *SearchBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)

	return &SearchBar{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders the filter state.
func (sb *SearchBar) Update(f conversation.FilterState) {
	sb.Clear()
	_, _ = fmt.Fprint(sb, sb.line(f))
}

func (sb *SearchBar) line(f conversation.FilterState) string {
	activeFg := ui.Tag(sb.theme.TabActiveFg)
	activeBg := ui.Tag(sb.theme.TabActiveBg)
	muted := ui.Tag(sb.theme.MutedColor)
	key := ui.Tag(sb.theme.MenuKeyColor)

	var b strings.Builder
	for i, c := range conversation.Categories() {
		label := tabLabel(c)
		if c == f.Category {
			fmt.Fprintf(&b, "[%s:%s:b] %d %s [-:-:-] ", activeFg, activeBg, i+1, label)
		} else {
			fmt.Fprintf(&b, "[%s] %d %s [-] ", muted, i+1, label)
		}
	}

	b.WriteString("  ")
	if f.Searching() {
		fmt.Fprintf(&b, "[%s::b]/[-:-:-] %s  [%s]<x>[-] clear", key, tview.Escape(f.Query), key)
	} else {
		fmt.Fprintf(&b, "[%s::b]/[-:-:-] [%s]Search[-]", key, muted)
	}
	return b.String()
}

func tabLabel(c conversation.Category) string {
	switch c {
	case conversation.Groups:
		return "Groups"
	case conversation.Unread:
		return "Unread"
	default:
		return "All"
	}
}
