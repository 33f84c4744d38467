package ui

import (
	"fmt"

	"github.com/rivo/tview"
)

// SummaryData is the header information for the current screen.
type SummaryData struct {
	Screen  string
	Tab     string
	Query   string
	Visible int
	Total   int
	OpenRow string
	Picking bool
}

// Summary displays screen metadata in the header.
type Summary struct {
	*tview.TextView
	theme *Theme
}

// NewSummary creates a new summary panel.
func NewSummary(theme *Theme) *Summary {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 1, 1)

	return &Summary{
		TextView: tv,
		theme:    theme,
	}
}

// Update renders the summary.
func (s *Summary) Update(data *SummaryData) {
	s.Clear()
	if data == nil {
		return
	}

	fg := colorName(s.theme.FgColor)
	ct := colorName(s.theme.CounterColor)

	query := data.Query
	if query == "" {
		query = "-"
	}
	open := data.OpenRow
	if open == "" {
		open = "-"
	}
	picker := "idle"
	if data.Picking {
		picker = "picking"
	}

	text := fmt.Sprintf(
		"[%s::b]Screen:[-:-:-]  [%s]%s[-]\n"+
			"[%s::b]Tab:[-:-:-]     [%s]%s[-]\n"+
			"[%s::b]Search:[-:-:-]  [%s]%s[-]\n"+
			"[%s::b]Chats:[-:-:-]   [%s]%d/%d[-]\n"+
			"[%s::b]Open:[-:-:-]    [%s]%s[-]\n"+
			"[%s::b]Picker:[-:-:-]  [%s]%s[-]",
		fg, ct, data.Screen,
		fg, ct, data.Tab,
		fg, ct, tview.Escape(query),
		fg, ct, data.Visible, data.Total,
		fg, ct, open,
		fg, ct, picker,
	)

	_, _ = fmt.Fprint(s, text)
}
