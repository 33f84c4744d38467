package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

// Menu displays keyboard shortcut hints in columns.
type Menu struct {
	*tview.TextView
	theme *Theme
	rows  int
}

// NewMenu creates a new menu hint bar with the given number of rows per column.
func NewMenu(theme *Theme, rows int) *Menu {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignLeft)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 2, 0)

	if rows < 1 {
		rows = 1
	}
	return &Menu{
		TextView: tv,
		theme:    theme,
		rows:     rows,
	}
}

// Update renders menu hints top to bottom, then left to right.
func (m *Menu) Update(hints []MenuHint) {
	m.Clear()
	_, _ = fmt.Fprint(m, m.layout(hints))
}

func (m *Menu) layout(hints []MenuHint) string {
	keyColor := colorName(m.theme.MenuKeyColor)

	lines := make([]string, m.rows)
	for i, h := range hints {
		cell := fmt.Sprintf("[%s::b]<%s>[-:-:-] %-12s", keyColor, tview.Escape(h.Key), h.Description)
		lines[i%m.rows] += cell
	}
	for i := range lines {
		lines[i] = strings.TrimRight(lines[i], " ")
	}
	return strings.Join(lines, "\n")
}
