package ui

import (
	"fmt"
	"strings"

	"github.com/rivo/tview"
)

var chatBanner = [...]string{
	"╔═╗╦ ╦╔═╗╔╦╗",
	"║  ╠═╣╠═╣ ║ ",
	"╚═╝╩ ╩╩ ╩ ╩ ",
}

// Logo is the right-aligned "CHAT shell" banner in the header. The last line
// carries the build version when one is known.
type Logo struct {
	*tview.TextView
	theme   *Theme
	version string
}

// NewLogo creates the banner. An empty version or "dev" shows "shell" alone.
func NewLogo(theme *Theme, version string) *Logo {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignRight)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetBorderPadding(0, 0, 0, 1)

	l := &Logo{TextView: tv, theme: theme, version: version}
	l.SetText(l.text())
	return l
}

func (l *Logo) text() string {
	title := colorName(l.theme.TitleColor)
	var b strings.Builder
	for _, line := range chatBanner {
		fmt.Fprintf(&b, "[%s::b]%s[-:-:-]\n", title, line)
	}
	sub := "shell"
	if l.version != "" && l.version != "dev" {
		sub += " " + tview.Escape(l.version)
	}
	fmt.Fprintf(&b, "[%s]%s[-:-:-]", colorName(l.theme.MutedColor), sub)
	return b.String()
}
