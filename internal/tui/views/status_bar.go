package views

import (
	"fmt"
	"time"

	"github.com/rivo/tview"
)

// StatusBar displays the active screen and the picker state.
type StatusBar struct {
	*tview.TextView
	screen  string
	overlay string
	picking bool
	now     func() time.Time
}

// NewStatusBar creates a new status bar.
func NewStatusBar() *StatusBar {
	tv := tview.NewTextView().
		SetDynamicColors(true)
	tv.SetBackgroundColor(tview.Styles.MoreContrastBackgroundColor)

	return &StatusBar{TextView: tv, now: time.Now}
}

// SetScreen updates the screen name display.
func (sb *StatusBar) SetScreen(name string) {
	sb.screen = name
	sb.render()
}

// SetOverlay updates the overlay display; "none" hides it.
func (sb *StatusBar) SetOverlay(name string) {
	sb.overlay = name
	sb.render()
}

// SetPicking updates the picker indicator.
func (sb *StatusBar) SetPicking(picking bool) {
	sb.picking = picking
	sb.render()
}

func (sb *StatusBar) render() {
	sb.Clear()
	_, _ = fmt.Fprint(sb, sb.line())
}

func (sb *StatusBar) line() string {
	pickIcon := " "
	if sb.picking {
		pickIcon = "[yellow]picking image…[-]"
	}

	line := fmt.Sprintf(" [::b]chatshell[-:-:-] | %s", sb.screen)
	if sb.overlay != "" && sb.overlay != "none" {
		line += fmt.Sprintf(" + %s", sb.overlay)
	}
	line += fmt.Sprintf(" %s | %s", pickIcon, sb.now().Format("15:04"))
	return line
}
