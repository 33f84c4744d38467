package views

import (
	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/chatshell/internal/tui/ui"
	"github.com/rivo/tview"
)

// Composer is the text input for sending messages. The field is cleared
// only when the send callback accepts the text.
type Composer struct {
	*tview.InputField
	onSend func(text string) bool
}

// NewComposer creates a new message composer.
func NewComposer(theme *ui.Theme) *Composer {
	input := tview.NewInputField().
		SetLabel(" > ").
		SetFieldWidth(0).
		SetPlaceholder("Type a message")
	input.SetBorder(true)
	input.SetBorderColor(theme.BorderColor)
	input.SetBackgroundColor(theme.BgColor)
	input.SetFieldBackgroundColor(theme.BgColor)
	input.SetFieldTextColor(theme.FgColor)
	input.SetLabelColor(theme.MenuKeyColor)
	input.SetTitle(" Compose (i to focus, Ctrl-O to attach) ")
	input.SetTitleColor(theme.TitleColor)

	c := &Composer{InputField: input}

	input.SetDoneFunc(func(key tcell.Key) {
		if key == tcell.KeyEnter {
			c.submit()
		}
	})

	return c
}

func (c *Composer) submit() {
	if c.onSend == nil {
		return
	}
	if c.onSend(c.GetText()) {
		c.SetText("")
	}
}

// SetOnSend sets the callback when a message is sent. Returning false keeps
// the text in the field.
func (c *Composer) SetOnSend(fn func(text string) bool) {
	c.onSend = fn
}
