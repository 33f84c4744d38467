package views

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	qrcode "github.com/skip2/go-qrcode"

	"github.com/matheus3301/chatshell/internal/tui/ui"
	"github.com/rivo/tview"
)

// InviteView asks for an e-mail address and shows the invite link as a QR code.
type InviteView struct {
	*tview.Flex
	theme    *ui.Theme
	email    *tview.InputField
	body     *tview.TextView
	onSubmit func(email string)
	onCancel func()
}

// NewInviteView creates a new invite overlay.
func NewInviteView(theme *ui.Theme) *InviteView {
	email := tview.NewInputField().
		SetLabel(" E-mail: ").
		SetFieldWidth(0).
		SetPlaceholder("friend@example.com")
	email.SetBackgroundColor(theme.BgColor)
	email.SetFieldBackgroundColor(theme.BgColor)
	email.SetFieldTextColor(theme.FgColor)
	email.SetLabelColor(theme.MenuKeyColor)

	body := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	body.SetBackgroundColor(theme.BgColor)
	body.SetTextColor(theme.FgColor)

	flex := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(body, 0, 1, false).
		AddItem(email, 1, 0, true)
	flex.SetBorder(true)
	flex.SetBorderColor(theme.BorderFocusColor)
	flex.SetBackgroundColor(theme.BgColor)
	flex.SetTitle(" Invite to chatshell ")
	flex.SetTitleColor(theme.TitleColor)

	iv := &InviteView{
		Flex:  flex,
		theme: theme,
		email: email,
		body:  body,
	}

	email.SetDoneFunc(func(key tcell.Key) {
		switch key {
		case tcell.KeyEnter:
			if iv.onSubmit != nil {
				iv.onSubmit(email.GetText())
			}
		case tcell.KeyEscape:
			if iv.onCancel != nil {
				iv.onCancel()
			}
		}
	})

	return iv
}

// Name implements Component.
func (iv *InviteView) Name() string { return "Invite" }

// Hints implements Component.
func (iv *InviteView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Invite"},
		{Key: "Esc", Description: "Close"},
	}
}

// SetOnSubmit sets the callback when an address is entered.
func (iv *InviteView) SetOnSubmit(fn func(email string)) {
	iv.onSubmit = fn
}

// SetOnCancel sets the callback when the overlay is dismissed.
func (iv *InviteView) SetOnCancel(fn func()) {
	iv.onCancel = fn
}

// Input returns the e-mail field (for focus management).
func (iv *InviteView) Input() *tview.InputField {
	return iv.email
}

// Update renders the prompt for name, or the QR code once link is set.
func (iv *InviteView) Update(name, link string) {
	iv.body.Clear()
	if link == "" {
		iv.email.SetText("")
		_, _ = fmt.Fprintf(iv.body, "\n\n%s is not on chatshell yet.\n\nEnter their e-mail address to create an invite.",
			tview.Escape(sanitizeLine(name)))
		return
	}
	muted := ui.Tag(iv.theme.MutedColor)
	_, _ = fmt.Fprintf(iv.body, "\nScan to send the invite:\n\n%s\n[%s]%s[-]",
		renderQR(link), muted, tview.Escape(link))
}

// renderQR converts a string to a compact QR code using Unicode
// half-block characters.
func renderQR(content string) string {
	qr, err := qrcode.New(content, qrcode.Low)
	if err != nil {
		return "(QR generation failed: " + err.Error() + ")"
	}
	qr.DisableBorder = false

	bitmap := qr.Bitmap()
	rows := len(bitmap)
	cols := 0
	if rows > 0 {
		cols = len(bitmap[0])
	}

	var sb strings.Builder

	for y := 0; y < rows; y += 2 {
		for x := 0; x < cols; x++ {
			top := bitmap[y][x]
			bot := false
			if y+1 < rows {
				bot = bitmap[y+1][x]
			}
			switch {
			case top && bot:
				sb.WriteRune('\u2588')
			case top && !bot:
				sb.WriteRune('\u2580')
			case !top && bot:
				sb.WriteRune('\u2584')
			default:
				sb.WriteRune(' ')
			}
		}
		sb.WriteRune('\n')
	}

	return sb.String()
}
