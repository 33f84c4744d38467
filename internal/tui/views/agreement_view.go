package views

import (
	"fmt"

	"github.com/matheus3301/chatshell/internal/tui/ui"
	"github.com/rivo/tview"
)

// AgreementText is the body of the agreement overlay.
const AgreementText = "%s wants to start a conversation with you.\n\n" +
	"By accepting you agree to receive messages from this contact."

// AgreementView is the accept/decline modal shown before a conversation opens.
type AgreementView struct {
	*tview.Modal
	theme    *ui.Theme
	onAccept func()
	onCancel func()
}

// NewAgreementView creates a new agreement overlay.
func NewAgreementView(theme *ui.Theme) *AgreementView {
	modal := tview.NewModal().
		AddButtons([]string{"Accept", "Cancel"})
	modal.SetBackgroundColor(theme.BgColor)
	modal.SetTextColor(theme.FgColor)
	modal.SetButtonBackgroundColor(theme.TabActiveBg)
	modal.SetButtonTextColor(theme.TabActiveFg)
	modal.SetBorderColor(theme.BorderFocusColor)
	modal.SetTitle(" Agreement ")
	modal.SetTitleColor(theme.TitleColor)

	av := &AgreementView{Modal: modal, theme: theme}
	modal.SetDoneFunc(func(index int, label string) {
		if label == "Accept" {
			if av.onAccept != nil {
				av.onAccept()
			}
			return
		}
		if av.onCancel != nil {
			av.onCancel()
		}
	})
	return av
}

// Name implements Component.
func (av *AgreementView) Name() string { return "Agreement" }

// Hints implements Component.
func (av *AgreementView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Enter", Description: "Choose"},
		{Key: "Esc", Description: "Close"},
	}
}

// SetOnAccept sets the callback for the Accept button.
func (av *AgreementView) SetOnAccept(fn func()) {
	av.onAccept = fn
}

// SetOnCancel sets the callback for Cancel and Esc.
func (av *AgreementView) SetOnCancel(fn func()) {
	av.onCancel = fn
}

// Update renders the agreement for name.
func (av *AgreementView) Update(name string) {
	av.SetText(fmt.Sprintf(AgreementText, sanitizeLine(name)))
	av.SetFocus(0)
}
