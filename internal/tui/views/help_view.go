package views

import (
	"fmt"

	"github.com/matheus3301/chatshell/internal/tui/ui"
	"github.com/rivo/tview"
)

// HelpView displays key binding reference.
type HelpView struct {
	*tview.TextView
	theme *ui.Theme
}

// NewHelpView creates a new help view.
func NewHelpView(theme *ui.Theme) *HelpView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetScrollable(true)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderColor)
	tv.SetBackgroundColor(theme.BgColor)
	tv.SetTextColor(theme.FgColor)
	tv.SetTitle(" Help ")
	tv.SetTitleColor(theme.TitleColor)

	hv := &HelpView{
		TextView: tv,
		theme:    theme,
	}
	hv.render()
	return hv
}

// Name implements Component.
func (hv *HelpView) Name() string { return "Help" }

// Hints implements Component.
func (hv *HelpView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Esc", Description: "Back"},
	}
}

func (hv *HelpView) render() {
	kc := ui.Tag(hv.theme.MenuKeyColor)

	help := fmt.Sprintf(`
  [::b]Global Keys[-:-:-]

  [%[1]s]:[-:-:-]      Command mode        [%[1]s]Esc[-:-:-]    Close overlay / Go back
  [%[1]s]?[-:-:-]      Help                [%[1]s]q[-:-:-]      Quit

  [::b]Conversation List[-:-:-]

  [%[1]s]Enter[-:-:-]  Open conversation   [%[1]s]/[-:-:-]      Search
  [%[1]s]1-3[-:-:-]    All/Groups/Unread   [%[1]s]x[-:-:-]      Clear search
  [%[1]s]l/Right[-:-:-] Reveal actions     [%[1]s]h/Left[-:-:-] Hide actions
  [%[1]s]j/Down[-:-:-] Move down           [%[1]s]k/Up[-:-:-]   Move up

  [::b]Conversation[-:-:-]

  [%[1]s]i[-:-:-]      Focus composer      [%[1]s]Enter[-:-:-]  Send (in composer)
  [%[1]s]Ctrl-O[-:-:-] Attach image        [%[1]s]Tab[-:-:-]    Next image
  [%[1]s]p[-:-:-]      Preview image       [%[1]s]Esc[-:-:-]    Back to list

  [::b]Commands (: mode)[-:-:-]

  [%[1]s]:open <name>[-:-:-]       Open conversation by name or id
  [%[1]s]:tab <all|groups|unread>[-:-:-]  Switch tab
  [%[1]s]:search <text>[-:-:-]     Filter conversations
  [%[1]s]:attach[-:-:-]            Attach an image
  [%[1]s]:home[-:-:-]              Back to the list
  [%[1]s]:help[-:-:-] / [%[1]s]:h[-:-:-]        Show this help
  [%[1]s]:quit[-:-:-] / [%[1]s]:q[-:-:-]        Quit application
`, kc)

	_, _ = fmt.Fprint(hv, help)
}
