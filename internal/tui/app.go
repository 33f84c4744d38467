package tui

import (
	"context"
	"fmt"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/matheus3301/chatshell/internal/bus"
	"github.com/matheus3301/chatshell/internal/conversation"
	"github.com/matheus3301/chatshell/internal/overlay"
	"github.com/matheus3301/chatshell/internal/swipe"
	"github.com/matheus3301/chatshell/internal/timeline"
	"github.com/matheus3301/chatshell/internal/tui/keys"
	"github.com/matheus3301/chatshell/internal/tui/model"
	"github.com/matheus3301/chatshell/internal/tui/ui"
	"github.com/matheus3301/chatshell/internal/tui/views"
	"github.com/rivo/tview"
	"go.uber.org/zap"
)

const (
	pageHome      = "home"
	pageChat      = "chat"
	pageHelp      = "help"
	pageAgreement = "agreement"
	pageInvite    = "invite"
	pagePreview   = "preview"
)

// Deps are the collaborators the TUI renders and drives.
type Deps struct {
	Home        *model.Home
	Chat        *model.Chat
	Router      *model.Router
	Rows        *swipe.Registry
	Bus         *bus.Bus
	ScrollDelay time.Duration
	Version     string
	Logger      *zap.Logger
}

// App is the main TUI application shell.
type App struct {
	app      *tview.Application
	root     *tview.Flex
	pages    *ui.Pages
	theme    *ui.Theme
	flash    *ui.FlashModel
	registry *keys.Registry
	scroller *timeline.Scroller

	home   *model.Home
	chat   *model.Chat
	router *model.Router
	bus    *bus.Bus
	logger *zap.Logger

	summary   *ui.Summary
	menu      *ui.Menu
	logo      *ui.Logo
	crumbs    *ui.Crumbs
	prompt    *ui.Prompt
	flashBar  *ui.FlashBar
	statusBar *views.StatusBar
	search    *views.SearchBar
	list      *views.ConversationList
	thread    *views.MessageThread
	help      *views.HelpView
	agreement *views.AgreementView
	invite    *views.InviteView
	preview   *views.PreviewView

	shown     overlay.State
	shownLink string

	ctx    context.Context
	cancel context.CancelFunc
}

// NewApp creates the TUI application.
func NewApp(d Deps) *App {
	ctx, cancel := context.WithCancel(context.Background())
	theme := ui.DefaultTheme()

	a := &App{
		app:       tview.NewApplication(),
		pages:     ui.NewPages(),
		theme:     theme,
		flash:     ui.NewFlashModel(),
		registry:  keys.NewRegistry(),
		home:      d.Home,
		chat:      d.Chat,
		router:    d.Router,
		bus:       d.Bus,
		logger:    d.Logger,
		summary:   ui.NewSummary(theme),
		menu:      ui.NewMenu(theme, 4),
		logo:      ui.NewLogo(theme, d.Version),
		crumbs:    ui.NewCrumbs(theme),
		prompt:    ui.NewPrompt(theme),
		flashBar:  ui.NewFlashBar(theme),
		statusBar: views.NewStatusBar(),
		search:    views.NewSearchBar(theme),
		list:      views.NewConversationList(theme, d.Rows),
		thread:    views.NewMessageThread(theme),
		help:      views.NewHelpView(theme),
		agreement: views.NewAgreementView(theme),
		invite:    views.NewInviteView(theme),
		preview:   views.NewPreviewView(theme),
		ctx:       ctx,
		cancel:    cancel,
	}

	a.scroller = timeline.NewScroller(d.ScrollDelay, func() {
		a.app.QueueUpdateDraw(a.thread.ScrollToEnd)
	})
	a.chat.SetScrollRequester(a.scroller.Request)

	a.setupBindings()
	a.setupCallbacks()
	a.setupLayout()

	return a
}

func (a *App) setupBindings() {
	a.registry.AddGlobal("quit", &keys.Action{
		Rune: 'q', Key: tcell.KeyRune,
		Description: "Quit", Visible: true,
		Handler: a.Stop,
	})
	a.registry.AddGlobal("help", &keys.Action{
		Rune: '?', Key: tcell.KeyRune,
		Description: "Help", Visible: true,
		Handler: a.showHelp,
	})
	a.registry.AddGlobal("command", &keys.Action{
		Rune: ':', Key: tcell.KeyRune,
		Description: "Command", Visible: true,
		Handler: func() { a.activatePrompt(ui.PromptCommand, "") },
	})

	a.registry.AddView(pageHome, "search", &keys.Action{
		Rune: '/', Key: tcell.KeyRune,
		Description: "Search", Visible: true,
		Handler: func() {
			a.activatePrompt(ui.PromptSearch, a.home.Snapshot().Filter.Query)
		},
	})
	a.registry.AddView(pageHome, "clear", &keys.Action{
		Rune: 'x', Key: tcell.KeyRune,
		Description: "Clear search", Visible: true,
		Handler: a.home.ClearQuery,
	})
	for i, c := range conversation.Categories() {
		c := c
		a.registry.AddView(pageHome, "tab-"+c.String(), &keys.Action{
			Rune: rune('1' + i), Key: tcell.KeyRune,
			Description: c.String(), Visible: true,
			Handler: func() { a.home.SelectTab(c) },
		})
	}
	reveal := func() {
		if id := a.list.SelectedID(); id != "" {
			a.list.Reveal(id)
			a.home.SwipeOpen(id)
		}
	}
	conceal := func() {
		if id := a.list.SelectedID(); id != "" {
			a.list.Conceal(id)
			a.home.SwipeClose(id)
		}
	}
	a.registry.AddView(pageHome, "reveal", &keys.Action{
		Rune: 'l', Key: tcell.KeyRune,
		Description: "Reveal", Visible: true,
		Handler: reveal,
	})
	a.registry.AddView(pageHome, "reveal-arrow", &keys.Action{Key: tcell.KeyRight, Handler: reveal})
	a.registry.AddView(pageHome, "conceal", &keys.Action{
		Rune: 'h', Key: tcell.KeyRune,
		Description: "Hide", Visible: true,
		Handler: conceal,
	})
	a.registry.AddView(pageHome, "conceal-arrow", &keys.Action{Key: tcell.KeyLeft, Handler: conceal})

	a.registry.AddView(pageChat, "compose", &keys.Action{
		Rune: 'i', Key: tcell.KeyRune,
		Description: "Compose", Visible: true,
		Handler: func() { a.app.SetFocus(a.thread.Composer()) },
	})
	a.registry.AddView(pageChat, "next-image", &keys.Action{
		Key: tcell.KeyTab, Description: "Next image", Visible: true,
		Handler: a.thread.NextImage,
	})
	preview := func() {
		id := a.thread.SelectedImage()
		if id == "" {
			a.flash.Info("No images in this conversation")
			return
		}
		a.flash.Notice(a.chat.Preview(id))
	}
	a.registry.AddView(pageChat, "preview", &keys.Action{
		Rune: 'p', Key: tcell.KeyRune,
		Description: "Preview", Visible: true,
		Handler: preview,
	})
	a.registry.AddView(pageChat, "preview-enter", &keys.Action{Key: tcell.KeyEnter, Handler: preview})
	a.registry.AddView(pageChat, "attach", &keys.Action{
		Key: tcell.KeyCtrlO, Label: "Ctrl-O",
		Description: "Attach", Visible: true,
		Handler: a.attach,
	})
}

func (a *App) setupCallbacks() {
	a.list.SetSelectedFunc(func(row, col int) {
		id := a.list.SelectedID()
		if id == "" {
			return
		}
		// Activating the revealed "More" action only closes the panel.
		if a.list.Revealed(id) {
			a.list.Conceal(id)
			a.home.SwipeClose(id)
			return
		}
		a.flash.Notice(a.home.TapRow(id))
	})

	a.thread.SetOnSend(func(text string) bool {
		return sendText(a.chat, a.flash, a.logger, text)
	})

	a.agreement.SetOnAccept(func() {
		a.flash.Notice(a.home.AcceptAgreement())
	})
	a.agreement.SetOnCancel(a.home.Dismiss)

	a.invite.SetOnSubmit(func(email string) {
		if _, err := a.home.SubmitInvite(email); err != nil {
			a.flash.Notice(err)
			return
		}
		a.flash.Info("Invite ready")
	})
	a.invite.SetOnCancel(a.home.Dismiss)

	a.preview.SetOnDismiss(a.dismiss)

	a.prompt.SetOnChange(func(mode ui.PromptMode, text string) {
		a.home.SetQuery(text)
	})
	a.prompt.SetOnSubmit(func(mode ui.PromptMode, text string) {
		a.hidePrompt()
		switch mode {
		case ui.PromptCommand:
			a.runCommand(ParseCommand(text))
		case ui.PromptSearch:
			a.home.SetQuery(text)
		}
	})
	a.prompt.SetOnCancel(a.hidePrompt)
}

func (a *App) setupLayout() {
	homePage := tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(a.search, 3, 0, false).
		AddItem(a.list, 0, 1, true)

	a.pages.AddPage(pageHome, homePage, true, false)
	a.pages.AddPage(pageChat, a.thread, true, false)
	a.pages.AddPage(pageHelp, a.help, true, false)
	a.pages.AddPage(pageAgreement, a.agreement, true, false)
	a.pages.AddPage(pageInvite, centered(a.invite, 64, 36), true, false)
	a.pages.AddPage(pagePreview, a.preview, true, false)
	a.pages.Reset(pageHome)

	header := tview.NewFlex().
		AddItem(a.summary, 32, 0, false).
		AddItem(a.menu, 0, 1, false).
		AddItem(a.logo, 14, 0, false)

	a.root = tview.NewFlex().
		SetDirection(tview.FlexRow).
		AddItem(header, 6, 0, false).
		AddItem(a.crumbs, 1, 0, false).
		AddItem(a.pages, 0, 1, true).
		AddItem(a.prompt, 0, 0, false).
		AddItem(a.flashBar, 1, 0, false).
		AddItem(a.statusBar, 1, 0, false)

	a.app.SetRoot(a.root, true).EnableMouse(true)
	a.app.SetInputCapture(a.handleKey)
}

func (a *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	page := a.pages.Current()
	focused := a.app.GetFocus()

	if focused == a.prompt.InputField {
		return event
	}

	if page == pageChat && event.Key() == tcell.KeyCtrlO {
		a.attach()
		return nil
	}

	if event.Key() == tcell.KeyEscape {
		switch {
		case a.shown.Visible():
			a.dismiss()
		case page == pageHelp:
			a.pages.Pop()
			a.focusBase()
		case page == pageChat && focused == a.thread.Composer().InputField:
			a.app.SetFocus(a.thread.Messages())
		case page == pageChat:
			a.chat.Back()
		default:
			return event
		}
		return nil
	}

	// Overlays and text fields take their own keys.
	if a.shown.Visible() {
		return event
	}
	if _, ok := focused.(*tview.InputField); ok {
		return event
	}

	if a.registry.HandleEvent(page, event) {
		return nil
	}
	return event
}

func (a *App) runCommand(cmd Command) {
	switch cmd.Name {
	case "q", "quit":
		a.Stop()
	case "h", "help":
		a.showHelp()
	case "home", "back":
		a.chat.Back()
	case "tab":
		c, err := conversation.ParseCategory(cmd.Args)
		if err != nil {
			a.flash.Warn(err.Error())
			return
		}
		a.home.SelectTab(c)
		a.router.NavigateTo(model.ScreenHome)
	case "search":
		a.home.SetQuery(cmd.Args)
		a.router.NavigateTo(model.ScreenHome)
	case "clear":
		a.home.ClearQuery()
	case "open":
		it, ok := resolveConversation(a.home.Items(), cmd.Args)
		if !ok {
			a.flash.Warn(fmt.Sprintf("No conversation matches %q", cmd.Args))
			return
		}
		a.flash.Notice(a.home.TapRow(it.ID))
	case "attach":
		if a.router.Current() != model.ScreenChat {
			a.flash.Warn("Open a conversation first")
			return
		}
		a.attach()
	default:
		a.flash.Warn(fmt.Sprintf("Unknown command: %s", cmd.Name))
	}
}

func (a *App) attach() {
	go func() {
		res, err := a.chat.Attach(a.ctx)
		reportAttach(a.flash, a.logger, res, err)
	}()
}

func (a *App) dismiss() {
	if a.pages.Base() == pageHome {
		a.home.Dismiss()
		return
	}
	a.chat.Dismiss()
}

func (a *App) showHelp() {
	if a.pages.Current() == pageHelp {
		return
	}
	a.pages.Push(pageHelp)
	a.app.SetFocus(a.help)
	a.render()
}

func (a *App) activatePrompt(mode ui.PromptMode, text string) {
	a.prompt.Activate(mode, text)
	a.root.ResizeItem(a.prompt, 3, 0)
	a.app.SetFocus(a.prompt)
}

func (a *App) hidePrompt() {
	a.root.ResizeItem(a.prompt, 0, 0)
	a.focusBase()
}

func (a *App) focusBase() {
	switch a.pages.Current() {
	case pageChat:
		a.app.SetFocus(a.thread.Messages())
	case pageHelp:
		a.app.SetFocus(a.help)
	default:
		a.app.SetFocus(a.list)
	}
}

// render redraws every view from the view-model snapshots. It runs on the
// UI goroutine.
func (a *App) render() {
	a.syncScreen()

	hs := a.home.Snapshot()
	cs := a.chat.Snapshot()

	a.search.Update(hs.Filter)
	a.list.Update(hs.Visible, hs.Total)
	if cs.Conversation.ID != "" {
		a.thread.Update(cs.Conversation, cs.Messages)
	}
	a.syncOverlay(hs)

	screen := a.router.Current()
	a.summary.Update(&ui.SummaryData{
		Screen:  screen.String(),
		Tab:     hs.Filter.Category.String(),
		Query:   hs.Filter.Query,
		Visible: len(hs.Visible),
		Total:   hs.Total,
		OpenRow: hs.OpenRowID,
		Picking: cs.Picking,
	})

	trail := []string{"Home"}
	if screen == model.ScreenChat && cs.Conversation.ID != "" {
		trail = append(trail, cs.Conversation.DisplayName)
	}
	if a.shown.Visible() {
		trail = append(trail, a.shown.Active.String())
	}
	a.crumbs.Update(trail)

	a.menu.Update(a.registry.Hints(a.pages.Base()))
	a.statusBar.SetScreen(screen.String())
	a.statusBar.SetOverlay(a.shown.Active.String())
	a.statusBar.SetPicking(cs.Picking)
	a.flashBar.Update(a.flash.GetMessage())
}

// syncScreen makes the base page follow the router.
func (a *App) syncScreen() {
	want := pageHome
	if a.router.Current() == model.ScreenChat {
		want = pageChat
	}
	if a.pages.Base() == want {
		return
	}
	a.pages.Reset(want)
	a.shown = overlay.State{}
	a.shownLink = ""
	a.thread.ResetSelection()
	a.focusBase()
}

// syncOverlay shows the page for the presenter's overlay, replacing any
// overlay page already on the stack.
func (a *App) syncOverlay(hs model.HomeSnapshot) {
	st := hs.Overlay
	if st == a.shown && hs.InviteLink == a.shownLink {
		return
	}
	for a.pages.Depth() > 1 {
		a.pages.Pop()
	}
	a.shown = st
	a.shownLink = hs.InviteLink

	switch st.Active {
	case overlay.Agreement:
		a.agreement.Update(hs.PendingName)
		a.pages.PushModal(pageAgreement)
		a.app.SetFocus(a.agreement)
	case overlay.Invite:
		a.invite.Update(hs.PendingName, hs.InviteLink)
		a.pages.PushModal(pageInvite)
		a.app.SetFocus(a.invite.Input())
	case overlay.ImagePreview:
		_, _, w, h := a.pages.GetInnerRect()
		a.preview.Update(st.PreviewImageRef, w-2, h-2)
		a.pages.Push(pagePreview)
		a.app.SetFocus(a.preview)
	default:
		a.focusBase()
	}
}

// watch turns bus events, view-model refreshes and flash messages into redraws.
func (a *App) watch() {
	events, unsubscribe := a.bus.Subscribe(64,
		bus.NamespaceHome, bus.NamespaceNav, bus.NamespaceOverlay,
		bus.NamespaceTimeline, bus.NamespaceAttachment)
	defer func() {
		unsubscribe()
		if n := a.bus.Dropped(); n > 0 {
			a.logger.Debug("bus deliveries dropped", zap.Uint64("count", n))
		}
	}()

	ticker := time.NewTicker(time.Second)
	defer ticker.Stop()

	for {
		select {
		case <-a.ctx.Done():
			return
		case evt := <-events:
			a.logger.Debug("ui event", zap.String("kind", evt.Kind))
		case <-a.home.RefreshCh():
		case <-a.chat.RefreshCh():
		case <-a.flash.Watch():
		case <-ticker.C:
		}
		a.app.QueueUpdateDraw(a.render)
	}
}

// Run starts the TUI application and blocks until it exits.
func (a *App) Run() error {
	a.render()
	go a.watch()
	return a.app.Run()
}

// Stop gracefully shuts down the TUI.
func (a *App) Stop() {
	a.cancel()
	a.scroller.Stop()
	a.app.Stop()
}

func centered(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().
			SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}
