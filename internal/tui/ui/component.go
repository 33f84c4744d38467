package ui

import "github.com/rivo/tview"

// MenuHint describes a keyboard shortcut for display in the menu bar.
type MenuHint struct {
	Key         string
	Description string
}

// Component is a page the app can show. Hints feed the menu.
type Component interface {
	tview.Primitive
	Name() string
	Hints() []MenuHint
}
