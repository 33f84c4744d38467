package keys

import (
	"testing"

	"github.com/gdamore/tcell/v2"
)

func TestHandleEventViewShadowsGlobal(t *testing.T) {
	r := NewRegistry()
	var got string
	r.AddGlobal("quit", &Action{Key: tcell.KeyRune, Rune: 'q', Handler: func() { got = "global" }})
	r.AddView("chat", "quote", &Action{Key: tcell.KeyRune, Rune: 'q', Handler: func() { got = "view" }})

	ev := tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone)
	if !r.HandleEvent("chat", ev) || got != "view" {
		t.Errorf("chat: handled %q, want view", got)
	}
	if !r.HandleEvent("home", ev) || got != "global" {
		t.Errorf("home: handled %q, want global", got)
	}
}

func TestHandleEventSpecialKey(t *testing.T) {
	r := NewRegistry()
	called := false
	r.AddView("chat", "attach", &Action{Key: tcell.KeyCtrlO, Handler: func() { called = true }})

	if r.HandleEvent("chat", tcell.NewEventKey(tcell.KeyRune, 'o', tcell.ModNone)) {
		t.Error("rune o must not match Ctrl-O")
	}
	if !r.HandleEvent("chat", tcell.NewEventKey(tcell.KeyCtrlO, 0, tcell.ModCtrl)) || !called {
		t.Error("Ctrl-O not handled")
	}
}

func TestHintsOrderAndVisibility(t *testing.T) {
	r := NewRegistry()
	r.AddGlobal("quit", &Action{Key: tcell.KeyRune, Rune: 'q', Description: "Quit", Visible: true})
	r.AddGlobal("hidden", &Action{Key: tcell.KeyRune, Rune: 'z', Description: "Hidden"})
	r.AddView("home", "open", &Action{Key: tcell.KeyEnter, Description: "Open", Visible: true})
	r.AddView("home", "clear", &Action{Key: tcell.KeyRune, Rune: 'x', Label: "x", Description: "Clear", Visible: true})

	hints := r.Hints("home")
	want := []string{"Clear", "Open", "Quit"}
	if len(hints) != len(want) {
		t.Fatalf("hints = %+v", hints)
	}
	for i, w := range want {
		if hints[i].Description != w {
			t.Errorf("hints[%d] = %q, want %q", i, hints[i].Description, w)
		}
	}
	if hints[1].Key != "Enter" {
		t.Errorf("Enter label = %q", hints[1].Key)
	}
}
