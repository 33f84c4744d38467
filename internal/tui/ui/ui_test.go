package ui

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/matheus3301/chatshell/internal/attachment"
	"github.com/matheus3301/chatshell/internal/timeline"
	"github.com/rivo/tview"
)

func TestFlashNoticeLevels(t *testing.T) {
	tests := []struct {
		name      string
		err       error
		wantLevel FlashLevel
		wantText  string
	}{
		{"picker", fmt.Errorf("attach: %w", &attachment.PickerError{Reason: "Failed to pick image"}), FlashWarn, "Failed to pick image"},
		{"validation", &timeline.ValidationError{Field: "text", Reason: "empty"}, FlashWarn, "invalid text: empty"},
		{"busy", attachment.ErrPickerBusy, FlashWarn, "The picker is already open"},
		{"other", errors.New("boom"), FlashErr, "boom"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := NewFlashModel()
			f.Notice(tt.err)
			m := f.GetMessage()
			if m == nil {
				t.Fatal("GetMessage() = nil")
			}
			if m.Level != tt.wantLevel || m.Text != tt.wantText {
				t.Errorf("message = %+v, want level %d text %q", m, tt.wantLevel, tt.wantText)
			}
		})
	}
}

func TestFlashNoticeNil(t *testing.T) {
	f := NewFlashModel()
	f.Notice(nil)
	if f.Get() != "" {
		t.Errorf("Get() = %q, want empty", f.Get())
	}
}

func TestFlashExpires(t *testing.T) {
	f := NewFlashModel()
	now := time.Now()
	f.now = func() time.Time { return now }
	f.Info("hello")
	if f.Get() != "hello" {
		t.Fatalf("Get() = %q, want hello", f.Get())
	}
	now = now.Add(6 * time.Second)
	if f.Get() != "" {
		t.Errorf("Get() = %q after expiry, want empty", f.Get())
	}

	select {
	case m := <-f.Watch():
		if m.Text != "hello" {
			t.Errorf("watched %q", m.Text)
		}
	default:
		t.Error("Watch() received nothing")
	}
}

func TestPagesStack(t *testing.T) {
	p := NewPages()
	for _, name := range []string{"home", "chat", "help", "preview"} {
		p.AddPage(name, tview.NewBox(), true, false)
	}

	var changes int
	p.SetOnChange(func([]string) { changes++ })

	p.Reset("home")
	p.Push("help")
	if p.Current() != "help" || p.Base() != "home" || p.IsModal() {
		t.Errorf("after push: current=%q base=%q modal=%v", p.Current(), p.Base(), p.IsModal())
	}
	if p.HasPage("home") && p.Pages.GetPageNames(true)[0] != "help" {
		t.Errorf("visible pages = %v, want only help", p.Pages.GetPageNames(true))
	}
	if got := p.Pop(); got != "help" {
		t.Errorf("Pop() = %q, want help", got)
	}

	p.PushModal("preview")
	if !p.IsModal() {
		t.Error("IsModal() = false after PushModal")
	}
	if visible := p.Pages.GetPageNames(true); len(visible) != 2 {
		t.Errorf("visible pages = %v, want home and preview", visible)
	}

	p.Reset("chat")
	if p.Depth() != 1 || p.IsModal() {
		t.Errorf("after reset depth=%d modal=%v", p.Depth(), p.IsModal())
	}
	if got := p.Pop(); got != "" {
		t.Errorf("Pop() on base = %q, want empty", got)
	}
	if changes != 5 {
		t.Errorf("changes = %d, want 5", changes)
	}
}

func TestMenuLayoutColumns(t *testing.T) {
	m := NewMenu(DefaultTheme(), 2)
	out := m.layout([]MenuHint{
		{Key: "a", Description: "one"},
		{Key: "b", Description: "two"},
		{Key: "c", Description: "three"},
	})
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if !strings.Contains(lines[0], "<a>") || !strings.Contains(lines[0], "<c>") {
		t.Errorf("first line = %q, want a and c", lines[0])
	}
	if !strings.Contains(lines[1], "<b>") {
		t.Errorf("second line = %q, want b", lines[1])
	}
}

func TestCrumbsActiveLast(t *testing.T) {
	c := NewCrumbs(DefaultTheme())
	c.Update([]string{"Home", "Anna"})
	text := c.GetText(true)
	if !strings.Contains(text, "Home") || !strings.Contains(text, "Anna") {
		t.Errorf("crumbs = %q", text)
	}
}

func TestLogoVersionLine(t *testing.T) {
	tests := []struct {
		version string
		want    string
	}{
		{"", "shell[-:-:-]"},
		{"dev", "shell[-:-:-]"},
		{"v0.3.1", "shell v0.3.1[-:-:-]"},
	}
	for _, tt := range tests {
		t.Run(tt.version, func(t *testing.T) {
			text := NewLogo(DefaultTheme(), tt.version).text()
			lines := strings.Split(text, "\n")
			if len(lines) != len(chatBanner)+1 {
				t.Fatalf("lines = %d, want %d", len(lines), len(chatBanner)+1)
			}
			if !strings.HasSuffix(lines[len(lines)-1], tt.want) {
				t.Errorf("last line = %q, want suffix %q", lines[len(lines)-1], tt.want)
			}
		})
	}
}
