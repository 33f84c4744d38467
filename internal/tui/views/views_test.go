package views

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/matheus3301/chatshell/internal/conversation"
	"github.com/matheus3301/chatshell/internal/swipe"
	"github.com/matheus3301/chatshell/internal/timeline"
	"github.com/matheus3301/chatshell/internal/tui/ui"
	"go.uber.org/zap"
)

var listItems = []conversation.Item{
	{ID: "1", DisplayName: "Hammad Aslam", PreviewText: "Hi developer", AvatarRef: "https://x/a.jpg"},
	{ID: "2", DisplayName: "Anna", PreviewText: "Hi Tabish"},
	{ID: "3", DisplayName: "Group name", PreviewText: "Anna: Hi", IsGroup: true},
}

func TestConversationListMountsVisibleRows(t *testing.T) {
	rows := swipe.NewRegistry()
	cl := NewConversationList(ui.DefaultTheme(), rows)

	cl.Update(listItems, 3)
	if rows.Len() != 3 {
		t.Fatalf("mounted = %d, want 3", rows.Len())
	}

	cl.Update(listItems[2:], 3)
	if rows.Len() != 1 {
		t.Errorf("mounted = %d, want 1 after filtering", rows.Len())
	}
	if cl.SelectedID() != "3" {
		t.Errorf("SelectedID() = %q, want 3", cl.SelectedID())
	}
}

func TestConversationListEmptyUnmountsEverything(t *testing.T) {
	rows := swipe.NewRegistry()
	cl := NewConversationList(ui.DefaultTheme(), rows)

	cl.Update(listItems, 3)
	cl.Reveal("2")
	cl.Update(nil, 3)
	if rows.Len() != 0 {
		t.Errorf("mounted = %d, want 0", rows.Len())
	}
	if cl.Revealed("2") {
		t.Error("row 2 still revealed after the list emptied")
	}
}

func TestConversationListClosedByManager(t *testing.T) {
	rows := swipe.NewRegistry()
	sw := swipe.NewManager(rows, nil, zap.NewNop())
	cl := NewConversationList(ui.DefaultTheme(), rows)
	cl.Update(listItems, 3)

	cl.Reveal("1")
	sw.RequestOpen("1")
	cl.Reveal("2")
	sw.RequestOpen("2")

	if cl.Revealed("1") {
		t.Error("row 1 still revealed after row 2 opened")
	}
	if !cl.Revealed("2") {
		t.Error("row 2 not revealed")
	}

	sw.CloseAll()
	if cl.Revealed("2") {
		t.Error("row 2 still revealed after CloseAll")
	}
}

func TestConversationListRendersMoreAndPlaceholder(t *testing.T) {
	cl := NewConversationList(ui.DefaultTheme(), swipe.NewRegistry())
	cl.Update(listItems, 3)
	cl.Reveal("2")
	cl.Rerender(3)

	if got := strings.TrimSpace(cl.GetCell(2, 4).Text); got != MoreAction {
		t.Errorf("action cell = %q, want %q", got, MoreAction)
	}
	if got := strings.TrimSpace(cl.GetCell(1, 4).Text); got != "" {
		t.Errorf("closed row action cell = %q, want empty", got)
	}

	cl.Update(nil, 3)
	if got := strings.TrimSpace(cl.GetCell(1, 1).Text); got != EmptyPlaceholder {
		t.Errorf("placeholder = %q, want %q", got, EmptyPlaceholder)
	}
	if cl.SelectedID() != "" {
		t.Errorf("SelectedID() = %q on empty list", cl.SelectedID())
	}
}

func TestAvatarMarker(t *testing.T) {
	if avatarMarker(listItems[2]) != " ●●" {
		t.Error("group marker")
	}
	if avatarMarker(listItems[0]) != " ● " {
		t.Error("avatar marker")
	}
	if avatarMarker(listItems[1]) != " ○ " {
		t.Error("no avatar marker")
	}
}

func TestSearchBarClearAffordance(t *testing.T) {
	sb := NewSearchBar(ui.DefaultTheme())

	line := sb.line(conversation.FilterState{})
	if strings.Contains(line, "clear") {
		t.Errorf("empty query shows clear: %q", line)
	}
	line = sb.line(conversation.FilterState{Category: conversation.Groups, Query: "anna"})
	if !strings.Contains(line, "anna") || !strings.Contains(line, "clear") {
		t.Errorf("line = %q, want query and clear", line)
	}
}

func TestMessageThreadImages(t *testing.T) {
	mt := NewMessageThread(ui.DefaultTheme())
	it := conversation.Item{ID: "2", DisplayName: "Anna"}
	msgs := []timeline.Message{
		{ID: "a", Kind: timeline.Image, ImageRef: "file:///tmp/a.png"},
		{ID: "b", Kind: timeline.Text, Text: "hello [world]"},
		{ID: "c", Kind: timeline.Image, ImageRef: "file:///tmp/c.png", Outgoing: true},
	}

	mt.Update(it, msgs)
	if got := mt.SelectedImage(); got != "c" {
		t.Errorf("SelectedImage() = %q, want last image", got)
	}
	mt.NextImage()
	if got := mt.SelectedImage(); got != "a" {
		t.Errorf("after next = %q, want a", got)
	}
	mt.NextImage()
	mt.NextImage()
	if got := mt.SelectedImage(); got != "a" {
		t.Errorf("wrap = %q, want a", got)
	}

	text := mt.Messages().GetText(true)
	if !strings.Contains(text, "hello [world]") || !strings.Contains(text, "You") {
		t.Errorf("text = %q", text)
	}

	mt.Update(it, msgs[1:2])
	if got := mt.SelectedImage(); got != "" {
		t.Errorf("SelectedImage() = %q with no images", got)
	}
}

func TestComposerKeepsRejectedText(t *testing.T) {
	c := NewComposer(ui.DefaultTheme())
	accept := false
	c.SetOnSend(func(string) bool { return accept })

	c.SetText("   ")
	c.submit()
	if c.GetText() != "   " {
		t.Errorf("rejected text cleared")
	}
	accept = true
	c.submit()
	if c.GetText() != "" {
		t.Errorf("accepted text = %q, want cleared", c.GetText())
	}
}

func TestRenderQR(t *testing.T) {
	out := renderQR("mailto:julie@example.com?subject=Join%20me")
	if out == "" || strings.Contains(out, "failed") {
		t.Fatalf("renderQR() = %q", out)
	}
	if !strings.ContainsAny(out, "█▀▄") {
		t.Error("no half blocks in QR output")
	}
}

func TestRenderHalfBlocks(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	for x := 0; x < 4; x++ {
		for y := 0; y < 4; y++ {
			img.Set(x, y, color.RGBA{R: 255, A: 255})
		}
	}

	out := renderHalfBlocks(img, 4, 2)
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 2 {
		t.Fatalf("lines = %d, want 2", len(lines))
	}
	if strings.Count(lines[0], "▀") != 4 {
		t.Errorf("cells = %d, want 4", strings.Count(lines[0], "▀"))
	}
	if !strings.Contains(lines[0], "#ff0000") {
		t.Errorf("line = %q, want red", lines[0])
	}
	if renderHalfBlocks(img, 0, 2) != "" {
		t.Error("zero width should render nothing")
	}
}

func TestLoadImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "pic.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatal(err)
	}
	_ = f.Close()

	for _, ref := range []string{path, "file://" + path} {
		img, err := loadImage(ref)
		if err != nil {
			t.Fatalf("loadImage(%q) error = %v", ref, err)
		}
		if img.Bounds().Dx() != 2 {
			t.Errorf("width = %d, want 2", img.Bounds().Dx())
		}
	}

	if _, err := loadImage("https://example.com/a.jpg"); !errors.Is(err, errRemoteImage) {
		t.Errorf("remote error = %v, want errRemoteImage", err)
	}
	if _, err := loadImage(filepath.Join(t.TempDir(), "missing.png")); err == nil {
		t.Error("missing file expected error")
	}
}

func TestStatusBarLine(t *testing.T) {
	sb := NewStatusBar()
	sb.now = func() time.Time { return time.Date(2026, 1, 1, 9, 30, 0, 0, time.UTC) }
	sb.SetScreen("chat")
	sb.SetOverlay("image_preview")
	sb.SetPicking(true)

	line := sb.line()
	for _, want := range []string{"chat", "image_preview", "picking", "09:30"} {
		if !strings.Contains(line, want) {
			t.Errorf("line = %q, missing %q", line, want)
		}
	}
	sb.SetOverlay("none")
	if strings.Contains(sb.line(), "none") {
		t.Error("none overlay should be hidden")
	}
}

func TestSanitizeLine(t *testing.T) {
	tests := map[string]string{
		"a\nb\tc":                   "a b c",
		"Anna \U0001F44D\U0001F3FB": "Anna \U0001F44D",
		"ok\u200D\uFE0F!":           "ok!",
	}
	for in, want := range tests {
		if got := sanitizeLine(in); got != want {
			t.Errorf("sanitizeLine(%q) = %q, want %q", in, got, want)
		}
	}
}
