package views

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"net/url"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/nfnt/resize"

	"github.com/matheus3301/chatshell/internal/tui/ui"
	"github.com/rivo/tview"
)

// errRemoteImage is returned for refs that would need the network.
var errRemoteImage = errors.New("remote image")

// PreviewView is the full-screen image preview.
type PreviewView struct {
	*tview.TextView
	theme     *ui.Theme
	ref       string
	onDismiss func()
}

// NewPreviewView creates a new image preview overlay.
func NewPreviewView(theme *ui.Theme) *PreviewView {
	tv := tview.NewTextView().
		SetDynamicColors(true).
		SetTextAlign(tview.AlignCenter)
	tv.SetBorder(true)
	tv.SetBorderColor(theme.BorderFocusColor)
	tv.SetBackgroundColor(tcell.ColorBlack)
	tv.SetTitle(" Preview ")
	tv.SetTitleColor(theme.TitleColor)

	pv := &PreviewView{TextView: tv, theme: theme}
	tv.SetDoneFunc(func(key tcell.Key) {
		if pv.onDismiss != nil {
			pv.onDismiss()
		}
	})
	tv.SetMouseCapture(func(action tview.MouseAction, event *tcell.EventMouse) (tview.MouseAction, *tcell.EventMouse) {
		if action == tview.MouseLeftClick && pv.onDismiss != nil {
			pv.onDismiss()
			return action, nil
		}
		return action, event
	})
	return pv
}

// Name implements Component.
func (pv *PreviewView) Name() string { return "Preview" }

// Hints implements Component.
func (pv *PreviewView) Hints() []ui.MenuHint {
	return []ui.MenuHint{
		{Key: "Esc", Description: "Close"},
	}
}

// SetOnDismiss sets the callback for Esc, Enter and clicks.
func (pv *PreviewView) SetOnDismiss(fn func()) {
	pv.onDismiss = fn
}

// Update renders ref scaled to fit width x height cells.
func (pv *PreviewView) Update(ref string, width, height int) {
	pv.ref = ref
	pv.Clear()
	pv.SetTitle(fmt.Sprintf(" %s ", tview.Escape(ref)))

	img, err := loadImage(ref)
	if err != nil {
		muted := ui.Tag(pv.theme.MutedColor)
		msg := "Cannot display image: " + err.Error()
		if errors.Is(err, errRemoteImage) {
			msg = "Remote images are not fetched."
		}
		_, _ = fmt.Fprintf(pv, "\n\n▣\n\n%s\n\n[%s]%s[-]", tview.Escape(ref), muted, tview.Escape(msg))
		return
	}
	_, _ = fmt.Fprint(pv, renderHalfBlocks(img, width, height))
}

// Ref returns the reference being shown.
func (pv *PreviewView) Ref() string {
	return pv.ref
}

// loadImage decodes a local image given as a file:// URL or a path.
func loadImage(ref string) (image.Image, error) {
	path := ref
	if strings.Contains(ref, "://") {
		u, err := url.Parse(ref)
		if err != nil {
			return nil, err
		}
		if u.Scheme != "file" {
			return nil, errRemoteImage
		}
		path = u.Path
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// renderHalfBlocks scales img into width x height cells. Each cell shows two
// pixels: the upper half block takes the top pixel as foreground and the
// bottom pixel as background.
func renderHalfBlocks(img image.Image, width, height int) string {
	if width < 1 || height < 1 {
		return ""
	}
	scaled := resize.Thumbnail(uint(width), uint(height*2), img, resize.Bilinear)
	b := scaled.Bounds()

	var sb strings.Builder
	for y := b.Min.Y; y < b.Max.Y; y += 2 {
		for x := b.Min.X; x < b.Max.X; x++ {
			top := hexColor(scaled, x, y)
			bottom := "#000000"
			if y+1 < b.Max.Y {
				bottom = hexColor(scaled, x, y+1)
			}
			fmt.Fprintf(&sb, "[%s:%s]▀", top, bottom)
		}
		sb.WriteString("[-:-]\n")
	}
	return sb.String()
}

func hexColor(img image.Image, x, y int) string {
	r, g, b, _ := img.At(x, y).RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
