package overlay

import (
	"errors"
	"fmt"
)

// Kind identifies which overlay sits above the base screen.
type Kind int

const (
	None Kind = iota
	Invite
	Agreement
	ImagePreview
)

func (k Kind) String() string {
	switch k {
	case None:
		return "none"
	case Invite:
		return "invite"
	case Agreement:
		return "agreement"
	case ImagePreview:
		return "image_preview"
	default:
		return fmt.Sprintf("overlay(%d)", int(k))
	}
}

// ErrPreviewRefRequired is returned when an image preview is requested without an image.
var ErrPreviewRefRequired = errors.New("image preview requires an image reference")

// State is the single active overlay. PreviewImageRef is set iff Active is ImagePreview.
type State struct {
	Active          Kind
	PreviewImageRef string
}

// Visible reports whether any overlay is shown.
func (s State) Visible() bool {
	return s.Active != None
}

// Show replaces whatever is active with kind. ImagePreview must go through ShowPreview.
func (s State) Show(kind Kind) (State, error) {
	switch kind {
	case None:
		return s.Dismiss(), nil
	case ImagePreview:
		return s, ErrPreviewRefRequired
	case Invite, Agreement:
		return State{Active: kind}, nil
	default:
		return s, fmt.Errorf("unknown overlay kind %d", int(kind))
	}
}

// ShowPreview replaces whatever is active with a preview of ref.
func (s State) ShowPreview(ref string) (State, error) {
	if ref == "" {
		return s, ErrPreviewRefRequired
	}
	return State{Active: ImagePreview, PreviewImageRef: ref}, nil
}

// Dismiss clears the active overlay.
func (s State) Dismiss() State {
	return State{}
}
