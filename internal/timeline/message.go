package timeline

import "fmt"

// Kind distinguishes text and image entries.
type Kind int

const (
	Text Kind = iota
	Image
)

func (k Kind) String() string {
	switch k {
	case Text:
		return "text"
	case Image:
		return "image"
	default:
		return fmt.Sprintf("kind(%d)", int(k))
	}
}

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch s {
	case "text":
		return Text, nil
	case "image":
		return Image, nil
	}
	return Text, fmt.Errorf("unknown message kind %q", s)
}

// Message is one timeline entry. Messages are never mutated after creation.
type Message struct {
	ID             string
	Kind           Kind
	Text           string // set for Text, may be empty for Image
	ImageRef       string // set iff Kind is Image
	Outgoing       bool
	TimestampLabel string
}

// ValidationError reports input that was rejected without touching the timeline.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}
