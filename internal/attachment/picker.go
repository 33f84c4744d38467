package attachment

import (
	"context"
	"fmt"
)

// MediaPhoto is the only media kind the shell asks for.
const MediaPhoto = "photo"

// Request is the picker configuration.
type Request struct {
	MediaKind string
	Quality   float64 // 0.0 (smallest) to 1.0 (best)
}

// DefaultRequest asks for a photo at medium quality.
func DefaultRequest() Request {
	return Request{MediaKind: MediaPhoto, Quality: 0.5}
}

// Validate checks the request bounds.
func (r Request) Validate() error {
	if r.MediaKind == "" {
		return fmt.Errorf("media kind is required")
	}
	if r.Quality < 0 || r.Quality > 1 {
		return fmt.Errorf("quality %.2f out of range 0.0-1.0", r.Quality)
	}
	return nil
}

// OutcomeKind tags which of the three picker results occurred.
type OutcomeKind int

const (
	OutcomeCancelled OutcomeKind = iota
	OutcomeFailed
	OutcomePicked
)

// Outcome is exactly one of cancelled, failed with a reason, or a picked asset.
type Outcome struct {
	Kind     OutcomeKind
	Reason   string
	AssetRef string
}

// Cancelled reports that the user dismissed the picker.
func Cancelled() Outcome { return Outcome{Kind: OutcomeCancelled} }

// Failed reports a picker error.
func Failed(reason string) Outcome { return Outcome{Kind: OutcomeFailed, Reason: reason} }

// Picked reports a selected asset.
func Picked(assetRef string) Outcome { return Outcome{Kind: OutcomePicked, AssetRef: assetRef} }

// Picker is the external image selection facility. Pick may block for as
// long as the user takes to choose.
type Picker interface {
	Pick(ctx context.Context, req Request) Outcome
}

// PickerFunc adapts a function to Picker.
type PickerFunc func(ctx context.Context, req Request) Outcome

// Pick calls f.
func (f PickerFunc) Pick(ctx context.Context, req Request) Outcome { return f(ctx, req) }
