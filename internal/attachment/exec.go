package attachment

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"net/url"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"sync"
)

// ExecPicker runs an external file chooser (e.g. zenity --file-selection) and
// reads the chosen path from its stdout. Exit status 1 with no output means
// the user cancelled, which is what zenity and kdialog report.
type ExecPicker struct {
	Command []string
}

// NewExecPicker returns a picker for the given command line.
func NewExecPicker(command []string) (*ExecPicker, error) {
	if len(command) == 0 || command[0] == "" {
		return nil, errors.New("picker command is empty")
	}
	return &ExecPicker{Command: command}, nil
}

// Pick implements Picker.
func (p *ExecPicker) Pick(ctx context.Context, req Request) Outcome {
	cmd := exec.CommandContext(ctx, p.Command[0], p.Command[1:]...)
	cmd.Env = append(os.Environ(),
		"CHATSHELL_MEDIA_KIND="+req.MediaKind,
		fmt.Sprintf("CHATSHELL_QUALITY=%.2f", req.Quality),
	)
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	err := cmd.Run()
	out := strings.TrimSpace(stdout.String())
	if ctx.Err() != nil {
		return Failed(ctx.Err().Error())
	}
	if err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) && exitErr.ExitCode() == 1 && out == "" {
			return Cancelled()
		}
		if msg := strings.TrimSpace(stderr.String()); msg != "" {
			return Failed(msg)
		}
		return Failed(err.Error())
	}
	if out == "" {
		return Cancelled()
	}
	// Some choosers print one path per line; the first one wins.
	first, _, _ := strings.Cut(out, "\n")
	return Picked(AssetRef(strings.TrimSpace(first)))
}

// AssetRef turns a local path into a file URI and leaves URIs untouched.
func AssetRef(pathOrURI string) string {
	if strings.Contains(pathOrURI, "://") {
		return pathOrURI
	}
	abs, err := filepath.Abs(pathOrURI)
	if err != nil {
		abs = pathOrURI
	}
	return (&url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}).String()
}

// SamplePicker hands out configured asset references in turn. It stands in
// for a native picker when no chooser command is configured.
type SamplePicker struct {
	mu      sync.Mutex
	samples []string
	next    int
}

// NewSamplePicker creates a picker cycling through samples.
func NewSamplePicker(samples []string) *SamplePicker {
	return &SamplePicker{samples: append([]string(nil), samples...)}
}

// Pick implements Picker.
func (p *SamplePicker) Pick(ctx context.Context, _ Request) Outcome {
	if err := ctx.Err(); err != nil {
		return Failed(err.Error())
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	if len(p.samples) == 0 {
		return Failed("no sample images configured")
	}
	ref := p.samples[p.next%len(p.samples)]
	p.next++
	return Picked(AssetRef(ref))
}
