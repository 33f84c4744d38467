package attachment

import (
	"context"
	"errors"
	"strings"

	"github.com/matheus3301/chatshell/internal/bus"
	"github.com/matheus3301/chatshell/internal/timeline"
	"go.uber.org/zap"
)

// DefaultFailureReason is shown when the picker gives no reason.
const DefaultFailureReason = "Failed to pick image"

// ErrPickerBusy is returned when a pick is requested while one is outstanding.
var ErrPickerBusy = errors.New("image picker already open")

// PickerError is a picker failure the caller surfaces to the user once.
type PickerError struct {
	Reason string
}

func (e *PickerError) Error() string {
	return "pick image: " + e.Reason
}

// Appender receives the image once a pick succeeds.
type Appender interface {
	AppendImage(imageRef string) (timeline.Message, error)
}

// Result is the non-error outcome of PickAndAttach.
type Result struct {
	Attached  *timeline.Message
	Cancelled bool
}

// Pipeline turns a picker call into a timeline append or a reported failure.
type Pipeline struct {
	picker  Picker
	request Request
	machine *Machine
	bus     *bus.Bus
	logger  *zap.Logger
}

// NewPipeline creates a pipeline using picker with the given request.
func NewPipeline(picker Picker, req Request, b *bus.Bus, logger *zap.Logger) (*Pipeline, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{
		picker:  picker,
		request: req,
		machine: NewMachine(b),
		bus:     b,
		logger:  logger,
	}, nil
}

// Phase returns Idle or Picking.
func (p *Pipeline) Phase() Phase {
	return p.machine.Current()
}

// PickAndAttach calls the picker once and, on success, appends the image to
// target exactly once. Cancellation yields Result{Cancelled: true}; failures
// yield a *PickerError. target is captured up front, so the append lands in
// the same conversation even if the user navigated away meanwhile.
func (p *Pipeline) PickAndAttach(ctx context.Context, target Appender) (Result, error) {
	if err := p.machine.Transition(Picking); err != nil {
		return Result{}, ErrPickerBusy
	}
	defer func() { _ = p.machine.Transition(Idle) }()

	out := p.picker.Pick(ctx, p.request)
	switch out.Kind {
	case OutcomeCancelled:
		p.logger.Info("image pick cancelled")
		p.bus.Publish(bus.NewEvent(bus.KindAttachmentSkipped, nil))
		return Result{Cancelled: true}, nil

	case OutcomePicked:
		ref := strings.TrimSpace(out.AssetRef)
		if ref == "" {
			return Result{}, p.fail("picker returned an empty asset")
		}
		msg, err := target.AppendImage(ref)
		if err != nil {
			return Result{}, p.fail(err.Error())
		}
		p.logger.Info("image attached", zap.String("msg_id", msg.ID), zap.String("asset", ref))
		return Result{Attached: &msg}, nil

	default:
		reason := out.Reason
		if reason == "" {
			reason = DefaultFailureReason
		}
		return Result{}, p.fail(reason)
	}
}

func (p *Pipeline) fail(reason string) error {
	err := &PickerError{Reason: reason}
	p.logger.Warn("image pick failed", zap.String("reason", reason))
	p.bus.Publish(bus.NewEvent(bus.KindAttachmentFailed, err))
	return err
}
