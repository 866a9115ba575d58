package form

import (
	"context"
	"errors"
	"sync"
	"time"

	"bootcamp-landing/pkg/models"
	"bootcamp-landing/pkg/utils"
)

// DefaultResetDelay is how long a successful submission stays on screen
// before the form is cleared.
const DefaultResetDelay = 5 * time.Second

// timestampLayout matches JavaScript's Date.toISOString.
const timestampLayout = "2006-01-02T15:04:05.000Z"

// Submitter delivers a completed registration. services.SubmissionService
// satisfies it.
type Submitter interface {
	Submit(ctx context.Context, row models.SheetRow) error
}

// Snapshot is a point-in-time copy of a Holder's state.
type Snapshot struct {
	Input   models.RegistrationInput
	Status  Status
	Message string
}

// Submitting reports whether a submission is in flight.
func (s Snapshot) Submitting() bool { return s.Status == StatusSubmitting }

// Succeeded reports whether the last submission succeeded and the reset has
// not fired yet.
func (s Snapshot) Succeeded() bool { return s.Status == StatusSucceeded }

// Failed reports whether an error message should be shown.
func (s Snapshot) Failed() bool { return s.Status == StatusFailed }

// Holder owns one registration form. It is safe for concurrent use.
type Holder struct {
	submitter  Submitter
	scheduler  Scheduler
	now        func() time.Time
	resetDelay time.Duration

	mu         sync.Mutex
	input      models.RegistrationInput
	status     Status
	message    string
	generation uint64
	resetTimer Timer
	closed     bool
}

// Option configures a Holder.
type Option func(*Holder)

// WithScheduler replaces the timer source used for the success reset.
func WithScheduler(s Scheduler) Option {
	return func(h *Holder) { h.scheduler = s }
}

// WithClock replaces the clock used for submission timestamps.
func WithClock(now func() time.Time) Option {
	return func(h *Holder) { h.now = now }
}

// WithResetDelay sets how long the success state is kept. Non-positive
// values keep DefaultResetDelay.
func WithResetDelay(d time.Duration) Option {
	return func(h *Holder) {
		if d > 0 {
			h.resetDelay = d
		}
	}
}

// NewHolder creates an idle, empty form that submits through submitter.
func NewHolder(submitter Submitter, opts ...Option) *Holder {
	h := &Holder{
		submitter:  submitter,
		scheduler:  timeScheduler{},
		now:        time.Now,
		resetDelay: DefaultResetDelay,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// UpdateField stores a field value. The phone number is stored normalized so
// what is displayed is always the formatted value. Any pending error is
// cleared.
func (h *Holder) UpdateField(name, raw string) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	switch name {
	case models.FieldName:
		h.input.Name = raw
	case models.FieldEmail:
		h.input.Email = raw
	case models.FieldPhone:
		h.input.Phone = utils.NormalizePhone(raw)
	case models.FieldLocation:
		h.input.Location = raw
	case models.FieldExperience:
		h.input.Experience = raw
	case models.FieldMotivation:
		h.input.Motivation = raw
	default:
		return ErrUnknownField
	}

	if h.status == StatusFailed {
		h.status = StatusIdle
		h.message = ""
	}
	return nil
}

// Submit sends the current values. It returns ErrSubmitInProgress without
// side effects if a submission is already running, and a *ValidationError if
// any field is empty. Cancelling ctx does not abort a submission once issued.
func (h *Holder) Submit(ctx context.Context) error {
	h.mu.Lock()
	if h.closed {
		h.mu.Unlock()
		return ErrClosed
	}
	if h.status == StatusSubmitting {
		h.mu.Unlock()
		return ErrSubmitInProgress
	}
	if missing := h.input.Missing(); len(missing) > 0 {
		h.mu.Unlock()
		return &ValidationError{Fields: missing}
	}

	h.stopResetLocked()
	h.generation++
	gen := h.generation
	h.status = StatusSubmitting
	h.message = ""
	row := h.rowLocked()
	h.mu.Unlock()

	err := h.submitter.Submit(context.WithoutCancel(ctx), row)

	h.mu.Lock()
	defer h.mu.Unlock()

	if err != nil {
		h.status = StatusFailed
		h.message = UserMessage(err)
		return err
	}

	h.status = StatusSucceeded
	if !h.closed {
		h.resetTimer = h.scheduler.AfterFunc(h.resetDelay, func() { h.reset(gen) })
	}
	return nil
}

// Snapshot returns a copy of the current state.
func (h *Holder) Snapshot() Snapshot {
	h.mu.Lock()
	defer h.mu.Unlock()
	return Snapshot{Input: h.input, Status: h.status, Message: h.message}
}

// Close cancels the pending reset. Timers that fire after Close do nothing.
func (h *Holder) Close() {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.closed = true
	h.stopResetLocked()
}

// reset clears the form after a success, unless the holder was closed or a
// newer submission started since the timer was scheduled.
func (h *Holder) reset(gen uint64) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.closed || h.generation != gen || h.status != StatusSucceeded {
		return
	}
	h.input = models.RegistrationInput{}
	h.status = StatusIdle
	h.message = ""
	h.resetTimer = nil
}

func (h *Holder) stopResetLocked() {
	if h.resetTimer != nil {
		h.resetTimer.Stop()
		h.resetTimer = nil
	}
}

func (h *Holder) rowLocked() models.SheetRow {
	return models.SheetRow{
		Name:       h.input.Name,
		Email:      h.input.Email,
		Phone:      "'" + h.input.Phone,
		Location:   h.input.Location,
		Experience: h.input.Experience,
		Motivation: h.input.Motivation,
		Timestamp:  h.now().UTC().Format(timestampLayout),
	}
}

// IsInProgress reports whether err is the re-entrancy rejection.
func IsInProgress(err error) bool {
	return errors.Is(err, ErrSubmitInProgress)
}
