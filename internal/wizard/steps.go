package wizard

import (
	"context"
	"errors"
	"io"
)

// ErrValidation is returned by Submit when the final step fails validation;
// the field messages are in Wizard.Errors.
var ErrValidation = errors.New("validation failed")

// State of the wizard shell. While editing, Step (1..5) says which subset of
// the form is visible. There is no terminal error state: a failed submission
// returns to editing with the draft intact, recoverable by re-submission.
type State int

const (
	StateEditing State = iota
	StateSubmitting
	StateClosed
)

const (
	firstStep = 1
	lastStep  = 5
)

// Submitter posts the encoded application. *api.Client satisfies it.
type Submitter interface {
	SubmitGuideApplication(ctx context.Context, contentType string, body io.Reader) error
}

// Wizard is the step controller over a registration draft.
type Wizard struct {
	submitter Submitter

	Draft  *RegistrationDraft
	Step   int
	State  State
	Errors map[string]string
}

// New opens the wizard with an empty draft on step 1.
func New(s Submitter) *Wizard {
	return &Wizard{
		submitter: s,
		Draft:     NewDraft(),
		Step:      firstStep,
		State:     StateEditing,
	}
}

// Advance validates the current step. On any error it stays put, surfaces
// the field messages, and reports false; otherwise it moves forward, capped
// at the last step.
func (w *Wizard) Advance() bool {
	if w.State != StateEditing {
		return false
	}

	errs := Validate(w.Step, w.Draft)
	if len(errs) > 0 {
		w.Errors = errs
		return false
	}

	w.Errors = nil
	if w.Step < lastStep {
		w.Step++
	}
	return true
}

// Retreat moves back one step without validating, floored at step 1.
func (w *Wizard) Retreat() {
	if w.State != StateEditing {
		return
	}
	w.Errors = nil
	if w.Step > firstStep {
		w.Step--
	}
}

// Submit re-validates the final step, encodes the draft into one multipart
// payload, and issues the single POST. Success closes the wizard and
// discards the draft; failure returns to the final step with the draft
// intact so the user can retry.
func (w *Wizard) Submit(ctx context.Context) error {
	if w.State != StateEditing || w.Step != lastStep {
		return errors.New("wizard is not on the review step")
	}

	errs := Validate(lastStep, w.Draft)
	if len(errs) > 0 {
		w.Errors = errs
		return ErrValidation
	}
	w.Errors = nil

	contentType, body, err := BuildSubmission(w.Draft)
	if err != nil {
		return err
	}

	w.State = StateSubmitting
	if err := w.submitter.SubmitGuideApplication(ctx, contentType, body); err != nil {
		w.State = StateEditing
		w.Step = lastStep
		return err
	}

	w.State = StateClosed
	w.Draft = nil
	return nil
}

// Close abandons the flow and discards the draft.
func (w *Wizard) Close() {
	w.State = StateClosed
	w.Draft = nil
}
