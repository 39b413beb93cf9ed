package contact

import (
	"context"
	"errors"
	"fmt"
	"sync"
)

// Status is the state of a Form.
type Status string

const (
	StatusIdle       Status = "idle"
	StatusSubmitting Status = "submitting"
	StatusSuccess    Status = "success"
	StatusError      Status = "error"
)

var (
	// ErrInFlight is returned while a submission is pending.
	ErrInFlight = errors.New("contact: submission already in flight")
	// ErrNotIdle is returned when a finished form has not been reset.
	ErrNotIdle = errors.New("contact: form must be reset first")
)

// Submitter delivers a submission to the form-handling endpoint.
type Submitter interface {
	Submit(ctx context.Context, sub Submission) error
}

// Form is one contact form instance. Transitions:
//
//	idle -> submitting -> success | error
//	success | error -> idle (Reset)
//
// Only one submission can be in flight at a time.
type Form struct {
	mu     sync.Mutex
	status Status
	values Submission
	err    error
}

// NewForm returns an idle form holding sub.
func NewForm(sub Submission) *Form {
	return &Form{status: StatusIdle, values: sub}
}

// Status returns the current state.
func (f *Form) Status() Status {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.status
}

// Values returns the current field values.
func (f *Form) Values() Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.values
}

// Err returns the failure of the last submission, if the form is in the
// error state.
func (f *Form) Err() error {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.err
}

// Fill replaces the field values. Only idle forms can be edited.
func (f *Form) Fill(sub Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if err := f.checkIdleLocked(); err != nil {
		return err
	}
	f.values = sub
	return nil
}

// Submit sends the current values through s. On success the fields are
// cleared; on failure they are kept so the user can retry after Reset.
func (f *Form) Submit(ctx context.Context, s Submitter) error {
	f.mu.Lock()
	if err := f.checkIdleLocked(); err != nil {
		f.mu.Unlock()
		return err
	}
	f.status = StatusSubmitting
	sub := f.values
	f.mu.Unlock()

	err := s.Submit(ctx, sub)

	f.mu.Lock()
	defer f.mu.Unlock()
	if err != nil {
		f.status = StatusError
		f.err = err
		return fmt.Errorf("submit contact form: %w", err)
	}
	f.status = StatusSuccess
	f.err = nil
	f.values = Submission{FormName: sub.FormName}
	return nil
}

// Reset returns a finished form to idle. It has no effect while a
// submission is in flight.
func (f *Form) Reset() {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.status == StatusSubmitting {
		return
	}
	f.status = StatusIdle
	f.err = nil
}

func (f *Form) checkIdleLocked() error {
	switch f.status {
	case StatusSubmitting:
		return ErrInFlight
	case StatusSuccess, StatusError:
		return ErrNotIdle
	}
	return nil
}
