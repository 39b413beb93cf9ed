package contact

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeSubmitter records the form state observed while the call is in flight.
type fakeSubmitter struct {
	form    *Form
	err     error
	seen    []Status
	got     []Submission
	release chan struct{}
}

func (f *fakeSubmitter) Submit(ctx context.Context, sub Submission) error {
	if f.form != nil {
		f.seen = append(f.seen, f.form.Status())
	}
	f.got = append(f.got, sub)
	if f.release != nil {
		<-f.release
	}
	return f.err
}

func validSubmission() Submission {
	return Submission{
		FormName: "contact",
		Name:     "Anna Muster",
		Email:    "anna@example.ch",
		Subject:  "Offertanfrage",
		Message:  "Bitte um Offerte.",
		Privacy:  true,
	}
}

func TestForm_SubmitSuccessClearsFields(t *testing.T) {
	form := NewForm(validSubmission())
	require.Equal(t, StatusIdle, form.Status())

	sub := &fakeSubmitter{form: form}
	require.NoError(t, form.Submit(context.Background(), sub))

	assert.Equal(t, []Status{StatusSubmitting}, sub.seen)
	assert.Equal(t, StatusSuccess, form.Status())
	assert.Equal(t, validSubmission(), sub.got[0])
	assert.Equal(t, Submission{FormName: "contact"}, form.Values())

	form.Reset()
	assert.Equal(t, StatusIdle, form.Status())
	assert.Equal(t, Submission{FormName: "contact"}, form.Values())
}

func TestForm_SubmitFailureKeepsFields(t *testing.T) {
	form := NewForm(validSubmission())
	boom := errors.New("boom")
	sub := &fakeSubmitter{form: form, err: boom}

	err := form.Submit(context.Background(), sub)
	require.Error(t, err)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, []Status{StatusSubmitting}, sub.seen)
	assert.Equal(t, StatusError, form.Status())
	assert.ErrorIs(t, form.Err(), boom)

	form.Reset()
	assert.Equal(t, StatusIdle, form.Status())
	assert.NoError(t, form.Err())
	assert.Equal(t, validSubmission(), form.Values(), "fields must survive a failed submission")

	// Retry after reset goes through.
	sub.err = nil
	require.NoError(t, form.Submit(context.Background(), sub))
	assert.Equal(t, StatusSuccess, form.Status())
}

func TestForm_RejectsWhileInFlight(t *testing.T) {
	form := NewForm(validSubmission())
	sub := &fakeSubmitter{release: make(chan struct{})}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		_ = form.Submit(context.Background(), sub)
	}()

	require.Eventually(t, func() bool { return form.Status() == StatusSubmitting }, timeout, tick)

	assert.ErrorIs(t, form.Submit(context.Background(), sub), ErrInFlight)
	assert.ErrorIs(t, form.Fill(Submission{}), ErrInFlight)
	form.Reset()
	assert.Equal(t, StatusSubmitting, form.Status(), "reset must not interrupt a submission")

	close(sub.release)
	wg.Wait()
	assert.Equal(t, StatusSuccess, form.Status())
	assert.Len(t, sub.got, 1)
}

func TestForm_TerminalStatesRequireReset(t *testing.T) {
	form := NewForm(validSubmission())
	require.NoError(t, form.Submit(context.Background(), &fakeSubmitter{}))

	assert.ErrorIs(t, form.Submit(context.Background(), &fakeSubmitter{}), ErrNotIdle)
	assert.ErrorIs(t, form.Fill(validSubmission()), ErrNotIdle)

	form.Reset()
	require.NoError(t, form.Fill(validSubmission()))
	assert.Equal(t, validSubmission(), form.Values())
}
