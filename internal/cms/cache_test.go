package cms

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schaltkraft/website/internal/content"
)

type countingSource struct {
	calls int
	err   error
}

func (s *countingSource) Page(_ context.Context, slug string) (*content.Page, error) {
	s.calls++
	if s.err != nil {
		return nil, s.err
	}
	if slug == "missing" {
		return nil, nil
	}
	return &content.Page{Slug: slug}, nil
}

func (s *countingSource) Services(context.Context) ([]content.Service, error) {
	s.calls++
	return []content.Service{{Slug: "a"}}, s.err
}

func (s *countingSource) Service(_ context.Context, slug string) (*content.Service, error) {
	s.calls++
	return &content.Service{Slug: slug}, s.err
}

func (s *countingSource) Jobs(context.Context) ([]content.Job, error) {
	s.calls++
	return nil, s.err
}

func (s *countingSource) Job(_ context.Context, slug string) (*content.Job, error) {
	s.calls++
	return &content.Job{Slug: slug}, s.err
}

func TestCached_HitsWithinTTL(t *testing.T) {
	src := &countingSource{}
	c := NewCached(src, time.Minute)
	ctx := context.Background()

	for range 3 {
		page, err := c.Page(ctx, "home")
		require.NoError(t, err)
		assert.Equal(t, "home", page.Slug)
	}
	assert.Equal(t, 1, src.calls)

	// Not-found answers are cached too.
	for range 2 {
		page, err := c.Page(ctx, "missing")
		require.NoError(t, err)
		assert.Nil(t, page)
	}
	assert.Equal(t, 2, src.calls)
}

func TestCached_Expiry(t *testing.T) {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	src := &countingSource{}
	c := NewCached(src, time.Minute)
	c.now = func() time.Time { return now }
	ctx := context.Background()

	_, _ = c.Services(ctx)
	now = now.Add(2 * time.Minute)
	_, _ = c.Services(ctx)
	assert.Equal(t, 2, src.calls)

	now = now.Add(2 * time.Minute)
	c.Cleanup()
	assert.Equal(t, 0, c.Len())
}

func TestCached_ErrorsNotCached(t *testing.T) {
	src := &countingSource{err: errors.New("down")}
	c := NewCached(src, time.Minute)
	ctx := context.Background()

	_, err := c.Job(ctx, "x")
	assert.Error(t, err)
	src.err = nil
	job, err := c.Job(ctx, "x")
	require.NoError(t, err)
	assert.Equal(t, "x", job.Slug)
	assert.Equal(t, 2, src.calls)
}

func TestCached_Invalidate(t *testing.T) {
	src := &countingSource{}
	c := NewCached(src, time.Minute)
	ctx := context.Background()

	_, _ = c.Jobs(ctx)
	_, _ = c.Service(ctx, "a")
	assert.Equal(t, 2, c.Len())
	c.Invalidate()
	assert.Equal(t, 0, c.Len())
	_, _ = c.Jobs(ctx)
	assert.Equal(t, 3, src.calls)
}

// blockingSource holds Page until release is closed.
type blockingSource struct {
	countingSource
	started chan struct{}
	release chan struct{}
}

func (s *blockingSource) Page(ctx context.Context, slug string) (*content.Page, error) {
	close(s.started)
	<-s.release
	return &content.Page{Slug: slug, Title: "stale"}, nil
}

func TestCached_InvalidateDuringFetchDropsResult(t *testing.T) {
	src := &blockingSource{started: make(chan struct{}), release: make(chan struct{})}
	c := NewCached(src, time.Minute)

	done := make(chan *content.Page, 1)
	go func() {
		page, _ := c.Page(context.Background(), "home")
		done <- page
	}()

	<-src.started
	c.Invalidate()
	close(src.release)

	page := <-done
	require.NotNil(t, page)
	assert.Equal(t, "stale", page.Title, "the in-flight caller still gets its answer")
	assert.Equal(t, 0, c.Len(), "but it is not cached past the reload")
}
