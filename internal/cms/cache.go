package cms

import (
	"context"
	"sync"
	"time"

	"github.com/schaltkraft/website/internal/content"
)

type cacheEntry struct {
	value   any
	expires time.Time
}

// Cached is a Source that keeps successful lookups for a fixed TTL.
// Errors are never cached.
type Cached struct {
	src Source
	ttl time.Duration

	mu      sync.Mutex
	entries map[string]cacheEntry
	gen     uint64 // bumped by Invalidate
	now     func() time.Time
}

// Ensure Cached implements Source.
var _ Source = (*Cached)(nil)

func NewCached(src Source, ttl time.Duration) *Cached {
	if ttl <= 0 {
		ttl = time.Minute
	}
	return &Cached{
		src:     src,
		ttl:     ttl,
		entries: make(map[string]cacheEntry),
		now:     time.Now,
	}
}

func (c *Cached) Page(ctx context.Context, slug string) (*content.Page, error) {
	return load(ctx, c, "page/"+slug, func(ctx context.Context) (*content.Page, error) {
		return c.src.Page(ctx, slug)
	})
}

func (c *Cached) Services(ctx context.Context) ([]content.Service, error) {
	return load(ctx, c, "services", c.src.Services)
}

func (c *Cached) Service(ctx context.Context, slug string) (*content.Service, error) {
	return load(ctx, c, "service/"+slug, func(ctx context.Context) (*content.Service, error) {
		return c.src.Service(ctx, slug)
	})
}

func (c *Cached) Jobs(ctx context.Context) ([]content.Job, error) {
	return load(ctx, c, "jobs", c.src.Jobs)
}

func (c *Cached) Job(ctx context.Context, slug string) (*content.Job, error) {
	return load(ctx, c, "job/"+slug, func(ctx context.Context) (*content.Job, error) {
		return c.src.Job(ctx, slug)
	})
}

func load[T any](ctx context.Context, c *Cached, key string, fetch func(context.Context) (T, error)) (T, error) {
	v, gen, ok := c.get(key)
	if ok {
		return v.(T), nil
	}
	fresh, err := fetch(ctx)
	if err != nil {
		return fresh, err
	}
	c.put(key, fresh, gen)
	return fresh, nil
}

// get returns the entry for key and the generation it was looked up in.
func (c *Cached) get(key string) (any, uint64, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	e, ok := c.entries[key]
	if !ok || c.now().After(e.expires) {
		return nil, c.gen, false
	}
	return e.value, c.gen, true
}

// put stores v unless Invalidate ran since gen was read; a value fetched
// before a reload must not outlive it.
func (c *Cached) put(key string, v any, gen uint64) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if gen != c.gen {
		return
	}
	c.entries[key] = cacheEntry{value: v, expires: c.now().Add(c.ttl)}
}

// Cleanup removes expired entries.
func (c *Cached) Cleanup() {
	c.mu.Lock()
	defer c.mu.Unlock()
	now := c.now()
	for key, e := range c.entries {
		if now.After(e.expires) {
			delete(c.entries, key)
		}
	}
}

// Invalidate drops every entry.
func (c *Cached) Invalidate() {
	c.mu.Lock()
	defer c.mu.Unlock()
	clear(c.entries)
	c.gen++
}

// Len returns the number of stored entries, expired or not.
func (c *Cached) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}

// Run calls Cleanup once per TTL until ctx is done.
func (c *Cached) Run(ctx context.Context) {
	ticker := time.NewTicker(c.ttl)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.Cleanup()
		}
	}
}
