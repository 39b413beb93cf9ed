package cms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"time"

	"github.com/schaltkraft/website/internal/content"
)

// Client reads content from a remote CMS JSON API:
//
//	GET /pages/{slug}      -> content.Page
//	GET /services          -> []content.Service
//	GET /services/{slug}   -> content.Service
//	GET /jobs              -> []content.Job
//	GET /jobs/{slug}       -> content.Job
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	log        *slog.Logger
	backoff    func(attempt int) time.Duration
}

// Ensure Client implements Source.
var _ Source = (*Client)(nil)

func NewClient(baseURL, apiKey string, log *slog.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		log:     log,
		backoff: Backoff,
	}
}

func (c *Client) Page(ctx context.Context, slug string) (*content.Page, error) {
	var page content.Page
	found, err := c.get(ctx, "/pages/"+url.PathEscape(slug), &page)
	if err != nil || !found {
		return nil, err
	}
	if page.Slug == "" {
		page.Slug = slug
	}
	return &page, nil
}

func (c *Client) Services(ctx context.Context) ([]content.Service, error) {
	var services []content.Service
	if _, err := c.get(ctx, "/services", &services); err != nil {
		return nil, err
	}
	sortServices(services)
	return services, nil
}

func (c *Client) Service(ctx context.Context, slug string) (*content.Service, error) {
	var sv content.Service
	found, err := c.get(ctx, "/services/"+url.PathEscape(slug), &sv)
	if err != nil || !found {
		return nil, err
	}
	return &sv, nil
}

func (c *Client) Jobs(ctx context.Context) ([]content.Job, error) {
	var jobs []content.Job
	if _, err := c.get(ctx, "/jobs", &jobs); err != nil {
		return nil, err
	}
	return publishedJobs(jobs), nil
}

func (c *Client) Job(ctx context.Context, slug string) (*content.Job, error) {
	var job content.Job
	found, err := c.get(ctx, "/jobs/"+url.PathEscape(slug), &job)
	if err != nil || !found {
		return nil, err
	}
	if !job.Published {
		return nil, nil
	}
	job.Normalize()
	return &job, nil
}

// get fetches path into out, retrying transient failures. It reports
// false without error on 404.
func (c *Client) get(ctx context.Context, path string, out any) (bool, error) {
	for attempt := 0; ; attempt++ {
		found, err := c.getOnce(ctx, path, out)
		if err == nil || !IsRetryable(err) || attempt >= MaxRetries {
			return found, err
		}
		delay := c.backoff(attempt)
		c.log.Warn("retrying cms request",
			"path", path,
			"attempt", attempt+1,
			"delay", delay,
			"error", err,
		)
		select {
		case <-ctx.Done():
			return false, fmt.Errorf("retry cancelled: %w", ctx.Err())
		case <-time.After(delay):
		}
	}
}

func (c *Client) getOnce(ctx context.Context, path string, out any) (bool, error) {
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return false, fmt.Errorf("create request: %w", err)
	}
	httpReq.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return false, fmt.Errorf("get %s: %w", path, err)
	}
	defer resp.Body.Close()
	if resp.StatusCode == http.StatusNotFound {
		return false, nil
	}
	if resp.StatusCode != http.StatusOK {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return false, &StatusError{Path: path, StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return false, fmt.Errorf("decode %s: %w", path, err)
	}
	return true, nil
}

// Close releases idle connections.
func (c *Client) Close() {
	c.httpClient.CloseIdleConnections()
}
