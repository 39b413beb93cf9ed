package contact

import (
	"context"
	"crypto/sha256"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/singleflight"
)

// EndpointError is returned when the endpoint answers with a non-2xx status.
type EndpointError struct {
	StatusCode int
	Body       string
}

func (e *EndpointError) Error() string {
	return fmt.Sprintf("form endpoint returned %d: %s", e.StatusCode, e.Body)
}

// Relay posts submissions to the external form-handling endpoint.
type Relay struct {
	endpoint   string
	httpClient *http.Client
	stats      *Stats
	log        *slog.Logger
	group      singleflight.Group
}

// Ensure Relay implements Submitter.
var _ Submitter = (*Relay)(nil)

// NewRelay returns a relay posting to endpoint. stats may be nil.
func NewRelay(endpoint string, httpClient *http.Client, stats *Stats, log *slog.Logger) *Relay {
	if httpClient == nil {
		httpClient = &http.Client{Timeout: 15 * time.Second}
	}
	return &Relay{
		endpoint:   endpoint,
		httpClient: httpClient,
		stats:      stats,
		log:        log,
	}
}

// Submit sends one URL-encoded POST. Identical submissions arriving while
// one is in flight share its outcome instead of posting again.
func (r *Relay) Submit(ctx context.Context, sub Submission) error {
	body := sub.Encode().Encode()
	id := uuid.NewString()

	_, err, shared := r.group.Do(ContentHashHex([]byte(body)), func() (any, error) {
		return nil, r.post(ctx, id, body)
	})
	if shared {
		r.log.Info("duplicate contact submission coalesced", "submission_id", id)
	}
	return err
}

func (r *Relay) post(ctx context.Context, id, body string) error {
	start := time.Now()
	err := r.do(ctx, body)
	if r.stats != nil {
		r.stats.Record(time.Since(start).Milliseconds(), err != nil)
	}
	if err != nil {
		r.log.Error("contact submission failed", "submission_id", id, "error", err)
		return err
	}
	r.log.Info("contact submission relayed", "submission_id", id, "duration_ms", time.Since(start).Milliseconds())
	return nil
}

func (r *Relay) do(ctx context.Context, body string) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.endpoint, strings.NewReader(body))
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := r.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("post form: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		respBody, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return &EndpointError{StatusCode: resp.StatusCode, Body: string(respBody)}
	}
	return nil
}

// Close releases idle connections.
func (r *Relay) Close() {
	r.httpClient.CloseIdleConnections()
}

// ContentHashHex computes SHA-256 of data and returns it hex encoded.
func ContentHashHex(data []byte) string {
	h := sha256.Sum256(data)
	return fmt.Sprintf("%x", h[:])
}
