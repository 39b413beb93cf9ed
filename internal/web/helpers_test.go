package web

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/schaltkraft/website/internal/config"
	"github.com/schaltkraft/website/internal/contact"
	"github.com/schaltkraft/website/internal/content"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

var errSource = errors.New("cms unavailable")

type fakeSource struct {
	pages    map[string]*content.Page
	services []content.Service
	jobs     []content.Job
	fail     bool
}

func (f *fakeSource) Page(_ context.Context, slug string) (*content.Page, error) {
	if f.fail {
		return nil, errSource
	}
	return f.pages[slug], nil
}

func (f *fakeSource) Services(context.Context) ([]content.Service, error) {
	if f.fail {
		return nil, errSource
	}
	return f.services, nil
}

func (f *fakeSource) Service(_ context.Context, slug string) (*content.Service, error) {
	if f.fail {
		return nil, errSource
	}
	for i := range f.services {
		if f.services[i].Slug == slug {
			return &f.services[i], nil
		}
	}
	return nil, nil
}

func (f *fakeSource) Jobs(context.Context) ([]content.Job, error) {
	if f.fail {
		return nil, errSource
	}
	return f.jobs, nil
}

func (f *fakeSource) Job(_ context.Context, slug string) (*content.Job, error) {
	if f.fail {
		return nil, errSource
	}
	for i := range f.jobs {
		if f.jobs[i].Slug == slug {
			return &f.jobs[i], nil
		}
	}
	return nil, nil
}

type fakeSubmitter struct {
	mu   sync.Mutex
	subs []contact.Submission
	err  error
}

func (f *fakeSubmitter) Submit(_ context.Context, sub contact.Submission) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.subs = append(f.subs, sub)
	return f.err
}

func (f *fakeSubmitter) calls() []contact.Submission {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]contact.Submission(nil), f.subs...)
}

func testConfig() config.Config {
	return config.Config{
		Port:          "8080",
		SiteName:      "Schaltkraft AG",
		ContentDir:    "content",
		FormEndpoint:  "https://forms.example/submit",
		FormName:      "contact",
		FormTimeout:   5 * time.Second,
		PreviewAPIKey: "secret",
		StatsWindow:   time.Hour,
	}
}

func newTestServer(src *fakeSource, sub *fakeSubmitter) *Server {
	return NewServer(src, sub, contact.NewStats(time.Hour), nil, discardLogger(), testConfig())
}

func get(t *testing.T, h http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, path, nil))
	return rec
}

func postForm(t *testing.T, h http.Handler, path string, form url.Values) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func validForm() url.Values {
	return url.Values{
		"form-name": {"contact"},
		"bot-field": {""},
		"name":      {"Anna Muster"},
		"email":     {"anna@example.ch"},
		"subject":   {"Offertanfrage"},
		"message":   {"Bitte um Offerte."},
		"privacy":   {"on"},
	}
}
