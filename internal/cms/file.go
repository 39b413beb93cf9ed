package cms

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/fsnotify/fsnotify"
	"gopkg.in/yaml.v3"

	"github.com/schaltkraft/website/internal/content"
)

// Content directory layout.
const (
	pagesDir    = "pages"
	servicesDir = "services"
	jobsDir     = "jobs"
)

type snapshot struct {
	pages    map[string]*content.Page
	services []content.Service
	jobs     []content.Job
}

// FileSource serves content loaded from YAML files under a directory:
//
//	<dir>/pages/<slug>.yaml
//	<dir>/services/<slug>.yaml
//	<dir>/jobs/<slug>.yaml
//
// Content is held in an immutable snapshot that Reload swaps atomically.
type FileSource struct {
	dir      string
	log      *slog.Logger
	debounce time.Duration
	snap     atomic.Pointer[snapshot]
}

// Ensure FileSource implements Source.
var _ Source = (*FileSource)(nil)

// NewFileSource loads dir once and returns the source.
func NewFileSource(dir string, log *slog.Logger) (*FileSource, error) {
	s := &FileSource{
		dir:      dir,
		log:      log,
		debounce: 200 * time.Millisecond,
	}
	if err := s.Reload(); err != nil {
		return nil, err
	}
	return s, nil
}

// Reload re-reads the content directory. On error the previous snapshot
// stays in place.
func (s *FileSource) Reload() error {
	snap := &snapshot{pages: make(map[string]*content.Page)}

	var pages []content.Page
	if err := loadDir(filepath.Join(s.dir, pagesDir), &pages, func(p *content.Page, slug string) {
		if p.Slug == "" {
			p.Slug = slug
		}
	}); err != nil {
		return err
	}
	for i := range pages {
		snap.pages[pages[i].Slug] = &pages[i]
	}

	if err := loadDir(filepath.Join(s.dir, servicesDir), &snap.services, func(sv *content.Service, slug string) {
		if sv.Slug == "" {
			sv.Slug = slug
		}
	}); err != nil {
		return err
	}
	sortServices(snap.services)

	var jobs []content.Job
	if err := loadDir(filepath.Join(s.dir, jobsDir), &jobs, func(j *content.Job, slug string) {
		if j.Slug == "" {
			j.Slug = slug
		}
	}); err != nil {
		return err
	}
	snap.jobs = publishedJobs(jobs)

	s.snap.Store(snap)
	s.log.Info("content loaded",
		"dir", s.dir,
		"pages", len(snap.pages),
		"services", len(snap.services),
		"jobs", len(snap.jobs),
	)
	return nil
}

// loadDir decodes every YAML file in dir into a T. A missing directory
// yields no entries.
func loadDir[T any](dir string, out *[]T, fix func(*T, string)) error {
	entries, err := os.ReadDir(dir)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("read %s: %w", dir, err)
	}
	for _, e := range entries {
		if e.IsDir() || !isContentFile(e.Name()) {
			continue
		}
		path := filepath.Join(dir, e.Name())
		data, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("read %s: %w", path, err)
		}
		var v T
		if err := yaml.Unmarshal(data, &v); err != nil {
			return fmt.Errorf("parse %s: %w", path, err)
		}
		fix(&v, strings.TrimSuffix(e.Name(), filepath.Ext(e.Name())))
		*out = append(*out, v)
	}
	return nil
}

func isContentFile(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".yaml", ".yml":
		return true
	}
	return false
}

func (s *FileSource) Page(_ context.Context, slug string) (*content.Page, error) {
	return s.snap.Load().pages[slug], nil
}

func (s *FileSource) Services(_ context.Context) ([]content.Service, error) {
	return s.snap.Load().services, nil
}

func (s *FileSource) Service(_ context.Context, slug string) (*content.Service, error) {
	for _, sv := range s.snap.Load().services {
		if sv.Slug == slug {
			return &sv, nil
		}
	}
	return nil, nil
}

func (s *FileSource) Jobs(_ context.Context) ([]content.Job, error) {
	return s.snap.Load().jobs, nil
}

func (s *FileSource) Job(_ context.Context, slug string) (*content.Job, error) {
	for _, j := range s.snap.Load().jobs {
		if j.Slug == slug {
			return &j, nil
		}
	}
	return nil, nil
}

// Watch reloads content whenever a YAML file below the directory changes,
// grouping bursts of events. onChange, if set, runs after each successful
// reload. Watch blocks until ctx is done.
func (s *FileSource) Watch(ctx context.Context, onChange func()) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer w.Close()

	for _, dir := range []string{s.dir, filepath.Join(s.dir, pagesDir), filepath.Join(s.dir, servicesDir), filepath.Join(s.dir, jobsDir)} {
		if info, err := os.Stat(dir); err != nil || !info.IsDir() {
			continue
		}
		if err := w.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-w.Events:
			if !ok {
				return nil
			}
			if !isContentFile(ev.Name) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(s.debounce)
			} else {
				timer.Reset(s.debounce)
			}
			fire = timer.C
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			s.log.Warn("content watcher error", "error", err)
		case <-fire:
			fire = nil
			if err := s.Reload(); err != nil {
				s.log.Error("content reload failed", "error", err)
				continue
			}
			if onChange != nil {
				onChange()
			}
		}
	}
}
