package web

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/schaltkraft/website/internal/cms"
	"github.com/schaltkraft/website/internal/config"
	"github.com/schaltkraft/website/internal/contact"
)

// Page slugs looked up in the content source.
const (
	slugHome     = "home"
	slugServices = "services"
	slugJobs     = "jobs"
	slugContact  = "contact"
)

// Server is the HTTP server for the website.
type Server struct {
	router    chi.Router
	source    cms.Source
	submitter contact.Submitter
	stats     *contact.Stats
	live      *LiveReload
	log       *slog.Logger
	cfg       config.Config
}

// NewServer creates and configures the HTTP server. stats and live may be nil.
func NewServer(source cms.Source, submitter contact.Submitter, stats *contact.Stats, live *LiveReload, log *slog.Logger, cfg config.Config) *Server {
	s := &Server{
		source:    source,
		submitter: submitter,
		stats:     stats,
		live:      live,
		log:       log,
		cfg:       cfg,
	}
	s.setupRoutes()
	return s
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) setupRoutes() {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RequestID)
	r.Use(RequestLogger(s.log))

	// Public pages.
	r.Get("/", s.handleHome)
	r.Get("/dienstleistungen", s.handleServices)
	r.Get("/dienstleistungen/{slug}", s.handleService)
	r.Get("/jobs", s.handleJobs)
	r.Get("/jobs/{slug}", s.handleJob)
	r.Get("/kontakt", s.handleContact)
	r.Post("/kontakt", s.handleContactSubmit)
	r.Get("/health", s.handleHealth)
	r.NotFound(s.handleNotFound)

	if s.live != nil {
		r.Get("/_live", s.live.ServeHTTP)
	}
	if s.cfg.StaticDir != "" {
		r.Handle("/assets/*", http.StripPrefix("/assets/", http.FileServer(http.Dir(s.cfg.StaticDir))))
	}

	// Editor endpoints, only mounted when a key is configured.
	if s.cfg.PreviewAPIKey != "" {
		r.Group(func(r chi.Router) {
			r.Use(AuthMiddleware(s.cfg.PreviewAPIKey, s.log))

			r.Post("/api/preview/segment", s.handlePreviewSegment)
			r.Get("/api/stats/contact", s.handleContactStats)
		})
	}

	s.router = r
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.Write([]byte(`{"status":"ok"}`))
}
