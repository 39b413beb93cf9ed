package web

import (
	"bytes"
	"net/http"

	"github.com/a-h/templ"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/schaltkraft/website/internal/content"
	"github.com/schaltkraft/website/internal/view"
)

const stylesheetPath = "/assets/site.css"

// render writes body inside the layout. The page is rendered to a buffer
// first so a render failure can still become a 500.
func (s *Server) render(w http.ResponseWriter, r *http.Request, status int, page *content.Page, title, description string, body templ.Component) {
	meta := view.Meta{
		SiteName:    s.cfg.SiteName,
		Title:       title,
		Description: description,
		Path:        r.URL.Path,
		LiveReload:  s.live != nil,
	}
	if page != nil {
		if page.Title != "" {
			meta.Title = page.Title
		}
		if page.Description != "" {
			meta.Description = page.Description
		}
	}
	if s.cfg.StaticDir != "" {
		meta.Stylesheet = stylesheetPath
	}

	var buf bytes.Buffer
	if err := view.Layout(meta, body).Render(r.Context(), &buf); err != nil {
		s.log.Error("render page", "path", r.URL.Path, "error", err, "request_id", middleware.GetReqID(r.Context()))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	buf.WriteTo(w)
}

// page loads a CMS page. Failures are logged and yield nil so the caller
// renders its static fallbacks.
func (s *Server) page(r *http.Request, slug string) *content.Page {
	p, err := s.source.Page(r.Context(), slug)
	if err != nil {
		s.log.Warn("load page", "slug", slug, "error", err, "request_id", middleware.GetReqID(r.Context()))
		return nil
	}
	return p
}

func (s *Server) renderContext() view.RenderContext {
	return view.RenderContext{Log: s.log}
}

func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	p := s.page(r, slugHome)
	s.render(w, r, http.StatusOK, p, "", "", view.HomePage(p, s.renderContext()))
}

func (s *Server) handleServices(w http.ResponseWriter, r *http.Request) {
	p := s.page(r, slugServices)
	services, err := s.source.Services(r.Context())
	if err != nil {
		s.log.Warn("load services", "error", err, "request_id", middleware.GetReqID(r.Context()))
	}
	s.render(w, r, http.StatusOK, p, "Dienstleistungen",
		"Ganzheitliche Lösungen für Ihre elektrotechnischen Herausforderungen.",
		view.ServicesPage(p, services, s.renderContext()))
}

func (s *Server) handleService(w http.ResponseWriter, r *http.Request) {
	sv, err := s.source.Service(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.log.Error("load service", "slug", chi.URLParam(r, "slug"), "error", err, "request_id", middleware.GetReqID(r.Context()))
		s.render(w, r, http.StatusServiceUnavailable, nil, "Nicht verfügbar", "", view.NotFoundPage())
		return
	}
	if sv == nil {
		s.handleNotFound(w, r)
		return
	}
	s.render(w, r, http.StatusOK, nil, sv.Title, sv.ShortDescription, view.ServicePage(*sv, s.renderContext()))
}

func (s *Server) handleJobs(w http.ResponseWriter, r *http.Request) {
	p := s.page(r, slugJobs)
	jobs, err := s.source.Jobs(r.Context())
	if err != nil {
		s.log.Warn("load jobs", "error", err, "request_id", middleware.GetReqID(r.Context()))
	}
	s.render(w, r, http.StatusOK, p, "Jobs", "", view.JobsPage(p, jobs, s.renderContext()))
}

func (s *Server) handleJob(w http.ResponseWriter, r *http.Request) {
	job, err := s.source.Job(r.Context(), chi.URLParam(r, "slug"))
	if err != nil {
		s.log.Error("load job", "slug", chi.URLParam(r, "slug"), "error", err, "request_id", middleware.GetReqID(r.Context()))
		s.render(w, r, http.StatusServiceUnavailable, nil, "Nicht verfügbar", "", view.NotFoundPage())
		return
	}
	if job == nil {
		s.handleNotFound(w, r)
		return
	}
	s.render(w, r, http.StatusOK, nil, job.Title, "", view.JobPage(*job))
}

func (s *Server) handleNotFound(w http.ResponseWriter, r *http.Request) {
	s.render(w, r, http.StatusNotFound, nil, "Seite nicht gefunden", "", view.NotFoundPage())
}
