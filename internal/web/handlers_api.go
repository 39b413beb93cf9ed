package web

import (
	"encoding/json"
	"net/http"

	"github.com/schaltkraft/website/internal/segment"
)

const maxPreviewBytes = 1 << 20

type previewRequest struct {
	Markup string `json:"markup"`
}

type previewResponse struct {
	Intro    string            `json:"intro"`
	Sections []segment.Section `json:"sections"`
}

// handlePreviewSegment shows editors how a job description will be split
// into sections before they publish it.
func (s *Server) handlePreviewSegment(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxPreviewBytes)
	var req previewRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		jsonError(w, "invalid request body: "+err.Error(), http.StatusBadRequest)
		return
	}

	res := segment.Segment(req.Markup)
	resp := previewResponse{Intro: res.Intro, Sections: res.Sections}
	if resp.Sections == nil {
		resp.Sections = []segment.Section{}
	}
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(resp)
}

func (s *Server) handleContactStats(w http.ResponseWriter, r *http.Request) {
	if s.stats == nil {
		jsonError(w, "contact stats unavailable", http.StatusServiceUnavailable)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]any{
		"endpoint": s.cfg.FormEndpoint,
		"stats":    s.stats.Snapshot(),
	})
}

func jsonError(w http.ResponseWriter, msg string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
