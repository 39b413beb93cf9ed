package web

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/schaltkraft/website/internal/contact"
	"github.com/schaltkraft/website/internal/content"
	"github.com/schaltkraft/website/internal/view"
)

const maxFormBytes = 64 << 10

func (s *Server) handleContact(w http.ResponseWriter, r *http.Request) {
	s.renderContact(w, r, http.StatusOK, view.FormState{Status: contact.StatusIdle})
}

// handleContactSubmit drives one pass of the form state machine. The full
// form and the compact teaser form both post here.
func (s *Server) handleContactSubmit(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxFormBytes)
	if err := r.ParseForm(); err != nil {
		http.Error(w, "invalid form", http.StatusBadRequest)
		return
	}
	reqID := middleware.GetReqID(r.Context())
	sub := contact.FromValues(r.PostForm)
	if r.PostForm.Get("form-name") == "" && s.cfg.FormName != "" {
		sub.FormName = s.cfg.FormName
	}

	// Reset from the success or error view. The error view carries the
	// entered values so they come back filled in.
	if r.PostForm.Get("action") == "reset" {
		sub.BotField = ""
		s.renderContact(w, r, http.StatusOK, view.FormState{Status: contact.StatusIdle, Values: sub})
		return
	}

	if sub.IsSpam() {
		s.log.Info("contact honeypot triggered", "request_id", reqID)
		s.renderContact(w, r, http.StatusOK, view.FormState{Status: contact.StatusSuccess})
		return
	}

	p := s.page(r, slugContact)
	if errs := contact.Validate(sub, s.allowedSubjects(p)); errs != nil {
		s.renderContactPage(w, r, http.StatusUnprocessableEntity, p, view.FormState{
			Status: contact.StatusIdle,
			Values: sub,
			Errors: errs,
		})
		return
	}

	form := contact.NewForm(sub)
	ctx, cancel := context.WithTimeout(r.Context(), s.cfg.FormTimeout)
	defer cancel()

	status := http.StatusOK
	if err := form.Submit(ctx, s.submitter); err != nil {
		s.log.Error("contact submission", "error", err, "request_id", reqID)
		status = http.StatusBadGateway
	}
	s.renderContactPage(w, r, status, p, view.FormState{Status: form.Status(), Values: form.Values()})
}

// allowedSubjects is every subject a form on the site may offer: the
// contact page's own list, the configured list and the defaults used by
// teaser forms.
func (s *Server) allowedSubjects(p *content.Page) []string {
	var out []string
	for _, b := range content.Filter(content.BlocksOf(p), content.KindContactForm) {
		if cf, ok := content.Payload[content.ContactForm](b); ok {
			out = append(out, cf.Subjects...)
		}
	}
	out = append(out, s.cfg.ContactSubjects...)
	return append(out, contact.DefaultSubjects...)
}

func (s *Server) renderContact(w http.ResponseWriter, r *http.Request, status int, form view.FormState) {
	s.renderContactPage(w, r, status, s.page(r, slugContact), form)
}

func (s *Server) renderContactPage(w http.ResponseWriter, r *http.Request, status int, p *content.Page, form view.FormState) {
	p = s.withConfiguredSubjects(p)
	rc := s.renderContext()
	rc.Form = form
	s.render(w, r, status, p, "Kontakt", "", view.ContactPage(p, rc))
}

// withConfiguredSubjects applies CONTACT_SUBJECTS to contactForm blocks
// that do not list their own. The page is copied, never modified.
func (s *Server) withConfiguredSubjects(p *content.Page) *content.Page {
	if len(s.cfg.ContactSubjects) == 0 {
		return p
	}
	out := content.Page{}
	if p != nil {
		out = *p
	}
	blocks := make([]content.Block, 0, len(out.Blocks)+1)
	found := false
	for _, b := range out.Blocks {
		if cf, ok := content.Payload[content.ContactForm](b); ok {
			found = true
			if len(cf.Subjects) == 0 {
				cf.Subjects = s.cfg.ContactSubjects
				b.Value = cf
			}
		}
		blocks = append(blocks, b)
	}
	if !found {
		blocks = append(blocks, content.Block{
			Discriminant: content.KindContactForm,
			Value:        content.ContactForm{Subjects: s.cfg.ContactSubjects},
		})
	}
	out.Blocks = blocks
	return &out
}
