// Package contact implements the contact form: field model, validation,
// the idle/submitting/success/error state machine and the relay to the
// external form-handling endpoint.
package contact

import (
	"net/mail"
	"net/url"
	"slices"
	"strings"
)

// DefaultFormName is sent as form-name when none is configured.
const DefaultFormName = "contact"

// DefaultSubjects are offered when a page configures no subjects.
var DefaultSubjects = []string{
	"Offertanfrage",
	"Technischer Support",
	"Projektanfrage",
	"Service & Wartung",
	"Bewerbung",
	"Allgemeine Anfrage",
}

// Subjects returns custom when it has entries, DefaultSubjects otherwise.
func Subjects(custom []string) []string {
	if len(custom) > 0 {
		return custom
	}
	return DefaultSubjects
}

// Submission is the fixed field set posted to the form endpoint.
type Submission struct {
	FormName string
	BotField string // honeypot, empty for humans
	Name     string
	Company  string
	Email    string
	Phone    string
	Subject  string
	Message  string
	Privacy  bool
}

// FromValues reads a submission from posted form values.
func FromValues(v url.Values) Submission {
	formName := strings.TrimSpace(v.Get("form-name"))
	if formName == "" {
		formName = DefaultFormName
	}
	return Submission{
		FormName: formName,
		BotField: v.Get("bot-field"),
		Name:     strings.TrimSpace(v.Get("name")),
		Company:  strings.TrimSpace(v.Get("company")),
		Email:    strings.TrimSpace(v.Get("email")),
		Phone:    strings.TrimSpace(v.Get("phone")),
		Subject:  strings.TrimSpace(v.Get("subject")),
		Message:  strings.TrimSpace(v.Get("message")),
		Privacy:  v.Get("privacy") != "",
	}
}

// Encode returns the URL-encoded field set. Optional fields are always
// present, possibly empty.
func (s Submission) Encode() url.Values {
	formName := s.FormName
	if formName == "" {
		formName = DefaultFormName
	}
	v := url.Values{}
	v.Set("form-name", formName)
	v.Set("bot-field", s.BotField)
	v.Set("name", s.Name)
	v.Set("company", s.Company)
	v.Set("email", s.Email)
	v.Set("phone", s.Phone)
	v.Set("subject", s.Subject)
	v.Set("message", s.Message)
	if s.Privacy {
		v.Set("privacy", "on")
	} else {
		v.Set("privacy", "")
	}
	return v
}

// IsSpam reports whether the honeypot field was filled in.
func (s Submission) IsSpam() bool {
	return strings.TrimSpace(s.BotField) != ""
}

// FieldErrors maps a field name to a user-facing message.
type FieldErrors map[string]string

// Validate checks required fields. subjects lists the options the form
// offered; the chosen subject must be one of them.
func Validate(s Submission, subjects []string) FieldErrors {
	errs := FieldErrors{}
	if s.Name == "" {
		errs["name"] = "Bitte geben Sie Ihren Namen an."
	}
	if s.Email == "" {
		errs["email"] = "Bitte geben Sie Ihre E-Mail-Adresse an."
	} else if _, err := mail.ParseAddress(s.Email); err != nil {
		errs["email"] = "Bitte geben Sie eine gültige E-Mail-Adresse an."
	}
	if s.Subject == "" {
		errs["subject"] = "Bitte wählen Sie einen Betreff."
	} else if !slices.Contains(Subjects(subjects), s.Subject) {
		errs["subject"] = "Bitte wählen Sie einen Betreff aus der Liste."
	}
	if s.Message == "" {
		errs["message"] = "Bitte schreiben Sie uns eine Nachricht."
	}
	if !s.Privacy {
		errs["privacy"] = "Bitte bestätigen Sie die Datenschutzerklärung."
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}
