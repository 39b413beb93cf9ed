package view

import (
	"github.com/a-h/templ"

	"github.com/schaltkraft/website/internal/content"
)

var contactPromises = []string{
	"Schnelle Antwort innerhalb von 24h",
	"Persönliche Beratung",
	"Unverbindliche Offerte",
}

func orDefault(s, fallback string) string {
	if s == "" {
		return fallback
	}
	return s
}

// ContactFormBlock renders a "contactForm" block with the full form.
func ContactFormBlock(v content.ContactForm, form FormState) templ.Component {
	form.Subjects = v.Subjects
	form.Compact = false
	return contactFormBlock(v, form)
}

// ContactTeaserBlock renders a "contactTeaser" block with the compact form.
func ContactTeaserBlock(v content.ContactTeaser, form FormState) templ.Component {
	form.Subjects = nil
	form.Compact = true
	return contactTeaserBlock(v, form)
}
