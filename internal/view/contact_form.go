package view

import (
	"maps"
	"net/url"
	"slices"

	"github.com/a-h/templ"

	"github.com/schaltkraft/website/internal/contact"
)

// FormState is everything needed to render one contact form instance.
type FormState struct {
	Action   string // POST target, defaults to /kontakt
	Status   contact.Status
	Values   contact.Submission
	Errors   contact.FieldErrors
	Subjects []string // empty means contact.DefaultSubjects
	Compact  bool
}

// ContactForm renders the form in its current state.
func ContactForm(s FormState) templ.Component {
	if s.Action == "" {
		s.Action = "/kontakt"
	}
	switch s.Status {
	case contact.StatusSuccess:
		return formSuccess(s)
	case contact.StatusError:
		return formError(s)
	}
	return formFields(s)
}

func orStatus(st contact.Status) contact.Status {
	if st == "" {
		return contact.StatusIdle
	}
	return st
}

func formName(v contact.Submission) string {
	if v.FormName == "" {
		return contact.DefaultFormName
	}
	return v.FormName
}

// subjectListed reports whether the placeholder option can stay unselected.
func subjectListed(subjects []string, subject string) bool {
	return subject != "" && slices.Contains(subjects, subject)
}

func messageRows(compact bool) int {
	if compact {
		return 4
	}
	return 5
}

func hasError(s FormState, name string) bool {
	_, bad := s.Errors[name]
	return bad
}

func sortedKeys(values url.Values) []string {
	return slices.Sorted(maps.Keys(values))
}
