package contact

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubjects_FallsBackToDefaults(t *testing.T) {
	assert.Equal(t, DefaultSubjects, Subjects(nil))
	assert.Equal(t, DefaultSubjects, Subjects([]string{}))
	assert.Equal(t, []string{"Lehrstelle"}, Subjects([]string{"Lehrstelle"}))
}

func TestSubmission_Encode(t *testing.T) {
	v := validSubmission()
	v.Company = "Muster AG"
	got := v.Encode()

	want := url.Values{
		"form-name": {"contact"},
		"bot-field": {""},
		"name":      {"Anna Muster"},
		"company":   {"Muster AG"},
		"email":     {"anna@example.ch"},
		"phone":     {""},
		"subject":   {"Offertanfrage"},
		"message":   {"Bitte um Offerte."},
		"privacy":   {"on"},
	}
	assert.Equal(t, want, got)
}

func TestSubmission_EncodeDefaultsFormName(t *testing.T) {
	assert.Equal(t, DefaultFormName, Submission{}.Encode().Get("form-name"))
}

func TestFromValues(t *testing.T) {
	v := url.Values{
		"name":    {"  Anna  "},
		"email":   {"anna@example.ch"},
		"subject": {"Bewerbung"},
		"message": {"Hallo"},
		"privacy": {"on"},
	}
	got := FromValues(v)
	assert.Equal(t, "Anna", got.Name)
	assert.Equal(t, DefaultFormName, got.FormName)
	assert.True(t, got.Privacy)
	assert.False(t, got.IsSpam())

	v.Set("bot-field", "http://spam.example")
	assert.True(t, FromValues(v).IsSpam())
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		mutate   func(*Submission)
		subjects []string
		fields   []string
	}{
		{"valid", func(*Submission) {}, nil, nil},
		{"missing name", func(s *Submission) { s.Name = "" }, nil, []string{"name"}},
		{"missing email", func(s *Submission) { s.Email = "" }, nil, []string{"email"}},
		{"bad email", func(s *Submission) { s.Email = "not-an-address" }, nil, []string{"email"}},
		{"missing subject", func(s *Submission) { s.Subject = "" }, nil, []string{"subject"}},
		{"unknown subject", func(s *Submission) { s.Subject = "Werbung" }, nil, []string{"subject"}},
		{"custom subject", func(s *Submission) { s.Subject = "Lehrstelle" }, []string{"Lehrstelle"}, nil},
		{"missing message", func(s *Submission) { s.Message = "" }, nil, []string{"message"}},
		{"no consent", func(s *Submission) { s.Privacy = false }, nil, []string{"privacy"}},
		{"optional fields empty", func(s *Submission) { s.Company, s.Phone = "", "" }, nil, nil},
		{"everything missing", func(s *Submission) { *s = Submission{} }, nil, []string{"name", "email", "subject", "message", "privacy"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sub := validSubmission()
			tt.mutate(&sub)
			errs := Validate(sub, tt.subjects)
			if len(tt.fields) == 0 {
				assert.Nil(t, errs)
				return
			}
			assert.Len(t, errs, len(tt.fields))
			for _, f := range tt.fields {
				assert.Contains(t, errs, f)
			}
		})
	}
}
