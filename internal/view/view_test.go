package view

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/a-h/templ"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/schaltkraft/website/internal/contact"
	"github.com/schaltkraft/website/internal/content"
)

func render(t *testing.T, c templ.Component) string {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, c.Render(context.Background(), &buf))
	return buf.String()
}

func discardRC() RenderContext {
	return RenderContext{Log: slog.New(slog.NewTextHandler(io.Discard, nil))}
}

func TestJobContentEmptyDescription(t *testing.T) {
	assert.Empty(t, render(t, JobContent("")))
	assert.Empty(t, render(t, JobContent("  \n ")))
}

func TestJobContentSections(t *testing.T) {
	desc := `<p>Wir wachsen.</p><h2>Deine Aufgaben</h2><ul><li>Planen &amp; bauen</li></ul><h3>Was wir bieten</h3><p>Viel.</p>`
	out := render(t, JobContent(desc))

	assert.Contains(t, out, `<p>Wir wachsen.</p>`)
	assert.Contains(t, out, `<ul><li>Planen &amp; bauen</li></ul>`, "section bodies pass through verbatim")
	assert.Contains(t, out, `data-icon="target"`)
	assert.Contains(t, out, `data-icon="gift"`)
	assert.Contains(t, out, `>Deine Aufgaben</h3>`)
	assert.Less(t, strings.Index(out, "Deine Aufgaben"), strings.Index(out, "Was wir bieten"))
}

func TestJobContentEscapesTitles(t *testing.T) {
	out := render(t, JobContent(`<h2>A &lt;b&gt; B</h2><p>x</p>`))
	assert.Contains(t, out, `>A &lt;b&gt; B</h3>`)
	assert.NotContains(t, out, `<b>`)
}

func TestHeroOrFallback(t *testing.T) {
	out := render(t, ServicesPage(nil, nil, discardRC()))
	assert.Contains(t, out, `data-fallback="hero"`)
	assert.Contains(t, out, FallbackServicesHeadline)

	page := &content.Page{Blocks: []content.Block{
		{Discriminant: content.KindHero, Value: content.Hero{Headline: "Strom & mehr"}},
	}}
	out = render(t, ServicesPage(page, nil, discardRC()))
	assert.NotContains(t, out, `data-fallback="hero"`)
	assert.Contains(t, out, "Strom &amp; mehr")
}

func TestServicesPageOrder(t *testing.T) {
	page := &content.Page{Blocks: []content.Block{
		{Discriminant: content.KindValues, Value: content.Values{Headline: "Werte"}},
		{Discriminant: content.KindIntro, Value: content.Intro{Headline: "Erstes Intro"}},
		{Discriminant: content.KindText, Value: content.Text{Headline: "Nicht hier"}},
		{Discriminant: content.KindIntro, Value: content.Intro{Headline: "Zweites Intro"}},
	}}
	services := []content.Service{{Slug: "solar", Title: "Solaranlagen", ShortDescription: "PV"}}
	out := render(t, ServicesPage(page, services, discardRC()))

	first := strings.Index(out, "Erstes Intro")
	second := strings.Index(out, "Zweites Intro")
	grid := strings.Index(out, "Solaranlagen")
	values := strings.Index(out, "Werte")
	require.True(t, first >= 0 && second >= 0 && grid >= 0 && values >= 0, out)
	assert.Less(t, first, second)
	assert.Less(t, second, grid)
	assert.Less(t, grid, values)
	assert.NotContains(t, out, "Nicht hier")
	assert.Contains(t, out, `href="/dienstleistungen/solar"`)
}

func TestServicesGridIcon(t *testing.T) {
	out := render(t, ServicesGrid([]content.Service{
		{Slug: "a", Title: "Mit Bild", Icon: "/img/a.jpg"},
		{Slug: "b", Title: "Ohne Bild"},
	}))
	assert.Equal(t, 1, strings.Count(out, "<img"))
	assert.Contains(t, out, `src="/img/a.jpg"`)
}

func TestSectionsSkipsUnknown(t *testing.T) {
	blocks := []content.Block{
		{Discriminant: "carousel", Value: map[string]any{"x": 1}},
		{Discriminant: content.KindText, Value: content.Text{Headline: "Hallo"}},
		{Discriminant: content.KindHero, Value: "not a hero"},
	}
	out := render(t, Sections(blocks, discardRC()))
	assert.Contains(t, out, "Hallo")
	assert.NotContains(t, out, "carousel")
	assert.NotContains(t, out, "not a hero")
}

func TestSectionsNilLogger(t *testing.T) {
	blocks := []content.Block{{Discriminant: "unknown"}}
	assert.Empty(t, render(t, Sections(blocks, RenderContext{})))
}

func TestContactPageDefaultForm(t *testing.T) {
	out := render(t, ContactPage(nil, discardRC()))
	assert.Contains(t, out, FallbackContactHeadline)
	assert.Contains(t, out, `id="kontaktformular"`)
	for _, s := range contact.DefaultSubjects {
		assert.Contains(t, out, templ.EscapeString(s))
	}
}

func TestContactFormCustomSubjects(t *testing.T) {
	page := &content.Page{Blocks: []content.Block{
		{Discriminant: content.KindContactForm, Value: content.ContactForm{Subjects: []string{"Nur das"}}},
	}}
	out := render(t, ContactPage(page, discardRC()))
	assert.Contains(t, out, `<option value="Nur das"`)
	assert.NotContains(t, out, "Offertanfrage")
}

func TestContactFormStates(t *testing.T) {
	tests := []struct {
		name    string
		state   FormState
		want    []string
		notWant []string
	}{
		{
			name:    "idle",
			state:   FormState{},
			want:    []string{`data-status="idle"`, `name="bot-field"`, `value="contact"`, ">Nachricht senden"},
			notWant: []string{" disabled>"},
		},
		{
			name:  "submitting disables button",
			state: FormState{Status: contact.StatusSubmitting},
			want:  []string{" disabled>Wird gesendet..."},
		},
		{
			name:    "success",
			state:   FormState{Status: contact.StatusSuccess},
			want:    []string{`data-status="success"`, `name="action" value="reset"`, "Neue Nachricht senden"},
			notWant: []string{`name="message"`},
		},
		{
			name:  "error keeps values",
			state: FormState{Status: contact.StatusError, Values: contact.Submission{Name: "Anna <A>", Message: "Hallo"}},
			want: []string{
				`data-status="error"`, "Zurück zum Formular",
				`name="name" value="Anna &lt;A&gt;"`, `name="message" value="Hallo"`,
			},
		},
		{
			name: "field errors",
			state: FormState{
				Values: contact.Submission{Email: "kaputt"},
				Errors: contact.FieldErrors{"email": "Bitte gültige E-Mail angeben"},
			},
			want: []string{`aria-invalid="true"`, `id="email-error"`, `value="kaputt"`},
		},
		{
			name:  "compact",
			state: FormState{Compact: true},
			want:  []string{`rows="4"`, "grid grid-cols-1 gap-4"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out := render(t, ContactForm(tt.state))
			for _, w := range tt.want {
				assert.Contains(t, out, w)
			}
			for _, w := range tt.notWant {
				assert.NotContains(t, out, w)
			}
		})
	}
}

func TestLayout(t *testing.T) {
	out := render(t, Layout(Meta{SiteName: "Schaltkraft AG", Title: "Dienstleistungen", Path: "/dienstleistungen/solar"}, templ.Raw("<p>body</p>")))
	assert.Contains(t, out, "<title>Dienstleistungen | Schaltkraft AG</title>")
	assert.Contains(t, out, "<p>body</p>")
	assert.NotContains(t, out, "/_live")

	out = render(t, Layout(Meta{SiteName: "S", LiveReload: true}, templ.NopComponent))
	assert.Contains(t, out, "<title>S</title>")
	assert.Contains(t, out, "/_live")
}

func TestTextBlockMarkdown(t *testing.T) {
	out := render(t, Text(content.Text{Body: "**fett**"}))
	assert.Contains(t, out, "<strong>fett</strong>")
}

func TestJobList(t *testing.T) {
	assert.Contains(t, render(t, JobList(nil)), `data-empty="jobs"`)

	out := render(t, JobList([]content.Job{{Slug: "elektriker", Title: "Elektriker/in", Location: "Bern", Workload: "100%"}}))
	assert.Contains(t, out, `href="/jobs/elektriker"`)
	assert.Contains(t, out, "Bern · 100%")
}

func TestContactFormErrorsOnlyMarkInvalidFields(t *testing.T) {
	out := render(t, ContactForm(FormState{
		Status: contact.StatusIdle,
		Values: contact.Submission{Name: "Anna", Email: "kaputt"},
		Errors: contact.FieldErrors{"email": "Bitte eine gültige E-Mail-Adresse eingeben"},
	}))

	assert.Equal(t, 1, strings.Count(out, `aria-invalid="true"`))
	assert.Contains(t, out, `aria-describedby="email-error"`)
	assert.Contains(t, out, `name="name" class="w-full h-14 bg-zinc-900 border border-white/10`)
	assert.NotContains(t, out, `id="name-error"`)
}

func TestComponentsStopOnCanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	err := Layout(Meta{SiteName: "Schaltkraft AG"}, NotFoundPage()).Render(ctx, &buf)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Empty(t, buf.String())
}
