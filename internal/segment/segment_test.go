package segment

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestSegment_IntroAndSections(t *testing.T) {
	input := `<p>Wir suchen Verstärkung.</p>` +
		`<h2>Deine Mission</h2><p>Strom für alle.</p>` +
		`<h3>Deine Aufgaben</h3><ul><li>Planen</li><li>Bauen</li></ul>` +
		`<h2>Was wir bieten</h2><p>Gutes Team.</p>`

	got := Segment(input)

	want := Result{
		Intro: `<p>Wir suchen Verstärkung.</p>`,
		Sections: []Section{
			{Title: "Deine Mission", Content: `<p>Strom für alle.</p>`, Icon: IconBriefcase, Header: `<h2>Deine Mission</h2>`},
			{Title: "Deine Aufgaben", Content: `<ul><li>Planen</li><li>Bauen</li></ul>`, Icon: IconTarget, Header: `<h3>Deine Aufgaben</h3>`},
			{Title: "Was wir bieten", Content: `<p>Gutes Team.</p>`, Icon: IconGift, Header: `<h2>Was wir bieten</h2>`},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Segment() mismatch (-want +got):\n%s", diff)
	}
}

func TestSegment_EmptyInput(t *testing.T) {
	got := Segment("")
	if got.Intro != "" {
		t.Errorf("expected empty intro, got %q", got.Intro)
	}
	if len(got.Sections) != 0 {
		t.Errorf("expected no sections, got %d", len(got.Sections))
	}
	if !got.Empty() {
		t.Error("expected Empty() to be true for empty input")
	}
}

func TestSegment_NoHeaders(t *testing.T) {
	input := "<p>Nur ein Absatz.</p>\n<p>Und noch einer.</p>"
	got := Segment(input)
	if got.Intro != input {
		t.Errorf("expected intro %q, got %q", input, got.Intro)
	}
	if len(got.Sections) != 0 {
		t.Errorf("expected no sections, got %d", len(got.Sections))
	}
}

func TestSegment_TitleMarkupStripped(t *testing.T) {
	got := Segment(`<h2><strong>Mission</strong></h2><p>x</p>`)
	if len(got.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got.Sections))
	}
	sec := got.Sections[0]
	if sec.Title != "Mission" {
		t.Errorf("expected title %q, got %q", "Mission", sec.Title)
	}
	if sec.Icon != IconBriefcase {
		t.Errorf("expected icon %s, got %s", IconBriefcase, sec.Icon)
	}
	if sec.Header != `<h2><strong>Mission</strong></h2>` {
		t.Errorf("header markup altered: %q", sec.Header)
	}
}

func TestSegment_EmptyHeaderKept(t *testing.T) {
	got := Segment(`<h2>  </h2><p>body</p><h3></h3>`)
	if len(got.Sections) != 2 {
		t.Fatalf("expected 2 sections, got %d", len(got.Sections))
	}
	for i, sec := range got.Sections {
		if sec.Title != "" {
			t.Errorf("section %d: expected empty title, got %q", i, sec.Title)
		}
		if sec.Icon != IconCheck {
			t.Errorf("section %d: expected default icon, got %s", i, sec.Icon)
		}
	}
	if got.Sections[0].Content != "<p>body</p>" {
		t.Errorf("unexpected content %q", got.Sections[0].Content)
	}
}

func TestSegment_WhitespaceBeforeFirstHeaderDropped(t *testing.T) {
	got := Segment("\n   \n<h2>Profil</h2>\n<p>a</p>\n")
	if got.Intro != "" {
		t.Errorf("expected whitespace intro to be dropped, got %q", got.Intro)
	}
	if len(got.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got.Sections))
	}
	// Whitespace inside a section is part of its markup.
	if got.Sections[0].Content != "\n<p>a</p>\n" {
		t.Errorf("unexpected content %q", got.Sections[0].Content)
	}
}

func TestSegment_MarkupPassedThroughVerbatim(t *testing.T) {
	input := `<P CLASS="lead">Tom &amp; Jerry <script>alert(1)</script></P><H2 id="a">Kontakt &amp; Anfahrt</H2><p>Ruf an: <a href="tel:+41">+41</a></p>`
	got := Segment(input)
	if got.Intro != `<P CLASS="lead">Tom &amp; Jerry <script>alert(1)</script></P>` {
		t.Errorf("intro altered: %q", got.Intro)
	}
	if len(got.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got.Sections))
	}
	sec := got.Sections[0]
	if sec.Header != `<H2 id="a">Kontakt &amp; Anfahrt</H2>` {
		t.Errorf("header altered: %q", sec.Header)
	}
	if sec.Title != "Kontakt & Anfahrt" {
		t.Errorf("expected decoded title, got %q", sec.Title)
	}
	if sec.Icon != IconMail {
		t.Errorf("expected mail icon, got %s", sec.Icon)
	}
}

func TestSegment_DeeperHeadersAreBody(t *testing.T) {
	input := `<h1>Titel</h1><h2>Aufgaben</h2><h4>Detail</h4><p>x</p>`
	got := Segment(input)
	if got.Intro != `<h1>Titel</h1>` {
		t.Errorf("expected h1 to stay in intro, got %q", got.Intro)
	}
	if len(got.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got.Sections))
	}
	if got.Sections[0].Content != `<h4>Detail</h4><p>x</p>` {
		t.Errorf("unexpected content %q", got.Sections[0].Content)
	}
}

func TestSegment_NestedHeaderIsBoundary(t *testing.T) {
	got := Segment(`<div><h3>Profil</h3><p>x</p></div>`)
	if got.Intro != "<div>" {
		t.Errorf("unexpected intro %q", got.Intro)
	}
	if len(got.Sections) != 1 || got.Sections[0].Content != "<p>x</p></div>" {
		t.Errorf("unexpected sections %+v", got.Sections)
	}
}

func TestSegment_UnterminatedHeader(t *testing.T) {
	input := `<p>a</p><h2>Kein Ende`
	got := Segment(input)
	if got.Intro != input {
		t.Errorf("expected unterminated header to stay in intro, got %q", got.Intro)
	}
	if len(got.Sections) != 0 {
		t.Errorf("expected no sections, got %d", len(got.Sections))
	}
}

func TestSegment_MismatchedCloseEndsHeader(t *testing.T) {
	got := Segment(`<h2>Was wir bieten</h3><p>x</p>`)
	if len(got.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got.Sections))
	}
	if got.Sections[0].Title != "Was wir bieten" {
		t.Errorf("unexpected title %q", got.Sections[0].Title)
	}
}

func TestSegment_Idempotent(t *testing.T) {
	input := `<p>i</p><h2>Mission</h2><p>a</p><h3>Kontakt</h3>`
	first := Segment(input)
	second := Segment(input)
	if diff := cmp.Diff(first, second, cmpopts.EquateEmpty()); diff != "" {
		t.Errorf("Segment not idempotent (-first +second):\n%s", diff)
	}
}

func TestSegment_Reconstructs(t *testing.T) {
	input := "<p>Intro</p>\n<h2>Mission</h2>\n<p>a</p>\n<h3 class=\"x\">Profil</h3><ul><li>b</li></ul>"
	got := Segment(input)
	var sb strings.Builder
	sb.WriteString(got.Intro)
	for _, sec := range got.Sections {
		sb.WriteString(sec.Header)
		sb.WriteString(sec.Content)
	}
	if sb.String() != input {
		t.Errorf("reconstruction mismatch:\nwant %q\ngot  %q", input, sb.String())
	}
}

func TestSegment_TrailingIncompleteTagKept(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{"after section", "<p>Intro</p><h2>A</h2><p>body</p><div"},
		{"in intro", "<p>Intro</p><span class=\"x"},
		{"inside unterminated header", "<p>a</p><h2>Titel<sp"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Segment(tt.input)
			var sb strings.Builder
			sb.WriteString(got.Intro)
			for _, sec := range got.Sections {
				sb.WriteString(sec.Header)
				sb.WriteString(sec.Content)
			}
			if sb.String() != tt.input {
				t.Errorf("reconstruction mismatch:\nwant %q\ngot  %q", tt.input, sb.String())
			}
		})
	}

	got := Segment("<p>Intro</p><h2>A</h2><p>body</p><div")
	if len(got.Sections) != 1 || got.Sections[0].Content != "<p>body</p><div" {
		t.Errorf("unexpected sections %+v", got.Sections)
	}
}

func TestSegment_MultiLineHeader(t *testing.T) {
	got := Segment("<p>i</p><h2>\n  Deine\n  Aufgaben\n</h2><p>x</p>")
	if len(got.Sections) != 1 {
		t.Fatalf("expected 1 section, got %d", len(got.Sections))
	}
	if got.Sections[0].Title != "Deine\n  Aufgaben" {
		t.Errorf("unexpected title %q", got.Sections[0].Title)
	}
	if got.Sections[0].Icon != IconTarget {
		t.Errorf("unexpected icon %v", got.Sections[0].Icon)
	}
}
