package segment

import (
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func buildDocument(intro string, titles []string) string {
	var sb strings.Builder
	sb.WriteString("<p>" + intro + "</p>")
	for i, title := range titles {
		level := "h2"
		if i%2 == 1 {
			level = "h3"
		}
		sb.WriteString("<" + level + ">" + title + "</" + level + ">")
		sb.WriteString("\n<p>" + title + "</p>\n")
	}
	return sb.String()
}

// TestSegmentProperties checks the partition invariants over generated documents.
func TestSegmentProperties(t *testing.T) {
	properties := gopter.NewProperties(nil)

	properties.Property("headerless input becomes intro", prop.ForAll(
		func(text string) bool {
			input := "<p>" + text + "</p>"
			res := Segment(input)
			return res.Intro == input && len(res.Sections) == 0
		},
		gen.AlphaString(),
	))

	properties.Property("intro and sections reconstruct the input", prop.ForAll(
		func(intro string, titles []string) bool {
			input := buildDocument(intro, titles)
			res := Segment(input)
			var sb strings.Builder
			sb.WriteString(res.Intro)
			for _, sec := range res.Sections {
				sb.WriteString(sec.Header)
				sb.WriteString(sec.Content)
			}
			return sb.String() == input
		},
		gen.AlphaString(),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("one section per header, titles in order", prop.ForAll(
		func(titles []string) bool {
			res := Segment(buildDocument("intro", titles))
			if len(res.Sections) != len(titles) {
				return false
			}
			for i, sec := range res.Sections {
				if sec.Title != titles[i] || sec.Icon != IconFor(titles[i]) {
					return false
				}
			}
			return true
		},
		gen.SliceOf(gen.AlphaString()),
	))

	properties.Property("segmenting twice yields the same result", prop.ForAll(
		func(intro string, titles []string) bool {
			input := buildDocument(intro, titles)
			a, b := Segment(input), Segment(input)
			if a.Intro != b.Intro || len(a.Sections) != len(b.Sections) {
				return false
			}
			for i := range a.Sections {
				if a.Sections[i] != b.Sections[i] {
					return false
				}
			}
			return true
		},
		gen.AlphaString(),
		gen.SliceOf(gen.AlphaString()),
	))

	properties.TestingRun(t)
}
