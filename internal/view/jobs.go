package view

import (
	"strings"

	"github.com/a-h/templ"

	"github.com/schaltkraft/website/internal/segment"
)

// JobContent renders a job description as an intro followed by one card
// per section. An empty description renders nothing.
func JobContent(description string) templ.Component {
	if description == "" {
		return templ.NopComponent
	}
	res := segment.Segment(description)
	if res.Empty() {
		return templ.NopComponent
	}
	return jobSections(res)
}

func joinNonEmpty(sep string, parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, sep)
}
