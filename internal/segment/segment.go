// Package segment splits a rich-text job description into an introduction
// and a sequence of titled sections, using <h2> and <h3> headers as
// delimiters.
//
// Segmentation is a partition of the input: markup is never rewritten,
// sanitized or re-encoded. Input is not validated; on malformed markup the
// result is best-effort.
package segment

import (
	"strings"

	"golang.org/x/net/html"
)

// Section is one titled part of a segmented document.
type Section struct {
	Title   string `json:"title"`   // header text, markup stripped
	Content string `json:"content"` // raw markup following the header
	Icon    Icon   `json:"icon"`
	Header  string `json:"header"` // raw header markup, e.g. `<h2 class="x">Aufgaben</h2>`
}

// Result is the outcome of Segment.
type Result struct {
	Intro    string    `json:"intro"`
	Sections []Section `json:"sections"`
}

// Empty reports whether there is nothing to render.
func (r Result) Empty() bool {
	return r.Intro == "" && len(r.Sections) == 0
}

// Segment partitions markup into an intro and titled sections. It is total
// over any string and has no hidden state.
func Segment(markup string) Result {
	var (
		res      Result
		current  *Section
		pending  strings.Builder
		consumed int
	)

	// flush hands the markup collected since the last header to the open
	// section, or to the intro if no header has been seen yet.
	// Whitespace-only fragments never reach the intro.
	flush := func() {
		frag := pending.String()
		pending.Reset()
		switch {
		case current != nil:
			current.Content += frag
		case strings.TrimSpace(frag) != "":
			res.Intro += frag
		}
	}

	z := html.NewTokenizer(strings.NewReader(markup))
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			break
		}
		// Raw must be copied before TagName/Text mutate the buffer.
		raw := string(z.Raw())
		if tt == html.StartTagToken && isHeader(z) {
			header, title, closed := readHeader(z, raw)
			consumed += len(header)
			if !closed {
				// Unterminated header: keep it as plain body markup.
				pending.WriteString(header)
				continue
			}
			flush()
			if current != nil {
				res.Sections = append(res.Sections, *current)
			}
			current = &Section{
				Title:  title,
				Icon:   IconFor(title),
				Header: header,
			}
			continue
		}
		consumed += len(raw)
		pending.WriteString(raw)
	}
	// The tokenizer drops an incomplete tag at end of input.
	if consumed < len(markup) {
		pending.WriteString(markup[consumed:])
	}

	flush()
	if current != nil {
		res.Sections = append(res.Sections, *current)
	}
	return res
}

// isHeader reports whether the current tag is a section boundary. Only
// h2 and h3 qualify, wherever they are nested.
func isHeader(z *html.Tokenizer) bool {
	name, _ := z.TagName()
	return headingLevel(string(name)) > 0
}

func headingLevel(tag string) int {
	switch tag {
	case "h2":
		return 2
	case "h3":
		return 3
	}
	return 0
}

// readHeader consumes tokens up to the first closing </h2> or </h3>. It
// returns the raw header markup, the trimmed text inside it and whether a
// closing tag was found before the end of input.
func readHeader(z *html.Tokenizer, open string) (header, title string, closed bool) {
	var raw, text strings.Builder
	raw.WriteString(open)
	for {
		tt := z.Next()
		if tt == html.ErrorToken {
			return raw.String(), "", false
		}
		raw.Write(z.Raw())
		switch tt {
		case html.TextToken:
			text.Write(z.Text())
		case html.EndTagToken:
			name, _ := z.TagName()
			if headingLevel(string(name)) > 0 {
				return raw.String(), strings.TrimSpace(text.String()), true
			}
		}
	}
}
