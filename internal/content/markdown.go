package content

import (
	"bytes"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// md renders CMS markdown. Raw HTML inside markdown is trusted CMS content
// and passed through.
var md = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithUnsafe()),
)

// Markdown converts a markdown field to HTML. Conversion errors yield the
// source unchanged.
func Markdown(src string) string {
	if src == "" {
		return ""
	}
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return src
	}
	return buf.String()
}

// Normalize fills derived fields after loading: job descriptions authored
// in markdown are converted to HTML.
func (j *Job) Normalize() {
	if j.Description == "" && j.DescriptionMarkdown != "" {
		j.Description = Markdown(j.DescriptionMarkdown)
	}
}
