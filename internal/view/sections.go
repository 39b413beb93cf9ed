package view

import (
	"context"
	"io"
	"log/slog"

	"github.com/a-h/templ"

	"github.com/schaltkraft/website/internal/content"
)

// RenderContext carries per-request state blocks may need.
type RenderContext struct {
	Form FormState
	Log  *slog.Logger
}

type blockRenderer func(b content.Block, rc RenderContext) (templ.Component, bool)

// typed adapts a renderer for payload T; blocks whose value is not a T are
// reported as unrenderable.
func typed[T any](render func(T, RenderContext) templ.Component) blockRenderer {
	return func(b content.Block, rc RenderContext) (templ.Component, bool) {
		v, ok := content.Payload[T](b)
		if !ok {
			return nil, false
		}
		return render(v, rc), true
	}
}

var renderers = map[string]blockRenderer{
	content.KindHero: typed(func(v content.Hero, _ RenderContext) templ.Component {
		return Hero(v)
	}),
	content.KindIntro: typed(func(v content.Intro, _ RenderContext) templ.Component {
		return Intro(v)
	}),
	content.KindValues: typed(func(v content.Values, _ RenderContext) templ.Component {
		return Values(v)
	}),
	content.KindText: typed(func(v content.Text, _ RenderContext) templ.Component {
		return Text(v)
	}),
	content.KindContactForm: typed(func(v content.ContactForm, rc RenderContext) templ.Component {
		return ContactFormBlock(v, rc.Form)
	}),
	content.KindContactTeaser: typed(func(v content.ContactTeaser, rc RenderContext) templ.Component {
		return ContactTeaserBlock(v, rc.Form)
	}),
}

// Sections renders blocks top to bottom through their discriminant's
// renderer. Blocks with unknown tags or mismatched payloads are skipped.
func Sections(blocks []content.Block, rc RenderContext) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		for i, b := range blocks {
			render, ok := renderers[b.Discriminant]
			var c templ.Component
			if ok {
				c, ok = render(b, rc)
			}
			if !ok {
				if rc.Log != nil {
					rc.Log.Warn("skipping unrenderable block", "index", i, "discriminant", b.Discriminant)
				}
				continue
			}
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}
		return nil
	})
}
