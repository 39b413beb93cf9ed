package view

import (
	"github.com/a-h/templ"

	"github.com/schaltkraft/website/internal/content"
)

// Static headings used when a page has no hero block.
const (
	FallbackServicesHeadline = "Unsere Dienstleistungen"
	FallbackJobsHeadline     = "Offene Stellen"
	FallbackContactHeadline  = "Kontakt"
)

// heroOr renders the first hero block, or the static fallback heading.
func heroOr(blocks []content.Block, fallback string) templ.Component {
	if b, ok := content.Find(blocks, content.KindHero); ok {
		if h, ok := content.Payload[content.Hero](b); ok {
			return Hero(h)
		}
	}
	return HeroFallback(fallback)
}

// HomePage renders every block of the home page in order.
func HomePage(page *content.Page, rc RenderContext) templ.Component {
	return Sections(content.BlocksOf(page), rc)
}

// JobPage renders one posting.
func JobPage(j content.Job) templ.Component {
	return JobDetail(j)
}

// contactForms returns the page's contactForm blocks, or a default one.
func contactForms(blocks []content.Block) []content.Block {
	forms := content.Filter(blocks, content.KindContactForm)
	if len(forms) == 0 {
		forms = []content.Block{{Discriminant: content.KindContactForm, Value: content.ContactForm{}}}
	}
	return forms
}
