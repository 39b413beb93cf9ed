// Package content holds the CMS content model: pages made of tagged blocks,
// services and job postings.
package content

// Block discriminants understood by the site.
const (
	KindHero          = "hero"
	KindIntro         = "intro"
	KindValues        = "values"
	KindText          = "text"
	KindContactForm   = "contactForm"
	KindContactTeaser = "contactTeaser"
)

// Page is a CMS page. Blocks render top to bottom in order.
type Page struct {
	Slug        string  `yaml:"slug" json:"slug"`
	Title       string  `yaml:"title" json:"title"`
	Description string  `yaml:"description" json:"description"`
	Blocks      []Block `yaml:"blocks" json:"blocks"`
}

// Service is one entry of the services listing.
type Service struct {
	Slug             string `yaml:"slug" json:"slug"`
	Title            string `yaml:"title" json:"title"`
	ShortDescription string `yaml:"shortDescription" json:"shortDescription,omitempty"`
	Icon             string `yaml:"icon" json:"icon,omitempty"` // image URL
	Body             string `yaml:"body" json:"body,omitempty"` // markdown
	Order            int    `yaml:"order" json:"order,omitempty"`
}

// Job is a job posting. Description is trusted HTML from the CMS.
type Job struct {
	Slug                string `yaml:"slug" json:"slug"`
	Title               string `yaml:"title" json:"title"`
	Location            string `yaml:"location" json:"location,omitempty"`
	Workload            string `yaml:"workload" json:"workload,omitempty"`
	Description         string `yaml:"description" json:"description,omitempty"`
	DescriptionMarkdown string `yaml:"descriptionMarkdown" json:"descriptionMarkdown,omitempty"`
	Published           bool   `yaml:"published" json:"published"`
}

// Hero is the payload of a "hero" block.
type Hero struct {
	Headline    string `yaml:"headline" json:"headline"`
	Subheadline string `yaml:"subheadline" json:"subheadline,omitempty"`
	Image       string `yaml:"image" json:"image,omitempty"`
	CTALabel    string `yaml:"ctaLabel" json:"ctaLabel,omitempty"`
	CTAHref     string `yaml:"ctaHref" json:"ctaHref,omitempty"`
}

// Intro is the payload of an "intro" block. Text is markdown.
type Intro struct {
	Headline string `yaml:"headline" json:"headline"`
	Text     string `yaml:"text" json:"text"`
}

// ValueItem is a single unique selling point.
type ValueItem struct {
	Title string `yaml:"title" json:"title"`
	Text  string `yaml:"text" json:"text"`
}

// Values is the payload of a "values" block.
type Values struct {
	Headline string      `yaml:"headline" json:"headline"`
	Items    []ValueItem `yaml:"items" json:"items"`
}

// Text is the payload of a "text" block. Body is markdown.
type Text struct {
	Headline string `yaml:"headline" json:"headline,omitempty"`
	Body     string `yaml:"body" json:"body"`
}

// ContactForm is the payload of a "contactForm" block.
type ContactForm struct {
	Headline string   `yaml:"headline" json:"headline,omitempty"`
	Subjects []string `yaml:"subjects" json:"subjects,omitempty"`
}

// ContactTeaser is the payload of a "contactTeaser" block.
type ContactTeaser struct {
	Headline string `yaml:"headline" json:"headline,omitempty"`
	Text     string `yaml:"text" json:"text,omitempty"`
}
