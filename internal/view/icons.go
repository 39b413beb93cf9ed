package view

import (
	"github.com/a-h/templ"

	"github.com/schaltkraft/website/internal/segment"
)

const svgAttrs = `xmlns="http://www.w3.org/2000/svg" class="w-6 h-6 text-brand-orange" viewBox="0 0 24 24" fill="none" stroke="currentColor" stroke-width="2" stroke-linecap="round" stroke-linejoin="round" aria-hidden="true"`

var iconPaths = map[segment.Icon]string{
	segment.IconBriefcase: `<rect width="20" height="14" x="2" y="7" rx="2" ry="2"/><path d="M16 21V5a2 2 0 0 0-2-2h-4a2 2 0 0 0-2 2v16"/>`,
	segment.IconTarget:    `<circle cx="12" cy="12" r="10"/><circle cx="12" cy="12" r="6"/><circle cx="12" cy="12" r="2"/>`,
	segment.IconUser:      `<path d="M19 21v-2a4 4 0 0 0-4-4H9a4 4 0 0 0-4 4v2"/><circle cx="12" cy="7" r="4"/>`,
	segment.IconGift:      `<rect x="3" y="8" width="18" height="4" rx="1"/><path d="M12 8v13"/><path d="M19 12v7a2 2 0 0 1-2 2H7a2 2 0 0 1-2-2v-7"/>`,
	segment.IconMail:      `<rect width="20" height="16" x="2" y="4" rx="2"/><path d="m22 7-8.97 5.7a1.94 1.94 0 0 1-2.06 0L2 7"/>`,
	segment.IconCheck:     `<circle cx="12" cy="12" r="10"/><path d="m9 12 2 2 4-4"/>`,
}

// Icon renders the inline SVG for a section icon.
func Icon(i segment.Icon) templ.Component {
	path, ok := iconPaths[i]
	if !ok {
		path = iconPaths[segment.IconCheck]
	}
	return templ.Raw(`<svg data-icon="` + i.String() + `" ` + svgAttrs + `>` + path + `</svg>`)
}
