// Package view renders the site's pages and content blocks as templ
// components. The *.templ files are the sources; the *_templ.go files
// are generated from them.
//
// CMS markup (job descriptions, converted markdown) is trusted content and
// is written verbatim; every other string is escaped.
package view

//go:generate go run github.com/a-h/templ/cmd/templ@v0.3.906 generate

import "strings"

// Meta describes the document around a page body.
type Meta struct {
	SiteName    string
	Title       string
	Description string
	Path        string // current request path, for nav highlighting
	LiveReload  bool
	Stylesheet  string
}

var navItems = []struct{ label, href string }{
	{"Start", "/"},
	{"Dienstleistungen", "/dienstleistungen"},
	{"Jobs", "/jobs"},
	{"Kontakt", "/kontakt"},
}

const liveReloadScript = `<script>(()=>{const p=location.protocol==="https:"?"wss":"ws";` +
	`const s=new WebSocket(p+"://"+location.host+"/_live");s.onmessage=()=>location.reload();})();</script>`

func (m Meta) documentTitle() string {
	switch {
	case m.Title == "":
		return m.SiteName
	case m.SiteName == "":
		return m.Title
	}
	return m.Title + " | " + m.SiteName
}

func isActive(path, href string) bool {
	if href == "/" {
		return path == "/"
	}
	return path == href || strings.HasPrefix(path, href+"/")
}
