package segment

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Icon is the visual category of a section, inferred from its title.
type Icon int

const (
	IconCheck Icon = iota // fallback
	IconBriefcase
	IconTarget
	IconUser
	IconGift
	IconMail
)

var iconNames = map[Icon]string{
	IconCheck:     "check",
	IconBriefcase: "briefcase",
	IconTarget:    "target",
	IconUser:      "user",
	IconGift:      "gift",
	IconMail:      "mail",
}

// String returns the lowercase category name.
func (i Icon) String() string {
	if name, ok := iconNames[i]; ok {
		return name
	}
	return iconNames[IconCheck]
}

// MarshalText implements encoding.TextMarshaler.
func (i Icon) MarshalText() ([]byte, error) {
	return []byte(i.String()), nil
}

// iconRules is evaluated top to bottom; the first keyword contained in the
// lowercased title decides the icon. Order matters for titles that contain
// more than one keyword.
var iconRules = []struct {
	keyword string
	icon    Icon
}{
	{"mission", IconBriefcase},
	{"aufgaben", IconTarget},
	{"profil", IconUser},
	{"mitbringst", IconUser},
	{"bieten", IconGift},
	{"kontakt", IconMail},
}

// IconFor maps a section title to its icon. Every title maps to exactly one
// icon; titles matching no keyword get IconCheck.
func IconFor(title string) Icon {
	// Casers carry state and must not be shared between goroutines.
	normalized := cases.Lower(language.German).String(title)
	for _, rule := range iconRules {
		if strings.Contains(normalized, rule.keyword) {
			return rule.icon
		}
	}
	return IconCheck
}
