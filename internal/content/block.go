package content

import (
	"encoding/json"
	"fmt"

	"gopkg.in/yaml.v3"
)

// Block is a tagged content block. Value holds the payload type registered
// for Discriminant, or a map[string]any for tags the site does not know.
type Block struct {
	Discriminant string `json:"discriminant"`
	Value        any    `json:"value"`
}

// newPayload returns a pointer to an empty payload for a known tag.
func newPayload(discriminant string) (any, bool) {
	switch discriminant {
	case KindHero:
		return &Hero{}, true
	case KindIntro:
		return &Intro{}, true
	case KindValues:
		return &Values{}, true
	case KindText:
		return &Text{}, true
	case KindContactForm:
		return &ContactForm{}, true
	case KindContactTeaser:
		return &ContactTeaser{}, true
	}
	return nil, false
}

// deref turns a payload pointer from newPayload into its value.
func deref(p any) any {
	switch v := p.(type) {
	case *Hero:
		return *v
	case *Intro:
		return *v
	case *Values:
		return *v
	case *Text:
		return *v
	case *ContactForm:
		return *v
	case *ContactTeaser:
		return *v
	}
	return p
}

// UnmarshalYAML decodes {discriminant, value} into the typed payload.
func (b *Block) UnmarshalYAML(node *yaml.Node) error {
	var raw struct {
		Discriminant string    `yaml:"discriminant"`
		Value        yaml.Node `yaml:"value"`
	}
	if err := node.Decode(&raw); err != nil {
		return fmt.Errorf("decode block: %w", err)
	}
	if raw.Discriminant == "" {
		return fmt.Errorf("decode block: missing discriminant (line %d)", node.Line)
	}
	b.Discriminant = raw.Discriminant

	p, ok := newPayload(raw.Discriminant)
	if !ok {
		var m map[string]any
		if raw.Value.Kind != 0 {
			if err := raw.Value.Decode(&m); err != nil {
				return fmt.Errorf("decode %s block: %w", raw.Discriminant, err)
			}
		}
		b.Value = m
		return nil
	}
	if raw.Value.Kind != 0 {
		if err := raw.Value.Decode(p); err != nil {
			return fmt.Errorf("decode %s block: %w", raw.Discriminant, err)
		}
	}
	b.Value = deref(p)
	return nil
}

// UnmarshalJSON decodes {discriminant, value} into the typed payload.
func (b *Block) UnmarshalJSON(data []byte) error {
	var raw struct {
		Discriminant string          `json:"discriminant"`
		Value        json.RawMessage `json:"value"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("decode block: %w", err)
	}
	if raw.Discriminant == "" {
		return fmt.Errorf("decode block: missing discriminant")
	}
	b.Discriminant = raw.Discriminant

	p, ok := newPayload(raw.Discriminant)
	if !ok {
		var m map[string]any
		if len(raw.Value) > 0 {
			if err := json.Unmarshal(raw.Value, &m); err != nil {
				return fmt.Errorf("decode %s block: %w", raw.Discriminant, err)
			}
		}
		b.Value = m
		return nil
	}
	if len(raw.Value) > 0 && string(raw.Value) != "null" {
		if err := json.Unmarshal(raw.Value, p); err != nil {
			return fmt.Errorf("decode %s block: %w", raw.Discriminant, err)
		}
	}
	b.Value = deref(p)
	return nil
}
