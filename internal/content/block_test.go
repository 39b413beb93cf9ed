package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const pageYAML = `
slug: services
title: Dienstleistungen
blocks:
  - discriminant: hero
    value:
      headline: Strom mit System
      ctaLabel: Kontakt
      ctaHref: /kontakt
  - discriminant: intro
    value:
      headline: Kompetenz
      text: "Seit **1982** für Sie da."
  - discriminant: values
    value:
      headline: Darum wir
      items:
        - title: Schnell
          text: Innert 24h
        - title: Lokal
          text: Aus der Region
  - discriminant: gallery
    value:
      images: [a.jpg]
  - discriminant: contactTeaser
`

func TestBlock_UnmarshalYAML(t *testing.T) {
	var page Page
	require.NoError(t, yaml.Unmarshal([]byte(pageYAML), &page))

	require.Len(t, page.Blocks, 5)
	assert.Equal(t, Hero{Headline: "Strom mit System", CTALabel: "Kontakt", CTAHref: "/kontakt"}, page.Blocks[0].Value)
	assert.Equal(t, Intro{Headline: "Kompetenz", Text: "Seit **1982** für Sie da."}, page.Blocks[1].Value)

	values, ok := Payload[Values](page.Blocks[2])
	require.True(t, ok)
	require.Len(t, values.Items, 2)
	assert.Equal(t, "Lokal", values.Items[1].Title)

	// Unknown tags keep their raw payload.
	assert.Equal(t, "gallery", page.Blocks[3].Discriminant)
	_, isMap := page.Blocks[3].Value.(map[string]any)
	assert.True(t, isMap)

	// A block without value gets a zero payload.
	assert.Equal(t, ContactTeaser{}, page.Blocks[4].Value)
}

func TestBlock_UnmarshalYAML_MissingDiscriminant(t *testing.T) {
	var page Page
	err := yaml.Unmarshal([]byte("blocks:\n  - value:\n      headline: x\n"), &page)
	assert.Error(t, err)
}

func TestBlock_UnmarshalJSON(t *testing.T) {
	data := `{"slug":"kontakt","blocks":[
		{"discriminant":"contactForm","value":{"headline":"Schreiben Sie uns","subjects":["Offerte","Support"]}},
		{"discriminant":"text","value":null},
		{"discriminant":"unknown","value":{"a":1}}
	]}`
	var page Page
	require.NoError(t, json.Unmarshal([]byte(data), &page))
	require.Len(t, page.Blocks, 3)

	form, ok := Payload[ContactForm](page.Blocks[0])
	require.True(t, ok)
	assert.Equal(t, []string{"Offerte", "Support"}, form.Subjects)
	assert.Equal(t, Text{}, page.Blocks[1].Value)
	assert.Equal(t, map[string]any{"a": float64(1)}, page.Blocks[2].Value)
}

func TestBlock_UnmarshalJSON_Invalid(t *testing.T) {
	var b Block
	assert.Error(t, json.Unmarshal([]byte(`{"value":{}}`), &b))
	assert.Error(t, json.Unmarshal([]byte(`{"discriminant":"hero","value":"oops"}`), &b))
}

func TestJob_Normalize(t *testing.T) {
	j := Job{DescriptionMarkdown: "## Aufgaben\n\n- Planen"}
	j.Normalize()
	assert.Contains(t, j.Description, "<h2>Aufgaben</h2>")

	kept := Job{Description: "<p>html</p>", DescriptionMarkdown: "ignored"}
	kept.Normalize()
	assert.Equal(t, "<p>html</p>", kept.Description)
}
