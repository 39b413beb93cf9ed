package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleBlocks() []Block {
	return []Block{
		{Discriminant: KindIntro, Value: Intro{Headline: "first"}},
		{Discriminant: KindHero, Value: Hero{Headline: "hero one"}},
		{Discriminant: KindValues, Value: Values{Headline: "werte"}},
		{Discriminant: KindIntro, Value: Intro{Headline: "second"}},
		{Discriminant: KindHero, Value: Hero{Headline: "hero two"}},
	}
}

func TestFind_FirstMatch(t *testing.T) {
	b, ok := Find(sampleBlocks(), KindHero)
	require.True(t, ok)
	hero, ok := Payload[Hero](b)
	require.True(t, ok)
	assert.Equal(t, "hero one", hero.Headline)
}

func TestFind_EmptyBlocks(t *testing.T) {
	_, ok := Find(nil, KindHero)
	assert.False(t, ok)

	_, ok = Find([]Block{}, KindHero)
	assert.False(t, ok)

	_, ok = Find(BlocksOf(nil), KindHero)
	assert.False(t, ok)
}

func TestFilter_StableOrder(t *testing.T) {
	got := Filter(sampleBlocks(), KindIntro)
	require.Len(t, got, 2)
	assert.Equal(t, "first", got[0].Value.(Intro).Headline)
	assert.Equal(t, "second", got[1].Value.(Intro).Headline)
}

func TestFilter_MultipleDiscriminants(t *testing.T) {
	got := Filter(sampleBlocks(), KindValues, KindIntro)
	require.Len(t, got, 3)
	assert.Equal(t, KindIntro, got[0].Discriminant)
	assert.Equal(t, KindValues, got[1].Discriminant)
	assert.Equal(t, KindIntro, got[2].Discriminant)
}

func TestFilter_NoMatch(t *testing.T) {
	assert.Empty(t, Filter(sampleBlocks(), "gallery"))
	assert.Empty(t, Filter(nil, KindIntro))
	assert.Empty(t, Filter(sampleBlocks()))
}

func TestPayload_WrongType(t *testing.T) {
	_, ok := Payload[Hero](Block{Discriminant: KindHero, Value: map[string]any{}})
	assert.False(t, ok)
}
