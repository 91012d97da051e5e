package classify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mayalegal/internal/lexicon"
)

func newTestMapper(t *testing.T) *SymbolMapper {
	t.Helper()
	return NewSymbolMapper(lexicon.Default())
}

func TestMap_EmptyTextYieldsAllZeros(t *testing.T) {
	m := newTestMapper(t)

	scores := m.Map("")
	require.Len(t, scores, len(lexicon.Categories))
	for cat, score := range scores {
		assert.Zerof(t, score, "category %s expected 0", cat)
	}
	assert.Zero(t, scores.Total())
}

func TestMap_NoKeywordsYieldsAllZeros(t *testing.T) {
	m := newTestMapper(t)

	scores := m.Map("the quick brown fox jumps over the lazy dog")
	assert.Zero(t, scores.Total())
}

func TestMap_FrequencySensitive(t *testing.T) {
	m := newTestMapper(t)

	once := m.Map("the contract is signed")
	twice := m.Map("the contract references another contract")

	assert.Greater(t, twice[lexicon.Contract], once[lexicon.Contract])
	assert.InDelta(t, 2*once[lexicon.Contract], twice[lexicon.Contract], 1e-12)
}

func TestMap_CaseInsensitive(t *testing.T) {
	m := newTestMapper(t)

	lower := m.Map("justice for all")
	upper := m.Map("JUSTICE FOR ALL")
	assert.Equal(t, lower[lexicon.Justice], upper[lexicon.Justice])
	assert.Positive(t, lower[lexicon.Justice])
}

func TestMap_WordBoundaries(t *testing.T) {
	m := newTestMapper(t)

	// "lawyer" must not score as "law".
	scores := m.Map("the lawyer arrived")
	assert.Zero(t, scores[lexicon.Statute])

	scores = m.Map("the law requires it")
	assert.Positive(t, scores[lexicon.Statute])
}

func TestMap_PhraseMatch(t *testing.T) {
	m := newTestMapper(t)

	scores := m.Map("the burden of proof rests with the claimant")
	// Both the phrase "burden of proof" and the bare word "proof" hit, and
	// overlapping matches all count.
	assert.InDelta(t, 2*0.6, scores[lexicon.Evidence], 1e-12)
}

func TestMap_Deterministic(t *testing.T) {
	m := newTestMapper(t)

	text := "evidence of breach must be presented to the court"
	a := m.Map(text)
	b := m.Map(text)
	assert.Equal(t, a, b)
}
