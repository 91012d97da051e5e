package lexicon

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultLexicon_CoversEveryCategory(t *testing.T) {
	lex := Default()

	coverage := lex.Coverage()
	for _, cat := range Categories {
		assert.Greaterf(t, coverage[cat], 0, "category %s has no entries", cat)
	}
}

func TestNew_RejectsUncoveredCategory(t *testing.T) {
	// One entry per category except Rights.
	var entries []Entry
	for _, e := range DefaultEntries {
		if e.Category != Rights {
			entries = append(entries, e)
		}
	}

	_, err := New(entries)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rights")
}

func TestNew_RejectsMalformedEntries(t *testing.T) {
	tests := []struct {
		name  string
		entry Entry
	}{
		{"empty phrase", Entry{Phrase: "  ", Category: Justice, Weight: 1}},
		{"zero weight", Entry{Phrase: "justice", Category: Justice, Weight: 0}},
		{"negative weight", Entry{Phrase: "justice", Category: Justice, Weight: -0.5}},
		{"unknown category", Entry{Phrase: "justice", Category: "tax", Weight: 1}},
		{"sentinel category", Entry{Phrase: "justice", Category: Unclassified, Weight: 1}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entries := append([]Entry{}, DefaultEntries...)
			entries = append(entries, tt.entry)
			_, err := New(entries)
			assert.Error(t, err)
		})
	}
}

func TestNew_RejectsEmptyTable(t *testing.T) {
	_, err := New(nil)
	assert.Error(t, err)
}

func TestVersion_IndependentOfEntryOrder(t *testing.T) {
	a, err := New(DefaultEntries)
	require.NoError(t, err)

	reversed := make([]Entry, len(DefaultEntries))
	for i, e := range DefaultEntries {
		reversed[len(DefaultEntries)-1-i] = e
	}
	b, err := New(reversed)
	require.NoError(t, err)

	assert.Equal(t, a.Version(), b.Version())
}

func TestVersion_ChangesWithContents(t *testing.T) {
	a := Default()

	tweaked := append([]Entry{}, DefaultEntries...)
	tweaked[0].Weight = 2.0
	b, err := New(tweaked)
	require.NoError(t, err)

	assert.NotEqual(t, a.Version(), b.Version())
}

func TestPriority_OrderIsStable(t *testing.T) {
	assert.Equal(t, 0, Priority(Justice))
	assert.Equal(t, 4, Priority(Contract))
	assert.Equal(t, len(Categories), Priority(Unclassified))

	// The tie-break contract: declaration order, Justice first.
	require.Equal(t, Justice, Categories[0])
	require.Equal(t, Rights, Categories[len(Categories)-1])
}

func TestEntriesFor(t *testing.T) {
	lex := Default()
	for _, e := range lex.EntriesFor(Evidence) {
		assert.Equal(t, Evidence, e.Category)
	}
	assert.NotEmpty(t, lex.EntriesFor(Evidence))
}
