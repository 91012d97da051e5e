// Package classify implements the scoring half of the analysis pipeline:
// a SymbolMapper that turns free-form text into per-category raw scores,
// and a fusion step that turns scores into a confidence-ranked decision.
// Both are pure functions over the immutable lexicon, so a single instance
// is safe for concurrent use without locking.
package classify

import (
	"regexp"
	"strings"

	"mayalegal/internal/lexicon"
)

// ScoreVector holds the accumulated raw score per category for one text.
// A fresh vector is produced per call; every category is present, at zero
// when nothing matched.
type ScoreVector map[lexicon.Category]float64

// Total returns the sum of all raw scores.
func (s ScoreVector) Total() float64 {
	var total float64
	for _, v := range s {
		total += v
	}
	return total
}

type matcher struct {
	re       *regexp.Regexp
	category lexicon.Category
	weight   float64
}

// SymbolMapper scans text against the lexicon. Matching is
// case-insensitive and word-bounded; each occurrence of a phrase adds its
// weight again, so repeated vocabulary raises the score
// (frequency-sensitive). Distinct phrases may overlap and all count.
type SymbolMapper struct {
	matchers []matcher
}

// NewSymbolMapper compiles one word-boundary pattern per lexicon entry.
func NewSymbolMapper(lex *lexicon.Lexicon) *SymbolMapper {
	entries := lex.Entries()
	m := &SymbolMapper{matchers: make([]matcher, 0, len(entries))}
	for _, e := range entries {
		re := regexp.MustCompile(`\b` + regexp.QuoteMeta(strings.ToLower(e.Phrase)) + `\b`)
		m.matchers = append(m.matchers, matcher{re: re, category: e.Category, weight: e.Weight})
	}
	return m
}

// Map produces the raw score vector for text. Empty text or text with no
// lexicon hits yields an all-zero vector.
func (m *SymbolMapper) Map(text string) ScoreVector {
	scores := make(ScoreVector, len(lexicon.Categories))
	for _, cat := range lexicon.Categories {
		scores[cat] = 0
	}
	if text == "" {
		return scores
	}

	folded := strings.ToLower(text)
	for _, mt := range m.matchers {
		if hits := mt.re.FindAllStringIndex(folded, -1); hits != nil {
			scores[mt.category] += float64(len(hits)) * mt.weight
		}
	}
	return scores
}
