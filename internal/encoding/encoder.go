package encoding

import (
	"mayalegal/internal/classify"
	"mayalegal/internal/lexicon"
)

// DefaultThreshold is the normalized score a category must exceed to be
// included alongside the winner in extended encoding.
const DefaultThreshold = 0.1

// Encoder translates a fusion decision into symbol tokens from both
// alphabets. Stateless; safe for concurrent use.
type Encoder struct {
	universal *Alphabet
	domain    *Alphabet
	threshold float64
}

// NewEncoder builds an encoder over the two alphabets. A threshold of 0
// or less falls back to DefaultThreshold; a threshold of 1 or more
// degenerates to best-category-only output.
func NewEncoder(universal, domain *Alphabet, threshold float64) *Encoder {
	if threshold <= 0 {
		threshold = DefaultThreshold
	}
	return &Encoder{universal: universal, domain: domain, threshold: threshold}
}

// Encode returns the token sequences for a fusion result, one per
// alphabet. The winning category always leads; every other category whose
// normalized score exceeds the threshold follows in descending score
// order, ties broken by the fixed priority order. Unclassified yields the
// none token from each alphabet.
func (e *Encoder) Encode(fusion classify.FusionResult) (universal, domain []string) {
	if fusion.Best == lexicon.Unclassified {
		return []string{e.universal.NoneToken()}, []string{e.domain.NoneToken()}
	}

	for _, cat := range fusion.Ranked() {
		if cat != fusion.Best && fusion.Distribution[cat] <= e.threshold {
			continue
		}
		universal = append(universal, e.universal.Token(cat))
		domain = append(domain, e.domain.Token(cat))
	}
	return universal, domain
}

// Threshold returns the configured inclusion threshold.
func (e *Encoder) Threshold() float64 { return e.threshold }
