package classify

import (
	"sort"

	"mayalegal/internal/lexicon"
)

// FusionResult is the normalized classification decision for one text.
type FusionResult struct {
	// Best is the selected category, or lexicon.Unclassified when nothing
	// matched.
	Best lexicon.Category `json:"best_category"`

	// Confidence is Best's share of the total weight, in [0,1]. Zero when
	// unclassified.
	Confidence float64 `json:"confidence"`

	// Distribution maps every category to its normalized score. It sums to
	// 1 when any keyword matched and is all-zero otherwise.
	Distribution map[lexicon.Category]float64 `json:"distribution"`
}

// Fuse normalizes a raw score vector into a distribution and selects the
// winning category. Exact ties resolve by the fixed priority order in
// lexicon.Categories, never by map iteration order, so the outcome is
// reproducible across runs.
func Fuse(scores ScoreVector) FusionResult {
	dist := make(map[lexicon.Category]float64, len(lexicon.Categories))
	for _, cat := range lexicon.Categories {
		dist[cat] = 0
	}

	total := scores.Total()
	if total == 0 {
		return FusionResult{Best: lexicon.Unclassified, Confidence: 0, Distribution: dist}
	}

	best := lexicon.Unclassified
	bestScore := -1.0
	for _, cat := range lexicon.Categories {
		norm := scores[cat] / total
		dist[cat] = norm
		// Strict > keeps the earliest (highest-priority) category on ties.
		if norm > bestScore {
			bestScore = norm
			best = cat
		}
	}

	return FusionResult{Best: best, Confidence: bestScore, Distribution: dist}
}

// Ranked returns the categories of a distribution in descending score
// order, ties broken by priority order. Zero-scored categories are
// excluded.
func (f FusionResult) Ranked() []lexicon.Category {
	var cats []lexicon.Category
	for _, cat := range lexicon.Categories {
		if f.Distribution[cat] > 0 {
			cats = append(cats, cat)
		}
	}
	sort.SliceStable(cats, func(i, j int) bool {
		si, sj := f.Distribution[cats[i]], f.Distribution[cats[j]]
		if si != sj {
			return si > sj
		}
		return lexicon.Priority(cats[i]) < lexicon.Priority(cats[j])
	})
	return cats
}
