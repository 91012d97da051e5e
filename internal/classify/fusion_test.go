package classify

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mayalegal/internal/lexicon"
)

func zeroScores() ScoreVector {
	s := make(ScoreVector, len(lexicon.Categories))
	for _, cat := range lexicon.Categories {
		s[cat] = 0
	}
	return s
}

func TestFuse_AllZeroIsUnclassified(t *testing.T) {
	res := Fuse(zeroScores())

	assert.Equal(t, lexicon.Unclassified, res.Best)
	assert.Zero(t, res.Confidence)
	for cat, v := range res.Distribution {
		assert.Zerof(t, v, "distribution[%s]", cat)
	}
}

func TestFuse_DistributionSumsToOne(t *testing.T) {
	s := zeroScores()
	s[lexicon.Contract] = 2.4
	s[lexicon.Justice] = 1.0
	s[lexicon.Penalty] = 1.5

	res := Fuse(s)

	var sum float64
	for _, v := range res.Distribution {
		sum += v
	}
	assert.InDelta(t, 1.0, sum, 1e-9)
	assert.Equal(t, lexicon.Contract, res.Best)
	assert.InDelta(t, 2.4/4.9, res.Confidence, 1e-9)
}

func TestFuse_ConfidenceIsBestShare(t *testing.T) {
	s := zeroScores()
	s[lexicon.Rights] = 3.0
	s[lexicon.Evidence] = 1.0

	res := Fuse(s)
	assert.Equal(t, lexicon.Rights, res.Best)
	assert.InDelta(t, 0.75, res.Confidence, 1e-9)
	assert.True(t, res.Confidence >= 0 && res.Confidence <= 1)
}

func TestFuse_TieBreakFollowsPriorityOrder(t *testing.T) {
	// Statute precedes Penalty in the priority order; an exact tie must
	// always resolve to Statute regardless of how the vector was built.
	s := zeroScores()
	s[lexicon.Penalty] = 1.5
	s[lexicon.Statute] = 1.5

	for i := 0; i < 100; i++ {
		res := Fuse(s)
		require.Equal(t, lexicon.Statute, res.Best)
	}
}

func TestFuse_Deterministic(t *testing.T) {
	s := zeroScores()
	s[lexicon.Authority] = 1.6
	s[lexicon.Contract] = 1.6
	s[lexicon.Justice] = 0.2

	a := Fuse(s)
	b := Fuse(s)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("Fuse not deterministic (-a +b):\n%s", diff)
	}
	// Authority precedes Contract.
	assert.Equal(t, lexicon.Authority, a.Best)
}

func TestRanked_DescendingWithPriorityTies(t *testing.T) {
	s := zeroScores()
	s[lexicon.Contract] = 2.0
	s[lexicon.Justice] = 1.0
	s[lexicon.Rights] = 1.0

	res := Fuse(s)
	ranked := res.Ranked()

	require.Len(t, ranked, 3)
	assert.Equal(t, lexicon.Contract, ranked[0])
	// Justice and Rights tie; Justice has higher priority.
	assert.Equal(t, lexicon.Justice, ranked[1])
	assert.Equal(t, lexicon.Rights, ranked[2])
}

func TestRanked_EmptyForUnclassified(t *testing.T) {
	res := Fuse(zeroScores())
	assert.Empty(t, res.Ranked())
}

func TestFuse_NoNaNOnTinyScores(t *testing.T) {
	s := zeroScores()
	s[lexicon.Evidence] = math.SmallestNonzeroFloat64

	res := Fuse(s)
	assert.Equal(t, lexicon.Evidence, res.Best)
	assert.False(t, math.IsNaN(res.Confidence))
	assert.InDelta(t, 1.0, res.Confidence, 1e-9)
}
