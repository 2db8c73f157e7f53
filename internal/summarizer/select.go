package summarizer

import (
	"cmp"
	"slices"
)

// SelectTop returns the k highest-scoring sentences, or all of them when
// there are fewer than k. Equal scores go to the earlier sentence. The result
// is ordered by descending score unless preserveOrder is set, in which case
// it follows the original sentence order. scored is not modified.
func SelectTop(scored []ScoredSentence, k int, preserveOrder bool) []ScoredSentence {
	if k <= 0 || len(scored) == 0 {
		return []ScoredSentence{}
	}

	ranked := slices.Clone(scored)
	slices.SortStableFunc(ranked, byScore)

	if k < len(ranked) {
		ranked = ranked[:k]
	}

	if preserveOrder {
		slices.SortFunc(ranked, byIndex)
	}
	return ranked
}

func byScore(a, b ScoredSentence) int {
	if c := cmp.Compare(b.Score, a.Score); c != 0 {
		return c
	}
	return byIndex(a, b)
}

func byIndex(a, b ScoredSentence) int {
	return cmp.Compare(a.Sentence.Index, b.Sentence.Index)
}
