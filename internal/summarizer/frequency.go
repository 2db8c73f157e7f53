package summarizer

import (
	"unicode"

	"github.com/localrivet/textsummary/internal/tokenize"
)

// FrequencyTable maps a token key to its normalized frequency in (0, 1].
// The most frequent qualifying token maps to exactly 1.0.
type FrequencyTable map[string]float64

// BuildFrequencyTable counts every token of sentences that is not a
// stop-word, not in punctuation and not made only of punctuation or symbol
// runes, then divides each count by the largest one. No qualifying tokens
// yield an empty table.
func BuildFrequencyTable(sentences []tokenize.Sentence, stopWords, punctuation map[string]struct{}) FrequencyTable {
	counts := make(map[string]int)
	maxCount := 0

	for _, s := range sentences {
		for _, tok := range s.Tokens {
			if !qualifies(tok, stopWords, punctuation) {
				continue
			}
			key := tok.Key()
			counts[key]++
			if counts[key] > maxCount {
				maxCount = counts[key]
			}
		}
	}

	table := make(FrequencyTable, len(counts))
	if maxCount == 0 {
		return table
	}
	for key, n := range counts {
		table[key] = float64(n) / float64(maxCount)
	}
	return table
}

func qualifies(tok tokenize.Token, stopWords, punctuation map[string]struct{}) bool {
	if tok.Text == "" {
		return false
	}
	if _, ok := stopWords[tok.Text]; ok {
		return false
	}
	if _, ok := punctuation[tok.Text]; ok {
		return false
	}
	return !punctuationOnly(tok.Text)
}

func punctuationOnly(s string) bool {
	for _, r := range s {
		if !unicode.IsPunct(r) && !unicode.IsSymbol(r) {
			return false
		}
	}
	return true
}
