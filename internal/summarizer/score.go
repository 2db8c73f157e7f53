package summarizer

import "github.com/localrivet/textsummary/internal/tokenize"

// ScoredSentence pairs a sentence with its non-negative score.
type ScoredSentence struct {
	Sentence tokenize.Sentence
	Score    float64
}

// ScoreSentences scores each sentence as the sum of table values of all its
// tokens, repeats included. Tokens missing from the table add nothing, so a
// sentence of stop-words scores 0 and stays eligible for selection.
func ScoreSentences(table FrequencyTable, sentences []tokenize.Sentence) []ScoredSentence {
	scored := make([]ScoredSentence, len(sentences))
	for i, s := range sentences {
		var score float64
		for _, tok := range s.Tokens {
			score += table[tok.Key()]
		}
		scored[i] = ScoredSentence{Sentence: s, Score: score}
	}
	return scored
}
