// Package summarizer implements frequency-based extractive summarization.
//
// A document is split into sentences, every non-stop-word token is counted,
// counts are normalized by the most frequent word, each sentence is scored by
// the sum of its tokens' normalized frequencies, and the highest-scoring
// sentences are returned verbatim.
package summarizer

import (
	"strings"

	"github.com/localrivet/textsummary/internal/language"
)

const (
	// DefaultNumSentences is the summary length used when none is requested.
	DefaultNumSentences = 3

	// Version is reported in health reports.
	Version = "1.0.0"
)

// Summarizer defines the interface for summarizing text content.
type Summarizer interface {
	// Summarize returns a summary of text using the configured defaults.
	Summarize(text string) (string, error)

	// Initialize checks that the summarizer is ready to serve requests.
	Initialize() error
}

// Options controls a single summarization.
type Options struct {
	// NumSentences is the number of sentences to select; it must be positive.
	NumSentences int

	// PreserveDocumentOrder renders the selected sentences in their original
	// order instead of by descending score.
	PreserveDocumentOrder bool
}

// DefaultOptions returns DefaultNumSentences in score order.
func DefaultOptions() Options {
	return Options{NumSentences: DefaultNumSentences}
}

// Result is the outcome of a successful summarization.
type Result struct {
	Summary       string           `json:"summary"`
	Language      language.Code    `json:"language"`
	SentenceCount int              `json:"sentence_count"`
	Selected      []ScoredSentence `json:"-"`
}

// Render joins the surface text of the selected sentences with single spaces.
func Render(selected []ScoredSentence) string {
	parts := make([]string, len(selected))
	for i, s := range selected {
		parts[i] = s.Sentence.Text
	}
	return strings.Join(parts, " ")
}
