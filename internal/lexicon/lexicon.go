// Package lexicon provides the stop-word and punctuation data the summarizer
// filters against.
//
// Sets returned by a Lexicon are shared across requests and must be treated
// as read-only.
package lexicon

import (
	"fmt"
	"slices"

	"github.com/localrivet/textsummary/internal/language"
	"github.com/localrivet/textsummary/internal/tokenize"
)

// Lexicon defines lookup data keyed by language.
type Lexicon interface {
	// StopWords returns the stop-word set for lang. Unknown languages get an
	// empty set.
	StopWords(lang language.Code) map[string]struct{}

	// Punctuation returns the punctuation set, shared by all languages.
	Punctuation() map[string]struct{}
}

// WordSource supplies extra stop-words for a language, e.g. a SQLiteStore.
type WordSource interface {
	Load(lang language.Code) ([]string, error)
}

// Static is an immutable Lexicon.
type Static struct {
	stopWords   map[language.Code]map[string]struct{}
	punctuation map[string]struct{}
}

var _ Lexicon = (*Static)(nil)

// StopWords implements Lexicon.
func (s *Static) StopWords(lang language.Code) map[string]struct{} {
	if set, ok := s.stopWords[lang]; ok {
		return set
	}
	return map[string]struct{}{}
}

// Punctuation implements Lexicon.
func (s *Static) Punctuation() map[string]struct{} {
	return s.punctuation
}

// Builtin returns the built-in English and Ukrainian lists.
func Builtin() *Static {
	return &Static{
		stopWords: map[language.Code]map[string]struct{}{
			language.En: toSet(englishStopWords),
			language.Uk: toSet(ukrainianStopWords),
		},
		punctuation: toSet(punctuationMarks),
	}
}

// Merge returns a new Static holding base's sets plus every word src yields
// for each supported language. base is not modified.
func Merge(base Lexicon, src WordSource) (*Static, error) {
	merged := &Static{
		stopWords:   make(map[language.Code]map[string]struct{}),
		punctuation: copySet(base.Punctuation()),
	}

	for _, lang := range language.Supported() {
		set := copySet(base.StopWords(lang))

		extra, err := src.Load(lang)
		if err != nil {
			return nil, fmt.Errorf("failed to load %s stop-words: %w", lang, err)
		}
		for _, w := range extra {
			if w = tokenize.Normalize(w); w != "" {
				set[w] = struct{}{}
			}
		}

		merged.stopWords[lang] = set
	}

	return merged, nil
}

// Words returns the stop-words of lang in sorted order.
func Words(l Lexicon, lang language.Code) []string {
	set := l.StopWords(lang)
	words := make([]string, 0, len(set))
	for w := range set {
		words = append(words, w)
	}
	slices.Sort(words)
	return words
}

func toSet(words []string) map[string]struct{} {
	set := make(map[string]struct{}, len(words))
	for _, w := range words {
		set[w] = struct{}{}
	}
	return set
}

func copySet(src map[string]struct{}) map[string]struct{} {
	dst := make(map[string]struct{}, len(src))
	for k := range src {
		dst[k] = struct{}{}
	}
	return dst
}
