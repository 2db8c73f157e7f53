package tokenize

import (
	"fmt"
	"strings"

	"github.com/kljensen/snowball"
	"github.com/localrivet/textsummary/internal/language"
)

// Tokenizer splits a document into ordered sentences of normalized tokens.
type Tokenizer interface {
	Tokenize(text string, lang language.Code) ([]Sentence, error)
}

// Stemmer reduces a normalized word to its stem.
type Stemmer interface {
	Stem(word string) string
}

// SnowballStemmer stems words with the Snowball algorithm of one language.
type SnowballStemmer struct {
	language string
}

// NewSnowballStemmer returns a stemmer for a Snowball language name such as
// "english".
func NewSnowballStemmer(language string) *SnowballStemmer {
	return &SnowballStemmer{language: language}
}

// Stem implements Stemmer. Words the algorithm rejects are returned as is.
func (s *SnowballStemmer) Stem(word string) string {
	stemmed, err := snowball.Stem(word, s.language, true)
	if err != nil {
		return word
	}
	return stemmed
}

// resources holds the per-language tokenization collaborators.
type resources struct {
	segmenter Segmenter
	stemmer   Stemmer // nil disables stemming
}

// Standard is the default Tokenizer. It is built once and shared.
type Standard struct {
	languages map[language.Code]resources
}

var _ Tokenizer = (*Standard)(nil)

// Option configures a Standard tokenizer.
type Option func(*options)

type options struct {
	stem bool
}

// WithStemming enables Snowball stemming of English word tokens.
func WithStemming(enabled bool) Option {
	return func(o *options) {
		o.stem = enabled
	}
}

// New builds the tokenizer for every supported language.
func New(opts ...Option) (*Standard, error) {
	var o options
	for _, opt := range opts {
		opt(&o)
	}

	en, err := NewEnglish()
	if err != nil {
		return nil, err
	}

	english := resources{segmenter: en}
	if o.stem {
		english.stemmer = NewSnowballStemmer("english")
	}

	t := &Standard{languages: map[language.Code]resources{
		language.En: english,
		language.Uk: {segmenter: NewUkrainian()},
	}}

	for _, lang := range language.Supported() {
		if _, ok := t.languages[lang]; !ok {
			return nil, fmt.Errorf("no tokenizer resources for %s", lang)
		}
	}
	return t, nil
}

// NewWithSegmenter returns a Tokenizer that uses seg for every supported
// language, without stemming.
func NewWithSegmenter(seg Segmenter) *Standard {
	t := &Standard{languages: make(map[language.Code]resources)}
	for _, lang := range language.Supported() {
		t.languages[lang] = resources{segmenter: seg}
	}
	return t
}

// Tokenize implements Tokenizer. Sentences whose surface text is blank are
// dropped; Index counts the kept sentences only.
func (t *Standard) Tokenize(text string, lang language.Code) ([]Sentence, error) {
	res, ok := t.languages[lang]
	if !ok {
		return nil, fmt.Errorf("no tokenizer for language %s", lang)
	}

	segments := res.segmenter.Segment(text)
	sentences := make([]Sentence, 0, len(segments))
	for _, seg := range segments {
		surface := strings.TrimSpace(seg)
		if surface == "" {
			continue
		}

		tokens := Words(surface)
		if res.stemmer != nil {
			for i := range tokens {
				if tokens[i].Kind == Word {
					tokens[i].Stem = res.stemmer.Stem(tokens[i].Text)
				}
			}
		}

		sentences = append(sentences, Sentence{
			Index:  len(sentences),
			Text:   surface,
			Tokens: tokens,
		})
	}

	return sentences, nil
}
