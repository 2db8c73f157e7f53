// Package tokenize splits documents into sentences and normalized tokens.
//
// English sentences are segmented with the Punkt model from
// gopkg.in/neurosnap/sentences.v1; Ukrainian sentences use a rule-based
// segmenter. Word tokens are produced by a rune-by-rune scanner shared by all
// languages and normalized with Normalize.
//
// All exported types are safe for concurrent use once constructed.
package tokenize

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/norm"
)

// Kind classifies a token.
type Kind uint8

const (
	Word        Kind = iota // Letters, optionally joined by hyphens or apostrophes
	Number                  // Digits with optional inner separators
	Punctuation             // Punctuation marks
	Symbol                  // Everything else that is not whitespace
)

// String returns the name of the kind.
func (k Kind) String() string {
	switch k {
	case Word:
		return "Word"
	case Number:
		return "Number"
	case Punctuation:
		return "Punctuation"
	case Symbol:
		return "Symbol"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Token is a normalized unit of a sentence.
type Token struct {
	Text string // lower-cased, NFC-normalized surface text
	Stem string // stemmed form; empty unless stemming is enabled
	Kind Kind
}

// Key returns the form used for frequency counting: the stem when present,
// the normalized text otherwise.
func (t Token) Key() string {
	if t.Stem != "" {
		return t.Stem
	}
	return t.Text
}

// Sentence is an ordered unit of tokens plus its original surface text.
type Sentence struct {
	Index  int     // position in the document, starting at 0
	Text   string  // surface text, trimmed of surrounding whitespace
	Tokens []Token // tokens in order of appearance
}

var apostrophes = strings.NewReplacer("’", "'", "ʼ", "'")

// Normalize lower-cases s, unifies apostrophes (U+2019 and U+02BC become
// U+0027) and applies Unicode NFC. Surrounding whitespace is removed.
func Normalize(s string) string {
	s = strings.TrimSpace(s)
	s = apostrophes.Replace(s)
	return norm.NFC.String(strings.ToLower(s))
}
