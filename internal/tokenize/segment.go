package tokenize

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"gopkg.in/neurosnap/sentences.v1"
	"gopkg.in/neurosnap/sentences.v1/english"
)

// Segmenter splits a document into sentence surface texts, in order.
type Segmenter interface {
	Segment(text string) []string
}

// English segments with the pre-trained English Punkt model.
type English struct {
	tokenizer *sentences.DefaultSentenceTokenizer
}

// NewEnglish loads the English Punkt model.
func NewEnglish() (*English, error) {
	tokenizer, err := english.NewSentenceTokenizer(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to load English sentence model: %w", err)
	}
	return &English{tokenizer: tokenizer}, nil
}

// Segment implements Segmenter.
func (e *English) Segment(text string) []string {
	parts := e.tokenizer.Tokenize(text)
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		out = append(out, p.Text)
	}
	return out
}

// RuleSegmenter breaks on terminal punctuation clusters (. ? ! …) followed by
// whitespace and an uppercase letter, and on blank lines. A dot after a known
// abbreviation or a single-letter initial does not end a sentence.
type RuleSegmenter struct {
	abbreviations map[string]bool
}

// NewRuleSegmenter returns a segmenter that ignores dots after the given
// lower-case abbreviations (written without the trailing dot).
func NewRuleSegmenter(abbreviations []string) *RuleSegmenter {
	set := make(map[string]bool, len(abbreviations))
	for _, a := range abbreviations {
		set[strings.ToLower(a)] = true
	}
	return &RuleSegmenter{abbreviations: set}
}

// NewUkrainian returns the rule segmenter configured for Ukrainian.
func NewUkrainian() *RuleSegmenter {
	return NewRuleSegmenter(ukrainianAbbreviations)
}

var ukrainianAbbreviations = []string{
	"т", "д", "ін", "п", "ст", "р", "рр", "с", "см", "див", "напр", "тис",
	"млн", "млрд", "грн", "коп", "вул", "просп", "м", "обл", "проф", "акад",
	"доц", "ім", "ред", "вид", "кн", "гл", "мал", "табл", "пор",
}

// Segment implements Segmenter.
func (rs *RuleSegmenter) Segment(text string) []string {
	var out []string
	start := 0

	i := 0
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])

		// Blank line.
		if r == '\n' {
			j := i + size
			for j < len(text) && (text[j] == ' ' || text[j] == '\t' || text[j] == '\r') {
				j++
			}
			if j < len(text) && text[j] == '\n' {
				for j < len(text) && unicode.IsSpace(rune(text[j])) {
					j++
				}
				out = append(out, text[start:j])
				start = j
				i = j
				continue
			}
		}

		if r == '.' || r == '?' || r == '!' || r == '…' {
			if r == '.' && rs.abbreviationAt(text, i) {
				i += size
				continue
			}

			j := i + size
			for j < len(text) {
				nr, ns := utf8.DecodeRuneInString(text[j:])
				if nr != '.' && nr != '?' && nr != '!' && nr != '…' {
					break
				}
				j += ns
			}
			j = consumeClosers(text, j)

			if followedBySentenceStart(text, j) {
				out = append(out, text[start:j])
				start = j
			}
			i = j
			continue
		}

		i += size
	}

	if start < len(text) {
		out = append(out, text[start:])
	}
	return out
}

// abbreviationAt reports whether the dot at dotPos closes a known
// abbreviation or an initial such as "Т." in "Т. Шевченко".
func (rs *RuleSegmenter) abbreviationAt(text string, dotPos int) bool {
	begin := dotPos
	for begin > 0 {
		r, size := utf8.DecodeLastRuneInString(text[:begin])
		if !unicode.IsLetter(r) {
			break
		}
		begin -= size
	}
	word := text[begin:dotPos]
	if word == "" {
		return false
	}

	if utf8.RuneCountInString(word) == 1 {
		r, _ := utf8.DecodeRuneInString(word)
		if unicode.IsUpper(r) {
			return true
		}
	}

	return rs.abbreviations[strings.ToLower(word)]
}

// consumeClosers skips closing quotes and brackets that belong to the
// sentence just ended.
func consumeClosers(text string, pos int) int {
	for pos < len(text) {
		r, size := utf8.DecodeRuneInString(text[pos:])
		if r != '"' && r != '»' && r != '”' && r != '’' && r != ')' && r != ']' {
			break
		}
		pos += size
	}
	return pos
}

// followedBySentenceStart reports whether pos is followed by whitespace and
// then an uppercase letter or digit, optionally after opening quotes or a
// dash.
func followedBySentenceStart(text string, pos int) bool {
	i := pos
	foundSpace := false
	for i < len(text) {
		r, size := utf8.DecodeRuneInString(text[i:])
		switch {
		case unicode.IsSpace(r):
			foundSpace = true
		case r == '"' || r == '«' || r == '„' || r == '“' || r == '(' || r == '—' || r == '–' || r == '-':
			if !foundSpace {
				return false
			}
		default:
			return foundSpace && (unicode.IsUpper(r) || unicode.IsDigit(r))
		}
		i += size
	}
	return false
}
