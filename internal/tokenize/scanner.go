package tokenize

import (
	"unicode"
	"unicode/utf8"
)

// Words splits s into normalized tokens using a rune-by-rune state machine.
// Whitespace separates tokens and is never emitted.
//
// Rule priority (highest first):
//   - Number grouping (inner "." or "," followed by a digit)
//   - Word joining (single "-" between letters or digits, apostrophe between letters)
//   - Punctuation runs of the same rune ("--", "...")
//   - Default unicode classification
func Words(s string) []Token {
	tokens := make([]Token, 0, len(s)/5+1)

	i := 0
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])

		switch {
		case unicode.IsSpace(r):
			i += size

		case unicode.IsDigit(r):
			end := scanNumber(s, i)
			tokens = append(tokens, Token{Text: Normalize(s[i:end]), Kind: Number})
			i = end

		case unicode.IsLetter(r):
			end := scanWord(s, i)
			tokens = append(tokens, Token{Text: Normalize(s[i:end]), Kind: Word})
			i = end

		case unicode.IsPunct(r):
			end := i + size
			for end < len(s) {
				nr, ns := utf8.DecodeRuneInString(s[end:])
				if nr != r {
					break
				}
				end += ns
			}
			tokens = append(tokens, Token{Text: Normalize(s[i:end]), Kind: Punctuation})
			i = end

		default:
			tokens = append(tokens, Token{Text: Normalize(s[i : i+size]), Kind: Symbol})
			i += size
		}
	}

	return tokens
}

// scanNumber returns the end of the number starting at pos. Inner dots and
// commas are kept when a digit follows them ("3.14", "1,000").
func scanNumber(s string, pos int) int {
	i := pos
	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		if unicode.IsDigit(r) {
			i += size
			continue
		}
		if (r == '.' || r == ',') && i+size < len(s) {
			nr, _ := utf8.DecodeRuneInString(s[i+size:])
			if unicode.IsDigit(nr) {
				i += size
				continue
			}
		}
		break
	}
	return i
}

// scanWord returns the end of the word starting at pos. A word begins with a
// letter and may contain digits, combining marks, single hyphens between
// letters or digits, and apostrophes (U+0027, U+2019, U+02BC) between
// letters.
func scanWord(s string, pos int) int {
	i := consumeWordRun(s, pos)

	for i < len(s) {
		r, size := utf8.DecodeRuneInString(s[i:])
		next := i + size
		if next >= len(s) {
			break
		}
		nr, _ := utf8.DecodeRuneInString(s[next:])

		if r == '-' && (unicode.IsLetter(nr) || unicode.IsDigit(nr)) {
			i = consumeWordRun(s, next)
			continue
		}

		if isApostrophe(r) && unicode.IsLetter(nr) {
			pr, _ := utf8.DecodeLastRuneInString(s[pos:i])
			if unicode.IsLetter(pr) || unicode.Is(unicode.Mn, pr) {
				i = consumeWordRun(s, next)
				continue
			}
		}

		break
	}

	return i
}

// consumeWordRun consumes a contiguous run of letters, digits and
// non-spacing marks.
func consumeWordRun(s string, pos int) int {
	for pos < len(s) {
		r, size := utf8.DecodeRuneInString(s[pos:])
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) && !unicode.Is(unicode.Mn, r) {
			break
		}
		pos += size
	}
	return pos
}

func isApostrophe(r rune) bool {
	return r == '\'' || r == '’' || r == 'ʼ'
}
