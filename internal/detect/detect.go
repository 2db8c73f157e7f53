// Package detect identifies the natural language of input text.
//
// Detection uses a hybrid approach: the dominant script decides the candidate
// family (Cyrillic, Latin, or a single-language script such as Greek or Han),
// then language-specific letters and high-frequency function words are
// scored inside that family. The detector knows more languages than
// TextSummary summarizes: French text is reported as "fr", which the language
// gate rejects as unsupported rather than undetectable.
//
// Input longer than 1 MiB is truncated (rune-safe). Input with fewer than 10
// letter runes, or input whose two best candidates score the same, yields
// ErrUndetectable.
//
// ScriptDetector is stateless and safe for concurrent use.
package detect

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/localrivet/textsummary/internal/language"
)

// ErrUndetectable aliases the language gate's sentinel so callers can use
// errors.Is against either package.
var ErrUndetectable = language.ErrUndetectable

// Detector identifies the language of a text and returns its ISO 639-1 code.
type Detector interface {
	Detect(text string) (string, error)
}

// Result is one ranked candidate.
//
// Confidence is sum-normalized within the winning script family, so it is a
// relative strength, not a probability.
type Result struct {
	Lang       string  `json:"lang"`
	Confidence float64 `json:"confidence"`
}

const (
	maxInputBytes = 1 << 20 // 1 MiB
	minLetters    = 10      // minimum letter count for meaningful detection

	// markerWeight is the score of one language-specific letter relative to
	// one function-word hit.
	markerWeight = 0.5

	// asciiFallbackRatio is the share of ASCII letters above which unmarked
	// Latin text is taken as English.
	asciiFallbackRatio = 0.9

	// asciiFallbackScore is the confidence reported for the English fallback.
	asciiFallbackScore = 0.5
)

// ScriptDetector is the built-in Detector.
type ScriptDetector struct{}

// NewScriptDetector returns a ready detector.
func NewScriptDetector() *ScriptDetector {
	return &ScriptDetector{}
}

var _ Detector = (*ScriptDetector)(nil)

// Detect returns the ISO 639-1 code of the most likely language of text.
func (d *ScriptDetector) Detect(text string) (string, error) {
	results, err := d.DetectAll(text)
	if err != nil {
		return "", err
	}
	return results[0].Lang, nil
}

// DetectAll returns the candidates of the dominant script family ranked by
// descending confidence. The first result is strictly ahead of the second.
func (d *ScriptDetector) DetectAll(text string) ([]Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("%w: empty text", ErrUndetectable)
	}

	if len(text) > maxInputBytes {
		pos := maxInputBytes
		for pos > 0 && !utf8.RuneStart(text[pos]) {
			pos--
		}
		text = text[:pos]
	}

	var (
		totalLetters    int
		cyrillicLetters int
		latinLetters    int
		asciiLetters    int
		otherScripts    = make(map[string]int)
		markers         = make(map[string]float64)
	)

	for _, r := range text {
		if !unicode.IsLetter(r) {
			continue
		}
		totalLetters++

		switch {
		case unicode.Is(unicode.Cyrillic, r):
			cyrillicLetters++
		case unicode.Is(unicode.Latin, r):
			latinLetters++
			if r < utf8.RuneSelf {
				asciiLetters++
			}
		default:
			if code := scriptLanguage(r); code != "" {
				otherScripts[code]++
			}
			continue
		}

		if lang, ok := letterMarkers[unicode.ToLower(r)]; ok {
			markers[lang] += markerWeight
		}
	}

	if totalLetters < minLetters {
		return nil, fmt.Errorf("%w: only %d letters", ErrUndetectable, totalLetters)
	}

	// Single-language scripts win outright when they dominate.
	otherTotal := 0
	for _, n := range otherScripts {
		otherTotal += n
	}
	if otherTotal > cyrillicLetters && otherTotal > latinLetters {
		return rank(toScores(otherScripts))
	}

	family := latinFamily
	if cyrillicLetters > latinLetters {
		family = cyrillicFamily
	}

	scores := make(map[string]float64, len(family))
	for _, lang := range family {
		scores[lang] = markers[lang]
	}
	for _, w := range functionWordCandidates(text) {
		for _, lang := range functionWords[w] {
			if _, ok := scores[lang]; ok {
				scores[lang]++
			}
		}
	}

	total := 0.0
	for _, s := range scores {
		total += s
	}

	if total == 0 {
		// Plain ASCII prose with no recognizable function words still reads
		// as English far more often than not.
		if family[0] == "en" && float64(asciiLetters)/float64(latinLetters) >= asciiFallbackRatio {
			return []Result{{Lang: "en", Confidence: asciiFallbackScore}}, nil
		}
		return nil, fmt.Errorf("%w: no language signal", ErrUndetectable)
	}

	return rank(scores)
}

// rank normalizes scores, sorts them and rejects a tie at the top.
func rank(scores map[string]float64) ([]Result, error) {
	total := 0.0
	for _, s := range scores {
		total += s
	}

	results := make([]Result, 0, len(scores))
	for lang, s := range scores {
		results = append(results, Result{Lang: lang, Confidence: s / total})
	}
	slices.SortFunc(results, func(a, b Result) int {
		if c := cmp.Compare(b.Confidence, a.Confidence); c != 0 {
			return c
		}
		return strings.Compare(a.Lang, b.Lang)
	})

	if len(results) > 1 && results[0].Confidence == results[1].Confidence {
		return nil, fmt.Errorf("%w: ambiguous between %s and %s", ErrUndetectable, results[0].Lang, results[1].Lang)
	}
	return results, nil
}

func toScores(counts map[string]int) map[string]float64 {
	scores := make(map[string]float64, len(counts))
	for k, v := range counts {
		scores[k] = float64(v)
	}
	return scores
}

// functionWordCandidates lowercases text and splits it on every rune that is
// neither a letter nor an apostrophe.
func functionWordCandidates(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && r != '\'' && r != '’'
	})
}
