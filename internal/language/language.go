// Package language defines the closed set of languages TextSummary can
// summarize and the gate that admits detector output into it.
//
// Every per-language resource (sentence segmenter, stop-word list) is keyed by
// Code. Adding a language means adding a Code constant and its entries in
// codeNames; Supported then drives the exhaustiveness checks in the
// tokenize and lexicon packages.
package language

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/localrivet/textsummary/internal/errortypes"
)

// Code identifies a supported language.
type Code uint8

const (
	Unknown Code = iota // zero value, never admitted by Gate
	En                  // English
	Uk                  // Ukrainian
)

// codeNames maps Code values to ISO 639-1 codes.
var codeNames = [...]string{
	Unknown: "",
	En:      "en",
	Uk:      "uk",
}

var (
	// ErrUndetectable is reported when the detector could not classify the text.
	ErrUndetectable = errors.New("language could not be detected")

	// ErrUnsupported is reported when the detected language is outside the supported set.
	ErrUnsupported = errors.New("language is not supported")
)

// Supported returns every admitted Code in a stable order.
func Supported() []Code {
	return []Code{En, Uk}
}

// String returns the ISO 639-1 code, or "" for Unknown.
func (c Code) String() string {
	if int(c) < len(codeNames) {
		return codeNames[c]
	}
	return fmt.Sprintf("Code(%d)", int(c))
}

// Parse maps an ISO 639-1 code onto a supported Code.
func Parse(s string) (Code, bool) {
	for _, c := range Supported() {
		if codeNames[c] == s {
			return c, true
		}
	}
	return Unknown, false
}

// MarshalJSON encodes the code as its ISO string.
func (c Code) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

// UnmarshalJSON decodes an ISO string into a supported Code.
func (c *Code) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	code, ok := Parse(s)
	if !ok {
		return fmt.Errorf("language: unsupported code %q", s)
	}
	*c = code
	return nil
}

// Gate admits the detector's answer into the supported set.
//
// A detector error or an empty code yields ErrUndetectable; a code outside
// the supported set yields ErrUnsupported. Both come back wrapped in an
// errortypes.AppError of type language.
func Gate(detected string, detectErr error) (Code, error) {
	if detectErr != nil || detected == "" {
		cause := ErrUndetectable
		if detectErr != nil && !errors.Is(detectErr, ErrUndetectable) {
			cause = fmt.Errorf("%w: %v", ErrUndetectable, detectErr)
		}
		return Unknown, errortypes.LanguageError(cause, "unable to detect the language of the text")
	}

	code, ok := Parse(detected)
	if !ok {
		return Unknown, errortypes.LanguageError(
			fmt.Errorf("%w: %q", ErrUnsupported, detected),
			"unsupported language",
		).WithField("language", detected)
	}
	return code, nil
}
