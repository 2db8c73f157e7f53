package summarizer

import (
	"errors"

	"github.com/localrivet/textsummary/internal/language"
)

// ErrorKind is the failure taxonomy reported to callers.
type ErrorKind string

// Error kinds
const (
	KindEmptyInput            ErrorKind = "empty_input"
	KindLanguageUndetectable  ErrorKind = "language_undetectable"
	KindLanguageUnsupported   ErrorKind = "language_unsupported"
	KindInvalidRequestedCount ErrorKind = "invalid_requested_count"
	KindInternal              ErrorKind = "internal"
)

var (
	// ErrEmptyInput is returned for empty or whitespace-only text.
	ErrEmptyInput = errors.New("input text is empty")

	// ErrInvalidRequestedCount is returned when fewer than one sentence is requested.
	ErrInvalidRequestedCount = errors.New("number of sentences must be positive")
)

// KindOf maps err to its ErrorKind. It returns "" for a nil error and
// KindInternal for errors outside the taxonomy.
func KindOf(err error) ErrorKind {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrEmptyInput):
		return KindEmptyInput
	case errors.Is(err, ErrInvalidRequestedCount):
		return KindInvalidRequestedCount
	case errors.Is(err, language.ErrUndetectable):
		return KindLanguageUndetectable
	case errors.Is(err, language.ErrUnsupported):
		return KindLanguageUnsupported
	default:
		return KindInternal
	}
}
