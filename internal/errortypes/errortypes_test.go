package errortypes

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
)

func TestAppError(t *testing.T) {
	originalErr := errors.New("original error")
	appErr := ValidationError(originalErr, "validation failed")

	if appErr.Type != ErrorTypeValidation {
		t.Errorf("Expected error type %s, got %s", ErrorTypeValidation, appErr.Type)
	}
	if appErr.Error() != "validation failed: original error" {
		t.Errorf("Unexpected error string: %s", appErr.Error())
	}
	if !errors.Is(appErr, originalErr) {
		t.Errorf("Expected errors.Is to find the wrapped error")
	}
	if appErr.StackInfo == "" {
		t.Errorf("Expected stack information to be captured")
	}

	appErr.WithField("key", "value").WithFields(map[string]interface{}{"count": 2})
	if appErr.Fields["key"] != "value" || appErr.Fields["count"] != 2 {
		t.Errorf("Unexpected fields: %v", appErr.Fields)
	}
}

func TestAppErrorWithoutMessage(t *testing.T) {
	appErr := InternalError(errors.New("boom"), "")
	if appErr.Error() != "boom" {
		t.Errorf("Unexpected error string: %s", appErr.Error())
	}

	nilErr := InternalError(nil, "wrapped nothing")
	if nilErr.Err == nil {
		t.Errorf("Expected a placeholder error for nil input")
	}
}

func TestErrorPredicates(t *testing.T) {
	base := errors.New("base")

	tests := []struct {
		name string
		err  error
		want ErrorType
	}{
		{name: "validation", err: ValidationError(base, "v"), want: ErrorTypeValidation},
		{name: "language", err: LanguageError(base, "l"), want: ErrorTypeLanguage},
		{name: "database", err: DatabaseError(base, "d"), want: ErrorTypeDatabase},
		{name: "config", err: ConfigError(base, "c"), want: ErrorTypeConfig},
		{name: "internal", err: InternalError(base, "i"), want: ErrorTypeInternal},
		{name: "external", err: ExternalError(base, "e"), want: ErrorTypeExternal},
		{name: "plain", err: base, want: ""},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := TypeOf(tc.err); got != tc.want {
				t.Errorf("TypeOf() = %q, want %q", got, tc.want)
			}
		})
	}

	if !IsValidationError(tests[0].err) || IsValidationError(tests[1].err) {
		t.Errorf("IsValidationError gave the wrong answer")
	}
	if !IsLanguageError(tests[1].err) {
		t.Errorf("IsLanguageError gave the wrong answer")
	}
	if !IsDatabaseError(tests[2].err) {
		t.Errorf("IsDatabaseError gave the wrong answer")
	}
	if !IsConfigError(tests[3].err) {
		t.Errorf("IsConfigError gave the wrong answer")
	}
}

func TestLogError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))

	LogError(logger, LanguageError(errors.New("no signal"), "detection failed").WithField("language", "fr"))
	out := buf.String()
	for _, want := range []string{"detection failed", "type=language", "language=fr", "no signal"} {
		if !strings.Contains(out, want) {
			t.Errorf("Expected %q in log output, got: %s", want, out)
		}
	}

	buf.Reset()
	LogError(logger, errors.New("plain failure"))
	if !strings.Contains(buf.String(), "plain failure") {
		t.Errorf("Expected plain error in log output, got: %s", buf.String())
	}
}
