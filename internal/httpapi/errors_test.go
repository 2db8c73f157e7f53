package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/localrivet/textsummary/internal/errortypes"
	"github.com/localrivet/textsummary/internal/language"
	"github.com/localrivet/textsummary/internal/logger"
	"github.com/localrivet/textsummary/internal/summarizer"
)

func TestWriteErrorResponse(t *testing.T) {
	tests := []struct {
		name       string
		status     int
		code       string
		message    string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "basic error",
			status:     http.StatusBadRequest,
			code:       "BAD_REQUEST",
			message:    "Invalid input",
			err:        errors.New("test error"),
			wantStatus: http.StatusBadRequest,
			wantCode:   "BAD_REQUEST",
		},
		{
			name:       "nil error",
			status:     http.StatusInternalServerError,
			code:       ErrorCodeInternalError,
			message:    "Something went wrong",
			err:        nil,
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrorCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			writeErrorResponse(w, logger.Discard(), tt.status, tt.code, tt.message, tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("writeErrorResponse() status = %v, want %v", w.Code, tt.wantStatus)
			}

			var resp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("writeErrorResponse() code = %v, want %v", resp.Code, tt.wantCode)
			}
			if (tt.err == nil) != (resp.Details == nil) {
				t.Errorf("writeErrorResponse() details = %v", resp.Details)
			}
		})
	}
}

func TestHandleError(t *testing.T) {
	_, undetectable := language.Gate("", nil)
	_, unsupported := language.Gate("fr", nil)

	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantCode   string
	}{
		{
			name:       "empty input",
			err:        errortypes.ValidationError(summarizer.ErrEmptyInput, "cannot summarize empty text"),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrorCodeInvalidRequest,
		},
		{
			name:       "invalid count",
			err:        errortypes.ValidationError(summarizer.ErrInvalidRequestedCount, "invalid number of sentences"),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrorCodeInvalidRequest,
		},
		{
			name:       "undetectable",
			err:        undetectable,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   ErrorCodeLanguageError,
		},
		{
			name:       "unsupported",
			err:        unsupported,
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   ErrorCodeLanguageError,
		},
		{
			name:       "document conversion",
			err:        errortypes.ExternalError(errors.New("unsupported mimetype"), "failed to convert document"),
			wantStatus: http.StatusUnprocessableEntity,
			wantCode:   ErrorCodeDocumentError,
		},
		{
			name:       "validation error",
			err:        errortypes.ValidationError(errors.New("invalid input"), "validation failed"),
			wantStatus: http.StatusBadRequest,
			wantCode:   ErrorCodeInvalidRequest,
		},
		{
			name:       "body too large",
			err:        fmt.Errorf("decode: %w", &http.MaxBytesError{Limit: 10}),
			wantStatus: http.StatusRequestEntityTooLarge,
			wantCode:   ErrorCodeRequestTooLarge,
		},
		{
			name:       "internal error",
			err:        errortypes.InternalError(errors.New("tokenizer failed"), "failed to tokenize text"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrorCodeInternalError,
		},
		{
			name:       "unknown error",
			err:        errors.New("generic error"),
			wantStatus: http.StatusInternalServerError,
			wantCode:   ErrorCodeInternalError,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()

			HandleError(w, logger.Discard(), tt.err)

			if w.Code != tt.wantStatus {
				t.Errorf("HandleError() status = %v, want %v", w.Code, tt.wantStatus)
			}

			var resp ErrorResponse
			if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
				t.Fatalf("Failed to parse response: %v", err)
			}
			if resp.Code != tt.wantCode {
				t.Errorf("HandleError() code = %v, want %v", resp.Code, tt.wantCode)
			}
		})
	}
}
