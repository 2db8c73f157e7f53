package httpapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/localrivet/textsummary/internal/errortypes"
	"github.com/localrivet/textsummary/internal/summarizer"
)

// ErrorResponse represents the structure of error responses sent by the API
type ErrorResponse struct {
	Status  string                 `json:"status"`
	Code    string                 `json:"code"`
	Message string                 `json:"message"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// Common error codes
const (
	// ErrorCodeInvalidRequest indicates the client sent an invalid request
	ErrorCodeInvalidRequest = "INVALID_REQUEST"

	// ErrorCodeLanguageError indicates the text's language was not detected or is not supported
	ErrorCodeLanguageError = "LANGUAGE_ERROR"

	// ErrorCodeDocumentError indicates an uploaded document could not be converted
	ErrorCodeDocumentError = "DOCUMENT_ERROR"

	// ErrorCodeRequestTooLarge indicates the request body exceeded the configured limit
	ErrorCodeRequestTooLarge = "REQUEST_TOO_LARGE"

	// ErrorCodeInternalError indicates an internal server error
	ErrorCodeInternalError = "INTERNAL_ERROR"
)

// statusFor maps an error onto its HTTP status, error code and client message.
func statusFor(err error) (int, string, string) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		return http.StatusRequestEntityTooLarge, ErrorCodeRequestTooLarge, "Request body is too large"
	}

	switch summarizer.KindOf(err) {
	case summarizer.KindEmptyInput:
		return http.StatusBadRequest, ErrorCodeInvalidRequest, "Text is empty. Please provide text for analysis"
	case summarizer.KindInvalidRequestedCount:
		return http.StatusBadRequest, ErrorCodeInvalidRequest, "Number of sentences must be positive"
	case summarizer.KindLanguageUndetectable:
		return http.StatusUnprocessableEntity, ErrorCodeLanguageError, "Unable to detect the language of the text"
	case summarizer.KindLanguageUnsupported:
		return http.StatusUnprocessableEntity, ErrorCodeLanguageError, "The language of the text is not supported"
	}

	switch errortypes.TypeOf(err) {
	case errortypes.ErrorTypeValidation:
		return http.StatusBadRequest, ErrorCodeInvalidRequest, "Invalid request parameters"
	case errortypes.ErrorTypeExternal:
		return http.StatusUnprocessableEntity, ErrorCodeDocumentError, "The document could not be converted to text"
	}

	return http.StatusInternalServerError, ErrorCodeInternalError, "An unexpected error occurred"
}

// writeErrorResponse writes a structured error response to the HTTP response writer
func writeErrorResponse(w http.ResponseWriter, logger *slog.Logger, status int, code, message string, err error) {
	errResp := ErrorResponse{
		Status:  "error",
		Code:    code,
		Message: message,
	}

	if err != nil {
		errResp.Details = map[string]interface{}{
			"error": err.Error(),
		}
		if kind := summarizer.KindOf(err); kind != summarizer.KindInternal {
			errResp.Details["error_kind"] = string(kind)
		}

		if status >= http.StatusInternalServerError {
			errortypes.LogError(logger, err)
		} else {
			logger.Debug("Request rejected", "status_code", status, "error_code", code, "error", err)
		}
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(errResp); err != nil {
		logger.Error("Failed to encode error response", "error", err)
	}
}

// HandleError inspects err to determine the appropriate HTTP response
func HandleError(w http.ResponseWriter, logger *slog.Logger, err error) {
	status, code, message := statusFor(err)
	writeErrorResponse(w, logger, status, code, message, err)
}

// HandleBadRequest handles 400 Bad Request errors
func HandleBadRequest(w http.ResponseWriter, logger *slog.Logger, message string, err error) {
	var tooLarge *http.MaxBytesError
	if errors.As(err, &tooLarge) {
		HandleError(w, logger, err)
		return
	}
	writeErrorResponse(w, logger, http.StatusBadRequest, ErrorCodeInvalidRequest, message, err)
}
