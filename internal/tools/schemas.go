// Package tools defines the request and response schemas shared by the MCP
// tools and the HTTP API of the TextSummary service.
package tools

import "github.com/localrivet/textsummary/internal/summarizer"

const (
	// ToolSummarize is the name of the summarize MCP tool
	ToolSummarize = "summarize"

	// ToolDetectLanguage is the name of the detect_language MCP tool
	ToolDetectLanguage = "detect_language"

	// ToolSummarizerHealth is the name of the summarizer_health MCP tool
	ToolSummarizerHealth = "summarizer_health"

	// StatusSuccess and StatusError are the values of every Status field
	StatusSuccess = "success"
	StatusError   = "error"
)

// SummarizeRequest defines the input schema for the summarize tool and the
// POST /summarize endpoint
type SummarizeRequest struct {
	// Text is the document to summarize
	Text string `json:"text"`

	// NumSentences is the number of sentences to return.
	// If not specified, the configured default is used
	NumSentences *int `json:"num_sentences,omitempty"`

	// PreserveDocumentOrder renders the summary in document order.
	// If not specified, the configured default is used
	PreserveDocumentOrder *bool `json:"preserve_document_order,omitempty"`
}

// Options resolves the request against the configured defaults.
func (r SummarizeRequest) Options(defaults summarizer.Options) summarizer.Options {
	opts := defaults
	if r.NumSentences != nil {
		opts.NumSentences = *r.NumSentences
	}
	if r.PreserveDocumentOrder != nil {
		opts.PreserveDocumentOrder = *r.PreserveDocumentOrder
	}
	return opts
}

// SummarizeResponse defines the output schema for the summarize tool and the
// POST /summarize endpoint
type SummarizeResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// Summary is the extracted summary
	Summary string `json:"summary"`

	// Language is the detected language code
	Language string `json:"language,omitempty"`

	// SentenceCount is the number of sentences in the document
	SentenceCount int `json:"sentence_count,omitempty"`

	// RequestID identifies the request in logs
	RequestID string `json:"request_id,omitempty"`

	// Error contains an error message if Status is "error"
	Error string `json:"error,omitempty"`

	// ErrorKind classifies the error if Status is "error"
	ErrorKind string `json:"error_kind,omitempty"`
}

// BatchSummarizeRequest defines the input schema for POST /summarize/batch
type BatchSummarizeRequest struct {
	// Documents are summarized independently
	Documents []string `json:"documents"`

	// NumSentences applies to every document
	NumSentences *int `json:"num_sentences,omitempty"`

	// PreserveDocumentOrder applies to every document
	PreserveDocumentOrder *bool `json:"preserve_document_order,omitempty"`
}

// Options resolves the request against the configured defaults.
func (r BatchSummarizeRequest) Options(defaults summarizer.Options) summarizer.Options {
	return SummarizeRequest{
		NumSentences:          r.NumSentences,
		PreserveDocumentOrder: r.PreserveDocumentOrder,
	}.Options(defaults)
}

// BatchSummarizeResponse defines the output schema for POST /summarize/batch.
// Results are in the order of the request's documents
type BatchSummarizeResponse struct {
	Status  string              `json:"status"`
	Results []SummarizeResponse `json:"results"`
}

// DetectLanguageRequest defines the input schema for the detect_language tool
type DetectLanguageRequest struct {
	// Text is the text whose language is detected
	Text string `json:"text"`
}

// DetectLanguageResponse defines the output schema for the detect_language tool
type DetectLanguageResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// Language is the detected ISO 639-1 code
	Language string `json:"language,omitempty"`

	// Supported reports whether the language can be summarized
	Supported bool `json:"supported"`

	// Error contains an error message if Status is "error"
	Error string `json:"error,omitempty"`

	// ErrorKind classifies the error if Status is "error"
	ErrorKind string `json:"error_kind,omitempty"`
}

// SummarizerHealthRequest defines the input schema for the summarizer_health tool
type SummarizerHealthRequest struct{}

// SummarizerHealthResponse defines the output schema for the summarizer_health tool
type SummarizerHealthResponse struct {
	// Status indicates the result of the operation ("success" or "error")
	Status string `json:"status"`

	// Report is the health report
	Report *summarizer.HealthReport `json:"report,omitempty"`

	// Error contains an error message if Status is "error"
	Error string `json:"error,omitempty"`
}

// NewSummarizeResponse converts the outcome of a summarization into its
// response schema.
func NewSummarizeResponse(result *summarizer.Result, err error) SummarizeResponse {
	if err != nil {
		return SummarizeResponse{
			Status:    StatusError,
			Error:     err.Error(),
			ErrorKind: string(summarizer.KindOf(err)),
		}
	}
	return SummarizeResponse{
		Status:        StatusSuccess,
		Summary:       result.Summary,
		Language:      result.Language.String(),
		SentenceCount: result.SentenceCount,
	}
}
