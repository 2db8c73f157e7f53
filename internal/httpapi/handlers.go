package httpapi

import (
	"encoding/json"
	"errors"
	"html/template"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/localrivet/textsummary/internal/ingest"
	"github.com/localrivet/textsummary/internal/summarizer"
	"github.com/localrivet/textsummary/internal/tools"
)

// MaxBatchDocuments bounds the documents of a single batch request.
const MaxBatchDocuments = 256

var (
	errNoDocuments  = errors.New("documents must not be empty")
	errTooManyDocs  = errors.New("too many documents in batch")
	errMissingField = errors.New("missing form field")
)

// Handler serves the summarization endpoints.
type Handler struct {
	summarizer       *summarizer.FrequencySummarizer
	batchConcurrency int
	logger           *slog.Logger
}

// NewHandler creates a Handler.
func NewHandler(s *summarizer.FrequencySummarizer, batchConcurrency int, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}
	return &Handler{
		summarizer:       s,
		batchConcurrency: batchConcurrency,
		logger:           logger,
	}
}

// Summarize handles POST /summarize.
func (h *Handler) Summarize(w http.ResponseWriter, r *http.Request) {
	var req tools.SummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		HandleBadRequest(w, h.logger, "Request body must be a JSON object with a text field", err)
		return
	}

	result, err := h.summarizer.SummarizeWithOptions(r.Context(), req.Text, req.Options(h.summarizer.Defaults()))
	if err != nil {
		HandleError(w, h.logger, err)
		return
	}

	resp := tools.NewSummarizeResponse(result, nil)
	resp.RequestID = middleware.GetReqID(r.Context())
	h.writeJSON(w, http.StatusOK, resp)
}

// SummarizeBatch handles POST /summarize/batch.
func (h *Handler) SummarizeBatch(w http.ResponseWriter, r *http.Request) {
	var req tools.BatchSummarizeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		HandleBadRequest(w, h.logger, "Request body must be a JSON object with a documents field", err)
		return
	}
	if len(req.Documents) == 0 {
		HandleBadRequest(w, h.logger, "At least one document is required", errNoDocuments)
		return
	}
	if len(req.Documents) > MaxBatchDocuments {
		HandleBadRequest(w, h.logger, "Too many documents in batch", errTooManyDocs)
		return
	}

	results, err := h.summarizer.SummarizeBatch(r.Context(), req.Documents, req.Options(h.summarizer.Defaults()), h.batchConcurrency)
	if err != nil {
		HandleError(w, h.logger, err)
		return
	}

	resp := tools.BatchSummarizeResponse{
		Status:  tools.StatusSuccess,
		Results: make([]tools.SummarizeResponse, len(results)),
	}
	for i, res := range results {
		resp.Results[i] = tools.NewSummarizeResponse(res.Result, res.Err)
	}
	h.writeJSON(w, http.StatusOK, resp)
}

// SummarizeFile handles POST /summarize/file: a multipart upload in the
// "file" field, converted to text before summarization. Options come from
// the num_sentences and preserve_document_order form fields.
func (h *Handler) SummarizeFile(w http.ResponseWriter, r *http.Request) {
	file, header, err := r.FormFile("file")
	if err != nil {
		HandleBadRequest(w, h.logger, "A document is required in the file field", err)
		return
	}
	defer file.Close()

	opts, err := formOptions(r, h.summarizer.Defaults())
	if err != nil {
		HandleBadRequest(w, h.logger, "Invalid summarization options", err)
		return
	}

	text, err := ingest.Extract(file, header.Filename)
	if err != nil {
		HandleError(w, h.logger, err)
		return
	}

	result, err := h.summarizer.SummarizeWithOptions(r.Context(), text, opts)
	if err != nil {
		HandleError(w, h.logger, err)
		return
	}

	resp := tools.NewSummarizeResponse(result, nil)
	resp.RequestID = middleware.GetReqID(r.Context())
	h.writeJSON(w, http.StatusOK, resp)
}

// Index handles GET / by rendering the article form.
func (h *Handler) Index(w http.ResponseWriter, r *http.Request) {
	h.render(w, http.StatusOK, pageData{})
}

// IndexSubmit handles POST / with the article form field and renders the
// summary page.
func (h *Handler) IndexSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		HandleBadRequest(w, h.logger, "Invalid form submission", err)
		return
	}
	if _, ok := r.PostForm["article"]; !ok {
		HandleBadRequest(w, h.logger, "The article field is required", errMissingField)
		return
	}

	article := r.PostForm.Get("article")
	result, err := h.summarizer.SummarizeWithOptions(r.Context(), article, h.summarizer.Defaults())
	if err != nil {
		status, _, message := statusFor(err)
		if status >= http.StatusInternalServerError {
			HandleError(w, h.logger, err)
			return
		}
		h.render(w, status, pageData{Article: article, Error: message})
		return
	}

	h.render(w, http.StatusOK, pageData{
		Article:  article,
		Summary:  result.Summary,
		Language: result.Language.String(),
	})
}

// Health handles GET /health.
func (h *Handler) Health(w http.ResponseWriter, r *http.Request) {
	report, err := summarizer.CreateHealthReport(h.summarizer)
	if err != nil {
		HandleError(w, h.logger, err)
		return
	}

	status := http.StatusOK
	if report.Status == summarizer.StatusUnhealthy {
		status = http.StatusServiceUnavailable
	}
	h.writeJSON(w, status, report)
}

func (h *Handler) writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("Failed to encode response", "error", err)
	}
}

type pageData struct {
	Article  string
	Summary  string
	Language string
	Error    string
}

var pageTemplate = template.Must(template.New("page").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>TextSummary</title></head>
<body>
<h1>TextSummary</h1>
<form method="post" action="/">
<textarea name="article" rows="16" cols="80">{{.Article}}</textarea>
<p><button type="submit">Summarize</button></p>
</form>
{{if .Error}}<p class="error">{{.Error}}</p>{{end}}
{{if .Summary}}<h2>Summary{{if .Language}} ({{.Language}}){{end}}</h2>
<p class="summary">{{.Summary}}</p>{{end}}
</body>
</html>
`))

func (h *Handler) render(w http.ResponseWriter, status int, data pageData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if err := pageTemplate.Execute(w, data); err != nil {
		h.logger.Error("Failed to render page", "error", err)
	}
}

// formOptions reads the num_sentences and preserve_document_order form
// fields, falling back to defaults for absent ones.
func formOptions(r *http.Request, defaults summarizer.Options) (summarizer.Options, error) {
	opts := defaults
	if v := r.FormValue("num_sentences"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			return opts, err
		}
		opts.NumSentences = n
	}
	if v := r.FormValue("preserve_document_order"); v != "" {
		b, err := strconv.ParseBool(v)
		if err != nil {
			return opts, err
		}
		opts.PreserveDocumentOrder = b
	}
	return opts, nil
}
