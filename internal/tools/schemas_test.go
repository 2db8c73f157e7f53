package tools

import (
	"encoding/json"
	"testing"

	"github.com/localrivet/textsummary/internal/summarizer"
)

func TestSummarizeRequestOptions(t *testing.T) {
	defaults := summarizer.Options{NumSentences: 3, PreserveDocumentOrder: true}

	tests := []struct {
		name string
		body string
		want summarizer.Options
	}{
		{
			name: "defaults when omitted",
			body: `{"text":"x"}`,
			want: summarizer.Options{NumSentences: 3, PreserveDocumentOrder: true},
		},
		{
			name: "explicit count",
			body: `{"text":"x","num_sentences":5}`,
			want: summarizer.Options{NumSentences: 5, PreserveDocumentOrder: true},
		},
		{
			name: "explicit zero is kept for validation",
			body: `{"text":"x","num_sentences":0}`,
			want: summarizer.Options{NumSentences: 0, PreserveDocumentOrder: true},
		},
		{
			name: "order override",
			body: `{"text":"x","preserve_document_order":false}`,
			want: summarizer.Options{NumSentences: 3, PreserveDocumentOrder: false},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var req SummarizeRequest
			if err := json.Unmarshal([]byte(tc.body), &req); err != nil {
				t.Fatalf("Failed to unmarshal request: %v", err)
			}
			if got := req.Options(defaults); got != tc.want {
				t.Errorf("Options() = %+v, want %+v", got, tc.want)
			}
		})
	}
}

func TestBatchSummarizeRequestOptions(t *testing.T) {
	n := 1
	req := BatchSummarizeRequest{Documents: []string{"a", "b"}, NumSentences: &n}

	got := req.Options(summarizer.DefaultOptions())
	if got.NumSentences != 1 || got.PreserveDocumentOrder {
		t.Errorf("Options() = %+v", got)
	}
}

func TestNewSummarizeResponse(t *testing.T) {
	resp := NewSummarizeResponse(nil, summarizer.ErrEmptyInput)
	if resp.Status != StatusError || resp.ErrorKind != string(summarizer.KindEmptyInput) {
		t.Errorf("error response = %+v", resp)
	}
	if resp.Summary != "" {
		t.Errorf("error response carries a summary: %q", resp.Summary)
	}

	resp = NewSummarizeResponse(&summarizer.Result{Summary: "A. B.", SentenceCount: 4}, nil)
	if resp.Status != StatusSuccess || resp.Summary != "A. B." || resp.SentenceCount != 4 {
		t.Errorf("success response = %+v", resp)
	}
	if resp.Error != "" || resp.ErrorKind != "" {
		t.Errorf("success response carries an error: %+v", resp)
	}
}
