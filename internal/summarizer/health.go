package summarizer

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/localrivet/textsummary/internal/language"
	"github.com/localrivet/textsummary/internal/telemetry"
)

// HealthStatus represents the health status of a component
type HealthStatus string

const (
	// StatusHealthy indicates a component is fully operational
	StatusHealthy HealthStatus = "healthy"

	// StatusDegraded indicates a component is operational but with reduced capability
	StatusDegraded HealthStatus = "degraded"

	// StatusUnhealthy indicates a component is not operational
	StatusUnhealthy HealthStatus = "unhealthy"
)

// HealthReport contains information about the current health of the summarizer
type HealthReport struct {
	Status        HealthStatus       `json:"status"`
	Timestamp     time.Time          `json:"timestamp"`
	Components    map[string]string  `json:"components"`
	Languages     map[string]bool    `json:"languages"`
	Requests      map[string]int64   `json:"requests_by_language"`
	Failures      map[string]int64   `json:"failures_by_kind"`
	ResponseTimes map[string]float64 `json:"response_times_ms"`
	SuccessRate   float64            `json:"success_rate"`
	TotalRequests int64              `json:"total_requests"`
	Version       string             `json:"version"`
}

// probeTexts are tokenized per language to check that its resources work.
var probeTexts = map[language.Code]string{
	language.En: "Summaries are built from sentences. Frequent words make sentences important.",
	language.Uk: "Підсумок складається з речень. Часті слова роблять речення важливими.",
}

// CheckLanguageHealth tokenizes a probe document for every supported
// language and reports whether a non-empty frequency table came out.
func (s *FrequencySummarizer) CheckLanguageHealth() map[string]bool {
	health := make(map[string]bool)
	for _, lang := range language.Supported() {
		health[lang.String()] = s.probe(lang)
	}
	return health
}

func (s *FrequencySummarizer) probe(lang language.Code) bool {
	if s.tokenizer == nil || s.lexicon == nil {
		return false
	}

	sentences, err := s.tokenizer.Tokenize(probeTexts[lang], lang)
	if err != nil || len(sentences) == 0 {
		return false
	}
	table := BuildFrequencyTable(sentences, s.lexicon.StopWords(lang), s.lexicon.Punctuation())
	return len(table) > 0
}

// CreateHealthReport generates a health report for the summarizer
func CreateHealthReport(summarizer *FrequencySummarizer) (*HealthReport, error) {
	if summarizer == nil {
		return nil, fmt.Errorf("summarizer is nil")
	}

	m := summarizer.GetMetrics()
	if m == nil {
		return nil, fmt.Errorf("metrics collector is nil")
	}

	components := map[string]string{
		"detector":  componentStatus(summarizer.detector != nil),
		"tokenizer": componentStatus(summarizer.tokenizer != nil),
		"lexicon":   componentStatus(summarizer.lexicon != nil),
	}

	languages := summarizer.CheckLanguageHealth()

	// Determine overall status
	status := StatusHealthy
	working := 0
	for _, ok := range languages {
		if ok {
			working++
		}
	}
	if summarizer.detector == nil || working == 0 {
		status = StatusUnhealthy
	} else if working < len(languages) {
		status = StatusDegraded
	}

	totalSuccess := m.GetCounter(telemetry.MetricRequestsSuccess)
	totalFailure := m.GetCounter(telemetry.MetricRequestsFailure)
	totalRequests := totalSuccess + totalFailure

	var successRate float64
	if totalRequests > 0 {
		successRate = float64(totalSuccess) / float64(totalRequests) * 100.0
	}

	responseTimes := map[string]float64{
		"avg": float64(m.GetTimerAverage(telemetry.MetricResponseTime)) / float64(time.Millisecond),
		"p95": float64(m.GetTimerP95(telemetry.MetricResponseTime)) / float64(time.Millisecond),
	}

	return &HealthReport{
		Status:        status,
		Timestamp:     time.Now(),
		Components:    components,
		Languages:     languages,
		Requests:      m.GetCountersWithPrefix(telemetry.MetricLanguagePrefix),
		Failures:      m.GetCountersWithPrefix(telemetry.MetricFailurePrefix),
		ResponseTimes: responseTimes,
		SuccessRate:   successRate,
		TotalRequests: totalRequests,
		Version:       Version,
	}, nil
}

func componentStatus(present bool) string {
	if present {
		return string(StatusHealthy)
	}
	return string(StatusUnhealthy)
}

// CreateHealthReportJSON generates a JSON health report for the summarizer
func CreateHealthReportJSON(summarizer *FrequencySummarizer) (string, error) {
	report, err := CreateHealthReport(summarizer)
	if err != nil {
		return "", err
	}

	reportJSON, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		return "", fmt.Errorf("failed to marshal health report: %w", err)
	}

	return string(reportJSON), nil
}

// ResetMetrics resets all metrics for the summarizer
func ResetMetrics(summarizer *FrequencySummarizer) error {
	if summarizer == nil {
		return fmt.Errorf("summarizer is nil")
	}

	m := summarizer.GetMetrics()
	if m == nil {
		return fmt.Errorf("metrics collector is nil")
	}

	m.Reset()
	return nil
}
