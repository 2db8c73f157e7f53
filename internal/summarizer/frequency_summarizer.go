package summarizer

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/localrivet/textsummary/internal/detect"
	"github.com/localrivet/textsummary/internal/errortypes"
	"github.com/localrivet/textsummary/internal/language"
	"github.com/localrivet/textsummary/internal/lexicon"
	"github.com/localrivet/textsummary/internal/telemetry"
	"github.com/localrivet/textsummary/internal/tokenize"
)

// Config holds the collaborators and defaults of a FrequencySummarizer.
type Config struct {
	Detector  detect.Detector
	Tokenizer tokenize.Tokenizer
	Lexicon   lexicon.Lexicon

	// Defaults applies to Summarize. A non-positive NumSentences falls back
	// to DefaultNumSentences.
	Defaults Options

	// Metrics and Logger are optional.
	Metrics *telemetry.MetricsCollector
	Logger  *slog.Logger
}

// FrequencySummarizer is the frequency-based extractive Summarizer.
// Its collaborators are read-only after construction, so it is safe for
// concurrent use.
type FrequencySummarizer struct {
	detector  detect.Detector
	tokenizer tokenize.Tokenizer
	lexicon   lexicon.Lexicon
	defaults  Options
	metrics   *telemetry.MetricsCollector
	logger    *slog.Logger
}

var _ Summarizer = (*FrequencySummarizer)(nil)

// NewFrequencySummarizer creates a FrequencySummarizer from config.
func NewFrequencySummarizer(config Config) *FrequencySummarizer {
	defaults := config.Defaults
	if defaults.NumSentences <= 0 {
		defaults.NumSentences = DefaultNumSentences
	}

	metrics := config.Metrics
	if metrics == nil {
		metrics = telemetry.NewMetricsCollector()
	}

	logger := config.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &FrequencySummarizer{
		detector:  config.Detector,
		tokenizer: config.Tokenizer,
		lexicon:   config.Lexicon,
		defaults:  defaults,
		metrics:   metrics,
		logger:    logger.With("component", "summarizer"),
	}
}

// Initialize verifies that every collaborator is present.
func (s *FrequencySummarizer) Initialize() error {
	var missing []string
	if s.detector == nil {
		missing = append(missing, "detector")
	}
	if s.tokenizer == nil {
		missing = append(missing, "tokenizer")
	}
	if s.lexicon == nil {
		missing = append(missing, "lexicon")
	}

	if len(missing) > 0 {
		return errortypes.ConfigError(
			fmt.Errorf("missing collaborators: %s", strings.Join(missing, ", ")),
			"summarizer is not fully configured",
		)
	}

	s.logger.Debug("Summarizer initialized", "default_sentences", s.defaults.NumSentences)
	return nil
}

// Summarize implements Summarizer using the configured defaults.
func (s *FrequencySummarizer) Summarize(text string) (string, error) {
	result, err := s.SummarizeWithOptions(context.Background(), text, s.defaults)
	if err != nil {
		return "", err
	}
	return result.Summary, nil
}

// Defaults returns the options used by Summarize.
func (s *FrequencySummarizer) Defaults() Options {
	return s.defaults
}

// GetMetrics returns the metrics collector.
func (s *FrequencySummarizer) GetMetrics() *telemetry.MetricsCollector {
	return s.metrics
}

// SummarizeWithOptions runs the full pipeline: empty-input check, count
// check, language detection and gating, tokenization, frequency table,
// scoring and selection. Any failure aborts without a partial summary.
func (s *FrequencySummarizer) SummarizeWithOptions(ctx context.Context, text string, opts Options) (*Result, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	start := time.Now()
	s.metrics.IncrementCounter(telemetry.MetricRequests, 1)
	s.metrics.RecordTimestamp(telemetry.MetricLastRequest)

	result, err := s.run(text, opts)
	s.metrics.RecordTimer(telemetry.MetricResponseTime, time.Since(start))

	if err != nil {
		kind := KindOf(err)
		s.metrics.IncrementCounter(telemetry.MetricRequestsFailure, 1)
		s.metrics.IncrementCounter(telemetry.MetricFailurePrefix+string(kind), 1)
		if kind == KindInternal {
			errortypes.LogError(s.logger, err)
		} else {
			s.logger.Debug("Summarization rejected", "error_kind", kind, "error", err)
		}
		return nil, err
	}

	s.metrics.IncrementCounter(telemetry.MetricRequestsSuccess, 1)
	s.metrics.IncrementCounter(telemetry.MetricLanguagePrefix+result.Language.String(), 1)
	s.metrics.SetGauge(telemetry.MetricSentencesIn, float64(result.SentenceCount))
	s.metrics.SetGauge(telemetry.MetricSentencesOut, float64(len(result.Selected)))

	s.logger.Debug("Summarization complete",
		"language", result.Language.String(),
		"sentences_in", result.SentenceCount,
		"sentences_out", len(result.Selected),
		"duration", time.Since(start))

	return result, nil
}

func (s *FrequencySummarizer) run(text string, opts Options) (*Result, error) {
	if strings.TrimSpace(text) == "" {
		return nil, errortypes.ValidationError(ErrEmptyInput, "cannot summarize empty text").
			WithField("error_kind", KindEmptyInput)
	}

	if opts.NumSentences <= 0 {
		return nil, errortypes.ValidationError(ErrInvalidRequestedCount, "invalid number of sentences").
			WithFields(map[string]interface{}{
				"error_kind":    KindInvalidRequestedCount,
				"num_sentences": opts.NumSentences,
			})
	}

	lang, err := language.Gate(s.detector.Detect(text))
	if err != nil {
		return nil, err
	}

	sentences, err := s.tokenizer.Tokenize(text, lang)
	if err != nil {
		return nil, errortypes.InternalError(err, "failed to tokenize text").
			WithField("language", lang.String())
	}

	table := BuildFrequencyTable(sentences, s.lexicon.StopWords(lang), s.lexicon.Punctuation())
	scored := ScoreSentences(table, sentences)
	selected := SelectTop(scored, opts.NumSentences, opts.PreserveDocumentOrder)

	return &Result{
		Summary:       Render(selected),
		Language:      lang,
		SentenceCount: len(sentences),
		Selected:      selected,
	}, nil
}
