package summarizer

import (
	"context"

	"github.com/localrivet/textsummary/internal/telemetry"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency bounds SummarizeBatch when no limit is given.
const DefaultBatchConcurrency = 4

// BatchResult is the outcome of one document of a batch. Exactly one of
// Result and Err is set.
type BatchResult struct {
	Result *Result
	Err    error
}

// SummarizeBatch summarizes every text independently with at most
// concurrency documents in flight. Results are in input order and one
// document's failure does not affect the others. The returned error is
// non-nil only when ctx ends before the batch completes.
func (s *FrequencySummarizer) SummarizeBatch(ctx context.Context, texts []string, opts Options, concurrency int) ([]BatchResult, error) {
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	s.metrics.IncrementCounter(telemetry.MetricBatchRequests, 1)
	s.metrics.IncrementCounter(telemetry.MetricBatchDocuments, int64(len(texts)))

	results := make([]BatchResult, len(texts))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	for i, text := range texts {
		g.Go(func() error {
			result, err := s.SummarizeWithOptions(gctx, text, opts)
			results[i] = BatchResult{Result: result, Err: err}
			return nil
		})
	}

	_ = g.Wait()

	if err := ctx.Err(); err != nil {
		return results, err
	}

	s.logger.Debug("Batch complete", "documents", len(texts), "concurrency", concurrency)
	return results, nil
}
