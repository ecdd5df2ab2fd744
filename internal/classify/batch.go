package classify

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"archivum/internal/compliance"
)

// defaultBatchConcurrency bounds parallel classifications in a batch so a
// large request cannot monopolize the store's connection pool.
const defaultBatchConcurrency = 8

// BatchItem is one record to classify in a batch request.
type BatchItem struct {
	RecordID uuid.UUID          `json:"record_id"`
	Signals  compliance.Signals `json:"signals"`
}

// BatchResult pairs a batch item with its outcome or failure. Err is kept as
// a string so results serialize cleanly.
type BatchResult struct {
	RecordID uuid.UUID `json:"record_id"`
	Outcome  *Outcome  `json:"outcome,omitempty"`
	Err      string    `json:"error,omitempty"`
}

// ClassifyBatch classifies a set of records concurrently. Individual failures
// do not abort the batch: each item reports its own outcome or error, in
// input order. Only context cancellation fails the whole call.
func (s *Service) ClassifyBatch(ctx context.Context, items []BatchItem) ([]BatchResult, error) {
	results := make([]BatchResult, len(items))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(defaultBatchConcurrency)

	for i, item := range items {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			result := BatchResult{RecordID: item.RecordID}
			outcome, err := s.Classify(ctx, item.RecordID, item.Signals)
			if err != nil {
				result.Err = err.Error()
			} else {
				result.Outcome = &outcome
			}
			results[i] = result
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}
