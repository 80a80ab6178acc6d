// Package batch runs report aggregation across many documents concurrently.
// It uses Go channels for work distribution and is safe for concurrent use.
// Aggregation is side-effect-free, so documents can be processed in any
// order; the assembled batch is identical to a sequential conversion.
package batch

import (
	"context"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/dvloznov/report-ledger/internal/document"
	"github.com/dvloznov/report-ledger/internal/logger"
	"github.com/dvloznov/report-ledger/internal/pos"
)

// DefaultWorkers is the worker count used when the caller passes zero.
const DefaultWorkers = 5

type result struct {
	filename string
	rec      *pos.Record
}

// Convert aggregates the documents into one record per store using a pool of
// workers. The only error condition is context cancellation; extraction
// itself degrades to zeroed fields rather than failing.
func Convert(ctx context.Context, docs []document.Document, workers int) (*pos.Batch, error) {
	if workers <= 0 {
		workers = DefaultWorkers
	}
	log := logger.FromContext(ctx)
	runID := uuid.NewString()

	jobs := make(chan document.Document)
	results := make(chan result)

	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for doc := range jobs {
				rec := pos.Aggregate(doc.Text)
				rec.StoreID = doc.StoreID
				select {
				case results <- result{filename: doc.Filename, rec: rec}:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(jobs)
		for _, doc := range docs {
			select {
			case jobs <- doc:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	b := &pos.Batch{
		RunID:   runID,
		Records: make(map[string]*pos.Record, len(docs)),
	}
	for r := range results {
		log.Debug().
			Str("run_id", runID).
			Str("store", r.rec.StoreID).
			Str("file", r.filename).
			Msg("aggregated report")
		b.Records[r.rec.StoreID] = r.rec
	}

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("Convert: batch %s interrupted: %w", runID, err)
	}
	return b, nil
}
