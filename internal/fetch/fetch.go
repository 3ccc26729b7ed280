// Package fetch pulls the full player universe from the provider with
// a bounded number of concurrent batch requests.
package fetch

import (
	"context"
	"log/slog"
	"sync"

	"github.com/okarlsson/ffwrapped/internal/models"
)

// maxWorkers bounds how many batch requests run against the provider
// at once.
const maxWorkers = 16

// BatchFunc fetches season data for one batch of player ids.
type BatchFunc func(ctx context.Context, ids []int) ([]models.PlayerSeason, error)

// Players fetches season data for all ids, batchSize ids per call,
// collecting results in completion order. A failed batch is logged and
// skipped; the rest of the run continues. Cancelling ctx abandons the
// remaining batches.
func Players(ctx context.Context, ids []int, batchSize int, fn BatchFunc) []models.PlayerSeason {
	if len(ids) == 0 || batchSize <= 0 {
		return nil
	}

	batches := make(chan []int)
	results := make(chan []models.PlayerSeason)

	var wg sync.WaitGroup
	workers := maxWorkers
	if n := (len(ids) + batchSize - 1) / batchSize; n < workers {
		workers = n
	}
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for batch := range batches {
				players, err := fn(ctx, batch)
				if err != nil {
					slog.Error("Error fetching player batch", "size", len(batch), "error", err)
					continue
				}
				select {
				case results <- players:
				case <-ctx.Done():
					return
				}
			}
		}()
	}

	go func() {
		defer close(batches)
		for start := 0; start < len(ids); start += batchSize {
			end := start + batchSize
			if end > len(ids) {
				end = len(ids)
			}
			select {
			case batches <- ids[start:end]:
			case <-ctx.Done():
				return
			}
		}
	}()

	go func() {
		wg.Wait()
		close(results)
	}()

	var all []models.PlayerSeason
	for players := range results {
		all = append(all, players...)
	}
	return all
}
