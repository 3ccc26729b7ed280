package fetch

import (
	"context"
	"fmt"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okarlsson/ffwrapped/internal/models"
)

func idRange(n int) []int {
	ids := make([]int, n)
	for i := range ids {
		ids[i] = i + 1
	}
	return ids
}

func TestPlayers_CollectsAllBatches(t *testing.T) {
	var mu sync.Mutex
	var batchSizes []int

	players := Players(context.Background(), idRange(25), 10, func(_ context.Context, ids []int) ([]models.PlayerSeason, error) {
		mu.Lock()
		batchSizes = append(batchSizes, len(ids))
		mu.Unlock()
		out := make([]models.PlayerSeason, len(ids))
		for i, id := range ids {
			out[i] = models.PlayerSeason{ID: id}
		}
		return out, nil
	})

	assert.Len(t, players, 25)
	assert.ElementsMatch(t, []int{10, 10, 5}, batchSizes)

	seen := make(map[int]bool)
	for _, p := range players {
		seen[p.ID] = true
	}
	assert.Len(t, seen, 25, "every id appears exactly once")
}

func TestPlayers_SkipsFailedBatch(t *testing.T) {
	players := Players(context.Background(), idRange(20), 10, func(_ context.Context, ids []int) ([]models.PlayerSeason, error) {
		if ids[0] == 1 {
			return nil, fmt.Errorf("provider hiccup")
		}
		out := make([]models.PlayerSeason, len(ids))
		for i, id := range ids {
			out[i] = models.PlayerSeason{ID: id}
		}
		return out, nil
	})

	assert.Len(t, players, 10, "failed batch is dropped, the rest survives")
}

func TestPlayers_BoundedConcurrency(t *testing.T) {
	var inFlight, peak int64

	Players(context.Background(), idRange(200), 1, func(_ context.Context, ids []int) ([]models.PlayerSeason, error) {
		cur := atomic.AddInt64(&inFlight, 1)
		for {
			old := atomic.LoadInt64(&peak)
			if cur <= old || atomic.CompareAndSwapInt64(&peak, old, cur) {
				break
			}
		}
		defer atomic.AddInt64(&inFlight, -1)
		return []models.PlayerSeason{{ID: ids[0]}}, nil
	})

	assert.LessOrEqual(t, atomic.LoadInt64(&peak), int64(maxWorkers))
}

func TestPlayers_CancelledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	players := Players(ctx, idRange(100), 1, func(ctx context.Context, ids []int) ([]models.PlayerSeason, error) {
		return []models.PlayerSeason{{ID: ids[0]}}, nil
	})

	assert.Less(t, len(players), 100, "cancelled run does not complete the batch")
}

func TestPlayers_EmptyInput(t *testing.T) {
	assert.Nil(t, Players(context.Background(), nil, 10, nil))
	assert.Nil(t, Players(context.Background(), idRange(5), 0, nil))
}
