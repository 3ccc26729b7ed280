// Package lineup computes the best score a roster could have produced
// in a given week under the league's lineup slot constraints.
package lineup

import (
	"sort"

	"github.com/okarlsson/ffwrapped/internal/models"
)

// OptimalScore returns the maximum total score the given roster could
// have produced under cfg. Fixed slots take the top scorers of their
// position; FLEX slots then take the best remaining RB/WR/TE scorers,
// pooled across the three positions. A roster short of any slot
// requirement simply contributes less, it is never an error.
//
// The result is deterministic regardless of input order and the
// function is pure: calling it twice with the same arguments yields
// the same score.
func OptimalScore(roster []models.PlayerWeekStat, cfg models.SlotConfig) float64 {
	buckets := map[models.Position][]float64{}
	for _, p := range roster {
		buckets[p.Position] = append(buckets[p.Position], p.Points)
	}
	for _, scores := range buckets {
		sort.Sort(sort.Reverse(sort.Float64Slice(scores)))
	}

	total := 0.0
	var flexPool []float64
	for pos, want := range map[models.Position]int{
		models.PositionQB:  cfg.QB,
		models.PositionRB:  cfg.RB,
		models.PositionWR:  cfg.WR,
		models.PositionTE:  cfg.TE,
		models.PositionDST: cfg.DST,
		models.PositionK:   cfg.K,
	} {
		sum, rest := topSum(buckets[pos], want)
		total += sum
		if pos.FlexEligible() {
			flexPool = append(flexPool, rest...)
		}
	}

	sort.Sort(sort.Reverse(sort.Float64Slice(flexPool)))
	flexSum, _ := topSum(flexPool, cfg.Flex)
	return total + flexSum
}

// topSum sums the first n values of a descending-sorted slice and
// returns the remainder. Fewer than n values sums what is there.
func topSum(sorted []float64, n int) (float64, []float64) {
	if n > len(sorted) {
		n = len(sorted)
	}
	sum := 0.0
	for _, v := range sorted[:n] {
		sum += v
	}
	return sum, sorted[n:]
}
