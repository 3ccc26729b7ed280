package season

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okarlsson/ffwrapped/internal/models"
)

func TestAggregateScore_SkipsSeasonTotalSentinel(t *testing.T) {
	weekly := map[int]models.WeekStat{
		0: {Points: 250.5}, // provider's season total, not a week
		1: {Points: 12.3},
		2: {Points: 8.7},
	}
	assert.InDelta(t, 21.0, AggregateScore(weekly, 18), 1e-9)
}

func TestAggregateScore_CutsOffAtMaxWeek(t *testing.T) {
	weekly := map[int]models.WeekStat{
		1: {Points: 10},
		2: {Points: 20},
		3: {Points: 30},
	}
	assert.Equal(t, 30.0, AggregateScore(weekly, 2))
}

func TestAggregateScore_EmptyStats(t *testing.T) {
	assert.Equal(t, 0.0, AggregateScore(nil, 18))
}

func TestPlayed(t *testing.T) {
	assert.True(t, Played(models.WeekStat{Points: 0.1}))
	assert.False(t, Played(models.WeekStat{Points: 0}))
	assert.False(t, Played(models.WeekStat{Points: -2}))
}

func TestGamesPlayed(t *testing.T) {
	weekly := map[int]models.WeekStat{
		0: {Points: 99},   // sentinel
		1: {Points: 14.2}, // played
		2: {Points: 0},    // sat out
		3: {Points: 7.1},  // played
		9: {Points: 22},   // beyond cutoff
	}
	assert.Equal(t, 2, GamesPlayed(weekly, 5))
}
