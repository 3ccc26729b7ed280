package season

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okarlsson/ffwrapped/internal/models"
)

func box(homeTeam string, homeScore float64, awayTeam string, awayScore float64) models.BoxScore {
	return models.BoxScore{
		Week: 1,
		Home: models.TeamWeekResult{Team: homeTeam, Score: homeScore},
		Away: models.TeamWeekResult{Team: awayTeam, Score: awayScore},
	}
}

func TestClassify_AwayWins(t *testing.T) {
	game := Classify(box("Home Squad", 95.4, "Away Squad", 120.1))
	assert.Equal(t, "Away Squad", game.Winner.Team)
	assert.Equal(t, "Home Squad", game.Loser.Team)
	assert.Equal(t, "Home Squad", game.HomeTeam)
	assert.InDelta(t, 24.7, game.ScoreDiff, 1e-9)
}

func TestClassify_HomeWins(t *testing.T) {
	game := Classify(box("Home Squad", 130.0, "Away Squad", 101.5))
	assert.Equal(t, "Home Squad", game.Winner.Team)
	assert.InDelta(t, 28.5, game.ScoreDiff, 1e-9)
}

func TestClassify_TieGoesToHome(t *testing.T) {
	game := Classify(box("Home Squad", 100, "Away Squad", 100))
	assert.Equal(t, "Home Squad", game.Winner.Team)
	assert.Equal(t, "Away Squad", game.Loser.Team)
	// A nonzero tie is a true 0 margin, not an unplayed game.
	assert.Equal(t, 0.0, game.ScoreDiff)
}

func TestClassify_UnplayedGameIsNaN(t *testing.T) {
	game := Classify(box("Home Squad", 0, "Away Squad", 0))
	assert.True(t, math.IsNaN(game.ScoreDiff))
}
