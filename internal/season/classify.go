package season

import (
	"math"

	"github.com/okarlsson/ffwrapped/internal/models"
)

// Classify orders a matchup into winner and loser. The side with the
// strictly higher score wins; an exact tie goes to the home team.
// ScoreDiff is NaN when neither side scored, marking a game that was
// never played rather than a 0-0 tie.
func Classify(box models.BoxScore) models.GameRecord {
	winner, loser := box.Home, box.Away
	if box.Away.Score > box.Home.Score {
		winner, loser = box.Away, box.Home
	}

	diff := math.Abs(box.Home.Score - box.Away.Score)
	if box.Home.Score == 0 && box.Away.Score == 0 {
		diff = math.NaN()
	}

	return models.GameRecord{
		Week:      box.Week,
		Winner:    winner,
		Loser:     loser,
		HomeTeam:  box.Home.Team,
		ScoreDiff: diff,
	}
}
