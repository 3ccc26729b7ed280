package lineup

import "github.com/okarlsson/ffwrapped/internal/models"

// Record is a win-loss tally.
type Record struct {
	Wins   int
	Losses int
}

// PerfectRecords replays every game with both sides fielding their
// optimal lineup and tallies the resulting record per team. When both
// optimal scores are equal the home team takes the win, the same
// convention the game classifier uses for actual scores.
func PerfectRecords(games []models.GameRecord, cfg models.SlotConfig) map[string]Record {
	records := make(map[string]Record)
	for _, game := range games {
		winnerOptimal := OptimalScore(game.Winner.Lineup, cfg)
		loserOptimal := OptimalScore(game.Loser.Lineup, cfg)

		perfectWinner, perfectLoser := game.Winner.Team, game.Loser.Team
		switch {
		case loserOptimal > winnerOptimal:
			perfectWinner, perfectLoser = game.Loser.Team, game.Winner.Team
		case loserOptimal == winnerOptimal && game.Loser.Team == game.HomeTeam:
			perfectWinner, perfectLoser = game.Loser.Team, game.Winner.Team
		}

		w := records[perfectWinner]
		w.Wins++
		records[perfectWinner] = w

		l := records[perfectLoser]
		l.Losses++
		records[perfectLoser] = l
	}
	return records
}

// Standings folds the perfect records into the teams' actual records.
// Diff is perfect wins minus actual wins.
func Standings(teams []models.TeamSeason, perfect map[string]Record) []models.TeamStandingRecord {
	standings := make([]models.TeamStandingRecord, len(teams))
	for i, team := range teams {
		rec := perfect[team.Name]
		standings[i] = models.TeamStandingRecord{
			Team:          team.Name,
			Wins:          team.Wins,
			Losses:        team.Losses,
			PerfectWins:   rec.Wins,
			PerfectLosses: rec.Losses,
			Diff:          rec.Wins - team.Wins,
		}
	}
	return standings
}
