package season

import (
	"math"
	"sort"

	"github.com/okarlsson/ffwrapped/internal/models"
)

// ByDiff ranks scoring rows by performance against projection.
// Descending order surfaces the overperformers, ascending the busts.
func ByDiff(records []models.PlayerSeasonRecord, ascending bool, limit int) []models.PlayerSeasonRecord {
	ranked := make([]models.PlayerSeasonRecord, len(records))
	copy(ranked, records)
	sort.SliceStable(ranked, func(i, j int) bool {
		if ascending {
			return ranked[i].Diff < ranked[j].Diff
		}
		return ranked[i].Diff > ranked[j].Diff
	})
	return truncate(ranked, limit)
}

// TopByPosition ranks scoring rows of one position by total points.
func TopByPosition(records []models.PlayerSeasonRecord, pos models.Position, limit int) []models.PlayerSeasonRecord {
	var filtered []models.PlayerSeasonRecord
	for _, r := range records {
		if r.Position == pos {
			filtered = append(filtered, r)
		}
	}
	sort.SliceStable(filtered, func(i, j int) bool {
		return filtered[i].TotalPoints > filtered[j].TotalPoints
	})
	return truncate(filtered, limit)
}

// CloseGames returns the games with the smallest margins. Unplayed
// games (NaN diff) sort last.
func CloseGames(games []models.GameRecord, limit int) []models.GameRecord {
	sorted := make([]models.GameRecord, len(games))
	copy(sorted, games)
	sort.SliceStable(sorted, func(i, j int) bool {
		a, b := sorted[i].ScoreDiff, sorted[j].ScoreDiff
		if math.IsNaN(a) {
			return false
		}
		if math.IsNaN(b) {
			return true
		}
		return a < b
	})
	return truncate(sorted, limit)
}

// HighScoreAndLost returns the games whose losing side scored the
// most: the season's hardest-luck losses.
func HighScoreAndLost(games []models.GameRecord, limit int) []models.GameRecord {
	sorted := make([]models.GameRecord, len(games))
	copy(sorted, games)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Loser.Score > sorted[j].Loser.Score
	})
	return truncate(sorted, limit)
}

// LowScoreAndWon returns the games whose winning side scored the
// least: wins that had no business being wins.
func LowScoreAndWon(games []models.GameRecord, limit int) []models.GameRecord {
	sorted := make([]models.GameRecord, len(games))
	copy(sorted, games)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].Winner.Score < sorted[j].Winner.Score
	})
	return truncate(sorted, limit)
}

// TeamMissedGames is one drafting team's early-round availability.
type TeamMissedGames struct {
	TeamName    string
	GamesPlayed int
	GamesMissed int
}

// MissedPerTeam sums games played and missed over each team's picks
// from rounds before maxRound, sorted by games missed descending.
func MissedPerTeam(class []models.DraftedPlayer, maxRound int) []TeamMissedGames {
	byTeam := make(map[string]*TeamMissedGames)
	var order []string
	for _, p := range class {
		if p.Round >= maxRound {
			continue
		}
		row, ok := byTeam[p.TeamName]
		if !ok {
			row = &TeamMissedGames{TeamName: p.TeamName}
			byTeam[p.TeamName] = row
			order = append(order, p.TeamName)
		}
		row.GamesPlayed += p.GamesPlayed
		row.GamesMissed += p.GamesMissed
	}

	rows := make([]TeamMissedGames, 0, len(order))
	for _, name := range order {
		rows = append(rows, *byTeam[name])
	}
	sort.SliceStable(rows, func(i, j int) bool {
		return rows[i].GamesMissed > rows[j].GamesMissed
	})
	return rows
}

// TeamsByPointsFor ranks teams by total points scored.
func TeamsByPointsFor(teams []models.TeamSeason) []models.TeamSeason {
	sorted := make([]models.TeamSeason, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PointsFor > sorted[j].PointsFor
	})
	return sorted
}

// TeamsByPointsAgainst ranks teams by total points allowed.
func TeamsByPointsAgainst(teams []models.TeamSeason) []models.TeamSeason {
	sorted := make([]models.TeamSeason, len(teams))
	copy(sorted, teams)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PointsAgainst > sorted[j].PointsAgainst
	})
	return sorted
}

func truncate[T any](s []T, limit int) []T {
	if limit > 0 && len(s) > limit {
		return s[:limit]
	}
	return s
}
