// Package season reduces raw provider data into the analytic tables of
// the season recap: games, player scoring, and draft availability.
package season

import "github.com/okarlsson/ffwrapped/internal/models"

// seasonTotalWeek is the provider's pseudo-week carrying the season
// total. Counting it would double every real week.
const seasonTotalWeek = 0

// AggregateScore sums a player's points over weeks 1..maxWeek.
func AggregateScore(weekly map[int]models.WeekStat, maxWeek int) float64 {
	score := 0.0
	for week, stat := range weekly {
		if week == seasonTotalWeek || week > maxWeek {
			continue
		}
		score += stat.Points
	}
	return score
}

// Played reports whether the week counts as a played game. A week with
// zero points is treated as not played, which matches how the league
// has always counted availability.
func Played(stat models.WeekStat) bool {
	return stat.Points > 0
}

// GamesPlayed counts the weeks through maxWeek in which the player
// actually played.
func GamesPlayed(weekly map[int]models.WeekStat, maxWeek int) int {
	played := 0
	for week, stat := range weekly {
		if week == seasonTotalWeek || week > maxWeek {
			continue
		}
		if Played(stat) {
			played++
		}
	}
	return played
}
