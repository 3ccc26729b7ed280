package season

import (
	"log/slog"
	"strconv"

	"github.com/okarlsson/ffwrapped/internal/models"
)

// sentinel marks draft fields of players that went undrafted.
const sentinel = "-"

// BuildDraftClass joins the draft picks with the players' season data
// into the availability table. weeksElapsed is the number of weeks the
// season has progressed. byeWeeks maps pro team id to bye week; a nil
// or incomplete map simply skips the bye adjustment. Picks without a
// matching player record are dropped.
func BuildDraftClass(picks []models.DraftPick, players map[int]models.PlayerSeason, weeksElapsed int, byeWeeks map[int]int) []models.DraftedPlayer {
	class := make([]models.DraftedPlayer, 0, len(picks))
	for _, pick := range picks {
		player, ok := players[pick.PlayerID]
		if !ok {
			slog.Warn("No season data for draft pick, skipping", "player", pick.PlayerName, "id", pick.PlayerID)
			continue
		}

		played := GamesPlayed(player.Weekly, weeksElapsed)
		missed := weeksElapsed - played
		if bye, ok := byeWeeks[player.ProTeamID]; ok && bye > 0 && bye <= weeksElapsed {
			// The bye week is not a missed game.
			missed--
		}

		class = append(class, models.DraftedPlayer{
			PlayerName:  pick.PlayerName,
			PlayerID:    pick.PlayerID,
			TeamName:    pick.Team,
			Round:       pick.Round,
			GamesPlayed: played,
			GamesMissed: missed,
		})
	}
	return class
}

// freeAgent marks players no league team currently rosters.
const freeAgent = "FA"

// BuildPlayerTable reduces raw player seasons into scoring rows,
// dropping players with neither realized nor projected points.
// teamNames maps league team id to name for the current-roster column;
// unrostered players get the free-agent marker. Draft fields start at
// the sentinel until EnrichDraftInfo fills them in.
func BuildPlayerTable(players []models.PlayerSeason, teamNames map[int]string, maxWeek int) []models.PlayerSeasonRecord {
	records := make([]models.PlayerSeasonRecord, 0, len(players))
	for _, player := range players {
		total := AggregateScore(player.Weekly, maxWeek)
		if total == 0 && player.ProjectedTotal == 0 {
			continue
		}
		currentTeam, ok := teamNames[player.OnTeamID]
		if !ok {
			currentTeam = freeAgent
		}
		records = append(records, models.PlayerSeasonRecord{
			Name:            player.Name,
			ID:              player.ID,
			CurrentTeam:     currentTeam,
			Position:        player.Position,
			ProjectedPoints: player.ProjectedTotal,
			TotalPoints:     total,
			Diff:            total - player.ProjectedTotal,
			DraftedBy:       sentinel,
			DraftRound:      sentinel,
		})
	}
	return records
}

// EnrichDraftInfo returns a copy of the scoring rows with drafted-by
// and draft-round filled in from the picks. Undrafted players keep the
// sentinel.
func EnrichDraftInfo(records []models.PlayerSeasonRecord, picks []models.DraftPick) []models.PlayerSeasonRecord {
	byPlayer := make(map[int]models.DraftPick, len(picks))
	for _, pick := range picks {
		byPlayer[pick.PlayerID] = pick
	}

	enriched := make([]models.PlayerSeasonRecord, len(records))
	copy(enriched, records)
	for i := range enriched {
		if pick, ok := byPlayer[enriched[i].ID]; ok {
			enriched[i].DraftedBy = pick.Team
			enriched[i].DraftRound = strconv.Itoa(pick.Round)
		}
	}
	return enriched
}
