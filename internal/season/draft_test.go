package season

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/okarlsson/ffwrapped/internal/models"
)

func weeklyPlayed(weeks ...int) map[int]models.WeekStat {
	weekly := make(map[int]models.WeekStat)
	for _, w := range weeks {
		weekly[w] = models.WeekStat{Points: 10}
	}
	return weekly
}

func TestBuildDraftClass_ByeAdjustment(t *testing.T) {
	picks := []models.DraftPick{
		{PlayerID: 1, PlayerName: "Iron Man", Round: 1, Team: "Sleepers"},
		{PlayerID: 2, PlayerName: "Early Bye", Round: 2, Team: "Sleepers"},
		{PlayerID: 3, PlayerName: "Late Bye", Round: 3, Team: "Rivals"},
	}
	players := map[int]models.PlayerSeason{
		1: {ID: 1, ProTeamID: 10, Weekly: weeklyPlayed(1, 2, 3, 4, 5, 6)},
		2: {ID: 2, ProTeamID: 20, Weekly: weeklyPlayed(1, 2, 4, 5)},
		3: {ID: 3, ProTeamID: 30, Weekly: weeklyPlayed(1, 2, 3, 4, 5)},
	}
	byes := map[int]int{20: 3, 30: 12}

	class := BuildDraftClass(picks, players, 6, byes)
	assert.Len(t, class, 3)

	// Played every week, no bye map entry: nothing missed.
	assert.Equal(t, 0, class[0].GamesMissed)
	// Missed weeks 3 and 6, but week 3 was the bye: one true miss.
	assert.Equal(t, 4, class[1].GamesPlayed)
	assert.Equal(t, 1, class[1].GamesMissed)
	// Bye week 12 has not happened yet by week 6: no adjustment.
	assert.Equal(t, 1, class[2].GamesMissed)
}

func TestBuildDraftClass_SkipsMissingPlayer(t *testing.T) {
	picks := []models.DraftPick{
		{PlayerID: 7, PlayerName: "Ghost", Round: 1, Team: "Sleepers"},
	}
	class := BuildDraftClass(picks, map[int]models.PlayerSeason{}, 6, nil)
	assert.Empty(t, class)
}

func TestBuildPlayerTable(t *testing.T) {
	players := []models.PlayerSeason{
		{ID: 1, Name: "Producer", Position: models.PositionWR, OnTeamID: 4, ProjectedTotal: 100,
			Weekly: map[int]models.WeekStat{0: {Points: 500}, 1: {Points: 80}, 2: {Points: 40}}},
		{ID: 2, Name: "Irrelevant", Position: models.PositionK},
	}
	teamNames := map[int]string{4: "Sleepers"}

	records := BuildPlayerTable(players, teamNames, 18)
	assert.Len(t, records, 1, "zero-point, zero-projection players are dropped")
	assert.Equal(t, 120.0, records[0].TotalPoints)
	assert.Equal(t, 20.0, records[0].Diff)
	assert.Equal(t, "Sleepers", records[0].CurrentTeam)
	assert.Equal(t, "-", records[0].DraftedBy)
	assert.Equal(t, "-", records[0].DraftRound)
}

func TestBuildPlayerTable_FreeAgent(t *testing.T) {
	players := []models.PlayerSeason{
		{ID: 3, Name: "Waiver Hero", Position: models.PositionRB, ProjectedTotal: 50,
			Weekly: map[int]models.WeekStat{1: {Points: 30}}},
	}

	records := BuildPlayerTable(players, map[int]string{4: "Sleepers"}, 18)
	assert.Equal(t, "FA", records[0].CurrentTeam, "unrostered players are marked free agents")
}

func TestEnrichDraftInfo(t *testing.T) {
	records := []models.PlayerSeasonRecord{
		{ID: 1, Name: "Drafted", DraftedBy: "-", DraftRound: "-"},
		{ID: 2, Name: "Waiver Hero", DraftedBy: "-", DraftRound: "-"},
	}
	picks := []models.DraftPick{
		{PlayerID: 1, Team: "Sleepers", Round: 4},
	}

	enriched := EnrichDraftInfo(records, picks)
	assert.Equal(t, "Sleepers", enriched[0].DraftedBy)
	assert.Equal(t, "4", enriched[0].DraftRound)
	assert.Equal(t, "-", enriched[1].DraftedBy)
	assert.Equal(t, "-", enriched[1].DraftRound)
	// Enrichment is non-destructive.
	assert.Equal(t, "-", records[0].DraftedBy)
}
