package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/okarlsson/ffwrapped/internal/models"
	"github.com/okarlsson/ffwrapped/internal/repository/memory"
)

// mockProvider is a canned two-team, two-week league. The Sleepers
// lose both games on the field but would have won both with their
// bench points in the lineup.
type mockProvider struct {
	boxScoreWeeks []int
}

func (m *mockProvider) GetLeagueMetadata(ctx context.Context) (*models.LeagueMetadata, error) {
	return &models.LeagueMetadata{
		LeagueID:       42,
		Name:           "Test League",
		CurrentWeek:    3,
		RegSeasonCount: 14,
		SeasonID:       2024,
	}, nil
}

func (m *mockProvider) GetTeams(ctx context.Context) ([]models.TeamSeason, error) {
	return []models.TeamSeason{
		{ID: 1, Name: "Sleepers", Wins: 0, Losses: 2, PointsFor: 150, PointsAgainst: 190},
		{ID: 2, Name: "Rivals", Wins: 2, Losses: 0, PointsFor: 190, PointsAgainst: 150},
	}, nil
}

func (m *mockProvider) GetBoxScores(ctx context.Context, week int, teamNames map[int]string) ([]models.BoxScore, error) {
	m.boxScoreWeeks = append(m.boxScoreWeeks, week)
	sleepers := models.TeamWeekResult{
		Team:  teamNames[1],
		Score: 75,
		Lineup: []models.PlayerWeekStat{
			{Name: "Starter", Position: models.PositionQB, Points: 75},
			{Name: "Benched Star", Position: models.PositionQB, Points: 130},
		},
	}
	rivals := models.TeamWeekResult{
		Team:  teamNames[2],
		Score: 95,
		Lineup: []models.PlayerWeekStat{
			{Name: "Steady", Position: models.PositionQB, Points: 95},
		},
	}
	return []models.BoxScore{{Week: week, Home: sleepers, Away: rivals}}, nil
}

func (m *mockProvider) GetDraft(ctx context.Context, teamNames map[int]string) ([]models.DraftPick, error) {
	return []models.DraftPick{
		{PlayerID: 100, Round: 1, Team: teamNames[1]},
	}, nil
}

func (m *mockProvider) GetProPlayerIDs(ctx context.Context) ([]int, error) {
	return []int{100, 200}, nil
}

func (m *mockProvider) GetPlayerInfo(ctx context.Context, ids []int) ([]models.PlayerSeason, error) {
	return []models.PlayerSeason{
		{ID: 100, Name: "Benched Star", Position: models.PositionQB, ProTeamID: 1, OnTeamID: 1, ProjectedTotal: 200,
			Weekly: map[int]models.WeekStat{0: {Points: 260}, 1: {Points: 130}, 2: {Points: 130}}},
		{ID: 200, Name: "Steady", Position: models.PositionQB, ProTeamID: 2, ProjectedTotal: 250,
			Weekly: map[int]models.WeekStat{1: {Points: 95}, 2: {Points: 95}}},
	}, nil
}

func (m *mockProvider) GetByeWeeks(ctx context.Context) (map[int]int, error) {
	return map[int]int{1: 9, 2: 11}, nil
}

func newTestService(p Provider) *StatsService {
	slots := models.SlotConfig{QB: 1}
	return NewStatsService(p, memory.NewRepository(), slots, 1000)
}

func TestRebuild_AssemblesSeason(t *testing.T) {
	provider := &mockProvider{}
	svc := newTestService(provider)

	snap, err := svc.Rebuild(context.Background())
	require.NoError(t, err)

	// Two completed weeks: current week 3 means weeks 1 and 2.
	assert.Equal(t, []int{1, 2}, provider.boxScoreWeeks)
	assert.Len(t, snap.Games, 2)

	// Rivals win both games on actual score.
	assert.Equal(t, "Rivals", snap.Games[0].Winner.Team)

	// Sleepers win both on optimal score thanks to the benched QB.
	assert.Equal(t, 2, snap.Perfect["Sleepers"].Wins)
	assert.Equal(t, 2, snap.Perfect["Rivals"].Losses)

	// Draft pick name resolved from the player table.
	require.Len(t, snap.DraftClass, 1)
	assert.Equal(t, "Benched Star", snap.DraftClass[0].PlayerName)
	assert.Equal(t, 2, snap.DraftClass[0].GamesPlayed)
	// Weeks elapsed is 3, two games played, bye week 9 not yet reached.
	assert.Equal(t, 1, snap.DraftClass[0].GamesMissed)

	// Season totals skip the week-0 sentinel.
	for _, p := range snap.Players {
		if p.Name == "Benched Star" {
			assert.Equal(t, 260.0, p.TotalPoints)
			assert.Equal(t, "Sleepers", p.CurrentTeam)
			assert.Equal(t, "Sleepers", p.DraftedBy)
			assert.Equal(t, "1", p.DraftRound)
		}
		if p.Name == "Steady" {
			assert.Equal(t, "FA", p.CurrentTeam)
			assert.Equal(t, "-", p.DraftedBy)
		}
	}
}

func TestSnapshot_Caches(t *testing.T) {
	provider := &mockProvider{}
	svc := newTestService(provider)

	_, err := svc.Snapshot(context.Background())
	require.NoError(t, err)
	calls := len(provider.boxScoreWeeks)

	_, err = svc.Snapshot(context.Background())
	require.NoError(t, err)
	assert.Equal(t, calls, len(provider.boxScoreWeeks), "second call served from cache")
}

func TestGetPerfectRecord(t *testing.T) {
	svc := newTestService(&mockProvider{})

	out, err := svc.GetPerfectRecord(context.Background())
	require.NoError(t, err)
	assert.Contains(t, out, "Perfect Record")
	assert.Contains(t, out, "Sleepers")
	// Sleepers: actual 0-2, perfect 2-0, diff +2.
	assert.Contains(t, out, "2-0")
	assert.Contains(t, out, "0-2")
}

func TestGetTopPlayers_UnknownPosition(t *testing.T) {
	svc := newTestService(&mockProvider{})

	_, err := svc.GetTopPlayers(context.Background(), "COACH")
	assert.Error(t, err)
}

func TestGetTopPlayers(t *testing.T) {
	svc := newTestService(&mockProvider{})

	out, err := svc.GetTopPlayers(context.Background(), "qb")
	require.NoError(t, err)
	assert.Contains(t, out, "Benched Star")
	assert.Contains(t, out, "Steady")
}

func TestWhoHas_FuzzyMatch(t *testing.T) {
	svc := newTestService(&mockProvider{})

	out, err := svc.WhoHas(context.Background(), "benched star")
	require.NoError(t, err)
	assert.Contains(t, out, "Benched Star")
	assert.Contains(t, out, "*Sleepers*")
	assert.Contains(t, out, "Drafted by *Sleepers*")

	out, err = svc.WhoHas(context.Background(), "steady")
	require.NoError(t, err)
	assert.Contains(t, out, "Free Agent")

	out, err = svc.WhoHas(context.Background(), "nobody anywhere close")
	require.NoError(t, err)
	assert.Contains(t, out, "No player found")
}

func TestGetExpectation(t *testing.T) {
	svc := newTestService(&mockProvider{})

	busts, err := svc.GetExpectation(context.Background(), true)
	require.NoError(t, err)
	assert.Contains(t, busts, "Under Expectation")

	booms, err := svc.GetExpectation(context.Background(), false)
	require.NoError(t, err)
	// Benched Star beat a 200 projection by 60.
	assert.Contains(t, booms, "60.00")
}
