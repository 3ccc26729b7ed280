package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/okarlsson/ffwrapped/internal/models"
)

type API struct {
	client *Client
}

func NewAPI(client *Client) *API {
	return &API{client: client}
}

func (a *API) leagueEndpoint() string {
	return fmt.Sprintf("/seasons/%s/segments/0/leagues/%s", a.client.Config.Year, a.client.Config.LeagueID)
}

func (a *API) GetLeagueMetadata(ctx context.Context) (*models.LeagueMetadata, error) {
	var espnResponse models.LeagueResponse
	params := map[string][]string{
		"view": {"mSettings"},
	}

	if err := a.client.Get(ctx, a.leagueEndpoint(), params, nil, &espnResponse); err != nil {
		return nil, fmt.Errorf("fetching league metadata: %w", err)
	}

	metadata := &models.LeagueMetadata{
		LeagueID:       espnResponse.ID,
		Name:           espnResponse.Settings.Name,
		CurrentWeek:    espnResponse.Status.CurrentMatchupPeriod,
		RegSeasonCount: espnResponse.Settings.ScheduleSettings.MatchupPeriodCount,
		SeasonID:       espnResponse.SeasonID,
		LastUpdated:    time.Now(),
	}

	return metadata, nil
}

// GetTeams returns every league team with its actual record.
func (a *API) GetTeams(ctx context.Context) ([]models.TeamSeason, error) {
	var leagueResponse models.LeagueResponse
	params := map[string][]string{
		"view": {"mTeam"},
	}

	if err := a.client.Get(ctx, a.leagueEndpoint(), params, nil, &leagueResponse); err != nil {
		return nil, fmt.Errorf("fetching teams: %w", err)
	}

	teams := make([]models.TeamSeason, len(leagueResponse.Teams))
	for i, team := range leagueResponse.Teams {
		teams[i] = models.TeamSeason{
			ID:            team.ID,
			Name:          team.Name,
			Wins:          team.Record.Overall.Wins,
			Losses:        team.Record.Overall.Losses,
			Ties:          team.Record.Overall.Ties,
			PointsFor:     team.Record.Overall.PointsFor,
			PointsAgainst: team.Record.Overall.PointsAgainst,
		}
	}

	return teams, nil
}

// GetBoxScores returns the week's matchups, each side carrying its
// full scored roster for the week. teamNames maps team id to name.
func (a *API) GetBoxScores(ctx context.Context, week int, teamNames map[int]string) ([]models.BoxScore, error) {
	var scoreboardResponse models.LeagueResponse
	params := map[string][]string{
		"view":            {"mMatchupScore", "mScoreboard"},
		"scoringPeriodId": {fmt.Sprintf("%d", week)},
	}

	filters := map[string]interface{}{
		"schedule": map[string]interface{}{
			"filterMatchupPeriodIds": map[string]interface{}{
				"value": []int{week},
			},
		},
	}

	filtersJSON, err := json.Marshal(filters)
	if err != nil {
		return nil, fmt.Errorf("error marshalling filters: %w", err)
	}

	headers := map[string]string{
		"x-fantasy-filter": string(filtersJSON),
	}

	if err := a.client.Get(ctx, a.leagueEndpoint(), params, headers, &scoreboardResponse); err != nil {
		return nil, fmt.Errorf("fetching box scores for week %d: %w", week, err)
	}

	var boxScores []models.BoxScore
	for _, match := range scoreboardResponse.Schedule {
		if match.MatchupPeriod != week {
			continue
		}

		home, err := buildSide(match.Home, week, teamNames)
		if err != nil {
			return nil, fmt.Errorf("building home side of matchup %d: %w", match.ID, err)
		}
		away, err := buildSide(match.Away, week, teamNames)
		if err != nil {
			return nil, fmt.Errorf("building away side of matchup %d: %w", match.ID, err)
		}

		boxScores = append(boxScores, models.BoxScore{
			Week: week,
			Home: home,
			Away: away,
		})
	}

	return boxScores, nil
}

func buildSide(side models.TeamScore, week int, teamNames map[int]string) (models.TeamWeekResult, error) {
	lineup := make([]models.PlayerWeekStat, 0, len(side.RosterForCurrentScoringPeriod.Entries))
	projected := 0.0
	for _, entry := range side.RosterForCurrentScoringPeriod.Entries {
		player := entry.PlayerPoolEntry.Player

		pos, err := models.PositionFromID(player.DefaultPositionID)
		if err != nil {
			return models.TeamWeekResult{}, fmt.Errorf("roster entry %s: %w", player.FullName, err)
		}

		actual, projection := weekPoints(player.Stats, week)
		lineup = append(lineup, models.PlayerWeekStat{
			Name:     player.FullName,
			Position: pos,
			Points:   actual,
		})
		if isStartingLineup(entry.LineupSlotID) {
			projected += projection
		}
	}

	score := side.TotalPointsLive
	if score == 0 {
		score = side.TotalPoints
	}

	return models.TeamWeekResult{
		Team:      teamNames[side.TeamID],
		Score:     score,
		Projected: projected,
		Lineup:    lineup,
	}, nil
}

// weekPoints picks the player's actual and projected points for the
// scoring period. Stat source 0 is actual, 1 is projected.
func weekPoints(stats []models.Stat, week int) (actual, projected float64) {
	for _, stat := range stats {
		if stat.ScoringPeriodID != week {
			continue
		}
		switch stat.StatSourceID {
		case 0:
			actual = stat.AppliedTotal
		case 1:
			projected = stat.AppliedTotal
		}
	}
	return actual, projected
}

func isStartingLineup(slotID int) bool {
	startingSlots := map[int]bool{
		0:  true,  // QB
		2:  true,  // RB
		4:  true,  // WR
		6:  true,  // TE
		16: true,  // D/ST
		17: true,  // K
		20: false, // Bench
		21: false, // IR
		23: true,  // FLEX
	}
	return startingSlots[slotID]
}

// GetDraft returns the league draft picks. Player names are not part
// of the draft view; callers fill them in from the player table.
func (a *API) GetDraft(ctx context.Context, teamNames map[int]string) ([]models.DraftPick, error) {
	var leagueResponse models.LeagueResponse
	params := map[string][]string{
		"view": {"mDraftDetail"},
	}

	if err := a.client.Get(ctx, a.leagueEndpoint(), params, nil, &leagueResponse); err != nil {
		return nil, fmt.Errorf("fetching draft detail: %w", err)
	}

	picks := make([]models.DraftPick, len(leagueResponse.DraftDetail.Picks))
	for i, pick := range leagueResponse.DraftDetail.Picks {
		picks[i] = models.DraftPick{
			PlayerID: pick.PlayerID,
			Round:    pick.RoundID,
			Team:     teamNames[pick.TeamID],
		}
	}

	return picks, nil
}

// GetProPlayerIDs returns the ids of the full pro player universe.
func (a *API) GetProPlayerIDs(ctx context.Context) ([]int, error) {
	var proPlayers []models.ProPlayer
	endpoint := fmt.Sprintf("/seasons/%s/players", a.client.Config.Year)
	params := map[string][]string{
		"view":            {"players_wl"},
		"scoringPeriodId": {"0"},
	}
	headers := map[string]string{
		"x-fantasy-filter": `{"filterActive":{"value":true}}`,
	}

	if err := a.client.Get(ctx, endpoint, params, headers, &proPlayers); err != nil {
		return nil, fmt.Errorf("fetching pro players: %w", err)
	}

	ids := make([]int, len(proPlayers))
	for i, player := range proPlayers {
		ids[i] = player.ID
	}
	return ids, nil
}

// GetPlayerInfo returns season data for the given player ids, weekly
// stats keyed by scoring period. Players with positions outside the
// fantasy lineup are skipped.
func (a *API) GetPlayerInfo(ctx context.Context, ids []int) ([]models.PlayerSeason, error) {
	var cardResponse models.PlayerCardResponse
	params := map[string][]string{
		"view": {"kona_player_info"},
	}

	filters := map[string]interface{}{
		"players": map[string]interface{}{
			"filterIds": map[string]interface{}{
				"value": ids,
			},
		},
	}

	filtersJSON, err := json.Marshal(filters)
	if err != nil {
		return nil, fmt.Errorf("error marshalling filters: %w", err)
	}

	headers := map[string]string{
		"x-fantasy-filter": string(filtersJSON),
	}

	if err := a.client.Get(ctx, a.leagueEndpoint(), params, headers, &cardResponse); err != nil {
		return nil, fmt.Errorf("fetching player info: %w", err)
	}

	players := make([]models.PlayerSeason, 0, len(cardResponse.Players))
	for _, entry := range cardResponse.Players {
		pos, err := models.PositionFromID(entry.Player.DefaultPositionID)
		if err != nil {
			slog.Debug("Skipping player outside lineup positions", "player", entry.Player.FullName, "positionId", entry.Player.DefaultPositionID)
			continue
		}

		weekly := make(map[int]models.WeekStat)
		projectedTotal := 0.0
		for _, stat := range entry.Player.Stats {
			switch stat.StatSourceID {
			case 0:
				weekly[stat.ScoringPeriodID] = models.WeekStat{
					Points:    stat.AppliedTotal,
					Breakdown: stat.AppliedStats,
				}
			case 1:
				if stat.ScoringPeriodID == 0 {
					projectedTotal = stat.AppliedTotal
				}
			}
		}

		players = append(players, models.PlayerSeason{
			ID:             entry.Player.ID,
			Name:           entry.Player.FullName,
			Position:       pos,
			ProTeamID:      entry.Player.ProTeamID,
			OnTeamID:       entry.OnTeamID,
			ProjectedTotal: projectedTotal,
			Weekly:         weekly,
		})
	}

	return players, nil
}

type proTeamInfo struct {
	ID      int    `json:"id"`
	Abbrev  string `json:"abbrev"`
	ByeWeek int    `json:"byeWeek"`
	Name    string `json:"name"`
}

// GetByeWeeks returns each pro team's bye week, keyed by pro team id.
func (a *API) GetByeWeeks(ctx context.Context) (map[int]int, error) {
	var scheduleResponse struct {
		Settings struct {
			ProTeams []proTeamInfo `json:"proTeams"`
		} `json:"settings"`
	}

	endpoint := fmt.Sprintf("/seasons/%s", a.client.Config.Year)
	params := map[string][]string{
		"view": {"proTeamSchedules_wl"},
	}

	if err := a.client.Get(ctx, endpoint, params, nil, &scheduleResponse); err != nil {
		return nil, fmt.Errorf("fetching pro schedule: %w", err)
	}

	byeWeeks := make(map[int]int)
	for _, team := range scheduleResponse.Settings.ProTeams {
		if team.ByeWeek > 0 {
			byeWeeks[team.ID] = team.ByeWeek
		}
	}

	return byeWeeks, nil
}
