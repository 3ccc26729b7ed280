// Package fantasy is the provider facade the service layer talks to,
// shielding it from the ESPN transport details.
package fantasy

import (
	"context"

	"github.com/okarlsson/ffwrapped/internal/api/espn"
	"github.com/okarlsson/ffwrapped/internal/models"
)

type API struct {
	espnAPI *espn.API
}

func NewAPI(espnAPI *espn.API) *API {
	return &API{espnAPI: espnAPI}
}

func (a *API) GetLeagueMetadata(ctx context.Context) (*models.LeagueMetadata, error) {
	return a.espnAPI.GetLeagueMetadata(ctx)
}

func (a *API) GetTeams(ctx context.Context) ([]models.TeamSeason, error) {
	return a.espnAPI.GetTeams(ctx)
}

func (a *API) GetBoxScores(ctx context.Context, week int, teamNames map[int]string) ([]models.BoxScore, error) {
	return a.espnAPI.GetBoxScores(ctx, week, teamNames)
}

func (a *API) GetDraft(ctx context.Context, teamNames map[int]string) ([]models.DraftPick, error) {
	return a.espnAPI.GetDraft(ctx, teamNames)
}

func (a *API) GetProPlayerIDs(ctx context.Context) ([]int, error) {
	return a.espnAPI.GetProPlayerIDs(ctx)
}

func (a *API) GetPlayerInfo(ctx context.Context, ids []int) ([]models.PlayerSeason, error) {
	return a.espnAPI.GetPlayerInfo(ctx, ids)
}

func (a *API) GetByeWeeks(ctx context.Context) (map[int]int, error) {
	return a.espnAPI.GetByeWeeks(ctx)
}
