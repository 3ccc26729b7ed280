package service

import (
	"context"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/okarlsson/ffwrapped/internal/fetch"
	"github.com/okarlsson/ffwrapped/internal/lineup"
	"github.com/okarlsson/ffwrapped/internal/models"
	"github.com/okarlsson/ffwrapped/internal/report"
	"github.com/okarlsson/ffwrapped/internal/repository/memory"
	"github.com/okarlsson/ffwrapped/internal/season"
)

// playerScoreWeeks is the cutoff for season scoring totals, the full
// NFL regular season.
const playerScoreWeeks = 18

// snapshotTTL is how long an assembled season snapshot stays fresh.
const snapshotTTL = 6 * time.Hour

// Provider is the league data source the service builds its season
// from.
type Provider interface {
	GetLeagueMetadata(ctx context.Context) (*models.LeagueMetadata, error)
	GetTeams(ctx context.Context) ([]models.TeamSeason, error)
	GetBoxScores(ctx context.Context, week int, teamNames map[int]string) ([]models.BoxScore, error)
	GetDraft(ctx context.Context, teamNames map[int]string) ([]models.DraftPick, error)
	GetProPlayerIDs(ctx context.Context) ([]int, error)
	GetPlayerInfo(ctx context.Context, ids []int) ([]models.PlayerSeason, error)
	GetByeWeeks(ctx context.Context) (map[int]int, error)
}

type StatsService struct {
	api            Provider
	repo           *memory.Repository
	slots          models.SlotConfig
	playersPerCall int
}

func NewStatsService(api Provider, repo *memory.Repository, slots models.SlotConfig, playersPerCall int) *StatsService {
	return &StatsService{
		api:            api,
		repo:           repo,
		slots:          slots,
		playersPerCall: playersPerCall,
	}
}

// Snapshot returns the cached season snapshot, rebuilding it when
// missing or stale.
func (s *StatsService) Snapshot(ctx context.Context) (*memory.Snapshot, error) {
	if snap := s.repo.GetSnapshot(); snap != nil && time.Since(snap.BuiltAt) < snapshotTTL {
		return snap, nil
	}
	return s.Rebuild(ctx)
}

// Rebuild assembles a fresh season snapshot from the provider.
func (s *StatsService) Rebuild(ctx context.Context) (*memory.Snapshot, error) {
	slog.Info("Building season snapshot: started")

	metadata, err := s.api.GetLeagueMetadata(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching league metadata: %w", err)
	}
	slog.Info("League", "name", metadata.Name, "currentWeek", metadata.CurrentWeek, "regSeasonCount", metadata.RegSeasonCount)

	teams, err := s.api.GetTeams(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching teams: %w", err)
	}
	teamNames := make(map[int]string, len(teams))
	for _, team := range teams {
		teamNames[team.ID] = team.Name
	}

	games, err := s.buildGames(ctx, metadata, teamNames)
	if err != nil {
		return nil, err
	}

	picks, err := s.api.GetDraft(ctx, teamNames)
	if err != nil {
		return nil, fmt.Errorf("fetching draft: %w", err)
	}

	ids, err := s.api.GetProPlayerIDs(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetching pro player ids: %w", err)
	}
	slog.Info("Fetching player scoring", "players", len(ids))
	playerSeasons := fetch.Players(ctx, ids, s.playersPerCall, s.api.GetPlayerInfo)
	slog.Info("Fetching player scoring: done", "fetched", len(playerSeasons))

	playersByID := make(map[int]models.PlayerSeason, len(playerSeasons))
	for _, p := range playerSeasons {
		playersByID[p.ID] = p
	}
	for i := range picks {
		if p, ok := playersByID[picks[i].PlayerID]; ok {
			picks[i].PlayerName = p.Name
		}
	}

	byeWeeks, err := s.api.GetByeWeeks(ctx)
	if err != nil {
		// Bye data only refines games-missed counts; live without it.
		slog.Warn("Bye week data unavailable, skipping bye adjustment", "error", err)
		byeWeeks = nil
	}

	weeksElapsed := metadata.CurrentWeek
	if metadata.RegSeasonCount < weeksElapsed {
		weeksElapsed = metadata.RegSeasonCount
	}

	playerTable := season.EnrichDraftInfo(season.BuildPlayerTable(playerSeasons, teamNames, playerScoreWeeks), picks)
	draftClass := season.BuildDraftClass(picks, playersByID, weeksElapsed, byeWeeks)
	perfect := lineup.PerfectRecords(games, s.slots)

	snap := &memory.Snapshot{
		Metadata:   *metadata,
		Teams:      teams,
		Games:      games,
		Players:    playerTable,
		DraftClass: draftClass,
		Perfect:    perfect,
		BuiltAt:    time.Now(),
	}
	s.repo.SaveSnapshot(snap)
	slog.Info("Building season snapshot: done", "games", len(games), "players", len(playerTable))
	return snap, nil
}

func (s *StatsService) buildGames(ctx context.Context, metadata *models.LeagueMetadata, teamNames map[int]string) ([]models.GameRecord, error) {
	lastWeek := metadata.CurrentWeek - 1
	if metadata.RegSeasonCount < lastWeek {
		lastWeek = metadata.RegSeasonCount
	}

	var games []models.GameRecord
	for week := 1; week <= lastWeek; week++ {
		boxScores, err := s.api.GetBoxScores(ctx, week, teamNames)
		if err != nil {
			return nil, fmt.Errorf("fetching box scores for week %d: %w", week, err)
		}
		for _, box := range boxScores {
			games = append(games, season.Classify(box))
		}
	}
	return games, nil
}

func (s *StatsService) GetPerfectRecord(ctx context.Context) (string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	table := report.New("Perfect Record", "Team", "Record", "Perfect Record", "Diff")
	for _, row := range lineup.Standings(snap.Teams, snap.Perfect) {
		table.AddRow(
			row.Team,
			fmt.Sprintf("%d-%d", row.Wins, row.Losses),
			fmt.Sprintf("%d-%d", row.PerfectWins, row.PerfectLosses),
			strconv.Itoa(row.Diff),
		)
	}
	return renderTable(table), nil
}

func (s *StatsService) GetStandings(ctx context.Context) (string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	var sb strings.Builder
	sb.WriteString("🏆 *Current Standings*\n\n")
	for _, team := range snap.Teams {
		sb.WriteString(fmt.Sprintf("*%s*\n", team.Name))
		sb.WriteString(fmt.Sprintf("   Record: %d-%d-%d\n", team.Wins, team.Losses, team.Ties))
		sb.WriteString(fmt.Sprintf("   Points For: %.2f\n", team.PointsFor))
		sb.WriteString(fmt.Sprintf("   Points Against: %.2f\n\n", team.PointsAgainst))
	}
	return sb.String(), nil
}

func (s *StatsService) GetTeamScoring(ctx context.Context) (string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	pointsFor := report.New("Points For", "Team", "Points For")
	for _, team := range season.TeamsByPointsFor(snap.Teams) {
		pointsFor.AddRow(team.Name, fmt.Sprintf("%.2f", team.PointsFor))
	}

	pointsAgainst := report.New("Points Against", "Team", "Points Against")
	for _, team := range season.TeamsByPointsAgainst(snap.Teams) {
		pointsAgainst.AddRow(team.Name, fmt.Sprintf("%.2f", team.PointsAgainst))
	}

	return renderTable(pointsFor) + "\n" + renderTable(pointsAgainst), nil
}

func (s *StatsService) GetCloseGames(ctx context.Context) (string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	table := report.New("Closest Games", "Winner", "Score", "Loser", "Score", "Diff")
	for _, game := range season.CloseGames(snap.Games, 10) {
		table.AddRow(
			game.Winner.Team, formatScore(game.Winner.Score),
			game.Loser.Team, formatScore(game.Loser.Score),
			formatDiff(game.ScoreDiff),
		)
	}
	return renderTable(table), nil
}

func (s *StatsService) GetHighScoreAndLost(ctx context.Context) (string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	table := report.New("High Score, Still Lost", "Winner", "Score", "Loser", "Score")
	for _, game := range season.HighScoreAndLost(snap.Games, 10) {
		table.AddRow(
			game.Winner.Team, formatScore(game.Winner.Score),
			game.Loser.Team, formatScore(game.Loser.Score),
		)
	}
	return renderTable(table), nil
}

func (s *StatsService) GetLowScoreAndWon(ctx context.Context) (string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	table := report.New("Low Score, Still Won", "Winner", "Score", "Loser", "Score")
	for _, game := range season.LowScoreAndWon(snap.Games, 10) {
		table.AddRow(
			game.Winner.Team, formatScore(game.Winner.Score),
			game.Loser.Team, formatScore(game.Loser.Score),
		)
	}
	return renderTable(table), nil
}

// GetExpectation ranks players against their preseason projection.
// Ascending order surfaces the busts, descending the booms.
func (s *StatsService) GetExpectation(ctx context.Context, ascending bool) (string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	title := "Over Expectation"
	if ascending {
		title = "Under Expectation"
	}
	table := report.New(title, "Player", "Drafted By", "Round", "Projected", "Total", "Diff")
	for _, p := range season.ByDiff(snap.Players, ascending, 20) {
		table.AddRow(
			p.Name, p.DraftedBy, p.DraftRound,
			formatScore(p.ProjectedPoints), formatScore(p.TotalPoints), formatScore(p.Diff),
		)
	}
	return renderTable(table), nil
}

func (s *StatsService) GetTopPlayers(ctx context.Context, position string) (string, error) {
	pos, err := models.ParsePosition(strings.ToUpper(strings.TrimSpace(position)))
	if err != nil {
		return "", fmt.Errorf("parsing position: %w", err)
	}

	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	table := report.New(fmt.Sprintf("Top %s", pos), "Player", "Drafted By", "Round", "Total")
	for _, p := range season.TopByPosition(snap.Players, pos, 10) {
		table.AddRow(p.Name, p.DraftedBy, p.DraftRound, formatScore(p.TotalPoints))
	}
	return renderTable(table), nil
}

func (s *StatsService) GetMissedGamesPerTeam(ctx context.Context) (string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	table := report.New("Missed Games, Rounds 1-5", "Team", "Games Played", "Games Missed")
	for _, row := range season.MissedPerTeam(snap.DraftClass, 6) {
		table.AddRow(row.TeamName, strconv.Itoa(row.GamesPlayed), strconv.Itoa(row.GamesMissed))
	}
	return renderTable(table), nil
}

// WhoHas looks a player up by fuzzy name match and reports their
// season line and draft origin.
func (s *StatsService) WhoHas(ctx context.Context, playerName string) (string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	match, found := bestPlayerMatch(snap.Players, playerName)
	if !found {
		return fmt.Sprintf("🔍 No player found matching '%s'.", playerName), nil
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("*%s* (%s)\n", match.Name, match.Position))
	sb.WriteString("━━━━━━━━━━━━━━━━\n")
	if match.CurrentTeam == "FA" {
		sb.WriteString("Free Agent\n")
	} else {
		sb.WriteString(fmt.Sprintf("*%s*\n", match.CurrentTeam))
	}
	if match.DraftedBy == "-" {
		sb.WriteString("Undrafted\n")
	} else {
		sb.WriteString(fmt.Sprintf("Drafted by *%s* (round %s)\n", match.DraftedBy, match.DraftRound))
	}
	sb.WriteString(fmt.Sprintf("\n%.2f pts (projected %.2f, diff %+.2f)", match.TotalPoints, match.ProjectedPoints, match.Diff))
	return sb.String(), nil
}

// bestPlayerMatch finds the season row whose name is most similar to
// the query, Levenshtein similarity above a fixed threshold.
func bestPlayerMatch(players []models.PlayerSeasonRecord, query string) (models.PlayerSeasonRecord, bool) {
	var best models.PlayerSeasonRecord
	bestScore := -1.0
	threshold := 0.7

	for _, player := range players {
		fullName := strings.ToLower(player.Name)
		distance := fuzzy.LevenshteinDistance(strings.ToLower(query), fullName)
		maxLen := float64(max(len(query), len(fullName)))
		if maxLen == 0 {
			continue
		}
		similarity := 1 - float64(distance)/maxLen

		if similarity > threshold && similarity > bestScore {
			bestScore = similarity
			best = player
		}
	}

	return best, bestScore >= 0
}

// GetCurrentScores formats the current week's matchup scores, fetched
// live rather than from the snapshot.
func (s *StatsService) GetCurrentScores(ctx context.Context) (string, error) {
	snap, err := s.Snapshot(ctx)
	if err != nil {
		return "", err
	}

	teamNames := make(map[int]string, len(snap.Teams))
	for _, team := range snap.Teams {
		teamNames[team.ID] = team.Name
	}

	week := snap.Metadata.CurrentWeek
	boxScores, err := s.api.GetBoxScores(ctx, week, teamNames)
	if err != nil {
		return "", fmt.Errorf("fetching current scores: %w", err)
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("🏈 *Week %d Scores*\n\n", week))
	for _, box := range boxScores {
		sb.WriteString(fmt.Sprintf("*%s* vs *%s*\n", box.Home.Team, box.Away.Team))
		sb.WriteString(fmt.Sprintf("Current: %.2f - %.2f\n", box.Home.Score, box.Away.Score))
		sb.WriteString(fmt.Sprintf("Projected: %.2f - %.2f\n\n", box.Home.Projected, box.Away.Projected))
	}
	return sb.String(), nil
}

func renderTable(t *report.Table) string {
	return fmt.Sprintf("*%s*\n```\n%s```", t.Title, t.Render())
}

func formatScore(v float64) string {
	return fmt.Sprintf("%.2f", v)
}

func formatDiff(v float64) string {
	if math.IsNaN(v) {
		return "-"
	}
	return fmt.Sprintf("%.2f", v)
}
