package models

import (
	"fmt"
	"time"
)

// Position is a fantasy-relevant player position.
type Position string

const (
	PositionQB  Position = "QB"
	PositionRB  Position = "RB"
	PositionWR  Position = "WR"
	PositionTE  Position = "TE"
	PositionK   Position = "K"
	PositionDST Position = "D/ST"
)

// ParsePosition maps a provider position tag to a Position. Unknown
// tags are a data-contract violation and surface as an error.
func ParsePosition(s string) (Position, error) {
	switch s {
	case "QB":
		return PositionQB, nil
	case "RB":
		return PositionRB, nil
	case "WR":
		return PositionWR, nil
	case "TE":
		return PositionTE, nil
	case "K":
		return PositionK, nil
	case "D/ST", "DST":
		return PositionDST, nil
	}
	return "", fmt.Errorf("unknown position tag %q", s)
}

// PositionFromID maps an ESPN default position id to a Position.
func PositionFromID(id int) (Position, error) {
	positions := map[int]Position{
		1: PositionQB, 2: PositionRB, 3: PositionWR, 4: PositionTE, 5: PositionK, 16: PositionDST,
	}
	if pos, ok := positions[id]; ok {
		return pos, nil
	}
	return "", fmt.Errorf("unknown position id %d", id)
}

// FlexEligible reports whether the position may fill a FLEX slot.
func (p Position) FlexEligible() bool {
	return p == PositionRB || p == PositionWR || p == PositionTE
}

// PlayerWeekStat is one player's realized score for one week, as it
// appears in a box-score lineup.
type PlayerWeekStat struct {
	Name     string
	Position Position
	Points   float64
}

// SlotConfig is the lineup slot configuration for a league. Flex slots
// may be filled by RB, WR, or TE players not already occupying a fixed
// slot.
type SlotConfig struct {
	QB   int
	RB   int
	WR   int
	TE   int
	Flex int
	DST  int
	K    int
}

func (c SlotConfig) Validate() error {
	counts := map[string]int{
		"qb": c.QB, "rb": c.RB, "wr": c.WR, "te": c.TE, "flex": c.Flex, "dst": c.DST, "k": c.K,
	}
	for name, n := range counts {
		if n < 0 {
			return fmt.Errorf("negative %s slot count: %d", name, n)
		}
	}
	return nil
}

func (c SlotConfig) TotalSlots() int {
	return c.QB + c.RB + c.WR + c.TE + c.Flex + c.DST + c.K
}

// WeekStat is one player's scoring for one week as reported by the
// provider. Week 0 is the provider's season-total sentinel and is
// never a real week.
type WeekStat struct {
	Points    float64
	Breakdown map[string]float64
}

// TeamWeekResult is one team's side of one week's matchup.
type TeamWeekResult struct {
	Team      string
	Score     float64
	Projected float64
	Lineup    []PlayerWeekStat
}

// BoxScore is one matchup for one week, home and away.
type BoxScore struct {
	Week int
	Home TeamWeekResult
	Away TeamWeekResult
}

// GameRecord is a classified matchup: the sides reordered into winner
// and loser. ScoreDiff is NaN when neither side scored, which marks an
// unplayed game rather than a 0-0 tie.
type GameRecord struct {
	Week      int
	Winner    TeamWeekResult
	Loser     TeamWeekResult
	HomeTeam  string
	ScoreDiff float64
}

// PlayerSeason is a player's raw season data from the provider.
// OnTeamID is the league team currently rostering the player, 0 for a
// free agent.
type PlayerSeason struct {
	ID             int
	Name           string
	Position       Position
	ProTeamID      int
	OnTeamID       int
	ProjectedTotal float64
	Weekly         map[int]WeekStat
}

// PlayerSeasonRecord is one row of the season scoring table.
// CurrentTeam is the league team rostering the player, "FA" for a free
// agent. DraftedBy and DraftRound hold "-" until the draft join fills
// them in; they keep "-" for undrafted players.
type PlayerSeasonRecord struct {
	Name            string
	ID              int
	CurrentTeam     string
	Position        Position
	ProjectedPoints float64
	TotalPoints     float64
	Diff            float64
	DraftedBy       string
	DraftRound      string
}

// DraftPick is one pick of the league draft.
type DraftPick struct {
	PlayerID   int
	PlayerName string
	Round      int
	Team       string
}

// DraftedPlayer is one row of the draft-class availability table.
type DraftedPlayer struct {
	PlayerName  string
	PlayerID    int
	TeamName    string
	Round       int
	GamesPlayed int
	GamesMissed int
}

// TeamSeason is a team's actual season record.
type TeamSeason struct {
	ID            int
	Name          string
	Wins          int
	Losses        int
	Ties          int
	PointsFor     float64
	PointsAgainst float64
}

// TeamStandingRecord compares a team's actual record against the
// record it would hold had it fielded its optimal lineup every week.
type TeamStandingRecord struct {
	Team          string
	Wins          int
	Losses        int
	PerfectWins   int
	PerfectLosses int
	Diff          int
}

type LeagueMetadata struct {
	LeagueID       int
	Name           string
	CurrentWeek    int
	RegSeasonCount int
	SeasonID       int
	LastUpdated    time.Time
}
