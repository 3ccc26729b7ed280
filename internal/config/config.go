package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

type Config struct {
	TelegramBot TelegramBot
	ESPNAPI     ESPNAPI
	Roster      Roster
}

type TelegramBot struct {
	Token  string `envconfig:"TELEGRAM_TOKEN" required:"true"`
	ChatID int64  `envconfig:"CHAT_ID" required:"true"`
}

type ESPNAPI struct {
	Year           string `envconfig:"YEAR" required:"true"`
	LeagueID       string `envconfig:"LEAGUE_ID" required:"true"`
	SWID           string `envconfig:"SWID" required:"true"`
	ESPNS2         string `envconfig:"ESPN_S2" required:"true"`
	PlayersPerCall int    `envconfig:"PLAYERS_PER_CALL" default:"1000"`
}

// Roster holds the lineup slot counts for the league. Defaults match a
// standard ESPN roster.
type Roster struct {
	QB   int `envconfig:"ROSTER_QB" default:"1"`
	RB   int `envconfig:"ROSTER_RB" default:"2"`
	WR   int `envconfig:"ROSTER_WR" default:"3"`
	TE   int `envconfig:"ROSTER_TE" default:"1"`
	Flex int `envconfig:"ROSTER_FLEX" default:"1"`
	DST  int `envconfig:"ROSTER_DST" default:"1"`
	K    int `envconfig:"ROSTER_K" default:"1"`
}

func New() (*Config, error) {
	var c Config
	err := envconfig.Process("", &c)
	if err != nil {
		return nil, err
	}
	if c.ESPNAPI.PlayersPerCall <= 0 {
		return nil, fmt.Errorf("PLAYERS_PER_CALL must be positive, got %d", c.ESPNAPI.PlayersPerCall)
	}
	return &c, nil
}
