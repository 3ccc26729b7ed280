// Package memory caches the assembled season snapshot so repeated bot
// commands do not replay the whole provider fetch.
package memory

import (
	"sync"
	"time"

	"github.com/okarlsson/ffwrapped/internal/lineup"
	"github.com/okarlsson/ffwrapped/internal/models"
)

// Snapshot is one fully assembled season: every analytic table the
// recap is built from, computed in a single pass over provider data.
type Snapshot struct {
	Metadata   models.LeagueMetadata
	Teams      []models.TeamSeason
	Games      []models.GameRecord
	Players    []models.PlayerSeasonRecord
	DraftClass []models.DraftedPlayer
	Perfect    map[string]lineup.Record
	BuiltAt    time.Time
}

type Repository struct {
	snapshot *Snapshot
	mu       sync.RWMutex
}

func NewRepository() *Repository {
	return &Repository{}
}

func (r *Repository) SaveSnapshot(s *Snapshot) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.snapshot = s
}

func (r *Repository) GetSnapshot() *Snapshot {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.snapshot
}
