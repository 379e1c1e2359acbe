package memory

import (
	"context"
	"sync"

	"github.com/riskibarqy/futsal-stats/internal/domain/match"
)

type MatchRepository struct {
	mu      sync.RWMutex
	matches []match.Match
}

func NewMatchRepository(matches []match.Match) *MatchRepository {
	items := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		items = append(items, m.Clone())
	}
	return &MatchRepository{matches: items}
}

func (r *MatchRepository) List(_ context.Context, season string) ([]match.Match, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]match.Match, 0, len(r.matches))
	for _, m := range r.matches {
		if season != "" && m.Date.Year != season {
			continue
		}
		out = append(out, m.Clone())
	}
	return out, nil
}

// Replace swaps the whole table, used when a source is reloaded.
func (r *MatchRepository) Replace(matches []match.Match) {
	items := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		items = append(items, m.Clone())
	}

	r.mu.Lock()
	r.matches = items
	r.mu.Unlock()
}
