package cache

import (
	"context"

	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	"github.com/riskibarqy/futsal-stats/internal/domain/match"
	basecache "github.com/riskibarqy/futsal-stats/internal/platform/cache"
)

const (
	matchKeyPrefix = "matches:season:"
	goalKeyPrefix  = "goals:season:"
)

type MatchRepository struct {
	next  match.Repository
	cache *basecache.Store
}

func NewMatchRepository(next match.Repository, cache *basecache.Store) *MatchRepository {
	return &MatchRepository{next: next, cache: cache}
}

func (r *MatchRepository) List(ctx context.Context, season string) ([]match.Match, error) {
	v, err := r.cache.GetOrLoad(ctx, matchKeyPrefix+season, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, season)
		if err != nil {
			return nil, err
		}
		return cloneMatches(items), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]match.Match)
	return cloneMatches(items), nil
}

type GoalRepository struct {
	next  goal.Repository
	cache *basecache.Store
}

func NewGoalRepository(next goal.Repository, cache *basecache.Store) *GoalRepository {
	return &GoalRepository{next: next, cache: cache}
}

func (r *GoalRepository) List(ctx context.Context, season string) ([]goal.Event, error) {
	v, err := r.cache.GetOrLoad(ctx, goalKeyPrefix+season, func(ctx context.Context) (any, error) {
		items, err := r.next.List(ctx, season)
		if err != nil {
			return nil, err
		}
		return append([]goal.Event(nil), items...), nil
	})
	if err != nil {
		return nil, err
	}

	items, _ := v.([]goal.Event)
	return append([]goal.Event(nil), items...), nil
}

// Invalidate drops every cached season so the next read hits the source.
func Invalidate(ctx context.Context, cache *basecache.Store) {
	cache.DeletePrefix(ctx, matchKeyPrefix)
	cache.DeletePrefix(ctx, goalKeyPrefix)
}

func cloneMatches(items []match.Match) []match.Match {
	out := make([]match.Match, 0, len(items))
	for _, m := range items {
		out = append(out, m.Clone())
	}
	return out
}
