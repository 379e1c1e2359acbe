// Package file reads the league spreadsheets from disk on every call.
package file

import (
	"context"

	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	"github.com/riskibarqy/futsal-stats/internal/domain/match"
	"github.com/riskibarqy/futsal-stats/internal/infrastructure/sheet"
)

type MatchRepository struct {
	path string
	opts sheet.DecodeOptions
}

func NewMatchRepository(path string, opts sheet.DecodeOptions) *MatchRepository {
	return &MatchRepository{path: path, opts: opts}
}

func (r *MatchRepository) List(ctx context.Context, season string) ([]match.Match, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table, err := sheet.ReadFile(r.path, sheet.DateColumns...)
	if err != nil {
		return nil, err
	}
	items, err := sheet.DecodeMatches(ctx, table, r.opts)
	if err != nil {
		return nil, err
	}

	if season == "" {
		return items, nil
	}
	out := make([]match.Match, 0, len(items))
	for _, m := range items {
		if m.Date.Year == season {
			out = append(out, m)
		}
	}
	return out, nil
}

type GoalRepository struct {
	path string
	opts sheet.DecodeOptions
}

func NewGoalRepository(path string, opts sheet.DecodeOptions) *GoalRepository {
	return &GoalRepository{path: path, opts: opts}
}

func (r *GoalRepository) List(ctx context.Context, season string) ([]goal.Event, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	table, err := sheet.ReadFile(r.path, sheet.DateColumns...)
	if err != nil {
		return nil, err
	}
	items, err := sheet.DecodeGoals(ctx, table, r.opts)
	if err != nil {
		return nil, err
	}

	if season == "" {
		return items, nil
	}
	out := make([]goal.Event, 0, len(items))
	for _, e := range items {
		if e.Date.Year == season {
			out = append(out, e)
		}
	}
	return out, nil
}
