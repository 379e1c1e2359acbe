// Package resilient puts a circuit breaker in front of the stats data source.
package resilient

import (
	"context"
	"fmt"

	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	"github.com/riskibarqy/futsal-stats/internal/domain/match"
	"github.com/riskibarqy/futsal-stats/internal/platform/resilience"
)

type MatchRepository struct {
	next    match.Repository
	breaker *resilience.CircuitBreaker
}

func NewMatchRepository(next match.Repository, breaker *resilience.CircuitBreaker) *MatchRepository {
	return &MatchRepository{next: next, breaker: breaker}
}

func (r *MatchRepository) List(ctx context.Context, season string) ([]match.Match, error) {
	var out []match.Match
	err := r.breaker.Execute(ctx, func(ctx context.Context) error {
		items, err := r.next.List(ctx, season)
		if err != nil {
			return err
		}
		out = items
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list matches: %w", err)
	}
	return out, nil
}

type GoalRepository struct {
	next    goal.Repository
	breaker *resilience.CircuitBreaker
}

func NewGoalRepository(next goal.Repository, breaker *resilience.CircuitBreaker) *GoalRepository {
	return &GoalRepository{next: next, breaker: breaker}
}

func (r *GoalRepository) List(ctx context.Context, season string) ([]goal.Event, error) {
	var out []goal.Event
	err := r.breaker.Execute(ctx, func(ctx context.Context) error {
		items, err := r.next.List(ctx, season)
		if err != nil {
			return err
		}
		out = items
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("list goals: %w", err)
	}
	return out, nil
}
