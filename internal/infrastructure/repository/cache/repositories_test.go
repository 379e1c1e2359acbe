package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/riskibarqy/futsal-stats/internal/domain/calendar"
	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	"github.com/riskibarqy/futsal-stats/internal/domain/match"
	basecache "github.com/riskibarqy/futsal-stats/internal/platform/cache"
)

type countingMatchRepo struct {
	calls   int
	err     error
	matches []match.Match
}

func (r *countingMatchRepo) List(_ context.Context, _ string) ([]match.Match, error) {
	r.calls++
	if r.err != nil {
		return nil, r.err
	}
	return r.matches, nil
}

type countingGoalRepo struct {
	calls int
	goals []goal.Event
}

func (r *countingGoalRepo) List(_ context.Context, _ string) ([]goal.Event, error) {
	r.calls++
	return r.goals, nil
}

func TestMatchRepository_CachesPerSeasonAndReturnsCopies(t *testing.T) {
	t.Parallel()

	date, err := calendar.Parse("04/03/2023")
	if err != nil {
		t.Fatalf("parse date: %v", err)
	}
	next := &countingMatchRepo{matches: []match.Match{{
		Date:    date,
		Venue:   "Clube Geraldo Santana",
		Winners: []string{"Bruno"},
		Losers:  []string{"Igor"},
	}}}
	repo := NewMatchRepository(next, basecache.NewStore(time.Minute))

	first, err := repo.List(context.Background(), "2023")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	first[0].Winners[0] = "mutated"

	second, err := repo.List(context.Background(), "2023")
	if err != nil {
		t.Fatalf("List error: %v", err)
	}
	if second[0].Winners[0] != "Bruno" {
		t.Fatalf("cached roster was mutated: %v", second[0].Winners)
	}
	if next.calls != 1 {
		t.Fatalf("next called %d times, want 1", next.calls)
	}

	if _, err := repo.List(context.Background(), "2024"); err != nil {
		t.Fatalf("List 2024 error: %v", err)
	}
	if next.calls != 2 {
		t.Fatalf("next called %d times after other season, want 2", next.calls)
	}
}

func TestMatchRepository_PropagatesErrors(t *testing.T) {
	t.Parallel()

	boom := errors.New("db down")
	repo := NewMatchRepository(&countingMatchRepo{err: boom}, basecache.NewStore(time.Minute))

	if _, err := repo.List(context.Background(), ""); !errors.Is(err, boom) {
		t.Fatalf("expected source error, got %v", err)
	}
}

func TestInvalidate_ForcesReload(t *testing.T) {
	t.Parallel()

	store := basecache.NewStore(0)
	next := &countingGoalRepo{goals: []goal.Event{{Scorer: "Bruno"}}}
	repo := NewGoalRepository(next, store)

	for i := 0; i < 2; i++ {
		if _, err := repo.List(context.Background(), "2023"); err != nil {
			t.Fatalf("List error: %v", err)
		}
	}
	Invalidate(context.Background(), store)
	if _, err := repo.List(context.Background(), "2023"); err != nil {
		t.Fatalf("List error: %v", err)
	}

	if next.calls != 2 {
		t.Fatalf("next called %d times, want 2", next.calls)
	}
}
