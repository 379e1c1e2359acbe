package usecase

import (
	"context"
	"testing"

	"github.com/riskibarqy/futsal-stats/internal/domain/calendar"
	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	"github.com/riskibarqy/futsal-stats/internal/domain/match"
)

type stubMatchRepo struct {
	items []match.Match
	err   error
}

func (s stubMatchRepo) List(_ context.Context, season string) ([]match.Match, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]match.Match, 0, len(s.items))
	for _, m := range s.items {
		if season == "" || m.Date.Year == season {
			out = append(out, m)
		}
	}
	return out, nil
}

type stubGoalRepo struct {
	items []goal.Event
	err   error
}

func (s stubGoalRepo) List(_ context.Context, season string) ([]goal.Event, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]goal.Event, 0, len(s.items))
	for _, e := range s.items {
		if season == "" || e.Date.Year == season {
			out = append(out, e)
		}
	}
	return out, nil
}

func testDate(t *testing.T, raw string) calendar.Date {
	t.Helper()

	d, err := calendar.Parse(raw)
	if err != nil {
		t.Fatalf("parse date %q: %v", raw, err)
	}
	return d
}

func testGoal(t *testing.T, date, scorer, assist, score string, minute int) goal.Event {
	t.Helper()

	e := goal.Event{Date: testDate(t, date), Scorer: scorer, Assist: assist, RawScore: score}
	if s, err := goal.ParseScore(score); err == nil {
		e.Score = &s
	}
	m := minute
	e.Minute = &m
	return e
}

func fixtureMatches(t *testing.T) []match.Match {
	t.Helper()

	return []match.Match{
		{Date: testDate(t, "04/03/2023"), Venue: "Clube Geraldo Santana", Winners: []string{"Ana", "Bia"}, Losers: []string{"Carla", "Duda"}},
		{Date: testDate(t, "11/03/2023"), Venue: "Colégio Bom Conselho", DrawA: []string{"Ana", "Carla"}, DrawB: []string{"Bia", "Duda"}},
		{Date: testDate(t, "01/04/2023"), Venue: "Clube Geraldo Santana", Winners: []string{"Carla", "Ana"}, Losers: []string{"Bia", "Duda"}},
		{Date: testDate(t, "13/01/2024"), Venue: "Quadra Sintética PUCRS", Winners: []string{"Eva"}, Losers: []string{"Ana"}},
	}
}

func fixtureGoals(t *testing.T) []goal.Event {
	t.Helper()

	return []goal.Event{
		testGoal(t, "04/03/2023", "Ana", "Bia", "1-0", 5),
		testGoal(t, "04/03/2023", "Carla", "", "1-1", 18),
		testGoal(t, "04/03/2023", "Bia", "Ana", "2-1", 33),
		testGoal(t, "11/03/2023", "Duda", "Bia", "0-1", 12),
		testGoal(t, "11/03/2023", "Ana", "Carla", "1-1", 41),
		testGoal(t, "01/04/2023", "Ana", "", "1-0", 8),
		testGoal(t, "01/04/2023", "Carla", "Ana", "2-0", 27),
		testGoal(t, "13/01/2024", "Eva", "", "1-0", 3),
	}
}

func fixtureRepos(t *testing.T) (stubMatchRepo, stubGoalRepo) {
	t.Helper()
	return stubMatchRepo{items: fixtureMatches(t)}, stubGoalRepo{items: fixtureGoals(t)}
}
