package standing

import (
	"sort"
	"testing"

	"github.com/riskibarqy/futsal-stats/internal/domain/calendar"
	"github.com/riskibarqy/futsal-stats/internal/domain/match"
)

func fixtureMatches(t *testing.T) []match.Match {
	t.Helper()

	day := func(raw string) calendar.Date {
		d, err := calendar.Parse(raw)
		if err != nil {
			t.Fatalf("parse date %q: %v", raw, err)
		}
		return d
	}

	return []match.Match{
		{Date: day("04/03/2023"), Winners: []string{"Ana", "Bia"}, Losers: []string{"Carla", "Duda"}},
		{Date: day("04/03/2023"), DrawA: []string{"Ana", "Carla"}, DrawB: []string{"Bia", "Eva"}},
		{Date: day("11/03/2023"), Winners: []string{"Carla", "Eva"}, Losers: []string{"Ana", "Bia"}},
		{Date: day("18/03/2023"), Winners: []string{"Duda"}, Losers: []string{"Eva"}},
	}
}

func TestBuild(t *testing.T) {
	t.Parallel()

	rows := Build(fixtureMatches(t))

	want := []Standing{
		{Rank: 1, Player: "Ana", Matches: 3, Wins: 1, Draws: 1, Losses: 1, Points: 4, Efficiency: 44.44},
		{Rank: 2, Player: "Bia", Matches: 3, Wins: 1, Draws: 1, Losses: 1, Points: 4, Efficiency: 44.44},
		{Rank: 3, Player: "Carla", Matches: 3, Wins: 1, Draws: 1, Losses: 1, Points: 4, Efficiency: 44.44},
		{Rank: 4, Player: "Eva", Matches: 3, Wins: 1, Draws: 1, Losses: 1, Points: 4, Efficiency: 44.44},
		{Rank: 5, Player: "Duda", Matches: 2, Wins: 1, Draws: 0, Losses: 1, Points: 3, Efficiency: 50},
	}
	if len(rows) != len(want) {
		t.Fatalf("expected %d rows, got %d", len(want), len(rows))
	}
	for i := range want {
		if rows[i] != want[i] {
			t.Fatalf("row %d = %+v, want %+v", i, rows[i], want[i])
		}
	}
	if got := rows[0].EfficiencyLabel(); got != "44.44%" {
		t.Fatalf("unexpected efficiency label: %s", got)
	}
}

func TestBuild_PointsLawAndRankOrder(t *testing.T) {
	t.Parallel()

	rows := Build(fixtureMatches(t))
	for i, row := range rows {
		if row.Points != row.Wins*3+row.Draws {
			t.Fatalf("points law broken for %+v", row)
		}
		if row.Efficiency != Round2(float64(row.Points)/float64(row.Matches*3)*100) {
			t.Fatalf("efficiency law broken for %+v", row)
		}
		if row.Rank != i+1 {
			t.Fatalf("rank %d at position %d", row.Rank, i)
		}
		if i > 0 && rows[i-1].Points < row.Points {
			t.Fatalf("rows not sorted by points at %d", i)
		}
	}
}

func TestBuild_MatchesRoster(t *testing.T) {
	t.Parallel()

	matches := fixtureMatches(t)
	rows := Build(matches)

	got := make([]string, 0, len(rows))
	for _, row := range rows {
		got = append(got, row.Player)
	}
	want := append([]string(nil), match.ExtractRoster(matches).Players...)
	sort.Strings(got)
	sort.Strings(want)

	if len(got) != len(want) {
		t.Fatalf("roster mismatch: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("roster mismatch: got %v, want %v", got, want)
		}
	}
}

func TestBuild_Empty(t *testing.T) {
	t.Parallel()

	rows := Build(nil)
	if rows == nil || len(rows) != 0 {
		t.Fatalf("expected empty non-nil table, got %#v", rows)
	}
}

func TestEfficiency_ZeroMatches(t *testing.T) {
	t.Parallel()

	if got := Efficiency(0, 0); got != 0 {
		t.Fatalf("expected 0 efficiency, got %v", got)
	}
}

func TestFind(t *testing.T) {
	t.Parallel()

	rows := Build(fixtureMatches(t))
	row, ok := Find(rows, "Duda")
	if !ok || row.Rank != 5 {
		t.Fatalf("unexpected find result: %+v %v", row, ok)
	}
	if _, ok := Find(rows, "Zoe"); ok {
		t.Fatalf("expected missing player")
	}
}
