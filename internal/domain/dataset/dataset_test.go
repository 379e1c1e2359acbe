package dataset

import (
	"reflect"
	"testing"
	"time"

	"github.com/riskibarqy/futsal-stats/internal/domain/calendar"
	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	"github.com/riskibarqy/futsal-stats/internal/domain/match"
)

func day(t *testing.T, raw string) calendar.Date {
	t.Helper()

	d, err := calendar.Parse(raw)
	if err != nil {
		t.Fatalf("parse date %q: %v", raw, err)
	}
	return d
}

func sampleTables(t *testing.T) Tables {
	t.Helper()

	matches := []match.Match{
		{Date: day(t, "04/03/2023"), Venue: "Clube Geraldo Santana", Winners: []string{"Ana"}, Losers: []string{"Bia"}},
		{Date: day(t, "11/03/2023"), Venue: "Colégio Bom Conselho", DrawA: []string{"Ana"}, DrawB: []string{"Carla"}},
		{Date: day(t, "08/04/2023"), Venue: "Clube Geraldo Santana", Winners: []string{"Bia"}, Losers: []string{"Carla"}},
		{Date: day(t, "10/02/2024"), Venue: "Quadra Sintética PUCRS", Winners: []string{"Duda"}, Losers: []string{"Ana"}},
	}
	goals := []goal.Event{
		{Date: day(t, "04/03/2023"), Scorer: "Ana"},
		{Date: day(t, "11/03/2023"), Scorer: "Carla", Assist: "Duda"},
		{Date: day(t, "08/04/2023"), Scorer: "Bia"},
		{Date: day(t, "15/04/2023"), Scorer: "Bia"},
		{Date: day(t, "10/02/2024"), Scorer: "Duda"},
	}
	return New(matches, goals)
}

func TestNew_AttachesVenueByDay(t *testing.T) {
	t.Parallel()

	tables := sampleTables(t)

	want := []string{"Clube Geraldo Santana", "Colégio Bom Conselho", "Clube Geraldo Santana", "", "Quadra Sintética PUCRS"}
	for i, g := range tables.Goals {
		if g.Venue != want[i] {
			t.Fatalf("goal %d venue = %q, want %q", i, g.Venue, want[i])
		}
	}
}

func TestFilterApply(t *testing.T) {
	t.Parallel()

	tables := sampleTables(t)
	cutoff := time.Date(2023, time.April, 8, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		filter      Filter
		wantMatches int
		wantGoals   int
	}{
		{name: "no filter", filter: Filter{}, wantMatches: 4, wantGoals: 5},
		{name: "season", filter: Filter{Season: "2023"}, wantMatches: 3, wantGoals: 4},
		{name: "inclusive cutoff", filter: Filter{Season: "2023", Until: &cutoff}, wantMatches: 3, wantGoals: 3},
		{name: "venue drops unresolved goals", filter: Filter{Venues: []string{"Clube Geraldo Santana"}}, wantMatches: 2, wantGoals: 2},
		{name: "month", filter: Filter{Season: "2023", Month: time.March}, wantMatches: 2, wantGoals: 2},
		{name: "nothing", filter: Filter{Season: "1999"}, wantMatches: 0, wantGoals: 0},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := tc.filter.Apply(tables)
			if len(got.Matches) != tc.wantMatches || len(got.Goals) != tc.wantGoals {
				t.Fatalf("got %d matches and %d goals, want %d and %d",
					len(got.Matches), len(got.Goals), tc.wantMatches, tc.wantGoals)
			}
		})
	}
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	got := Summarize(Filter{Season: "2023"}.Apply(sampleTables(t)))
	want := Overview{Matches: 3, Players: 3, Venues: 2, Goals: 4}
	if got != want {
		t.Fatalf("unexpected overview: %+v", got)
	}

	if empty := Summarize(Tables{}); empty != (Overview{}) {
		t.Fatalf("expected zero overview, got %+v", empty)
	}
}

func TestSeasonsVenuesPlayers(t *testing.T) {
	t.Parallel()

	tables := sampleTables(t)

	if got := Seasons(tables); !reflect.DeepEqual(got, []string{"2023", "2024"}) {
		t.Fatalf("unexpected seasons: %v", got)
	}
	wantVenues := []string{"Clube Geraldo Santana", "Colégio Bom Conselho", "Quadra Sintética PUCRS"}
	if got := VenueNames(tables); !reflect.DeepEqual(got, wantVenues) {
		t.Fatalf("unexpected venues: %v", got)
	}
	if got := Players(tables); !reflect.DeepEqual(got, []string{"Ana", "Bia", "Carla", "Duda"}) {
		t.Fatalf("unexpected players: %v", got)
	}

	last, ok := LastMatchDay(tables)
	if !ok || !last.Equal(time.Date(2024, time.February, 10, 0, 0, 0, 0, time.UTC)) {
		t.Fatalf("unexpected last match day: %v %v", last, ok)
	}
}
