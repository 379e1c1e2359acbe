package match

import (
	"errors"
	"reflect"
	"testing"

	"github.com/riskibarqy/futsal-stats/internal/domain/calendar"
)

func mustDate(t *testing.T, raw string) calendar.Date {
	t.Helper()

	d, err := calendar.Parse(raw)
	if err != nil {
		t.Fatalf("parse date %q: %v", raw, err)
	}
	return d
}

func TestSplitRoster(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		cell string
		want []string
	}{
		{name: "comma space", cell: "Ana, Bia, Carla", want: []string{"Ana", "Bia", "Carla"}},
		{name: "no space", cell: "Ana,Bia", want: []string{"Ana", "Bia"}},
		{name: "sentinel", cell: "nan", want: nil},
		{name: "empty", cell: "", want: nil},
		{name: "trailing comma", cell: "Ana, ", want: []string{"Ana"}},
		{name: "sentinel token", cell: "Ana, nan", want: []string{"Ana"}},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			got := SplitRoster(tc.cell)
			if !reflect.DeepEqual(got, tc.want) {
				t.Fatalf("SplitRoster(%q) = %#v, want %#v", tc.cell, got, tc.want)
			}
		})
	}
}

func TestMatchValidate(t *testing.T) {
	t.Parallel()

	date := mustDate(t, "04/03/2023")

	valid := Match{Date: date, Venue: "CGS", Winners: []string{"Ana"}, Losers: []string{"Bia"}}
	if err := valid.Validate(); err != nil {
		t.Fatalf("expected valid match, got %v", err)
	}

	draw := Match{Date: date, DrawA: []string{"Ana"}, DrawB: []string{"Bia"}}
	if err := draw.Validate(); err != nil {
		t.Fatalf("expected valid draw, got %v", err)
	}

	mixed := Match{Date: date, Winners: []string{"Ana"}, DrawA: []string{"Bia"}}
	if err := mixed.Validate(); !errors.Is(err, ErrMixedOutcome) {
		t.Fatalf("expected ErrMixedOutcome, got %v", err)
	}

	duplicate := Match{Date: date, Winners: []string{"Ana"}, Losers: []string{"Ana", "Bia"}}
	if err := duplicate.Validate(); !errors.Is(err, ErrDuplicatePlayer) {
		t.Fatalf("expected ErrDuplicatePlayer, got %v", err)
	}

	if err := (Match{}).Validate(); !errors.Is(err, ErrMissingDate) {
		t.Fatalf("expected ErrMissingDate, got %v", err)
	}
}

func TestSlotOutcome(t *testing.T) {
	t.Parallel()

	want := map[Slot]Outcome{
		SlotWinner: OutcomeWin,
		SlotLoser:  OutcomeLoss,
		SlotDrawA:  OutcomeDraw,
		SlotDrawB:  OutcomeDraw,
	}
	for slot, outcome := range want {
		if got := slot.Outcome(); got != outcome {
			t.Fatalf("slot %s outcome = %s, want %s", slot, got, outcome)
		}
	}
}

func TestMatchClone_DetachesRosters(t *testing.T) {
	t.Parallel()

	original := Match{Date: mustDate(t, "04/03/2023"), Winners: []string{"Ana"}}
	clone := original.Clone()
	clone.Winners[0] = "Bia"

	if original.Winners[0] != "Ana" {
		t.Fatalf("clone must not alias rosters")
	}
}
