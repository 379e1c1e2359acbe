package leaderboard

import (
	"sort"

	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	"github.com/riskibarqy/futsal-stats/internal/domain/standing"
)

// Kind selects what a leaderboard counts.
type Kind string

const (
	KindGoals   Kind = "goals"
	KindAssists Kind = "assists"
)

// Entry is one ranked row of a goal or assist leaderboard.
type Entry struct {
	Rank    int
	Player  string
	Matches int
	Count   int
	Average float64
}

func Goals(goals []goal.Event, standings []standing.Standing) []Entry {
	return build(standings, count(goals, func(e goal.Event) string { return e.Scorer }))
}

func Assists(goals []goal.Event, standings []standing.Standing) []Entry {
	return build(standings, count(goals, func(e goal.Event) string { return e.Assist }))
}

// For dispatches on kind.
func For(kind Kind, goals []goal.Event, standings []standing.Standing) []Entry {
	if kind == KindAssists {
		return Assists(goals, standings)
	}
	return Goals(goals, standings)
}

func Find(entries []Entry, player string) (Entry, bool) {
	for _, e := range entries {
		if e.Player == player {
			return e, true
		}
	}
	return Entry{}, false
}

func count(goals []goal.Event, key func(goal.Event) string) map[string]int {
	out := make(map[string]int)
	for _, e := range goals {
		if name := key(e); name != "" {
			out[name]++
		}
	}
	return out
}

// build keeps every standings player, with zero counts for those never credited.
func build(standings []standing.Standing, counts map[string]int) []Entry {
	out := make([]Entry, 0, len(standings))
	for _, row := range standings {
		if row.Matches < 1 {
			continue
		}
		n := counts[row.Player]
		out = append(out, Entry{
			Player:  row.Player,
			Matches: row.Matches,
			Count:   n,
			Average: standing.Round2(float64(n) / float64(row.Matches)),
		})
	}

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Average > out[j].Average
	})
	for i := range out {
		out[i].Rank = i + 1
	}

	return out
}
