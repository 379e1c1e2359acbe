package standing

import (
	"math"
	"sort"

	"github.com/riskibarqy/futsal-stats/internal/domain/match"
)

// Build ranks every roster player by points. Ties keep roster order.
func Build(matches []match.Match) []Standing {
	roster := match.ExtractRoster(matches)

	tally := make(map[string]*Standing, len(roster.Players))
	for _, name := range roster.Players {
		tally[name] = &Standing{Player: name, Matches: roster.Matches[name]}
	}

	for _, m := range matches {
		for _, slot := range match.Slots {
			for _, name := range m.Roster(slot) {
				row, ok := tally[name]
				if !ok {
					continue
				}
				switch slot.Outcome() {
				case match.OutcomeWin:
					row.Wins++
				case match.OutcomeLoss:
					row.Losses++
				case match.OutcomeDraw:
					row.Draws++
				}
			}
		}
	}

	out := make([]Standing, 0, len(roster.Players))
	for _, name := range roster.Players {
		row := tally[name]
		if row.Matches < 1 {
			continue
		}
		row.Points = Points(row.Wins, row.Draws)
		row.Efficiency = Efficiency(row.Points, row.Matches)
		out = append(out, *row)
	}

	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Points > out[j].Points
	})
	for i := range out {
		out[i].Rank = i + 1
	}

	return out
}

// Find returns the standing of one player.
func Find(rows []Standing, player string) (Standing, bool) {
	for _, row := range rows {
		if row.Player == player {
			return row, true
		}
	}
	return Standing{}, false
}

func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}
