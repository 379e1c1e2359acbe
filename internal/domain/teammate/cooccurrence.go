package teammate

import (
	"fmt"
	"sort"

	"github.com/riskibarqy/futsal-stats/internal/domain/match"
	"github.com/riskibarqy/futsal-stats/internal/domain/standing"
)

// Frequency counts how often a teammate shared a roster with the player.
type Frequency struct {
	Teammate string
	Count    int
}

// Partnership is the record of the player and one teammate on the same side.
type Partnership struct {
	Teammate   string
	Wins       int
	Losses     int
	Draws      int
	Matches    int
	Points     int
	Efficiency float64
}

// EfficiencyLabel renders the efficiency rounded to a whole percentage.
func (p Partnership) EfficiencyLabel() string {
	return fmt.Sprintf("%.0f%%", p.Efficiency)
}

type Report struct {
	Player      string
	Frequencies []Frequency
	Breakdown   []Partnership
}

// ForPlayer collects everyone listed in the same roster cell as the player.
// Names must match exactly.
func ForPlayer(player string, matches []match.Match) Report {
	tally := make(map[string]*Partnership)
	order := make([]string, 0)

	for _, m := range matches {
		for _, slot := range match.Slots {
			names := m.Roster(slot)
			if !contains(names, player) {
				continue
			}
			for _, name := range names {
				if name == player {
					continue
				}
				p, ok := tally[name]
				if !ok {
					p = &Partnership{Teammate: name}
					tally[name] = p
					order = append(order, name)
				}
				switch slot.Outcome() {
				case match.OutcomeWin:
					p.Wins++
				case match.OutcomeLoss:
					p.Losses++
				case match.OutcomeDraw:
					p.Draws++
				}
			}
		}
	}

	report := Report{
		Player:      player,
		Frequencies: make([]Frequency, 0, len(order)),
		Breakdown:   make([]Partnership, 0, len(order)),
	}
	for _, name := range order {
		p := tally[name]
		p.Matches = p.Wins + p.Losses + p.Draws
		p.Points = standing.Points(p.Wins, p.Draws)
		p.Efficiency = standing.Efficiency(p.Points, p.Matches)

		report.Frequencies = append(report.Frequencies, Frequency{Teammate: name, Count: p.Matches})
		report.Breakdown = append(report.Breakdown, *p)
	}

	sort.SliceStable(report.Frequencies, func(i, j int) bool {
		if report.Frequencies[i].Count != report.Frequencies[j].Count {
			return report.Frequencies[i].Count > report.Frequencies[j].Count
		}
		return report.Frequencies[i].Teammate < report.Frequencies[j].Teammate
	})
	sort.SliceStable(report.Breakdown, func(i, j int) bool {
		if report.Breakdown[i].Matches != report.Breakdown[j].Matches {
			return report.Breakdown[i].Matches > report.Breakdown[j].Matches
		}
		return report.Breakdown[i].Teammate < report.Breakdown[j].Teammate
	})

	return report
}

// With returns the partnership with one teammate.
func (r Report) With(teammate string) (Partnership, bool) {
	for _, p := range r.Breakdown {
		if p.Teammate == teammate {
			return p, true
		}
	}
	return Partnership{}, false
}

func contains(names []string, player string) bool {
	for _, name := range names {
		if name == player {
			return true
		}
	}
	return false
}
