package playerinsight

import (
	"sort"

	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
)

type PartnerCount struct {
	Player string
	Count  int
}

// Partners links a player with who set up their goals and whose goals they set up.
type Partners struct {
	Received   []PartnerCount
	Unassisted int
	Given      []PartnerCount
}

func AssistPartners(player string, goals []goal.Event) Partners {
	received := make(map[string]int)
	given := make(map[string]int)
	var unassisted int

	for _, e := range goals {
		if e.Scorer == player {
			if e.HasAssist() {
				received[e.Assist]++
			} else {
				unassisted++
			}
		}
		if e.Assist == player && e.Scorer != "" {
			given[e.Scorer]++
		}
	}

	return Partners{
		Received:   ranked(received),
		Unassisted: unassisted,
		Given:      ranked(given),
	}
}

func ranked(counts map[string]int) []PartnerCount {
	out := make([]PartnerCount, 0, len(counts))
	for name, n := range counts {
		out = append(out, PartnerCount{Player: name, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Player < out[j].Player
	})
	return out
}
