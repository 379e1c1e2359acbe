package match

// Roster is the set of distinct players and how many matches each played.
type Roster struct {
	Players []string
	Matches map[string]int
}

func (r Roster) Has(player string) bool {
	_, ok := r.Matches[player]
	return ok
}

// ExtractRoster scans the winner column for every match, then the loser
// column, then both draw columns. Players keep first-appearance order.
func ExtractRoster(matches []Match) Roster {
	out := Roster{
		Players: make([]string, 0),
		Matches: make(map[string]int),
	}

	for _, slot := range Slots {
		for _, m := range matches {
			for _, name := range m.Roster(slot) {
				if IsAbsent(name) {
					continue
				}
				if _, exists := out.Matches[name]; !exists {
					out.Players = append(out.Players, name)
				}
				out.Matches[name]++
			}
		}
	}

	return out
}
