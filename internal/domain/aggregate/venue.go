package aggregate

import (
	"sort"

	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	"github.com/riskibarqy/futsal-stats/internal/domain/match"
	"github.com/riskibarqy/futsal-stats/internal/domain/standing"
)

// DefaultVenueAbbreviations are the short names used on charts.
func DefaultVenueAbbreviations() map[string]string {
	return map[string]string{
		"Clube Geraldo Santana":  "CGS",
		"Colégio Bom Conselho":   "CBC",
		"Quadra Sintética PUCRS": "PUCRS",
	}
}

// VenueStat is the goal output of one venue.
type VenueStat struct {
	Venue        string
	Abbreviation string
	Matches      int
	Goals        int
	Average      float64
}

// ByVenue counts matches per venue from the match table and goals per venue
// from goals whose venue was resolved. Every venue with a match is listed.
func ByVenue(matches []match.Match, goals []goal.Event, abbreviations map[string]string) []VenueStat {
	matchCount := make(map[string]int)
	for _, m := range matches {
		matchCount[m.Venue]++
	}

	goalsByDayVenue := make(map[[2]string]int)
	for _, g := range goals {
		if g.Venue == "" {
			continue
		}
		goalsByDayVenue[[2]string{g.Date.Key(), g.Venue}]++
	}
	goalCount := make(map[string]int)
	for key, n := range goalsByDayVenue {
		goalCount[key[1]] += n
	}

	venues := make([]string, 0, len(matchCount))
	for venue := range matchCount {
		venues = append(venues, venue)
	}
	sort.Strings(venues)

	out := make([]VenueStat, 0, len(venues))
	for _, venue := range venues {
		n := matchCount[venue]
		out = append(out, VenueStat{
			Venue:        venue,
			Abbreviation: abbreviate(venue, abbreviations),
			Matches:      n,
			Goals:        goalCount[venue],
			Average:      standing.Round2(float64(goalCount[venue]) / float64(n)),
		})
	}

	return out
}

func abbreviate(venue string, abbreviations map[string]string) string {
	if short, ok := abbreviations[venue]; ok && short != "" {
		return short
	}
	return venue
}
