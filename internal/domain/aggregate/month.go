package aggregate

import (
	"sort"
	"time"

	"github.com/riskibarqy/futsal-stats/internal/domain/calendar"
	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	"github.com/riskibarqy/futsal-stats/internal/domain/match"
	"github.com/riskibarqy/futsal-stats/internal/domain/standing"
)

// MonthStat is the goal output of one calendar month.
type MonthStat struct {
	Year         string
	Month        time.Month
	MonthName    string
	Abbreviation string
	Matches      int
	Goals        int
	Average      float64
}

type monthKey struct {
	year  string
	month time.Month
}

// ByMonth joins goals per month with distinct match days per month. Months
// missing from either side are left out. Rows are in calendar order.
func ByMonth(matches []match.Match, goals []goal.Event) []MonthStat {
	days := make(map[monthKey]map[string]struct{})
	for _, m := range matches {
		key := monthKey{year: m.Date.Year, month: m.Date.Month}
		if days[key] == nil {
			days[key] = make(map[string]struct{})
		}
		days[key][m.Date.Key()] = struct{}{}
	}

	goalCount := make(map[monthKey]int)
	for _, g := range goals {
		goalCount[monthKey{year: g.Date.Year, month: g.Date.Month}]++
	}

	keys := make([]monthKey, 0, len(goalCount))
	for key := range goalCount {
		if len(days[key]) > 0 {
			keys = append(keys, key)
		}
	}
	sort.Slice(keys, func(i, j int) bool {
		if keys[i].year != keys[j].year {
			return keys[i].year < keys[j].year
		}
		return keys[i].month < keys[j].month
	})

	out := make([]MonthStat, 0, len(keys))
	for _, key := range keys {
		n := len(days[key])
		out = append(out, MonthStat{
			Year:         key.year,
			Month:        key.month,
			MonthName:    calendar.MonthName(key.month),
			Abbreviation: calendar.MonthAbbreviation(key.month),
			Matches:      n,
			Goals:        goalCount[key],
			Average:      standing.Round2(float64(goalCount[key]) / float64(n)),
		})
	}

	return out
}
