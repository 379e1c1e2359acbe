package dataset

import (
	"errors"
	"sort"
	"strings"
	"time"

	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	"github.com/riskibarqy/futsal-stats/internal/domain/match"
)

// ErrInvalid marks source rows that could not be decoded.
var ErrInvalid = errors.New("invalid dataset")

// Tables is the pair of source tables every computation starts from.
type Tables struct {
	Matches []match.Match
	Goals   []goal.Event
}

// New copies both tables and resolves each goal's venue from its match day.
func New(matches []match.Match, goals []goal.Event) Tables {
	outMatches := make([]match.Match, 0, len(matches))
	for _, m := range matches {
		outMatches = append(outMatches, m.Clone())
	}

	return Tables{
		Matches: outMatches,
		Goals:   AttachVenues(outMatches, goals),
	}
}

func (t Tables) IsEmpty() bool {
	return len(t.Matches) == 0 && len(t.Goals) == 0
}

// AttachVenues sets each goal's venue to the venue of the first match played
// on the same day. Goals on a day with no match keep an empty venue.
func AttachVenues(matches []match.Match, goals []goal.Event) []goal.Event {
	venueByDay := make(map[string]string, len(matches))
	for _, m := range matches {
		key := m.Date.Key()
		if _, exists := venueByDay[key]; !exists {
			venueByDay[key] = m.Venue
		}
	}

	out := make([]goal.Event, 0, len(goals))
	for _, g := range goals {
		g.Venue = venueByDay[g.Date.Key()]
		out = append(out, g)
	}
	return out
}

// Filter narrows both tables. Zero values mean no restriction.
type Filter struct {
	Season string
	Until  *time.Time
	Venues []string
	Month  time.Month
}

func (f Filter) Apply(t Tables) Tables {
	venues := make(map[string]struct{}, len(f.Venues))
	for _, v := range f.Venues {
		if v = strings.TrimSpace(v); v != "" {
			venues[v] = struct{}{}
		}
	}

	out := Tables{
		Matches: make([]match.Match, 0, len(t.Matches)),
		Goals:   make([]goal.Event, 0, len(t.Goals)),
	}
	for _, m := range t.Matches {
		if !f.keepDay(m.Date.Time, m.Date.Year, m.Date.Month) {
			continue
		}
		if len(venues) > 0 {
			if _, ok := venues[m.Venue]; !ok {
				continue
			}
		}
		out.Matches = append(out.Matches, m)
	}
	for _, g := range t.Goals {
		if !f.keepDay(g.Date.Time, g.Date.Year, g.Date.Month) {
			continue
		}
		if len(venues) > 0 {
			if _, ok := venues[g.Venue]; !ok {
				continue
			}
		}
		out.Goals = append(out.Goals, g)
	}

	return out
}

func (f Filter) keepDay(day time.Time, year string, month time.Month) bool {
	if f.Season != "" && year != f.Season {
		return false
	}
	if f.Month != 0 && month != f.Month {
		return false
	}
	if f.Until != nil {
		cutoff := time.Date(f.Until.Year(), f.Until.Month(), f.Until.Day(), 0, 0, 0, 0, time.UTC)
		if day.After(cutoff) {
			return false
		}
	}
	return true
}

// Overview holds the headline counters of a filtered dataset.
type Overview struct {
	Matches int
	Players int
	Venues  int
	Goals   int
}

func Summarize(t Tables) Overview {
	return Overview{
		Matches: len(t.Matches),
		Players: len(match.ExtractRoster(t.Matches).Players),
		Venues:  len(VenueNames(t)),
		Goals:   len(t.Goals),
	}
}

// Seasons returns the distinct years present, ascending.
func Seasons(t Tables) []string {
	set := make(map[string]struct{})
	for _, m := range t.Matches {
		set[m.Date.Year] = struct{}{}
	}
	for _, g := range t.Goals {
		set[g.Date.Year] = struct{}{}
	}
	return sortedKeys(set)
}

func VenueNames(t Tables) []string {
	set := make(map[string]struct{})
	for _, m := range t.Matches {
		if m.Venue != "" {
			set[m.Venue] = struct{}{}
		}
	}
	return sortedKeys(set)
}

// Players returns every roster name, sorted.
func Players(t Tables) []string {
	players := match.ExtractRoster(t.Matches).Players
	out := make([]string, 0, len(players))
	out = append(out, players...)
	sort.Strings(out)
	return out
}

// LastMatchDay returns the most recent match day, used as the default cutoff.
func LastMatchDay(t Tables) (time.Time, bool) {
	var last time.Time
	for _, m := range t.Matches {
		if m.Date.Time.After(last) {
			last = m.Date.Time
		}
	}
	return last, !last.IsZero()
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		if k != "" {
			out = append(out, k)
		}
	}
	sort.Strings(out)
	return out
}
