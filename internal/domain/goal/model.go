package goal

import (
	"strings"

	"github.com/riskibarqy/futsal-stats/internal/domain/calendar"
)

// Event is one goal from the goal log, in the order it was recorded.
type Event struct {
	Date     calendar.Date
	Scorer   string
	Assist   string
	Minute   *int
	RawScore string
	Score    *Score
	Venue    string
}

func (e Event) HasAssist() bool {
	return e.Assist != ""
}

// Involves reports whether the player scored or assisted the goal.
func (e Event) Involves(player string) bool {
	return player != "" && (e.Scorer == player || e.Assist == player)
}

// NormalizeName maps the log's empty markers to "".
func NormalizeName(raw string) string {
	name := strings.TrimSpace(raw)
	switch strings.ToLower(name) {
	case "", "-", "nan", "none", "null":
		return ""
	default:
		return name
	}
}
