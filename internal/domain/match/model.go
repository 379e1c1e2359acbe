package match

import (
	"errors"
	"fmt"
	"strings"

	"github.com/riskibarqy/futsal-stats/internal/domain/calendar"
)

var (
	ErrMissingDate     = errors.New("match date is required")
	ErrMixedOutcome    = errors.New("match has both decisive and draw rosters")
	ErrDuplicatePlayer = errors.New("player listed in more than one roster slot")
)

// Outcome is the result a roster slot represents for its players.
type Outcome string

const (
	OutcomeWin  Outcome = "win"
	OutcomeLoss Outcome = "loss"
	OutcomeDraw Outcome = "draw"
)

// Slot names one of the four roster columns of a match row.
type Slot string

const (
	SlotWinner Slot = "winner"
	SlotLoser  Slot = "loser"
	SlotDrawA  Slot = "draw_a"
	SlotDrawB  Slot = "draw_b"
)

// Slots lists roster slots in the order they are scanned.
var Slots = []Slot{SlotWinner, SlotLoser, SlotDrawA, SlotDrawB}

func (s Slot) Outcome() Outcome {
	switch s {
	case SlotWinner:
		return OutcomeWin
	case SlotLoser:
		return OutcomeLoss
	default:
		return OutcomeDraw
	}
}

// Match is one row of the results table.
type Match struct {
	Date    calendar.Date
	Venue   string
	Winners []string
	Losers  []string
	DrawA   []string
	DrawB   []string
}

func (m Match) Roster(slot Slot) []string {
	switch slot {
	case SlotWinner:
		return m.Winners
	case SlotLoser:
		return m.Losers
	case SlotDrawA:
		return m.DrawA
	case SlotDrawB:
		return m.DrawB
	default:
		return nil
	}
}

func (m Match) IsDraw() bool {
	return len(m.DrawA) > 0 || len(m.DrawB) > 0
}

// SlotOf reports the first slot that lists the player.
func (m Match) SlotOf(player string) (Slot, bool) {
	for _, slot := range Slots {
		for _, name := range m.Roster(slot) {
			if name == player {
				return slot, true
			}
		}
	}
	return "", false
}

func (m Match) Validate() error {
	if m.Date.IsZero() {
		return ErrMissingDate
	}

	decisive := len(m.Winners) > 0 || len(m.Losers) > 0
	if decisive && m.IsDraw() {
		return fmt.Errorf("%w: %s at %q", ErrMixedOutcome, m.Date, m.Venue)
	}

	seen := make(map[string]Slot)
	for _, slot := range Slots {
		for _, name := range m.Roster(slot) {
			if prev, exists := seen[name]; exists {
				return fmt.Errorf("%w: %q in %s and %s on %s", ErrDuplicatePlayer, name, prev, slot, m.Date)
			}
			seen[name] = slot
		}
	}

	return nil
}

func (m Match) Clone() Match {
	out := m
	out.Winners = append([]string(nil), m.Winners...)
	out.Losers = append([]string(nil), m.Losers...)
	out.DrawA = append([]string(nil), m.DrawA...)
	out.DrawB = append([]string(nil), m.DrawB...)
	return out
}

// SplitRoster decodes a comma separated roster cell into player names.
func SplitRoster(cell string) []string {
	if IsAbsent(cell) {
		return nil
	}

	parts := strings.Split(cell, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		name := strings.TrimSpace(part)
		if IsAbsent(name) {
			continue
		}
		out = append(out, name)
	}
	if len(out) == 0 {
		return nil
	}
	return out
}

// IsAbsent reports whether a cell holds no value.
func IsAbsent(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "", "nan", "none", "null", "<nil>":
		return true
	default:
		return false
	}
}
