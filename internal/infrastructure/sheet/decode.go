package sheet

import (
	"context"
	"fmt"
	"math"
	"strconv"

	"github.com/riskibarqy/futsal-stats/internal/domain/calendar"
	"github.com/riskibarqy/futsal-stats/internal/domain/dataset"
	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	"github.com/riskibarqy/futsal-stats/internal/domain/match"
	"github.com/riskibarqy/futsal-stats/internal/platform/logging"
)

// Column headers as published by the league, with English aliases.
var (
	colDate    = []string{"Data", "Date"}
	colVenue   = []string{"Local", "Venue"}
	colWinners = []string{"Time Vencedor", "Winners"}
	colLosers  = []string{"Time Perdedor", "Losers"}
	colDrawA   = []string{"Time Empate 1", "Draw A"}
	colDrawB   = []string{"Time Empate 2", "Draw B"}
	colScorer  = []string{"Goleador", "Scorer"}
	colAssist  = []string{"Assistente", "Assist"}
	colMinute  = []string{"Minuto", "Minute"}
	colScore   = []string{"Placar", "Score"}
)

// DateColumns are the headers that hold match days.
var DateColumns = colDate

type DecodeOptions struct {
	// StrictRosters fails the load on a match that breaks roster rules.
	// Otherwise the match is kept and a warning is logged.
	StrictRosters bool
	Logger        *logging.Logger
}

func (o DecodeOptions) logger() *logging.Logger {
	if o.Logger == nil {
		return logging.Default()
	}
	return o.Logger
}

// DecodeMatches turns results rows into matches. Blank rows are skipped.
func DecodeMatches(ctx context.Context, t Table, opts DecodeOptions) ([]match.Match, error) {
	if len(t.Header) == 0 {
		return []match.Match{}, nil
	}

	dateIdx, err := t.requireColumn(colDate...)
	if err != nil {
		return nil, err
	}
	venueIdx := t.column(colVenue...)
	winnersIdx := t.column(colWinners...)
	losersIdx := t.column(colLosers...)
	drawAIdx := t.column(colDrawA...)
	drawBIdx := t.column(colDrawB...)

	out := make([]match.Match, 0, len(t.Rows))
	for i, row := range t.Rows {
		if isBlankRow(row) {
			continue
		}
		line := i + 2

		date, err := calendar.Parse(cell(row, dateIdx))
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %w", dataset.ErrInvalid, t.Source, line, err)
		}

		m := match.Match{
			Date:    date,
			Venue:   cleanText(cell(row, venueIdx)),
			Winners: match.SplitRoster(cell(row, winnersIdx)),
			Losers:  match.SplitRoster(cell(row, losersIdx)),
			DrawA:   match.SplitRoster(cell(row, drawAIdx)),
			DrawB:   match.SplitRoster(cell(row, drawBIdx)),
		}
		if err := m.Validate(); err != nil {
			if opts.StrictRosters {
				return nil, fmt.Errorf("%w: %s line %d: %w", dataset.ErrInvalid, t.Source, line, err)
			}
			opts.logger().WarnContext(ctx, "match kept despite roster problem",
				"source", t.Source,
				"line", line,
				"error", err,
			)
		}
		out = append(out, m)
	}

	return out, nil
}

// DecodeGoals turns goal log rows into events. A malformed score is logged and
// left empty so the goal still counts for scorers and assists.
func DecodeGoals(ctx context.Context, t Table, opts DecodeOptions) ([]goal.Event, error) {
	if len(t.Header) == 0 {
		return []goal.Event{}, nil
	}

	dateIdx, err := t.requireColumn(colDate...)
	if err != nil {
		return nil, err
	}
	scorerIdx, err := t.requireColumn(colScorer...)
	if err != nil {
		return nil, err
	}
	assistIdx := t.column(colAssist...)
	minuteIdx := t.column(colMinute...)
	scoreIdx := t.column(colScore...)

	out := make([]goal.Event, 0, len(t.Rows))
	for i, row := range t.Rows {
		if isBlankRow(row) {
			continue
		}
		line := i + 2

		date, err := calendar.Parse(cell(row, dateIdx))
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %w", dataset.ErrInvalid, t.Source, line, err)
		}
		minute, err := parseMinute(cell(row, minuteIdx))
		if err != nil {
			return nil, fmt.Errorf("%w: %s line %d: %w", dataset.ErrInvalid, t.Source, line, err)
		}

		e := goal.Event{
			Date:     date,
			Scorer:   goal.NormalizeName(cell(row, scorerIdx)),
			Assist:   goal.NormalizeName(cell(row, assistIdx)),
			Minute:   minute,
			RawScore: cell(row, scoreIdx),
		}
		if !goal.IsAbsentScore(e.RawScore) {
			score, err := goal.ParseScore(e.RawScore)
			if err != nil {
				opts.logger().WarnContext(ctx, "goal score ignored",
					"source", t.Source,
					"line", line,
					"error", err,
				)
			} else {
				e.Score = &score
			}
		}
		out = append(out, e)
	}

	return out, nil
}

func parseMinute(raw string) (*int, error) {
	if match.IsAbsent(raw) {
		return nil, nil
	}
	if n, err := strconv.Atoi(raw); err == nil {
		return &n, nil
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f != math.Trunc(f) || f < 0 {
		return nil, fmt.Errorf("parse minute %q, expected a whole number", raw)
	}
	n := int(f)
	return &n, nil
}

func cleanText(v string) string {
	if match.IsAbsent(v) {
		return ""
	}
	return v
}
