package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/riskibarqy/futsal-stats/internal/domain/calendar"
	"github.com/riskibarqy/futsal-stats/internal/domain/dataset"
	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	"github.com/riskibarqy/futsal-stats/internal/domain/match"
)

// Query is the set of dashboard filters. Zero values select everything.
type Query struct {
	Season string
	Until  *time.Time
	Venues []string
	Month  string
}

func (q Query) filter() (dataset.Filter, error) {
	season := strings.TrimSpace(q.Season)
	if season != "" && !isYear(season) {
		return dataset.Filter{}, fmt.Errorf("%w: season must be a four digit year, got %q", ErrInvalidInput, q.Season)
	}

	f := dataset.Filter{
		Season: season,
		Until:  q.Until,
		Venues: q.Venues,
	}
	if strings.TrimSpace(q.Month) != "" {
		month, ok := calendar.ParseMonthName(q.Month)
		if !ok {
			return dataset.Filter{}, fmt.Errorf("%w: unknown month %q", ErrInvalidInput, q.Month)
		}
		f.Month = month
	}

	return f, nil
}

func isYear(v string) bool {
	if len(v) != 4 {
		return false
	}
	for _, r := range v {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}

// tableSource loads the season tables both services start from.
type tableSource struct {
	matchRepo match.Repository
	goalRepo  goal.Repository
}

func (s tableSource) load(ctx context.Context, season string) (dataset.Tables, error) {
	matches, err := s.matchRepo.List(ctx, season)
	if err != nil {
		return dataset.Tables{}, sourceError("list matches", err)
	}
	goals, err := s.goalRepo.List(ctx, season)
	if err != nil {
		return dataset.Tables{}, sourceError("list goals", err)
	}
	return dataset.New(matches, goals), nil
}

// filtered returns the season tables and the same tables narrowed by q.
func (s tableSource) filtered(ctx context.Context, q Query) (season dataset.Tables, out dataset.Tables, err error) {
	f, err := q.filter()
	if err != nil {
		return dataset.Tables{}, dataset.Tables{}, err
	}
	season, err = s.load(ctx, f.Season)
	if err != nil {
		return dataset.Tables{}, dataset.Tables{}, err
	}
	out = f.Apply(season)
	recordTableSizes(ctx, season, out)
	return season, out, nil
}

func sourceError(op string, err error) error {
	if errors.Is(err, dataset.ErrInvalid) {
		return fmt.Errorf("%w: %s: %w", ErrInvalidDataset, op, err)
	}
	return fmt.Errorf("%w: %s: %w", ErrDependencyUnavailable, op, err)
}
