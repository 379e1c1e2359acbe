package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/futsal-stats/internal/domain/calendar"
	"github.com/riskibarqy/futsal-stats/internal/domain/match"
	qb "github.com/riskibarqy/futsal-stats/internal/platform/querybuilder"
)

type MatchRepository struct {
	db *sqlx.DB
}

func NewMatchRepository(db *sqlx.DB) *MatchRepository {
	return &MatchRepository{db: db}
}

func (r *MatchRepository) List(ctx context.Context, season string) ([]match.Match, error) {
	builder := qb.Select("*").From(matchesTable).OrderBy("match_date", "position", "id")
	if season != "" {
		builder = builder.Where(qb.Expr(seasonCondition, season))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select matches query: %w", err)
	}

	var rows []matchTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select matches season=%q: %w", season, err)
	}

	out := make([]match.Match, 0, len(rows))
	for _, row := range rows {
		out = append(out, match.Match{
			Date:    calendar.FromTime(row.MatchDate),
			Venue:   row.Venue,
			Winners: rosterFromArray(row.Winners),
			Losers:  rosterFromArray(row.Losers),
			DrawA:   rosterFromArray(row.DrawA),
			DrawB:   rosterFromArray(row.DrawB),
		})
	}
	return out, nil
}

func rosterFromArray(arr pq.StringArray) []string {
	if len(arr) == 0 {
		return nil
	}
	return append([]string(nil), arr...)
}
