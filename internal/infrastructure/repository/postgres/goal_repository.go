package postgres

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/riskibarqy/futsal-stats/internal/domain/calendar"
	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	qb "github.com/riskibarqy/futsal-stats/internal/platform/querybuilder"
)

type GoalRepository struct {
	db *sqlx.DB
}

func NewGoalRepository(db *sqlx.DB) *GoalRepository {
	return &GoalRepository{db: db}
}

func (r *GoalRepository) List(ctx context.Context, season string) ([]goal.Event, error) {
	builder := qb.Select("*").From(goalsTable).OrderBy("match_date", "position", "id")
	if season != "" {
		builder = builder.Where(qb.Expr(seasonCondition, season))
	}
	query, args, err := builder.ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build select goals query: %w", err)
	}

	var rows []goalTableModel
	if err := r.db.SelectContext(ctx, &rows, query, args...); err != nil {
		return nil, fmt.Errorf("select goals season=%q: %w", season, err)
	}

	out := make([]goal.Event, 0, len(rows))
	for _, row := range rows {
		out = append(out, goalFromRow(row))
	}
	return out, nil
}

func goalFromRow(row goalTableModel) goal.Event {
	e := goal.Event{
		Date:   calendar.FromTime(row.MatchDate),
		Scorer: goal.NormalizeName(row.Scorer),
		Assist: goal.NormalizeName(row.Assist),
	}
	if row.Minute.Valid {
		minute := int(row.Minute.Int32)
		e.Minute = &minute
	}
	if row.Score.Valid {
		e.RawScore = row.Score.String
		if score, err := goal.ParseScore(row.Score.String); err == nil {
			e.Score = &score
		}
	}
	return e
}
