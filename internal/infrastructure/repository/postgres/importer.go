package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/riskibarqy/futsal-stats/internal/domain/dataset"
	qb "github.com/riskibarqy/futsal-stats/internal/platform/querybuilder"
)

// Importer writes decoded spreadsheet tables into the stats schema.
type Importer struct {
	db *sqlx.DB
}

func NewImporter(db *sqlx.DB) *Importer {
	return &Importer{db: db}
}

// ReplaceSeasons deletes every season present in t and inserts its rows
// in one transaction. Row order is kept through the position column.
func (i *Importer) ReplaceSeasons(ctx context.Context, t dataset.Tables) error {
	seasons := dataset.Seasons(t)
	if len(seasons) == 0 {
		return nil
	}

	tx, err := i.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin tx replace seasons: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	for _, season := range seasons {
		for _, table := range []string{goalsTable, matchesTable} {
			query, args, err := qb.DeleteFrom(table).Where(qb.Expr(seasonCondition, season)).ToSQL()
			if err != nil {
				return fmt.Errorf("build delete %s query: %w", table, err)
			}
			if _, err := tx.ExecContext(ctx, query, args...); err != nil {
				return fmt.Errorf("delete %s season=%s: %w", table, season, err)
			}
		}
	}

	if rows := matchRows(t); len(rows) > 0 {
		query, args, err := qb.InsertModels(matchesTable, rows, "")
		if err != nil {
			return fmt.Errorf("build insert matches query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert %d matches: %w", len(rows), err)
		}
	}

	if rows := goalRows(t); len(rows) > 0 {
		query, args, err := qb.InsertModels(goalsTable, rows, "")
		if err != nil {
			return fmt.Errorf("build insert goals query: %w", err)
		}
		if _, err := tx.ExecContext(ctx, query, args...); err != nil {
			return fmt.Errorf("insert %d goals: %w", len(rows), err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit replace seasons tx: %w", err)
	}
	return nil
}

func matchRows(t dataset.Tables) []matchTableModel {
	rows := make([]matchTableModel, 0, len(t.Matches))
	for idx, m := range t.Matches {
		rows = append(rows, matchTableModel{
			MatchDate: m.Date.Time,
			Venue:     m.Venue,
			Winners:   pq.StringArray(nonNil(m.Winners)),
			Losers:    pq.StringArray(nonNil(m.Losers)),
			DrawA:     pq.StringArray(nonNil(m.DrawA)),
			DrawB:     pq.StringArray(nonNil(m.DrawB)),
			Position:  idx,
		})
	}
	return rows
}

func goalRows(t dataset.Tables) []goalTableModel {
	rows := make([]goalTableModel, 0, len(t.Goals))
	for idx, e := range t.Goals {
		row := goalTableModel{
			MatchDate: e.Date.Time,
			Scorer:    e.Scorer,
			Assist:    e.Assist,
			Position:  idx,
		}
		if e.Minute != nil {
			row.Minute = sql.NullInt32{Int32: int32(*e.Minute), Valid: true}
		}
		if e.RawScore != "" {
			row.Score = sql.NullString{String: e.RawScore, Valid: true}
		}
		rows = append(rows, row)
	}
	return rows
}

func nonNil(v []string) []string {
	if v == nil {
		return []string{}
	}
	return v
}
