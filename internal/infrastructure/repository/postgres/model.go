package postgres

import (
	"database/sql"
	"time"

	"github.com/lib/pq"
)

const (
	matchesTable = "matches"
	goalsTable   = "goals"

	seasonCondition = "EXTRACT(YEAR FROM match_date)::text = ?"
)

type matchTableModel struct {
	ID        int64          `db:"id,readonly"`
	MatchDate time.Time      `db:"match_date"`
	Venue     string         `db:"venue"`
	Winners   pq.StringArray `db:"winners"`
	Losers    pq.StringArray `db:"losers"`
	DrawA     pq.StringArray `db:"draw_a"`
	DrawB     pq.StringArray `db:"draw_b"`
	Position  int            `db:"position"`
	CreatedAt time.Time      `db:"created_at,readonly"`
}

type goalTableModel struct {
	ID        int64          `db:"id,readonly"`
	MatchDate time.Time      `db:"match_date"`
	Scorer    string         `db:"scorer"`
	Assist    string         `db:"assist"`
	Minute    sql.NullInt32  `db:"minute"`
	Score     sql.NullString `db:"score"`
	Position  int            `db:"position"`
	CreatedAt time.Time      `db:"created_at,readonly"`
}
