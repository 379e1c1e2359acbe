package postgres

import (
	"database/sql"
	"testing"
	"time"

	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/futsal-stats/internal/domain/calendar"
	"github.com/riskibarqy/futsal-stats/internal/domain/dataset"
	"github.com/riskibarqy/futsal-stats/internal/domain/goal"
	"github.com/riskibarqy/futsal-stats/internal/domain/match"
	qb "github.com/riskibarqy/futsal-stats/internal/platform/querybuilder"
)

func TestGoalFromRow(t *testing.T) {
	t.Parallel()

	row := goalTableModel{
		MatchDate: time.Date(2023, 3, 4, 0, 0, 0, 0, time.UTC),
		Scorer:    "Bruno",
		Assist:    "-",
		Minute:    sql.NullInt32{Int32: 12, Valid: true},
		Score:     sql.NullString{String: "2x1", Valid: true},
	}

	e := goalFromRow(row)
	assert.Equal(t, "2023", e.Date.Year)
	assert.Equal(t, "", e.Assist)
	require.NotNil(t, e.Minute)
	assert.Equal(t, 12, *e.Minute)
	require.NotNil(t, e.Score)
	assert.Equal(t, goal.Score{A: 2, B: 1}, *e.Score)

	row.Score = sql.NullString{String: "??", Valid: true}
	row.Minute = sql.NullInt32{}
	e = goalFromRow(row)
	assert.Nil(t, e.Score)
	assert.Nil(t, e.Minute)
	assert.Equal(t, "??", e.RawScore)
}

func TestRosterFromArray(t *testing.T) {
	t.Parallel()

	assert.Nil(t, rosterFromArray(pq.StringArray{}))
	assert.Equal(t, []string{"Caio"}, rosterFromArray(pq.StringArray{"Caio"}))
}

func TestImportRows(t *testing.T) {
	t.Parallel()

	date, err := calendar.Parse("18/03/2023")
	require.NoError(t, err)
	minute := 9
	tables := dataset.Tables{
		Matches: []match.Match{{Date: date, Venue: "Colégio Bom Conselho", Winners: []string{"Ana"}, Losers: []string{"Bia"}}},
		Goals:   []goal.Event{{Date: date, Scorer: "Ana", Minute: &minute, RawScore: "1-0"}},
	}

	matches := matchRows(tables)
	require.Len(t, matches, 1)
	assert.Equal(t, pq.StringArray{}, matches[0].DrawA)

	goals := goalRows(tables)
	require.Len(t, goals, 1)
	assert.True(t, goals[0].Minute.Valid)
	assert.Equal(t, "1-0", goals[0].Score.String)

	query, args, err := qb.InsertModels(matchesTable, matches, "")
	require.NoError(t, err)
	assert.Equal(t, "INSERT INTO matches (match_date, venue, winners, losers, draw_a, draw_b, position) VALUES ($1, $2, $3, $4, $5, $6, $7)", query)
	assert.Len(t, args, 7)
}
