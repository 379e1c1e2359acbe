package httpapi

import (
	"encoding/csv"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"

	sonic "github.com/bytedance/sonic"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/riskibarqy/futsal-stats/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/futsal-stats/internal/platform/logging"
	"github.com/riskibarqy/futsal-stats/internal/usecase"
)

type envelope[T any] struct {
	APIVersion string           `json:"apiVersion"`
	Data       T                `json:"data"`
	Error      *googleErrorBody `json:"error"`
}

func newTestRouter(t *testing.T) http.Handler {
	t.Helper()

	matchRepo := memory.NewMatchRepository(memory.SeedMatches())
	goalRepo := memory.NewGoalRepository(memory.SeedGoals())
	logger := logging.NewNop()

	handler := NewHandler(
		usecase.NewStatsService(matchRepo, goalRepo, nil),
		usecase.NewPlayerService(matchRepo, goalRepo),
		usecase.NewReportService(matchRepo, goalRepo, 2, logger),
		logger,
	)
	return NewRouter(handler, logger, []string{"*"})
}

func doGet(t *testing.T, router http.Handler, target string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, target, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeData[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()

	var body envelope[T]
	require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
	require.Nil(t, body.Error)
	return body.Data
}

func TestHandler_Healthz(t *testing.T) {
	t.Parallel()

	rec := doGet(t, newTestRouter(t), "/healthz")
	require.Equal(t, http.StatusOK, rec.Code)

	data := decodeData[map[string]string](t, rec)
	assert.Equal(t, "ok", data["status"])
}

func TestHandler_Overview(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doGet(t, router, "/v1/overview?season=2023")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, overviewDTO{Matches: 6, Players: 10, Venues: 3, Goals: 27}, decodeData[overviewDTO](t, rec))

	rec = doGet(t, router, "/v1/overview?season=2023&venue="+url.QueryEscape(memory.VenueGeraldoSantana))
	require.Equal(t, http.StatusOK, rec.Code)
	got := decodeData[overviewDTO](t, rec)
	assert.Equal(t, 3, got.Matches)
	assert.Equal(t, 13, got.Goals)
}

func TestHandler_Catalogs(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doGet(t, router, "/v1/seasons")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, []string{"2023"}, decodeData[[]string](t, rec))

	rec = doGet(t, router, "/v1/players?season=2023")
	require.Equal(t, http.StatusOK, rec.Code)
	players := decodeData[[]string](t, rec)
	assert.Len(t, players, 10)
	assert.Equal(t, "Bruno", players[0])

	rec = doGet(t, router, "/v1/venues/list")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decodeData[[]string](t, rec), 3)
}

func TestHandler_Standings(t *testing.T) {
	t.Parallel()

	rec := doGet(t, newTestRouter(t), "/v1/standings?season=2023")
	require.Equal(t, http.StatusOK, rec.Code)

	rows := decodeData[[]standingDTO](t, rec)
	require.Len(t, rows, 10)
	for i, row := range rows {
		assert.Equal(t, i+1, row.Rank)
		assert.Equal(t, row.Wins*3+row.Draws, row.Points)
		assert.Equal(t, row.Wins+row.Draws+row.Losses, row.Matches)
		assert.True(t, strings.HasSuffix(row.EfficiencyLabel, "%"))
	}
}

func TestHandler_StandingsCSV(t *testing.T) {
	t.Parallel()

	rec := doGet(t, newTestRouter(t), "/v1/standings?season=2023&format=csv")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/csv; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "standings.csv")

	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 11)
	assert.Equal(t, standingsCSVHeader, records[0])
	assert.Equal(t, "1", records[1][0])
}

func TestHandler_Leaderboards(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doGet(t, router, "/v1/leaderboards/goals?season=2023")
	require.Equal(t, http.StatusOK, rec.Code)
	goals := decodeData[[]leaderboardEntryDTO](t, rec)
	require.Len(t, goals, 10)
	total := 0
	for i, e := range goals {
		if i > 0 {
			assert.GreaterOrEqual(t, goals[i-1].Count, e.Count)
		}
		total += e.Count
	}
	assert.Equal(t, 27, total)

	rec = doGet(t, router, "/v1/leaderboards/assists?season=2023&format=csv")
	require.Equal(t, http.StatusOK, rec.Code)
	records, err := csv.NewReader(rec.Body).ReadAll()
	require.NoError(t, err)
	assert.Equal(t, []string{"rank", "player", "matches", "assists", "average"}, records[0])
}

func TestHandler_Aggregates(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doGet(t, router, "/v1/aggregates/venues?season=2023")
	require.Equal(t, http.StatusOK, rec.Code)
	venues := decodeData[[]venueStatDTO](t, rec)
	require.Len(t, venues, 3)
	goals := 0
	for _, v := range venues {
		goals += v.Goals
	}
	assert.Equal(t, 27, goals)

	rec = doGet(t, router, "/v1/aggregates/months?season=2023")
	require.Equal(t, http.StatusOK, rec.Code)
	months := decodeData[[]monthStatDTO](t, rec)
	require.Len(t, months, 3)
	assert.Equal(t, 3, months[0].Month)
}

func TestHandler_Goals(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doGet(t, router, "/v1/goals/classified?season=2023")
	require.Equal(t, http.StatusOK, rec.Code)
	rows := decodeData[[]classifiedGoalDTO](t, rec)
	require.Len(t, rows, 27)
	assert.Equal(t, "04/03/2023", rows[0].Date)
	assert.Equal(t, "tie_breaking", rows[0].Type)

	rec = doGet(t, router, "/v1/goals/types?season=2023")
	require.Equal(t, http.StatusOK, rec.Code)
	counts := decodeData[[]typeCountDTO](t, rec)
	require.NotEmpty(t, counts)
	for _, c := range counts {
		assert.NotEmpty(t, c.Label)
	}

	rec = doGet(t, router, "/v1/goals/segments?season=2023")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, decodeData[[]segmentCountDTO](t, rec))
}

func TestHandler_PlayerRoutes(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	rec := doGet(t, router, "/v1/players/Bruno/profile?season=2023")
	require.Equal(t, http.StatusOK, rec.Code)
	profile := decodeData[playerProfileDTO](t, rec)
	assert.Equal(t, "Bruno", profile.Card.Player)
	assert.Equal(t, 6, profile.Card.Matches)
	assert.Equal(t, profile.Card.Goals+profile.Card.Assists, profile.Card.Participations)

	rec = doGet(t, router, "/v1/players/Bruno/teammates?season=2023")
	require.Equal(t, http.StatusOK, rec.Code)
	report := decodeData[teammateReportDTO](t, rec)
	assert.Equal(t, "Bruno", report.Player)
	assert.NotEmpty(t, report.Frequencies)
	for _, f := range report.Frequencies {
		assert.NotEqual(t, "Bruno", f.Teammate)
	}
}

func TestHandler_PlayerReports(t *testing.T) {
	t.Parallel()

	rec := doGet(t, newTestRouter(t), "/v1/reports/players?season=2023")
	require.Equal(t, http.StatusOK, rec.Code)

	reports := decodeData[[]playerReportDTO](t, rec)
	require.Len(t, reports, 10)
	for _, report := range reports {
		assert.Equal(t, report.Player, report.Profile.Card.Player)
		assert.Equal(t, report.Player, report.Teammates.Player)
	}
	assert.Equal(t, 1, reports[0].Profile.Card.Rank)
}

func TestHandler_Errors(t *testing.T) {
	t.Parallel()

	router := newTestRouter(t)

	tests := []struct {
		name   string
		target string
		status int
		reason string
	}{
		{name: "bad season", target: "/v1/standings?season=23", status: http.StatusBadRequest, reason: "INVALID_ARGUMENT"},
		{name: "bad format", target: "/v1/standings?format=xml", status: http.StatusBadRequest, reason: "INVALID_ARGUMENT"},
		{name: "bad until", target: "/v1/standings?until=yesterday", status: http.StatusBadRequest, reason: "INVALID_ARGUMENT"},
		{name: "bad month", target: "/v1/overview?month=Smarch", status: http.StatusBadRequest, reason: "INVALID_ARGUMENT"},
		{name: "unknown player", target: "/v1/players/Nobody/profile?season=2023", status: http.StatusNotFound, reason: "NOT_FOUND"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doGet(t, router, tt.target)
			require.Equal(t, tt.status, rec.Code)

			var body envelope[any]
			require.NoError(t, sonic.Unmarshal(rec.Body.Bytes(), &body))
			require.NotNil(t, body.Error)
			assert.Equal(t, tt.reason, body.Error.Status)
		})
	}
}

func TestParseUntil(t *testing.T) {
	t.Parallel()

	iso, err := parseUntil("2023-03-18")
	require.NoError(t, err)
	br, err := parseUntil("18/03/2023")
	require.NoError(t, err)
	assert.True(t, iso.Equal(br))

	_, err = parseUntil("18-03-2023")
	assert.ErrorIs(t, err, usecase.ErrInvalidInput)
}

func TestEncodePlayerReports(t *testing.T) {
	t.Parallel()

	reports := []usecase.PlayerReport{{Player: "Bruno"}}
	var buf strings.Builder
	require.NoError(t, EncodePlayerReports(&buf, reports, false))

	var got []playerReportDTO
	require.NoError(t, sonic.UnmarshalString(buf.String(), &got))
	require.Len(t, got, 1)
	assert.Equal(t, "Bruno", got[0].Player)
	assert.Empty(t, got[0].Teammates.Breakdown)
}
