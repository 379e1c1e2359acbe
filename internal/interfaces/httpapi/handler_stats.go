package httpapi

import (
	"net/http"
	"strconv"

	"github.com/riskibarqy/futsal-stats/internal/domain/leaderboard"
	"github.com/riskibarqy/futsal-stats/internal/domain/standing"
)

func (h *Handler) GetOverview(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetOverview")
	defer span.End()

	q, _, err := h.parseQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	overview, err := h.statsService.Overview(ctx, q)
	if err != nil {
		h.logger.WarnContext(ctx, "get overview failed", "season", q.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, overviewToDTO(overview))
}

func (h *Handler) ListSeasons(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListSeasons")
	defer span.End()

	seasons, err := h.statsService.Seasons(ctx)
	if err != nil {
		h.logger.WarnContext(ctx, "list seasons failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, seasons)
}

func (h *Handler) ListVenues(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListVenues")
	defer span.End()

	q, _, err := h.parseQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	venues, err := h.statsService.Venues(ctx, q)
	if err != nil {
		h.logger.WarnContext(ctx, "list venues failed", "season", q.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, venues)
}

func (h *Handler) ListPlayers(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayers")
	defer span.End()

	q, _, err := h.parseQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	players, err := h.statsService.Players(ctx, q)
	if err != nil {
		h.logger.WarnContext(ctx, "list players failed", "season", q.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, players)
}

func (h *Handler) ListStandings(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListStandings")
	defer span.End()

	q, format, err := h.parseQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.statsService.Standings(ctx, q)
	if err != nil {
		h.logger.WarnContext(ctx, "list standings failed", "season", q.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	if format == formatCSV {
		writeCSV(ctx, w, "standings.csv", standingsCSVHeader, standingsCSVRows(rows))
		return
	}
	writeSuccess(ctx, w, http.StatusOK, standingsToDTO(rows))
}

func (h *Handler) ListGoalLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGoalLeaderboard")
	defer span.End()

	h.writeLeaderboard(w, r.WithContext(ctx), leaderboard.KindGoals)
}

func (h *Handler) ListAssistLeaderboard(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListAssistLeaderboard")
	defer span.End()

	h.writeLeaderboard(w, r.WithContext(ctx), leaderboard.KindAssists)
}

func (h *Handler) writeLeaderboard(w http.ResponseWriter, r *http.Request, kind leaderboard.Kind) {
	ctx := r.Context()

	q, format, err := h.parseQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	entries, err := h.statsService.Leaderboard(ctx, q, kind)
	if err != nil {
		h.logger.WarnContext(ctx, "list leaderboard failed", "kind", string(kind), "season", q.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	if format == formatCSV {
		writeCSV(ctx, w, string(kind)+".csv", leaderboardCSVHeader(kind), leaderboardCSVRows(entries))
		return
	}
	writeSuccess(ctx, w, http.StatusOK, leaderboardToDTO(entries))
}

func (h *Handler) ListVenueAggregates(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListVenueAggregates")
	defer span.End()

	q, _, err := h.parseQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.statsService.VenueTable(ctx, q)
	if err != nil {
		h.logger.WarnContext(ctx, "list venue aggregates failed", "season", q.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, venueStatsToDTO(rows))
}

func (h *Handler) ListMonthAggregates(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListMonthAggregates")
	defer span.End()

	q, _, err := h.parseQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.statsService.MonthTable(ctx, q)
	if err != nil {
		h.logger.WarnContext(ctx, "list month aggregates failed", "season", q.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, monthStatsToDTO(rows))
}

func (h *Handler) ListClassifiedGoals(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListClassifiedGoals")
	defer span.End()

	q, _, err := h.parseQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	rows, err := h.statsService.ClassifiedGoals(ctx, q)
	if err != nil {
		h.logger.WarnContext(ctx, "list classified goals failed", "season", q.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, classifiedToDTO(rows))
}

func (h *Handler) ListGoalTypes(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGoalTypes")
	defer span.End()

	q, _, err := h.parseQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	counts, err := h.statsService.GoalTypeCounts(ctx, q)
	if err != nil {
		h.logger.WarnContext(ctx, "list goal types failed", "season", q.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, typeCountsToDTO(counts))
}

func (h *Handler) ListGoalSegments(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListGoalSegments")
	defer span.End()

	q, _, err := h.parseQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	counts, err := h.statsService.SegmentCounts(ctx, q)
	if err != nil {
		h.logger.WarnContext(ctx, "list goal segments failed", "season", q.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, segmentCountsToDTO(counts))
}

var standingsCSVHeader = []string{"rank", "player", "matches", "wins", "draws", "losses", "points", "efficiency"}

func standingsCSVRows(rows []standing.Standing) [][]string {
	out := make([][]string, 0, len(rows))
	for _, s := range rows {
		out = append(out, []string{
			strconv.Itoa(s.Rank),
			s.Player,
			strconv.Itoa(s.Matches),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Draws),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.Points),
			s.EfficiencyLabel(),
		})
	}
	return out
}

func leaderboardCSVHeader(kind leaderboard.Kind) []string {
	return []string{"rank", "player", "matches", string(kind), "average"}
}

func leaderboardCSVRows(entries []leaderboard.Entry) [][]string {
	out := make([][]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, []string{
			strconv.Itoa(e.Rank),
			e.Player,
			strconv.Itoa(e.Matches),
			strconv.Itoa(e.Count),
			strconv.FormatFloat(e.Average, 'f', 2, 64),
		})
	}
	return out
}
