package httpapi

import (
	"net/http"
	"strings"
)

func (h *Handler) GetPlayerProfile(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerProfile")
	defer span.End()

	player := strings.TrimSpace(r.PathValue("player"))
	q, _, err := h.parseQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	profile, err := h.playerService.Profile(ctx, q, player)
	if err != nil {
		h.logger.WarnContext(ctx, "get player profile failed", "player", player, "season", q.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, profileToDTO(profile))
}

func (h *Handler) GetPlayerTeammates(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetPlayerTeammates")
	defer span.End()

	player := strings.TrimSpace(r.PathValue("player"))
	q, _, err := h.parseQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.playerService.Teammates(ctx, q, player)
	if err != nil {
		h.logger.WarnContext(ctx, "get player teammates failed", "player", player, "season", q.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, teammatesToDTO(report))
}

func (h *Handler) ListPlayerReports(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListPlayerReports")
	defer span.End()

	q, _, err := h.parseQuery(ctx, r)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	reports, err := h.reportService.BuildPlayerReports(ctx, q)
	if err != nil {
		h.logger.ErrorContext(ctx, "build player reports failed", "season", q.Season, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, reportsToDTO(reports))
}
