package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/venues/list", handler.ListVenues)
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/overview", handler.GetOverview)
}

func registerTableRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/standings", handler.ListStandings)
	mux.HandleFunc("GET /v1/leaderboards/goals", handler.ListGoalLeaderboard)
	mux.HandleFunc("GET /v1/leaderboards/assists", handler.ListAssistLeaderboard)
	mux.HandleFunc("GET /v1/aggregates/venues", handler.ListVenueAggregates)
	mux.HandleFunc("GET /v1/aggregates/months", handler.ListMonthAggregates)
}

func registerGoalRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/goals/classified", handler.ListClassifiedGoals)
	mux.HandleFunc("GET /v1/goals/types", handler.ListGoalTypes)
	mux.HandleFunc("GET /v1/goals/segments", handler.ListGoalSegments)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players/{player}/profile", handler.GetPlayerProfile)
	mux.HandleFunc("GET /v1/players/{player}/teammates", handler.GetPlayerTeammates)
	// Builds every player's profile and teammate tables in one response.
	mux.HandleFunc("GET /v1/reports/players", handler.ListPlayerReports)
}
