package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET /openapi.yaml", handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players", handler.ListPlayers)
	mux.HandleFunc("GET /v1/players/search", handler.SearchPlayers)
	mux.HandleFunc("GET /v1/players/stats", handler.ListAllPlayerStats)
	mux.HandleFunc("GET /v1/players/{playerName}/stats", handler.GetPlayerStats)
	mux.HandleFunc("GET /v1/players/{playerName}/career", handler.GetCareerStats)
	mux.HandleFunc("GET /v1/players/{playerName}/seasons", handler.ListPlayerSeasons)
	mux.HandleFunc("GET /v1/players/{playerName}/trend/{stat}", handler.GetStatTrend)
	mux.HandleFunc("GET /v1/compare", handler.ComparePlayers)
}

func registerSeasonRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/seasons", handler.ListSeasons)
	mux.HandleFunc("GET /v1/seasons/{year}/stats", handler.GetSeasonStats)
}

func registerTeamRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/teams/{team}", handler.GetTeamStats)
	mux.HandleFunc("GET /v1/teams/{team}/players", handler.ListTeamPlayers)
	mux.HandleFunc("GET /v1/teams/{team}/seasons/{seasonID}", handler.GetTeamSeasonStats)
}

func registerLeaderboardRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/rankings/{stat}", handler.GetRankings)
	mux.HandleFunc("GET /v1/leaders/efficiency", handler.ListEfficiencyLeaders)
	mux.HandleFunc("GET /v1/leaders/most-improved/{stat}", handler.ListMostImproved)
}
