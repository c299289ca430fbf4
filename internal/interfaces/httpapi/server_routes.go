package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, swaggerEnabled bool) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if !swaggerEnabled {
		return
	}

	mux.HandleFunc("GET "+openAPIPath, handler.OpenAPI)
	mux.HandleFunc("GET /docs", handler.SwaggerUI)
	mux.HandleFunc("GET /docs/", handler.SwaggerUI)
}

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/tournaments", handler.ListTournaments)
	mux.HandleFunc("GET /v1/teams", handler.ListTeams)
	mux.HandleFunc("GET /v1/cities", handler.ListCities)
}

func registerMatchRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/series", handler.ListSeries)
	mux.HandleFunc("GET /v1/series/{seriesID}/matches", handler.ListMatches)
	mux.HandleFunc("GET /v1/series/{seriesID}/matches/{matchID}/analysis", handler.GetMatchAnalysis)
	mux.HandleFunc("GET /v1/series/{seriesID}/overview", handler.GetSeriesOverview)
	mux.HandleFunc("GET /v1/head-to-head", handler.GetHeadToHead)
}

func registerPlayerRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/players/search", handler.SearchPlayers)
	mux.HandleFunc("GET /v1/players/{playerID}", handler.GetPlayerProfile)
}

func registerPredictionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/predictions", handler.Predict)
	mux.HandleFunc("POST /v1/run-rate", handler.DeriveRunRate)
	mux.HandleFunc("POST /v1/chat", handler.Chat)
}

func registerAdminRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /api/admins/{adminID}", handler.GetAdmin)
	mux.HandleFunc("GET /api/admins/{adminID}/statistics", handler.GetAdminStatistics)
	mux.HandleFunc("PUT /api/admins/{adminID}/profile", handler.UpdateAdminProfile)
	mux.HandleFunc("PUT /api/admins/{adminID}/statistics", handler.RecordAdminStatistics)
}

func registerSessionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/sessions", handler.CreateSession)
	mux.HandleFunc("GET /v1/sessions/{sessionID}", handler.GetSession)
	mux.HandleFunc("DELETE /v1/sessions/{sessionID}", handler.DeleteSession)
	mux.HandleFunc("PUT /v1/sessions/{sessionID}/filter", handler.SetSessionFilter)
	mux.HandleFunc("PUT /v1/sessions/{sessionID}/series", handler.SelectSessionSeries)
	mux.HandleFunc("PUT /v1/sessions/{sessionID}/teams", handler.SetSessionTeams)
	mux.HandleFunc("PUT /v1/sessions/{sessionID}/match", handler.SelectSessionMatch)
	mux.HandleFunc("PUT /v1/sessions/{sessionID}/snapshot", handler.SetSessionSnapshot)
	mux.HandleFunc("POST /v1/sessions/{sessionID}/player-search", handler.SearchSessionPlayers)
	mux.HandleFunc("GET /v1/sessions/{sessionID}/stream", handler.StreamSession)
}
