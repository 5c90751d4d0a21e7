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

func registerCatalogRoutes(mux *http.ServeMux, handler *Handler, defaultUserID string) {
	mux.HandleFunc("GET /v1/sports", handler.ListSports)
	mux.HandleFunc("GET /v1/leagues", handler.ListLeagues)
	mux.HandleFunc("GET /v1/games/upcoming", handler.ListUpcomingGames)
	mux.HandleFunc("GET /v1/games/finished", handler.ListFinishedGames)
	mux.HandleFunc("GET /v1/games/search", handler.SearchGames)
	mux.HandleFunc("GET /v1/games/{gameID}/reviews", handler.ListGameReviews)
	mux.Handle("POST /v1/games/{gameID}/reviews", ResolveUser(defaultUserID, http.HandlerFunc(handler.CreateGameReview)))
	mux.HandleFunc("GET /v1/reviews/recent", handler.ListRecentReviews)
	mux.HandleFunc("GET /v1/tags/popular", handler.ListPopularTags)
}

func registerWatchlistRoutes(mux *http.ServeMux, handler *Handler, defaultUserID string) {
	mux.Handle("GET /v1/watchlist", ResolveUser(defaultUserID, http.HandlerFunc(handler.GetWatchlist)))
	mux.Handle("POST /v1/watchlist", ResolveUser(defaultUserID, http.HandlerFunc(handler.AddToWatchlist)))
	mux.Handle("DELETE /v1/watchlist/{gameID}", ResolveUser(defaultUserID, http.HandlerFunc(handler.RemoveFromWatchlist)))
}

func registerLiveRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/live/leagues", handler.ListAllLiveLeagues)
	mux.HandleFunc("GET /v1/live/{sport}/games", handler.ListLiveGames)
	mux.HandleFunc("GET /v1/live/{sport}/windows", handler.ListLiveGameWindows)
	mux.HandleFunc("GET /v1/live/{sport}/leagues", handler.ListLiveLeagues)
}
