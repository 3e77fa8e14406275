package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/kohlenschlagen/internal/api/handler"
	"github.com/mcoot/kohlenschlagen/internal/api/middleware"
	"github.com/mcoot/kohlenschlagen/internal/metrics"
	"github.com/mcoot/kohlenschlagen/internal/services/team"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger         *slog.Logger
	TeamController *team.Controller
	// Metrics is optional; when set, /metrics is served and requests are timed
	Metrics *metrics.Metrics
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	teamHandler := handler.NewTeamHandler(cfg.TeamController)
	playerHandler := handler.NewPlayerHandler(cfg.TeamController)
	turnHandler := handler.NewTurnHandler(cfg.TeamController)
	leaderboardHandler := handler.NewLeaderboardHandler(cfg.TeamController, cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Recovery(cfg.Logger, cfg.Metrics))
	api.Use(middleware.Logging(cfg.Logger))
	if cfg.Metrics != nil {
		api.Use(middleware.Metrics(cfg.Metrics))
	}

	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)
	api.HandleFunc("/session", teamHandler.Session).Methods(http.MethodGet)

	// Team routes
	api.HandleFunc("/teams", teamHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/teams", teamHandler.Create).Methods(http.MethodPost)

	teams := api.PathPrefix("/teams/{team_id}").Subrouter()
	teams.HandleFunc("", teamHandler.Get).Methods(http.MethodGet)
	teams.HandleFunc("/select", teamHandler.Select).Methods(http.MethodPost)
	teams.HandleFunc("/end", teamHandler.End).Methods(http.MethodPost)
	teams.HandleFunc("/settings", teamHandler.UpdateSettings).Methods(http.MethodPut)

	// Roster and mandatory attempt routes
	teams.HandleFunc("/players", playerHandler.Add).Methods(http.MethodPost)
	teams.HandleFunc("/players/{player_id}", playerHandler.Rename).Methods(http.MethodPatch)
	teams.HandleFunc("/players/{player_id}", playerHandler.Remove).Methods(http.MethodDelete)
	teams.HandleFunc("/players/{player_id}/pflicht", playerHandler.Pflicht).Methods(http.MethodPost)

	// Turn routes
	teams.HandleFunc("/turns", turnHandler.Resolve).Methods(http.MethodPost)

	// Leaderboard routes
	teams.HandleFunc("/leaderboard", leaderboardHandler.Get).Methods(http.MethodGet)
	teams.HandleFunc("/leaderboard.xlsx", leaderboardHandler.XLSX).Methods(http.MethodGet)
	teams.HandleFunc("/leaderboard.png", leaderboardHandler.PNG).Methods(http.MethodGet)

	if cfg.Metrics != nil {
		r.Handle("/metrics", cfg.Metrics.Handler()).Methods(http.MethodGet)
	}

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
