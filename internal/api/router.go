package api

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/silverspringsaints/playtracker/internal/api/handler"
	"github.com/silverspringsaints/playtracker/internal/api/middleware"
	"github.com/silverspringsaints/playtracker/internal/services/roster"
	"github.com/silverspringsaints/playtracker/internal/services/session"
)

// RouterConfig holds configuration for the API router
type RouterConfig struct {
	Logger            *slog.Logger
	RosterService     *roster.Service
	SessionController *session.Controller
}

// NewRouter creates a new API router with all routes configured
func NewRouter(cfg RouterConfig) http.Handler {
	r := mux.NewRouter()

	// Create handlers
	rosterHandler := handler.NewRosterHandler(cfg.RosterService)
	sessionHandler := handler.NewSessionHandler(cfg.SessionController)
	gamesHandler := handler.NewGamesHandler(cfg.SessionController, cfg.RosterService)

	// Create middleware
	loggingMiddleware := middleware.Logging(cfg.Logger)
	recoveryMiddleware := middleware.Recovery(cfg.Logger)

	// API subrouter with common middleware
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(recoveryMiddleware)
	api.Use(loggingMiddleware)

	// Roster routes
	api.HandleFunc("/roster", rosterHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/roster", rosterHandler.Add).Methods(http.MethodPost)
	api.HandleFunc("/roster/export", rosterHandler.Export).Methods(http.MethodGet)
	api.HandleFunc("/roster/import", rosterHandler.Import).Methods(http.MethodPost)
	api.HandleFunc("/roster/{player_id}", rosterHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/roster/{player_id}", rosterHandler.Remove).Methods(http.MethodDelete)

	// Live-session routes (the singleton current session)
	api.HandleFunc("/session", sessionHandler.Start).Methods(http.MethodPost)
	api.HandleFunc("/session", sessionHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/session", sessionHandler.Discard).Methods(http.MethodDelete)
	api.HandleFunc("/session/plays", sessionHandler.RecordPlay).Methods(http.MethodPost)
	api.HandleFunc("/session/end", sessionHandler.End).Methods(http.MethodPost)

	// Completed-game routes
	api.HandleFunc("/games", gamesHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/games/{session_id}", gamesHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/games/{session_id}/summary", gamesHandler.Summary).Methods(http.MethodGet)
	api.HandleFunc("/games/{session_id}/export", gamesHandler.Export).Methods(http.MethodGet)

	// Health check endpoint
	api.HandleFunc("/health", healthHandler).Methods(http.MethodGet)

	return r
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}
