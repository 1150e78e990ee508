package handler

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/silverspringsaints/playtracker/internal/api/response"
	"github.com/silverspringsaints/playtracker/internal/model"
	"github.com/silverspringsaints/playtracker/internal/services/roster"
	"github.com/silverspringsaints/playtracker/internal/services/session"
	"github.com/silverspringsaints/playtracker/internal/services/summary"
)

// GamesHandler handles completed-game (archive) endpoints
type GamesHandler struct {
	sessionController *session.Controller
	rosterService     *roster.Service
}

// NewGamesHandler creates a new games handler
func NewGamesHandler(sessionController *session.Controller, rosterService *roster.Service) *GamesHandler {
	return &GamesHandler{
		sessionController: sessionController,
		rosterService:     rosterService,
	}
}

// List handles GET /api/v1/games
func (h *GamesHandler) List(w http.ResponseWriter, r *http.Request) {
	sessions, err := h.sessionController.ArchivedSessions(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionRefsFromModel(sessions))
}

// Get handles GET /api/v1/games/{session_id}
func (h *GamesHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := model.SessionID(mux.Vars(r)["session_id"])

	archived, err := h.sessionController.ArchivedSession(r.Context(), sessionID)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(archived))
}

// Summary handles GET /api/v1/games/{session_id}/summary
func (h *GamesHandler) Summary(w http.ResponseWriter, r *http.Request) {
	projected, err := h.project(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, projected)
}

// Export handles GET /api/v1/games/{session_id}/export. The filename is
// derived from opponent and date so repeated exports are unambiguous.
func (h *GamesHandler) Export(w http.ResponseWriter, r *http.Request) {
	projected, err := h.project(r)
	if err != nil {
		WriteError(w, err)
		return
	}

	data, err := summary.Export(projected)
	if err != nil {
		WriteError(w, err)
		return
	}

	filename := summary.ExportFilename(projected.GameInfo.Opponent, projected.GameInfo.Date)
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

func (h *GamesHandler) project(r *http.Request) (*summary.Summary, error) {
	sessionID := model.SessionID(mux.Vars(r)["session_id"])

	archived, err := h.sessionController.ArchivedSession(r.Context(), sessionID)
	if err != nil {
		return nil, err
	}

	players, err := h.rosterService.ListPlayers(r.Context())
	if err != nil {
		return nil, err
	}

	return summary.Project(archived, players)
}
