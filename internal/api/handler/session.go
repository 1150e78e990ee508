package handler

import (
	"encoding/json"
	"net/http"

	"github.com/silverspringsaints/playtracker/internal/api/request"
	"github.com/silverspringsaints/playtracker/internal/api/response"
	"github.com/silverspringsaints/playtracker/internal/model"
	"github.com/silverspringsaints/playtracker/internal/services/session"
)

// SessionHandler handles live-session endpoints
type SessionHandler struct {
	sessionController *session.Controller
}

// NewSessionHandler creates a new session handler
func NewSessionHandler(sessionController *session.Controller) *SessionHandler {
	return &SessionHandler{
		sessionController: sessionController,
	}
}

// Start handles POST /api/v1/session
func (h *SessionHandler) Start(w http.ResponseWriter, r *http.Request) {
	var req request.StartSessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	active := make([]model.PlayerID, len(req.ActivePlayers))
	for i, id := range req.ActivePlayers {
		active[i] = model.PlayerID(id)
	}

	created, err := h.sessionController.StartSession(r.Context(), req.Date, req.Opponent, req.CoachName, active)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.SessionFromModel(created))
}

// Get handles GET /api/v1/session — the resume path
func (h *SessionHandler) Get(w http.ResponseWriter, r *http.Request) {
	current, err := h.sessionController.Current(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(current))
}

// Discard handles DELETE /api/v1/session
func (h *SessionHandler) Discard(w http.ResponseWriter, r *http.Request) {
	if err := h.sessionController.DiscardCurrent(r.Context()); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// RecordPlay handles POST /api/v1/session/plays
func (h *SessionHandler) RecordPlay(w http.ResponseWriter, r *http.Request) {
	var req request.RecordPlayRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	players := make([]model.PlayerID, len(req.Players))
	for i, id := range req.Players {
		players[i] = model.PlayerID(id)
	}

	updated, events, err := h.sessionController.RecordPlay(r.Context(), model.PlayType(req.Type), players)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.RecordPlayResponse{
		Session: response.SessionFromModel(updated),
		Events:  response.EventsFromModel(events),
	})
}

// End handles POST /api/v1/session/end
func (h *SessionHandler) End(w http.ResponseWriter, r *http.Request) {
	finalized, err := h.sessionController.EndSession(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.SessionFromModel(finalized))
}
