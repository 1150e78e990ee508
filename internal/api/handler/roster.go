package handler

import (
	"encoding/json"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/silverspringsaints/playtracker/internal/api/request"
	"github.com/silverspringsaints/playtracker/internal/api/response"
	"github.com/silverspringsaints/playtracker/internal/model"
	"github.com/silverspringsaints/playtracker/internal/services/roster"
)

// maxImportSize bounds roster import uploads
const maxImportSize = 1 << 20

// RosterHandler handles roster endpoints
type RosterHandler struct {
	rosterService *roster.Service
}

// NewRosterHandler creates a new roster handler
func NewRosterHandler(rosterService *roster.Service) *RosterHandler {
	return &RosterHandler{
		rosterService: rosterService,
	}
}

// List handles GET /api/v1/roster
func (h *RosterHandler) List(w http.ResponseWriter, r *http.Request) {
	players, err := h.rosterService.ListPlayers(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}

// Add handles POST /api/v1/roster
func (h *RosterHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.rosterService.AddPlayer(r.Context(), req.Name, req.Jersey)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Update handles PUT /api/v1/roster/{player_id}
func (h *RosterHandler) Update(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])

	var req request.UpdatePlayerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, NewInvalidRequestError("invalid request body"))
		return
	}

	player, err := h.rosterService.UpdatePlayer(r.Context(), playerID, req.Name, req.Jersey)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Remove handles DELETE /api/v1/roster/{player_id}
func (h *RosterHandler) Remove(w http.ResponseWriter, r *http.Request) {
	playerID := model.PlayerID(mux.Vars(r)["player_id"])

	if err := h.rosterService.RemovePlayer(r.Context(), playerID); err != nil {
		WriteError(w, err)
		return
	}

	response.NoContent(w)
}

// Export handles GET /api/v1/roster/export
func (h *RosterHandler) Export(w http.ResponseWriter, r *http.Request) {
	data, err := h.rosterService.Export(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Content-Disposition", `attachment; filename="playtracker-roster.json"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// Import handles POST /api/v1/roster/import
func (h *RosterHandler) Import(w http.ResponseWriter, r *http.Request) {
	data, err := io.ReadAll(io.LimitReader(r.Body, maxImportSize))
	if err != nil {
		WriteError(w, NewInvalidRequestError("failed to read request body"))
		return
	}

	players, err := h.rosterService.Import(r.Context(), data)
	if err != nil {
		WriteError(w, err)
		return
	}

	response.JSON(w, http.StatusOK, response.PlayersFromModel(players))
}
