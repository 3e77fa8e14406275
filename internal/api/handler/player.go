package handler

import (
	"net/http"

	"github.com/mcoot/kohlenschlagen/internal/api/request"
	"github.com/mcoot/kohlenschlagen/internal/api/response"
	"github.com/mcoot/kohlenschlagen/internal/model"
	"github.com/mcoot/kohlenschlagen/internal/services/team"
)

// PlayerHandler handles roster and mandatory attempt endpoints
type PlayerHandler struct {
	controller *team.Controller
}

// NewPlayerHandler creates a new player handler
func NewPlayerHandler(controller *team.Controller) *PlayerHandler {
	return &PlayerHandler{controller: controller}
}

// Add handles POST /api/v1/teams/{team_id}/players
func (h *PlayerHandler) Add(w http.ResponseWriter, r *http.Request) {
	var req request.AddPlayerRequest
	if err := decodeBody(r, &req, true); err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.controller.AddPlayer(r.Context(), teamIDFromPath(r), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.PlayerFromModel(player))
}

// Rename handles PATCH /api/v1/teams/{team_id}/players/{player_id}
func (h *PlayerHandler) Rename(w http.ResponseWriter, r *http.Request) {
	var req request.RenamePlayerRequest
	if err := decodeBody(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.controller.RenamePlayer(r.Context(), teamIDFromPath(r), playerIDFromPath(r), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}

// Remove handles DELETE /api/v1/teams/{team_id}/players/{player_id}
func (h *PlayerHandler) Remove(w http.ResponseWriter, r *http.Request) {
	if _, err := h.controller.RemovePlayer(r.Context(), teamIDFromPath(r), playerIDFromPath(r)); err != nil {
		WriteError(w, err)
		return
	}
	response.NoContent(w)
}

// Pflicht handles POST /api/v1/teams/{team_id}/players/{player_id}/pflicht
func (h *PlayerHandler) Pflicht(w http.ResponseWriter, r *http.Request) {
	var req request.PflichtRequest
	if err := decodeBody(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	player, err := h.controller.RecordPflicht(r.Context(), teamIDFromPath(r), playerIDFromPath(r), model.PflichtOutcome(req.Outcome))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.PlayerFromModel(player))
}
