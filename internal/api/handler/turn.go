package handler

import (
	"net/http"

	"github.com/mcoot/kohlenschlagen/internal/api/request"
	"github.com/mcoot/kohlenschlagen/internal/api/response"
	"github.com/mcoot/kohlenschlagen/internal/services/team"
)

// TurnHandler handles turn resolution
type TurnHandler struct {
	controller *team.Controller
}

// NewTurnHandler creates a new turn handler
func NewTurnHandler(controller *team.Controller) *TurnHandler {
	return &TurnHandler{controller: controller}
}

// Resolve handles POST /api/v1/teams/{team_id}/turns.
// An empty body is a skipped turn.
func (h *TurnHandler) Resolve(w http.ResponseWriter, r *http.Request) {
	var req request.TurnRequest
	if err := decodeBody(r, &req, true); err != nil {
		WriteError(w, err)
		return
	}

	result, err := h.controller.ResolveTurn(r.Context(), teamIDFromPath(r), req.Selection())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TurnResultFromModel(result))
}
