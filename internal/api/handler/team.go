package handler

import (
	"net/http"

	"github.com/mcoot/kohlenschlagen/internal/api/request"
	"github.com/mcoot/kohlenschlagen/internal/api/response"
	"github.com/mcoot/kohlenschlagen/internal/services/team"
)

// TeamHandler handles session and team endpoints
type TeamHandler struct {
	controller *team.Controller
}

// NewTeamHandler creates a new team handler
func NewTeamHandler(controller *team.Controller) *TeamHandler {
	return &TeamHandler{controller: controller}
}

// Session handles GET /api/v1/session
func (h *TeamHandler) Session(w http.ResponseWriter, r *http.Request) {
	session, err := h.controller.GetSession(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.SessionFromModel(session))
}

// List handles GET /api/v1/teams
func (h *TeamHandler) List(w http.ResponseWriter, r *http.Request) {
	session, err := h.controller.GetSession(r.Context())
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TeamListFromSession(session))
}

// Create handles POST /api/v1/teams
func (h *TeamHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateTeamRequest
	if err := decodeBody(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}

	created, err := h.controller.CreateTeam(r.Context(), req.Name)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusCreated, response.TeamFromModel(created))
}

// Get handles GET /api/v1/teams/{team_id}
func (h *TeamHandler) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.controller.GetTeam(r.Context(), teamIDFromPath(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TeamFromModel(found))
}

// Select handles POST /api/v1/teams/{team_id}/select
func (h *TeamHandler) Select(w http.ResponseWriter, r *http.Request) {
	selected, err := h.controller.SelectTeam(r.Context(), teamIDFromPath(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TeamFromModel(selected))
}

// End handles POST /api/v1/teams/{team_id}/end
func (h *TeamHandler) End(w http.ResponseWriter, r *http.Request) {
	ended, err := h.controller.EndTeam(r.Context(), teamIDFromPath(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TeamFromModel(ended))
}

// UpdateSettings handles PUT /api/v1/teams/{team_id}/settings
func (h *TeamHandler) UpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req request.SettingsRequest
	if err := decodeBody(r, &req, false); err != nil {
		WriteError(w, err)
		return
	}
	settings, ok := req.Settings()
	if !ok {
		WriteError(w, NewInvalidRequestError("All seven settings are required"))
		return
	}

	updated, err := h.controller.UpdateSettings(r.Context(), teamIDFromPath(r), settings)
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.TeamFromModel(updated))
}
