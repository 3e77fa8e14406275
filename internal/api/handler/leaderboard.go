package handler

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/mcoot/kohlenschlagen/internal/api/response"
	"github.com/mcoot/kohlenschlagen/internal/services/report"
	"github.com/mcoot/kohlenschlagen/internal/services/scoring"
	"github.com/mcoot/kohlenschlagen/internal/services/team"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypePNG  = "image/png"
)

// LeaderboardHandler handles standings and their exports
type LeaderboardHandler struct {
	controller *team.Controller
	logger     *slog.Logger
}

// NewLeaderboardHandler creates a new leaderboard handler
func NewLeaderboardHandler(controller *team.Controller, logger *slog.Logger) *LeaderboardHandler {
	return &LeaderboardHandler{controller: controller, logger: logger}
}

// Get handles GET /api/v1/teams/{team_id}/leaderboard
func (h *LeaderboardHandler) Get(w http.ResponseWriter, r *http.Request) {
	found, err := h.controller.GetTeam(r.Context(), teamIDFromPath(r))
	if err != nil {
		WriteError(w, err)
		return
	}
	response.JSON(w, http.StatusOK, response.LeaderboardFromModel(found.ID, scoring.Leaderboard(found)))
}

// XLSX handles GET /api/v1/teams/{team_id}/leaderboard.xlsx
func (h *LeaderboardHandler) XLSX(w http.ResponseWriter, r *http.Request) {
	found, err := h.controller.GetTeam(r.Context(), teamIDFromPath(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	data, err := report.LeaderboardXLSX(found)
	if err != nil {
		h.logger.Error("failed to render workbook",
			slog.String("team_id", string(found.ID)),
			slog.String("error", err.Error()),
		)
		WriteError(w, err)
		return
	}
	response.Attachment(w, contentTypeXLSX, fmt.Sprintf("rangliste-%s.xlsx", found.ID), data)
}

// PNG handles GET /api/v1/teams/{team_id}/leaderboard.png
func (h *LeaderboardHandler) PNG(w http.ResponseWriter, r *http.Request) {
	found, err := h.controller.GetTeam(r.Context(), teamIDFromPath(r))
	if err != nil {
		WriteError(w, err)
		return
	}

	data, err := report.LeaderboardChart(found)
	if err != nil {
		h.logger.Error("failed to render chart",
			slog.String("team_id", string(found.ID)),
			slog.String("error", err.Error()),
		)
		WriteError(w, err)
		return
	}
	response.Attachment(w, contentTypePNG, fmt.Sprintf("rangliste-%s.png", found.ID), data)
}
