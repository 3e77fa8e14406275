package handler

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/mcoot/kohlenschlagen/internal/model"
)

// ActiveTeamAlias addresses the active team in place of an ID
const ActiveTeamAlias = "active"

// teamIDFromPath returns the {team_id} path variable; "active" maps to the empty ID
func teamIDFromPath(r *http.Request) model.TeamID {
	id := mux.Vars(r)["team_id"]
	if id == ActiveTeamAlias {
		return ""
	}
	return model.TeamID(id)
}

func playerIDFromPath(r *http.Request) model.PlayerID {
	return model.PlayerID(mux.Vars(r)["player_id"])
}

// decodeBody decodes a JSON request body. An empty body is accepted only if optional is set.
func decodeBody(r *http.Request, v any, optional bool) error {
	err := json.NewDecoder(r.Body).Decode(v)
	if err == nil {
		return nil
	}
	if optional && errors.Is(err, io.EOF) {
		return nil
	}
	return NewInvalidRequestError("Invalid request body")
}
