package storage

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/mcoot/kohlenschlagen/internal/model"
	"github.com/mcoot/kohlenschlagen/internal/services/scoring"
)

// ErrMalformedState is returned when a stored document cannot be decoded
var ErrMalformedState = errors.New("malformed session state")

// storedTeam mirrors model.Team so that an absent settings object can be told apart from zero values
type storedTeam struct {
	model.Team
	Settings *model.Settings `json:"settings"`
}

type storedSession struct {
	Teams        []*storedTeam `json:"teams"`
	ActiveTeamID *model.TeamID `json:"activeTeamId"`
}

// EncodeSession serializes a session into its persisted JSON form
func EncodeSession(session *model.Session) ([]byte, error) {
	if session == nil {
		session = model.NewSession()
	}
	data, err := json.Marshal(session)
	if err != nil {
		return nil, fmt.Errorf("encode session: %w", err)
	}
	return data, nil
}

// DecodeSession parses a persisted document. It is tolerant of partial input:
// missing keys take their defaults and derived fields are recomputed. Empty
// input is an empty session. Undecodable input yields an empty session and an
// error wrapping ErrMalformedState; the returned session is never nil.
func DecodeSession(data []byte) (*model.Session, error) {
	if len(data) == 0 {
		return model.NewSession(), nil
	}

	var stored storedSession
	if err := json.Unmarshal(data, &stored); err != nil {
		return model.NewSession(), fmt.Errorf("%w: %w", ErrMalformedState, err)
	}

	session := model.NewSession()
	for _, st := range stored.Teams {
		if st == nil {
			continue
		}
		team := st.Team
		if st.Settings != nil {
			team.Settings = *st.Settings
		} else {
			team.Settings = model.DefaultSettings()
		}
		normalizeTeam(&team)
		session.Teams = append(session.Teams, &team)
	}

	session.ActiveTeamID = stored.ActiveTeamID
	if session.ActiveTeamID != nil && session.ActiveTeam() == nil {
		session.ActiveTeamID = nil
	}
	session.EnsureActiveTeam()

	return session, nil
}

// normalizeTeam restores the invariants a hand-edited or truncated document may break
func normalizeTeam(team *model.Team) {
	if team.Players == nil {
		team.Players = []model.Player{}
	}
	if team.CurrentPlayerIndex < 0 || team.CurrentPlayerIndex >= len(team.Players) {
		team.CurrentPlayerIndex = 0
	}
	for i := range team.Players {
		scoring.RecomputeTotals(&team.Players[i])
	}
}
