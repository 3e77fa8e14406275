package scoring

import "github.com/mcoot/kohlenschlagen/internal/model"

// AddPlayer appends a fresh player to the roster
func AddPlayer(team *model.Team, player model.Player) (*model.Player, error) {
	if team.Ended {
		return nil, model.ErrTeamEnded
	}
	if team.IsFull() {
		return nil, model.ErrRosterFull
	}
	RecomputeTotals(&player)
	team.Players = append(team.Players, player)
	return &team.Players[len(team.Players)-1], nil
}

// RemovePlayer drops a player from the roster. The turn cursor is reset to
// the first player if it no longer points into the roster.
func RemovePlayer(team *model.Team, id model.PlayerID) bool {
	if team.Ended {
		return false
	}
	idx := -1
	for i, p := range team.Players {
		if p.ID == id {
			idx = i
			break
		}
	}
	if idx == -1 {
		return false
	}

	team.Players = append(team.Players[:idx], team.Players[idx+1:]...)
	if team.CurrentPlayerIndex >= len(team.Players) {
		team.CurrentPlayerIndex = 0
	}
	return true
}

// EndTeam closes the team for further scoring
func EndTeam(team *model.Team) bool {
	if team.Ended {
		return false
	}
	team.Ended = true
	return true
}

// RenamePlayer replaces a player's display name. Names need not be unique.
func RenamePlayer(team *model.Team, id model.PlayerID, name string) bool {
	if team.Ended {
		return false
	}
	player := team.GetPlayer(id)
	if player == nil {
		return false
	}
	player.Name = name
	return true
}
