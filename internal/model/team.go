package model

import "time"

// TeamID uniquely identifies a team
type TeamID string

// MaxPlayers is the roster limit per team
const MaxPlayers = 10

// Team is one independently scored session of the game
type Team struct {
	ID        TeamID    `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"createdAt"`
	Ended     bool      `json:"ended"`

	// Players in turn order
	Players  []Player `json:"players"`
	Settings Settings `json:"settings"`

	// CurrentPlayerIndex points into Players; 0 when the roster is empty
	CurrentPlayerIndex int `json:"currentPlayerIndex"`
}

// NewTeam creates a team with default settings and an empty roster
func NewTeam(id TeamID, name string, createdAt time.Time) *Team {
	return &Team{
		ID:        id,
		Name:      name,
		CreatedAt: createdAt,
		Players:   []Player{},
		Settings:  DefaultSettings(),
	}
}

// CurrentPlayer returns the player whose turn it is, or nil if the roster is empty
func (t *Team) CurrentPlayer() *Player {
	if len(t.Players) == 0 {
		return nil
	}
	if t.CurrentPlayerIndex < 0 || t.CurrentPlayerIndex >= len(t.Players) {
		return &t.Players[0]
	}
	return &t.Players[t.CurrentPlayerIndex]
}

// GetPlayer returns the player with the given ID, or nil if not found
func (t *Team) GetPlayer(id PlayerID) *Player {
	for i := range t.Players {
		if t.Players[i].ID == id {
			return &t.Players[i]
		}
	}
	return nil
}

// IsFull returns true if no more players can be added
func (t *Team) IsFull() bool {
	return len(t.Players) >= MaxPlayers
}
