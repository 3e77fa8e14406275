package model

// PlayerID uniquely identifies a player across the system
type PlayerID string

// MaxPflichtAttempts is the number of tries a player gets at the mandatory attempt
const MaxPflichtAttempts = 3

// PflichtState tracks a player's mandatory attempt (Pflicht).
// Every recorded attempt is a failure; a success only completes the challenge.
type PflichtState struct {
	Attempts  int     `json:"attempts"`
	Failures  int     `json:"failures"`
	CostEuro  float64 `json:"costEuro"`
	Completed bool    `json:"completed"`
}

// IsOpen returns true while further attempts can be recorded
func (p PflichtState) IsOpen() bool {
	return !p.Completed && p.Attempts < MaxPflichtAttempts
}

// Player represents a participant in a team
type Player struct {
	ID          PlayerID     `json:"id"`
	Name        string       `json:"name"`
	Points      int          `json:"points"`
	PenaltyEuro float64      `json:"penaltyEuro"`
	Pflicht     PflichtState `json:"pflicht"`

	// TotalEuro is derived from the other counters and must not be set directly
	TotalEuro float64 `json:"totalEuro"`
}

// NewPlayer creates a player with all counters at zero
func NewPlayer(id PlayerID, name string) Player {
	return Player{
		ID:   id,
		Name: name,
	}
}
