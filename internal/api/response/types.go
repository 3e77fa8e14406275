package response

import (
	"time"

	"github.com/mcoot/kohlenschlagen/internal/model"
	"github.com/mcoot/kohlenschlagen/internal/services/team"
)

// Settings represents a team's scoring values
type Settings struct {
	PointsStockditsch int     `json:"points_stockditsch"`
	PointsWindditsch  int     `json:"points_windditsch"`
	PointsUnterweite  int     `json:"points_unterweite"`
	EuroKohleWeg      float64 `json:"euro_kohle_weg"`
	EuroHeideKaputt   float64 `json:"euro_heide_kaputt"`
	EuroStockKaputt   float64 `json:"euro_stock_kaputt"`
	EuroPflicht       float64 `json:"euro_pflicht"`
}

// SettingsFromModel converts model.Settings
func SettingsFromModel(s model.Settings) Settings {
	return Settings{
		PointsStockditsch: s.PointsStockditsch,
		PointsWindditsch:  s.PointsWindditsch,
		PointsUnterweite:  s.PointsUnterweite,
		EuroKohleWeg:      s.EuroKohleWeg,
		EuroHeideKaputt:   s.EuroHeideKaputt,
		EuroStockKaputt:   s.EuroStockKaputt,
		EuroPflicht:       s.EuroPflicht,
	}
}

// Pflicht represents a player's mandatory attempt progress
type Pflicht struct {
	Attempts  int     `json:"attempts"`
	Failures  int     `json:"failures"`
	CostEuro  float64 `json:"cost_euro"`
	Completed bool    `json:"completed"`
	Open      bool    `json:"open"`
}

// Player represents a player in API responses
type Player struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Points      int     `json:"points"`
	PenaltyEuro float64 `json:"penalty_euro"`
	Pflicht     Pflicht `json:"pflicht"`
	TotalEuro   float64 `json:"total_euro"`
}

// PlayerFromModel converts a model.Player to a response Player
func PlayerFromModel(p *model.Player) Player {
	return Player{
		ID:          string(p.ID),
		Name:        p.Name,
		Points:      p.Points,
		PenaltyEuro: p.PenaltyEuro,
		Pflicht: Pflicht{
			Attempts:  p.Pflicht.Attempts,
			Failures:  p.Pflicht.Failures,
			CostEuro:  p.Pflicht.CostEuro,
			Completed: p.Pflicht.Completed,
			Open:      p.Pflicht.IsOpen(),
		},
		TotalEuro: p.TotalEuro,
	}
}

// Team represents a team in API responses
type Team struct {
	ID                 string    `json:"id"`
	Name               string    `json:"name"`
	CreatedAt          time.Time `json:"created_at"`
	Ended              bool      `json:"ended"`
	Players            []Player  `json:"players"`
	Settings           Settings  `json:"settings"`
	CurrentPlayerIndex int       `json:"current_player_index"`
	CurrentPlayerID    string    `json:"current_player_id,omitempty"`
}

// TeamFromModel converts a model.Team to a response Team
func TeamFromModel(t *model.Team) Team {
	players := make([]Player, len(t.Players))
	for i := range t.Players {
		players[i] = PlayerFromModel(&t.Players[i])
	}

	resp := Team{
		ID:                 string(t.ID),
		Name:               t.Name,
		CreatedAt:          t.CreatedAt,
		Ended:              t.Ended,
		Players:            players,
		Settings:           SettingsFromModel(t.Settings),
		CurrentPlayerIndex: t.CurrentPlayerIndex,
	}
	if current := t.CurrentPlayer(); current != nil {
		resp.CurrentPlayerID = string(current.ID)
	}
	return resp
}

// TeamSummary is a team as listed in the session overview
type TeamSummary struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	CreatedAt   time.Time `json:"created_at"`
	Ended       bool      `json:"ended"`
	PlayerCount int       `json:"player_count"`
	Active      bool      `json:"active"`
}

// TeamList is the response for listing teams
type TeamList struct {
	Teams []TeamSummary `json:"teams"`
}

// TeamListFromSession lists every team, flagging the active one
func TeamListFromSession(s *model.Session) TeamList {
	teams := make([]TeamSummary, len(s.Teams))
	for i, t := range s.Teams {
		teams[i] = TeamSummary{
			ID:          string(t.ID),
			Name:        t.Name,
			CreatedAt:   t.CreatedAt,
			Ended:       t.Ended,
			PlayerCount: len(t.Players),
			Active:      s.ActiveTeamID != nil && *s.ActiveTeamID == t.ID,
		}
	}
	return TeamList{Teams: teams}
}

// Session is the full session in API responses
type Session struct {
	Teams        []Team `json:"teams"`
	ActiveTeamID string `json:"active_team_id,omitempty"`
}

// SessionFromModel converts a model.Session
func SessionFromModel(s *model.Session) Session {
	teams := make([]Team, len(s.Teams))
	for i, t := range s.Teams {
		teams[i] = TeamFromModel(t)
	}
	resp := Session{Teams: teams}
	if s.ActiveTeamID != nil {
		resp.ActiveTeamID = string(*s.ActiveTeamID)
	}
	return resp
}

// Standing is one leaderboard row
type Standing struct {
	Rank   int    `json:"rank"`
	Player Player `json:"player"`
}

// Leaderboard is the response for a team's standings
type Leaderboard struct {
	TeamID    string     `json:"team_id"`
	Standings []Standing `json:"standings"`
}

// LeaderboardFromModel converts standings for a team
func LeaderboardFromModel(teamID model.TeamID, standings []model.Standing) Leaderboard {
	rows := make([]Standing, len(standings))
	for i := range standings {
		rows[i] = Standing{
			Rank:   standings[i].Rank,
			Player: PlayerFromModel(&standings[i].Player),
		}
	}
	return Leaderboard{TeamID: string(teamID), Standings: rows}
}

// TurnResult is the response for resolving a turn
type TurnResult struct {
	Player       Player  `json:"player"`
	Points       int     `json:"points"`
	PenaltyEuro  float64 `json:"penalty_euro"`
	NextPlayerID string  `json:"next_player_id"`
}

// TurnResultFromModel converts a team.TurnResult
func TurnResultFromModel(r *team.TurnResult) TurnResult {
	resp := TurnResult{
		Player:      PlayerFromModel(&r.Player),
		Points:      r.Points,
		PenaltyEuro: r.PenaltyEuro,
	}
	if next := r.Team.CurrentPlayer(); next != nil {
		resp.NextPlayerID = string(next.ID)
	}
	return resp
}
