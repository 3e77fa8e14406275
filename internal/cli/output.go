package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Output handles formatting output based on the configured format
type Output struct {
	format string
	w      io.Writer
}

// NewOutput creates a new Output formatter writing to w
func NewOutput(format string, w io.Writer) *Output {
	return &Output{format: format, w: w}
}

// Print outputs data in the configured format
func (o *Output) Print(data any) {
	if o.format == "json" {
		o.printJSON(data)
	} else {
		o.printText(data)
	}
}

// PrintMessage outputs a simple message
func (o *Output) PrintMessage(msg string) {
	if o.format == "json" {
		o.printJSON(map[string]string{"message": msg})
	} else {
		_, _ = fmt.Fprintln(o.w, msg)
	}
}

func (o *Output) printJSON(data any) {
	enc := json.NewEncoder(o.w)
	enc.SetIndent("", "  ")
	_ = enc.Encode(data)
}

func (o *Output) printText(data any) {
	switch v := data.(type) {
	case Team:
		o.printTeam(v)
	case TeamList:
		o.printTeamList(v)
	case Session:
		o.printSession(v)
	case Player:
		o.printPlayer(v)
	case Settings:
		o.printSettings(v)
	case TurnResult:
		o.printTurnResult(v)
	case Leaderboard:
		o.printLeaderboard(v)
	case HealthResult:
		o.printHealthResult(v)
	default:
		// Fallback to JSON for unknown types
		o.printJSON(data)
	}
}

// Settings response type (matches API)
type Settings struct {
	PointsStockditsch int     `json:"points_stockditsch"`
	PointsWindditsch  int     `json:"points_windditsch"`
	PointsUnterweite  int     `json:"points_unterweite"`
	EuroKohleWeg      float64 `json:"euro_kohle_weg"`
	EuroHeideKaputt   float64 `json:"euro_heide_kaputt"`
	EuroStockKaputt   float64 `json:"euro_stock_kaputt"`
	EuroPflicht       float64 `json:"euro_pflicht"`
}

// Pflicht response type
type Pflicht struct {
	Attempts  int     `json:"attempts"`
	Failures  int     `json:"failures"`
	CostEuro  float64 `json:"cost_euro"`
	Completed bool    `json:"completed"`
	Open      bool    `json:"open"`
}

// Player response type
type Player struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Points      int     `json:"points"`
	PenaltyEuro float64 `json:"penalty_euro"`
	Pflicht     Pflicht `json:"pflicht"`
	TotalEuro   float64 `json:"total_euro"`
}

// Team response type
type Team struct {
	ID                 string   `json:"id"`
	Name               string   `json:"name"`
	CreatedAt          string   `json:"created_at"`
	Ended              bool     `json:"ended"`
	Players            []Player `json:"players"`
	Settings           Settings `json:"settings"`
	CurrentPlayerIndex int      `json:"current_player_index"`
	CurrentPlayerID    string   `json:"current_player_id,omitempty"`
}

// TeamSummary response type
type TeamSummary struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CreatedAt   string `json:"created_at"`
	Ended       bool   `json:"ended"`
	PlayerCount int    `json:"player_count"`
	Active      bool   `json:"active"`
}

// TeamList response type
type TeamList struct {
	Teams []TeamSummary `json:"teams"`
}

// Session response type
type Session struct {
	Teams        []Team `json:"teams"`
	ActiveTeamID string `json:"active_team_id,omitempty"`
}

// Standing response type
type Standing struct {
	Rank   int    `json:"rank"`
	Player Player `json:"player"`
}

// Leaderboard response type
type Leaderboard struct {
	TeamID    string     `json:"team_id"`
	Standings []Standing `json:"standings"`
}

// TurnResult response type
type TurnResult struct {
	Player       Player  `json:"player"`
	Points       int     `json:"points"`
	PenaltyEuro  float64 `json:"penalty_euro"`
	NextPlayerID string  `json:"next_player_id"`
}

// HealthResult response type
type HealthResult struct {
	Status string `json:"status"`
}

func euro(v float64) string {
	return fmt.Sprintf("%.2f €", v)
}

func pflichtLabel(p Pflicht) string {
	switch {
	case p.Open:
		return fmt.Sprintf("open, %d/3 tries used", p.Attempts)
	case p.Failures >= 3:
		return "failed all 3 tries"
	default:
		return fmt.Sprintf("done after %d failed tries", p.Failures)
	}
}

func (o *Output) printPlayer(p Player) {
	_, _ = fmt.Fprintf(o.w, "Player: %s (%s)\n", p.Name, p.ID)
	_, _ = fmt.Fprintf(o.w, "Points: %d\n", p.Points)
	_, _ = fmt.Fprintf(o.w, "Penalties: %s\n", euro(p.PenaltyEuro))
	_, _ = fmt.Fprintf(o.w, "Pflicht: %s, %s\n", pflichtLabel(p.Pflicht), euro(p.Pflicht.CostEuro))
	_, _ = fmt.Fprintf(o.w, "Total: %s\n", euro(p.TotalEuro))
}

func (o *Output) printTeam(t Team) {
	status := "running"
	if t.Ended {
		status = "ended"
	}
	_, _ = fmt.Fprintf(o.w, "Team: %s (%s)\n", t.Name, t.ID)
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", status)
	_, _ = fmt.Fprintf(o.w, "Players (%d/10):\n", len(t.Players))
	for _, p := range t.Players {
		marker := " "
		if p.ID == t.CurrentPlayerID && !t.Ended {
			marker = ">"
		}
		_, _ = fmt.Fprintf(o.w, "  %s %s (%s): %d points, %s total\n", marker, p.Name, p.ID, p.Points, euro(p.TotalEuro))
	}
}

func (o *Output) printTeamList(l TeamList) {
	if len(l.Teams) == 0 {
		_, _ = fmt.Fprintln(o.w, "No teams")
		return
	}
	for _, t := range l.Teams {
		var flags []string
		if t.Active {
			flags = append(flags, "active")
		}
		if t.Ended {
			flags = append(flags, "ended")
		}
		suffix := ""
		if len(flags) > 0 {
			suffix = " [" + strings.Join(flags, ", ") + "]"
		}
		_, _ = fmt.Fprintf(o.w, "%s  %s (%d players)%s\n", t.ID, t.Name, t.PlayerCount, suffix)
	}
}

func (o *Output) printSession(s Session) {
	summaries := make([]TeamSummary, len(s.Teams))
	for i, t := range s.Teams {
		summaries[i] = TeamSummary{
			ID:          t.ID,
			Name:        t.Name,
			CreatedAt:   t.CreatedAt,
			Ended:       t.Ended,
			PlayerCount: len(t.Players),
			Active:      t.ID == s.ActiveTeamID,
		}
	}
	o.printTeamList(TeamList{Teams: summaries})
}

func (o *Output) printSettings(s Settings) {
	_, _ = fmt.Fprintf(o.w, "Stockditsch: %d points\n", s.PointsStockditsch)
	_, _ = fmt.Fprintf(o.w, "Windditsch:  %d points\n", s.PointsWindditsch)
	_, _ = fmt.Fprintf(o.w, "Unterweite:  %d points\n", s.PointsUnterweite)
	_, _ = fmt.Fprintf(o.w, "Kohle weg:   %s\n", euro(s.EuroKohleWeg))
	_, _ = fmt.Fprintf(o.w, "Heide kaputt: %s\n", euro(s.EuroHeideKaputt))
	_, _ = fmt.Fprintf(o.w, "Stock kaputt: %s\n", euro(s.EuroStockKaputt))
	_, _ = fmt.Fprintf(o.w, "Pflicht:     %s\n", euro(s.EuroPflicht))
}

func (o *Output) printTurnResult(r TurnResult) {
	_, _ = fmt.Fprintf(o.w, "%s: +%d points, +%s\n", r.Player.Name, r.Points, euro(r.PenaltyEuro))
	_, _ = fmt.Fprintf(o.w, "Total: %s\n", euro(r.Player.TotalEuro))
	if r.NextPlayerID != "" {
		_, _ = fmt.Fprintf(o.w, "Next: %s\n", r.NextPlayerID)
	}
}

func (o *Output) printLeaderboard(l Leaderboard) {
	if len(l.Standings) == 0 {
		_, _ = fmt.Fprintln(o.w, "No players")
		return
	}
	for _, s := range l.Standings {
		_, _ = fmt.Fprintf(o.w, "%2d. %-20s %10s\n", s.Rank, s.Player.Name, euro(s.Player.TotalEuro))
	}
}

func (o *Output) printHealthResult(h HealthResult) {
	_, _ = fmt.Fprintf(o.w, "Status: %s\n", h.Status)
}
