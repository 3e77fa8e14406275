// Package scoring implements the turn and mandatory-attempt rules and the
// derived totals of a team's players. Every function mutates in place and
// reports whether anything changed; rejected calls leave state untouched.
package scoring

import (
	"math"
	"slices"

	"github.com/mcoot/kohlenschlagen/internal/model"
)

// Round2 rounds a monetary value to two decimals
func Round2(v float64) float64 {
	return math.Round(v*100) / 100
}

// PointsToEuro converts banked points into their monetary equivalent
func PointsToEuro(points int) float64 {
	return float64(points) / 100
}

// RecomputeTotals re-rounds the player's monetary counters and derives TotalEuro.
// It is the only place TotalEuro is written.
func RecomputeTotals(p *model.Player) {
	p.PenaltyEuro = Round2(p.PenaltyEuro)
	p.Pflicht.CostEuro = Round2(p.Pflicht.CostEuro)
	p.TotalEuro = Round2(PointsToEuro(p.Points) + p.PenaltyEuro + p.Pflicht.CostEuro)
}

// TurnPoints returns the points earned by a selection under the given settings
func TurnPoints(sel model.TurnSelection, s model.Settings) int {
	points := 0
	if sel.Stockditsch {
		points += s.PointsStockditsch
	}
	if sel.Windditsch {
		points += s.PointsWindditsch
	}
	if sel.Unterweite {
		points += s.PointsUnterweite
	}
	return points
}

// TurnPenalty returns the penalty charged for a selection under the given settings
func TurnPenalty(sel model.TurnSelection, s model.Settings) float64 {
	penalty := 0.0
	if sel.KohleWeg {
		penalty += s.EuroKohleWeg
	}
	if sel.HeideKaputt {
		penalty += s.EuroHeideKaputt
	}
	if sel.StockKaputt {
		penalty += s.EuroStockKaputt
	}
	return penalty
}

// ResolveTurn books the selection on the current player and passes the turn on.
// Returns false without changes if the team has ended or has no players.
func ResolveTurn(team *model.Team, sel model.TurnSelection) bool {
	if team.Ended || len(team.Players) == 0 {
		return false
	}
	if team.CurrentPlayerIndex < 0 || team.CurrentPlayerIndex >= len(team.Players) {
		team.CurrentPlayerIndex = 0
	}

	player := &team.Players[team.CurrentPlayerIndex]
	player.Points += TurnPoints(sel, team.Settings)
	player.PenaltyEuro += TurnPenalty(sel, team.Settings)
	RecomputeTotals(player)

	team.CurrentPlayerIndex = (team.CurrentPlayerIndex + 1) % len(team.Players)
	return true
}

// RecordPflichtSuccess completes the player's mandatory attempt.
// Cost from earlier failures is kept.
func RecordPflichtSuccess(p *model.Player) bool {
	if p.Pflicht.Completed {
		return false
	}
	p.Pflicht.Completed = true
	RecomputeTotals(p)
	return true
}

// RecordPflichtFailure charges one failed mandatory attempt.
// The third failure completes the challenge.
func RecordPflichtFailure(p *model.Player, s model.Settings) bool {
	if p.Pflicht.Completed || p.Pflicht.Attempts >= model.MaxPflichtAttempts {
		return false
	}
	p.Pflicht.Attempts++
	p.Pflicht.Failures++
	p.Pflicht.CostEuro += s.EuroPflicht
	if p.Pflicht.Attempts >= model.MaxPflichtAttempts {
		p.Pflicht.Completed = true
	}
	RecomputeTotals(p)
	return true
}

// ApplySettings replaces the team's settings and recomputes every total.
// Already banked points and penalties are not rescaled.
func ApplySettings(team *model.Team, s model.Settings) error {
	if err := s.Validate(); err != nil {
		return err
	}
	s.EuroKohleWeg = Round2(s.EuroKohleWeg)
	s.EuroHeideKaputt = Round2(s.EuroHeideKaputt)
	s.EuroStockKaputt = Round2(s.EuroStockKaputt)
	s.EuroPflicht = Round2(s.EuroPflicht)

	team.Settings = s
	for i := range team.Players {
		RecomputeTotals(&team.Players[i])
	}
	return nil
}

// Leaderboard ranks players by TotalEuro ascending; ties keep roster order
func Leaderboard(team *model.Team) []model.Standing {
	players := slices.Clone(team.Players)
	slices.SortStableFunc(players, func(a, b model.Player) int {
		switch {
		case a.TotalEuro < b.TotalEuro:
			return -1
		case a.TotalEuro > b.TotalEuro:
			return 1
		default:
			return 0
		}
	})

	standings := make([]model.Standing, len(players))
	for i, p := range players {
		standings[i] = model.Standing{Rank: i + 1, Player: p}
	}
	return standings
}
