// Package report renders a team's leaderboard as downloadable files.
package report

import (
	"fmt"

	"github.com/mcoot/kohlenschlagen/internal/model"
)

// PflichtStatus formats a player's mandatory attempt progress, e.g. "2/3 (2 Fehlversuche)"
func PflichtStatus(p model.PflichtState) string {
	return fmt.Sprintf("%d/%d (%d Fehlversuche)", p.Attempts, model.MaxPflichtAttempts, p.Failures)
}

// PflichtOpenLabel returns "abgeschlossen" for a completed attempt and "offen" otherwise
func PflichtOpenLabel(p model.PflichtState) string {
	if p.Completed {
		return "abgeschlossen"
	}
	return "offen"
}

// FormatEuro renders an amount with two decimals and the euro sign
func FormatEuro(v float64) string {
	return fmt.Sprintf("%.2f €", v)
}
