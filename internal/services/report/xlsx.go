package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/mcoot/kohlenschlagen/internal/model"
	"github.com/mcoot/kohlenschlagen/internal/services/scoring"
)

// LeaderboardSheet is the name of the only sheet in the exported workbook
const LeaderboardSheet = "Rangliste"

// LeaderboardHeader is the first row of the exported sheet
var LeaderboardHeader = []string{
	"Platz", "Spieler", "Punkte", "Schäden (Euro)", "Pflicht (Euro)",
	"Pflichtstatus", "Pflicht offen?", "Gesamt (Euro)",
}

// LeaderboardXLSX renders the team's standings as an Excel workbook
func LeaderboardXLSX(team *model.Team) ([]byte, error) {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	if err := f.SetSheetName("Sheet1", LeaderboardSheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	header := make([]any, len(LeaderboardHeader))
	for i, h := range LeaderboardHeader {
		header[i] = h
	}
	if err := f.SetSheetRow(LeaderboardSheet, "A1", &header); err != nil {
		return nil, fmt.Errorf("write header: %w", err)
	}

	standings := scoring.Leaderboard(team)
	for i, st := range standings {
		p := st.Player
		row := []any{
			st.Rank,
			p.Name,
			p.Points,
			p.PenaltyEuro,
			p.Pflicht.CostEuro,
			PflichtStatus(p.Pflicht),
			PflichtOpenLabel(p.Pflicht),
			p.TotalEuro,
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		if err := f.SetSheetRow(LeaderboardSheet, cell, &row); err != nil {
			return nil, fmt.Errorf("write row %d: %w", i+2, err)
		}
	}

	if err := styleSheet(f, len(standings)); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func styleSheet(f *excelize.File, rows int) error {
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("create header style: %w", err)
	}
	if err := f.SetCellStyle(LeaderboardSheet, "A1", "H1", bold); err != nil {
		return err
	}

	if rows > 0 {
		// 2 is the built-in "0.00" format
		money, err := f.NewStyle(&excelize.Style{NumFmt: 2})
		if err != nil {
			return fmt.Errorf("create money style: %w", err)
		}
		last := rows + 1
		for _, col := range []string{"D", "E", "H"} {
			if err := f.SetCellStyle(LeaderboardSheet, col+"2", fmt.Sprintf("%s%d", col, last), money); err != nil {
				return err
			}
		}
	}

	if err := f.SetColWidth(LeaderboardSheet, "B", "B", 24); err != nil {
		return err
	}
	return f.SetColWidth(LeaderboardSheet, "C", "H", 16)
}
