package report

import (
	"bytes"
	"fmt"
	"math"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/mcoot/kohlenschlagen/internal/model"
	"github.com/mcoot/kohlenschlagen/internal/services/scoring"
)

// Chart dimensions in pixels
const (
	ChartWidth  = 800
	ChartHeight = 400
)

var (
	barColor        = drawing.ColorFromHex("37474f")
	leaderColor     = drawing.ColorFromHex("2e7d32")
	backgroundColor = drawing.ColorFromHex("fafafa")
)

// LeaderboardChart renders each player's total as a bar, cheapest first.
// A team without players renders a placeholder.
func LeaderboardChart(team *model.Team) ([]byte, error) {
	standings := scoring.Leaderboard(team)
	if len(standings) == 0 {
		return renderPlaceholder(team.Name)
	}

	bars := make([]chart.Value, len(standings))
	maxTotal := 0.0
	for i, st := range standings {
		color := barColor
		if i == 0 {
			color = leaderColor
		}
		bars[i] = chart.Value{
			Label: st.Player.Name,
			Value: st.Player.TotalEuro,
			Style: chart.Style{FillColor: color, StrokeColor: color},
		}
		maxTotal = math.Max(maxTotal, st.Player.TotalEuro)
	}

	return render(team.Name, bars, maxTotal)
}

func renderPlaceholder(title string) ([]byte, error) {
	bars := []chart.Value{{Label: "Keine Spieler", Value: 0}}
	return render(title, bars, 0)
}

func render(title string, bars []chart.Value, maxTotal float64) ([]byte, error) {
	// A zero-height range cannot be drawn
	top := math.Max(1, math.Ceil(maxTotal))

	graph := chart.BarChart{
		Title:  title,
		Width:  ChartWidth,
		Height: ChartHeight,
		Background: chart.Style{
			FillColor: backgroundColor,
			Padding:   chart.Box{Top: 40},
		},
		Canvas: chart.Style{
			FillColor: backgroundColor,
		},
		BarWidth:   48,
		BarSpacing: 24,
		YAxis: chart.YAxis{
			Range: &chart.ContinuousRange{Min: 0, Max: top},
			ValueFormatter: func(v interface{}) string {
				if f, ok := v.(float64); ok {
					return FormatEuro(f)
				}
				return ""
			},
		},
		Bars: bars,
	}

	buf := bytes.NewBuffer([]byte{})
	if err := graph.Render(chart.PNG, buf); err != nil {
		return nil, fmt.Errorf("render chart: %w", err)
	}
	return buf.Bytes(), nil
}
