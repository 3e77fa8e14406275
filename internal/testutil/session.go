package testutil

import (
	"time"

	"github.com/mcoot/kohlenschlagen/internal/model"
)

// SampleSession returns a session with two teams in varied states:
// one running with a mixed roster, one ended with an empty roster.
func SampleSession() *model.Session {
	createdAt := time.Date(2024, 5, 1, 14, 30, 0, 0, time.UTC)

	running := model.NewTeam("team-1", "Hofmannshausen", createdAt)
	running.Settings.EuroPflicht = 1.5
	running.CurrentPlayerIndex = 1
	running.Players = []model.Player{
		{
			ID:          "player-1",
			Name:        "Anna",
			Points:      25,
			PenaltyEuro: 7,
			Pflicht:     model.PflichtState{Attempts: 1, Failures: 1, CostEuro: 1.5, Completed: true},
			TotalEuro:   8.75,
		},
		{
			ID:          "player-2",
			Name:        "Bernd",
			Points:      3,
			PenaltyEuro: 0,
			Pflicht:     model.PflichtState{Attempts: 3, Failures: 3, CostEuro: 4.5, Completed: true},
			TotalEuro:   4.53,
		},
		{
			ID:        "player-3",
			Name:      "Clara",
			Pflicht:   model.PflichtState{},
			TotalEuro: 0,
		},
	}

	ended := model.NewTeam("team-2", "Stammtisch", createdAt.Add(24*time.Hour))
	ended.Ended = true

	session := model.NewSession()
	session.Teams = []*model.Team{running, ended}
	session.SetActive("team-2")
	return session
}
