package scoring

import (
	"fmt"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/kohlenschlagen/internal/model"
)

type EngineSuite struct {
	suite.Suite
	team *model.Team
}

func TestEngineSuite(t *testing.T) {
	suite.Run(t, new(EngineSuite))
}

func (s *EngineSuite) SetupTest() {
	s.team = model.NewTeam("team-1", "Hofmannshausen", time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
}

// Helper to fill the roster with n players
func (s *EngineSuite) addPlayers(n int) {
	for i := 0; i < n; i++ {
		id := model.PlayerID(fmt.Sprintf("player-%d", i+1))
		_, err := AddPlayer(s.team, model.NewPlayer(id, fmt.Sprintf("Spieler %d", i+1)))
		s.Require().NoError(err)
	}
}

// Helper asserting the derived total matches the counters
func (s *EngineSuite) assertTotal(p model.Player) {
	expected := Round2(float64(p.Points)/100 + p.PenaltyEuro + p.Pflicht.CostEuro)
	s.InDelta(expected, p.TotalEuro, 1e-9, "total of %s", p.ID)
}

// Round2 tests

func (s *EngineSuite) TestRound2() {
	s.Equal(2.1, Round2(2.1000000001))
	s.Equal(0.3, Round2(0.1+0.2))
	s.Equal(1.01, Round2(1.005000001))
	s.Equal(0.0, Round2(0))
}

// ResolveTurn tests

func (s *EngineSuite) TestResolveTurnScenario() {
	s.team.Settings.PointsStockditsch = 10
	s.team.Settings.EuroKohleWeg = 2
	s.addPlayers(1)

	ok := ResolveTurn(s.team, model.TurnSelection{Stockditsch: true, KohleWeg: true})
	s.Require().True(ok)

	p := s.team.Players[0]
	s.Equal(10, p.Points)
	s.Equal(2.0, p.PenaltyEuro)
	s.Equal(2.1, p.TotalEuro)
}

func (s *EngineSuite) TestResolveTurnAllEvents() {
	s.addPlayers(1)

	ResolveTurn(s.team, model.TurnSelection{
		Stockditsch: true, Windditsch: true, Unterweite: true,
		KohleWeg: true, HeideKaputt: true, StockKaputt: true,
	})

	p := s.team.Players[0]
	s.Equal(18, p.Points)
	s.Equal(12.0, p.PenaltyEuro)
	s.Equal(12.18, p.TotalEuro)
}

func (s *EngineSuite) TestResolveTurnSkipOnlyAdvances() {
	s.addPlayers(2)

	ok := ResolveTurn(s.team, model.TurnSelection{})
	s.Require().True(ok)

	s.Equal(0, s.team.Players[0].Points)
	s.Equal(0.0, s.team.Players[0].TotalEuro)
	s.Equal(1, s.team.CurrentPlayerIndex)
}

func (s *EngineSuite) TestResolveTurnRotatesAndWraps() {
	s.addPlayers(3)

	for i := 1; i <= 3; i++ {
		ResolveTurn(s.team, model.TurnSelection{Unterweite: true})
		s.Equal(i%3, s.team.CurrentPlayerIndex)
	}

	for _, p := range s.team.Players {
		s.Equal(3, p.Points)
	}
}

func (s *EngineSuite) TestResolveTurnFullCycleReturnsCursor() {
	s.addPlayers(4)
	s.team.CurrentPlayerIndex = 2

	for i := 0; i < 4; i++ {
		ResolveTurn(s.team, model.TurnSelection{})
	}

	s.Equal(2, s.team.CurrentPlayerIndex)
}

func (s *EngineSuite) TestResolveTurnNoPlayersIsNoop() {
	ok := ResolveTurn(s.team, model.TurnSelection{Stockditsch: true})
	s.False(ok)
	s.Equal(0, s.team.CurrentPlayerIndex)
}

func (s *EngineSuite) TestResolveTurnEndedTeamIsNoop() {
	s.addPlayers(2)
	EndTeam(s.team)

	ok := ResolveTurn(s.team, model.TurnSelection{Stockditsch: true, KohleWeg: true})
	s.False(ok)
	s.Equal(0, s.team.Players[0].Points)
	s.Equal(0, s.team.CurrentPlayerIndex)
}

func (s *EngineSuite) TestResolveTurnUsesCurrentSettings() {
	s.addPlayers(1)
	ResolveTurn(s.team, model.TurnSelection{Stockditsch: true})

	settings := model.DefaultSettings()
	settings.PointsStockditsch = 100
	s.Require().NoError(ApplySettings(s.team, settings))

	// Banked points are not rescaled
	s.Equal(10, s.team.Players[0].Points)

	ResolveTurn(s.team, model.TurnSelection{Stockditsch: true})
	s.Equal(110, s.team.Players[0].Points)
	s.Equal(1.1, s.team.Players[0].TotalEuro)
}

// Pflicht tests

func (s *EngineSuite) TestPflichtThreeFailuresComplete() {
	s.addPlayers(1)
	p := &s.team.Players[0]

	for i := 1; i <= 3; i++ {
		s.Require().True(RecordPflichtFailure(p, s.team.Settings))
		s.Equal(i, p.Pflicht.Attempts)
		s.Equal(i, p.Pflicht.Failures)
		s.Equal(i == 3, p.Pflicht.Completed)
	}

	s.Equal(3.0, p.Pflicht.CostEuro)
	s.Equal(3.0, p.TotalEuro)
}

func (s *EngineSuite) TestPflichtFourthFailureIsNoop() {
	s.addPlayers(1)
	p := &s.team.Players[0]
	for i := 0; i < 3; i++ {
		RecordPflichtFailure(p, s.team.Settings)
	}
	before := *p

	s.False(RecordPflichtFailure(p, s.team.Settings))
	s.Equal(before, *p)
}

func (s *EngineSuite) TestPflichtSuccessKeepsCost() {
	s.addPlayers(1)
	p := &s.team.Players[0]

	RecordPflichtFailure(p, s.team.Settings)
	s.Equal(1.0, p.Pflicht.CostEuro)
	s.False(p.Pflicht.Completed)

	s.True(RecordPflichtSuccess(p))
	s.True(p.Pflicht.Completed)
	s.Equal(1.0, p.Pflicht.CostEuro)
	s.Equal(1, p.Pflicht.Attempts)
	s.Equal(1.0, p.TotalEuro)
}

func (s *EngineSuite) TestPflichtSuccessIsTerminal() {
	s.addPlayers(1)
	p := &s.team.Players[0]

	s.True(RecordPflichtSuccess(p))
	s.False(RecordPflichtSuccess(p))
	s.False(RecordPflichtFailure(p, s.team.Settings))
	s.Equal(0, p.Pflicht.Attempts)
	s.Equal(0.0, p.Pflicht.CostEuro)
}

func (s *EngineSuite) TestPflichtFailureRoundsCost() {
	s.addPlayers(1)
	p := &s.team.Players[0]
	settings := model.DefaultSettings()
	settings.EuroPflicht = 0.1

	RecordPflichtFailure(p, settings)
	RecordPflichtFailure(p, settings)
	RecordPflichtFailure(p, settings)

	s.Equal(0.3, p.Pflicht.CostEuro)
	s.Equal(0.3, p.TotalEuro)
}

// Settings tests

func (s *EngineSuite) TestApplySettingsRejectsNegative() {
	settings := model.DefaultSettings()
	settings.EuroHeideKaputt = -1

	err := ApplySettings(s.team, settings)
	s.ErrorIs(err, model.ErrInvalidSettings)
	s.Equal(model.DefaultSettings(), s.team.Settings)
}

func (s *EngineSuite) TestApplySettingsRoundsEuro() {
	settings := model.DefaultSettings()
	settings.EuroKohleWeg = 2.456

	s.Require().NoError(ApplySettings(s.team, settings))
	s.Equal(2.46, s.team.Settings.EuroKohleWeg)
}

// Roster tests

func (s *EngineSuite) TestAddPlayerRosterFull() {
	s.addPlayers(model.MaxPlayers)

	_, err := AddPlayer(s.team, model.NewPlayer("player-11", "Spieler 11"))
	s.ErrorIs(err, model.ErrRosterFull)
	s.Len(s.team.Players, model.MaxPlayers)
}

func (s *EngineSuite) TestAddPlayerEndedTeam() {
	EndTeam(s.team)

	_, err := AddPlayer(s.team, model.NewPlayer("player-1", "Spieler 1"))
	s.ErrorIs(err, model.ErrTeamEnded)
	s.Empty(s.team.Players)
}

func (s *EngineSuite) TestRemovePlayerClampsCursor() {
	s.addPlayers(3)
	s.team.CurrentPlayerIndex = 2

	s.True(RemovePlayer(s.team, "player-3"))
	s.Len(s.team.Players, 2)
	s.Equal(0, s.team.CurrentPlayerIndex)
}

func (s *EngineSuite) TestRemovePlayerBeforeCursorKeepsPosition() {
	s.addPlayers(3)
	s.team.CurrentPlayerIndex = 1

	s.True(RemovePlayer(s.team, "player-1"))

	// Positional: index 1 now refers to player-3
	s.Equal(1, s.team.CurrentPlayerIndex)
	s.Equal(model.PlayerID("player-3"), s.team.CurrentPlayer().ID)
}

func (s *EngineSuite) TestRemoveLastPlayerResetsCursor() {
	s.addPlayers(1)

	s.True(RemovePlayer(s.team, "player-1"))
	s.Empty(s.team.Players)
	s.Equal(0, s.team.CurrentPlayerIndex)
}

func (s *EngineSuite) TestRemoveUnknownPlayerIsNoop() {
	s.addPlayers(2)
	s.False(RemovePlayer(s.team, "nobody"))
	s.Len(s.team.Players, 2)
}

func (s *EngineSuite) TestRenamePlayer() {
	s.addPlayers(2)

	s.True(RenamePlayer(s.team, "player-2", "Spieler 1"))
	s.Equal("Spieler 1", s.team.Players[1].Name)
	s.False(RenamePlayer(s.team, "nobody", "X"))
}

func (s *EngineSuite) TestEndedTeamRejectsRosterChanges() {
	s.addPlayers(2)
	s.True(EndTeam(s.team))
	s.False(EndTeam(s.team))

	s.False(RemovePlayer(s.team, "player-1"))
	s.False(RenamePlayer(s.team, "player-1", "X"))
	s.Len(s.team.Players, 2)
	s.Equal("Spieler 1", s.team.Players[0].Name)
}

// Leaderboard tests

func (s *EngineSuite) TestLeaderboardSortsAscending() {
	s.addPlayers(3)
	s.team.Players[0].PenaltyEuro = 5
	s.team.Players[1].PenaltyEuro = 1
	s.team.Players[2].PenaltyEuro = 3
	for i := range s.team.Players {
		RecomputeTotals(&s.team.Players[i])
	}

	standings := Leaderboard(s.team)

	s.Require().Len(standings, 3)
	s.Equal(model.PlayerID("player-2"), standings[0].Player.ID)
	s.Equal(model.PlayerID("player-3"), standings[1].Player.ID)
	s.Equal(model.PlayerID("player-1"), standings[2].Player.ID)
	s.Equal([]int{1, 2, 3}, []int{standings[0].Rank, standings[1].Rank, standings[2].Rank})
}

func (s *EngineSuite) TestLeaderboardTiesKeepRosterOrder() {
	s.addPlayers(4)
	s.team.Players[2].PenaltyEuro = 1
	RecomputeTotals(&s.team.Players[2])

	standings := Leaderboard(s.team)

	ids := make([]model.PlayerID, len(standings))
	for i, st := range standings {
		ids[i] = st.Player.ID
	}
	s.Equal([]model.PlayerID{"player-1", "player-2", "player-4", "player-3"}, ids)
}

func (s *EngineSuite) TestLeaderboardDoesNotMutateRoster() {
	s.addPlayers(2)
	s.team.Players[0].PenaltyEuro = 2
	RecomputeTotals(&s.team.Players[0])

	_ = Leaderboard(s.team)

	s.Equal(model.PlayerID("player-1"), s.team.Players[0].ID)
}

// Randomized invariant test

func (s *EngineSuite) TestTotalInvariantHoldsUnderRandomPlay() {
	faker := gofakeit.New(42)
	s.addPlayers(faker.IntRange(1, model.MaxPlayers))

	for round := 0; round < 200; round++ {
		switch faker.IntRange(0, 3) {
		case 0:
			settings := model.Settings{
				PointsStockditsch: faker.IntRange(0, 20),
				PointsWindditsch:  faker.IntRange(0, 20),
				PointsUnterweite:  faker.IntRange(0, 20),
				EuroKohleWeg:      faker.Float64Range(0, 10),
				EuroHeideKaputt:   faker.Float64Range(0, 10),
				EuroStockKaputt:   faker.Float64Range(0, 10),
				EuroPflicht:       faker.Float64Range(0, 3),
			}
			s.Require().NoError(ApplySettings(s.team, settings))
		case 1:
			idx := faker.IntRange(0, len(s.team.Players)-1)
			RecordPflichtFailure(&s.team.Players[idx], s.team.Settings)
		case 2:
			idx := faker.IntRange(0, len(s.team.Players)-1)
			if faker.IntRange(0, 4) == 0 {
				RecordPflichtSuccess(&s.team.Players[idx])
			}
		default:
			before := s.team.CurrentPlayerIndex
			ResolveTurn(s.team, model.TurnSelection{
				Stockditsch: faker.Bool(),
				Windditsch:  faker.Bool(),
				Unterweite:  faker.Bool(),
				KohleWeg:    faker.Bool(),
				HeideKaputt: faker.Bool(),
				StockKaputt: faker.Bool(),
			})
			s.Equal((before+1)%len(s.team.Players), s.team.CurrentPlayerIndex)
		}

		for _, p := range s.team.Players {
			s.assertTotal(p)
			s.Equal(p.Pflicht.Attempts, p.Pflicht.Failures)
			s.LessOrEqual(p.Pflicht.Attempts, model.MaxPflichtAttempts)
		}
	}
}
