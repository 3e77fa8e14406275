package factory

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/kohlenschlagen/internal/config"
	"github.com/mcoot/kohlenschlagen/internal/model"
	"github.com/mcoot/kohlenschlagen/internal/services/scoring"
	"github.com/mcoot/kohlenschlagen/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
}

// Test: a full evening from team creation to the final leaderboard
func (s *IntegrationSuite) TestCompleteEvening() {
	s.app.MockIDs.Queue("team-1", "anna", "bernd")
	c := s.app.TeamController

	// Step 1: Create the team and its roster
	created, err := c.CreateTeam(s.ctx, "Hofmannshausen")
	s.Require().NoError(err)
	s.Equal(model.TeamID("team-1"), created.ID)

	_, err = c.AddPlayer(s.ctx, "", "Anna")
	s.Require().NoError(err)
	_, err = c.AddPlayer(s.ctx, "", "Bernd")
	s.Require().NoError(err)

	// Step 2: Two rounds of turns
	turns := []model.TurnSelection{
		{Stockditsch: true, KohleWeg: true}, // Anna: 10 points, 2 €
		{Windditsch: true},                  // Bernd: 5 points
		{HeideKaputt: true},                 // Anna: 5 €
		{},                                  // Bernd: skip
	}
	for _, sel := range turns {
		_, err := c.ResolveTurn(s.ctx, "", sel)
		s.Require().NoError(err)
	}

	// Step 3: Mandatory attempts
	_, err = c.RecordPflichtFailure(s.ctx, "", "bernd")
	s.Require().NoError(err)
	_, err = c.RecordPflichtSuccess(s.ctx, "", "bernd")
	s.Require().NoError(err)
	_, err = c.RecordPflichtSuccess(s.ctx, "", "anna")
	s.Require().NoError(err)

	// Step 4: End the team
	ended, err := c.EndTeam(s.ctx, "")
	s.Require().NoError(err)
	s.True(ended.Ended)

	// Step 5: Leaderboard
	standings, err := c.Leaderboard(s.ctx, "")
	s.Require().NoError(err)
	s.Require().Len(standings, 2)
	s.Equal("Bernd", standings[0].Player.Name)
	s.Equal(1.05, standings[0].Player.TotalEuro)
	s.Equal("Anna", standings[1].Player.Name)
	s.Equal(7.1, standings[1].Player.TotalEuro)

	// Every player satisfies the total invariant after persistence
	for _, st := range standings {
		p := st.Player
		want := scoring.Round2(scoring.PointsToEuro(p.Points) + p.PenaltyEuro + p.Pflicht.CostEuro)
		s.Equal(want, p.TotalEuro)
	}
}

// Test: the session survives a restart of the controller over the same storage
func (s *IntegrationSuite) TestStateSurvivesRestart() {
	_, err := s.app.TeamController.CreateTeam(s.ctx, "Stammtisch")
	s.Require().NoError(err)
	_, err = s.app.TeamController.AddPlayer(s.ctx, "", "")
	s.Require().NoError(err)

	restarted := newWithDependencies(s.app.Storage, s.app.MockClock, s.app.MockIDs, nil, testutil.NopLogger())

	found, err := restarted.TeamController.GetTeam(s.ctx, "")
	s.Require().NoError(err)
	s.Equal("Stammtisch", found.Name)
	s.Require().Len(found.Players, 1)
	s.Equal("Spieler 1", found.Players[0].Name)
}

// Test: multiple teams keep independent settings and rosters
func (s *IntegrationSuite) TestTeamsAreIndependent() {
	c := s.app.TeamController
	first, err := c.CreateTeam(s.ctx, "First")
	s.Require().NoError(err)
	second, err := c.CreateTeam(s.ctx, "Second")
	s.Require().NoError(err)

	settings := model.DefaultSettings()
	settings.PointsStockditsch = 50
	_, err = c.UpdateSettings(s.ctx, first.ID, settings)
	s.Require().NoError(err)

	_, err = c.AddPlayer(s.ctx, first.ID, "A")
	s.Require().NoError(err)
	_, err = c.AddPlayer(s.ctx, second.ID, "B")
	s.Require().NoError(err)

	r1, err := c.ResolveTurn(s.ctx, first.ID, model.TurnSelection{Stockditsch: true})
	s.Require().NoError(err)
	r2, err := c.ResolveTurn(s.ctx, second.ID, model.TurnSelection{Stockditsch: true})
	s.Require().NoError(err)

	s.Equal(50, r1.Player.Points)
	s.Equal(10, r2.Player.Points)
}

func TestNewWithMemoryStorage(t *testing.T) {
	app, err := New(Config{})
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = app.Close() }()

	if _, err := app.TeamController.CreateTeam(context.Background(), "Memory"); err != nil {
		t.Fatal(err)
	}
}

func TestNewWithSQLiteStorage(t *testing.T) {
	cfg := config.Default()
	cfg.Storage.Type = config.StorageSQLite
	cfg.Storage.SQLite.Path = filepath.Join(t.TempDir(), "kohle.db")

	app, err := New(ConfigFrom(&cfg, testutil.NopLogger()))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = app.Close() }()

	if _, err := app.TeamController.CreateTeam(context.Background(), "SQLite"); err != nil {
		t.Fatal(err)
	}
	teams, err := app.TeamController.ListTeams(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if len(teams) != 1 {
		t.Fatalf("expected 1 team, got %d", len(teams))
	}
}

func TestNewWithRedisStorage(t *testing.T) {
	mini := miniredis.RunT(t)

	cfg := config.Default()
	cfg.Storage.Type = config.StorageRedis
	cfg.Storage.Redis.URL = "redis://" + mini.Addr()
	cfg.Storage.Redis.StateTTL = time.Hour

	app, err := New(ConfigFrom(&cfg, testutil.NopLogger()))
	if err != nil {
		t.Fatal(err)
	}
	defer func() { _ = app.Close() }()

	if _, err := app.TeamController.CreateTeam(context.Background(), "Redis"); err != nil {
		t.Fatal(err)
	}
	if !mini.Exists("kohlenschlagen_state_v1") {
		t.Fatal("expected state key in redis")
	}
}

func TestNewRejectsUnknownStorage(t *testing.T) {
	if _, err := New(Config{StorageType: "postgres"}); err == nil {
		t.Fatal("expected error for unknown storage type")
	}
	if _, err := New(Config{StorageType: StorageTypeRedis}); err == nil {
		t.Fatal("expected error without redis config")
	}
}
