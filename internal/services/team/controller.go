// Package team coordinates persisted sessions with the scoring rules.
package team

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"github.com/mcoot/kohlenschlagen/internal/dependencies/clock"
	"github.com/mcoot/kohlenschlagen/internal/dependencies/ids"
	"github.com/mcoot/kohlenschlagen/internal/metrics"
	"github.com/mcoot/kohlenschlagen/internal/model"
	"github.com/mcoot/kohlenschlagen/internal/services/scoring"
	"github.com/mcoot/kohlenschlagen/internal/storage"
)

// DefaultPlayerNamePrefix is used for players added without a name
const DefaultPlayerNamePrefix = "Spieler"

// TurnResult describes a resolved turn
type TurnResult struct {
	// Player is the player who took the turn, after scoring
	Player model.Player
	// Points and PenaltyEuro are what this turn added
	Points      int
	PenaltyEuro float64
	Team        *model.Team
}

// Controller runs every team operation as load, mutate, save.
// Operations are serialized so each one sees the previous one's result.
type Controller struct {
	mu      sync.Mutex
	storage storage.Storage
	clock   clock.Clock
	ids     ids.Generator
	metrics *metrics.Metrics
	logger  *slog.Logger
}

// NewController creates a new team Controller. metrics may be nil.
func NewController(
	storage storage.Storage,
	clock clock.Clock,
	ids ids.Generator,
	metrics *metrics.Metrics,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage: storage,
		clock:   clock,
		ids:     ids,
		metrics: metrics,
		logger:  logger,
	}
}

// GetSession returns the whole persisted session
func (c *Controller) GetSession(ctx context.Context) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.load(ctx)
}

// ListTeams returns every team in creation order
func (c *Controller) ListTeams(ctx context.Context) ([]*model.Team, error) {
	session, err := c.GetSession(ctx)
	if err != nil {
		return nil, err
	}
	return session.Teams, nil
}

// GetTeam returns a team by ID; an empty ID means the active team
func (c *Controller) GetTeam(ctx context.Context, teamID model.TeamID) (*model.Team, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.load(ctx)
	if err != nil {
		return nil, err
	}
	return resolveTeam(session, teamID)
}

// CreateTeam starts a new team with default settings and makes it active
func (c *Controller) CreateTeam(ctx context.Context, name string) (*model.Team, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrInvalidName
	}

	var team *model.Team
	err := c.mutate(ctx, func(session *model.Session) error {
		team = model.NewTeam(model.TeamID(c.ids.NewID()), name, c.clock.Now())
		session.Teams = append(session.Teams, team)
		session.SetActive(team.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.metrics.TeamCreated()
	c.logger.Info("team created",
		slog.String("team_id", string(team.ID)),
		slog.String("team_name", team.Name),
	)
	return team, nil
}

// SelectTeam makes the given team the active one
func (c *Controller) SelectTeam(ctx context.Context, teamID model.TeamID) (*model.Team, error) {
	var team *model.Team
	err := c.mutate(ctx, func(session *model.Session) error {
		var err error
		if team, err = resolveTeam(session, teamID); err != nil {
			return err
		}
		session.SetActive(team.ID)
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("team selected", slog.String("team_id", string(team.ID)))
	return team, nil
}

// EndTeam closes a team. Ended teams reject further scoring and roster changes.
func (c *Controller) EndTeam(ctx context.Context, teamID model.TeamID) (*model.Team, error) {
	var team *model.Team
	err := c.mutate(ctx, func(session *model.Session) error {
		var err error
		if team, err = resolveTeam(session, teamID); err != nil {
			return err
		}
		if !scoring.EndTeam(team) {
			return model.ErrTeamEnded
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.metrics.TeamEnded()
	c.logger.Info("team ended",
		slog.String("team_id", string(team.ID)),
		slog.Int("player_count", len(team.Players)),
	)
	return team, nil
}

// AddPlayer appends a player to the roster. A blank name becomes "Spieler N".
func (c *Controller) AddPlayer(ctx context.Context, teamID model.TeamID, name string) (*model.Player, error) {
	var player model.Player
	var team *model.Team
	err := c.mutate(ctx, func(session *model.Session) error {
		var err error
		if team, err = resolveTeam(session, teamID); err != nil {
			return err
		}

		name = strings.TrimSpace(name)
		if name == "" {
			name = fmt.Sprintf("%s %d", DefaultPlayerNamePrefix, len(team.Players)+1)
		}

		added, err := scoring.AddPlayer(team, model.NewPlayer(model.PlayerID(c.ids.NewID()), name))
		if err != nil {
			return err
		}
		player = *added
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.metrics.PlayerAdded()
	c.logger.Info("player added",
		slog.String("team_id", string(team.ID)),
		slog.String("player_id", string(player.ID)),
		slog.String("player_name", player.Name),
	)
	return &player, nil
}

// RemovePlayer drops a player from the roster
func (c *Controller) RemovePlayer(ctx context.Context, teamID model.TeamID, playerID model.PlayerID) (*model.Team, error) {
	var team *model.Team
	err := c.mutate(ctx, func(session *model.Session) error {
		var err error
		if team, err = resolveTeam(session, teamID); err != nil {
			return err
		}
		if team.Ended {
			return model.ErrTeamEnded
		}
		if !scoring.RemovePlayer(team, playerID) {
			return model.ErrPlayerNotFound
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.metrics.PlayerRemoved()
	c.logger.Info("player removed",
		slog.String("team_id", string(team.ID)),
		slog.String("player_id", string(playerID)),
	)
	return team, nil
}

// RenamePlayer changes a player's display name
func (c *Controller) RenamePlayer(ctx context.Context, teamID model.TeamID, playerID model.PlayerID, name string) (*model.Player, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, model.ErrInvalidName
	}

	var player model.Player
	err := c.mutate(ctx, func(session *model.Session) error {
		team, err := resolveTeam(session, teamID)
		if err != nil {
			return err
		}
		if team.Ended {
			return model.ErrTeamEnded
		}
		if !scoring.RenamePlayer(team, playerID, name) {
			return model.ErrPlayerNotFound
		}
		player = *team.GetPlayer(playerID)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &player, nil
}

// ResolveTurn books a selection on the current player and advances the turn
func (c *Controller) ResolveTurn(ctx context.Context, teamID model.TeamID, sel model.TurnSelection) (*TurnResult, error) {
	var result TurnResult
	err := c.mutate(ctx, func(session *model.Session) error {
		team, err := resolveTeam(session, teamID)
		if err != nil {
			return err
		}
		if team.Ended {
			return model.ErrTeamEnded
		}
		if len(team.Players) == 0 {
			return model.ErrNoPlayers
		}

		idx := team.CurrentPlayerIndex
		if idx < 0 || idx >= len(team.Players) {
			idx = 0
		}
		result.Points = scoring.TurnPoints(sel, team.Settings)
		result.PenaltyEuro = scoring.Round2(scoring.TurnPenalty(sel, team.Settings))

		scoring.ResolveTurn(team, sel)
		result.Player = team.Players[idx]
		result.Team = team
		return nil
	})
	if err != nil {
		return nil, err
	}

	events := make([]string, 0, 6)
	for _, ev := range sel.Selected() {
		events = append(events, string(ev))
	}
	c.metrics.TurnResolved(events)
	c.logger.Info("turn resolved",
		slog.String("team_id", string(result.Team.ID)),
		slog.String("player_id", string(result.Player.ID)),
		slog.Any("events", events),
		slog.Int("points", result.Points),
		slog.Float64("penalty_euro", result.PenaltyEuro),
	)
	return &result, nil
}

// RecordPflichtSuccess completes a player's mandatory attempt
func (c *Controller) RecordPflichtSuccess(ctx context.Context, teamID model.TeamID, playerID model.PlayerID) (*model.Player, error) {
	return c.recordPflicht(ctx, teamID, playerID, model.PflichtSuccess)
}

// RecordPflichtFailure charges one failed mandatory attempt
func (c *Controller) RecordPflichtFailure(ctx context.Context, teamID model.TeamID, playerID model.PlayerID) (*model.Player, error) {
	return c.recordPflicht(ctx, teamID, playerID, model.PflichtFailure)
}

// RecordPflicht dispatches on the outcome
func (c *Controller) RecordPflicht(ctx context.Context, teamID model.TeamID, playerID model.PlayerID, outcome model.PflichtOutcome) (*model.Player, error) {
	switch outcome {
	case model.PflichtSuccess, model.PflichtFailure:
		return c.recordPflicht(ctx, teamID, playerID, outcome)
	default:
		return nil, model.ErrInvalidOutcome
	}
}

func (c *Controller) recordPflicht(ctx context.Context, teamID model.TeamID, playerID model.PlayerID, outcome model.PflichtOutcome) (*model.Player, error) {
	var player model.Player
	var team *model.Team
	err := c.mutate(ctx, func(session *model.Session) error {
		var err error
		if team, err = resolveTeam(session, teamID); err != nil {
			return err
		}
		if team.Ended {
			return model.ErrTeamEnded
		}
		p := team.GetPlayer(playerID)
		if p == nil {
			return model.ErrPlayerNotFound
		}

		var changed bool
		if outcome == model.PflichtSuccess {
			changed = scoring.RecordPflichtSuccess(p)
		} else {
			changed = scoring.RecordPflichtFailure(p, team.Settings)
		}
		if !changed {
			return model.ErrPflichtCompleted
		}
		player = *p
		return nil
	})
	if err != nil {
		return nil, err
	}

	c.metrics.PflichtRecorded(string(outcome))
	c.logger.Info("pflicht recorded",
		slog.String("team_id", string(team.ID)),
		slog.String("player_id", string(player.ID)),
		slog.String("outcome", string(outcome)),
		slog.Int("attempts", player.Pflicht.Attempts),
		slog.Bool("completed", player.Pflicht.Completed),
	)
	return &player, nil
}

// UpdateSettings replaces a team's settings. Allowed on ended teams.
func (c *Controller) UpdateSettings(ctx context.Context, teamID model.TeamID, settings model.Settings) (*model.Team, error) {
	var team *model.Team
	err := c.mutate(ctx, func(session *model.Session) error {
		var err error
		if team, err = resolveTeam(session, teamID); err != nil {
			return err
		}
		return scoring.ApplySettings(team, settings)
	})
	if err != nil {
		return nil, err
	}

	c.logger.Info("settings updated", slog.String("team_id", string(team.ID)))
	return team, nil
}

// Leaderboard returns the team's standings, cheapest player first
func (c *Controller) Leaderboard(ctx context.Context, teamID model.TeamID) ([]model.Standing, error) {
	team, err := c.GetTeam(ctx, teamID)
	if err != nil {
		return nil, err
	}
	return scoring.Leaderboard(team), nil
}

// mutate applies fn to a freshly loaded session and persists the result.
// A rejected fn leaves the stored session untouched.
func (c *Controller) mutate(ctx context.Context, fn func(session *model.Session) error) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.load(ctx)
	if err != nil {
		return err
	}
	if err := fn(session); err != nil {
		return err
	}
	return c.save(ctx, session)
}

// load reads the session. A malformed document is logged and replaced by the empty session.
func (c *Controller) load(ctx context.Context) (*model.Session, error) {
	session, err := c.storage.LoadSession(ctx)
	if err != nil {
		if errors.Is(err, storage.ErrMalformedState) {
			c.logger.Warn("discarding malformed session state", slog.String("error", err.Error()))
			return session, nil
		}
		c.metrics.StorageError("load")
		c.logger.Error("failed to load session", slog.String("error", err.Error()))
		return nil, fmt.Errorf("load session: %w", err)
	}
	return session, nil
}

func (c *Controller) save(ctx context.Context, session *model.Session) error {
	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.metrics.StorageError("save")
		c.logger.Error("failed to save session", slog.String("error", err.Error()))
		return fmt.Errorf("save session: %w", err)
	}
	return nil
}

// resolveTeam finds a team by ID, or the active team for an empty ID
func resolveTeam(session *model.Session, teamID model.TeamID) (*model.Team, error) {
	if teamID == "" {
		team := session.ActiveTeam()
		if team == nil {
			return nil, model.ErrNoActiveTeam
		}
		return team, nil
	}
	team := session.GetTeam(teamID)
	if team == nil {
		return nil, model.ErrTeamNotFound
	}
	return team, nil
}
