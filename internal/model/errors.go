package model

import "errors"

// Common errors used across the application
var (
	// Team errors
	ErrTeamNotFound = errors.New("team not found")
	ErrNoActiveTeam = errors.New("no active team")
	ErrInvalidName  = errors.New("name must not be empty")
	ErrTeamEnded    = errors.New("team has ended")

	// Roster errors
	ErrPlayerNotFound = errors.New("player not found")
	ErrRosterFull     = errors.New("roster is full")
	ErrNoPlayers      = errors.New("team has no players")

	// Scoring errors
	ErrPflichtCompleted = errors.New("mandatory attempt already completed")
	ErrInvalidOutcome   = errors.New("outcome must be success or failure")
	ErrInvalidSettings  = errors.New("settings values must not be negative")
)
