package storage

import (
	"context"

	"github.com/mcoot/kohlenschlagen/internal/model"
)

// StateKey is the single key the session document is stored under
const StateKey = "kohlenschlagen_state_v1"

// Storage persists the whole session as one snapshot
type Storage interface {
	// LoadSession returns the stored session, or an empty session if none
	// has been saved yet. A malformed document also yields an empty session,
	// together with an error wrapping ErrMalformedState.
	LoadSession(ctx context.Context) (*model.Session, error)

	// SaveSession atomically replaces the stored snapshot
	SaveSession(ctx context.Context, session *model.Session) error
}
