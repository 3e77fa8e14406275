package handler

import (
	"net/http"

	"github.com/mcoot/kohlenschlagen/internal/api/apierr"
)

// Re-export from apierr for convenience
type APIError = apierr.APIError
type ErrorResponse = apierr.ErrorResponse

// Re-export error codes
const (
	CodeInvalidRequest   = apierr.CodeInvalidRequest
	CodeInvalidName      = apierr.CodeInvalidName
	CodeInvalidSettings  = apierr.CodeInvalidSettings
	CodeTeamNotFound     = apierr.CodeTeamNotFound
	CodePlayerNotFound   = apierr.CodePlayerNotFound
	CodeNoActiveTeam     = apierr.CodeNoActiveTeam
	CodeRosterFull       = apierr.CodeRosterFull
	CodeTeamEnded        = apierr.CodeTeamEnded
	CodeNoPlayers        = apierr.CodeNoPlayers
	CodePflichtCompleted = apierr.CodePflichtCompleted
	CodeInternalError    = apierr.CodeInternalError
)

// WriteError writes an error response to the response writer
func WriteError(w http.ResponseWriter, err error) {
	apierr.WriteError(w, err)
}

// NewInvalidRequestError creates an invalid request error
func NewInvalidRequestError(message string) error {
	return apierr.NewInvalidRequestError(message)
}
