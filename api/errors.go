package api

import (
	"fmt"
	"net/http"

	interrors "github.com/cafehub/go-admin-client/internal/errors"
)

const genericErrorMessage = "An error occurred"

// Error is the normalized form of any backend failure: the HTTP status and a
// human readable message sourced from the server payload when present.
type Error struct {
	Status  int
	Message string
}

func (e *Error) Error() string {
	return fmt.Sprintf("api error %d: %s", e.Status, e.Message)
}

// Unwrap maps the status code onto the client error taxonomy so callers can
// branch with errors.Is without inspecting status codes themselves.
func (e *Error) Unwrap() error {
	switch {
	case e.Status == http.StatusUnauthorized:
		return interrors.ErrUnauthorized
	case e.Status == http.StatusForbidden:
		return interrors.ErrForbidden
	case e.Status == http.StatusNotFound:
		return interrors.ErrNotFound
	case e.Status >= 400 && e.Status < 500:
		return interrors.ErrBadRequest
	default:
		return interrors.ErrServer
	}
}

// errorBody is the JSON error payload shape used by the backend.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error,omitempty"`
}

func newError(status int, body errorBody) *Error {
	msg := body.Message
	if msg == "" {
		msg = genericErrorMessage
	}
	return &Error{Status: status, Message: msg}
}
