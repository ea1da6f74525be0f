package errors

import (
	"errors"
	"fmt"
)

// Common error types for the admin client
var (
	// Authentication errors
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrUnauthorized       = errors.New("unauthorized")
	ErrNotAuthenticated   = errors.New("not authenticated")
	ErrNoRefreshToken     = errors.New("no refresh token")
	ErrSessionExpired     = errors.New("session expired")

	// Request errors
	ErrForbidden  = errors.New("forbidden")
	ErrNotFound   = errors.New("not found")
	ErrBadRequest = errors.New("bad request")
	ErrServer     = errors.New("server error")
	ErrTransport  = errors.New("transport failure")

	// Cache errors
	ErrFetchSuperseded = errors.New("fetch superseded")

	// Storage errors
	ErrStorageUnavailable = errors.New("storage unavailable")
	ErrKeyNotFound        = errors.New("key not found")

	// General errors
	ErrInternal    = errors.New("internal error")
	ErrUnsupported = errors.New("unsupported operation")
)

// Wrapf wraps an error with context using fmt.Errorf
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf(format+": %w", append(args, err)...)
}

// Is reports whether any error in err's chain matches target
func Is(err, target error) bool {
	return errors.Is(err, target)
}

// As finds the first error in err's chain that matches target
func As(err error, target interface{}) bool {
	return errors.As(err, target)
}
