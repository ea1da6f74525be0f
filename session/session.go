// Package session owns the client's authenticated identity: who is signed
// in, with what credentials, and whether that state has been persisted.
package session

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/oauth2"

	"github.com/cafehub/go-admin-client/api"
)

// Session is the client-held record of the current authenticated identity
// and its credentials. It is owned exclusively by the Store; callers receive
// copies via Snapshot.
type Session struct {
	Token           *oauth2.Token // Access + refresh token pair, nil when signed out
	User            *api.User     // Current user, nil until the identity check succeeds
	IsAuthenticated bool
	IsLoading       bool
	LastError       string
}

// AccessToken returns the bearer token or "" when signed out.
func (s Session) AccessToken() string {
	if s.Token == nil {
		return ""
	}
	return s.Token.AccessToken
}

// RefreshToken returns the refresh token or "" when signed out.
func (s Session) RefreshToken() string {
	if s.Token == nil {
		return ""
	}
	return s.Token.RefreshToken
}

// TokenExpiry reports the access token's expiry claim. The claim is read
// without signature verification; the server remains the authority on token
// validity, this is only used to surface expiry in the UI.
func (s Session) TokenExpiry() (time.Time, bool) {
	raw := s.AccessToken()
	if raw == "" {
		return time.Time{}, false
	}
	parser := jwt.NewParser()
	claims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(raw, claims); err != nil {
		return time.Time{}, false
	}
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return time.Time{}, false
	}
	return exp.Time, true
}
