package api

import (
	"context"
	"fmt"
)

// AuthAPI covers the authentication endpoints. Token refresh and sign-in are
// the only calls issued without a bearer token.
type AuthAPI struct {
	c *Client
}

// SignIn exchanges credentials for a token pair.
func (a *AuthAPI) SignIn(ctx context.Context, creds SignInCredentials) (*AuthResponse, error) {
	var out AuthResponse
	if err := a.c.post(ctx, "/auth/signin", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Logout invalidates the current session on the server.
func (a *AuthAPI) Logout(ctx context.Context) error {
	return a.c.post(ctx, "/auth/logout", nil, nil)
}

// CreateUser registers a new staff account.
func (a *AuthAPI) CreateUser(ctx context.Context, creds SignUpCredentials) (*User, error) {
	var out User
	if err := a.c.post(ctx, "/auth/create-user", creds, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// CurrentUser returns the identity behind the current bearer token.
func (a *AuthAPI) CurrentUser(ctx context.Context) (*User, error) {
	var out User
	if err := a.c.get(ctx, "/auth/me", &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// InviteUser invites a user by email; the backend responds with a temporary
// password to hand over out of band.
func (a *AuthAPI) InviteUser(ctx context.Context, req InviteUserRequest) (*InviteUserResponse, error) {
	var out InviteUserResponse
	if err := a.c.post(ctx, "/auth/invite-user", req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Refresh exchanges a refresh token for a fresh token pair.
func (a *AuthAPI) Refresh(ctx context.Context, refreshToken string) (*AuthResponse, error) {
	var out AuthResponse
	body := map[string]string{"refreshToken": refreshToken}
	if err := a.c.post(ctx, "/auth/refresh", body, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func idPath(prefix string, id int64) string {
	return fmt.Sprintf("%s/%d", prefix, id)
}
