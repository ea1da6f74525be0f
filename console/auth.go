package console

import (
	"context"

	"github.com/pkg/errors"

	"github.com/cafehub/go-admin-client/api"
	"github.com/cafehub/go-admin-client/cache"
)

// authTag labels cached data tied to the current identity.
var authTag = cache.Tag{Resource: cache.ResourceAuth}

// Auth covers sign-in, sign-out and identity operations, keeping the session
// store in step with their outcomes.
type Auth struct {
	c *Console
}

// SignIn authenticates and stores the resulting credentials and user.
func (a *Auth) SignIn(ctx context.Context, creds api.SignInCredentials) error {
	sess := a.c.session
	sess.SetLoading(true)
	sess.ClearError()
	defer sess.SetLoading(false)

	tokens, err := a.c.api.Auth().SignIn(ctx, creds)
	if err != nil {
		sess.SetError(displayMessage(err, "Authentication failed"))
		return errors.Wrap(err, "[Auth.SignIn] sign in")
	}
	sess.SetCredentials(tokens.AccessToken, tokens.RefreshToken)

	user, err := a.c.api.Auth().CurrentUser(ctx)
	if err != nil {
		sess.SetError(displayMessage(err, "Failed to fetch user data"))
		return errors.Wrap(err, "[Auth.SignIn] current user")
	}
	sess.SetUser(user)

	a.c.cache.Invalidate(authTag)
	return nil
}

// Logout ends the server session and always clears local state, even when
// the server call fails: stale credentials must not survive a logout.
func (a *Auth) Logout(ctx context.Context) error {
	err := a.c.api.Auth().Logout(ctx)

	a.c.session.Clear()
	a.c.cache.Reset()

	if err != nil {
		a.c.log.Warn().Err(err).Msg("server logout failed; local session cleared anyway")
		return errors.Wrap(err, "[Auth.Logout] logout")
	}
	return nil
}

// CurrentUser returns the identity behind the current token, cached until
// an auth-affecting mutation invalidates it.
func (a *Auth) CurrentUser(ctx context.Context) (*api.User, error) {
	return read(ctx, a.c.cache, cache.Key{Resource: cache.ResourceAuth, ID: "me"},
		a.c.api.Auth().CurrentUser,
		func(user *api.User) []cache.Tag {
			return []cache.Tag{authTag, cache.ItemTag(cache.ResourceUser, user.ID)}
		},
	)
}

// CreateUser registers a new staff account.
func (a *Auth) CreateUser(ctx context.Context, creds api.SignUpCredentials) (*api.User, error) {
	return mutate(ctx, a.c.cache, cache.ResourceUser,
		func(ctx context.Context) (*api.User, error) { return a.c.api.Auth().CreateUser(ctx, creds) },
		func(*api.User) []cache.Tag {
			return []cache.Tag{cache.ListTag(cache.ResourceUsers)}
		},
	)
}

// InviteUser invites a user by email.
func (a *Auth) InviteUser(ctx context.Context, req api.InviteUserRequest) (*api.InviteUserResponse, error) {
	resp, err := a.c.api.Auth().InviteUser(ctx, req)
	if err != nil {
		return nil, errors.Wrap(err, "[Auth.InviteUser] invite user")
	}
	a.c.cache.Invalidate(cache.ListTag(cache.ResourceUsers))
	return resp, nil
}

// displayMessage extracts the server's human readable message, falling back
// to a generic string.
func displayMessage(err error, fallback string) string {
	var apiErr *api.Error
	if errors.As(err, &apiErr) {
		return apiErr.Message
	}
	return fallback
}
