// Package guard drives the auth lifecycle at startup and the routing
// decisions that depend on it. Interactive rendering must wait for Hydrate
// to reach a terminal state so no protected view flashes for a signed-out
// user and no login form flashes for a signed-in one.
package guard

import (
	"context"
	"sync"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"

	"github.com/cafehub/go-admin-client/api"
	"github.com/cafehub/go-admin-client/roles"
	"github.com/cafehub/go-admin-client/session"
)

// State is the auth lifecycle state.
type State int

const (
	StateUninitialized State = iota
	StateValidating
	StateAuthenticated
	StateUnauthenticated
)

func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "uninitialized"
	case StateValidating:
		return "validating"
	case StateAuthenticated:
		return "authenticated"
	case StateUnauthenticated:
		return "unauthenticated"
	}
	return "unknown"
}

// Route paths the guard redirects between.
const (
	LoginPath = "/auth"
	RootPath  = "/"
)

// AuthClient is the slice of the auth API the guard needs.
type AuthClient interface {
	CurrentUser(ctx context.Context) (*api.User, error)
	Refresh(ctx context.Context, refreshToken string) (*api.AuthResponse, error)
}

// Guard validates the persisted session once per process start and answers
// routing questions afterwards.
type Guard struct {
	mu      sync.RWMutex
	session *session.Store
	auth    AuthClient
	log     zerolog.Logger
	state   State
}

// Option configures the Guard.
type Option func(*Guard)

// WithLogger sets the guard logger.
func WithLogger(log zerolog.Logger) Option {
	return func(g *Guard) {
		g.log = log
	}
}

// New creates a guard in the Uninitialized state.
func New(sess *session.Store, auth AuthClient, options ...Option) (*Guard, error) {
	if sess == nil {
		return nil, errors.New("[guard.New] session store is required")
	}
	if auth == nil {
		return nil, errors.New("[guard.New] auth client is required")
	}
	g := &Guard{
		session: sess,
		auth:    auth,
		log:     zerolog.Nop(),
		state:   StateUninitialized,
	}
	for _, opt := range options {
		opt(g)
	}
	return g, nil
}

// State returns the current lifecycle state.
func (g *Guard) State() State {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.state
}

// Hydrate loads the persisted session and validates it against the backend,
// blocking until a terminal state is reached. With no persisted token it
// settles Unauthenticated without any network call. With a token it enters
// Validating and issues an identity check; on failure, at most one token
// refresh is attempted before the session is cleared. The single-refresh
// limit is per hydration cycle and must never loop.
func (g *Guard) Hydrate(ctx context.Context) State {
	g.session.Hydrate()

	if g.session.AccessToken() == "" {
		g.session.Clear()
		return g.settle(StateUnauthenticated)
	}

	g.setState(StateValidating)

	refreshAttempted := false
	for {
		user, err := g.auth.CurrentUser(ctx)
		if err == nil {
			g.session.SetUser(user)
			return g.settle(StateAuthenticated)
		}

		refreshToken := g.session.RefreshToken()
		if refreshAttempted || refreshToken == "" {
			g.log.Info().Err(err).Msg("identity check failed; clearing session")
			g.session.Clear()
			return g.settle(StateUnauthenticated)
		}

		refreshAttempted = true
		tokens, refreshErr := g.auth.Refresh(ctx, refreshToken)
		if refreshErr != nil {
			g.log.Info().Err(refreshErr).Msg("token refresh failed; clearing session")
			g.session.Clear()
			return g.settle(StateUnauthenticated)
		}
		g.session.SetCredentials(tokens.AccessToken, tokens.RefreshToken)
		// Re-enter Validating with the new token: one more identity check.
	}
}

// Resume settles the guard from the live in-memory session, for use right
// after an interactive sign-in. Unlike Hydrate it performs no storage reload
// and no network validation: a sign-in just proved the credentials.
func (g *Guard) Resume() State {
	if g.session.IsAuthenticated() {
		return g.settle(StateAuthenticated)
	}
	return g.settle(StateUnauthenticated)
}

// Invalidate drops the guard back to Unauthenticated after a logout.
func (g *Guard) Invalidate() {
	g.setState(StateUnauthenticated)
}

// Redirect returns the path the user must be sent to from path, and whether
// a redirect is needed at all. Authenticated users are kept off the login
// view; unauthenticated users are kept off everything else.
func (g *Guard) Redirect(path string) (string, bool) {
	switch g.State() {
	case StateAuthenticated:
		if path == LoginPath {
			return RootPath, true
		}
	case StateUnauthenticated:
		if path != LoginPath {
			return LoginPath, true
		}
	default:
		// Not settled yet; callers must keep blocking on Hydrate.
	}
	return "", false
}

// CanAccess applies the capability check for the current user. It denies
// while the lifecycle has not settled on Authenticated.
func (g *Guard) CanAccess(required ...roles.RoleType) bool {
	if g.State() != StateAuthenticated {
		return false
	}
	user := g.session.CurrentUser()
	if user == nil {
		return false
	}
	return roles.Allowed(user.Role, required...)
}

func (g *Guard) setState(next State) {
	g.mu.Lock()
	prev := g.state
	g.state = next
	g.mu.Unlock()
	if prev != next {
		g.log.Debug().Stringer("from", prev).Stringer("to", next).Msg("auth state transition")
	}
}

func (g *Guard) settle(terminal State) State {
	g.setState(terminal)
	return terminal
}
