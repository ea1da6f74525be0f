package session

import (
	"encoding/json"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/oauth2"

	"github.com/cafehub/go-admin-client/api"
	interrors "github.com/cafehub/go-admin-client/internal/errors"
	"github.com/cafehub/go-admin-client/session/keyring"
)

// Store is the single source of truth for the session. Every
// credential-affecting operation synchronizes to the keyring immediately so
// a later run can rehydrate without re-authenticating. Keyring failures are
// logged and swallowed: an unavailable keyring degrades to a session that
// only lives for the current run, never to an error.
type Store struct {
	mu      sync.RWMutex
	keyring keyring.Keyring
	log     zerolog.Logger
	sess    Session
}

// StoreOption configures the Store.
type StoreOption func(*Store)

// WithLogger sets the store's logger.
func WithLogger(log zerolog.Logger) StoreOption {
	return func(s *Store) {
		s.log = log
	}
}

// NewStore creates a session store backed by kr. kr may be nil, in which
// case nothing is persisted.
func NewStore(kr keyring.Keyring, options ...StoreOption) *Store {
	s := &Store{
		keyring: kr,
		log:     zerolog.Nop(),
	}
	for _, opt := range options {
		opt(s)
	}
	return s
}

// Hydrate loads the persisted token pair and user. Idempotent; intended to
// run once per process start. IsAuthenticated is set only when both a token
// and a user were recovered.
func (s *Store) Hydrate() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sess = Session{}
	if s.keyring == nil {
		return
	}

	token, err := s.keyring.Get(keyring.KeyToken)
	if err != nil {
		s.logStorageErr("hydrate token", err)
		return
	}
	refreshToken, _ := s.keyring.Get(keyring.KeyRefreshToken)

	var user *api.User
	if rawUser, err := s.keyring.Get(keyring.KeyUser); err == nil {
		var u api.User
		if err := json.Unmarshal([]byte(rawUser), &u); err != nil {
			s.log.Warn().Err(err).Msg("discarding unreadable persisted user")
		} else {
			user = &u
		}
	}

	if token == "" {
		return
	}
	s.sess.Token = &oauth2.Token{AccessToken: token, RefreshToken: refreshToken}
	s.sess.User = user
	s.sess.IsAuthenticated = user != nil
}

// SetCredentials overwrites the token pair, marks the session authenticated
// and persists both tokens.
func (s *Store) SetCredentials(accessToken, refreshToken string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sess.Token = &oauth2.Token{AccessToken: accessToken, RefreshToken: refreshToken}
	s.sess.IsAuthenticated = true

	s.persist(keyring.KeyToken, accessToken)
	s.persist(keyring.KeyRefreshToken, refreshToken)
}

// SetUser overwrites the current user, marks the session authenticated and
// persists the user record.
func (s *Store) SetUser(user *api.User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sess.User = user
	s.sess.IsAuthenticated = true

	encoded, err := json.Marshal(user)
	if err != nil {
		s.log.Warn().Err(err).Msg("failed to encode user for persistence")
		return
	}
	s.persist(keyring.KeyUser, string(encoded))
}

// Clear wipes all session fields and the persisted storage. Called on
// logout, on refresh failure, or on an irrecoverable auth failure during
// validation.
func (s *Store) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.sess = Session{}
	if s.keyring == nil {
		return
	}
	for _, key := range []string{keyring.KeyToken, keyring.KeyRefreshToken, keyring.KeyUser} {
		if err := s.keyring.Delete(key); err != nil {
			s.logStorageErr("clear "+key, err)
		}
	}
}

// SetError records the last authentication-related failure for display. It
// does not affect authentication state.
func (s *Store) SetError(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.LastError = message
}

// ClearError resets the displayed failure.
func (s *Store) ClearError() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.LastError = ""
}

// SetLoading flags an in-flight authentication operation.
func (s *Store) SetLoading(loading bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess.IsLoading = loading
}

// Snapshot returns a copy of the current session.
func (s *Store) Snapshot() Session {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess
}

// IsAuthenticated reports whether the session holds both a token and a user.
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.IsAuthenticated
}

// CurrentUser returns the signed-in user or nil.
func (s *Store) CurrentUser() *api.User {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.User
}

// AccessToken returns the current bearer token or "".
func (s *Store) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.AccessToken()
}

// RefreshToken returns the current refresh token or "".
func (s *Store) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.sess.RefreshToken()
}

// TokenSource adapts the store for the request layer.
func (s *Store) TokenSource() api.TokenSource {
	return s.AccessToken
}

func (s *Store) persist(key, value string) {
	if s.keyring == nil {
		return
	}
	if err := s.keyring.Set(key, value); err != nil {
		s.logStorageErr("persist "+key, err)
	}
}

func (s *Store) logStorageErr(op string, err error) {
	if interrors.Is(err, interrors.ErrKeyNotFound) {
		return
	}
	s.log.Warn().Err(err).Str("op", op).Msg("session storage unavailable")
}
