package session_test

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/require"

	"github.com/cafehub/go-admin-client/session"
	"github.com/cafehub/go-admin-client/session/keyring"
	"github.com/cafehub/go-admin-client/session/keyring/keyringfakes"
)

const userJSON = `{"id":7,"email":"owner@example.com","role":"COFFEE_SHOP_OWNER","UserProfile":[{"firstName":"Ada","lastName":"Moreno"}]}`

func TestHydrateRestoresPersistedSession(t *testing.T) {
	kr := keyringfakes.NewFakeKeyring()
	kr.Seed(keyring.KeyToken, "access-token")
	kr.Seed(keyring.KeyRefreshToken, "refresh-token")
	kr.Seed(keyring.KeyUser, userJSON)

	s := session.NewStore(kr)
	s.Hydrate()

	require.True(t, s.IsAuthenticated())
	require.Equal(t, "access-token", s.AccessToken())
	require.Equal(t, "refresh-token", s.RefreshToken())

	user := s.CurrentUser()
	require.NotNil(t, user)
	require.EqualValues(t, 7, user.ID)
	require.Equal(t, "Ada", user.Profile.FirstName)
}

func TestHydrateTokenWithoutUserIsNotAuthenticated(t *testing.T) {
	kr := keyringfakes.NewFakeKeyring()
	kr.Seed(keyring.KeyToken, "access-token")

	s := session.NewStore(kr)
	s.Hydrate()

	require.False(t, s.IsAuthenticated())
	require.Equal(t, "access-token", s.AccessToken())
	require.Nil(t, s.CurrentUser())
}

func TestHydrateEmptyKeyringIsNotAuthenticated(t *testing.T) {
	s := session.NewStore(keyringfakes.NewFakeKeyring())
	s.Hydrate()

	require.False(t, s.IsAuthenticated())
	require.Empty(t, s.AccessToken())
}

func TestHydrateUnavailableStorageDegradesToEmptySession(t *testing.T) {
	kr := keyringfakes.NewFakeKeyring()
	kr.Seed(keyring.KeyToken, "access-token")
	kr.Unavailable = true

	s := session.NewStore(kr)
	s.Hydrate()

	require.False(t, s.IsAuthenticated())
	require.Empty(t, s.AccessToken())
}

func TestHydrateDiscardsCorruptPersistedUser(t *testing.T) {
	kr := keyringfakes.NewFakeKeyring()
	kr.Seed(keyring.KeyToken, "access-token")
	kr.Seed(keyring.KeyUser, "{not json")

	s := session.NewStore(kr)
	s.Hydrate()

	require.False(t, s.IsAuthenticated())
	require.Nil(t, s.CurrentUser())
	require.Equal(t, "access-token", s.AccessToken())
}

func TestSetCredentialsPersistsBothTokens(t *testing.T) {
	kr := keyringfakes.NewFakeKeyring()
	s := session.NewStore(kr)

	s.SetCredentials("access-token", "refresh-token")

	require.True(t, s.IsAuthenticated())
	require.Equal(t, 2, kr.SetCalls)

	stored, err := kr.Get(keyring.KeyToken)
	require.NoError(t, err)
	require.Equal(t, "access-token", stored)
	stored, err = kr.Get(keyring.KeyRefreshToken)
	require.NoError(t, err)
	require.Equal(t, "refresh-token", stored)
}

func TestSetCredentialsSurvivesUnavailableStorage(t *testing.T) {
	kr := keyringfakes.NewFakeKeyring()
	kr.Unavailable = true
	s := session.NewStore(kr)

	s.SetCredentials("access-token", "refresh-token")

	// In-memory session still works for the current run.
	require.True(t, s.IsAuthenticated())
	require.Equal(t, "access-token", s.AccessToken())
}

func TestClearWipesSessionAndStorage(t *testing.T) {
	kr := keyringfakes.NewFakeKeyring()
	kr.Seed(keyring.KeyToken, "access-token")
	kr.Seed(keyring.KeyRefreshToken, "refresh-token")
	kr.Seed(keyring.KeyUser, userJSON)

	s := session.NewStore(kr)
	s.Hydrate()
	require.True(t, s.IsAuthenticated())

	s.Clear()

	require.False(t, s.IsAuthenticated())
	require.Empty(t, s.AccessToken())
	require.Nil(t, s.CurrentUser())
	require.Equal(t, 3, kr.DeleteCalls)
	require.Zero(t, kr.Len())
}

func TestErrorAndLoadingFlags(t *testing.T) {
	s := session.NewStore(nil)

	s.SetLoading(true)
	s.SetError("Invalid credentials")
	snap := s.Snapshot()
	require.True(t, snap.IsLoading)
	require.Equal(t, "Invalid credentials", snap.LastError)
	require.False(t, snap.IsAuthenticated, "error recording must not change auth state")

	s.SetLoading(false)
	s.ClearError()
	snap = s.Snapshot()
	require.False(t, snap.IsLoading)
	require.Empty(t, snap.LastError)
}

func TestTokenExpiryReadFromClaims(t *testing.T) {
	exp := time.Now().Add(15 * time.Minute).Truncate(time.Second)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"exp": exp.Unix()})
	raw, err := token.SignedString([]byte("test-secret"))
	require.NoError(t, err)

	s := session.NewStore(nil)
	s.SetCredentials(raw, "refresh-token")

	expiry, ok := s.Snapshot().TokenExpiry()
	require.True(t, ok)
	require.True(t, expiry.Equal(exp))
}

func TestTokenExpiryWithOpaqueToken(t *testing.T) {
	s := session.NewStore(nil)
	s.SetCredentials("not-a-jwt", "refresh-token")

	_, ok := s.Snapshot().TokenExpiry()
	require.False(t, ok)

	_, ok = session.Session{}.TokenExpiry()
	require.False(t, ok)
}

func TestTokenSourceTracksCurrentToken(t *testing.T) {
	s := session.NewStore(keyringfakes.NewFakeKeyring())
	source := s.TokenSource()

	require.Empty(t, source())
	s.SetCredentials("access-token", "refresh-token")
	require.Equal(t, "access-token", source())
	s.Clear()
	require.Empty(t, source())
}
