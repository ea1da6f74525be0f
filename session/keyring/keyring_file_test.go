package keyring_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	interrors "github.com/cafehub/go-admin-client/internal/errors"
	"github.com/cafehub/go-admin-client/session/keyring"
)

func TestFileKeyringRoundTrip(t *testing.T) {
	kr, err := keyring.NewFileKeyring(t.TempDir())
	require.NoError(t, err)

	_, err = kr.Get(keyring.KeyToken)
	require.ErrorIs(t, err, interrors.ErrKeyNotFound)

	require.NoError(t, kr.Set(keyring.KeyToken, "access-token"))
	require.NoError(t, kr.Set(keyring.KeyRefreshToken, "refresh-token"))

	value, err := kr.Get(keyring.KeyToken)
	require.NoError(t, err)
	require.Equal(t, "access-token", value)

	require.NoError(t, kr.Delete(keyring.KeyToken))
	_, err = kr.Get(keyring.KeyToken)
	require.ErrorIs(t, err, interrors.ErrKeyNotFound)

	value, err = kr.Get(keyring.KeyRefreshToken)
	require.NoError(t, err)
	require.Equal(t, "refresh-token", value)
}

func TestFileKeyringPersistsAcrossInstances(t *testing.T) {
	dir := t.TempDir()

	first, err := keyring.NewFileKeyring(dir)
	require.NoError(t, err)
	require.NoError(t, first.Set(keyring.KeyToken, "access-token"))

	second, err := keyring.NewFileKeyring(dir)
	require.NoError(t, err)
	value, err := second.Get(keyring.KeyToken)
	require.NoError(t, err)
	require.Equal(t, "access-token", value)
}

func TestFileKeyringSealsDataOnDisk(t *testing.T) {
	dir := t.TempDir()
	kr, err := keyring.NewFileKeyring(dir)
	require.NoError(t, err)
	require.NoError(t, kr.Set(keyring.KeyToken, "very-secret-token"))

	raw, err := os.ReadFile(filepath.Join(dir, "keyring.dat"))
	require.NoError(t, err)
	require.NotContains(t, string(raw), "very-secret-token")
	require.NotContains(t, string(raw), keyring.KeyToken)
}

func TestFileKeyringCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "keyring")
	_, err := keyring.NewFileKeyring(dir)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	require.True(t, info.IsDir())
}
