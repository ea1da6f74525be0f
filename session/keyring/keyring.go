// Package keyring persists the client's credentials between runs. It is the
// analog of the console's key-value browser storage: three string keys, a
// best-effort contract, and graceful degradation when storage is unavailable.
package keyring

// Storage keys. These names are part of the persisted format and must not
// change without a migration.
const (
	KeyToken        = "token"
	KeyRefreshToken = "refreshToken"
	KeyUser         = "user"
)

// Keyring defines the interface for persisted credential storage.
type Keyring interface {
	// Get retrieves a value by key. Returns ErrKeyNotFound when absent.
	Get(key string) (string, error)

	// Set stores a value under a key, overwriting any previous value.
	Set(key, value string) error

	// Delete removes a key. Deleting an absent key is not an error.
	Delete(key string) error
}
