// Package keyringfakes provides an in-memory Keyring for tests.
package keyringfakes

import (
	"sync"

	interrors "github.com/cafehub/go-admin-client/internal/errors"
)

// FakeKeyring is an in-memory keyring. Setting Unavailable makes every
// operation fail with ErrStorageUnavailable, simulating disabled storage.
type FakeKeyring struct {
	mu          sync.Mutex
	values      map[string]string
	Unavailable bool

	// Call counters for assertions
	SetCalls    int
	DeleteCalls int
}

// NewFakeKeyring creates an empty fake keyring.
func NewFakeKeyring() *FakeKeyring {
	return &FakeKeyring{values: make(map[string]string)}
}

// Seed pre-populates a key, bypassing call counters.
func (f *FakeKeyring) Seed(key, value string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.values[key] = value
}

// Get retrieves a value by key.
func (f *FakeKeyring) Get(key string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.Unavailable {
		return "", interrors.ErrStorageUnavailable
	}
	value, ok := f.values[key]
	if !ok {
		return "", interrors.ErrKeyNotFound
	}
	return value, nil
}

// Set stores a value under a key.
func (f *FakeKeyring) Set(key, value string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.SetCalls++
	if f.Unavailable {
		return interrors.ErrStorageUnavailable
	}
	f.values[key] = value
	return nil
}

// Delete removes a key.
func (f *FakeKeyring) Delete(key string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.DeleteCalls++
	if f.Unavailable {
		return interrors.ErrStorageUnavailable
	}
	delete(f.values, key)
	return nil
}

// Len returns the number of stored keys.
func (f *FakeKeyring) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.values)
}
