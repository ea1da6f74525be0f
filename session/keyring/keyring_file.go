package keyring

import (
	"crypto/rand"
	"encoding/json"
	"os"
	"path/filepath"
	"sync"

	"github.com/pkg/errors"
	"golang.org/x/crypto/chacha20poly1305"

	interrors "github.com/cafehub/go-admin-client/internal/errors"
)

const (
	dataFileName = "keyring.dat"
	keyFileName  = "keyring.key"
)

// FileKeyring stores the credential map in a single file sealed with
// ChaCha20-Poly1305. The sealing key lives next to the data file with 0600
// permissions; both are created on first use.
type FileKeyring struct {
	mu       sync.Mutex
	dataPath string
	aeadKey  []byte
}

// NewFileKeyring opens or initializes a keyring in dir. Returns an error
// when the directory cannot be created or the key material cannot be read;
// callers are expected to degrade to an empty session in that case.
func NewFileKeyring(dir string) (*FileKeyring, error) {
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return nil, errors.Wrap(interrors.ErrStorageUnavailable, err.Error())
	}

	keyPath := filepath.Join(dir, keyFileName)
	key, err := os.ReadFile(keyPath)
	if os.IsNotExist(err) {
		key = make([]byte, chacha20poly1305.KeySize)
		if _, err := rand.Read(key); err != nil {
			return nil, errors.Wrap(err, "[NewFileKeyring] generate key")
		}
		if err := os.WriteFile(keyPath, key, 0o600); err != nil {
			return nil, errors.Wrap(interrors.ErrStorageUnavailable, err.Error())
		}
	} else if err != nil {
		return nil, errors.Wrap(interrors.ErrStorageUnavailable, err.Error())
	}
	if len(key) != chacha20poly1305.KeySize {
		return nil, errors.New("[NewFileKeyring] corrupt key file")
	}

	return &FileKeyring{
		dataPath: filepath.Join(dir, dataFileName),
		aeadKey:  key,
	}, nil
}

// Get retrieves a value by key.
func (k *FileKeyring) Get(key string) (string, error) {
	k.mu.Lock()
	defer k.mu.Unlock()

	values, err := k.load()
	if err != nil {
		return "", err
	}
	value, ok := values[key]
	if !ok {
		return "", interrors.ErrKeyNotFound
	}
	return value, nil
}

// Set stores a value under a key.
func (k *FileKeyring) Set(key, value string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	values, err := k.load()
	if err != nil {
		return err
	}
	values[key] = value
	return k.store(values)
}

// Delete removes a key.
func (k *FileKeyring) Delete(key string) error {
	k.mu.Lock()
	defer k.mu.Unlock()

	values, err := k.load()
	if err != nil {
		return err
	}
	delete(values, key)
	return k.store(values)
}

func (k *FileKeyring) load() (map[string]string, error) {
	sealed, err := os.ReadFile(k.dataPath)
	if os.IsNotExist(err) {
		return map[string]string{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(interrors.ErrStorageUnavailable, err.Error())
	}

	aead, err := chacha20poly1305.New(k.aeadKey)
	if err != nil {
		return nil, errors.Wrap(err, "[FileKeyring.load] init cipher")
	}
	if len(sealed) < aead.NonceSize() {
		return nil, errors.New("[FileKeyring.load] corrupt keyring file")
	}
	nonce, ciphertext := sealed[:aead.NonceSize()], sealed[aead.NonceSize():]
	plaintext, err := aead.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return nil, errors.Wrap(err, "[FileKeyring.load] unseal")
	}

	values := map[string]string{}
	if err := json.Unmarshal(plaintext, &values); err != nil {
		return nil, errors.Wrap(err, "[FileKeyring.load] decode")
	}
	return values, nil
}

func (k *FileKeyring) store(values map[string]string) error {
	plaintext, err := json.Marshal(values)
	if err != nil {
		return errors.Wrap(err, "[FileKeyring.store] encode")
	}

	aead, err := chacha20poly1305.New(k.aeadKey)
	if err != nil {
		return errors.Wrap(err, "[FileKeyring.store] init cipher")
	}
	nonce := make([]byte, aead.NonceSize())
	if _, err := rand.Read(nonce); err != nil {
		return errors.Wrap(err, "[FileKeyring.store] nonce")
	}
	sealed := aead.Seal(nonce, nonce, plaintext, nil)

	if err := os.WriteFile(k.dataPath, sealed, 0o600); err != nil {
		return errors.Wrap(interrors.ErrStorageUnavailable, err.Error())
	}
	return nil
}
