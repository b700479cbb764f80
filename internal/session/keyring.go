package session

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// KeyringService groups our secrets in the OS keychain
const KeyringService = "internhasha"

// Keyring is a KV over the OS keychain; each key is stored as "<account>/<key>"
type Keyring struct {
	account string
}

// NewKeyring scopes entries to account
func NewKeyring(account string) *Keyring {
	if account == "" {
		account = "default"
	}
	return &Keyring{account: account}
}

func (k *Keyring) user(key string) string { return k.account + "/" + key }

// Get implements KV
func (k *Keyring) Get(key string) (string, error) {
	v, err := keyring.Get(KeyringService, k.user(key))
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return v, err
}

// Set implements KV
func (k *Keyring) Set(key, value string) error {
	return keyring.Set(KeyringService, k.user(key), value)
}

// Delete implements KV
func (k *Keyring) Delete(key string) error {
	err := keyring.Delete(KeyringService, k.user(key))
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}

// Name implements KV
func (k *Keyring) Name() string { return BackendKeyring }
