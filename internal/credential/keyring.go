// Package credential stores the theme preference in the OS keyring.
package credential

import (
	"errors"

	"github.com/zalando/go-keyring"
)

const keyringService = "thememode"

// KeyringStore is a key/value store backed by the OS keyring.
type KeyringStore struct {
	service string
}

// NewKeyringStore creates a store under the default service name.
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{service: keyringService}
}

// NewKeyringStoreForService creates a store under a custom service name.
func NewKeyringStoreForService(service string) *KeyringStore {
	return &KeyringStore{service: service}
}

// Get retrieves a value from the OS keyring. A missing entry is not an error.
func (s *KeyringStore) Get(key string) (string, error) {
	value, err := keyring.Get(s.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	return value, err
}

// Set stores a value in the OS keyring. An empty value deletes the entry.
func (s *KeyringStore) Set(key, value string) error {
	if value == "" {
		return s.Delete(key)
	}
	return keyring.Set(s.service, key, value)
}

// Delete removes a value from the OS keyring.
func (s *KeyringStore) Delete(key string) error {
	err := keyring.Delete(s.service, key)
	if errors.Is(err, keyring.ErrNotFound) {
		return nil
	}
	return err
}
