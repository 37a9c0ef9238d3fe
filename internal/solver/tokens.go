package solver

import (
	"errors"

	"github.com/zalando/go-keyring"
)

// Keychain identifiers for the stored session
const (
	keyringService      = "suqaba-companion"
	accessTokenAccount  = "access-token"
	refreshTokenAccount = "refresh-token"
)

// TokenStore abstracts where session tokens live so tests can substitute an
// in-memory implementation for the OS keychain.
type TokenStore interface {
	// AccessToken returns the stored access token, empty when logged out
	AccessToken() (string, error)
	// Save persists both tokens of a fresh session
	Save(accessToken, refreshToken string) error
	// Clear forgets the session
	Clear() error
}

// KeyringStore keeps tokens in the OS keychain
type KeyringStore struct{}

// NewKeyringStore creates the keychain-backed token store
func NewKeyringStore() *KeyringStore {
	return &KeyringStore{}
}

// AccessToken returns the stored access token, empty when none is stored
func (s *KeyringStore) AccessToken() (string, error) {
	token, err := keyring.Get(keyringService, accessTokenAccount)
	if errors.Is(err, keyring.ErrNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return token, nil
}

// Save persists both tokens of a fresh session
func (s *KeyringStore) Save(accessToken, refreshToken string) error {
	if err := keyring.Set(keyringService, accessTokenAccount, accessToken); err != nil {
		return err
	}
	return keyring.Set(keyringService, refreshTokenAccount, refreshToken)
}

// Clear forgets the session
func (s *KeyringStore) Clear() error {
	if err := keyring.Delete(keyringService, accessTokenAccount); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	if err := keyring.Delete(keyringService, refreshTokenAccount); err != nil && !errors.Is(err, keyring.ErrNotFound) {
		return err
	}
	return nil
}
