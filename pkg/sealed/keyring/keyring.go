// Package keyring supplies the sealed store's encryption key from the
// operating system's native keyring service, with a file-based fallback for
// headless environments.
package keyring

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/zalando/go-keyring"
)

// Provider supplies the 32-byte key for a sealed cookie store.
type Provider interface {
	// GetKey returns the stored key.
	GetKey() ([]byte, error)
	// SetKey generates, stores, and returns a fresh key.
	SetKey() ([]byte, error)
}

// Keyring stores the key in the OS keyring service.
type Keyring struct {
	AppName  string
	KeyField string
}

var (
	keyringSet    = keyring.Set
	keyringGet    = keyring.Get
	keyringDelete = keyring.Delete
	randRead      = rand.Read
)

// NewKeyring returns a Keyring using the default service and field names.
func NewKeyring() *Keyring {
	return &Keyring{
		AppName:  "cookiejar",
		KeyField: "store",
	}
}

// SetKey generates a fresh 32-byte key, stores it hex-encoded in the OS
// keyring, and returns the raw bytes.
func (k *Keyring) SetKey() ([]byte, error) {
	key := make([]byte, 32)
	if _, err := randRead(key); err != nil {
		return nil, err
	}
	if err := keyringSet(k.AppName, k.KeyField, hex.EncodeToString(key)); err != nil {
		return nil, err
	}
	return key, nil
}

// GetKey retrieves the stored key from the OS keyring.
func (k *Keyring) GetKey() ([]byte, error) {
	stored, err := keyringGet(k.AppName, k.KeyField)
	if err != nil {
		return nil, err
	}
	key, err := hex.DecodeString(stored)
	if err != nil {
		return nil, err
	}
	return key, nil
}

// DeleteKey removes the key from the OS keyring.
func (k *Keyring) DeleteKey() error {
	return keyringDelete(k.AppName, k.KeyField)
}

var _ Provider = (*Keyring)(nil)
