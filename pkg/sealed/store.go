// Package sealed persists a cookie jar to a single AES-256-GCM encrypted
// file, for cookies that are effectively credentials and should not sit on
// disk in plaintext. Keys are typically supplied by the keyring subpackage.
package sealed

import (
	"bytes"
	"encoding/gob"
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/warpdl/cookiejar/pkg/cookiejar"
)

// payload is the gob document sealed into the store file.
type payload struct {
	DefaultDomain string
	Cookies       []cookiejar.Cookie
}

// Store reads and writes an encrypted jar file. The whole jar is sealed as
// one blob: a wrong key or corrupt file surfaces as an error, never as
// partial records.
type Store struct {
	fs   afero.Fs
	path string
	key  []byte
}

// NewStore returns a store for the file at path on fs, sealed under the
// given 32-byte key.
func NewStore(fs afero.Fs, path string, key []byte) *Store {
	return &Store{fs: fs, path: path, key: key}
}

// Save seals the jar and replaces the store file's contents.
func (s *Store) Save(jar *cookiejar.Jar) error {
	var buf bytes.Buffer
	doc := payload{
		DefaultDomain: jar.DefaultDomain(),
		Cookies:       jar.Cookies(),
	}
	if err := gob.NewEncoder(&buf).Encode(doc); err != nil {
		return fmt.Errorf("sealed: encode jar: %w", err)
	}

	blob, err := encrypt(buf.Bytes(), s.key)
	if err != nil {
		return fmt.Errorf("sealed: seal jar: %w", err)
	}
	if err := afero.WriteFile(s.fs, s.path, blob, 0600); err != nil {
		return fmt.Errorf("sealed: write store file: %w", err)
	}
	return nil
}

// Load reads and unseals the store file into a new jar. A missing or empty
// file yields an empty jar.
func (s *Store) Load() (*cookiejar.Jar, error) {
	blob, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return cookiejar.New(), nil
		}
		return nil, fmt.Errorf("sealed: read store file: %w", err)
	}
	if len(blob) == 0 {
		return cookiejar.New(), nil
	}

	plaintext, err := decrypt(blob, s.key)
	if err != nil {
		return nil, fmt.Errorf("sealed: unseal store file: %w", err)
	}

	var doc payload
	if err := gob.NewDecoder(bytes.NewReader(plaintext)).Decode(&doc); err != nil {
		return nil, fmt.Errorf("sealed: decode jar: %w", err)
	}

	jar := cookiejar.NewWithDomain(doc.DefaultDomain)
	jar.Grow(len(doc.Cookies))
	for _, c := range doc.Cookies {
		jar.SetCookie(c)
	}
	return jar, nil
}
