package sealed

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"fmt"
	"io"
)

// sealPrefix identifies the on-disk ciphertext format.
const sealPrefix = "gcm1"

// encrypt seals plaintext with AES-256-GCM under key. The output is the
// format prefix, the random nonce, then the ciphertext.
func encrypt(plaintext, key []byte) ([]byte, error) {
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return nil, err
	}

	ciphertext := gcm.Seal(nil, nonce, plaintext, nil)
	out := make([]byte, 0, len(sealPrefix)+len(nonce)+len(ciphertext))
	out = append(out, sealPrefix...)
	out = append(out, nonce...)
	out = append(out, ciphertext...)
	return out, nil
}

// decrypt opens a blob produced by encrypt. A wrong key, truncated blob, or
// unknown format prefix yields an error, never partial plaintext.
func decrypt(blob, key []byte) ([]byte, error) {
	if len(blob) < len(sealPrefix) || string(blob[:len(sealPrefix)]) != sealPrefix {
		return nil, fmt.Errorf("unknown sealed format")
	}
	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}
	gcm, err := cipher.NewGCM(block)
	if err != nil {
		return nil, err
	}
	nonceSize := gcm.NonceSize()
	if len(blob) < len(sealPrefix)+nonceSize {
		return nil, fmt.Errorf("sealed blob too short")
	}
	nonce := blob[len(sealPrefix) : len(sealPrefix)+nonceSize]
	data := blob[len(sealPrefix)+nonceSize:]
	return gcm.Open(nil, nonce, data, nil)
}
