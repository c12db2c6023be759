package secrets

import (
	"crypto/aes"
	"crypto/cipher"
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"errors"
	"fmt"
	"io"

	"golang.org/x/crypto/hkdf"
)

const (
	// MinSecretLength is the minimum secret length accepted for key derivation.
	MinSecretLength = 32
	// keySize is the derived AES-256 key size in bytes.
	keySize = 32
)

// hkdfInfo binds derived keys to this package so the same secret used
// elsewhere yields an unrelated key.
var hkdfInfo = []byte("rememberme/secrets:aes-256-gcm:v1")

var (
	// ErrSecretTooShort indicates the secret doesn't meet the minimum length
	// required for AES-256 key derivation.
	ErrSecretTooShort = errors.New("secret must be at least 32 characters long")

	// ErrInvalidFormat indicates the ciphertext has unexpected format,
	// typically a base64 decoding failure or a truncated value.
	ErrInvalidFormat = errors.New("invalid ciphertext format")

	// ErrDecryptionFailed indicates the value couldn't be decrypted,
	// due to tampering, corruption, or use of a wrong secret.
	ErrDecryptionFailed = errors.New("failed to decrypt value")
)

// GenerateSecret returns a cryptographically secure random secret suitable
// for EncryptString/DecryptString, encoded as base64url.
func GenerateSecret() (string, error) {
	b := make([]byte, keySize)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate secret: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}

// EncryptString encrypts plaintext with AES-256-GCM under a key derived from
// secret and returns a transport-safe base64url string. A fresh random nonce
// is generated per call and prepended to the ciphertext.
func EncryptString(secret, plaintext string) (string, error) {
	gcm, err := newGCM(secret)
	if err != nil {
		return "", err
	}

	nonce := make([]byte, gcm.NonceSize())
	if _, err := io.ReadFull(rand.Reader, nonce); err != nil {
		return "", err
	}

	ciphertext := gcm.Seal(nonce, nonce, []byte(plaintext), nil)
	return base64.URLEncoding.EncodeToString(ciphertext), nil
}

// DecryptString reverses EncryptString. It fails with ErrDecryptionFailed
// when the ciphertext was produced under a different secret or modified in
// transit; GCM authentication makes any bit flip detectable.
func DecryptString(secret, encrypted string) (string, error) {
	gcm, err := newGCM(secret)
	if err != nil {
		return "", err
	}

	ciphertext, err := base64.URLEncoding.DecodeString(encrypted)
	if err != nil {
		return "", ErrInvalidFormat
	}
	if len(ciphertext) < gcm.NonceSize() {
		return "", ErrInvalidFormat
	}

	nonce, ciphertext := ciphertext[:gcm.NonceSize()], ciphertext[gcm.NonceSize():]
	plaintext, err := gcm.Open(nil, nonce, ciphertext, nil)
	if err != nil {
		return "", ErrDecryptionFailed
	}

	return string(plaintext), nil
}

// newGCM derives an AES-256 key from secret via HKDF-SHA256 and returns the
// GCM AEAD over it.
func newGCM(secret string) (cipher.AEAD, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("%w: got %d chars, need at least %d",
			ErrSecretTooShort, len(secret), MinSecretLength)
	}

	key := make([]byte, keySize)
	kdf := hkdf.New(sha256.New, []byte(secret), nil, hkdfInfo)
	if _, err := io.ReadFull(kdf, key); err != nil {
		return nil, err
	}

	block, err := aes.NewCipher(key)
	if err != nil {
		return nil, err
	}

	return cipher.NewGCM(block)
}
