package tokenhash

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/binary"
	"errors"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// entropySize is the amount of random bytes mixed into each raw token.
const entropySize = 16

// ErrHashFailed is returned when computing a token digest fails.
var ErrHashFailed = errors.New("failed to hash token")

// Hash computes a one-way bcrypt digest of a raw token for persistence.
// The digest embeds its own salt, so equal tokens produce different digests.
func Hash(rawToken string) (string, error) {
	digest, err := bcrypt.GenerateFromPassword([]byte(rawToken), bcrypt.DefaultCost)
	if err != nil {
		return "", errors.Join(ErrHashFailed, err)
	}
	return string(digest), nil
}

// Verify reports whether rawToken matches a digest produced by Hash.
// bcrypt comparison is constant-time with respect to the candidate.
func Verify(rawToken, digest string) bool {
	return bcrypt.CompareHashAndPassword([]byte(digest), []byte(rawToken)) == nil
}

// NewRawToken produces a fresh high-entropy token value. It mixes the
// wall clock at microsecond resolution, 16 random bytes, and any
// caller-supplied context (e.g. the serialized user record) through
// SHA-256, returned as base64url. Two calls never collide in practice
// even within the same microsecond.
func NewRawToken(context ...[]byte) (string, error) {
	entropy := make([]byte, entropySize)
	if _, err := rand.Read(entropy); err != nil {
		return "", err
	}

	h := sha256.New()

	var now [8]byte
	binary.BigEndian.PutUint64(now[:], uint64(time.Now().UnixMicro()))
	h.Write(now[:])
	h.Write(entropy)
	for _, c := range context {
		h.Write(c)
	}

	return base64.RawURLEncoding.EncodeToString(h.Sum(nil)), nil
}
