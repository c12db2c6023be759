package rememberme

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/tksmrkm/rememberme/pkg/tokenhash"
)

// User is the subject of a remember-me credential as seen by this package.
// TokenHash holds the persisted one-way digest of the active raw token, or
// the empty string when the user never opted in.
type User struct {
	ID        uuid.UUID
	Username  string
	TokenHash string
}

// UserStore is the persistence collaborator. Implementations must return
// ErrUserNotFound (possibly wrapped) from FindByUsername when no user
// matches, and from UpdateTokenHash when the record does not exist.
// Implementations are expected to be safe for concurrent use.
type UserStore interface {
	FindByUsername(ctx context.Context, username string) (*User, error)
	UpdateTokenHash(ctx context.Context, id uuid.UUID, tokenHash string) error
}

// TokenStore adapts a UserStore into the token persistence operations the
// authenticator needs: it owns hashing on the way in and the constant-time
// comparison on the way out.
type TokenStore struct {
	users UserStore
}

// NewTokenStore wraps a UserStore.
func NewTokenStore(users UserStore) *TokenStore {
	return &TokenStore{users: users}
}

// Persist hashes rawToken and writes the digest as the user's active token
// hash, replacing any previous value. At most one token is active per user;
// concurrent issuance for the same user is last-writer-wins, which is
// accepted rather than serialized.
func (s *TokenStore) Persist(ctx context.Context, userID uuid.UUID, rawToken string) error {
	digest, err := tokenhash.Hash(rawToken)
	if err != nil {
		return errors.Join(ErrPersistFailed, err)
	}

	if err := s.users.UpdateTokenHash(ctx, userID, digest); err != nil {
		return errors.Join(ErrPersistFailed, err)
	}

	return nil
}

// Verify looks the user up by username and compares rawToken against the
// persisted hash. It returns ErrUserNotFound when the user is absent and
// ErrTokenMismatch when the comparison fails; callers treat both as a
// denied authentication but may log them distinctly.
func (s *TokenStore) Verify(ctx context.Context, username, rawToken string) (*User, error) {
	user, err := s.users.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, err
		}
		return nil, errors.Join(ErrUserNotFound, err)
	}

	if user.TokenHash == "" || !tokenhash.Verify(rawToken, user.TokenHash) {
		return nil, ErrTokenMismatch
	}

	return user, nil
}
