package rememberme_test

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tksmrkm/rememberme/core/rememberme"
)

// memoryStore is an in-memory UserStore for tests.
type memoryStore struct {
	mu    sync.Mutex
	users map[string]*rememberme.User

	findErr   error
	updateErr error

	persisted []string // token hashes written, in order
}

func newMemoryStore(users ...*rememberme.User) *memoryStore {
	s := &memoryStore{users: make(map[string]*rememberme.User)}
	for _, u := range users {
		s.users[u.Username] = u
	}
	return s
}

func (s *memoryStore) FindByUsername(_ context.Context, username string) (*rememberme.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.findErr != nil {
		return nil, s.findErr
	}
	u, ok := s.users[username]
	if !ok {
		return nil, rememberme.ErrUserNotFound
	}
	clone := *u
	return &clone, nil
}

func (s *memoryStore) UpdateTokenHash(_ context.Context, id uuid.UUID, tokenHash string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.updateErr != nil {
		return s.updateErr
	}
	for _, u := range s.users {
		if u.ID == id {
			u.TokenHash = tokenHash
			s.persisted = append(s.persisted, tokenHash)
			return nil
		}
	}
	return rememberme.ErrUserNotFound
}

func TestTokenStore_PersistVerify(t *testing.T) {
	newAlice := func() *rememberme.User {
		return &rememberme.User{ID: uuid.MustParse("8f9b6a3e-0b65-4d3e-9c43-94f1f7f6f001"), Username: "alice"}
	}

	t.Run("verify succeeds right after persist", func(t *testing.T) {
		alice := newAlice()
		store := rememberme.NewTokenStore(newMemoryStore(alice))

		require.NoError(t, store.Persist(context.Background(), alice.ID, "raw-token"))

		user, err := store.Verify(context.Background(), "alice", "raw-token")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, user.ID)
		assert.Equal(t, "alice", user.Username)
	})

	t.Run("different token rejected", func(t *testing.T) {
		alice := newAlice()
		store := rememberme.NewTokenStore(newMemoryStore(alice))

		require.NoError(t, store.Persist(context.Background(), alice.ID, "raw-token"))

		_, err := store.Verify(context.Background(), "alice", "other-token")
		assert.ErrorIs(t, err, rememberme.ErrTokenMismatch)
	})

	t.Run("new issuance invalidates the previous token", func(t *testing.T) {
		alice := newAlice()
		store := rememberme.NewTokenStore(newMemoryStore(alice))

		require.NoError(t, store.Persist(context.Background(), alice.ID, "first"))
		require.NoError(t, store.Persist(context.Background(), alice.ID, "second"))

		_, err := store.Verify(context.Background(), "alice", "first")
		assert.ErrorIs(t, err, rememberme.ErrTokenMismatch)

		_, err = store.Verify(context.Background(), "alice", "second")
		assert.NoError(t, err)
	})

	t.Run("unknown user", func(t *testing.T) {
		store := rememberme.NewTokenStore(newMemoryStore())

		_, err := store.Verify(context.Background(), "nobody", "raw-token")
		assert.ErrorIs(t, err, rememberme.ErrUserNotFound)
	})

	t.Run("user without stored hash rejected", func(t *testing.T) {
		alice := newAlice()
		store := rememberme.NewTokenStore(newMemoryStore(alice))

		_, err := store.Verify(context.Background(), "alice", "")
		assert.ErrorIs(t, err, rememberme.ErrTokenMismatch)
	})

	t.Run("persist failure propagates", func(t *testing.T) {
		alice := newAlice()
		backing := newMemoryStore(alice)
		backing.updateErr = errors.New("write conflict")
		store := rememberme.NewTokenStore(backing)

		err := store.Persist(context.Background(), alice.ID, "raw-token")
		assert.ErrorIs(t, err, rememberme.ErrPersistFailed)
	})

	t.Run("persist for missing user fails", func(t *testing.T) {
		store := rememberme.NewTokenStore(newMemoryStore())

		err := store.Persist(context.Background(), uuid.New(), "raw-token")
		assert.ErrorIs(t, err, rememberme.ErrPersistFailed)
	})
}
