package redis_test

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tksmrkm/rememberme/core/rememberme"
	"github.com/tksmrkm/rememberme/integration/database/redis"
)

func newTestStore(t *testing.T) (*redis.Store, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	return redis.NewStore(client, "rememberme"), mr
}

func TestStore_SaveFind(t *testing.T) {
	t.Run("save then find", func(t *testing.T) {
		store, _ := newTestStore(t)
		alice := &rememberme.User{ID: uuid.New(), Username: "alice", TokenHash: "digest"}

		require.NoError(t, store.SaveUser(context.Background(), alice))

		found, err := store.FindByUsername(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, alice.ID, found.ID)
		assert.Equal(t, "alice", found.Username)
		assert.Equal(t, "digest", found.TokenHash)
	})

	t.Run("unknown username", func(t *testing.T) {
		store, _ := newTestStore(t)

		_, err := store.FindByUsername(context.Background(), "nobody")
		assert.ErrorIs(t, err, rememberme.ErrUserNotFound)
	})

	t.Run("corrupt record rejected", func(t *testing.T) {
		store, mr := newTestStore(t)
		mr.HSet("rememberme:user:broken", "id", "not-a-uuid")

		_, err := store.FindByUsername(context.Background(), "broken")
		assert.ErrorIs(t, err, redis.ErrCorruptRecord)
	})

	t.Run("save requires id and username", func(t *testing.T) {
		store, _ := newTestStore(t)

		assert.Error(t, store.SaveUser(context.Background(), nil))
		assert.Error(t, store.SaveUser(context.Background(), &rememberme.User{Username: "alice"}))
		assert.Error(t, store.SaveUser(context.Background(), &rememberme.User{ID: uuid.New()}))
	})
}

func TestStore_UpdateTokenHash(t *testing.T) {
	t.Run("update replaces the hash", func(t *testing.T) {
		store, _ := newTestStore(t)
		alice := &rememberme.User{ID: uuid.New(), Username: "alice", TokenHash: "old"}
		require.NoError(t, store.SaveUser(context.Background(), alice))

		require.NoError(t, store.UpdateTokenHash(context.Background(), alice.ID, "new"))

		found, err := store.FindByUsername(context.Background(), "alice")
		require.NoError(t, err)
		assert.Equal(t, "new", found.TokenHash)
	})

	t.Run("unknown id", func(t *testing.T) {
		store, _ := newTestStore(t)

		err := store.UpdateTokenHash(context.Background(), uuid.New(), "digest")
		assert.ErrorIs(t, err, rememberme.ErrUserNotFound)
	})
}

func TestStore_DeleteUser(t *testing.T) {
	store, _ := newTestStore(t)
	alice := &rememberme.User{ID: uuid.New(), Username: "alice"}
	require.NoError(t, store.SaveUser(context.Background(), alice))

	require.NoError(t, store.DeleteUser(context.Background(), alice))

	_, err := store.FindByUsername(context.Background(), "alice")
	assert.ErrorIs(t, err, rememberme.ErrUserNotFound)

	err = store.UpdateTokenHash(context.Background(), alice.ID, "digest")
	assert.ErrorIs(t, err, rememberme.ErrUserNotFound)
}

func TestStore_WorksWithAuthenticator(t *testing.T) {
	store, _ := newTestStore(t)
	alice := &rememberme.User{ID: uuid.New(), Username: "alice"}
	require.NoError(t, store.SaveUser(context.Background(), alice))

	tokens := rememberme.NewTokenStore(store)
	require.NoError(t, tokens.Persist(context.Background(), alice.ID, "raw-token"))

	user, err := tokens.Verify(context.Background(), "alice", "raw-token")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, user.ID)

	_, err = tokens.Verify(context.Background(), "alice", "other-token")
	assert.ErrorIs(t, err, rememberme.ErrTokenMismatch)
}
