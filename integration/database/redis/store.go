package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/tksmrkm/rememberme/core/rememberme"
)

const (
	fieldID        = "id"
	fieldTokenHash = "token_hash"
)

// Store is a Redis-backed rememberme.UserStore for deployments that mirror
// user credentials into Redis instead of exposing their primary user table.
// Each user occupies one hash keyed by username, plus an id-to-username
// index so token updates can address users by primary key.
type Store struct {
	client *redis.Client
	prefix string
}

// NewStore builds a store over client. An empty prefix falls back to
// "rememberme".
func NewStore(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = "rememberme"
	}
	return &Store{client: client, prefix: prefix}
}

func (s *Store) userKey(username string) string {
	return s.prefix + ":user:" + username
}

func (s *Store) idKey(id uuid.UUID) string {
	return s.prefix + ":id:" + id.String()
}

// SaveUser writes or refreshes the mirrored user record. The host calls this
// when users are created or renamed; token hashes flow through
// UpdateTokenHash afterwards.
func (s *Store) SaveUser(ctx context.Context, user *rememberme.User) error {
	if user == nil || user.Username == "" || user.ID == uuid.Nil {
		return fmt.Errorf("save user: username and id are required")
	}

	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.HSet(ctx, s.userKey(user.Username),
			fieldID, user.ID.String(),
			fieldTokenHash, user.TokenHash,
		)
		pipe.Set(ctx, s.idKey(user.ID), user.Username, 0)
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis error: %w", err)
	}

	return nil
}

// DeleteUser removes a mirrored record and its index entry.
func (s *Store) DeleteUser(ctx context.Context, user *rememberme.User) error {
	if user == nil {
		return nil
	}
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Del(ctx, s.userKey(user.Username))
		pipe.Del(ctx, s.idKey(user.ID))
		return nil
	})
	if err != nil {
		return fmt.Errorf("redis error: %w", err)
	}
	return nil
}

// FindByUsername implements rememberme.UserStore.
func (s *Store) FindByUsername(ctx context.Context, username string) (*rememberme.User, error) {
	record, err := s.client.HGetAll(ctx, s.userKey(username)).Result()
	if err != nil {
		return nil, fmt.Errorf("redis error: %w", err)
	}
	if len(record) == 0 {
		return nil, rememberme.ErrUserNotFound
	}

	id, err := uuid.Parse(record[fieldID])
	if err != nil {
		return nil, errors.Join(ErrCorruptRecord, err)
	}

	return &rememberme.User{
		ID:        id,
		Username:  username,
		TokenHash: record[fieldTokenHash],
	}, nil
}

// UpdateTokenHash implements rememberme.UserStore. The single HSET is
// atomic; concurrent issuance for the same user is last-writer-wins.
func (s *Store) UpdateTokenHash(ctx context.Context, id uuid.UUID, tokenHash string) error {
	username, err := s.client.Get(ctx, s.idKey(id)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return rememberme.ErrUserNotFound
		}
		return fmt.Errorf("redis error: %w", err)
	}

	if err := s.client.HSet(ctx, s.userKey(username), fieldTokenHash, tokenHash).Err(); err != nil {
		return fmt.Errorf("redis error: %w", err)
	}

	return nil
}
