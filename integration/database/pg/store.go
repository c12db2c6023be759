package pg

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/tksmrkm/rememberme/core/rememberme"
)

// StoreConfig maps the remember-me persistence onto an existing users table.
// All identifiers are quoted; Scope is appended verbatim to the lookup as an
// additional predicate (e.g. "deleted_at IS NULL") and must come from
// configuration, never from request data.
type StoreConfig struct {
	Table          string `env:"REMEMBER_ME_USERS_TABLE" envDefault:"users"`
	IDColumn       string `env:"REMEMBER_ME_ID_COLUMN" envDefault:"id"`
	UsernameColumn string `env:"REMEMBER_ME_USERNAME_COLUMN" envDefault:"username"`
	TokenColumn    string `env:"REMEMBER_ME_TOKEN_COLUMN" envDefault:"login_cookie"`
	Scope          string `env:"REMEMBER_ME_SCOPE" envDefault:""`
}

// DefaultStoreConfig returns the conventional table layout.
func DefaultStoreConfig() StoreConfig {
	return StoreConfig{
		Table:          "users",
		IDColumn:       "id",
		UsernameColumn: "username",
		TokenColumn:    "login_cookie",
	}
}

// DBTX is the subset of database/sql used by the store; both *sql.DB and
// *sql.Tx satisfy it.
type DBTX interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
}

// Store is a PostgreSQL-backed rememberme.UserStore keeping the token hash
// on the user record itself, one column per user.
type Store struct {
	db          DBTX
	findQuery   string
	updateQuery string
}

// NewStore builds a store over db. Zero-value config fields fall back to
// the defaults.
func NewStore(db DBTX, cfg StoreConfig) *Store {
	defaults := DefaultStoreConfig()
	if cfg.Table == "" {
		cfg.Table = defaults.Table
	}
	if cfg.IDColumn == "" {
		cfg.IDColumn = defaults.IDColumn
	}
	if cfg.UsernameColumn == "" {
		cfg.UsernameColumn = defaults.UsernameColumn
	}
	if cfg.TokenColumn == "" {
		cfg.TokenColumn = defaults.TokenColumn
	}

	table := pgx.Identifier{cfg.Table}.Sanitize()
	idCol := pgx.Identifier{cfg.IDColumn}.Sanitize()
	usernameCol := pgx.Identifier{cfg.UsernameColumn}.Sanitize()
	tokenCol := pgx.Identifier{cfg.TokenColumn}.Sanitize()

	findQuery := fmt.Sprintf(
		"SELECT %s::text, %s, COALESCE(%s, '') FROM %s WHERE %s = $1",
		idCol, usernameCol, tokenCol, table, usernameCol,
	)
	if cfg.Scope != "" {
		findQuery += " AND (" + cfg.Scope + ")"
	}

	updateQuery := fmt.Sprintf(
		"UPDATE %s SET %s = $1 WHERE %s = $2",
		table, tokenCol, idCol,
	)

	return &Store{
		db:          db,
		findQuery:   findQuery,
		updateQuery: updateQuery,
	}
}

// FindByUsername implements rememberme.UserStore.
func (s *Store) FindByUsername(ctx context.Context, username string) (*rememberme.User, error) {
	var (
		id   string
		user rememberme.User
	)

	err := s.db.QueryRowContext(ctx, s.findQuery, username).
		Scan(&id, &user.Username, &user.TokenHash)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, rememberme.ErrUserNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	user.ID, err = uuid.Parse(id)
	if err != nil {
		return nil, fmt.Errorf("invalid user id %q: %w", id, err)
	}

	return &user, nil
}

// UpdateTokenHash implements rememberme.UserStore. The single UPDATE is
// atomic per row; concurrent issuance for the same user is last-writer-wins.
func (s *Store) UpdateTokenHash(ctx context.Context, id uuid.UUID, tokenHash string) error {
	result, err := s.db.ExecContext(ctx, s.updateQuery, tokenHash, id)
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("db error: %w", err)
	}
	if affected == 0 {
		return rememberme.ErrUserNotFound
	}

	return nil
}
