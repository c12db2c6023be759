package pg

import "errors"

var (
	// ErrEmptyConnectionString indicates no connection string was provided.
	ErrEmptyConnectionString = errors.New("empty postgres connection string")

	// ErrConnectionFailed indicates the database did not become reachable
	// within the configured retry budget.
	ErrConnectionFailed = errors.New("failed to connect to postgres")

	// ErrMigrationFailed indicates applying schema migrations failed.
	ErrMigrationFailed = errors.New("failed to apply postgres migrations")
)
