package redis

import "errors"

var (
	// ErrEmptyConnectionURL indicates no Redis connection URL was provided.
	ErrEmptyConnectionURL = errors.New("empty redis connection URL")

	// ErrFailedToParseConnString indicates the connection URL is malformed.
	ErrFailedToParseConnString = errors.New("failed to parse redis connection string")

	// ErrNotReady indicates Redis did not respond to ping within the retry budget.
	ErrNotReady = errors.New("redis did not become ready within the given time period")

	// ErrHealthcheckFailed indicates a readiness probe failed.
	ErrHealthcheckFailed = errors.New("redis healthcheck failed")

	// ErrCorruptRecord indicates a user record in Redis is missing required fields.
	ErrCorruptRecord = errors.New("corrupt user record in redis")
)
