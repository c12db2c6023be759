package rememberme

import "errors"

var (
	// ErrDecodeFailed is returned when a cookie value cannot be decoded:
	// empty input, decryption failure, or a payload missing the username
	// or the token.
	ErrDecodeFailed = errors.New("remember-me cookie decode failed")

	// ErrUserNotFound is returned when the username carried by a cookie
	// does not match any user in the store.
	ErrUserNotFound = errors.New("user not found")

	// ErrTokenMismatch is returned when a presented token does not match
	// the persisted token hash.
	ErrTokenMismatch = errors.New("remember-me token mismatch")

	// ErrPersistFailed is returned when writing a token hash to the user
	// store fails during issuance. No cookie is written in this case.
	ErrPersistFailed = errors.New("failed to persist remember-me token")

	// ErrTokenGeneration is returned when generating a fresh raw token fails.
	ErrTokenGeneration = errors.New("failed to generate remember-me token")

	// ErrInvalidConfig is returned when the configuration fails validation.
	ErrInvalidConfig = errors.New("invalid remember-me configuration")
)
