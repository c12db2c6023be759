// Package redis provides a Redis-backed user store for the remember-me core,
// plus client initialization with URL validation and ping verification.
//
// The store is a mirror: hosts push user records into it with SaveUser and
// the remember-me core reads and updates token hashes through the
// rememberme.UserStore interface. Use it when the primary user database is
// not reachable from the authentication tier.
package redis
