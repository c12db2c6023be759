// Package tokenhash provides one-way hashing and generation of remember-me
// token values.
//
// Raw tokens are generated by NewRawToken, which mixes microsecond wall-clock
// time, cryptographically secure randomness, and caller context through
// SHA-256. Persisted digests use bcrypt, so a compromised store never yields
// usable raw tokens, and Verify compares in constant time.
package tokenhash
