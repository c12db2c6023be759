// Package middleware provides net/http middleware that adopts a verified
// remember-me identity into the request context. It is intentionally not a
// router or session layer: it only runs the cookie verification path and
// exposes the result to downstream handlers.
package middleware
