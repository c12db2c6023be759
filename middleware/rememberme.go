package middleware

import (
	"context"
	"net/http"

	"github.com/tksmrkm/rememberme/core/rememberme"
)

// userContextKey is used as a key for storing the verified user in request context.
type userContextKey struct{}

// Config configures the remember-me middleware.
type Config struct {
	// Authenticator runs the cookie verification path.
	Authenticator *rememberme.Authenticator
	// Skip defines a function to skip middleware execution for specific requests.
	Skip func(r *http.Request) bool
}

// RememberMe creates middleware that attempts cookie-based authentication on
// each request and, when it succeeds, stores the verified user in the
// request context. A denied or absent cookie leaves the request untouched so
// downstream authentication methods can take over.
//
//	mux.Handle("/", middleware.RememberMe(auth)(appHandler))
//
//	func appHandler(w http.ResponseWriter, r *http.Request) {
//		if user, ok := middleware.UserFromContext(r.Context()); ok {
//			// user arrived with a valid remember-me cookie
//		}
//	}
func RememberMe(auth *rememberme.Authenticator) func(http.Handler) http.Handler {
	return RememberMeWithConfig(Config{Authenticator: auth})
}

// RememberMeWithConfig creates the middleware with custom configuration.
// Panics if no authenticator is provided.
func RememberMeWithConfig(cfg Config) func(http.Handler) http.Handler {
	if cfg.Authenticator == nil {
		panic("rememberme middleware: authenticator is required")
	}

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if cfg.Skip != nil && cfg.Skip(r) {
				next.ServeHTTP(w, r)
				return
			}

			// An identity adopted earlier in the chain wins.
			if _, ok := UserFromContext(r.Context()); ok {
				next.ServeHTTP(w, r)
				return
			}

			if user := cfg.Authenticator.Authenticate(r); user != nil {
				r = r.WithContext(context.WithValue(r.Context(), userContextKey{}, user))
			}

			next.ServeHTTP(w, r)
		})
	}
}

// UserFromContext retrieves the remember-me user from the request context.
func UserFromContext(ctx context.Context) (*rememberme.User, bool) {
	user, ok := ctx.Value(userContextKey{}).(*rememberme.User)
	return user, ok
}

// WithUser returns a context carrying user, for hosts that adopt an identity
// through another mechanism and want downstream code to see a single source.
func WithUser(ctx context.Context, user *rememberme.User) context.Context {
	return context.WithValue(ctx, userContextKey{}, user)
}
