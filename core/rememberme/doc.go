// Package rememberme implements a persistent-login ("remember me")
// mechanism: after a successful primary login, an encrypted long-lived
// cookie is issued that re-authenticates the user on later requests
// without a password.
//
// # Lifecycle
//
// Issuance: when the host's own credential check succeeds and the request
// carries the opt-in field, a fresh high-entropy token is generated, its
// bcrypt hash persisted on the user record (replacing any previous one —
// a single token is active per user), and the (username, token) pair is
// encrypted into the cookie value. Persistence strictly precedes the cookie
// write.
//
// Verification: on an incoming request the cookie is read, decrypted, and
// the token compared against the persisted hash in constant time. Any
// failure — absent cookie, tampered value, unknown user, stale token —
// yields a nil user with no client-visible distinction, so the host falls
// through to its other authentication methods.
//
// Invalidation: Logout always clears the cookie;
// AfterPrimaryAuthentication with a nil user clears it as well. Whether
// logout also revokes the persisted hash is controlled by
// Config.RevokeOnLogout.
//
// # Usage
//
//	var cfg rememberme.Config
//	config.MustLoad(&cfg)
//
//	auth, err := rememberme.New(cfg, userStore, cookie.New(),
//		rememberme.WithLogger(slog.Default()))
//	if err != nil {
//		log.Fatal(err)
//	}
//
//	// On each request, before other auth fallbacks:
//	if user := auth.Authenticate(r); user != nil {
//		// adopt user as the request identity
//	}
//
//	// After the host's own login handling, success or failure:
//	if err := auth.AfterPrimaryAuthentication(w, r, userOrNil); err != nil {
//		// persistence failed; no cookie was written
//	}
//
//	// On logout:
//	_ = auth.Logout(w, r, user)
//
// The authenticator is re-entrant. Concurrent issuance for the same user is
// last-writer-wins, consistent with the single-active-token model.
package rememberme
