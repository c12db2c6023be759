package rememberme

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/tksmrkm/rememberme/core/cookie"
	"github.com/tksmrkm/rememberme/pkg/tokenhash"
)

// Authenticator orchestrates the remember-me token lifecycle: verification
// on incoming requests, issuance after a successful primary login, and
// invalidation on logout or a failed login attempt.
//
// It holds no mutable state and is safe for concurrent use; the only shared
// collaborator is the UserStore, which provides its own consistency.
type Authenticator struct {
	cfg     Config
	codec   *Codec
	tokens  *TokenStore
	cookies *cookie.Manager
	log     *slog.Logger
}

// New creates an authenticator. The configuration is validated up front.
func New(cfg Config, users UserStore, cookies *cookie.Manager, opts ...Option) (*Authenticator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if users == nil {
		return nil, errors.Join(ErrInvalidConfig, errors.New("user store is required"))
	}
	if cookies == nil {
		cookies = cookie.New()
	}

	a := &Authenticator{
		cfg:     cfg,
		codec:   NewCodec(cfg.Secret),
		tokens:  NewTokenStore(users),
		cookies: cookies,
		log:     discardLogger(),
	}
	for _, opt := range opts {
		opt(a)
	}

	return a, nil
}

// Authenticate runs the verification path for an incoming request and
// returns the verified user, or nil when the mechanism has no opinion:
// no cookie, an undecodable cookie, an unknown user, or a token mismatch
// all yield nil so the host can fall through to other authentication
// methods. The reason is never exposed to the client; decode and
// verification failures are logged as security-relevant events.
func (a *Authenticator) Authenticate(r *http.Request) *User {
	value, err := a.cookies.Get(r, a.cfg.CookieName)
	if err != nil || value == "" {
		return nil
	}

	username, rawToken, err := a.codec.Decode(value)
	if err != nil {
		a.log.Warn("remember-me cookie rejected",
			slog.String("cookie", a.cfg.CookieName),
			slog.Any("error", err))
		return nil
	}

	user, err := a.tokens.Verify(r.Context(), username, rawToken)
	if err != nil {
		a.log.Warn("remember-me verification failed",
			slog.String("username", username),
			slog.Any("error", err))
		return nil
	}

	return user
}

// AfterPrimaryAuthentication is the hook the host framework calls after its
// own credential check, whatever the outcome.
//
// A nil user means primary authentication failed: the cookie is cleared so a
// stale credential does not linger after a failed manual login. On success
// without the opt-in field, nothing happens. On success with opt-in, a fresh
// token is generated, its hash persisted, and the cookie written — in that
// order, so a persistence failure never leaves the client holding a cookie
// referencing a token that was never stored. Issuance errors propagate to
// the caller.
func (a *Authenticator) AfterPrimaryAuthentication(w http.ResponseWriter, r *http.Request, user *User) error {
	if user == nil {
		a.cookies.Clear(w, a.cfg.CookieName)
		return nil
	}

	if !a.optedIn(r) {
		return nil
	}

	rawToken, err := a.issueToken(r, user)
	if err != nil {
		return err
	}

	value, err := a.codec.Encode(user.Username, rawToken)
	if err != nil {
		return err
	}

	return a.cookies.Set(w, a.cfg.CookieName, value,
		cookie.WithMaxAge(int(a.cfg.CookieTTL.Seconds())),
		cookie.WithHTTPOnly(a.cfg.CookieHTTPOnly),
		cookie.WithSecure(a.cfg.CookieSecure),
	)
}

// Logout is the hook the host framework calls when the user logs out.
// The cookie is always cleared. With RevokeOnLogout enabled the persisted
// hash is also replaced by the digest of a token nobody holds, so a cookie
// captured before logout stops verifying.
func (a *Authenticator) Logout(w http.ResponseWriter, r *http.Request, user *User) error {
	a.cookies.Clear(w, a.cfg.CookieName)

	if !a.cfg.RevokeOnLogout || user == nil {
		return nil
	}

	discarded, err := tokenhash.NewRawToken([]byte(user.ID.String()))
	if err != nil {
		return errors.Join(ErrTokenGeneration, err)
	}

	return a.tokens.Persist(r.Context(), user.ID, discarded)
}

// issueToken generates a fresh raw token bound to the user record and
// persists its hash before the value ever reaches the client.
func (a *Authenticator) issueToken(r *http.Request, user *User) (string, error) {
	rawToken, err := tokenhash.NewRawToken(
		[]byte(user.ID.String()),
		[]byte(user.Username),
		[]byte(user.TokenHash),
	)
	if err != nil {
		return "", errors.Join(ErrTokenGeneration, err)
	}

	if err := a.tokens.Persist(r.Context(), user.ID, rawToken); err != nil {
		return "", err
	}

	return rawToken, nil
}

// optedIn reports whether the request carries the opt-in field with a
// truthy value. Checkbox-style values ("on", "1", "true", "yes") count.
func (a *Authenticator) optedIn(r *http.Request) bool {
	switch strings.ToLower(r.FormValue(a.cfg.InputKey)) {
	case "1", "true", "on", "yes":
		return true
	}
	return false
}
