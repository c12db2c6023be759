package rememberme

import (
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/tksmrkm/rememberme/pkg/secrets"
)

// Config holds the remember-me authenticator configuration.
type Config struct {
	// Secret encrypts cookie payloads. Must be at least 32 characters.
	Secret string `env:"REMEMBER_ME_SECRET,required"`

	// CookieName is the name of the transport cookie.
	CookieName string `env:"REMEMBER_ME_COOKIE_NAME" envDefault:"rememberMe"`

	// CookieTTL is how long an issued cookie remains valid (default 30 days).
	CookieTTL time.Duration `env:"REMEMBER_ME_COOKIE_TTL" envDefault:"720h"`

	// CookieSecure restricts the cookie to HTTPS transports.
	// Should be enabled in production deployments.
	CookieSecure bool `env:"REMEMBER_ME_COOKIE_SECURE" envDefault:"false"`

	// CookieHTTPOnly keeps the cookie out of reach of JavaScript.
	CookieHTTPOnly bool `env:"REMEMBER_ME_COOKIE_HTTP_ONLY" envDefault:"true"`

	// InputKey is the request form field signaling the client opted in.
	InputKey string `env:"REMEMBER_ME_INPUT_KEY" envDefault:"remember_me"`

	// RevokeOnLogout also overwrites the persisted token hash on Logout,
	// so a cookie captured before logout stops verifying. Disabled by
	// default: logout then only clears the client cookie and the stored
	// hash stays valid until the next issuance.
	RevokeOnLogout bool `env:"REMEMBER_ME_REVOKE_ON_LOGOUT" envDefault:"false"`
}

// Validate checks the configuration at construction time.
func (c Config) Validate() error {
	if len(c.Secret) < secrets.MinSecretLength {
		return fmt.Errorf("%w: secret must be at least %d characters",
			ErrInvalidConfig, secrets.MinSecretLength)
	}
	if c.CookieName == "" {
		return fmt.Errorf("%w: cookie name is required", ErrInvalidConfig)
	}
	if c.CookieTTL <= 0 {
		return fmt.Errorf("%w: cookie TTL must be positive", ErrInvalidConfig)
	}
	if c.InputKey == "" {
		return fmt.Errorf("%w: input key is required", ErrInvalidConfig)
	}
	return nil
}

// Option is a functional option for configuring the authenticator.
type Option func(*Authenticator)

// WithLogger sets the structured logger. Security-relevant events (rejected
// cookies, verification failures) are logged at Warn; the default logger
// discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(a *Authenticator) {
		if log != nil {
			a.log = log
		}
	}
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}
