package rememberme

import (
	"encoding/json"
	"errors"

	"github.com/tksmrkm/rememberme/pkg/secrets"
)

// payload is the decrypted structure carried inside the cookie.
type payload struct {
	Username string `json:"username"`
	Token    string `json:"token"`
}

// Codec converts a (username, raw token) pair to and from the opaque
// encrypted string carried in the cookie. A client cannot construct or
// modify a value without the secret; GCM authentication rejects tampering.
type Codec struct {
	secret string
}

// NewCodec creates a codec bound to a server secret.
func NewCodec(secret string) *Codec {
	return &Codec{secret: secret}
}

// Encode serializes the pair to JSON and encrypts it into a transport-safe
// string.
func (c *Codec) Encode(username, rawToken string) (string, error) {
	data, err := json.Marshal(payload{Username: username, Token: rawToken})
	if err != nil {
		return "", err
	}
	return secrets.EncryptString(c.secret, string(data))
}

// Decode reverses Encode. It fails with ErrDecodeFailed when the value is
// empty, cannot be decrypted, or decodes to a payload missing the username
// or the token. A partially populated payload is never accepted.
func (c *Codec) Decode(value string) (username, rawToken string, err error) {
	if value == "" {
		return "", "", ErrDecodeFailed
	}

	plaintext, err := secrets.DecryptString(c.secret, value)
	if err != nil {
		return "", "", errors.Join(ErrDecodeFailed, err)
	}

	var p payload
	if err := json.Unmarshal([]byte(plaintext), &p); err != nil {
		return "", "", errors.Join(ErrDecodeFailed, err)
	}

	if p.Username == "" || p.Token == "" {
		return "", "", ErrDecodeFailed
	}

	return p.Username, p.Token, nil
}
