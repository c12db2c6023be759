package rememberme_test

import (
	"encoding/base64"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tksmrkm/rememberme/core/rememberme"
	"github.com/tksmrkm/rememberme/pkg/secrets"
)

const testSecret = "test-secret-key-32-characters!!!"

func TestCodec_RoundTrip(t *testing.T) {
	codec := rememberme.NewCodec(testSecret)

	cases := []struct {
		name     string
		username string
		token    string
	}{
		{"simple", "alice", "raw-token-value"},
		{"unicode username", "ユーザー", "raw-token-value"},
		{"special characters", `user"with|quotes`, "t0k3n+/="},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			encoded, err := codec.Encode(tc.username, tc.token)
			require.NoError(t, err)
			assert.NotContains(t, encoded, tc.username)
			assert.NotContains(t, encoded, tc.token)

			username, token, err := codec.Decode(encoded)
			require.NoError(t, err)
			assert.Equal(t, tc.username, username)
			assert.Equal(t, tc.token, token)
		})
	}
}

func TestCodec_DecodeFailures(t *testing.T) {
	codec := rememberme.NewCodec(testSecret)

	t.Run("empty value", func(t *testing.T) {
		_, _, err := codec.Decode("")
		assert.ErrorIs(t, err, rememberme.ErrDecodeFailed)
	})

	t.Run("garbage value", func(t *testing.T) {
		_, _, err := codec.Decode("definitely not a cookie")
		assert.ErrorIs(t, err, rememberme.ErrDecodeFailed)
	})

	t.Run("wrong secret", func(t *testing.T) {
		encoded, err := codec.Encode("alice", "token")
		require.NoError(t, err)

		other := rememberme.NewCodec("another-secret-key-32-chars!!!!!")
		_, _, err = other.Decode(encoded)
		assert.ErrorIs(t, err, rememberme.ErrDecodeFailed)
	})

	t.Run("empty username rejected", func(t *testing.T) {
		value, err := secrets.EncryptString(testSecret, `{"username":"","token":"raw"}`)
		require.NoError(t, err)

		_, _, err = codec.Decode(value)
		assert.ErrorIs(t, err, rememberme.ErrDecodeFailed)
	})

	t.Run("empty token rejected", func(t *testing.T) {
		value, err := secrets.EncryptString(testSecret, `{"username":"alice","token":""}`)
		require.NoError(t, err)

		_, _, err = codec.Decode(value)
		assert.ErrorIs(t, err, rememberme.ErrDecodeFailed)
	})

	t.Run("missing fields rejected", func(t *testing.T) {
		value, err := secrets.EncryptString(testSecret, `{"other":"data"}`)
		require.NoError(t, err)

		_, _, err = codec.Decode(value)
		assert.ErrorIs(t, err, rememberme.ErrDecodeFailed)
	})

	t.Run("non-json plaintext rejected", func(t *testing.T) {
		value, err := secrets.EncryptString(testSecret, "not json at all")
		require.NoError(t, err)

		_, _, err = codec.Decode(value)
		assert.ErrorIs(t, err, rememberme.ErrDecodeFailed)
	})
}

func TestCodec_TamperDetection(t *testing.T) {
	codec := rememberme.NewCodec(testSecret)

	encoded, err := codec.Encode("alice", "raw-token-value")
	require.NoError(t, err)

	raw, err := base64.URLEncoding.DecodeString(encoded)
	require.NoError(t, err)

	for i := range raw {
		tampered := make([]byte, len(raw))
		copy(tampered, raw)
		tampered[i] ^= 0x01

		_, _, err := codec.Decode(base64.URLEncoding.EncodeToString(tampered))
		assert.ErrorIs(t, err, rememberme.ErrDecodeFailed, "byte %d accepted after tampering", i)
	}
}
