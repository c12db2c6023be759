package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tksmrkm/rememberme/core/config"
)

type serverConfig struct {
	Host string `env:"TEST_CONFIG_HOST" envDefault:"localhost"`
	Port int    `env:"TEST_CONFIG_PORT" envDefault:"8080"`
}

type requiredConfig struct {
	Token string `env:"TEST_CONFIG_REQUIRED_TOKEN,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		var cfg serverConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 8080, cfg.Port)
	})

	t.Run("cached per type", func(t *testing.T) {
		var first serverConfig
		require.NoError(t, config.Load(&first))

		// Environment changes after the first load are not observed.
		t.Setenv("TEST_CONFIG_HOST", "changed.example.com")

		var second serverConfig
		require.NoError(t, config.Load(&second))
		assert.Equal(t, first, second)
	})

	t.Run("missing required variable fails", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.Error(t, err)
	})

	t.Run("non-pointer rejected", func(t *testing.T) {
		err := config.Load(serverConfig{})
		assert.Error(t, err)
	})

	t.Run("nil pointer rejected", func(t *testing.T) {
		var cfg *serverConfig
		err := config.Load(cfg)
		assert.Error(t, err)
	})
}

func TestMustLoad(t *testing.T) {
	assert.Panics(t, func() {
		var cfg requiredConfig
		config.MustLoad(&cfg)
	})
}
