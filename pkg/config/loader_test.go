package config_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/namemaker/pkg/config"
)

type testConfig struct {
	WordlistPath string `env:"NAMEMAKER_TEST_WORDLIST"`
	Amount       int    `env:"NAMEMAKER_TEST_AMOUNT" envDefault:"1"`
}

type requiredConfig struct {
	Value string `env:"NAMEMAKER_TEST_REQUIRED,required"`
}

func TestLoad(t *testing.T) {
	t.Run("defaults applied", func(t *testing.T) {
		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Empty(t, cfg.WordlistPath)
		assert.Equal(t, 1, cfg.Amount)
	})

	t.Run("reads environment", func(t *testing.T) {
		t.Setenv("NAMEMAKER_TEST_WORDLIST", "/tmp/names.yaml")
		t.Setenv("NAMEMAKER_TEST_AMOUNT", "5")

		var cfg testConfig
		require.NoError(t, config.Load(&cfg))
		assert.Equal(t, "/tmp/names.yaml", cfg.WordlistPath)
		assert.Equal(t, 5, cfg.Amount)
	})

	t.Run("nil pointer", func(t *testing.T) {
		err := config.Load[testConfig](nil)
		assert.ErrorIs(t, err, config.ErrNilPointer)
	})

	t.Run("missing required variable", func(t *testing.T) {
		var cfg requiredConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})

	t.Run("invalid value type", func(t *testing.T) {
		t.Setenv("NAMEMAKER_TEST_AMOUNT", "not-a-number")

		var cfg testConfig
		err := config.Load(&cfg)
		assert.ErrorIs(t, err, config.ErrParsingConfig)
	})
}

func TestMustLoad(t *testing.T) {
	t.Run("panics on failure", func(t *testing.T) {
		assert.Panics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})

	t.Run("succeeds with valid environment", func(t *testing.T) {
		t.Setenv("NAMEMAKER_TEST_REQUIRED", "set")

		assert.NotPanics(t, func() {
			var cfg requiredConfig
			config.MustLoad(&cfg)
		})
	})
}
