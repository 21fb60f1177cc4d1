package cmd_test

import (
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"ordering/cmd"
	"ordering/internal/pkg/errs"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfig(t *testing.T) {
	t.Run("should use defaults without env file", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("PRICE_TOLERANCE", "")

		config, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))

		require.NoError(t, err)
		assert.Equal(t, zerolog.InfoLevel, config.LogLevel)
		assert.Zero(t, config.PriceTolerance)
	})

	t.Run("should read values from env file", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "")
		t.Setenv("PRICE_TOLERANCE", "")
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("LOG_LEVEL=debug\nPRICE_TOLERANCE=0.001\n"), 0o600))

		config, err := cmd.LoadConfig(envFile)

		require.NoError(t, err)
		assert.Equal(t, zerolog.DebugLevel, config.LogLevel)
		assert.InDelta(t, 0.001, config.PriceTolerance, 0)
	})

	t.Run("should prefer process environment over env file", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "warn")
		t.Setenv("PRICE_TOLERANCE", "")
		envFile := filepath.Join(t.TempDir(), ".env")
		require.NoError(t, os.WriteFile(envFile, []byte("LOG_LEVEL=debug\n"), 0o600))

		config, err := cmd.LoadConfig(envFile)

		require.NoError(t, err)
		assert.Equal(t, zerolog.WarnLevel, config.LogLevel)
	})

	t.Run("should reject malformed values", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")
		t.Setenv("PRICE_TOLERANCE", "")
		_, err := cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		require.ErrorContains(t, err, "LOG_LEVEL")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		t.Setenv("LOG_LEVEL", "")
		t.Setenv("PRICE_TOLERANCE", "a lot")
		_, err = cmd.LoadConfig(filepath.Join(t.TempDir(), "missing.env"))
		require.ErrorContains(t, err, "PRICE_TOLERANCE")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		require.ErrorIs(t, err, strconv.ErrSyntax)
	})
}
