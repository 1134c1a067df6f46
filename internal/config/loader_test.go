package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	var cfg Config
	args := []string{"deepmatch"}

	err := LoadConfig(&cfg, &args)
	require.NoError(t, err)

	assert.Equal(t, 2, cfg.Compare.DefaultPrecision)
	assert.Equal(t, 100, cfg.Compare.HistorySize)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, "0.0.0.0:8080", cfg.Web.Address)
}

func TestLoadConfigFromEnv(t *testing.T) {
	t.Setenv("WEB_ADDRESS", "127.0.0.1:9090")
	t.Setenv("COMPARE_STRICT", "true")

	var cfg Config
	args := []string{"deepmatch"}

	err := LoadConfig(&cfg, &args)
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:9090", cfg.Web.Address)
	assert.True(t, cfg.Compare.Strict)
}

func TestLoadConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("COMPARE_DEFAULT_PRECISION", "3")

	var cfg Config
	args := []string{"deepmatch", "--compare-default-precision=5"}

	err := LoadConfig(&cfg, &args)
	require.NoError(t, err)

	assert.Equal(t, 5, cfg.Compare.DefaultPrecision)
}

func TestLoadConfigValidation(t *testing.T) {
	t.Setenv("WEB_ADDRESS", "not-an-address")

	var cfg Config
	args := []string{"deepmatch"}

	err := LoadConfig(&cfg, &args)
	require.ErrorIs(t, err, ErrConfigValidation)
}

func TestLoadConfigBadFlag(t *testing.T) {
	var cfg Config
	args := []string{"deepmatch", "--no-such-flag=1"}

	err := LoadConfig(&cfg, &args)
	require.ErrorIs(t, err, ErrFlagParse)
}
