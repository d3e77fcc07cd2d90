package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	assert.Equal(t, 6, GetInt("MAX_GUESSES"))
	assert.Equal(t, "simple", Get("SCORING"))
	assert.False(t, GetBool("OTEL_ENABLED"))
	assert.False(t, GetBool("SUSPEND_ENABLED"), "unfinished games are discarded unless enabled")
	assert.Equal(t, 1.0, GetFloat64("OTEL_SAMPLE_RATIO"))
	assert.Equal(t, "fallback", GetOrDefault("WORDLE_TEST_UNSET", "fallback"))
}

func TestEnvOverridesDefault(t *testing.T) {
	t.Setenv("MAX_GUESSES", "8")
	assert.Equal(t, 8, GetInt("MAX_GUESSES"))
}

func TestEnvEnablesSuspend(t *testing.T) {
	t.Setenv("SUSPEND_ENABLED", "true")
	t.Setenv("OTEL_SAMPLE_RATIO", "0.1")
	assert.True(t, GetBool("SUSPEND_ENABLED"))
	assert.Equal(t, 0.1, GetFloat64("OTEL_SAMPLE_RATIO"))
}

func TestLoadEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("WORDLE_TEST_LEVEL=trace\n"), 0o600))
	t.Cleanup(func() { os.Unsetenv("WORDLE_TEST_LEVEL") })

	require.NoError(t, LoadEnv(path))
	assert.Equal(t, "trace", Get("WORDLE_TEST_LEVEL"))

	assert.Error(t, LoadEnv(filepath.Join(t.TempDir(), "missing.env")))
}

func TestSet(t *testing.T) {
	Set("SCORING", "counted")
	t.Cleanup(func() { Set("SCORING", "simple") })
	assert.Equal(t, "counted", Get("SCORING"))
}
