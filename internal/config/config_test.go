package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"ITGSCRUB_RETENTION", "ITGSCRUB_ZIP", "ITGSCRUB_SORT",
		"ITGSCRUB_LOG_LEVEL", "ITGSCRUB_LOG_FORMAT",
	} {
		if old, ok := os.LookupEnv(key); ok {
			t.Cleanup(func() { os.Setenv(key, old) })
		} else {
			t.Cleanup(func() { os.Unsetenv(key) })
		}
		os.Unsetenv(key)
	}
}

func TestLoadDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, "delete", cfg.Retention)
	assert.Equal(t, "no", cfg.Zip)
	assert.True(t, cfg.Sort)
	assert.Equal(t, "info", cfg.Logging.Level)
	assert.Equal(t, "text", cfg.Logging.Format)
}

func TestLoadEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ITGSCRUB_RETENTION", "Keep")
	t.Setenv("ITGSCRUB_ZIP", "yes")
	t.Setenv("ITGSCRUB_SORT", "false")
	t.Setenv("ITGSCRUB_LOG_LEVEL", "debug")

	cfg, err := Load("", "")
	require.NoError(t, err)
	assert.Equal(t, "keep", cfg.Retention)
	assert.Equal(t, "yes", cfg.Zip)
	assert.False(t, cfg.Sort)
	assert.Equal(t, "debug", cfg.Logging.Level)
}

func TestLoadFileOverridesEnv(t *testing.T) {
	clearEnv(t)
	t.Setenv("ITGSCRUB_ZIP", "yes")
	t.Setenv("ITGSCRUB_RETENTION", "keep")

	path := filepath.Join(t.TempDir(), "itgscrub.yaml")
	require.NoError(t, os.WriteFile(path, []byte("zip: \"no\"\nlogging:\n  format: json\n"), 0644))

	cfg, err := Load("", path)
	require.NoError(t, err)
	assert.Equal(t, "no", cfg.Zip)
	assert.Equal(t, "keep", cfg.Retention, "unset file keys keep env values")
	assert.Equal(t, "json", cfg.Logging.Format)
}

func TestLoadDotEnv(t *testing.T) {
	clearEnv(t)
	dir := t.TempDir()
	dotenv := filepath.Join(dir, ".env")
	require.NoError(t, os.WriteFile(dotenv, []byte("ITGSCRUB_RETENTION=keep\n"), 0644))

	cfg, err := Load(dotenv, "")
	require.NoError(t, err)
	assert.Equal(t, "keep", cfg.Retention)

	_, err = Load(filepath.Join(dir, "missing.env"), "")
	assert.NoError(t, err, "a missing .env file is not an error")
}

func TestLoadInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("ITGSCRUB_RETENTION", "archive")

	_, err := Load("", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Retention")
}

func TestLoadMissingFile(t *testing.T) {
	clearEnv(t)
	_, err := Load("", filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
