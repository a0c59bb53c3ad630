package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookup(vars map[string]string) func(string) (string, bool) {
	return func(k string) (string, bool) {
		v, ok := vars[k]
		return v, ok
	}
}

func TestDefaults(t *testing.T) {
	cfg, err := FromEnv(lookup(nil))

	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
	assert.Equal(t, ":8080", cfg.Addr())
}

func TestFromEnv(t *testing.T) {
	cfg, err := FromEnv(lookup(map[string]string{
		"SCOREBOARD_APP_NAME": "arcade",
		"PORT":                "9000",
		"STORAGE_TYPE":        "Redis",
		"REDIS_URL":           "redis://cache:6379/1",
		"LOG_LEVEL":           "debug",
		"SESSION_DURATION":    "2h",
		"SEED_FILE":           "data/fixture.yaml",
	}))

	require.NoError(t, err)
	assert.Equal(t, "arcade", cfg.AppName)
	assert.Equal(t, 9000, cfg.Port)
	assert.Equal(t, "redis", cfg.StorageType)
	assert.Equal(t, "redis://cache:6379/1", cfg.RedisURL)
	assert.Equal(t, slog.LevelDebug, cfg.LogLevel)
	assert.Equal(t, 2*time.Hour, cfg.SessionDuration)
	assert.Equal(t, "data/fixture.yaml", cfg.SeedFile)
}

func TestInvalidValues(t *testing.T) {
	for name, vars := range map[string]map[string]string{
		"port":              {"PORT": "http"},
		"log level":         {"LOG_LEVEL": "loud"},
		"session":           {"SESSION_DURATION": "-1h"},
		"storage":           {"STORAGE_TYPE": "postgres"},
		"redis url":         {"STORAGE_TYPE": "redis"},
		"firestore project": {"STORAGE_TYPE": "firestore"},
	} {
		t.Run(name, func(t *testing.T) {
			_, err := FromEnv(lookup(vars))
			assert.Error(t, err)
		})
	}
}

func TestLoadDotEnv(t *testing.T) {
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("SCOREBOARD_APP_NAME=from-dotenv\nPORT=7070\n"), 0o600))
	t.Setenv("PORT", "6060")
	t.Setenv("SCOREBOARD_APP_NAME", "")

	cfg, err := Load(path)

	require.NoError(t, err)
	assert.Equal(t, 6060, cfg.Port)
}

func TestLoadMissingFileIgnored(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "absent.env"))
	assert.NoError(t, err)
}
