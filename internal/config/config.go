// Package config reads process settings from the environment, after loading
// a .env file when one is present.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config is the server's runtime configuration
type Config struct {
	AppName              string
	Port                 int
	StorageType          string
	RedisURL             string
	RedisKeyPrefix       string
	FirestoreProject     string
	FirestoreCredentials string
	SeedFile             string
	LogLevel             slog.Level
	SessionDuration      time.Duration
}

// Default returns the settings used when nothing is configured
func Default() Config {
	return Config{
		AppName:         "scoreboard",
		Port:            8080,
		StorageType:     "memory",
		RedisKeyPrefix:  "scoreboard",
		LogLevel:        slog.LevelInfo,
		SessionDuration: 24 * time.Hour,
	}
}

// Load reads the given .env files (".env" when none are given), ignoring
// missing ones, then overlays the environment on the defaults.
// Variables already set in the environment win over .env values.
func Load(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("load %s: %w", f, err)
		}
	}
	return FromEnv(os.LookupEnv)
}

// FromEnv builds a Config from a variable lookup function
func FromEnv(lookup func(string) (string, bool)) (Config, error) {
	cfg := Default()

	get := func(key string) (string, bool) {
		v, ok := lookup(key)
		v = strings.TrimSpace(v)
		return v, ok && v != ""
	}

	if v, ok := get("SCOREBOARD_APP_NAME"); ok {
		cfg.AppName = v
	}
	if v, ok := get("PORT"); ok {
		port, err := strconv.Atoi(v)
		if err != nil || port <= 0 || port > 65535 {
			return Config{}, fmt.Errorf("invalid PORT %q", v)
		}
		cfg.Port = port
	}
	if v, ok := get("STORAGE_TYPE"); ok {
		cfg.StorageType = strings.ToLower(v)
	}
	if v, ok := get("REDIS_URL"); ok {
		cfg.RedisURL = v
	}
	if v, ok := get("REDIS_KEY_PREFIX"); ok {
		cfg.RedisKeyPrefix = v
	}
	if v, ok := get("FIRESTORE_PROJECT_ID"); ok {
		cfg.FirestoreProject = v
	}
	if v, ok := get("FIRESTORE_CREDENTIALS_FILE"); ok {
		cfg.FirestoreCredentials = v
	}
	if v, ok := get("SEED_FILE"); ok {
		cfg.SeedFile = v
	}
	if v, ok := get("LOG_LEVEL"); ok {
		if err := cfg.LogLevel.UnmarshalText([]byte(v)); err != nil {
			return Config{}, fmt.Errorf("invalid LOG_LEVEL %q: %w", v, err)
		}
	}
	if v, ok := get("SESSION_DURATION"); ok {
		d, err := time.ParseDuration(v)
		if err != nil || d <= 0 {
			return Config{}, fmt.Errorf("invalid SESSION_DURATION %q", v)
		}
		cfg.SessionDuration = d
	}

	return cfg, cfg.Validate()
}

// Validate checks that the selected storage has what it needs
func (c Config) Validate() error {
	switch c.StorageType {
	case "memory":
	case "redis":
		if c.RedisURL == "" {
			return errors.New("REDIS_URL required when STORAGE_TYPE=redis")
		}
	case "firestore":
		if c.FirestoreProject == "" {
			return errors.New("FIRESTORE_PROJECT_ID required when STORAGE_TYPE=firestore")
		}
	default:
		return fmt.Errorf("invalid STORAGE_TYPE %q: must be memory, redis or firestore", c.StorageType)
	}
	return nil
}

// Addr is the listen address for Port
func (c Config) Addr() string {
	return ":" + strconv.Itoa(c.Port)
}
