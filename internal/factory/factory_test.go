package factory

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/scoreboard/internal/dependencies/clock"
	"github.com/mcoot/scoreboard/internal/model"
	redisstorage "github.com/mcoot/scoreboard/internal/storage/redis"
)

func TestNewRejectsIncompleteStorageConfig(t *testing.T) {
	for _, cfg := range []Config{
		{StorageType: StorageTypeRedis},
		{StorageType: StorageTypeFirestore},
		{StorageType: "postgres"},
	} {
		_, err := New(cfg)
		assert.Error(t, err, cfg.StorageType)
	}
}

func TestConnectMemoryWithSeed(t *testing.T) {
	ctx := context.Background()
	app, err := New(Config{
		AppName:  "demo",
		SeedFile: "../../data/fixture.yaml",
		Clock:    clock.NewFixed(TestNow),
	})
	require.NoError(t, err)

	_, err = app.Connector.Handles()
	assert.ErrorIs(t, err, model.ErrBackendUnavailable)

	require.NoError(t, app.Connect(ctx))
	h, err := app.Connector.Handles()
	require.NoError(t, err)
	assert.Equal(t, "demo", h.AppName)

	email, err := app.Resolver.ResolveIdentifierToEmail(ctx, "alice")
	require.NoError(t, err)
	assert.Equal(t, "alice@example.com", email)

	entries, err := app.LeaderboardService.Top(ctx, model.PeriodAllTime)
	require.NoError(t, err)
	require.NotEmpty(t, entries)
	assert.Equal(t, 95.0, entries[0].Score)

	assert.NoError(t, app.Close())
}

func TestConnectFailsOnMissingSeed(t *testing.T) {
	app, err := New(Config{SeedFile: "does-not-exist.yaml"})
	require.NoError(t, err)

	assert.Error(t, app.Connect(context.Background()))
	_, err = app.Connector.Handles()
	assert.Error(t, err)
}

func TestConnectRedisUnreachable(t *testing.T) {
	cfg := redisstorage.DefaultConfig()
	cfg.URL = "redis://127.0.0.1:1"
	app, err := New(Config{StorageType: StorageTypeRedis, RedisConfig: &cfg})
	require.NoError(t, err)

	assert.Error(t, app.Connect(context.Background()))
}
