package config

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "localhost:6379", cfg.RedisAddr)
	assert.Equal(t, 0, cfg.RedisDB)
	assert.Equal(t, 24*time.Hour, cfg.CompletedGameTTL)
	assert.Equal(t, zerolog.InfoLevel, cfg.Level())
	assert.False(t, cfg.TelemetryEnabled)
	assert.Zero(t, cfg.DiceSeed)
	assert.Equal(t, time.Local, cfg.Location())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")
	t.Setenv("REDIS_ADDR", "redis:6380")
	t.Setenv("REDIS_DB", "3")
	t.Setenv("GUILD_ID", "guild")
	t.Setenv("LOG_LEVEL", "debug")
	t.Setenv("TELEMETRY_ENABLED", "true")
	t.Setenv("DICE_SEED", "42")
	t.Setenv("COMPLETED_GAME_TTL", "1h")
	t.Setenv("TIMEZONE", "UTC")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "redis:6380", cfg.RedisAddr)
	assert.Equal(t, 3, cfg.RedisDB)
	assert.Equal(t, "guild", cfg.GuildID)
	assert.Equal(t, zerolog.DebugLevel, cfg.Level())
	assert.True(t, cfg.TelemetryEnabled)
	assert.Equal(t, int64(42), cfg.DiceSeed)
	assert.Equal(t, time.Hour, cfg.CompletedGameTTL)
	assert.Equal(t, time.UTC, cfg.Location())
}

func TestLoad_MissingToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")

	_, err := Load()
	assert.Error(t, err)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token")

	t.Run("log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "loud")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("timezone", func(t *testing.T) {
		t.Setenv("TIMEZONE", "Mars/Olympus")
		_, err := Load()
		assert.Error(t, err)
	})

	t.Run("redis db", func(t *testing.T) {
		t.Setenv("REDIS_DB", "zero")
		_, err := Load()
		assert.Error(t, err)
	})
}
