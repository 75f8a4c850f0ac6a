package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SERVER_PORT", "")
	t.Setenv("ANALYTICS_EXPORT_INTERVAL_SECONDS", "")
	t.Setenv("ANALYTICS_TOP_N", "")
	t.Setenv("CHAT_RANDOM_SEED", "")
	t.Setenv("KNOWLEDGE_SEED_FILE", "")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.Server.Port)
	assert.Equal(t, time.Minute, cfg.Analytics.ExportInterval)
	assert.Equal(t, 10, cfg.Analytics.TopN)
	assert.Equal(t, uint64(0), cfg.Chat.RandomSeed)
	assert.Equal(t, "data/knowledge_base.yaml", cfg.Knowledge.SeedFile)
}

func TestLoadEnvOverride(t *testing.T) {
	t.Setenv("SERVER_PORT", "9090")
	t.Setenv("ANALYTICS_EXPORT_INTERVAL_SECONDS", "5")
	t.Setenv("CHAT_RANDOM_SEED", "42")
	t.Setenv("JWT_EXPIRATION_HOURS", "2")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "9090", cfg.Server.Port)
	assert.Equal(t, 5*time.Second, cfg.Analytics.ExportInterval)
	assert.Equal(t, uint64(42), cfg.Chat.RandomSeed)
	assert.Equal(t, 2*time.Hour, cfg.JWT.Expiration)
}

func TestLoadInvalidNumber(t *testing.T) {
	t.Setenv("ANALYTICS_TOP_N", "ten")

	_, err := Load()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ANALYTICS_TOP_N")
}
