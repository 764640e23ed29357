package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	var c Config
	c.LoadDefaults()

	assert.Equal(t, "0.0.0.0:5000", c.Addr)
	assert.Equal(t, "file:coursehub.db", c.DatabaseDSN)
	assert.Equal(t, "", c.RedisAddr)
	assert.Equal(t, 10*time.Second, c.ReadTimeout)
}

func TestLoadConfig_UsesDefaultsBeforeParsing(t *testing.T) {
	c := LoadConfig()

	require.NotNil(t, c, "LoadConfig must not return nil")

	assert.Equal(t, "0.0.0.0:5000", c.Addr)
	assert.Equal(t, "file:coursehub.db", c.DatabaseDSN)
	assert.Equal(t, 10*time.Second, c.ReadTimeout)
}

func TestParseEnv_Overrides(t *testing.T) {
	t.Setenv("ADDRESS", "127.0.0.1:6000")
	t.Setenv("DATABASE_DSN", "file:other.db")
	t.Setenv("REDIS_ADDR", "127.0.0.1:6379")
	t.Setenv("READ_TIMEOUT", "3s")

	c := &Config{}
	c.LoadDefaults()
	parseEnv(c)

	assert.Equal(t, "127.0.0.1:6000", c.Addr)
	assert.Equal(t, "file:other.db", c.DatabaseDSN)
	assert.Equal(t, "127.0.0.1:6379", c.RedisAddr)
	assert.Equal(t, 3*time.Second, c.ReadTimeout)
}

func TestParseEnv_InvalidDurationPanics(t *testing.T) {
	t.Setenv("READ_TIMEOUT", "not-a-duration")

	c := &Config{}
	c.LoadDefaults()

	require.Panics(t, func() { parseEnv(c) })
}
