// Package config handles configuration for the server component,
// including defaults, environment overlay, JSON overlay, and command-line
// flags, applied in that order.
package config

import "time"

// Config holds runtime settings for the coursehub server.
//
// Fields:
//   - Addr: bind address for the TCP protocol endpoint.
//   - DatabaseDSN: sqlite path/URI, or a postgres:// DSN to select pgx.
//   - RedisAddr: Redis host:port for upload notifications; empty disables
//     the Redis notifier and falls back to log-only.
//   - ReadTimeout: per-connection deadline for the single request read.
type Config struct {
	Addr        string
	DatabaseDSN string
	RedisAddr   string
	ReadTimeout time.Duration
}

// LoadDefaults populates Config with development defaults.
func (c *Config) LoadDefaults() {
	c.Addr = "0.0.0.0:5000"
	c.DatabaseDSN = "file:coursehub.db"
	c.RedisAddr = ""
	c.ReadTimeout = 10 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from the environment (including an optional .env file), from an optional
// JSON file and finally from command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseJson(cfg)
	parseFlags(cfg)
	return cfg
}
