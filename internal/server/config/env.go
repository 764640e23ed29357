package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays Config fields from the environment. A .env file in the
// working directory is loaded first, if present; real environment variables
// win over the file (godotenv does not override existing values).
//
// Recognized variables:
//
//	ADDRESS       bind address (e.g. "0.0.0.0:5000")
//	DATABASE_DSN  sqlite path/URI or postgres DSN
//	REDIS_ADDR    Redis host:port for the notifier
//	READ_TIMEOUT  per-connection read deadline, Go duration (e.g. "10s")
func parseEnv(config *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("ADDRESS"); v != "" {
		config.Addr = v
	}
	if v := os.Getenv("DATABASE_DSN"); v != "" {
		config.DatabaseDSN = v
	}
	if v := os.Getenv("REDIS_ADDR"); v != "" {
		config.RedisAddr = v
	}
	if v := os.Getenv("READ_TIMEOUT"); v != "" {
		d, err := time.ParseDuration(v)
		if err != nil {
			panic(err)
		}
		config.ReadTimeout = d
	}
}
