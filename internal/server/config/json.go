package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/edtechlab/coursehub/internal/flagx"
)

// JsonConfig is the DTO used only for reading JSON configuration files;
// durations are strings in Go syntax ("10s"). After unmarshalling, non-empty
// values are copied into the runtime Config.
type JsonConfig struct {
	Addr        string `json:"address"`
	DatabaseDSN string `json:"database_dsn"`
	RedisAddr   string `json:"redis_addr"`
	ReadTimeout string `json:"read_timeout"`
}

// parseJson loads configuration values from the JSON file named by the
// -c/-config flags into the provided Config. When no flag is given, nothing
// is loaded. An unreadable file or invalid JSON panics: a half-applied
// config is worse than a refusal to start.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	if c.Addr != "" {
		config.Addr = c.Addr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.RedisAddr != "" {
		config.RedisAddr = c.RedisAddr
	}
	if c.ReadTimeout != "" {
		d, err := time.ParseDuration(c.ReadTimeout)
		if err != nil {
			panic(err)
		}
		config.ReadTimeout = d
	}
}
