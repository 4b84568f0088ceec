// Package config loads runtime settings for the Holocron CLI.
package config

import "time"

// Config holds runtime settings for the Holocron CLI.
//
// Fields:
//   - APIBaseURL: base URL of the remote notes API, including the version
//     prefix (e.g. http://localhost:8000/api/v1).
//   - VaultPath: path of the local SQLite file holding the persisted
//     credential.
//   - SearchDebounce: quiet period before a changed search term is sent.
type Config struct {
	APIBaseURL     string
	VaultPath      string
	SearchDebounce time.Duration
}

// LoadDefaults populates c with sensible defaults for local development.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8000/api/v1"
	c.VaultPath = "holocron.db"
	c.SearchDebounce = 300 * time.Millisecond
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment, and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
