package config

import "os"

// parseEnv overlays Config with values from the environment. Only variables
// that are set and non-empty override earlier layers.
func parseEnv(cfg *Config) {
	if v := os.Getenv("HOLOCRON_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("HOLOCRON_VAULT_PATH"); v != "" {
		cfg.VaultPath = v
	}
}
