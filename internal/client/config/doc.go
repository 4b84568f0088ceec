// Package config loads runtime configuration for the Holocron CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables (see parseEnv), e.g. HOLOCRON_API_BASE_URL.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the remote notes API
//	-v string   path of the local credential vault
//
// # JSON schema
//
// The JSON loader uses timex.Duration for the search debounce, so the value
// can be either a string like "300ms" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8000/api/v1",
//	  "vault_path": "holocron.db",
//	  "search_debounce": "300ms"
//	}
//
// Primary API
//
//   - type Config                     — holds APIBaseURL, VaultPath and SearchDebounce
//   - func LoadConfig() *Config       — builds Config by applying defaults, JSON, env, then flags
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
