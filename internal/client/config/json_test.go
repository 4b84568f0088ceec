package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, dir, name string, data map[string]any) string {
	t.Helper()
	if dir == "" {
		dir = t.TempDir()
	}
	if name == "" {
		name = "cfg.json"
	}
	path := filepath.Join(dir, name)
	b, err := json.Marshal(data)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(path, b, 0o600))
	return path
}

func Test_parseJson_SourcesAndPrecedence(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	dir := t.TempDir()
	pathFlag := writeTempJSON(t, dir, "flag.json", map[string]any{
		"api_base_url":    "http://archive.example/api/v1",
		"vault_path":      "/tmp/flag-vault.db",
		"search_debounce": "150ms",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		parseJson(cfg)

		assert.Equal(t, "http://archive.example/api/v1", cfg.APIBaseURL)
		assert.Equal(t, "/tmp/flag-vault.db", cfg.VaultPath)
		assert.Equal(t, 150*time.Millisecond, cfg.SearchDebounce)
	})

	t.Run("no config flag → no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			APIBaseURL:     "http://defaults.example/api/v1",
			VaultPath:      "defaults.db",
			SearchDebounce: 42 * time.Second,
		}
		parseJson(cfg)

		assert.Equal(t, "http://defaults.example/api/v1", cfg.APIBaseURL)
		assert.Equal(t, "defaults.db", cfg.VaultPath)
		assert.Equal(t, 42*time.Second, cfg.SearchDebounce)
	})

	t.Run("missing fields keep earlier values", func(t *testing.T) {
		partial := writeTempJSON(t, dir, "partial.json", map[string]any{
			"api_base_url": "http://partial.example/api/v1",
		})
		os.Args = []string{"testbin", "-c", partial}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "http://partial.example/api/v1", cfg.APIBaseURL)
		assert.Equal(t, "holocron.db", cfg.VaultPath)
		assert.Equal(t, 300*time.Millisecond, cfg.SearchDebounce)
	})

	t.Run("invalid JSON → panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})
}
