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
		"server_base_url":     "https://matcha.example:9000",
		"request_timeout":     "25s",
		"requests_per_second": 2.5,
		"registration_mode":   "auto-login",
	})

	t.Run("loads from flags", func(t *testing.T) {
		os.Args = []string{"testbin", "-config", pathFlag}

		cfg := &Config{}
		cfg.LoadDefaults()
		parseJson(cfg)

		assert.Equal(t, "https://matcha.example:9000", cfg.ServerBaseURL)
		assert.Equal(t, 25*time.Second, cfg.RequestTimeout)
		assert.Equal(t, 2.5, cfg.RequestsPerSecond)
		assert.Equal(t, RegistrationAutoLogin, cfg.RegistrationMode)
		assert.Equal(t, "matcha.db", cfg.DatabasePath, "fields absent from JSON keep earlier values")
	})

	t.Run("no CONFIG and no flags means no changes", func(t *testing.T) {
		os.Args = []string{"testbin"}

		cfg := &Config{
			ServerBaseURL:  "defaults:1234",
			RequestTimeout: 42 * time.Second,
		}
		parseJson(cfg)

		assert.Equal(t, "defaults:1234", cfg.ServerBaseURL)
		assert.Equal(t, 42*time.Second, cfg.RequestTimeout)
	})

	t.Run("invalid JSON panics", func(t *testing.T) {
		bad := filepath.Join(dir, "bad.json")
		require.NoError(t, os.WriteFile(bad, []byte(`{ this is not valid json`), 0o600))

		os.Args = []string{"testbin", "-config", bad}

		cfg := &Config{}
		require.Panics(t, func() { parseJson(cfg) })
	})

	t.Run("integer nanosecond durations accepted", func(t *testing.T) {
		path := writeTempJSON(t, dir, "nanos.json", map[string]any{
			"request_timeout": float64(3 * time.Second),
		})
		os.Args = []string{"testbin", "-config", path}

		cfg := &Config{}
		parseJson(cfg)
		assert.Equal(t, 3*time.Second, cfg.RequestTimeout)
	})
}
