package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFlags(t *testing.T) {
	origArgs := os.Args
	t.Cleanup(func() { os.Args = origArgs })

	tests := []struct {
		name        string
		args        []string
		expectPanic bool
		check       func(t *testing.T, cfg *Config)
	}{
		{
			name: "overrides base URL, timeout and mode",
			args: []string{"cmd", "-a", "https://matcha.example", "-t", "30", "-m", "auto-login"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "https://matcha.example", cfg.ServerBaseURL)
				assert.Equal(t, 30*time.Second, cfg.RequestTimeout)
				assert.Equal(t, RegistrationAutoLogin, cfg.RegistrationMode)
			},
		},
		{
			name: "database path",
			args: []string{"cmd", "-d", "/tmp/alt.db"},
			check: func(t *testing.T, cfg *Config) {
				assert.Equal(t, "/tmp/alt.db", cfg.DatabasePath)
			},
		},
		{
			name:        "invalid timeout panics",
			args:        []string{"cmd", "-t", "abc"},
			expectPanic: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			os.Args = tt.args

			cfg := &Config{}
			cfg.LoadDefaults()

			if tt.expectPanic {
				require.Panics(t, func() { parseFlags(cfg) })
				return
			}
			require.NotPanics(t, func() { parseFlags(cfg) })
			tt.check(t, cfg)
		})
	}
}
