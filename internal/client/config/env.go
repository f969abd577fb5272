package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// parseEnv overlays cfg with environment variables, loading a .env file
// first when one exists in the working directory. A missing .env is
// fine; malformed numeric values are ignored in favor of the value the
// earlier stages produced.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("MATCHA_SERVER_URL"); v != "" {
		cfg.ServerBaseURL = v
	}
	if v := os.Getenv("MATCHA_REQUEST_TIMEOUT"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.RequestTimeout = d
		}
	}
	if v := os.Getenv("MATCHA_REQUESTS_PER_SECOND"); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.RequestsPerSecond = f
		}
	}
	if v := os.Getenv("MATCHA_DATABASE_PATH"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("MATCHA_REGISTRATION_MODE"); v != "" {
		cfg.RegistrationMode = RegistrationMode(v)
	}
	if v := os.Getenv("MATCHA_BROWSE_CACHE_TTL"); v != "" {
		if d, err := time.ParseDuration(v); err == nil {
			cfg.BrowseCacheTTL = d
		}
	}
}
