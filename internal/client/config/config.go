// Package config handles configuration for the Matcha client: defaults,
// an optional JSON file, .env/environment variables, and command-line
// flags, each later source overriding the earlier ones.
package config

import "time"

// RegistrationMode decides what a successful registration does to the
// session.
type RegistrationMode string

const (
	// RegistrationVerifyEmail leaves the session untouched: the account
	// must confirm its e-mail before the first login.
	RegistrationVerifyEmail RegistrationMode = "verify-email"
	// RegistrationAutoLogin establishes the session straight from the
	// register response.
	RegistrationAutoLogin RegistrationMode = "auto-login"
)

// Config holds runtime settings for the Matcha client.
//
// Fields:
//   - ServerBaseURL: base URL of the backend HTTP API.
//   - RequestTimeout: per-request timeout applied by the gateway.
//   - RequestsPerSecond: outbound rate limit; <= 0 disables it.
//   - DatabasePath: sqlite file holding the durable session token.
//   - RegistrationMode: see RegistrationMode.
//   - BrowseCacheTTL: how long browse/profile responses stay cached.
type Config struct {
	ServerBaseURL     string
	RequestTimeout    time.Duration
	RequestsPerSecond float64
	DatabasePath      string
	RegistrationMode  RegistrationMode
	BrowseCacheTTL    time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerBaseURL = "http://127.0.0.1:8080"
	c.RequestTimeout = 10 * time.Second
	c.RequestsPerSecond = 5
	c.DatabasePath = "matcha.db"
	c.RegistrationMode = RegistrationVerifyEmail
	c.BrowseCacheTTL = 30 * time.Second
}

// LoadConfig constructs a Config, applies defaults, then overlays values
// from JSON (if present), the environment (including a .env file), and
// command-line flags. Later sources take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
