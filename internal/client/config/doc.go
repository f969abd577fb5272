// Package config loads runtime configuration for the Matcha CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables, including a .env file in the working
//     directory (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   base URL of the backend server
//	-t int      request timeout (seconds)
//	-d string   path to the local sqlite database
//	-m string   registration mode (verify-email | auto-login)
//
// # JSON schema
//
// The JSON loader accepts durations either as strings like "3s" or as
// integer nanoseconds:
//
//	{
//	  "server_base_url": "http://127.0.0.1:8080",
//	  "request_timeout": "10s",
//	  "requests_per_second": 5,
//	  "database_path": "matcha.db",
//	  "registration_mode": "verify-email",
//	  "browse_cache_ttl": "30s"
//	}
//
// Environment variables use the MATCHA_ prefix: MATCHA_SERVER_URL,
// MATCHA_REQUEST_TIMEOUT, MATCHA_REQUESTS_PER_SECOND, MATCHA_DATABASE_PATH,
// MATCHA_REGISTRATION_MODE.
//
// Primary API
//
//   - type Config                     — holds the client's runtime settings
//   - func LoadConfig() *Config       — builds Config by applying all sources in order
//   - func (*Config) LoadDefaults()   — sets sensible defaults
package config
