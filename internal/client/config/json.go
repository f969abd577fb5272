package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/dmitrijs2005/matcha/internal/flagx"
)

// duration lets JSON specify intervals either as strings like "3s" or
// as integer nanoseconds.
type duration struct {
	time.Duration
}

func (d *duration) UnmarshalJSON(data []byte) error {
	var v any
	if err := json.Unmarshal(data, &v); err != nil {
		return err
	}
	switch value := v.(type) {
	case float64:
		d.Duration = time.Duration(value)
		return nil
	case string:
		parsed, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		d.Duration = parsed
		return nil
	default:
		return fmt.Errorf("invalid duration: %s", string(data))
	}
}

// jsonConfig is a DTO used exclusively for JSON unmarshalling; parsed
// values are copied into the runtime Config.
type jsonConfig struct {
	ServerBaseURL     *string   `json:"server_base_url"`
	RequestTimeout    *duration `json:"request_timeout"`
	RequestsPerSecond *float64  `json:"requests_per_second"`
	DatabasePath      *string   `json:"database_path"`
	RegistrationMode  *string   `json:"registration_mode"`
	BrowseCacheTTL    *duration `json:"browse_cache_ttl"`
}

// parseJson overlays cfg with values from the JSON file named by the
// -c/-config flags. Absent file means no overlay; a present but
// unreadable or malformed file panics (the caller cannot proceed on a
// config it asked for and did not get).
func parseJson(cfg *Config) {
	jsonConfigFile := flagx.ConfigFilePath()
	if jsonConfigFile == "" {
		return
	}

	data, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	if jc.ServerBaseURL != nil {
		cfg.ServerBaseURL = *jc.ServerBaseURL
	}
	if jc.RequestTimeout != nil {
		cfg.RequestTimeout = jc.RequestTimeout.Duration
	}
	if jc.RequestsPerSecond != nil {
		cfg.RequestsPerSecond = *jc.RequestsPerSecond
	}
	if jc.DatabasePath != nil {
		cfg.DatabasePath = *jc.DatabasePath
	}
	if jc.RegistrationMode != nil {
		cfg.RegistrationMode = RegistrationMode(*jc.RegistrationMode)
	}
	if jc.BrowseCacheTTL != nil {
		cfg.BrowseCacheTTL = jc.BrowseCacheTTL.Duration
	}
}
