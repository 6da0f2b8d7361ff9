// Package config holds runtime settings for the Judix CLI and their
// layered loading: defaults, then an optional JSON file, then environment
// variables. Command-line flags are applied on top by the command layer.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds runtime settings for the Judix CLI.
//
// Fields:
//   - APIBaseURL: root of the backend REST API, including the version prefix.
//   - StatePath: location of the local SQLite state file (token, cached user).
//   - RequestTimeout: cap on the total duration of each API request.
type Config struct {
	APIBaseURL     string
	StatePath      string
	RequestTimeout time.Duration
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIBaseURL = "http://localhost:8080/api/v1/"
	c.StatePath = "judix.db"
	c.RequestTimeout = 15 * time.Second
}

// Load constructs a Config: defaults, overlaid with the JSON file at path
// (when non-empty), overlaid with environment variables. Later sources take
// precedence over earlier ones.
func Load(path string) (*Config, error) {
	cfg := &Config{}
	cfg.LoadDefaults()
	if err := parseJSON(cfg, path); err != nil {
		return nil, err
	}
	parseEnv(cfg)
	return cfg, nil
}

// parseEnv overlays Config with environment variables. A .env file in the
// working directory is loaded first when present.
//
//	JUDIX_API_BASE_URL     — backend base URL
//	JUDIX_STATE_PATH       — state file location
//	JUDIX_REQUEST_TIMEOUT  — request timeout in seconds
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	if v := os.Getenv("JUDIX_API_BASE_URL"); v != "" {
		cfg.APIBaseURL = v
	}
	if v := os.Getenv("JUDIX_STATE_PATH"); v != "" {
		cfg.StatePath = v
	}
	if v := os.Getenv("JUDIX_REQUEST_TIMEOUT"); v != "" {
		if secs, err := strconv.Atoi(v); err == nil && secs > 0 {
			cfg.RequestTimeout = time.Duration(secs) * time.Second
		}
	}
}

// Validate rejects configurations the client cannot run with.
func (c *Config) Validate() error {
	if c.APIBaseURL == "" {
		return fmt.Errorf("api base url must not be empty")
	}
	if c.StatePath == "" {
		return fmt.Errorf("state path must not be empty")
	}
	if c.RequestTimeout <= 0 {
		return fmt.Errorf("request timeout must be positive, got %s", c.RequestTimeout)
	}
	return nil
}
