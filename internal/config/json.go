package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// jsonConfig is a DTO used exclusively for JSON unmarshalling. Timeout is
// expressed in whole seconds so config files stay plain.
type jsonConfig struct {
	APIBaseURL            string `json:"api_base_url"`
	StatePath             string `json:"state_path"`
	RequestTimeoutSeconds int    `json:"request_timeout_seconds"`
}

// parseJSON overlays cfg with values from the JSON file at path. An empty
// path means no file is loaded. Only fields present in the file override
// the current values.
func parseJSON(cfg *Config, path string) error {
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config file: %w", err)
	}

	var jc jsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		return fmt.Errorf("parsing config file: %w", err)
	}

	if jc.APIBaseURL != "" {
		cfg.APIBaseURL = jc.APIBaseURL
	}
	if jc.StatePath != "" {
		cfg.StatePath = jc.StatePath
	}
	if jc.RequestTimeoutSeconds > 0 {
		cfg.RequestTimeout = time.Duration(jc.RequestTimeoutSeconds) * time.Second
	}
	return nil
}
