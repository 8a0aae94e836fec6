package config

import (
	"encoding/json"
	"fmt"
	"os"
	"time"
)

// Config holds converter settings that are not per-run inputs.
type Config struct {
	// Preview settings
	PreviewSize int `json:"preview_size"`
	Supersample int `json:"supersample"`

	// Network settings
	HTTPTimeoutSec int `json:"http_timeout_sec"`
}

// Load reads a JSON config file and returns Config.
// Fields not set in the file keep their zero values.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: read %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: parse %s: %w", path, err)
	}

	return cfg, nil
}

// Flags holds CLI flag values that override config file settings.
type Flags struct {
	PreviewSize int
	TimeoutSec  int
}

// Resolve applies flag overrides and fills remaining zero fields with
// defaults. CLI flags take priority when non-zero.
func (c *Config) Resolve(flags Flags) {
	if flags.PreviewSize > 0 {
		c.PreviewSize = flags.PreviewSize
	}
	if flags.TimeoutSec > 0 {
		c.HTTPTimeoutSec = flags.TimeoutSec
	}

	if c.PreviewSize <= 0 {
		c.PreviewSize = 256
	}
	if c.Supersample <= 0 {
		c.Supersample = 2
	}
	if c.HTTPTimeoutSec <= 0 {
		c.HTTPTimeoutSec = 30
	}
}

// HTTPTimeout returns the fetch timeout as a duration.
func (c *Config) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSec) * time.Second
}
