// Package config loads the ingest job configuration.
package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds the ingest job configuration.
type Config struct {
	Ingest struct {
		// Cron is a cron spec (with seconds) for scheduled ingestion.
		// Empty means run once and exit.
		Cron string `yaml:"cron"`
		// Outputsize is the number of bars fetched per symbol and interval.
		Outputsize int `yaml:"outputsize"`
		// RateLimit is the maximum number of API calls per minute.
		RateLimit int `yaml:"rate_limit"`
	} `yaml:"ingest"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
// A missing file is not an error: defaults and environment variables apply.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("INGEST_CRON"); v != "" {
		cfg.Ingest.Cron = v
	}
	if v := os.Getenv("INGEST_OUTPUTSIZE"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Ingest.Outputsize = n
		}
	}
	if v := os.Getenv("INGEST_RATE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.Ingest.RateLimit = n
		}
	}

	// Defaults
	if cfg.Ingest.Outputsize == 0 {
		cfg.Ingest.Outputsize = 200
	}
	if cfg.Ingest.RateLimit == 0 {
		// 無料プランのAPIレート制限に合わせた控えめな既定値
		cfg.Ingest.RateLimit = 5
	}

	return cfg, nil
}

// Validate checks that all fields are usable.
func (c *Config) Validate() error {
	if c.Ingest.Outputsize < 0 {
		return fmt.Errorf("ingest.outputsize must not be negative")
	}
	if c.Ingest.RateLimit <= 0 {
		return fmt.Errorf("ingest.rate_limit must be positive")
	}
	return nil
}
