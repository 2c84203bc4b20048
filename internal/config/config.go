// Package config loads and validates the server configuration. The
// configuration is established once at startup and never mutated
// afterwards, so it is safe to read from concurrent tool invocations.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Limits on the per-request article ceiling.
const (
	DefaultMaxArticles = 3
	MinMaxArticles     = 1
	MaxMaxArticles     = 100

	minAPIKeyLength = 10

	defaultBaseURL = "https://medium2.p.rapidapi.com"
)

// Config holds the Medium MCP server configuration.
type Config struct {
	// RapidAPIKey authenticates against the Medium API on RapidAPI.
	// Loaded from the RAPIDAPI_KEY environment variable only, never
	// from the config file.
	RapidAPIKey string `yaml:"-"`

	// MaxArticlesPerRequest caps the number of articles returned by any
	// list-producing operation, independent of the caller-requested
	// count.
	MaxArticlesPerRequest int `yaml:"max_articles_per_request"`

	// BaseURL is the upstream Medium API endpoint. Overridable for
	// tests and proxies.
	BaseURL string `yaml:"base_url"`

	// LogLevel controls log verbosity (debug, info, warn, error).
	LogLevel string `yaml:"log_level"`
}

// Load builds the configuration from the optional YAML file named by
// MEDIUM_MCP_CONFIG, overlays environment variables on top, and
// validates the result.
//
// Environment variables:
//   - RAPIDAPI_KEY: required credential (min 10 characters after trim)
//   - MAX_ARTICLES_PER_REQUEST: article ceiling (default 3, range 1-100)
//   - MEDIUM_BASE_URL: upstream endpoint override
//   - LOG_LEVEL: log verbosity
func Load() (*Config, error) {
	cfg := &Config{
		MaxArticlesPerRequest: DefaultMaxArticles,
		BaseURL:               defaultBaseURL,
		LogLevel:              "info",
	}

	if path := os.Getenv("MEDIUM_MCP_CONFIG"); path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config file: %w", err)
		}
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config file: %w", err)
		}
	}

	cfg.RapidAPIKey = os.Getenv("RAPIDAPI_KEY")
	if v := os.Getenv("MAX_ARTICLES_PER_REQUEST"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			return nil, fmt.Errorf("invalid MAX_ARTICLES_PER_REQUEST %q: %w", v, err)
		}
		cfg.MaxArticlesPerRequest = parsed
	}
	if v := os.Getenv("MEDIUM_BASE_URL"); v != "" {
		cfg.BaseURL = v
	}
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cfg.RapidAPIKey = strings.TrimSpace(cfg.RapidAPIKey)

	return cfg, nil
}

// Validate checks configuration correctness. A failure here is a fatal
// startup condition.
func (c *Config) Validate() error {
	key := strings.TrimSpace(c.RapidAPIKey)
	if key == "" {
		return fmt.Errorf("RAPIDAPI_KEY environment variable is required")
	}
	if len(key) < minAPIKeyLength {
		return fmt.Errorf("RAPIDAPI_KEY must be at least %d characters long", minAPIKeyLength)
	}
	if c.MaxArticlesPerRequest < MinMaxArticles || c.MaxArticlesPerRequest > MaxMaxArticles {
		return fmt.Errorf("MAX_ARTICLES_PER_REQUEST must be between %d and %d", MinMaxArticles, MaxMaxArticles)
	}
	if strings.TrimSpace(c.BaseURL) == "" {
		return fmt.Errorf("base URL cannot be empty")
	}
	return nil
}
