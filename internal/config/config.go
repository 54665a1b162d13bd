package config

import (
	"fmt"
	"strings"
	"time"

	"go.lsp.dev/uri"

	"helperkit/internal/common"
	"helperkit/internal/fetcher"
)

// Config is the on-disk helperkit configuration
type Config struct {
	Fetcher    FetcherConfig    `yaml:"fetcher"`
	Region     RegionConfig     `yaml:"region"`
	Aggregator AggregatorConfig `yaml:"aggregator"`
	Logging    LoggingConfig    `yaml:"logging"`
}

// FetcherConfig controls the user list request
type FetcherConfig struct {
	Endpoint string        `yaml:"endpoint"`
	Timeout  time.Duration `yaml:"timeout"`
}

// RegionConfig holds the client location lookup URLs
type RegionConfig struct {
	RegionURL  string `yaml:"region_url"`
	CountryURL string `yaml:"country_url"`
}

// AggregatorConfig bounds concurrent task execution. Limit 0 is unbounded.
type AggregatorConfig struct {
	Limit int `yaml:"limit"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

// GetDefaultConfig returns the built-in configuration
func GetDefaultConfig() *Config {
	return &Config{
		Fetcher: FetcherConfig{
			Endpoint: fetcher.DefaultEndpoint,
			Timeout:  DefaultFetchTimeout,
		},
		Region: RegionConfig{
			RegionURL:  fetcher.DefaultRegionURL,
			CountryURL: fetcher.DefaultCountryURL,
		},
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
	}
}

// applyDefaults fills fields a partial file left empty
func (c *Config) applyDefaults() {
	defaults := GetDefaultConfig()
	if c.Fetcher.Endpoint == "" {
		c.Fetcher.Endpoint = defaults.Fetcher.Endpoint
	}
	if c.Region.RegionURL == "" {
		c.Region.RegionURL = defaults.Region.RegionURL
	}
	if c.Region.CountryURL == "" {
		c.Region.CountryURL = defaults.Region.CountryURL
	}
	if c.Logging.Level == "" {
		c.Logging.Level = defaults.Logging.Level
	}
}

// Validate checks endpoint URIs, bounds and the log level
func (c *Config) Validate() error {
	endpoints := map[string]string{
		"fetcher.endpoint":   c.Fetcher.Endpoint,
		"region.region_url":  c.Region.RegionURL,
		"region.country_url": c.Region.CountryURL,
	}
	for _, field := range []string{"fetcher.endpoint", "region.region_url", "region.country_url"} {
		if err := validateHTTPEndpoint(endpoints[field]); err != nil {
			return fmt.Errorf("%s: %w", field, err)
		}
	}

	if c.Fetcher.Timeout < 0 {
		return fmt.Errorf("fetcher.timeout cannot be negative: %v", c.Fetcher.Timeout)
	}
	if c.Aggregator.Limit < 0 {
		return fmt.Errorf("aggregator.limit cannot be negative: %d", c.Aggregator.Limit)
	}
	if _, ok := common.ParseLogLevel(c.Logging.Level); !ok {
		return fmt.Errorf("logging.level must be one of debug, info, warn, error: got %q", c.Logging.Level)
	}
	return nil
}

// LogLevel returns the configured level, defaulting to info
func (c *Config) LogLevel() common.LogLevel {
	level, _ := common.ParseLogLevel(c.Logging.Level)
	return level
}

// FetcherOptions translates the configuration into fetcher options
func (c *Config) FetcherOptions() []fetcher.Option {
	return []fetcher.Option{
		fetcher.WithEndpoint(c.Fetcher.Endpoint),
		fetcher.WithTimeout(c.Fetcher.Timeout),
		fetcher.WithRegionEndpoints(c.Region.RegionURL, c.Region.CountryURL),
	}
}

func validateHTTPEndpoint(endpoint string) error {
	if endpoint == "" {
		return fmt.Errorf("endpoint is required")
	}
	if _, err := uri.Parse(endpoint); err != nil {
		return fmt.Errorf("invalid endpoint %q: %w", endpoint, err)
	}
	if !strings.HasPrefix(endpoint, uri.HTTPScheme+"://") && !strings.HasPrefix(endpoint, uri.HTTPSScheme+"://") {
		return fmt.Errorf("endpoint %q must use http or https", endpoint)
	}
	return nil
}
