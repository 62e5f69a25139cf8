// Package config loads runtime settings from the environment.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"

	"github.com/pfrederiksen/sports-events/internal/aggregator"
	"github.com/pfrederiksen/sports-events/internal/sportsdb"
	"github.com/pfrederiksen/sports-events/internal/view"
)

// Bounds applied by Sanitize.
const (
	MaxConcurrency = 16
	MaxPageSize    = 100
)

// SportsDBConfig configures the TheSportsDB client.
type SportsDBConfig struct {
	BaseURL string `env:"SPORTSDB_BASE_URL" envDefault:"https://www.thesportsdb.com/api/v1/json"`
	APIKey  string `env:"SPORTSDB_API_KEY" envDefault:"123"`
	Season  string `env:"SPORTSDB_SEASON" envDefault:"2024-2025"`

	// Timeout bounds each request; 0 leaves requests unbounded.
	Timeout time.Duration `env:"SPORTSDB_TIMEOUT" envDefault:"0s"`
}

// Config is the application configuration.
type Config struct {
	SportsDB SportsDBConfig

	// Concurrency is the number of league fetches in flight; 1 fetches sequentially.
	Concurrency int `env:"FETCH_CONCURRENCY" envDefault:"4"`

	PageSize int    `env:"PAGE_SIZE" envDefault:"12"`
	HTTPAddr string `env:"HTTP_ADDR" envDefault:":8080"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"INFO"`
	// LogFile enables rotated file logging instead of stdout.
	LogFile string `env:"LOG_FILE"`

	// TZName is the IANA zone used for "today"; empty means the host's local zone.
	TZName string `env:"TZ_NAME"`
}

// Load reads an optional .env file and parses the environment.
// Missing env files are not an error.
func Load(envFiles ...string) (Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		var pathErr *os.PathError
		if !errors.As(err, &pathErr) {
			return Config{}, fmt.Errorf("load .env file: %w", err)
		}
	}

	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}

	cfg.Sanitize()
	return cfg, nil
}

// Sanitize applies guardrails to values loaded from env or flags.
func (c *Config) Sanitize() {
	if c.Concurrency < 1 {
		c.Concurrency = aggregator.DefaultConcurrency
	}
	if c.Concurrency > MaxConcurrency {
		c.Concurrency = MaxConcurrency
	}

	if c.PageSize < 1 {
		c.PageSize = view.DefaultPageSize
	}
	if c.PageSize > MaxPageSize {
		c.PageSize = MaxPageSize
	}

	if c.SportsDB.Timeout < 0 {
		c.SportsDB.Timeout = 0
	}

	c.SportsDB.BaseURL = strings.TrimRight(strings.TrimSpace(c.SportsDB.BaseURL), "/")
	if c.SportsDB.BaseURL == "" {
		c.SportsDB.BaseURL = sportsdb.DefaultBaseURL
	}
	if strings.TrimSpace(c.SportsDB.APIKey) == "" {
		c.SportsDB.APIKey = sportsdb.DefaultAPIKey
	}
	if strings.TrimSpace(c.SportsDB.Season) == "" {
		c.SportsDB.Season = sportsdb.DefaultSeason
	}

	c.LogLevel = strings.ToUpper(strings.TrimSpace(c.LogLevel))
	if c.HTTPAddr == "" {
		c.HTTPAddr = ":8080"
	}
}

// Location resolves TZName.
func (c Config) Location() (*time.Location, error) {
	if c.TZName == "" {
		return time.Local, nil
	}
	loc, err := time.LoadLocation(c.TZName)
	if err != nil {
		return nil, fmt.Errorf("loading time zone %q: %w", c.TZName, err)
	}
	return loc, nil
}
