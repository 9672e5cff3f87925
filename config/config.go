/*
Package config manages the TOML configuration of the cambio tools.
*/
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure.
type Config struct {
	Endpoints Endpoints `toml:"endpoints"`
	Timeout   Duration  `toml:"timeout"`
	Cache     bool      `toml:"cache"` // daily HTTP disk cache
	LogLevel  string    `toml:"log_level"`

	Database  string `toml:"database"`  // quotations SQLite file
	Watchlist string `toml:"watchlist"` // selected currencies YAML file

	From        string `toml:"from"`
	To          string `toml:"to"`
	ChartDays   int    `toml:"chart_days"`
	QuotesLimit int    `toml:"quotes_limit"`
}

// Endpoints are the remote services base URLs.
type Endpoints struct {
	RestCountries string `toml:"restcountries"`
	AwesomeAPI    string `toml:"awesomeapi"`
	ExchangeRate  string `toml:"exchangerate"`
	FlagCDN       string `toml:"flag_cdn"`
}

// Duration is a time.Duration written as text, e.g. "15s".
type Duration struct{ time.Duration }

func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

func (d Duration) MarshalText() ([]byte, error) { return []byte(d.String()), nil }

// Dir returns the cambio directory under the user's config dir.
func Dir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "cambio"), nil
}

// Default returns a Config with default values. Files are located in Dir, or in the
// working directory when it cannot be determined.
func Default() *Config {
	dir, err := Dir()
	if err != nil {
		log.Warnf("Failed to get config directory: %v. Using working directory...", err)
		dir = "."
	}
	return &Config{
		Endpoints: Endpoints{
			RestCountries: "https://restcountries.com/v3.1",
			AwesomeAPI:    "https://economia.awesomeapi.com.br",
			ExchangeRate:  "https://api.exchangerate.host",
			FlagCDN:       "https://flagcdn.com",
		},
		Timeout:     Duration{15 * time.Second},
		Cache:       true,
		LogLevel:    "warn",
		Database:    filepath.Join(dir, "cambio.db"),
		Watchlist:   filepath.Join(dir, "watchlist.yaml"),
		From:        "USD",
		To:          "BRL",
		ChartDays:   30,
		QuotesLimit: 10,
	}
}

// Load reads a TOML file over the defaults: missing keys keep their default value.
func Load(path string) (*Config, error) {
	c := Default()
	md, err := toml.DecodeFile(path, c)
	if err != nil {
		return nil, fmt.Errorf("cannot read config %q: %w", path, err)
	}
	for _, key := range md.Undecoded() {
		log.Warnf("Unknown config key %q in %s", key.String(), path)
	}
	if err := c.validate(); err != nil {
		return nil, fmt.Errorf("invalid config %q: %w", path, err)
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.Timeout.Duration <= 0 {
		return fmt.Errorf("timeout must be positive, got %v", c.Timeout)
	}
	if c.ChartDays <= 0 {
		return fmt.Errorf("chart_days must be positive, got %d", c.ChartDays)
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return err
	}
	return nil
}

// LoadWithPriority loads config with priority:
// 1. Custom path from the -config flag
// 2. Default path: [UserConfigDir]/cambio/config.toml
// 3. Builtin defaults
//
// It returns the path actually read, empty for the builtin defaults.
func LoadWithPriority(customPath string) (*Config, string) {
	if customPath != "" {
		c, err := Load(customPath)
		if err == nil {
			log.Debugf("Loaded config from custom path: %s", customPath)
			return c, customPath
		}
		log.Warnf("Failed to load custom config: %v. Trying default path...", err)
	}

	dir, err := Dir()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return Default(), ""
	}
	defaultPath := filepath.Join(dir, "config.toml")
	if _, err := os.Stat(defaultPath); err != nil {
		log.Debugf("No config at %s, using built-in defaults", defaultPath)
		return Default(), ""
	}
	c, err := Load(defaultPath)
	if err != nil {
		log.Warnf("Failed to load config at default path: %v. Using built-in defaults...", err)
		return Default(), ""
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return c, defaultPath
}
