// Package config loads server configuration from an optional YAML file
// with environment overrides on top.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Addr         string `yaml:"addr"`
	DatabasePath string `yaml:"database_path"`
	GeoJSONPath  string `yaml:"geojson_path"`

	RestCountries RestCountriesConfig `yaml:"restcountries"`

	// CompareLimit caps the side-by-side comparison width.
	CompareLimit int `yaml:"compare_limit"`

	// DefaultCountries seeds the comparison view when no selection is
	// given. Product configuration, not contract.
	DefaultCountries []string `yaml:"default_countries"`
}

type RestCountriesConfig struct {
	BaseURL string `yaml:"base_url"`
	Timeout string `yaml:"timeout"`

	// LookupBy is "code" or "name"; the deployed revisions disagreed,
	// so it stays configurable.
	LookupBy string `yaml:"lookup_by"`
}

func Default() *Config {
	return &Config{
		Addr:         ":8080",
		DatabasePath: "countries.db",
		GeoJSONPath:  "world.geojson",
		RestCountries: RestCountriesConfig{
			BaseURL:  "https://restcountries.com/v3.1",
			Timeout:  "10s",
			LookupBy: "code",
		},
		CompareLimit:     8,
		DefaultCountries: []string{"NLD", "GBR", "DEU"},
	}
}

// Load reads path when it exists and layers env overrides on top of the
// defaults. A missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err == nil {
			if err := yaml.Unmarshal(raw, cfg); err != nil {
				return nil, fmt.Errorf("parse config %s: %w", path, err)
			}
		} else if !os.IsNotExist(err) {
			return nil, err
		}
	}
	applyEnv(cfg)
	return cfg, nil
}

func applyEnv(cfg *Config) {
	if v := os.Getenv("WORLDSTATS_ADDR"); v != "" {
		cfg.Addr = v
	}
	if v := os.Getenv("WORLDSTATS_DB"); v != "" {
		cfg.DatabasePath = v
	}
	if v := os.Getenv("WORLDSTATS_GEOJSON"); v != "" {
		cfg.GeoJSONPath = v
	}
	if v := os.Getenv("WORLDSTATS_RESTCOUNTRIES_URL"); v != "" {
		cfg.RestCountries.BaseURL = v
	}
	if v := os.Getenv("WORLDSTATS_COMPARE_LIMIT"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.CompareLimit = n
		}
	}
	if v := os.Getenv("WORLDSTATS_DEFAULT_COUNTRIES"); v != "" {
		var codes []string
		for _, c := range strings.Split(v, ",") {
			if c = strings.TrimSpace(c); c != "" {
				codes = append(codes, c)
			}
		}
		cfg.DefaultCountries = codes
	}
}

// LookupTimeout parses the external-lookup timeout, falling back to 10s
// on anything unparsable.
func (r RestCountriesConfig) LookupTimeout() time.Duration {
	d, err := time.ParseDuration(r.Timeout)
	if err != nil || d <= 0 {
		return 10 * time.Second
	}
	return d
}
