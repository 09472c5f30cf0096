package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	require.NoError(t, err)

	assert.Equal(t, ":8080", cfg.Addr)
	assert.Equal(t, "countries.db", cfg.DatabasePath)
	assert.Equal(t, 8, cfg.CompareLimit)
	assert.Equal(t, "code", cfg.RestCountries.LookupBy)
	assert.Equal(t, []string{"NLD", "GBR", "DEU"}, cfg.DefaultCountries)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "worldstats.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
addr: ":9090"
database_path: /data/countries.db
compare_limit: 4
restcountries:
  base_url: http://localhost:8999
  timeout: 3s
  lookup_by: name
default_countries: [JPN, KOR]
`), 0o644))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, ":9090", cfg.Addr)
	assert.Equal(t, "/data/countries.db", cfg.DatabasePath)
	assert.Equal(t, 4, cfg.CompareLimit)
	assert.Equal(t, "name", cfg.RestCountries.LookupBy)
	assert.Equal(t, 3*time.Second, cfg.RestCountries.LookupTimeout())
	assert.Equal(t, []string{"JPN", "KOR"}, cfg.DefaultCountries)
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("WORLDSTATS_ADDR", ":7070")
	t.Setenv("WORLDSTATS_DB", "other.db")
	t.Setenv("WORLDSTATS_COMPARE_LIMIT", "2")
	t.Setenv("WORLDSTATS_DEFAULT_COUNTRIES", "USA, CAN")

	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, ":7070", cfg.Addr)
	assert.Equal(t, "other.db", cfg.DatabasePath)
	assert.Equal(t, 2, cfg.CompareLimit)
	assert.Equal(t, []string{"USA", "CAN"}, cfg.DefaultCountries)
}

func TestLookupTimeoutFallback(t *testing.T) {
	r := RestCountriesConfig{Timeout: "not-a-duration"}
	assert.Equal(t, 10*time.Second, r.LookupTimeout())
}
