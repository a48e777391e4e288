package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "5175", cfg.Server.Port)
	assert.Equal(t, "http://localhost:5173", cfg.Server.ClientOrigin)
	assert.Equal(t, StoreSQLite, cfg.Custom.Store)
	assert.Equal(t, 5*time.Second, cfg.PokeAPI.Timeout)
	assert.Equal(t, 1, cfg.PokeAPI.Retries)
	assert.Equal(t, 14*24*time.Hour, cfg.Auth.TokenTTL())
	assert.Empty(t, cfg.Data.CatalogCSV)
}

func TestLoadFromEnv(t *testing.T) {
	t.Setenv("CONFIG_PATH", "")
	t.Setenv("PORT", "9000")
	t.Setenv("CUSTOM_STORE", "File")
	t.Setenv("CUSTOM_GAMES_FILE", "/tmp/games.json")
	t.Setenv("POKEAPI_TIMEOUT", "750ms")
	t.Setenv("JWT_EXPIRES_DAYS", "3")

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "9000", cfg.Server.Port)
	assert.Equal(t, StoreFile, cfg.Custom.Store)
	assert.Equal(t, "/tmp/games.json", cfg.Custom.File)
	assert.Equal(t, 750*time.Millisecond, cfg.PokeAPI.Timeout)
	assert.Equal(t, 3*24*time.Hour, cfg.Auth.TokenTTL())
}

func TestLoadFromYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte("server:\n  port: \"7000\"\ncustom:\n  store: memory\n"), 0o644))
	t.Setenv("CONFIG_PATH", path)

	cfg, err := Load()
	require.NoError(t, err)
	assert.Equal(t, "7000", cfg.Server.Port)
	assert.Equal(t, StoreMemory, cfg.Custom.Store)
}

func TestLoadMissingYAML(t *testing.T) {
	t.Setenv("CONFIG_PATH", filepath.Join(t.TempDir(), "nope.yaml"))
	_, err := Load()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	valid := func() Config {
		return Config{
			Server:   ServerConfig{Port: "5175"},
			Log:      LogConfig{Format: "json"},
			Custom:   CustomConfig{Store: "sqlite"},
			PokeAPI:  PokeAPIConfig{Timeout: time.Second, Retries: 1},
			Auth:     AuthConfig{JWTSecret: "s", JWTExpiresDays: 1},
			Database: DatabaseConfig{Path: "app.db"},
		}
	}

	cfg := valid()
	require.NoError(t, cfg.Validate())

	cases := map[string]func(*Config){
		"bad store":         func(c *Config) { c.Custom.Store = "redis" },
		"file without path": func(c *Config) { c.Custom.Store = "file"; c.Custom.File = "" },
		"zero timeout":      func(c *Config) { c.PokeAPI.Timeout = 0 },
		"negative retries":  func(c *Config) { c.PokeAPI.Retries = -1 },
		"empty secret":      func(c *Config) { c.Auth.JWTSecret = "" },
		"zero expiry":       func(c *Config) { c.Auth.JWTExpiresDays = 0 },
		"bad log format":    func(c *Config) { c.Log.Format = "xml" },
		"no db path":        func(c *Config) { c.Database.Path = "" },
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			c := valid()
			mutate(&c)
			assert.Error(t, c.Validate())
		})
	}
}
