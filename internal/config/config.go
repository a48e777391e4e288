// Package config loads server settings from the environment, optionally layered
// over a YAML file named by CONFIG_PATH.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
)

// Config is the root server configuration. Env names match the ones the
// service has always read (PORT, JWT_SECRET, ...).
type Config struct {
	Server   ServerConfig   `yaml:"server"`
	Log      LogConfig      `yaml:"log"`
	Data     DataConfig     `yaml:"data"`
	Custom   CustomConfig   `yaml:"custom"`
	PokeAPI  PokeAPIConfig  `yaml:"pokeapi"`
	Auth     AuthConfig     `yaml:"auth"`
	Database DatabaseConfig `yaml:"database"`
}

type ServerConfig struct {
	Port           string        `yaml:"port"            env:"PORT"            env-default:"5175"`
	ClientOrigin   string        `yaml:"client_origin"   env:"CLIENT_ORIGIN"   env-default:"http://localhost:5173"`
	PublicURL      string        `yaml:"public_url"      env:"PUBLIC_URL"`
	RequestTimeout time.Duration `yaml:"request_timeout" env:"REQUEST_TIMEOUT" env-default:"10s"`
}

type LogConfig struct {
	Level  string `yaml:"level"  env:"LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"LOG_FORMAT" env-default:"json"`
}

// DataConfig points at the catalog feeds and the measurement dump. Empty paths
// use the embedded copies.
type DataConfig struct {
	CatalogCSV       string `yaml:"catalog_csv"       env:"CATALOG_CSV"`
	SpecialForms     string `yaml:"special_forms"     env:"SPECIAL_FORMS_FILE"`
	MeasurementCache string `yaml:"measurement_cache" env:"MEASUREMENT_CACHE_FILE"`
}

type CustomConfig struct {
	Store string `yaml:"store" env:"CUSTOM_STORE"      env-default:"sqlite"`
	File  string `yaml:"file"  env:"CUSTOM_GAMES_FILE" env-default:"./data/custom_games.json"`
}

type PokeAPIConfig struct {
	URL     string        `yaml:"url"     env:"POKEAPI_URL"     env-default:"https://pokeapi.co/api/v2"`
	Timeout time.Duration `yaml:"timeout" env:"POKEAPI_TIMEOUT" env-default:"5s"`
	Retries int           `yaml:"retries" env:"POKEAPI_RETRIES" env-default:"1"`
	Enabled bool          `yaml:"enabled" env:"POKEAPI_ENABLED" env-default:"true"`
}

type AuthConfig struct {
	JWTSecret      string `yaml:"jwt_secret"       env:"JWT_SECRET"       env-default:"dev_secret_change_me"`
	JWTExpiresDays int    `yaml:"jwt_expires_days" env:"JWT_EXPIRES_DAYS" env-default:"14"`
	CookieName     string `yaml:"cookie_name"      env:"COOKIE_NAME"      env-default:"pokedle_token"`
	CookieSecure   bool   `yaml:"cookie_secure"    env:"COOKIE_SECURE"    env-default:"false"`
}

type DatabaseConfig struct {
	Path string `yaml:"path" env:"DB_PATH" env-default:"./data/app.db"`
}

// Custom store backends.
const (
	StoreMemory = "memory"
	StoreFile   = "file"
	StoreSQLite = "sqlite"
)

// Load reads CONFIG_PATH (when set) and then the environment, which wins.
func Load() (*Config, error) {
	var cfg Config
	if path := os.Getenv("CONFIG_PATH"); path != "" {
		if err := cleanenv.ReadConfig(path, &cfg); err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
	} else if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("config: read env: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: validate: %w", err)
	}
	return &cfg, nil
}

// Validate checks value ranges and normalizes enumerations.
func (c *Config) Validate() error {
	var errs []error

	c.Custom.Store = strings.ToLower(strings.TrimSpace(c.Custom.Store))
	switch c.Custom.Store {
	case StoreMemory, StoreSQLite:
	case StoreFile:
		if c.Custom.File == "" {
			errs = append(errs, errors.New("CUSTOM_GAMES_FILE is required for the file store"))
		}
	default:
		errs = append(errs, fmt.Errorf("CUSTOM_STORE must be memory, file or sqlite, got %q", c.Custom.Store))
	}

	if c.Server.Port == "" {
		errs = append(errs, errors.New("PORT is required"))
	}
	if c.PokeAPI.Timeout <= 0 {
		errs = append(errs, errors.New("POKEAPI_TIMEOUT must be positive"))
	}
	if c.PokeAPI.Retries < 0 {
		errs = append(errs, errors.New("POKEAPI_RETRIES must not be negative"))
	}
	if c.Auth.JWTSecret == "" {
		errs = append(errs, errors.New("JWT_SECRET is required"))
	}
	if c.Auth.JWTExpiresDays <= 0 {
		errs = append(errs, errors.New("JWT_EXPIRES_DAYS must be positive"))
	}
	if c.Database.Path == "" {
		errs = append(errs, errors.New("DB_PATH is required"))
	}

	c.Log.Format = strings.ToLower(c.Log.Format)
	switch c.Log.Format {
	case "json", "console":
	default:
		errs = append(errs, fmt.Errorf("LOG_FORMAT must be json or console, got %q", c.Log.Format))
	}
	return errors.Join(errs...)
}

// TokenTTL is the lifetime of issued auth tokens.
func (c AuthConfig) TokenTTL() time.Duration {
	return time.Duration(c.JWTExpiresDays) * 24 * time.Hour
}
