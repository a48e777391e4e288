package main

import (
	"context"
	"database/sql"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pokedle/internal/auth"
	"github.com/robalobadob/pokedle/internal/catalog"
	"github.com/robalobadob/pokedle/internal/config"
	"github.com/robalobadob/pokedle/internal/daily"
	"github.com/robalobadob/pokedle/internal/database"
	"github.com/robalobadob/pokedle/internal/game"
	"github.com/robalobadob/pokedle/internal/httpserver"
	"github.com/robalobadob/pokedle/internal/measure"
	"github.com/robalobadob/pokedle/internal/pokeapi"
	"github.com/robalobadob/pokedle/internal/store"
)

func main() {
	_ = godotenv.Load()
	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}
	setupLogging(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entries, err := catalog.Load(catalog.Sources{
		CuratedCSV:   cfg.Data.CatalogCSV,
		SpecialForms: cfg.Data.SpecialForms,
	})
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load catalog")
	}
	index := catalog.NewIndex(entries)

	cache, err := measure.LoadCache(cfg.Data.MeasurementCache)
	if err != nil {
		log.Warn().Err(err).Msg("measurement cache unavailable, continuing without it")
		cache = measure.NewCache(nil)
	}
	var api measure.LiveAPI
	if cfg.PokeAPI.Enabled {
		api = pokeapi.NewClient(cfg.PokeAPI.URL, cfg.PokeAPI.Timeout, cfg.PokeAPI.Retries)
	}

	db, err := database.OpenMigrated(ctx, cfg.Database.Path)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open database")
	}
	defer db.Close()

	custom, err := customStore(cfg.Custom, db)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to open custom game store")
	}

	svc := game.NewService(index, measure.NewResolver(cache, api), custom)
	sessions := auth.NewSessions(
		auth.NewUsers(db),
		auth.NewTokens(cfg.Auth.JWTSecret, cfg.Auth.TokenTTL()),
		cfg.Auth.CookieName,
		cfg.Auth.CookieSecure,
	)
	srv := httpserver.New(svc, daily.NewStore(db), sessions, httpserver.Options{
		ClientOrigin:   cfg.Server.ClientOrigin,
		PublicURL:      cfg.Server.PublicURL,
		RequestTimeout: cfg.Server.RequestTimeout,
	})

	log.Info().
		Str("port", cfg.Server.Port).
		Int("entries", index.Len()).
		Int("cached_measurements", cache.Len()).
		Str("custom_store", cfg.Custom.Store).
		Msg("starting pokedle server")
	if err := srv.Run(ctx, ":"+cfg.Server.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func setupLogging(c config.LogConfig) {
	if lvl, err := zerolog.ParseLevel(c.Level); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}
	zerolog.TimeFieldFormat = time.RFC3339
	if c.Format == "console" {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	}
}

// customStore picks the custom game backend. Validate has already normalized
// the store name.
func customStore(c config.CustomConfig, db *sql.DB) (store.CustomGames, error) {
	switch c.Store {
	case config.StoreMemory:
		return store.NewMemoryStore(), nil
	case config.StoreFile:
		return store.NewFileStore(c.File)
	default:
		return store.NewSQLiteStore(db), nil
	}
}
