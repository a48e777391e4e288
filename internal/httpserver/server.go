// internal/httpserver/server.go
//
// HTTP server wiring for the pokedle backend.
// Responsibilities:
//   - Router + middleware (request IDs, access log, panic recovery, timeouts,
//     JSON content type, credentialed CORS).
//   - Diagnostics: "/", "/health".
//   - Game routes (optional auth): /pokemon_names, /check_guess,
//     /pokemon_of_the_day, /custom_game, /custom.
//   - Daily leaderboard, accounts and stats.
//
// Notes:
//   - Errors are JSON bodies {"error": "..."}.
//   - Optional auth decorates requests with the user when a valid token is
//     present; guests play with an anonymous cookie id.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/hlog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pokedle/internal/auth"
	"github.com/robalobadob/pokedle/internal/daily"
	"github.com/robalobadob/pokedle/internal/game"
)

// Options are the server's tunables.
type Options struct {
	ClientOrigin   string
	PublicURL      string // base for custom game links; derived from the request when empty
	RequestTimeout time.Duration
}

// Server bundles the router and its collaborators.
type Server struct {
	r        *chi.Mux
	game     *game.Service
	daily    *daily.Store
	sessions *auth.Sessions
	opts     Options
	now      func() time.Time
}

// New constructs a Server, installs middleware and registers routes.
func New(svc *game.Service, dailyStore *daily.Store, sessions *auth.Sessions, opts Options) *Server {
	if opts.RequestTimeout <= 0 {
		opts.RequestTimeout = 10 * time.Second
	}
	if opts.ClientOrigin == "" {
		opts.ClientOrigin = "http://localhost:5173"
	}
	s := &Server{
		r:        chi.NewRouter(),
		game:     svc,
		daily:    dailyStore,
		sessions: sessions,
		opts:     opts,
		now:      time.Now,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)
	s.r.Use(chimw.RealIP)
	s.r.Use(hlog.NewHandler(log.Logger))
	s.r.Use(hlog.AccessHandler(accessLog))
	s.r.Use(chimw.Recoverer)
	s.r.Use(chimw.Timeout(opts.RequestTimeout))
	s.r.Use(jsonContentType)
	s.r.Use(s.cors)

	// --- diagnostics ---
	s.r.Get("/", s.handleHome)
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.mountGame(s.r.With(sessions.OptionalAuth))
	s.mountDaily(s.r)
	s.mountAuthRoutes()

	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "not_found", "path": r.URL.Path})
	})
	return s
}

// Router exposes the router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// Run serves on addr until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.r,
		ReadHeaderTimeout: 5 * time.Second,
	}
	errCh := make(chan error, 1)
	go func() { errCh <- srv.ListenAndServe() }()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}
	log.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errCh; !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// handleHome serves diagnostics, or creates a custom game for ?custom=NAME and
// redirects to its link.
func (s *Server) handleHome(w http.ResponseWriter, r *http.Request) {
	if name := r.URL.Query().Get("custom"); name != "" {
		s.redirectToCustom(w, r, name)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"service": "pokedle-go",
		"entries": s.game.Index().Len(),
		"endpoints": []string{
			"/health", "GET /pokemon_names", "POST /check_guess", "GET /pokemon_of_the_day",
			"POST /custom_game", "GET /custom", "GET /daily/leaderboard", "/auth/*", "GET /stats/me",
		},
	})
}

// ----------------------------- middleware ----------------------------------

func accessLog(r *http.Request, status, size int, duration time.Duration) {
	level := zerolog.InfoLevel
	if status >= 500 {
		level = zerolog.ErrorLevel
	}
	hlog.FromRequest(r).WithLevel(level).
		Str("request_id", chimw.GetReqID(r.Context())).
		Str("method", r.Method).
		Str("path", r.URL.Path).
		Int("status", status).
		Int("size", size).
		Dur("duration", duration).
		Msg("request")
}

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// cors enables credentialed CORS for the configured client origin.
func (s *Server) cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Vary", "Origin")
		w.Header().Set("Access-Control-Allow-Origin", s.opts.ClientOrigin)
		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------------- helpers -----------------------------------

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Warn().Err(err).Msg("encode response")
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}
