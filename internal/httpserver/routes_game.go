// internal/httpserver/routes_game.go
//
// Game endpoints (optional auth; guests can play):
//   - GET  /pokemon_names        autocomplete options
//   - POST /check_guess          compare a guess with the daily or custom target
//   - GET  /pokemon_of_the_day   reveal the current target
//   - POST /custom_game          create a custom game, returns {code, link}
//   - GET  /custom?name=         create a custom game and redirect to it
//
// Daily rounds (no custom code) count attempts per player and record the first
// correct guess; custom rounds are not recorded.

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/pokedle/internal/catalog"
	"github.com/robalobadob/pokedle/internal/game"
)

func (s *Server) mountGame(r chi.Router) {
	r.Get("/pokemon_names", s.handleNames)
	r.Post("/check_guess", s.handleCheckGuess)
	r.Get("/pokemon_of_the_day", s.handlePokemonOfTheDay)
	r.Post("/custom_game", s.handleCreateCustom)
	r.Get("/custom", func(w http.ResponseWriter, r *http.Request) {
		s.redirectToCustom(w, r, r.URL.Query().Get("name"))
	})
}

// namesRes is returned by /pokemon_names.
type namesRes struct {
	Names []catalog.NameOption `json:"names"`
}

func (s *Server) handleNames(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, namesRes{Names: s.game.Names()})
}

// checkGuessReq is the POST /check_guess payload.
type checkGuessReq struct {
	Guess          string   `json:"guess"`
	TimezoneOffset *float64 `json:"timezone_offset"`
	Game           string   `json:"game"`
}

func (s *Server) handleCheckGuess(w http.ResponseWriter, r *http.Request) {
	var req checkGuessReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	code := req.Game
	if code == "" {
		code = r.URL.Query().Get("game")
	}
	var offset float64
	if req.TimezoneOffset != nil {
		offset = *req.TimezoneOffset
	}

	out, err := s.game.CheckGuess(r.Context(), game.CheckRequest{
		Guess:       req.Guess,
		OffsetHours: offset,
		Code:        code,
	})
	switch {
	case errors.Is(err, game.ErrEmptyName):
		writeError(w, http.StatusBadRequest, "Missing guess")
		return
	case errors.Is(err, game.ErrUnknownPokemon):
		writeError(w, http.StatusNotFound, "Pokemon not found.")
		return
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Msg("check guess")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}

	if !out.Round.Custom {
		s.recordDaily(w, r, out)
	}
	writeJSON(w, http.StatusOK, out.Result)
}

// recordDaily counts the attempt and, for a correct guess, the daily result.
// Failures are logged and never fail the request.
func (s *Server) recordDaily(w http.ResponseWriter, r *http.Request, out game.Outcome) {
	player := s.sessions.PlayerID(w, r)
	logger := hlog.FromRequest(r).With().Str("player", player).Str("date", out.Round.DateKey).Logger()

	if _, err := s.daily.RecordAttempt(r.Context(), player, out.Round.DateKey, s.now()); err != nil {
		logger.Warn().Err(err).Msg("record daily attempt")
		return
	}
	if !out.Correct {
		return
	}
	res, first, err := s.daily.Solve(r.Context(), player, out.Round.DateKey, out.Round.Target.Key, s.now())
	if err != nil {
		logger.Warn().Err(err).Msg("record daily result")
		return
	}
	if first {
		logger.Info().Int("guesses", res.Guesses).Int64("elapsed_ms", res.ElapsedMs).Msg("daily solved")
	}
}

func (s *Server) handlePokemonOfTheDay(w http.ResponseWriter, r *http.Request) {
	offset, ok := parseOffset(r.URL.Query().Get("timezone_offset"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid timezone_offset")
		return
	}
	round, err := s.game.Target(r.Context(), r.URL.Query().Get("game"), offset)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("pick target")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"name": round.Target.RawName})
}

func parseOffset(v string) (float64, bool) {
	if v == "" {
		return 0, true
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, false
	}
	return f, true
}

type customGameReq struct {
	Pokemon string `json:"pokemon"`
}

type customGameRes struct {
	Code string `json:"code"`
	Link string `json:"link"`
}

func (s *Server) handleCreateCustom(w http.ResponseWriter, r *http.Request) {
	var req customGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}
	code, _, err := s.game.CreateCustom(r.Context(), req.Pokemon)
	switch {
	case errors.Is(err, game.ErrEmptyName):
		writeError(w, http.StatusBadRequest, "Missing Pokémon name")
		return
	case errors.Is(err, game.ErrUnknownPokemon):
		writeError(w, http.StatusNotFound, "Pokémon not found")
		return
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Msg("create custom game")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, customGameRes{Code: code, Link: s.gameLink(r, code)})
}

// redirectToCustom creates a custom game for name and redirects to its link. An
// unknown name redirects home.
func (s *Server) redirectToCustom(w http.ResponseWriter, r *http.Request, name string) {
	code, _, err := s.game.CreateCustom(r.Context(), name)
	if err != nil {
		if !errors.Is(err, game.ErrUnknownPokemon) && !errors.Is(err, game.ErrEmptyName) {
			hlog.FromRequest(r).Error().Err(err).Msg("create custom game")
		}
		http.Redirect(w, r, s.baseURL(r)+"/", http.StatusFound)
		return
	}
	http.Redirect(w, r, s.gameLink(r, code), http.StatusFound)
}

func (s *Server) gameLink(r *http.Request, code string) string {
	return s.baseURL(r) + "/?game=" + url.QueryEscape(code)
}

func (s *Server) baseURL(r *http.Request) string {
	if s.opts.PublicURL != "" {
		return strings.TrimRight(s.opts.PublicURL, "/")
	}
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if p := r.Header.Get("X-Forwarded-Proto"); p != "" {
		scheme = p
	}
	return scheme + "://" + r.Host
}
