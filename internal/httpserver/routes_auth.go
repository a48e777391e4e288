// internal/httpserver/routes_auth.go
//
// Accounts:
//   - POST /auth/signup, /auth/login  set the session cookie and claim the
//     caller's anonymous daily history
//   - POST /auth/logout               clear the session cookie
//   - GET  /auth/me, /stats/me        require auth

package httpserver

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/pokedle/internal/auth"
	"github.com/robalobadob/pokedle/internal/daily"
)

type credentialsReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (s *Server) mountAuthRoutes() {
	s.r.Post("/auth/signup", s.handleSignup)
	s.r.Post("/auth/login", s.handleLogin)
	s.r.Post("/auth/logout", s.handleLogout)

	s.r.With(s.sessions.RequireAuth).Get("/auth/me", func(w http.ResponseWriter, r *http.Request) {
		me, _ := auth.UserFrom(r.Context())
		writeJSON(w, http.StatusOK, me)
	})
	s.r.With(s.sessions.RequireAuth).Get("/stats/me", s.handleStats)
}

func (s *Server) handleSignup(w http.ResponseWriter, r *http.Request) {
	var body credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	u, err := s.sessions.Users().Create(r.Context(), body.Username, body.Password)
	var verr *auth.ValidationError
	switch {
	case errors.Is(err, auth.ErrUsernameTaken):
		writeError(w, http.StatusConflict, "Username taken")
		return
	case errors.As(err, &verr):
		writeError(w, http.StatusBadRequest, verr.Error())
		return
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Msg("signup")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if !s.startSession(w, r, u) {
		return
	}
	writeJSON(w, http.StatusOK, u)
}

func (s *Server) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body credentialsReq
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json")
		return
	}
	u, err := s.sessions.Users().Authenticate(r.Context(), body.Username, body.Password)
	switch {
	case errors.Is(err, auth.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
		return
	case err != nil:
		hlog.FromRequest(r).Error().Err(err).Msg("login")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	if !s.startSession(w, r, u) {
		return
	}
	writeJSON(w, http.StatusOK, map[string]string{"id": u.ID, "username": u.Username})
}

// startSession sets the auth cookie and moves the guest history to the user.
func (s *Server) startSession(w http.ResponseWriter, r *http.Request, u *auth.User) bool {
	tok, exp, err := s.sessions.Tokens().Sign(u.ID, u.Username)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("sign token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return false
	}
	s.sessions.SetAuthCookie(w, tok, exp)
	if c, err := r.Cookie(auth.AnonCookieName); err == nil && c.Value != "" {
		if err := s.daily.ClaimAnonymous(r.Context(), c.Value, u.ID); err != nil {
			hlog.FromRequest(r).Warn().Err(err).Msg("claim anonymous history")
		}
	}
	return true
}

func (s *Server) handleLogout(w http.ResponseWriter, r *http.Request) {
	s.sessions.ClearAuthCookie(w)
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (s *Server) handleStats(w http.ResponseWriter, r *http.Request) {
	me, _ := auth.UserFrom(r.Context())
	offset, ok := parseOffset(r.URL.Query().Get("timezone_offset"))
	if !ok {
		writeError(w, http.StatusBadRequest, "invalid timezone_offset")
		return
	}
	st, err := s.daily.Stats(r.Context(), me.ID, daily.DateKey(s.now(), offset))
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("stats")
		writeError(w, http.StatusInternalServerError, "db_error")
		return
	}
	writeJSON(w, http.StatusOK, struct {
		ID string `json:"id"`
		daily.Stats
	}{ID: me.ID, Stats: st})
}
