// internal/httpserver/routes_daily.go
//
// Daily-mode read endpoints:
//   - GET /daily/leaderboard?date=YYYY-MM-DD&timezone_offset=  top 20 for a date
//     (defaults to today in the caller's timezone)

package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/hlog"

	"github.com/robalobadob/pokedle/internal/daily"
)

const leaderboardSize = 20

func (s *Server) mountDaily(r chi.Router) {
	r.Route("/daily", func(r chi.Router) {
		r.Get("/leaderboard", s.handleLeaderboard)
	})
}

// lbRes is returned by /daily/leaderboard.
type lbRes struct {
	Date string        `json:"date"`
	Top  []daily.LBRow `json:"top"`
}

func (s *Server) handleLeaderboard(w http.ResponseWriter, r *http.Request) {
	date := r.URL.Query().Get("date")
	if date == "" {
		offset, ok := parseOffset(r.URL.Query().Get("timezone_offset"))
		if !ok {
			writeError(w, http.StatusBadRequest, "invalid timezone_offset")
			return
		}
		date = daily.DateKey(s.now(), offset)
	} else if _, err := daily.PreviousDateKey(date); err != nil {
		writeError(w, http.StatusBadRequest, "invalid date")
		return
	}
	rows, err := s.daily.Leaderboard(r.Context(), date, leaderboardSize)
	if err != nil {
		hlog.FromRequest(r).Error().Err(err).Msg("leaderboard")
		writeError(w, http.StatusInternalServerError, "server_error")
		return
	}
	writeJSON(w, http.StatusOK, lbRes{Date: date, Top: rows})
}
