// internal/auth/middleware.go
//
// Request identity.
//   - OptionalAuth decorates requests with the user when a valid token is
//     present and never rejects; used by the game routes.
//   - RequireAuth rejects requests without a valid token for a live user.
//   - Tokens come from "Authorization: Bearer" or the auth cookie.
//   - Guests get a stable anonymous id cookie so daily results can be
//     attributed and later claimed by an account.

package auth

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog/log"
)

// AnonCookieName holds the guest id.
const AnonCookieName = "pokedle_anon"

// Identity is the authenticated user placed in the request context.
type Identity struct {
	ID       string `json:"id"`
	Username string `json:"username"`
}

type ctxUserKey struct{}

// UserFrom returns the authenticated user, if any.
func UserFrom(ctx context.Context) (*Identity, bool) {
	u, ok := ctx.Value(ctxUserKey{}).(*Identity)
	return u, ok && u != nil
}

// WithUser returns ctx carrying u.
func WithUser(ctx context.Context, u *Identity) context.Context {
	return context.WithValue(ctx, ctxUserKey{}, u)
}

// Sessions ties token verification, cookies and the user repository together.
type Sessions struct {
	users      *Users
	tokens     *Tokens
	cookieName string
	secure     bool
}

func NewSessions(users *Users, tokens *Tokens, cookieName string, secure bool) *Sessions {
	return &Sessions{users: users, tokens: tokens, cookieName: cookieName, secure: secure}
}

func (s *Sessions) Users() *Users   { return s.users }
func (s *Sessions) Tokens() *Tokens { return s.tokens }

// identify resolves the request's token to a live user.
func (s *Sessions) identify(r *http.Request) (*Identity, error) {
	raw := s.bearerOrCookie(r)
	if raw == "" {
		return nil, ErrInvalidToken
	}
	claims, err := s.tokens.Parse(raw)
	if err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(r.Context(), claims.ID); err != nil {
		return nil, ErrInvalidToken
	}
	return &Identity{ID: claims.ID, Username: claims.Username}, nil
}

// OptionalAuth attaches the user when the token is valid.
func (s *Sessions) OptionalAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if u, err := s.identify(r); err == nil {
			r = r.WithContext(WithUser(r.Context(), u))
		}
		next.ServeHTTP(w, r)
	})
}

// RequireAuth answers 401 unless the token is valid.
func (s *Sessions) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		u, err := s.identify(r)
		if err != nil {
			log.Debug().Err(err).Msg("rejecting unauthenticated request")
			http.Error(w, `{"error":"Unauthorized"}`, http.StatusUnauthorized)
			return
		}
		next.ServeHTTP(w, r.WithContext(WithUser(r.Context(), u)))
	})
}

func (s *Sessions) bearerOrCookie(r *http.Request) string {
	if a := r.Header.Get("Authorization"); strings.HasPrefix(strings.ToLower(a), "bearer ") {
		return strings.TrimSpace(a[7:])
	}
	if c, err := r.Cookie(s.cookieName); err == nil {
		return c.Value
	}
	return ""
}

func (s *Sessions) sameSite() http.SameSite {
	if s.secure {
		return http.SameSiteNoneMode
	}
	return http.SameSiteLaxMode
}

// SetAuthCookie writes the session cookie.
func (s *Sessions) SetAuthCookie(w http.ResponseWriter, token string, exp time.Time) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    token,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: s.sameSite(),
		Expires:  exp,
	})
}

// ClearAuthCookie deletes the session cookie.
func (s *Sessions) ClearAuthCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     s.cookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: s.sameSite(),
		MaxAge:   -1,
	})
}

// EnsureAnonID returns the guest id cookie, setting a new one when missing.
func (s *Sessions) EnsureAnonID(w http.ResponseWriter, r *http.Request) string {
	if c, err := r.Cookie(AnonCookieName); err == nil && c.Value != "" {
		return c.Value
	}
	id := genID()
	http.SetCookie(w, &http.Cookie{
		Name:     AnonCookieName,
		Value:    id,
		Path:     "/",
		HttpOnly: true,
		Secure:   s.secure,
		SameSite: s.sameSite(),
		Expires:  time.Now().Add(180 * 24 * time.Hour),
	})
	return id
}

// PlayerID is the user id for signed-in requests, else the anonymous id.
func (s *Sessions) PlayerID(w http.ResponseWriter, r *http.Request) string {
	if u, ok := UserFrom(r.Context()); ok {
		return u.ID
	}
	return s.EnsureAnonID(w, r)
}

// genID creates a 22-char URL-safe random identifier.
func genID() string {
	var b [16]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}
