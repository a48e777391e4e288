// internal/game/service.go
//
// Game orchestration for the HTTP layer.
// Responsibilities:
//   - Resolve guesses to catalog entries (canonical key, then default variant).
//   - Pick the target: custom code when it resolves, else the daily pick.
//   - Resolve measurements and compare.
//   - Create custom games with short random codes.
//
// Notes:
//   - Nothing here knows about HTTP; errors are sentinels matched by callers.
//   - The catalog index is immutable, so the service is safe for concurrent use.

// Package game implements guess checking and custom games on top of the catalog.
package game

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pokedle/internal/catalog"
	"github.com/robalobadob/pokedle/internal/compare"
	"github.com/robalobadob/pokedle/internal/daily"
	"github.com/robalobadob/pokedle/internal/measure"
	"github.com/robalobadob/pokedle/internal/names"
	"github.com/robalobadob/pokedle/internal/store"
)

var (
	// ErrUnknownPokemon means a name matched no catalog entry.
	ErrUnknownPokemon = errors.New("pokemon not found")
	// ErrEmptyName means no name was supplied.
	ErrEmptyName = errors.New("missing pokemon name")
	// ErrEmptyCatalog means there is nothing to pick a target from.
	ErrEmptyCatalog = errors.New("catalog is empty")
)

const codeAttempts = 3

// Service answers game requests against one catalog.
type Service struct {
	index    *catalog.Index
	resolver *measure.Resolver
	custom   store.CustomGames

	now     func() time.Time
	newCode func() string
}

func NewService(index *catalog.Index, resolver *measure.Resolver, custom store.CustomGames) *Service {
	return &Service{
		index:    index,
		resolver: resolver,
		custom:   custom,
		now:      time.Now,
		newCode:  newCode,
	}
}

// newCode returns 12 hex characters of a random UUID.
func newCode() string {
	return strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
}

// Index exposes the catalog index.
func (s *Service) Index() *catalog.Index { return s.index }

// Names lists autocomplete options.
func (s *Service) Names() []catalog.NameOption {
	return s.index.ListNamesForAutocomplete()
}

// ResolveGuess finds the entry a typed name refers to: the canonical key first,
// then the default variant of a bare species name.
func (s *Service) ResolveGuess(raw string) (catalog.Entry, error) {
	key := names.Canonicalize(raw)
	if key == "" {
		return catalog.Entry{}, ErrEmptyName
	}
	if e, ok := s.index.LookupByCanonical(key); ok {
		return e, nil
	}
	if def := names.ResolveDefault(key); def != key {
		if e, ok := s.index.LookupByCanonical(def); ok {
			return e, nil
		}
	}
	return catalog.Entry{}, fmt.Errorf("%w: %q", ErrUnknownPokemon, raw)
}

// Target returns the round a request plays. A custom code wins when it exists
// and its key is still in the catalog; anything else plays the daily target.
func (s *Service) Target(ctx context.Context, code string, offsetHours float64) (Round, error) {
	round := Round{DateKey: daily.DateKey(s.now(), offsetHours)}

	if code != "" && s.custom != nil {
		key, err := s.custom.Get(ctx, code)
		switch {
		case err == nil:
			if e, ok := s.index.LookupByCanonical(key); ok {
				round.Target, round.Custom, round.Code = e, true, code
				return round, nil
			}
			log.Warn().Str("code", code).Str("key", key).Msg("custom game target not in catalog")
		case errors.Is(err, store.ErrNotFound):
			log.Debug().Str("code", code).Msg("unknown custom game code")
		default:
			log.Warn().Err(err).Str("code", code).Msg("custom game lookup failed")
		}
	}

	if s.index.Len() == 0 {
		return round, ErrEmptyCatalog
	}
	round.Target = s.index.At(daily.Index(round.DateKey, s.index.Len()))
	return round, nil
}

// CheckGuess compares a guess with the round's target.
func (s *Service) CheckGuess(ctx context.Context, req CheckRequest) (Outcome, error) {
	guess, err := s.ResolveGuess(req.Guess)
	if err != nil {
		return Outcome{}, err
	}
	round, err := s.Target(ctx, req.Code, req.OffsetHours)
	if err != nil {
		return Outcome{}, err
	}

	gm := s.resolver.Resolve(ctx, guess)
	tm := s.resolver.Resolve(ctx, round.Target)
	return Outcome{
		Result:  compare.Compare(guess, round.Target, gm, tm),
		Round:   round,
		Correct: compare.Correct(guess, round.Target),
	}, nil
}

// CreateCustom stores a new custom game for the named target and returns its
// code.
func (s *Service) CreateCustom(ctx context.Context, rawName string) (string, catalog.Entry, error) {
	target, err := s.ResolveGuess(rawName)
	if err != nil {
		return "", catalog.Entry{}, err
	}
	for i := 0; i < codeAttempts; i++ {
		code := s.newCode()
		err := s.custom.Put(ctx, code, target.Key)
		if err == nil {
			log.Info().Str("code", code).Str("key", target.Key).Msg("custom game created")
			return code, target, nil
		}
		if !errors.Is(err, store.ErrExists) {
			return "", catalog.Entry{}, fmt.Errorf("store custom game: %w", err)
		}
	}
	return "", catalog.Entry{}, fmt.Errorf("store custom game: %w", store.ErrExists)
}
