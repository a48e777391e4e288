// internal/store/store.go
//
// Persistence for custom games: a short code mapped to a target canonical key.
// Backends:
//   - memory: process-local, lost on restart
//   - file:   a flat JSON object {code: key}, rewritten on every Put
//   - sqlite: the custom_games table
//
// Entries are written once and never mutated or expired.

// Package store holds custom-game code → target mappings.
package store

import (
	"context"
	"errors"
)

var (
	// ErrNotFound is returned by Get for an unknown code.
	ErrNotFound = errors.New("custom game not found")
	// ErrExists is returned by Put when the code is already taken.
	ErrExists = errors.New("custom game code already exists")
)

// CustomGames maps codes to target canonical keys.
type CustomGames interface {
	Get(ctx context.Context, code string) (string, error)
	Put(ctx context.Context, code, key string) error
}
