// internal/game/types.go
//
// Request/response shapes of the game service.
//   - CheckRequest: one guess against the daily or a custom target.
//   - Round: the target a request plays against and where it came from.
//   - Outcome: the comparison plus whether the guess was correct.

package game

import (
	"github.com/robalobadob/pokedle/internal/catalog"
	"github.com/robalobadob/pokedle/internal/compare"
)

// CheckRequest is one guess. Code selects a custom game; an empty or unknown
// code plays the daily target for the player's timezone.
type CheckRequest struct {
	Guess       string
	OffsetHours float64
	Code        string
}

// Round identifies the target being played.
type Round struct {
	Target  catalog.Entry
	Custom  bool   // target came from a custom code
	Code    string // the custom code, when Custom
	DateKey string // the player's local date, always set
}

// Outcome is the result of CheckGuess.
type Outcome struct {
	Result  compare.Result
	Round   Round
	Correct bool
}
