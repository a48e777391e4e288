// Package compare scores a guess against the target on generation, types and
// weight.
package compare

import (
	"github.com/robalobadob/pokedle/internal/catalog"
	"github.com/robalobadob/pokedle/internal/measure"
	"github.com/robalobadob/pokedle/internal/names"
)

// Result is the per-guess feedback sent to clients. The boolean fields are the
// match flags; the rest pass guess and target details through for display.
type Result struct {
	Name                   string             `json:"name"`
	GenerationMatch        bool               `json:"generation"`
	GenerationNumber       catalog.Generation `json:"generation_number"`
	TargetGenerationNumber catalog.Generation `json:"target_generation_number"`
	Type1Match             bool               `json:"type1"`
	Type2Match             bool               `json:"type2"`
	Type1Name              string             `json:"type1_name"`
	Type2Name              string             `json:"type2_name"`
	Heavier                *bool              `json:"heavier"`
	Lighter                *bool              `json:"lighter"`
	Weight                 *float64           `json:"weight"`
	Height                 *float64           `json:"height"`
	TargetWeight           *float64           `json:"target_weight"`
	TargetHeight           *float64           `json:"target_height"`
	TargetName             string             `json:"target_name"`
	TargetType1            string             `json:"target_type1"`
	TargetType2            string             `json:"target_type2"`
	TargetGeneration       catalog.Generation `json:"target_generation"`
}

// Correct reports whether the guess names the target variant.
func Correct(guess, target catalog.Entry) bool {
	return guess.Key == target.Key
}

// Compare builds the result for guess against target with both measurements
// already resolved. Heavier and Lighter stay nil unless both weights are known.
func Compare(guess, target catalog.Entry, gm, tm measure.Measurement) Result {
	r := Result{
		Name:                   names.ResponseName(guess.RawName),
		GenerationMatch:        guess.Generation.Matches(target.Generation),
		GenerationNumber:       guess.Generation,
		TargetGenerationNumber: target.Generation,
		Type1Match:             guess.Type1 == target.Type1,
		Type2Match:             guess.Type2 == target.Type2,
		Type1Name:              guess.Type1,
		Weight:                 gm.WeightKg,
		Height:                 gm.HeightM,
		TargetWeight:           tm.WeightKg,
		TargetHeight:           tm.HeightM,
		TargetName:             target.RawName,
		TargetType1:            target.Type1,
		TargetType2:            target.Type2,
		TargetGeneration:       target.Generation,
	}
	if guess.Type2 != guess.Type1 {
		r.Type2Name = guess.Type2
	}
	if gm.WeightKg != nil && tm.WeightKg != nil {
		heavier := *gm.WeightKg > *tm.WeightKg
		lighter := *gm.WeightKg < *tm.WeightKg
		r.Heavier, r.Lighter = &heavier, &lighter
	}
	return r
}
