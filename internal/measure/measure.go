// internal/measure/measure.go
//
// Weight/height resolution for catalog entries.
// Sources, in order:
//   1. values carried by the entry itself
//   2. the pre-fetched measurement cache, by resolved key, then by each
//      punctuation/case variant of it
//   3. the live PokeAPI (bounded timeout, one retry, failures swallowed)
//   4. nothing: both values stay null
//
// A source only counts when weight and height are both present and non-zero.
// Source units are decagrams/decimeters; results are kilograms/meters.

// Package measure resolves creature weight and height.
package measure

import (
	"context"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pokedle/internal/catalog"
	"github.com/robalobadob/pokedle/internal/names"
)

// Measurement is a resolved weight (kg) and height (m). Both are nil when no
// source had them.
type Measurement struct {
	WeightKg *float64 `json:"weight"`
	HeightM  *float64 `json:"height"`
}

// Resolved reports whether the measurement carries values.
func (m Measurement) Resolved() bool { return m.WeightKg != nil && m.HeightM != nil }

// Raw is a live API reading in source units.
type Raw struct {
	WeightDg float64
	HeightDm float64
}

// LiveAPI fetches measurements on demand. Implementations report failure with
// false and never return errors to the resolver.
type LiveAPI interface {
	Fetch(ctx context.Context, apiName, form string) (Raw, bool)
}

// Resolver runs the measurement fallback chain. A nil cache or API skips that
// step.
type Resolver struct {
	cache *Cache
	api   LiveAPI
}

func NewResolver(cache *Cache, api LiveAPI) *Resolver {
	return &Resolver{cache: cache, api: api}
}

// Resolve returns the measurement for e, or an unresolved Measurement.
func (r *Resolver) Resolve(ctx context.Context, e catalog.Entry) Measurement {
	if m, ok := fromSource(e.WeightDg, e.HeightDm); ok {
		return m
	}

	key := LookupKey(e)
	if r.cache != nil {
		if rec, ok := r.cache.Find(key); ok {
			if m, ok := fromSource(rec.Weight, rec.Height); ok {
				return m
			}
			log.Debug().Str("key", key).Msg("cache entry without weight/height")
		}
		for _, v := range names.MeasurementVariants(key) {
			rec, ok := r.cache.Find(v)
			if !ok {
				continue
			}
			if m, ok := fromSource(rec.Weight, rec.Height); ok {
				log.Debug().Str("key", key).Str("variant", v).Msg("cache hit on variant")
				return m
			}
		}
	}

	if r.api != nil {
		api := APIName(e)
		log.Debug().Str("key", key).Str("api_name", api).Msg("falling back to live api")
		if raw, ok := r.api.Fetch(ctx, api, ""); ok {
			w, h := raw.WeightDg, raw.HeightDm
			if m, ok := fromSource(&w, &h); ok {
				return m
			}
		}
	}

	log.Debug().Str("name", e.RawName).Msg("no measurement source")
	return Measurement{}
}

// LookupKey is the cache key for e: its canonical key with the default-variant
// rules applied, the same resolution a guess goes through.
func LookupKey(e catalog.Entry) string {
	key := e.Key
	if key == "" {
		key = names.Canonicalize(e.RawName)
	}
	return names.ResolveDefault(key)
}

var apiSpecialNames = map[string]string{
	"nidoranfemale": "nidoran-f",
	"nidoranmale":   "nidoran-m",
	"shaymin":       "shaymin-land",
}

// APIName derives the PokeAPI resource name for e.
func APIName(e catalog.Entry) string {
	key := e.Key
	if key == "" {
		key = names.Canonicalize(e.RawName)
	}
	if n, ok := apiSpecialNames[key]; ok {
		return n
	}
	if resolved := names.ResolveDefault(key); resolved != key {
		if spaced, ok := names.SpacedName(resolved); ok {
			return strings.ReplaceAll(spaced, " ", "-")
		}
		return resolved
	}
	n := strings.ReplaceAll(names.Spelling(e.RawName), ":", "")
	return strings.Join(strings.Fields(n), "-")
}

func fromSource(weight, height *float64) (Measurement, bool) {
	if weight == nil || height == nil || *weight == 0 || *height == 0 {
		return Measurement{}, false
	}
	kg, m := *weight/10, *height/10
	return Measurement{WeightKg: &kg, HeightM: &m}, true
}
