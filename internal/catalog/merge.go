package catalog

import "github.com/robalobadob/pokedle/internal/names"

// Merge builds the unified catalog. Every entry gets its canonical key; curated
// entries come first in their original order, followed by supplemental entries
// whose key the catalog does not already hold. Colliding supplemental entries
// are dropped.
func Merge(curated, supplemental []Entry) []Entry {
	out := make([]Entry, 0, len(curated)+len(supplemental))
	seen := make(map[string]struct{}, len(curated)+len(supplemental))

	for _, e := range curated {
		e.Key = names.Canonicalize(e.RawName)
		seen[e.Key] = struct{}{}
		out = append(out, e)
	}
	for _, e := range supplemental {
		e.Key = names.Canonicalize(e.RawName)
		if _, dup := seen[e.Key]; dup {
			continue
		}
		seen[e.Key] = struct{}{}
		out = append(out, e)
	}
	return out
}
