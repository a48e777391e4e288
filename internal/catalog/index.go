package catalog

import "github.com/robalobadob/pokedle/internal/names"

// NameOption is one autocomplete suggestion: a label and the canonical key the
// label resolves to.
type NameOption struct {
	Display string `json:"display"`
	Value   string `json:"value"`
}

// Index is a read-only view over the merged catalog. It is safe for concurrent
// use once built.
type Index struct {
	entries []Entry
	byKey   map[string][]int
	options []NameOption
}

// NewIndex indexes entries in order. Entries without a canonical key are not
// reachable and are left out.
func NewIndex(entries []Entry) *Index {
	ix := &Index{
		entries: make([]Entry, 0, len(entries)),
		byKey:   make(map[string][]int, len(entries)),
	}
	for _, e := range entries {
		if e.Key == "" {
			continue
		}
		ix.byKey[e.Key] = append(ix.byKey[e.Key], len(ix.entries))
		ix.entries = append(ix.entries, e)
	}
	ix.options = ix.buildOptions()
	return ix
}

// Len is the number of indexed entries.
func (ix *Index) Len() int { return len(ix.entries) }

// At returns the i-th entry in merge order.
func (ix *Index) At(i int) Entry { return ix.entries[i] }

// LookupByCanonical returns the representative entry for key: the row with the
// highest generation, the earliest merged row on a tie.
func (ix *Index) LookupByCanonical(key string) (Entry, bool) {
	rows := ix.byKey[key]
	if len(rows) == 0 {
		return Entry{}, false
	}
	best := rows[0]
	for _, i := range rows[1:] {
		if ix.entries[i].Generation.Rank() > ix.entries[best].Generation.Rank() {
			best = i
		}
	}
	return ix.entries[best], true
}

// DisplayName is the label shown for an entry.
func (ix *Index) DisplayName(e Entry) string {
	return names.DisplayName(e.RawName)
}

// ListNamesForAutocomplete returns one option per canonical key followed by the
// regional aliases. An alias is listed only when its canonical form has not been
// emitted yet, so no two options canonicalize to the same key.
func (ix *Index) ListNamesForAutocomplete() []NameOption {
	out := make([]NameOption, len(ix.options))
	copy(out, ix.options)
	return out
}

func (ix *Index) buildOptions() []NameOption {
	var (
		out  []NameOption
		seen = make(map[string]struct{}, len(ix.entries))
	)
	for _, e := range ix.entries {
		if _, dup := seen[e.Key]; dup {
			continue
		}
		seen[e.Key] = struct{}{}
		out = append(out, NameOption{Display: names.DisplayName(e.RawName), Value: e.Key})
	}
	for _, e := range ix.entries {
		for _, alias := range names.ExpandAliases(e.RawName, e.Key) {
			c := names.Canonicalize(alias)
			if _, dup := seen[c]; c == "" || dup {
				continue
			}
			seen[c] = struct{}{}
			out = append(out, NameOption{Display: names.DisplayName(alias), Value: e.Key})
		}
	}
	return out
}
