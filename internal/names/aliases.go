package names

import "strings"

// ExpandAliases returns the spellings a player may type for a regional form, all
// of which canonicalize to key. rawName is the entry's source name, used to
// recover the base species. Keys without a regional suffix have no aliases.
//
// Candidates are built in a fixed order (prefix/suffix, spaced/dashed/joined,
// lower/title case); a candidate is dropped if it canonicalizes elsewhere or if
// its Spelling was already produced.
func ExpandAliases(rawName, key string) []string {
	region, ok := RegionOf(key)
	if !ok {
		return nil
	}
	base := regionBase(Spelling(rawName), region)
	if base == "" {
		return nil
	}
	title := titleWords(base)

	candidates := []string{
		region.Prefix + " " + base,
		base + " " + region.Suffix,
		base + "-" + region.Suffix,
		base + region.Suffix,
		region.Prefix + " " + title,
		title + " " + region.Suffix,
		title + "-" + region.Suffix,
		title + region.Suffix,
	}

	seen := make(map[string]struct{}, len(candidates))
	out := make([]string, 0, len(candidates))
	for _, alias := range candidates {
		if Canonicalize(alias) != key {
			continue
		}
		sp := Spelling(alias)
		if _, dup := seen[sp]; dup {
			continue
		}
		seen[sp] = struct{}{}
		out = append(out, alias)
	}
	return out
}

// regionBase strips the region word from a spelled name, whichever side it is on.
func regionBase(n string, r Region) string {
	switch {
	case strings.HasSuffix(n, " "+r.Suffix):
		n = strings.TrimSuffix(n, " "+r.Suffix)
	case strings.HasPrefix(n, r.Prefix+" "):
		n = strings.TrimPrefix(n, r.Prefix+" ")
	case strings.HasSuffix(n, r.Suffix):
		n = strings.TrimSuffix(n, r.Suffix)
	}
	return strings.TrimSpace(n)
}
