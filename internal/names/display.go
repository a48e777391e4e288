package names

import "strings"

// displayOverrides are labels that do not follow the generic rules, keyed by
// canonical key.
var displayOverrides = map[string]string{
	"nidoranmale":             "Nidoran♂",
	"nidoranfemale":           "Nidoran♀",
	"darmanitangalarstandard": "Galarian Darmanitan",
	"taurospaldeacombatbreed": "Paldean Tauros Combat",
	"taurospaldeacombat":      "Paldean Tauros Combat",
	"taurospaldeablazebreed":  "Paldean Tauros Blaze",
	"taurospaldeablaze":       "Paldean Tauros Blaze",
	"taurospaldeaaquabreed":   "Paldean Tauros Aqua",
	"taurospaldeaaqua":        "Paldean Tauros Aqua",
	"wooperpaldea":            "Paldean Wooper",
	"toxtricityamped":         "Toxtricity (Amped)",
	"toxtricitylowkey":        "Toxtricity (Low Key)",
	"basculegionmale":         "Basculegion",
	"basculegionfemale":       "Basculegion",
	"flabebe":                 "Flabebe",
}

// DisplayName derives the human-facing label for a source or alias name.
func DisplayName(raw string) string {
	if d, ok := displayOverrides[Canonicalize(raw)]; ok {
		return d
	}
	n := Spelling(raw)
	for _, r := range regions {
		if base, ok := strings.CutSuffix(n, " "+r.Suffix); ok {
			return r.Adjective() + " " + titleWords(base)
		}
	}
	if rest, ok := strings.CutPrefix(n, "lycanroc "); ok {
		if parts := strings.Fields(rest); len(parts) == 1 {
			return "Lycanroc " + capitalize(parts[0])
		}
		return "Lycanroc"
	}
	return titleWords(n)
}

// HasDisplayOverride reports whether key has a fixed label.
func HasDisplayOverride(key string) bool {
	_, ok := displayOverrides[key]
	return ok
}

// ResponseName is the guess name echoed back to clients, which use it to pick a
// sprite file.
func ResponseName(raw string) string {
	switch Canonicalize(raw) {
	case "flabebe":
		return "flabebe"
	case "basculegionfemale":
		return "Basculegion"
	}
	return raw
}
