// internal/names/canonical.go
//
// Name canonicalization for creature names.
// Every lookup in the server goes through Canonicalize: user guesses, the curated
// CSV, the supplemental regional-forms feed and the custom-game store all agree on
// the key it produces.
//
// Algorithm:
//   1. Spelling: "-"/"_" → space, drop "." and "'", fold accents, rewrite ♀/♂,
//      lower-case, collapse whitespace.
//   2. Regional prefix words move to the end in their suffix form
//      ("hisuian zoroark" → "zoroark hisui").
//   3. Remove all spaces.

// Package names holds the static naming tables and the pure functions built on them.
package names

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// Region pairs the prefix word users type ("galarian") with the suffix word used
// in canonical keys ("galar").
type Region struct {
	Prefix string
	Suffix string
}

// Adjective is the display form of the prefix ("Galarian").
func (r Region) Adjective() string { return capitalize(r.Prefix) }

// Order matters: Canonicalize applies the rewrites in sequence.
var regions = []Region{
	{Prefix: "hisuian", Suffix: "hisui"},
	{Prefix: "galarian", Suffix: "galar"},
	{Prefix: "alolan", Suffix: "alola"},
	{Prefix: "paldean", Suffix: "paldea"},
}

// RegionOf reports the region whose suffix the canonical key ends with.
func RegionOf(key string) (Region, bool) {
	for _, r := range regions {
		if strings.HasSuffix(key, r.Suffix) {
			return r, true
		}
	}
	return Region{}, false
}

var spellingReplacer = strings.NewReplacer(
	"-", " ",
	"_", " ",
	".", "",
	"'", "",
	"’", "",
	"♀", " female",
	"♂", " male",
)

// Spelling normalizes punctuation, case, accents and whitespace but keeps word
// boundaries. It is the first step of Canonicalize.
func Spelling(raw string) string {
	s := spellingReplacer.Replace(foldAccents(raw))
	return strings.Join(strings.Fields(strings.ToLower(s)), " ")
}

// Canonicalize maps any spelling of a creature name to its catalog key.
// It never fails; blank input yields "".
func Canonicalize(raw string) string {
	n := Spelling(raw)
	for _, r := range regions {
		if rest, ok := strings.CutPrefix(n, r.Prefix+" "); ok {
			n = strings.TrimSpace(rest) + " " + r.Suffix
		}
	}
	return strings.ReplaceAll(n, " ", "")
}

// foldAccents strips combining marks ("flabébé" → "flabebe").
// A transformer chain carries state, so one is built per call.
func foldAccents(s string) string {
	if isASCII(s) {
		return s
	}
	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, s)
	if err != nil {
		return s
	}
	return out
}

func isASCII(s string) bool {
	for i := 0; i < len(s); i++ {
		if s[i] >= utf8.RuneSelf {
			return false
		}
	}
	return true
}

// capitalize upper-cases the first rune and lower-cases the rest.
func capitalize(w string) string {
	if w == "" {
		return w
	}
	r, size := utf8.DecodeRuneInString(w)
	return string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
}

// titleWords capitalizes every space-separated word.
func titleWords(s string) string {
	words := strings.Fields(s)
	for i, w := range words {
		words[i] = capitalize(w)
	}
	return strings.Join(words, " ")
}
