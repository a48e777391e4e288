package catalog

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

// MaxGeneration is the newest generation the game knows about.
const MaxGeneration = 9

type genKind uint8

const (
	genUnknown genKind = iota
	genKnown
	genOther
)

// Generation is a release generation: a concrete number, the "other" sentinel
// (known but unclassified) or unknown. The zero value is unknown.
type Generation struct {
	kind genKind
	n    int
}

// Known returns a concrete generation.
func Known(n int) Generation { return Generation{kind: genKnown, n: n} }

// Other is the known-but-unclassified sentinel.
var Other = Generation{kind: genOther}

// Unknown is the missing-value sentinel.
var Unknown = Generation{}

// Number returns the concrete generation, if any.
func (g Generation) Number() (int, bool) { return g.n, g.kind == genKnown }

func (g Generation) IsOther() bool   { return g.kind == genOther }
func (g Generation) IsUnknown() bool { return g.kind == genUnknown }

// Rank orders generations for representative selection; sentinels rank 0.
func (g Generation) Rank() int {
	if g.kind == genKnown {
		return g.n
	}
	return 0
}

// Matches reports whether both sides carry the same concrete generation.
// Two sentinels never match.
func (g Generation) Matches(o Generation) bool {
	return g.kind == genKnown && o.kind == genKnown && g.n == o.n
}

func (g Generation) String() string {
	switch g.kind {
	case genKnown:
		return strconv.Itoa(g.n)
	case genOther:
		return "other"
	}
	return "unknown"
}

// MarshalJSON encodes a number, "other" or null.
func (g Generation) MarshalJSON() ([]byte, error) {
	switch g.kind {
	case genKnown:
		return []byte(strconv.Itoa(g.n)), nil
	case genOther:
		return []byte(`"other"`), nil
	}
	return []byte("null"), nil
}

// UnmarshalJSON accepts a number, a numeric string, "other" or null.
func (g *Generation) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*g = Unknown
		return nil
	}
	var s string
	if len(b) > 0 && b[0] == '"' {
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}
	} else {
		s = string(b)
	}
	if strings.EqualFold(strings.TrimSpace(s), "other") {
		*g = Other
		return nil
	}
	parsed, err := ParseGeneration(s)
	if err != nil {
		return fmt.Errorf("generation %s: %w", b, err)
	}
	*g = parsed
	return nil
}

// ParseGeneration parses a curated-feed generation cell. Integers outside
// 1..MaxGeneration are tagged Other; anything else is an error.
func ParseGeneration(s string) (Generation, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return Unknown, err
	}
	if n < 1 || n > MaxGeneration {
		return Other, nil
	}
	return Known(n), nil
}

var romanGenerations = map[string]int{
	"i": 1, "ii": 2, "iii": 3, "iv": 4, "v": 5, "vi": 6, "vii": 7, "viii": 8, "ix": 9,
}

// ParseRomanGeneration converts the numeral of a PokeAPI generation name
// ("generation-viii" or "viii") to a Generation.
func ParseRomanGeneration(s string) Generation {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.TrimPrefix(s, "generation-")
	if n, ok := romanGenerations[s]; ok {
		return Known(n)
	}
	values := map[rune]int{'i': 1, 'v': 5, 'x': 10}
	total, prev := 0, 0
	rs := []rune(s)
	for i := len(rs) - 1; i >= 0; i-- {
		v := values[rs[i]]
		if v < prev {
			total -= v
		} else {
			total += v
			prev = v
		}
	}
	if total <= 0 {
		return Unknown
	}
	if total > MaxGeneration {
		return Other
	}
	return Known(total)
}

// RegionalGeneration corrects the species generation PokeAPI reports for a
// regional form: the form belongs to the generation that introduced its region.
func RegionalGeneration(apiName string, g Generation) Generation {
	if strings.Contains(apiName, "paldea") {
		return Known(9)
	}
	if n, ok := g.Number(); ok && n == 1 {
		switch {
		case strings.Contains(apiName, "alola"):
			return Known(7)
		case strings.Contains(apiName, "galar"), strings.Contains(apiName, "hisui"):
			return Known(8)
		}
	}
	return g
}
