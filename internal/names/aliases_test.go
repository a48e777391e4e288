package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExpandAliases(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		key  string
		want []string
	}{
		{
			name: "suffix source",
			raw:  "zoroark hisui",
			key:  "zoroarkhisui",
			want: []string{"hisuian zoroark", "zoroark hisui", "zoroarkhisui"},
		},
		{
			name: "prefix source",
			raw:  "Hisuian Zoroark",
			key:  "zoroarkhisui",
			want: []string{"hisuian zoroark", "zoroark hisui", "zoroarkhisui"},
		},
		{
			name: "multi word base",
			raw:  "Mr. Mime Galar",
			key:  "mrmimegalar",
			want: []string{"galarian mr mime", "mr mime galar", "mr mimegalar"},
		},
		{
			name: "not regional",
			raw:  "pikachu",
			key:  "pikachu",
			want: nil,
		},
		{
			name: "region word in the middle",
			raw:  "tauros paldea combat",
			key:  "taurospaldeacombat",
			want: nil,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExpandAliases(tt.raw, tt.key))
		})
	}
}

func TestExpandAliases_CanonicalizeBack(t *testing.T) {
	sources := []string{
		"rattata alola", "raichu alola", "meowth galar", "farfetch'd galar", "mr mime galar",
		"growlithe hisui", "zorua hisui", "wooper paldea", "Galarian Slowpoke", "alolan-exeggutor",
	}
	for _, raw := range sources {
		key := Canonicalize(raw)
		aliases := ExpandAliases(raw, key)
		assert.NotEmpty(t, aliases, raw)
		for _, a := range aliases {
			assert.Equal(t, key, Canonicalize(a), "alias %q of %q", a, raw)
		}
	}
}
