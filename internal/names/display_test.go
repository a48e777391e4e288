package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayName(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{"zoroark hisui", "Hisuian Zoroark"},
		{"Hisuian Zoroark", "Hisuian Zoroark"},
		{"mr mime galar", "Galarian Mr Mime"},
		{"raichu-alola", "Alolan Raichu"},
		{"wooper paldea", "Paldean Wooper"},
		{"nidoranfemale", "Nidoran♀"},
		{"nidoranmale", "Nidoran♂"},
		{"darmanitan galar standard", "Galarian Darmanitan"},
		{"tauros paldea combat breed", "Paldean Tauros Combat"},
		{"tauros-paldea-aqua", "Paldean Tauros Aqua"},
		{"toxtricity_low_key", "Toxtricity (Low Key)"},
		{"basculegion female", "Basculegion"},
		{"lycanroc midnight", "Lycanroc Midnight"},
		{"lycanroc own tempo dusk", "Lycanroc"},
		{"Flabébé", "Flabebe"},
		{"porygon-z", "Porygon Z"},
		{"PIKACHU", "Pikachu"},
	}
	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			assert.Equal(t, tt.want, DisplayName(tt.raw))
		})
	}
}

func TestDisplayName_RoundTrip(t *testing.T) {
	raws := []string{
		"pikachu", "zoroark hisui", "Hisuian Growlithe", "mr mime galar", "farfetch'd galar",
		"lycanroc dusk", "porygon-z", "nidoranfemale", "type: null", "maushold family of three",
	}
	for _, raw := range raws {
		key := Canonicalize(raw)
		if HasDisplayOverride(key) {
			continue
		}
		assert.Equal(t, key, Canonicalize(DisplayName(raw)), "round trip of %q", raw)
	}
}

func TestHasDisplayOverride(t *testing.T) {
	assert.True(t, HasDisplayOverride("darmanitangalarstandard"))
	assert.False(t, HasDisplayOverride("pikachu"))
}

func TestResponseName(t *testing.T) {
	assert.Equal(t, "flabebe", ResponseName("flabébé"))
	assert.Equal(t, "Basculegion", ResponseName("basculegion female"))
	assert.Equal(t, "pikachu", ResponseName("pikachu"))
}
