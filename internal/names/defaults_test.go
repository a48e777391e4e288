package names

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveDefault_Table(t *testing.T) {
	want := map[string]string{
		"maushold":    "mausholdfamilyofthree",
		"indeedee":    "indeedeemale",
		"meowstic":    "meowsticmale",
		"frillish":    "frillishmale",
		"jellicent":   "jellicentmale",
		"pyroar":      "pyroarmale",
		"unfezant":    "unfezantmale",
		"hippopotas":  "hippopotasfemale",
		"hippowdon":   "hippowdonfemale",
		"basculin":    "basculinredstriped",
		"basculegion": "basculegionmale",
		"oricorio":    "oricoriobaile",
		"lycanroc":    "lycanrocmidday",
		"toxtricity":  "toxtricityamped",
		"flabebe":     "flabebe",
	}
	assert.Equal(t, want, DefaultVariants())
	for base, variant := range want {
		assert.Equal(t, variant, ResolveDefault(base), "ResolveDefault(%q)", base)
	}
}

func TestResolveDefault_AccentedInputFoldsFirst(t *testing.T) {
	for _, raw := range []string{"Flabébé", "flabébé", "FLABEBE"} {
		assert.Equal(t, "flabebe", ResolveDefault(Canonicalize(raw)), raw)
	}
}

func TestResolveDefault_Keldeo(t *testing.T) {
	for _, in := range []string{"keldeo", "keldeoresolute", "keldeoordinary"} {
		assert.Equal(t, "keldeoordinary", ResolveDefault(in), in)
	}
}

func TestResolveDefault_Identity(t *testing.T) {
	for _, in := range []string{"pikachu", "zoroarkhisui", "mausholdfamilyoffour", "indeedeefemale", ""} {
		assert.Equal(t, in, ResolveDefault(in))
	}
}

func TestResolveDefault_TargetsHaveVariants(t *testing.T) {
	for base, variant := range DefaultVariants() {
		if variant == "flabebe" {
			continue
		}
		assert.NotEmpty(t, MeasurementVariants(variant), "no measurement variants for %s (from %s)", variant, base)
	}
}

func TestMeasurementVariants(t *testing.T) {
	assert.Equal(t, []string{
		"maushold family of three",
		"mausholdfamilyofthree",
		"maushold-family-of-three",
		"maushold_family_of_three",
		"Maushold Family Of Three",
		"MAUSHOLD FAMILY OF THREE",
	}, MeasurementVariants("mausholdfamilyofthree"))

	assert.Nil(t, MeasurementVariants("pikachu"))

	for key := range spacedNames {
		for _, v := range MeasurementVariants(key) {
			assert.Equal(t, key, Canonicalize(v), "variant %q of %q", v, key)
		}
	}
}

func TestSpacedName(t *testing.T) {
	s, ok := SpacedName("toxtricitylowkey")
	assert.True(t, ok)
	assert.Equal(t, "toxtricity low key", s)

	_, ok = SpacedName("pikachu")
	assert.False(t, ok)
}
