package names

import "strings"

// spacedNames holds the word-separated spelling of every form-qualified name the
// measurement dump may store under a different punctuation.
var spacedNames = map[string]string{
	"mausholdfamilyofthree": "maushold family of three",
	"indeedeemale":          "indeedee male",
	"indeedeefemale":        "indeedee female",
	"meowsticmale":          "meowstic male",
	"meowsticfemale":        "meowstic female",
	"frillishmale":          "frillish male",
	"frillishfemale":        "frillish female",
	"jellicentmale":         "jellicent male",
	"jellicentfemale":       "jellicent female",
	"pyroarmale":            "pyroar male",
	"pyroarfemale":          "pyroar female",
	"unfezantmale":          "unfezant male",
	"unfezantfemale":        "unfezant female",
	"hippopotasfemale":      "hippopotas female",
	"hippowdonfemale":       "hippowdon female",
	"basculinredstriped":    "basculin red striped",
	"basculegionmale":       "basculegion male",
	"basculegionfemale":     "basculegion female",
	"oricoriobaile":         "oricorio baile",
	"lycanrocmidday":        "lycanroc midday",
	"lycanrocmidnight":      "lycanroc midnight",
	"lycanrocdusk":          "lycanroc dusk",
	"toxtricityamped":       "toxtricity amped",
	"toxtricitylowkey":      "toxtricity low key",
	"keldeoordinary":        "keldeo ordinary",
}

// SpacedName returns the word-separated spelling of a form-qualified key.
func SpacedName(key string) (string, bool) {
	s, ok := spacedNames[key]
	return s, ok
}

// MeasurementVariants lists the alternative spellings tried against the
// measurement cache after the resolved key itself misses. Keys without a spaced
// spelling have no variants.
func MeasurementVariants(key string) []string {
	spaced, ok := spacedNames[key]
	if !ok {
		return nil
	}
	return []string{
		spaced,
		key,
		strings.ReplaceAll(spaced, " ", "-"),
		strings.ReplaceAll(spaced, " ", "_"),
		titleWords(spaced),
		strings.ToUpper(spaced),
	}
}
