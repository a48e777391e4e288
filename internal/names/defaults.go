package names

import "strings"

// defaultVariants maps a base species with no form qualifier to the variant the
// catalog and the measurement cache use for it.
var defaultVariants = map[string]string{
	"maushold":    "mausholdfamilyofthree",
	"indeedee":    "indeedeemale",
	"meowstic":    "meowsticmale",
	"frillish":    "frillishmale",
	"jellicent":   "jellicentmale",
	"pyroar":      "pyroarmale",
	"unfezant":    "unfezantmale",
	"hippopotas":  "hippopotasfemale", // sprite convention is female
	"hippowdon":   "hippowdonfemale",
	"basculin":    "basculinredstriped",
	"basculegion": "basculegionmale",
	"oricorio":    "oricoriobaile",
	"lycanroc":    "lycanrocmidday",
	"toxtricity":  "toxtricityamped",
	"flabebe":     "flabebe",
}

const keldeoPrefix = "keldeo"

// ResolveDefault returns the canonical key of the conventional default variant for
// a base species. Unknown names resolve to themselves.
func ResolveDefault(canonicalBase string) string {
	if v, ok := defaultVariants[canonicalBase]; ok {
		return v
	}
	if strings.HasPrefix(canonicalBase, keldeoPrefix) {
		return "keldeoordinary"
	}
	return canonicalBase
}

// DefaultVariants returns a copy of the base → default table.
func DefaultVariants() map[string]string {
	out := make(map[string]string, len(defaultVariants))
	for k, v := range defaultVariants {
		out[k] = v
	}
	return out
}
