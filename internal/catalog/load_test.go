package catalog

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCSV = "\ufeffNat,Pokemon,gen,Type I,Type II,Weight,Height\n" +
	"1,Bulbasaur,1,Grass,Poison,69,7\n" +
	"29,Nidoran♀,1,Poison,,,\n" +
	"32,Nidoran♂,1,Poison,,,\n" +
	"900,Kleavor,other,Bug,Rock,,\n" +
	"1010,Futuremon,12,Dragon,,,\n" +
	"669, Flabébé ,6,Fairy,,,\n"

func TestParseCurated(t *testing.T) {
	got, err := ParseCurated(strings.NewReader(sampleCSV))
	require.NoError(t, err)
	require.Len(t, got, 5, "non-integer generation rows are skipped")

	bulba := got[0]
	assert.Equal(t, "bulbasaur", bulba.RawName)
	assert.Equal(t, Known(1), bulba.Generation)
	assert.Equal(t, "grass", bulba.Type1)
	assert.Equal(t, "poison", bulba.Type2)
	require.NotNil(t, bulba.WeightDg)
	assert.InDelta(t, 69, *bulba.WeightDg, 0.001)
	require.NotNil(t, bulba.HeightDm)
	assert.InDelta(t, 7, *bulba.HeightDm, 0.001)

	assert.Equal(t, "nidoranfemale", got[1].RawName)
	assert.Equal(t, "nidoranmale", got[2].RawName)
	assert.Equal(t, "poison", got[1].Type2, "blank Type II defaults to Type I")
	assert.Nil(t, got[1].WeightDg)

	assert.Equal(t, Other, got[3].Generation)
	assert.Equal(t, "flabébé", got[4].RawName)
}

func TestParseCuratedMissingColumn(t *testing.T) {
	_, err := ParseCurated(strings.NewReader("Pokemon,Type I\nEevee,Normal\n"))
	assert.ErrorContains(t, err, "gen")
}

func TestParseSupplemental(t *testing.T) {
	in := `[
	  {"name": "zoroark hisui", "generation": 8, "type1": "normal", "type2": "ghost", "weight": 730, "height": 16},
	  {"name": "Meowth Galar", "generation": "other", "type1": "steel", "type2": "", "weight": null, "height": null},
	  {"name": "overqwil", "generation": null, "types": ["Dark", "Poison"]}
	]`
	got, err := ParseSupplemental(strings.NewReader(in))
	require.NoError(t, err)
	require.Len(t, got, 3)

	assert.Equal(t, Known(8), got[0].Generation)
	assert.Equal(t, "meowth galar", got[1].RawName)
	assert.Equal(t, Other, got[1].Generation)
	assert.Equal(t, "steel", got[1].Type2)
	assert.Nil(t, got[1].WeightDg)
	assert.Equal(t, Unknown, got[2].Generation)
	assert.Equal(t, "dark", got[2].Type1)
	assert.Equal(t, "poison", got[2].Type2)
}

func TestLoadEmbeddedDefaults(t *testing.T) {
	entries, err := Load(Sources{})
	require.NoError(t, err)

	ix := NewIndex(entries)
	for _, key := range []string{"bulbasaur", "nidoranfemale", "flabebe", "zoroarkhisui", "kleavor", "taurospaldeacombatbreed"} {
		_, ok := ix.LookupByCanonical(key)
		assert.True(t, ok, key)
	}
	// curated rows tagged "other" are dropped; the supplemental feed supplies them
	kleavor, _ := ix.LookupByCanonical("kleavor")
	assert.Equal(t, Known(8), kleavor.Generation)
}

func TestLoadFromPaths(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "dex.csv")
	jsonPath := filepath.Join(dir, "forms.json")
	require.NoError(t, os.WriteFile(csvPath, []byte("Pokemon,gen,Type I\nEevee,1,Normal\n"), 0o644))
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[{"name":"eevee","generation":9,"type1":"fairy"},{"name":"raichu alola","generation":7,"type1":"electric","type2":"psychic"}]`), 0o644))

	entries, err := Load(Sources{CuratedCSV: csvPath, SpecialForms: jsonPath})
	require.NoError(t, err)
	assert.Equal(t, []string{"eevee", "raichualola"}, keysOf(entries))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(Sources{CuratedCSV: filepath.Join(t.TempDir(), "nope.csv")})
	assert.ErrorContains(t, err, "curated feed")
}

func TestLoadEmptyCatalog(t *testing.T) {
	dir := t.TempDir()
	csvPath := filepath.Join(dir, "dex.csv")
	jsonPath := filepath.Join(dir, "forms.json")
	require.NoError(t, os.WriteFile(csvPath, []byte("Pokemon,gen,Type I\n"), 0o644))
	require.NoError(t, os.WriteFile(jsonPath, []byte(`[]`), 0o644))

	_, err := Load(Sources{CuratedCSV: csvPath, SpecialForms: jsonPath})
	assert.Error(t, err)
}
