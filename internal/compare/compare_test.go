package compare

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/pokedle/internal/catalog"
	"github.com/robalobadob/pokedle/internal/measure"
)

func kg(w float64) measure.Measurement {
	h := 1.0
	return measure.Measurement{WeightKg: &w, HeightM: &h}
}

func entry(raw string, gen catalog.Generation, t1, t2 string) catalog.Entry {
	return catalog.Entry{RawName: raw, Key: raw, Generation: gen, Type1: t1, Type2: t2}
}

func TestCompareGeneration(t *testing.T) {
	cases := []struct {
		name   string
		g, tgt catalog.Generation
		want   bool
	}{
		{"equal concrete", catalog.Known(9), catalog.Known(9), true},
		{"different concrete", catalog.Known(8), catalog.Known(9), false},
		{"other vs other", catalog.Other, catalog.Other, false},
		{"unknown vs unknown", catalog.Unknown, catalog.Unknown, false},
		{"other vs concrete", catalog.Other, catalog.Known(1), false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			r := Compare(entry("a", tc.g, "fire", "fire"), entry("b", tc.tgt, "fire", "fire"), measure.Measurement{}, measure.Measurement{})
			assert.Equal(t, tc.want, r.GenerationMatch)
		})
	}
}

func TestCompareTypes(t *testing.T) {
	r := Compare(
		entry("charizard", catalog.Known(1), "fire", "flying"),
		entry("ho-oh", catalog.Known(2), "fire", "flying"),
		measure.Measurement{}, measure.Measurement{},
	)
	assert.True(t, r.Type1Match)
	assert.True(t, r.Type2Match)
	assert.Equal(t, "fire", r.Type1Name)
	assert.Equal(t, "flying", r.Type2Name)

	r = Compare(
		entry("pikachu", catalog.Known(1), "electric", "electric"),
		entry("raichu alola", catalog.Known(7), "electric", "psychic"),
		measure.Measurement{}, measure.Measurement{},
	)
	assert.True(t, r.Type1Match)
	assert.False(t, r.Type2Match)
	assert.Empty(t, r.Type2Name, "mono-typed guess reports no second type name")
	assert.Equal(t, "psychic", r.TargetType2)
}

func TestCompareWeight(t *testing.T) {
	g := entry("a", catalog.Known(1), "x", "x")
	tgt := entry("b", catalog.Known(1), "x", "x")

	r := Compare(g, tgt, kg(90.5), kg(6))
	require.NotNil(t, r.Heavier)
	require.NotNil(t, r.Lighter)
	assert.True(t, *r.Heavier)
	assert.False(t, *r.Lighter)

	r = Compare(g, tgt, kg(6), kg(90.5))
	assert.False(t, *r.Heavier)
	assert.True(t, *r.Lighter)

	r = Compare(g, tgt, kg(6), kg(6))
	assert.False(t, *r.Heavier)
	assert.False(t, *r.Lighter)
}

func TestCompareMissingWeight(t *testing.T) {
	g := entry("a", catalog.Known(1), "x", "x")
	tgt := entry("b", catalog.Known(1), "x", "x")

	r := Compare(g, tgt, kg(6), measure.Measurement{})
	assert.Nil(t, r.Heavier)
	assert.Nil(t, r.Lighter)
	assert.Nil(t, r.TargetWeight)

	r = Compare(g, tgt, measure.Measurement{}, kg(6))
	assert.Nil(t, r.Heavier)
	assert.Nil(t, r.Lighter)
}

func TestCompareResponseName(t *testing.T) {
	tgt := entry("eevee", catalog.Known(1), "normal", "normal")
	r := Compare(catalog.Entry{RawName: "flabébé", Key: "flabebe"}, tgt, measure.Measurement{}, measure.Measurement{})
	assert.Equal(t, "flabebe", r.Name)

	r = Compare(catalog.Entry{RawName: "basculegion female", Key: "basculegionfemale"}, tgt, measure.Measurement{}, measure.Measurement{})
	assert.Equal(t, "Basculegion", r.Name)
}

func TestResultJSON(t *testing.T) {
	r := Compare(
		entry("kleavor", catalog.Other, "bug", "rock"),
		entry("eevee", catalog.Known(1), "normal", "normal"),
		measure.Measurement{}, kg(6.5),
	)
	out, err := json.Marshal(r)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(out, &got))
	assert.Equal(t, "other", got["generation_number"])
	assert.Equal(t, 1.0, got["target_generation"])
	assert.Nil(t, got["heavier"])
	assert.Nil(t, got["lighter"])
	assert.Equal(t, 6.5, got["target_weight"])
	assert.Equal(t, false, got["generation"])
}

func TestCorrect(t *testing.T) {
	e := entry("eevee", catalog.Known(1), "normal", "normal")
	assert.True(t, Correct(e, e))
	assert.False(t, Correct(e, entry("pikachu", catalog.Known(1), "electric", "electric")))
}
