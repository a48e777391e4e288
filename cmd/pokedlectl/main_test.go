package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/robalobadob/pokedle/internal/catalog"
	"github.com/robalobadob/pokedle/internal/daily"
	"github.com/robalobadob/pokedle/internal/measure"
	"github.com/robalobadob/pokedle/internal/pokeapi"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&bytes.Buffer{})
	root.SetArgs(args)
	err := root.ExecuteContext(context.Background())
	return out.String(), err
}

func TestResolveCmd(t *testing.T) {
	out, err := execute(t, "resolve", "Pikachu", "missingno")
	require.NoError(t, err)
	assert.Contains(t, out, "pikachu")
	assert.Contains(t, out, "electric")
	assert.Contains(t, out, "6.0 kg")
	assert.Contains(t, out, "missingno")
}

func TestNamesCmdFilter(t *testing.T) {
	out, err := execute(t, "names", "--filter", "char")
	require.NoError(t, err)
	assert.Contains(t, out, "Charmander")
	assert.Contains(t, out, "Charizard")
	assert.NotContains(t, out, "Pikachu")
}

func TestTodayCmdMatchesDailyPick(t *testing.T) {
	entries, err := catalog.Load(catalog.Sources{})
	require.NoError(t, err)
	ix := catalog.NewIndex(entries)
	want := ix.DisplayName(ix.At(daily.Index("2024-01-01", ix.Len())))

	out, err := execute(t, "today", "--date", "2024-01-01", "--days", "2")
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(out), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "2024-01-01")
	assert.Contains(t, lines[0], want)
	assert.Contains(t, lines[1], "2024-01-02")

	_, err = execute(t, "today", "--date", "01/01/2024")
	assert.Error(t, err)
}

func TestCompareCmd(t *testing.T) {
	out, err := execute(t, "compare", "pikachu", "charizard")
	require.NoError(t, err)
	assert.Contains(t, out, "lighter than target")
	assert.NotContains(t, out, "correct")

	out, err = execute(t, "compare", "charizard", "charizard")
	require.NoError(t, err)
	assert.Contains(t, out, "correct")

	_, err = execute(t, "compare", "pikachu")
	assert.Error(t, err)
}

func TestFetchForms(t *testing.T) {
	var srvURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pokemon/zoroark-hisui":
			_, _ = w.Write([]byte(`{"name":"zoroark-hisui","weight":730,"height":16,
				"types":[{"slot":1,"type":{"name":"normal"}},{"slot":2,"type":{"name":"ghost"}}],
				"species":{"name":"zoroark","url":"` + srvURL + `/pokemon-species/571/"}}`))
		case "/pokemon-species/571/":
			_, _ = w.Write([]byte(`{"generation":{"name":"generation-v"}}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()
	srvURL = srv.URL

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	client := pokeapi.NewClient(srv.URL, time.Second, 0)
	records, failed := fetchForms(cmd, client, []catalog.SpecialForm{
		{Display: "Zoroark Hisui", APIName: "zoroark-hisui"},
		{Display: "Missing", APIName: "missing-form"},
	})
	assert.Equal(t, 1, failed)
	require.Len(t, records, 1)

	var buf bytes.Buffer
	require.NoError(t, writeForms(&buf, records))
	var decoded []catalog.FormRecord
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	require.Len(t, decoded, 1)

	e := decoded[0].Entry()
	assert.Equal(t, "zoroark hisui", e.RawName)
	assert.Equal(t, "ghost", e.Type2)
	// only first-generation species are moved to their region's generation
	n, ok := e.Generation.Number()
	require.True(t, ok)
	assert.Equal(t, 5, n)
}

func TestFetchCache(t *testing.T) {
	var srvURL string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/pokemon-species/pikachu":
			_, _ = w.Write([]byte(`{"generation":{"name":"generation-i"},
				"varieties":[{"pokemon":{"name":"pikachu","url":"` + srvURL + `/pokemon/25/"}}]}`))
		case "/pokemon/25/":
			_, _ = w.Write([]byte(`{"name":"pikachu","weight":60,"height":4,"types":[{"slot":1,"type":{"name":"electric"}}]}`))
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()
	srvURL = srv.URL

	cmd := &cobra.Command{}
	cmd.SetContext(context.Background())
	records, failed := fetchCache(cmd, pokeapi.NewClient(srv.URL, time.Second, 0), []string{"pikachu", "missingno"})
	assert.Equal(t, 1, failed)
	require.Len(t, records, 1)

	var buf bytes.Buffer
	require.NoError(t, writeRecords(&buf, records))
	cache, err := measure.ParseCache(&buf)
	require.NoError(t, err)
	rec, ok := cache.Find("Pikachu")
	require.True(t, ok)
	assert.Equal(t, "pikachu", rec.APIName)
	assert.Equal(t, 60.0, *rec.Weight)
}
