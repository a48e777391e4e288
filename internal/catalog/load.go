// internal/catalog/load.go
//
// Feed loading for the catalog.
//
// Sources:
//   1. If a path is configured (CATALOG_CSV / SPECIAL_FORMS_FILE), read it.
//   2. Otherwise fall back to the defaults embedded in the assets package.
//
// Curated CSV columns: Pokemon, gen, Type I, Type II (optional), Weight/Height
// (optional). Rows whose gen is not an integer are skipped.
// Supplemental JSON: array of FormRecord.

package catalog

import (
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pokedle/assets"
	"github.com/robalobadob/pokedle/internal/names"
)

// Sources names the feed files. Empty paths use the embedded defaults.
type Sources struct {
	CuratedCSV   string
	SpecialForms string
}

// Load reads both feeds and merges them.
func Load(src Sources) ([]Entry, error) {
	curated, err := readFeed(src.CuratedCSV, assets.CuratedFile, ParseCurated)
	if err != nil {
		return nil, fmt.Errorf("curated feed: %w", err)
	}
	supplemental, err := readFeed(src.SpecialForms, assets.FormsFile, ParseSupplemental)
	if err != nil {
		return nil, fmt.Errorf("supplemental feed: %w", err)
	}
	merged := Merge(curated, supplemental)
	if len(merged) == 0 {
		return nil, errors.New("catalog: no entries")
	}
	log.Info().
		Int("curated", len(curated)).
		Int("supplemental", len(supplemental)).
		Int("merged", len(merged)).
		Msg("catalog loaded")
	return merged, nil
}

func readFeed(path, embedded string, parse func(io.Reader) ([]Entry, error)) ([]Entry, error) {
	var (
		rc  io.ReadCloser
		err error
	)
	if path != "" {
		rc, err = os.Open(path)
	} else {
		rc, err = assets.Open(embedded)
	}
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return parse(rc)
}

var requiredCuratedCols = []string{"Pokemon", "gen", "Type I"}

// ParseCurated reads the curated CSV feed.
func ParseCurated(r io.Reader) ([]Entry, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading CSV header: %w", err)
	}
	cols := make(map[string]int, len(header))
	for i, col := range header {
		cols[strings.TrimSpace(strings.TrimPrefix(col, "\ufeff"))] = i
	}
	for _, col := range requiredCuratedCols {
		if _, ok := cols[col]; !ok {
			return nil, fmt.Errorf("missing required column: %s", col)
		}
	}

	var out []Entry
	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("line %d: %w", line, err)
		}

		gen, err := ParseGeneration(column(record, cols, "gen"))
		if err != nil {
			log.Debug().Int("line", line).Str("gen", column(record, cols, "gen")).Msg("skipping row without integer generation")
			continue
		}

		name := strings.ToLower(strings.TrimSpace(column(record, cols, "Pokemon")))
		if key := names.Canonicalize(name); key == "nidoranfemale" || key == "nidoranmale" {
			name = key
		}
		type1 := strings.ToLower(strings.TrimSpace(column(record, cols, "Type I")))
		out = append(out, Entry{
			RawName:    name,
			Generation: gen,
			Type1:      type1,
			Type2:      strings.ToLower(strings.TrimSpace(column(record, cols, "Type II"))),
			WeightDg:   parseOptionalFloat(column(record, cols, "Weight")),
			HeightDm:   parseOptionalFloat(column(record, cols, "Height")),
		}.withTypeDefault())
	}
	return out, nil
}

// ParseSupplemental reads the supplemental regional-forms feed.
func ParseSupplemental(r io.Reader) ([]Entry, error) {
	var records []FormRecord
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("parsing JSON: %w", err)
	}
	out := make([]Entry, 0, len(records))
	for _, rec := range records {
		out = append(out, rec.Entry())
	}
	return out, nil
}

func column(record []string, cols map[string]int, col string) string {
	if i, ok := cols[col]; ok && i < len(record) {
		return record[i]
	}
	return ""
}

func parseOptionalFloat(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return nil
	}
	return &f
}
