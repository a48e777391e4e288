// assets/embed.go
//
// Embedded default data and schema migrations.
//   - data/pokedex.csv         curated feed (CATALOG_CSV overrides it)
//   - data/special_forms.json  supplemental regional-forms feed (SPECIAL_FORMS_FILE)
//   - data/measurements.json   pre-fetched PokeAPI dump (MEASUREMENT_CACHE_FILE)
//   - sql/*.sql                goose migrations

package assets

import (
	"embed"
	"io/fs"
)

const (
	CuratedFile      = "pokedex.csv"
	FormsFile        = "special_forms.json"
	MeasurementsFile = "measurements.json"
)

//go:embed data/pokedex.csv data/special_forms.json data/measurements.json
var data embed.FS

//go:embed sql/*.sql
var migrations embed.FS

// Open opens one of the embedded data files by name.
func Open(name string) (fs.File, error) {
	return data.Open("data/" + name)
}

// Migrations returns the migration files rooted at the sql directory.
func Migrations() (fs.FS, error) {
	return fs.Sub(migrations, "sql")
}
