package measure

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/robalobadob/pokedle/assets"
	"github.com/robalobadob/pokedle/internal/catalog"
)

// Record is one row of the pre-fetched PokeAPI dump.
type Record struct {
	Name       string             `json:"name"`
	APIName    string             `json:"api_name"`
	Generation catalog.Generation `json:"generation"`
	Type1      string             `json:"type1"`
	Type2      string             `json:"type2"`
	Weight     *float64           `json:"weight"`
	Height     *float64           `json:"height"`
}

// Cache looks records up by loosely normalized name. The first record for a
// normalized name wins.
type Cache struct {
	byName map[string]Record
}

// LoadCache reads the dump at path, or the embedded dump when path is empty.
func LoadCache(path string) (*Cache, error) {
	var (
		rc  io.ReadCloser
		err error
	)
	if path != "" {
		rc, err = os.Open(path)
	} else {
		rc, err = assets.Open(assets.MeasurementsFile)
	}
	if err != nil {
		return nil, fmt.Errorf("open measurement cache: %w", err)
	}
	defer rc.Close()
	return ParseCache(rc)
}

// ParseCache decodes a JSON array of records.
func ParseCache(r io.Reader) (*Cache, error) {
	var records []Record
	if err := json.NewDecoder(r).Decode(&records); err != nil {
		return nil, fmt.Errorf("parse measurement cache: %w", err)
	}
	return NewCache(records), nil
}

func NewCache(records []Record) *Cache {
	c := &Cache{byName: make(map[string]Record, len(records))}
	for _, rec := range records {
		k := normalize(rec.Name)
		if _, dup := c.byName[k]; dup {
			continue
		}
		c.byName[k] = rec
	}
	return c
}

// Find returns the record whose normalized name equals the normalized name.
func (c *Cache) Find(name string) (Record, bool) {
	if c == nil {
		return Record{}, false
	}
	rec, ok := c.byName[normalize(name)]
	return rec, ok
}

// Len is the number of distinct names held.
func (c *Cache) Len() int {
	if c == nil {
		return 0
	}
	return len(c.byName)
}

var normalizer = strings.NewReplacer("-", "", "_", "", " ", "")

func normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(normalizer.Replace(s)))
}
