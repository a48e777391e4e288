// internal/catalog/entry.go
//
// Catalog data model.
//   - Entry: one displayable creature variant, from either feed.
//   - Weight/height stay in source units (decagrams / decimeters); the
//     measure package converts them.

// Package catalog builds the unified creature catalog from the curated CSV feed
// and the supplemental regional-forms feed, and indexes it for lookups.
package catalog

// Entry is one named creature variant.
type Entry struct {
	RawName    string     `json:"name"`
	Key        string     `json:"canonical"`
	Generation Generation `json:"generation"`
	Type1      string     `json:"type1"`
	Type2      string     `json:"type2"`
	WeightDg   *float64   `json:"weight"`
	HeightDm   *float64   `json:"height"`
}

// withTypeDefault fills a missing second type with the first.
func (e Entry) withTypeDefault() Entry {
	if e.Type2 == "" {
		e.Type2 = e.Type1
	}
	return e
}
