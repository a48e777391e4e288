package pokeapi

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/robalobadob/pokedle/internal/catalog"
	"github.com/robalobadob/pokedle/internal/measure"
)

type speciesListResponse struct {
	Results []namedResource `json:"results"`
}

type speciesDetailResponse struct {
	Generation namedResource `json:"generation"`
	Varieties  []struct {
		Pokemon namedResource `json:"pokemon"`
	} `json:"varieties"`
}

// ListSpecies returns the names of up to limit species.
func (c *Client) ListSpecies(ctx context.Context, limit int) ([]string, error) {
	var list speciesListResponse
	reqURL := fmt.Sprintf("%s/pokemon-species?limit=%d", c.baseURL, limit)
	if err := c.getJSON(ctx, reqURL, &list); err != nil {
		return nil, fmt.Errorf("list species: %w", err)
	}
	out := make([]string, 0, len(list.Results))
	for _, s := range list.Results {
		out = append(out, s.Name)
	}
	return out, nil
}

// FetchSpeciesRecords builds one measurement cache record per variety of a
// species. Every variety carries the species generation.
func (c *Client) FetchSpeciesRecords(ctx context.Context, species string) ([]measure.Record, error) {
	var detail speciesDetailResponse
	if err := c.getJSON(ctx, c.baseURL+"/pokemon-species/"+url.PathEscape(species), &detail); err != nil {
		return nil, fmt.Errorf("fetch species %s: %w", species, err)
	}
	gen := catalog.ParseRomanGeneration(detail.Generation.Name)

	records := make([]measure.Record, 0, len(detail.Varieties))
	for _, v := range detail.Varieties {
		var p pokemonResponse
		if err := c.getJSON(ctx, v.Pokemon.URL, &p); err != nil {
			return records, fmt.Errorf("fetch variety %s: %w", v.Pokemon.Name, err)
		}
		records = append(records, cacheRecord(p, gen))
	}
	return records, nil
}

func cacheRecord(p pokemonResponse, gen catalog.Generation) measure.Record {
	rec := measure.Record{
		Name:       titleName(p.Name),
		APIName:    p.Name,
		Generation: gen,
	}
	if len(p.Types) > 0 {
		rec.Type1 = p.Types[0].Type.Name
		rec.Type2 = rec.Type1
	}
	if len(p.Types) > 1 {
		rec.Type2 = p.Types[1].Type.Name
	}
	w, h := float64(p.Weight), float64(p.Height)
	rec.Weight, rec.Height = &w, &h
	return rec
}

// titleName turns "maushold-family-of-three" into "Maushold Family Of Three".
func titleName(apiName string) string {
	words := strings.Fields(strings.ReplaceAll(apiName, "-", " "))
	for i, w := range words {
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ")
}
