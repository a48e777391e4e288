// Package pokeapi is a small client for the public PokeAPI, used as the last
// measurement source and by the supplemental feed builder.
package pokeapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/robalobadob/pokedle/internal/catalog"
	"github.com/robalobadob/pokedle/internal/measure"
)

const (
	DefaultBaseURL = "https://pokeapi.co/api/v2"
	DefaultTimeout = 5 * time.Second
)

// ErrNotFound is returned when PokeAPI has no resource by that name.
var ErrNotFound = errors.New("pokeapi: not found")

// Client fetches pokemon resources. Transport errors and 5xx responses are
// retried up to retries extra times.
type Client struct {
	baseURL    string
	httpClient *http.Client
	retries    int
	retryDelay time.Duration
}

// NewClient creates a client. An empty baseURL uses the public API; a
// non-positive timeout uses DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration, retries int) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	if retries < 0 {
		retries = 0
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
		retries:    retries,
		retryDelay: 250 * time.Millisecond,
	}
}

type namedResource struct {
	Name string `json:"name"`
	URL  string `json:"url"`
}

type pokemonResponse struct {
	Name   string `json:"name"`
	Weight int    `json:"weight"`
	Height int    `json:"height"`
	Types  []struct {
		Slot int           `json:"slot"`
		Type namedResource `json:"type"`
	} `json:"types"`
	Species namedResource `json:"species"`
}

type speciesResponse struct {
	Generation namedResource `json:"generation"`
}

// Fetch implements measure.LiveAPI. A non-empty form is appended to apiName.
// Every failure is logged and reported as false.
func (c *Client) Fetch(ctx context.Context, apiName, form string) (measure.Raw, bool) {
	if form != "" {
		apiName += "-" + form
	}
	var p pokemonResponse
	if err := c.getJSON(ctx, c.baseURL+"/pokemon/"+url.PathEscape(apiName), &p); err != nil {
		log.Debug().Err(err).Str("api_name", apiName).Msg("pokeapi fetch failed")
		return measure.Raw{}, false
	}
	return measure.Raw{WeightDg: float64(p.Weight), HeightDm: float64(p.Height)}, true
}

// FetchForm builds a supplemental feed record for one special form: types,
// weight, height and the species generation with regional corrections. A
// failing species lookup leaves the generation unknown.
func (c *Client) FetchForm(ctx context.Context, form catalog.SpecialForm) (catalog.FormRecord, error) {
	var p pokemonResponse
	if err := c.getJSON(ctx, c.baseURL+"/pokemon/"+url.PathEscape(form.APIName), &p); err != nil {
		return catalog.FormRecord{}, fmt.Errorf("fetch %s: %w", form.APIName, err)
	}

	types := make([]string, 0, len(p.Types))
	for _, t := range p.Types {
		types = append(types, t.Type.Name)
	}
	rec := catalog.FormRecord{
		Name:    strings.ReplaceAll(form.APIName, "-", " "),
		Types:   types,
		Display: form.Display,
	}
	if len(types) > 0 {
		rec.Type1 = types[0]
	}
	if len(types) > 1 {
		rec.Type2 = types[1]
	}
	w, h := float64(p.Weight), float64(p.Height)
	rec.Weight, rec.Height = &w, &h

	gen := catalog.Unknown
	if p.Species.URL != "" {
		var s speciesResponse
		if err := c.getJSON(ctx, p.Species.URL, &s); err != nil {
			log.Warn().Err(err).Str("api_name", form.APIName).Msg("species lookup failed")
		} else {
			gen = catalog.ParseRomanGeneration(s.Generation.Name)
		}
	}
	rec.Generation = catalog.RegionalGeneration(form.APIName, gen)
	return rec, nil
}

func (c *Client) getJSON(ctx context.Context, reqURL string, out any) error {
	resp, err := c.doWithRetry(ctx, reqURL)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return ErrNotFound
	case resp.StatusCode != http.StatusOK:
		return fmt.Errorf("unexpected status %d from %s", resp.StatusCode, reqURL)
	}
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}
	if err := json.Unmarshal(body, out); err != nil {
		return fmt.Errorf("decode json: %w", err)
	}
	return nil
}

func (c *Client) doWithRetry(ctx context.Context, reqURL string) (*http.Response, error) {
	for attempt := 0; ; attempt++ {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
		if err != nil {
			return nil, fmt.Errorf("create request: %w", err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.httpClient.Do(req)
		retryable := err != nil || resp.StatusCode >= 500
		if !retryable || attempt >= c.retries || ctx.Err() != nil {
			return resp, err
		}

		reason := "network error"
		if err == nil {
			reason = fmt.Sprintf("status %d", resp.StatusCode)
			resp.Body.Close()
		}
		log.Warn().Str("url", reqURL).Str("reason", reason).Int("attempt", attempt+1).Msg("pokeapi retry")

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(c.retryDelay):
		}
	}
}
