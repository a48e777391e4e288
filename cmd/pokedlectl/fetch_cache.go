package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/pokedle/internal/measure"
	"github.com/robalobadob/pokedle/internal/pokeapi"
)

const allSpecies = 10000

func newFetchCacheCmd() *cobra.Command {
	var (
		out     string
		baseURL string
		timeout time.Duration
		retries int
		species []string
	)
	cmd := &cobra.Command{
		Use:   "fetch-cache",
		Short: "Rebuild the measurement cache from PokeAPI species varieties",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := pokeapi.NewClient(baseURL, timeout, retries)
			if len(species) == 0 {
				all, err := client.ListSpecies(cmd.Context(), allSpecies)
				if err != nil {
					return err
				}
				species = all
			}
			records, failed := fetchCache(cmd, client, species)

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := writeRecords(w, records); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), mutedStyle.Render(fmt.Sprintf("%d records written, %d species failed", len(records), failed)))
			if failed > 0 {
				return fmt.Errorf("%d species could not be fetched", failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (stdout when empty)")
	cmd.Flags().StringVar(&baseURL, "api", pokeapi.DefaultBaseURL, "PokeAPI base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", pokeapi.DefaultTimeout, "Per-request timeout")
	cmd.Flags().IntVar(&retries, "retries", 1, "Retries for transport errors and 5xx")
	cmd.Flags().StringSliceVar(&species, "species", nil, "Only these species (all when empty)")
	return cmd
}

// fetchCache collects the variety records of every species, keeping what was
// fetched before a failure.
func fetchCache(cmd *cobra.Command, client *pokeapi.Client, species []string) ([]measure.Record, int) {
	var records []measure.Record
	failed := 0
	for i, name := range species {
		if cmd.Context().Err() != nil {
			failed += len(species) - i
			break
		}
		recs, err := client.FetchSpeciesRecords(cmd.Context(), name)
		records = append(records, recs...)
		if err != nil {
			log.Warn().Err(err).Str("species", name).Msg("skipping species")
			failed++
		}
	}
	return records, failed
}

func writeRecords(w io.Writer, records []measure.Record) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}
