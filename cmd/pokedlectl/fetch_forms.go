package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/robalobadob/pokedle/internal/catalog"
	"github.com/robalobadob/pokedle/internal/pokeapi"
)

func newFetchFormsCmd() *cobra.Command {
	var (
		out     string
		baseURL string
		timeout time.Duration
		retries int
	)
	cmd := &cobra.Command{
		Use:   "fetch-forms",
		Short: "Rebuild the special forms feed from PokeAPI",
		RunE: func(cmd *cobra.Command, args []string) error {
			client := pokeapi.NewClient(baseURL, timeout, retries)
			records, failed := fetchForms(cmd, client, catalog.SpecialForms)

			w := cmd.OutOrStdout()
			if out != "" {
				f, err := os.Create(out)
				if err != nil {
					return err
				}
				defer f.Close()
				w = f
			}
			if err := writeForms(w, records); err != nil {
				return err
			}
			fmt.Fprintln(cmd.ErrOrStderr(), mutedStyle.Render(fmt.Sprintf("%d forms written, %d failed", len(records), failed)))
			if failed > 0 {
				return fmt.Errorf("%d forms could not be fetched", failed)
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&out, "out", "o", "", "Output file (stdout when empty)")
	cmd.Flags().StringVar(&baseURL, "api", pokeapi.DefaultBaseURL, "PokeAPI base URL")
	cmd.Flags().DurationVar(&timeout, "timeout", pokeapi.DefaultTimeout, "Per-request timeout")
	cmd.Flags().IntVar(&retries, "retries", 1, "Retries for transport errors and 5xx")
	return cmd
}

// fetchForms fetches every form, skipping failures.
func fetchForms(cmd *cobra.Command, client *pokeapi.Client, forms []catalog.SpecialForm) ([]catalog.FormRecord, int) {
	records := make([]catalog.FormRecord, 0, len(forms))
	failed := 0
	for _, f := range forms {
		if err := cmd.Context().Err(); err != nil {
			failed += len(forms) - len(records) - failed
			break
		}
		rec, err := client.FetchForm(cmd.Context(), f)
		if err != nil {
			log.Warn().Err(err).Str("form", f.APIName).Msg("skipping form")
			failed++
			continue
		}
		records = append(records, rec)
	}
	return records, failed
}

func writeForms(w io.Writer, records []catalog.FormRecord) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(records)
}
