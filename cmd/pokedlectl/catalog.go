package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/robalobadob/pokedle/internal/catalog"
	"github.com/robalobadob/pokedle/internal/game"
	"github.com/robalobadob/pokedle/internal/measure"
	"github.com/robalobadob/pokedle/internal/store"
)

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("86"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("245")).Width(14)
	valueStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229"))
	hitStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("42"))
	missStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("203"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// loadService builds an offline game service: catalog plus cached
// measurements, no live API and an in-memory custom store.
func loadService(opts *globalOpts) (*game.Service, *measure.Resolver, error) {
	entries, err := catalog.Load(catalog.Sources{CuratedCSV: opts.catalogCSV, SpecialForms: opts.specialForms})
	if err != nil {
		return nil, nil, err
	}
	cache, err := measure.LoadCache(opts.cache)
	if err != nil {
		return nil, nil, fmt.Errorf("load measurement cache: %w", err)
	}
	resolver := measure.NewResolver(cache, nil)
	return game.NewService(catalog.NewIndex(entries), resolver, store.NewMemoryStore()), resolver, nil
}

func newNamesCmd(opts *globalOpts) *cobra.Command {
	var filter string
	cmd := &cobra.Command{
		Use:   "names",
		Short: "List autocomplete names",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			n := 0
			for _, o := range svc.Names() {
				if filter != "" && !strings.Contains(strings.ToLower(o.Display), strings.ToLower(filter)) {
					continue
				}
				fmt.Fprintf(out, "%s %s\n", valueStyle.Render(o.Display), mutedStyle.Render(o.Value))
				n++
			}
			fmt.Fprintln(out, mutedStyle.Render(fmt.Sprintf("%d names", n)))
			return nil
		},
	}
	cmd.Flags().StringVarP(&filter, "filter", "f", "", "Only names containing this text")
	return cmd
}

func newResolveCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "resolve NAME...",
		Short: "Show the catalog entry a typed name resolves to",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, resolver, err := loadService(opts)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, raw := range args {
				e, err := svc.ResolveGuess(raw)
				if err != nil {
					fmt.Fprintf(out, "%s %s\n", missStyle.Render(raw), mutedStyle.Render(err.Error()))
					continue
				}
				fmt.Fprintln(out, renderEntry(svc.Index(), e, resolver.Resolve(cmd.Context(), e)))
			}
			return nil
		},
	}
}

func renderEntry(ix *catalog.Index, e catalog.Entry, m measure.Measurement) string {
	rows := []string{
		headerStyle.Render(ix.DisplayName(e)),
		row("key", e.Key),
		row("generation", e.Generation.String()),
		row("types", e.Type1+" / "+e.Type2),
		row("weight", formatMeasure(m.WeightKg, "kg")),
		row("height", formatMeasure(m.HeightM, "m")),
	}
	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func row(label, value string) string {
	return lipgloss.JoinHorizontal(lipgloss.Top, labelStyle.Render(label), valueStyle.Render(value))
}

func formatMeasure(v *float64, unit string) string {
	if v == nil {
		return "unknown"
	}
	return fmt.Sprintf("%.1f %s", *v, unit)
}
