// Package main is pokedlectl, the operator CLI for inspecting the catalog and
// rebuilding the PokeAPI-derived data files.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var version = "0.1.0-dev"

// globalOpts are shared by every subcommand.
type globalOpts struct {
	catalogCSV   string
	specialForms string
	cache        string
	verbose      bool
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOpts{}
	root := &cobra.Command{
		Use:           "pokedlectl",
		Short:         "Inspect and maintain the pokedle catalog",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := zerolog.WarnLevel
			if opts.verbose {
				level = zerolog.DebugLevel
			}
			zerolog.SetGlobalLevel(level)
			log.Logger = log.Output(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr()})
		},
	}

	root.PersistentFlags().StringVar(&opts.catalogCSV, "csv", "", "Curated catalog CSV (embedded copy when empty)")
	root.PersistentFlags().StringVar(&opts.specialForms, "forms", "", "Special forms JSON (embedded copy when empty)")
	root.PersistentFlags().StringVar(&opts.cache, "cache", "", "Measurement cache JSON (embedded copy when empty)")
	root.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "Debug logging")

	root.AddCommand(
		newNamesCmd(opts),
		newResolveCmd(opts),
		newTodayCmd(opts),
		newCompareCmd(opts),
		newFetchFormsCmd(),
		newFetchCacheCmd(),
	)
	return root
}
