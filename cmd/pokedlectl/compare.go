package main

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/robalobadob/pokedle/internal/compare"
)

func newCompareCmd(opts *globalOpts) *cobra.Command {
	return &cobra.Command{
		Use:   "compare GUESS TARGET",
		Short: "Score a guess against a target offline",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, resolver, err := loadService(opts)
			if err != nil {
				return err
			}
			guess, err := svc.ResolveGuess(args[0])
			if err != nil {
				return err
			}
			target, err := svc.ResolveGuess(args[1])
			if err != nil {
				return err
			}
			ctx := cmd.Context()
			res := compare.Compare(guess, target, resolver.Resolve(ctx, guess), resolver.Resolve(ctx, target))
			fmt.Fprintln(cmd.OutOrStdout(), renderResult(res, compare.Correct(guess, target)))
			return nil
		},
	}
}

func renderResult(res compare.Result, correct bool) string {
	title := headerStyle.Render(res.Name + " vs " + res.TargetName)
	if correct {
		title += " " + hitStyle.Render("correct")
	}
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		row("generation", mark(res.GenerationMatch)+" "+res.GenerationNumber.String()),
		row("type 1", mark(res.Type1Match)+" "+res.Type1Name),
		row("type 2", mark(res.Type2Match)+" "+res.Type2Name),
		row("weight", weightHint(res)),
	)
}

func mark(ok bool) string {
	if ok {
		return hitStyle.Render("✓")
	}
	return missStyle.Render("✗")
}

func weightHint(res compare.Result) string {
	switch {
	case res.Heavier == nil:
		return mutedStyle.Render("unknown")
	case *res.Heavier:
		return "heavier than target"
	case *res.Lighter:
		return "lighter than target"
	default:
		return "same weight"
	}
}
