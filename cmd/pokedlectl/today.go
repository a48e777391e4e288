package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/robalobadob/pokedle/internal/daily"
)

func newTodayCmd(opts *globalOpts) *cobra.Command {
	var (
		date   string
		offset float64
		days   int
	)
	cmd := &cobra.Command{
		Use:   "today",
		Short: "Show the daily target for a date",
		Long:  "Shows the daily target for --date, or for today at --offset hours from UTC. --days previews the following days too.",
		RunE: func(cmd *cobra.Command, args []string) error {
			svc, _, err := loadService(opts)
			if err != nil {
				return err
			}
			ix := svc.Index()
			if ix.Len() == 0 {
				return fmt.Errorf("catalog is empty")
			}

			start := time.Now().UTC().Add(time.Duration(offset * float64(time.Hour)))
			if date != "" {
				start, err = time.Parse(time.DateOnly, date)
				if err != nil {
					return fmt.Errorf("invalid --date %q: %w", date, err)
				}
			}

			out := cmd.OutOrStdout()
			for i := 0; i < max(days, 1); i++ {
				key := start.AddDate(0, 0, i).Format(time.DateOnly)
				idx := daily.Index(key, ix.Len())
				e := ix.At(idx)
				fmt.Fprintf(out, "%s  %s %s\n", mutedStyle.Render(key), valueStyle.Render(ix.DisplayName(e)), mutedStyle.Render(fmt.Sprintf("#%d", idx)))
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&date, "date", "", "Date key (YYYY-MM-DD)")
	cmd.Flags().Float64Var(&offset, "offset", 0, "Timezone offset in hours")
	cmd.Flags().IntVar(&days, "days", 1, "Number of days to show")
	return cmd
}
