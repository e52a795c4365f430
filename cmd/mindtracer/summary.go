package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tmoriguchi/mindtracer/internal/analysis"
	"github.com/tmoriguchi/mindtracer/internal/cli"
	"github.com/tmoriguchi/mindtracer/internal/model"
)

func summaryCmd() *cobra.Command {
	var rangeFlag string

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Summarize your recent mood",
		Long:  `Show the latest entry, the recent trend, the dominant feeling, and a short prose summary.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := initEntryStore()
			if err != nil {
				return err
			}

			entries := store.All()
			if rangeFlag != "" {
				rng, err := model.ParseTimeRange(rangeFlag)
				if err != nil {
					return err
				}
				entries = analysis.Filter(entries, timeNow(), analysis.FilterOptions{Range: rng})
			}

			summary := analysis.Summarize(entries)
			if summary.LatestEntry == nil {
				fmt.Println(cli.InfoStyle.Render(summary.Text))
				return nil
			}

			var b strings.Builder
			b.WriteString(cli.SummaryStyle(summary).Render(summary.Text))
			b.WriteString("\n\n")

			latest := summary.LatestEntry
			b.WriteString(fmt.Sprintf("Latest:   %s (%s, %s)\n",
				latest.Timestamp.Local().Format("Mon Jan 2 15:04"),
				latest.Kind,
				latest.Classification().Prose()))
			b.WriteString(fmt.Sprintf("Trend:    %s\n", summary.Trend))
			if summary.HasDominantFeeling() {
				b.WriteString(fmt.Sprintf("Dominant: %s\n",
					cli.FeelingStyle(summary.DominantFeeling).Render(string(summary.DominantFeeling))))
			}

			fmt.Println(cli.RenderBox("Mood Summary", strings.TrimRight(b.String(), "\n")))
			fmt.Println(cli.SubtleStyle.Render(analysis.Wisdom(latest)))
			return nil
		},
	}

	cmd.Flags().StringVar(&rangeFlag, "range", "", "restrict the summary to a time range")
	return cmd
}
