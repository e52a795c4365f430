package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/tmoriguchi/mindtracer/internal/analysis"
	"github.com/tmoriguchi/mindtracer/internal/cli"
	"github.com/tmoriguchi/mindtracer/internal/model"
)

// chartHalfWidth is the cell count on each side of the zero axis.
const chartHalfWidth = 20

func chartCmd() *cobra.Command {
	var (
		rangeFlag    string
		kindFlag     string
		locationFlag string
		contextFlag  string
	)

	cmd := &cobra.Command{
		Use:   "chart",
		Short: "Chart valence over time",
		Long: `Bucket entries by hour or day and draw the mean valence of each bucket
as a bar around the neutral axis.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			rng, err := model.ParseTimeRange(rangeFlag)
			if err != nil {
				return err
			}

			opts := analysis.FilterOptions{Range: rng, LocationKey: locationFlag}
			switch kindFlag {
			case "":
			case "momentary":
				opts.Kind = model.KindMomentaryEmotion
			case "daily":
				opts.Kind = model.KindDailyMood
			default:
				return fmt.Errorf("unknown kind %q (want momentary or daily)", kindFlag)
			}
			if contextFlag != "" {
				c := model.Context(strings.ToLower(contextFlag))
				if !c.Valid() {
					return fmt.Errorf("unknown context %q", contextFlag)
				}
				opts.Context = c
			}

			store, err := initEntryStore()
			if err != nil {
				return err
			}

			entries := analysis.Filter(store.All(), timeNow(), opts)
			points := analysis.Aggregate(entries, rng, time.Local)
			if len(points) == 0 {
				fmt.Println(cli.InfoStyle.Render(fmt.Sprintf("No entries in the last %s.", rng.DisplayName())))
				return nil
			}

			fmt.Println(cli.FormatTitle(fmt.Sprintf("Valence, %s", rng.DisplayName())))
			fmt.Print(renderChart(points, rng))
			return nil
		},
	}

	cmd.Flags().StringVar(&rangeFlag, "range", string(model.Past7Days), "time range (past8Hours, past3Days, past7Days, past30Days, past90Days, pastYear, all)")
	cmd.Flags().StringVar(&kindFlag, "kind", "", "filter by kind (momentary, daily)")
	cmd.Flags().StringVar(&locationFlag, "location", "", "filter by rounded location key")
	cmd.Flags().StringVar(&contextFlag, "context", "", "filter by life context")

	return cmd
}

// renderChart draws one bar per bucket around a zero axis. Axis labels
// are thinned to roughly the range's tick count so dense ranges stay
// readable.
func renderChart(points []model.ValencePoint, rng model.TimeRange) string {
	labelEvery := 1
	if ticks := rng.TickCount(); len(points) > ticks {
		labelEvery = (len(points) + ticks - 1) / ticks
	}

	var b strings.Builder
	for i, p := range points {
		label := ""
		if i%labelEvery == 0 {
			label = p.Date.Format(rng.LabelFormat())
		}
		fmt.Fprintf(&b, "%10s %s %s\n", label, renderBar(p.Valence), cli.FormatValence(p.Valence))
	}
	return b.String()
}

func renderBar(valence float64) string {
	cells := int(model.ClampValence(valence) * chartHalfWidth)

	left := strings.Repeat(" ", chartHalfWidth)
	right := strings.Repeat(" ", chartHalfWidth)
	switch {
	case cells > 0:
		right = cli.SuccessStyle.Render(strings.Repeat("█", cells)) + strings.Repeat(" ", chartHalfWidth-cells)
	case cells < 0:
		left = strings.Repeat(" ", chartHalfWidth+cells) + cli.ErrorStyle.Render(strings.Repeat("█", -cells))
	}

	return left + cli.SubtleStyle.Render("│") + right
}
