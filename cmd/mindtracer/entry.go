package main

import (
	"fmt"
	"math"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/tmoriguchi/mindtracer/internal/analysis"
	"github.com/tmoriguchi/mindtracer/internal/cli"
	"github.com/tmoriguchi/mindtracer/internal/common"
	"github.com/tmoriguchi/mindtracer/internal/model"
)

func entryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "entry",
		Short: "Manage mind state entries",
		Long:  `Add, list, and delete individual mind state entries.`,
	}

	cmd.AddCommand(addEntryCmd())
	cmd.AddCommand(listEntriesCmd())
	cmd.AddCommand(showEntryCmd())
	cmd.AddCommand(deleteEntryCmd())

	return cmd
}

func addEntryCmd() *cobra.Command {
	var (
		kindFlag     string
		feelingsFlag string
		contextsFlag string
		valenceFlag  float64
		timeFlag     string
		latFlag      float64
		lonFlag      float64
		nameFlag     string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an entry non-interactively",
		Long:  `Record a mind state entry from flags. Use 'mindtracer flow' for the guided version.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			var kind model.Kind
			switch kindFlag {
			case "momentary":
				kind = model.KindMomentaryEmotion
			case "daily":
				kind = model.KindDailyMood
			default:
				return fmt.Errorf("unknown kind %q (want momentary or daily)", kindFlag)
			}

			feelings, err := parseFeelings(feelingsFlag)
			if err != nil {
				return err
			}
			if len(feelings) == 0 {
				return fmt.Errorf("at least one feeling is required")
			}

			contexts, err := parseContexts(contextsFlag)
			if err != nil {
				return err
			}

			ts, err := parseTimestamp(timeFlag)
			if err != nil {
				return err
			}

			// Unset valence derives from the selected feelings.
			valence := valenceFlag
			if math.IsNaN(valence) {
				valence = model.FeelingsValence(feelings)
			}

			var coord *model.Coordinate
			if cmd.Flags().Changed("lat") || cmd.Flags().Changed("lon") {
				coord = &model.Coordinate{Latitude: latFlag, Longitude: lonFlag}
			}

			store, err := initEntryStore()
			if err != nil {
				return err
			}

			entry := model.NewEntry(ts, kind, valence, feelings, contexts, coord, nameFlag, nil)
			if err := store.Add(entry); err != nil {
				return fmt.Errorf("failed to save entry: %w", err)
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Recorded %s entry %s", strings.ToLower(string(entry.Kind)), entry.ID)))
			fmt.Println(cli.SubtleStyle.Render(analysis.Wisdom(&entry)))
			return nil
		},
	}

	cmd.Flags().StringVar(&kindFlag, "kind", "momentary", "entry kind (momentary, daily)")
	cmd.Flags().StringVar(&feelingsFlag, "feelings", "", "comma-separated feelings (required)")
	cmd.Flags().StringVar(&contextsFlag, "contexts", "", "comma-separated life contexts")
	cmd.Flags().Float64Var(&valenceFlag, "valence", math.NaN(), "valence in [-1, 1] (default: derived from feelings)")
	cmd.Flags().StringVar(&timeFlag, "time", "", "entry timestamp (RFC 3339 or YYYY-MM-DD, default: now)")
	cmd.Flags().Float64Var(&latFlag, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lonFlag, "lon", 0, "longitude")
	cmd.Flags().StringVar(&nameFlag, "location-name", "", "display name for the location")

	return cmd
}

func listEntriesCmd() *cobra.Command {
	var (
		rangeFlag    string
		kindFlag     string
		locationFlag string
		contextFlag  string
	)

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List entries",
		Long:  `Display entries, optionally narrowed by time range, kind, location key, or context.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			opts := analysis.FilterOptions{Range: model.AllTime}

			if rangeFlag != "" {
				rng, err := model.ParseTimeRange(rangeFlag)
				if err != nil {
					return err
				}
				opts.Range = rng
			}
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
			opts.LocationKey = locationFlag

			store, err := initEntryStore()
			if err != nil {
				return err
			}

			entries := analysis.Filter(store.All(), timeNow(), opts)
			if len(entries) == 0 {
				fmt.Println(cli.InfoStyle.Render("No entries found. Use 'mindtracer flow' to record one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "WHEN\tKIND\tVALENCE\tFEELINGS\tWHERE")
			for _, e := range entries {
				feelings := make([]string, 0, len(e.Feelings))
				for _, f := range e.Feelings {
					feelings = append(feelings, string(f))
				}
				where := e.LocationName
				if where == "" && e.Location != nil {
					where = e.Location.RoundedKey()
				}
				fmt.Fprintf(w, "%s\t%s\t%s\t%s\t%s\n",
					e.Timestamp.Local().Format("2006-01-02 15:04"),
					e.Kind,
					cli.FormatValence(e.Valence),
					strings.Join(feelings, ","),
					where)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&rangeFlag, "range", "", "time range (past8Hours, past3Days, past7Days, past30Days, past90Days, pastYear, all)")
	cmd.Flags().StringVar(&kindFlag, "kind", "", "filter by kind (momentary, daily)")
	cmd.Flags().StringVar(&locationFlag, "location", "", "filter by rounded location key, e.g. 37.335,-122.009")
	cmd.Flags().StringVar(&contextFlag, "context", "", "filter by life context")

	return cmd
}

func showEntryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show one entry in full",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid entry ID %q: %w", args[0], err)
			}

			store, err := initEntryStore()
			if err != nil {
				return err
			}

			entry, ok := store.Get(id)
			if !ok {
				return fmt.Errorf("entry %s: %w", id, common.ErrNotFound)
			}

			var b strings.Builder
			fmt.Fprintf(&b, "When:     %s\n", entry.Timestamp.Local().Format("Mon Jan 2 2006 15:04"))
			fmt.Fprintf(&b, "Kind:     %s\n", entry.Kind)
			fmt.Fprintf(&b, "Valence:  %s (%s)\n", cli.FormatValence(entry.Valence), entry.Classification().Prose())
			for _, f := range entry.Feelings {
				fmt.Fprintf(&b, "Feeling:  %s\n", cli.FeelingStyle(f).Render(string(f)))
			}
			for _, c := range entry.Contexts {
				fmt.Fprintf(&b, "Context:  %s\n", c)
			}
			if entry.Location != nil {
				where := entry.Location.RoundedKey()
				if entry.LocationName != "" {
					where = fmt.Sprintf("%s (%s)", entry.LocationName, where)
				}
				fmt.Fprintf(&b, "Where:    %s\n", where)
			}
			if source, ok := entry.Metadata["source"]; ok {
				fmt.Fprintf(&b, "Source:   %s\n", source)
			}

			fmt.Println(cli.RenderBox(fmt.Sprintf("Entry %s", entry.ID), strings.TrimRight(b.String(), "\n")))
			return nil
		},
	}
}

func deleteEntryCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete an entry",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid entry ID %q: %w", args[0], err)
			}

			store, err := initEntryStore()
			if err != nil {
				return err
			}

			if err := store.Delete(id); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Entry deleted"))
			return nil
		},
	}
}
