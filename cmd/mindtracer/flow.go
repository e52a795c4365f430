package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tmoriguchi/mindtracer/internal/analysis"
	"github.com/tmoriguchi/mindtracer/internal/cli"
	"github.com/tmoriguchi/mindtracer/internal/tui"
)

func flowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "flow",
		Short: "Record an entry interactively",
		Long:  `Walk through kind, feelings, contexts, valence, and location, then save the entry.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := initEntryStore()
			if err != nil {
				return err
			}
			locations, err := initLocationStore()
			if err != nil {
				return err
			}

			saved, err := tui.RunEntryFlow(store, locations.All())
			if err != nil {
				return err
			}
			if saved == nil {
				fmt.Println(cli.SubtleStyle.Render("Nothing saved."))
				return nil
			}

			fmt.Println(cli.FormatSuccess("Entry recorded"))
			fmt.Println(cli.SubtleStyle.Render(analysis.Wisdom(saved)))
			return nil
		},
	}
}
