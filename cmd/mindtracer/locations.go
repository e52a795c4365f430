package main

import (
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/tmoriguchi/mindtracer/internal/analysis"
	"github.com/tmoriguchi/mindtracer/internal/cli"
	"github.com/tmoriguchi/mindtracer/internal/model"
)

func locationsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "locations",
		Short: "Manage saved locations and view entries by place",
		Long:  `Save named coordinates for the entry flow and group recorded entries by place.`,
	}

	cmd.AddCommand(listLocationsCmd())
	cmd.AddCommand(addLocationCmd())
	cmd.AddCommand(deleteLocationCmd())
	cmd.AddCommand(mapLocationsCmd())

	return cmd
}

func listLocationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List saved locations",
		RunE: func(_ *cobra.Command, _ []string) error {
			store, err := initLocationStore()
			if err != nil {
				return err
			}

			locations := store.All()
			if len(locations) == 0 {
				fmt.Println(cli.InfoStyle.Render("No saved locations. Use 'mindtracer locations add' to create one."))
				return nil
			}

			w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
			defer func() { _ = w.Flush() }()

			fmt.Fprintln(w, "KEY\tNAME\tLATITUDE\tLONGITUDE")
			for _, loc := range locations {
				fmt.Fprintf(w, "%s\t%s\t%.4f\t%.4f\n", loc.ID, loc.Name, loc.Latitude, loc.Longitude)
			}
			return nil
		},
	}
}

func addLocationCmd() *cobra.Command {
	var latFlag, lonFlag float64

	cmd := &cobra.Command{
		Use:   "add <name>",
		Short: "Save a named location",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := initLocationStore()
			if err != nil {
				return err
			}

			loc := model.SavedLocation{Name: args[0], Latitude: latFlag, Longitude: lonFlag}
			if err := store.Add(loc); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Saved %q at %s", loc.Name, loc.ToCoordinate().RoundedKey())))
			return nil
		},
	}

	cmd.Flags().Float64Var(&latFlag, "lat", 0, "latitude")
	cmd.Flags().Float64Var(&lonFlag, "lon", 0, "longitude")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lon")

	return cmd
}

func deleteLocationCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <key>",
		Short: "Delete a saved location",
		Args:  cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := initLocationStore()
			if err != nil {
				return err
			}
			if err := store.Delete(args[0]); err != nil {
				return err
			}
			fmt.Println(cli.FormatSuccess("Location deleted"))
			return nil
		},
	}
}

func mapLocationsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "map",
		Short: "Group entries by place",
		Long:  `Group every entry by its rounded coordinate, newest first within each place.`,
		RunE: func(_ *cobra.Command, _ []string) error {
			entryStore, err := initEntryStore()
			if err != nil {
				return err
			}
			locationStore, err := initLocationStore()
			if err != nil {
				return err
			}

			// Resolve saved names for known keys.
			names := make(map[string]string)
			for _, loc := range locationStore.All() {
				names[loc.ID] = loc.Name
			}

			groups := analysis.GroupByLocation(entryStore.All())
			if len(groups) == 0 {
				fmt.Println(cli.InfoStyle.Render("No entries yet."))
				return nil
			}

			for _, group := range groups {
				title := group.ID
				if name, ok := names[group.ID]; ok {
					title = fmt.Sprintf("%s (%s)", name, group.ID)
				}
				fmt.Printf("%s %s\n", cli.PinIcon, cli.BoldStyle.Render(title))
				for _, e := range group.Entries {
					fmt.Printf("  %s  %s  %s\n",
						e.Timestamp.Local().Format("2006-01-02 15:04"),
						cli.FormatValence(e.Valence),
						e.Classification().Prose())
				}
				fmt.Println()
			}
			return nil
		},
	}
}
