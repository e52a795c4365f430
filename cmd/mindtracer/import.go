package main

import (
	"fmt"
	"os"

	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"

	"github.com/tmoriguchi/mindtracer/internal/cli"
	"github.com/tmoriguchi/mindtracer/internal/healthimport"
)

func importCmd() *cobra.Command {
	var noProgress bool

	cmd := &cobra.Command{
		Use:   "import <file>",
		Short: "Import state-of-mind samples from a health export",
		Long: `Read a JSON health export and convert its state-of-mind samples into
entries. Samples with an unrecognized kind or no mappable emotion labels
are skipped.`,
		Args: cobra.ExactArgs(1),
		RunE: func(_ *cobra.Command, args []string) error {
			store, err := initEntryStore()
			if err != nil {
				return err
			}

			var progress func(total int) healthimport.Progress
			if !noProgress {
				progress = func(total int) healthimport.Progress {
					return progressbar.NewOptions(total,
						progressbar.OptionSetWriter(os.Stderr),
						progressbar.OptionEnableColorCodes(true),
						progressbar.OptionShowCount(),
						progressbar.OptionSetWidth(40),
						progressbar.OptionSetDescription("[cyan][bold]Importing samples...[reset]"),
						progressbar.OptionOnCompletion(func() {
							fmt.Fprintln(os.Stderr)
						}),
					)
				}
			}

			importer := healthimport.NewImporter(store, progress)
			result, err := importer.ImportFile(args[0])
			if err != nil {
				return err
			}

			fmt.Println(cli.FormatSuccess(fmt.Sprintf("Imported %d entries (%d skipped)", result.Imported, result.Skipped)))
			return nil
		},
	}

	cmd.Flags().BoolVar(&noProgress, "no-progress", false, "disable the progress bar")
	return cmd
}
