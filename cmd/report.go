package cmd

import (
	"fmt"
	"os"

	"stream-insights/catalog"
	"stream-insights/report"

	"github.com/spf13/cobra"
)

var (
	reportCSV  string
	listNames  bool
	reportArgs report.Params
)

func init() {
	rootCmd.AddCommand(reportCmd)

	defaults := report.DefaultParams()
	reportArgs = defaults

	reportCmd.Flags().StringVar(&reportCSV, "csv", "",
		"Run against a CSV file directly instead of the stored catalog")
	reportCmd.Flags().BoolVar(&listNames, "list", false, "List available report names and exit")

	reportCmd.Flags().IntVar(&reportArgs.ReleaseYear, "year", defaults.ReleaseYear, "Release year for the yearly movie listing")
	reportCmd.Flags().StringVar(&reportArgs.Director, "director", defaults.Director, "Director name for the director listing")
	reportCmd.Flags().StringVar(&reportArgs.Actor, "actor", defaults.Actor, "Actor name for the recent-movies listing")
	reportCmd.Flags().StringVar(&reportArgs.Country, "country", defaults.Country, "Country for the share and actor rankings")
	reportCmd.Flags().StringVar(&reportArgs.Genre, "genre", defaults.Genre, "Genre for the genre listing")
	reportCmd.Flags().IntVar(&reportArgs.MinSeasons, "min-seasons", defaults.MinSeasons, "Season threshold for long-running shows")
	reportCmd.Flags().IntVar(&reportArgs.AddedYears, "added-years", defaults.AddedYears, "Window in years for recently added content")
	reportCmd.Flags().IntVar(&reportArgs.ActorYears, "actor-years", defaults.ActorYears, "Window in years for the actor listing")
	reportCmd.Flags().IntVar(&reportArgs.TopCountries, "top-countries", defaults.TopCountries, "Row limit for the country ranking")
	reportCmd.Flags().IntVar(&reportArgs.TopYears, "top-years", defaults.TopYears, "Row limit for the release-share ranking")
	reportCmd.Flags().IntVar(&reportArgs.TopActors, "top-actors", defaults.TopActors, "Row limit for the actor ranking")
}

var reportCmd = &cobra.Command{
	Use:   "report [name ...]",
	Short: "Compute catalog reports and print them as text tables",
	Long: `Report runs the named reports (or the whole suite when no name is
given) against the stored catalog and prints each one as an aligned
text table. Use --list to see the available report names.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if listNames {
			for _, name := range report.Names() {
				fmt.Fprintln(os.Stdout, name)
			}
			return nil
		}

		records, err := reportRecords()
		if err != nil {
			return err
		}
		if len(records) == 0 {
			return fmt.Errorf("the catalog is empty; run 'stream-insights load' first")
		}

		engine := report.NewEngine(records)

		if len(args) == 0 {
			return report.RenderAll(os.Stdout, engine.RunAll(reportArgs))
		}

		for _, name := range args {
			res, err := engine.Run(name, reportArgs)
			if err != nil {
				return err
			}
			if err := report.Render(os.Stdout, res); err != nil {
				return err
			}
		}
		return nil
	},
}

// reportRecords loads the snapshot the engine will run on, either from
// the stored catalog or straight from a CSV file.
func reportRecords() ([]catalog.Record, error) {
	if reportCSV != "" {
		return catalog.LoadFile(reportCSV)
	}

	store, err := openStorage()
	if err != nil {
		return nil, err
	}
	defer store.Close()

	return store.LoadAll()
}
