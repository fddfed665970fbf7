package cmd

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"os"
	"time"

	"stream-insights/catalog"
	"stream-insights/fetch"

	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(loadCmd)
}

var loadCmd = &cobra.Command{
	Use:   "load <file-or-url>",
	Short: "Load a catalog CSV export into the local database",
	Long: `Load reads a catalog CSV (12 columns with a header row) from a local
file or an HTTP(S) URL, validates it, and replaces the stored catalog.
A malformed file aborts the load; the previously stored catalog stays
untouched.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		source := args[0]

		records, err := readCatalog(source)
		if err != nil {
			return err
		}

		store, err := openStorage()
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.ReplaceAll(records); err != nil {
			return fmt.Errorf("failed to store catalog: %v", err)
		}

		stats, err := store.GetStats()
		if err != nil {
			return fmt.Errorf("failed to get catalog stats: %v", err)
		}

		fmt.Fprintf(os.Stdout, "Loaded %d records (%d movies, %d TV shows) from %s\n",
			stats["total"], stats["movies"], stats["tv_shows"], source)
		return nil
	},
}

// readCatalog loads records from a local file or a remote URL.
func readCatalog(source string) ([]catalog.Record, error) {
	if !isRemote(source) {
		return catalog.LoadFile(source)
	}

	log.Printf("Downloading catalog from %s", source)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	data, err := fetch.NewFetcher().Fetch(ctx, source)
	if err != nil {
		return nil, err
	}
	return catalog.ReadCSV(bytes.NewReader(data))
}
