// Package cmd implements the command-line interface for stream-insights.
package cmd

import (
	"fmt"
	"log"
	"os"
	"strings"

	"stream-insights/storage"

	"github.com/spf13/cobra"
)

var dataPath string

func init() {
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)

	rootCmd.PersistentFlags().StringVar(&dataPath, "data", defaultDataPath(),
		"Directory holding the SQLite catalog database")
}

var rootCmd = &cobra.Command{
	Use:   "stream-insights",
	Short: "Business-intelligence reports over a streaming media catalog",
	Long: `stream-insights loads a denormalized media catalog export (CSV) and
computes a fixed suite of 15 analytical reports over it: catalog
composition, rating and genre distributions, country rankings, director
and actor breakdowns, and keyword-based content categorization.`,
}

// Execute processes the CLI entry point.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func defaultDataPath() string {
	if p := os.Getenv("DATA_PATH"); p != "" {
		return p
	}
	return "./data"
}

// openStorage initializes the SQLite store shared by the subcommands.
func openStorage() (*storage.SQLiteStorage, error) {
	store := storage.NewSQLiteStorage(dataPath)
	if err := store.Initialize(); err != nil {
		return nil, fmt.Errorf("failed to initialize storage: %v", err)
	}
	return store, nil
}

// isRemote reports whether the source argument is a URL rather than a
// local file path.
func isRemote(source string) bool {
	return strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://")
}
