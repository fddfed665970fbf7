package cmd

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"stream-insights/fetch"
	"stream-insights/insights"
	"stream-insights/report"
	"stream-insights/scheduler"
	"stream-insights/storage"

	"github.com/spf13/cobra"
)

var (
	refreshHour  int
	runAtStartup bool
)

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().IntVar(&refreshHour, "hour", 6, "Hour of day (0-23) for the daily catalog refresh")
	serveCmd.Flags().BoolVar(&runAtStartup, "at-startup", false, "Run the refresh once immediately after starting")
}

var serveCmd = &cobra.Command{
	Use:   "serve <catalog-url>",
	Short: "Run the daily catalog refresh scheduler",
	Long: `Serve keeps the process alive and refreshes the catalog once a day:
it downloads the CSV export, replaces the stored catalog, recomputes
all reports and emails the digest (when SMTP is configured via
EMAIL_SMTP_HOST / EMAIL_SENDER / EMAIL_PASSWORD / EMAIL_RECIPIENT).`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sourceURL := args[0]
		if !isRemote(sourceURL) {
			return fmt.Errorf("catalog source %q must be an HTTP(S) URL", sourceURL)
		}

		log.Println("Starting Stream Insights scheduler...")

		store, err := openStorage()
		if err != nil {
			return err
		}
		defer store.Close()

		refreshJob := scheduler.NewCatalogRefreshJob(
			fetch.NewFetcher(),
			store,
			insights.NewFromEnv(),
			sourceURL,
			report.DefaultParams(),
		)

		sched := scheduler.NewScheduler()
		if err := sched.AddDailyJob(refreshHour, refreshJob); err != nil {
			return fmt.Errorf("failed to schedule catalog refresh: %v", err)
		}

		sched.Start()
		log.Printf("Catalog will be refreshed daily at %02d:00", refreshHour)

		if runAtStartup || os.Getenv("RUN_AT_STARTUP") == "true" {
			log.Println("Running initial catalog refresh at startup")
			if err := sched.RunJobNow(refreshJob.Name()); err != nil {
				log.Printf("Error running initial refresh: %v", err)
			}
		}

		displayStoredStats(store)

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

		log.Println("Scheduler running. Press Ctrl+C to exit")

		sig := <-quit
		log.Printf("Received signal %s, shutting down...", sig)

		sched.Stop()
		return nil
	},
}

// displayStoredStats logs a short summary of the stored catalog.
func displayStoredStats(store *storage.SQLiteStorage) {
	stats, err := store.GetStats()
	if err != nil {
		log.Printf("Error getting catalog stats: %v", err)
		return
	}

	log.Printf("Stored catalog: %d records (%d movies, %d TV shows)",
		stats["total"], stats["movies"], stats["tv_shows"])
}
