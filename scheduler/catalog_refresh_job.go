package scheduler

import (
	"bytes"
	"context"
	"fmt"
	"log"

	"stream-insights/catalog"
	"stream-insights/fetch"
	"stream-insights/insights"
	"stream-insights/notifier"
	"stream-insights/report"
	"stream-insights/storage"
)

// CatalogRefreshJob re-downloads the catalog export, replaces the stored
// copy, recomputes the full report suite and mails the digest.
type CatalogRefreshJob struct {
	fetcher       fetch.FetcherInterface
	storage       *storage.SQLiteStorage
	narrator      insights.Narrator
	sourceURL     string
	params        report.Params
	emailNotifier *notifier.EmailNotifier
	sendEmails    bool
}

// NewCatalogRefreshJob creates the refresh job. Email notifications are
// enabled only when SMTP host and recipient are configured; the narrator
// may be nil.
func NewCatalogRefreshJob(fetcher fetch.FetcherInterface, storage *storage.SQLiteStorage, narrator insights.Narrator, sourceURL string, params report.Params) *CatalogRefreshJob {
	emailConfig := notifier.GetEmailConfigFromEnv()
	var emailNotifier *notifier.EmailNotifier
	sendEmails := false

	if emailConfig.SMTPHost != "" && emailConfig.RecipientEmail != "" {
		var err error
		emailNotifier, err = notifier.NewEmailNotifier(emailConfig)
		if err != nil {
			log.Printf("Failed to create email notifier: %v", err)
		} else {
			sendEmails = true
			log.Printf("Report digests will be sent to: %s", emailConfig.RecipientEmail)
		}
	} else {
		log.Println("Email digests disabled: missing configuration")
	}

	return &CatalogRefreshJob{
		fetcher:       fetcher,
		storage:       storage,
		narrator:      narrator,
		sourceURL:     sourceURL,
		params:        params,
		emailNotifier: emailNotifier,
		sendEmails:    sendEmails,
	}
}

// Name returns the name of the job
func (j *CatalogRefreshJob) Name() string {
	return "catalog_refresh"
}

// Run executes the job
func (j *CatalogRefreshJob) Run(ctx context.Context) error {
	log.Printf("Refreshing catalog from %s", j.sourceURL)

	data, err := j.fetcher.Fetch(ctx, j.sourceURL)
	if err != nil {
		return fmt.Errorf("failed to fetch catalog: %v", err)
	}

	records, err := catalog.ReadCSV(bytes.NewReader(data))
	if err != nil {
		return fmt.Errorf("failed to parse catalog: %v", err)
	}

	if err := j.storage.ReplaceAll(records); err != nil {
		return fmt.Errorf("failed to store catalog: %v", err)
	}

	engine := report.NewEngine(records)
	results := engine.RunAll(j.params)
	log.Printf("Computed %d reports over %d records", len(results), engine.Size())

	narrative := j.narrate(ctx, results)

	if j.sendEmails && j.emailNotifier != nil {
		log.Printf("Sending report digest with %d reports", len(results))
		if err := j.emailNotifier.NotifyReportDigest(results, narrative, engine.Size(), j.sourceURL); err != nil {
			log.Printf("Failed to send report digest: %v", err)
		}
	}

	return nil
}

func (j *CatalogRefreshJob) narrate(ctx context.Context, results []report.Result) string {
	if j.narrator == nil {
		return ""
	}

	narrative, err := j.narrator.Narrate(ctx, results)
	if err != nil {
		log.Printf("Failed to generate report narrative: %v", err)
		return ""
	}
	return narrative
}
