package scheduler

import (
	"context"
	"fmt"
	"testing"

	"stream-insights/report"
	"stream-insights/storage"
)

type fakeFetcher struct {
	data []byte
	err  error
}

func (f *fakeFetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	return f.data, f.err
}

const testCSV = `show_id,type,title,director,cast,country,date_added,release_year,rating,duration,listed_in,description
s1,Movie,Alpha,Jane Doe,Actor One,India,"January 15, 2021",2020,PG-13,90 min,Dramas,A quiet tale.
s2,TV Show,Beta,,Actor Two,France,"July 4, 2022",2021,TV-MA,2 Seasons,Comedies,Nothing notable.
`

func TestCatalogRefreshJob(t *testing.T) {
	store := storage.NewSQLiteStorage(t.TempDir())
	if err := store.Initialize(); err != nil {
		t.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	fetcher := &fakeFetcher{data: []byte(testCSV)}
	job := NewCatalogRefreshJob(fetcher, store, nil, "https://example.com/catalog.csv", report.DefaultParams())

	if job.Name() != "catalog_refresh" {
		t.Errorf("Unexpected job name: %s", job.Name())
	}

	if err := job.Run(context.Background()); err != nil {
		t.Fatalf("Refresh job failed: %v", err)
	}

	records, err := store.LoadAll()
	if err != nil {
		t.Fatalf("Failed to load stored catalog: %v", err)
	}

	if len(records) != 2 {
		t.Fatalf("Expected 2 stored records, got %d", len(records))
	}
}

func TestCatalogRefreshJobFetchFailure(t *testing.T) {
	store := storage.NewSQLiteStorage(t.TempDir())
	if err := store.Initialize(); err != nil {
		t.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	fetcher := &fakeFetcher{err: fmt.Errorf("connection refused")}
	job := NewCatalogRefreshJob(fetcher, store, nil, "https://example.com/catalog.csv", report.DefaultParams())

	if err := job.Run(context.Background()); err == nil {
		t.Error("Expected fetch failure to fail the job")
	}
}

func TestCatalogRefreshJobBadCatalog(t *testing.T) {
	store := storage.NewSQLiteStorage(t.TempDir())
	if err := store.Initialize(); err != nil {
		t.Fatalf("Failed to initialize storage: %v", err)
	}
	defer store.Close()

	fetcher := &fakeFetcher{data: []byte("not,a,catalog\n1,2,3\n")}
	job := NewCatalogRefreshJob(fetcher, store, nil, "https://example.com/catalog.csv", report.DefaultParams())

	if err := job.Run(context.Background()); err == nil {
		t.Error("Expected malformed catalog to fail the job")
	}

	// The previously stored catalog (none) must stay untouched.
	records, err := store.LoadAll()
	if err != nil {
		t.Fatalf("Failed to load stored catalog: %v", err)
	}
	if len(records) != 0 {
		t.Errorf("Expected empty catalog, got %d records", len(records))
	}
}
