// Package fetch retrieves the catalog export from a remote URL.
package fetch

import (
	"context"
	"fmt"
	"log"
	"time"

	"github.com/gocolly/colly"
	"github.com/sethvargo/go-retry"
)

// FetcherInterface is the remote-retrieval contract used by the CLI and
// the refresh job.
type FetcherInterface interface {
	Fetch(ctx context.Context, url string) ([]byte, error)
}

// Fetcher downloads raw catalog bytes, retrying transient failures with
// exponential backoff.
type Fetcher struct {
	maxRetries uint64
	baseDelay  time.Duration
}

func NewFetcher() *Fetcher {
	return &Fetcher{
		maxRetries: 3,
		baseDelay:  2 * time.Second,
	}
}

// Fetch downloads the body at url. Non-2xx responses and transport errors
// are retried up to the configured attempt limit.
func (f *Fetcher) Fetch(ctx context.Context, url string) ([]byte, error) {
	var body []byte

	backoff := retry.WithMaxRetries(f.maxRetries, retry.NewExponential(f.baseDelay))
	err := retry.Do(ctx, backoff, func(ctx context.Context) error {
		data, err := f.fetchOnce(url)
		if err != nil {
			log.Printf("Fetch attempt for %s failed: %v", url, err)
			return retry.RetryableError(err)
		}
		body = data
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch %s: %v", url, err)
	}

	log.Printf("Fetched %d bytes from %s", len(body), url)
	return body, nil
}

func (f *Fetcher) fetchOnce(url string) ([]byte, error) {
	c := colly.NewCollector(colly.IgnoreRobotsTxt())

	var (
		body   []byte
		status int
	)

	c.OnRequest(func(r *colly.Request) {
		log.Println("Fetching:", r.URL)
	})

	c.OnResponse(func(r *colly.Response) {
		status = r.StatusCode
		body = r.Body
	})

	if err := c.Visit(url); err != nil {
		return nil, err
	}

	if status < 200 || status >= 300 {
		return nil, fmt.Errorf("unexpected status %d", status)
	}
	if len(body) == 0 {
		return nil, fmt.Errorf("empty response body")
	}

	return body, nil
}
