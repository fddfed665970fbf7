// Package report computes the fixed business-intelligence reports of the
// catalog. Every report is a pure function over an immutable snapshot of
// records, so one engine can serve any number of callers concurrently.
package report

import (
	"sort"
	"strings"
	"time"

	"stream-insights/catalog"

	"github.com/samber/lo"
)

// Engine evaluates reports against a fixed snapshot of the catalog.
// Date-relative reports ("added in the last N years") are measured against
// the engine's reference time.
type Engine struct {
	records []catalog.Record
	now     time.Time
}

// NewEngine creates an engine over the given records using the current
// time as reference.
func NewEngine(records []catalog.Record) *Engine {
	return NewEngineAt(records, time.Now())
}

// NewEngineAt creates an engine with an explicit reference time.
func NewEngineAt(records []catalog.Record, now time.Time) *Engine {
	return &Engine{records: records, now: now}
}

// Size returns the number of records in the snapshot.
func (e *Engine) Size() int {
	return len(e.records)
}

// containsFold is the case-insensitive substring test used by all keyword
// filters. It deliberately matches inside words ("violence" matches
// "violences" too).
func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// inCountry reports whether the record lists the country, comparing
// expanded entries case-insensitively. Records with no country never match.
func inCountry(r catalog.Record, country string) bool {
	return lo.ContainsBy(r.Countries(), func(c string) bool {
		return strings.EqualFold(c, country)
	})
}

func sortByTitle(records []catalog.Record) {
	sort.Slice(records, func(i, j int) bool {
		if records[i].Title != records[j].Title {
			return records[i].Title < records[j].Title
		}
		return records[i].ShowID < records[j].ShowID
	})
}

func topN[T any](items []T, n int) []T {
	if n >= 0 && len(items) > n {
		return items[:n]
	}
	return items
}
