package catalog

import (
	"strconv"
	"strings"
	"time"
)

// Type classifies a catalog entry as a movie or a TV show.
type Type string

const (
	TypeMovie  Type = "Movie"
	TypeTVShow Type = "TV Show"
)

// dateAddedLayout is the textual pattern used by the catalog export,
// e.g. "September 25, 2021".
const dateAddedLayout = "January 2, 2006"

// Record is one row of the media catalog. Multi-value fields (Director,
// Cast, Country, ListedIn) hold comma-separated lists and should be read
// through their accessor methods rather than compared as raw strings.
type Record struct {
	ShowID      string `json:"show_id"`
	Type        Type   `json:"type"`
	Title       string `json:"title"`
	Director    string `json:"director,omitempty"`
	Cast        string `json:"cast,omitempty"`
	Country     string `json:"country,omitempty"`
	DateAdded   string `json:"date_added,omitempty"`
	ReleaseYear int    `json:"release_year"`
	Rating      string `json:"rating,omitempty"`
	Duration    string `json:"duration"`
	ListedIn    string `json:"listed_in"`
	Description string `json:"description"`
}

// SplitMulti splits a comma-separated multi-value field into its trimmed
// entries, dropping empty elements.
func SplitMulti(field string) []string {
	if strings.TrimSpace(field) == "" {
		return nil
	}

	var values []string
	for _, part := range strings.Split(field, ",") {
		if v := strings.TrimSpace(part); v != "" {
			values = append(values, v)
		}
	}
	return values
}

// Directors returns the individual director names of the record.
func (r Record) Directors() []string {
	return SplitMulti(r.Director)
}

// CastMembers returns the individual actor names of the record.
func (r Record) CastMembers() []string {
	return SplitMulti(r.Cast)
}

// Countries returns the individual country names of the record. A record
// with an empty country field yields no entries, so it never contributes
// to country-expanded reports.
func (r Record) Countries() []string {
	return SplitMulti(r.Country)
}

// Genres returns the individual genre tags of the record.
func (r Record) Genres() []string {
	return SplitMulti(r.ListedIn)
}

// HasDirector reports whether the record carries at least one director.
func (r Record) HasDirector() bool {
	return strings.TrimSpace(r.Director) != ""
}

// DurationValue extracts the leading integer of the duration field: the
// minute count for movies, the season count for TV shows. The caller is
// expected to skip the record for that report when a ParseError is
// returned, not to abort the report.
func (r Record) DurationValue() (int, error) {
	return parseLeadingInt("duration", r.Duration)
}

// AddedAt parses the date_added field. Records with a missing or
// malformed date return a ParseError and are excluded from date-filtered
// reports.
func (r Record) AddedAt() (time.Time, error) {
	trimmed := strings.TrimSpace(r.DateAdded)
	if trimmed == "" {
		return time.Time{}, &ParseError{Field: "date_added", Value: r.DateAdded, Reason: "empty value"}
	}

	t, err := time.Parse(dateAddedLayout, trimmed)
	if err != nil {
		return time.Time{}, &ParseError{Field: "date_added", Value: r.DateAdded, Reason: "not a 'Month DD, YYYY' date"}
	}
	return t, nil
}

// ParseType maps the raw type column onto the Type enum.
func ParseType(raw string) (Type, error) {
	switch strings.TrimSpace(raw) {
	case string(TypeMovie):
		return TypeMovie, nil
	case string(TypeTVShow):
		return TypeTVShow, nil
	default:
		return "", &ParseError{Field: "type", Value: raw, Reason: "must be 'Movie' or 'TV Show'"}
	}
}

// parseLeadingInt parses the integer token before the first space of a
// value like "90 min" or "3 Seasons".
func parseLeadingInt(field, value string) (int, error) {
	trimmed := strings.TrimSpace(value)
	if trimmed == "" {
		return 0, &ParseError{Field: field, Value: value, Reason: "empty value"}
	}

	token, _, _ := strings.Cut(trimmed, " ")
	n, err := strconv.Atoi(token)
	if err != nil || n < 0 {
		return 0, &ParseError{Field: field, Value: value, Reason: "leading token is not a number"}
	}
	return n, nil
}
