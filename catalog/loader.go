package catalog

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
)

// Header is the canonical column order of the catalog export.
var Header = []string{
	"show_id", "type", "title", "director", "cast", "country",
	"date_added", "release_year", "rating", "duration", "listed_in",
	"description",
}

// ReadCSV loads the full catalog from a CSV stream with a header row.
// The collection is loaded once and treated as read-only afterwards; any
// malformed row aborts the load with an InputFormatError.
func ReadCSV(r io.Reader) ([]Record, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = len(Header)

	header, err := cr.Read()
	if err != nil {
		return nil, &InputFormatError{Line: 1, Reason: "missing header row", Err: err}
	}
	if err := checkHeader(header); err != nil {
		return nil, err
	}

	var (
		records []Record
		seen    = make(map[string]bool)
		line    = 1
	)

	for {
		line++
		row, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, &InputFormatError{Line: line, Reason: "malformed CSV row", Err: err}
		}

		rec, err := recordFromRow(row)
		if err != nil {
			return nil, &InputFormatError{Line: line, Reason: err.Error(), Err: err}
		}

		if seen[rec.ShowID] {
			return nil, &InputFormatError{Line: line, Reason: fmt.Sprintf("duplicate show_id %q", rec.ShowID)}
		}
		seen[rec.ShowID] = true

		records = append(records, rec)
	}

	log.Printf("Loaded %d catalog records", len(records))
	return records, nil
}

// LoadFile reads the catalog from a CSV file on disk.
func LoadFile(path string) ([]Record, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog file: %v", err)
	}
	defer f.Close()

	return ReadCSV(f)
}

func checkHeader(header []string) error {
	for i, want := range Header {
		if strings.TrimSpace(strings.ToLower(header[i])) != want {
			return &InputFormatError{
				Line:   1,
				Reason: fmt.Sprintf("unexpected column %d: got %q, want %q", i+1, header[i], want),
			}
		}
	}
	return nil
}

func recordFromRow(row []string) (Record, error) {
	typ, err := ParseType(row[1])
	if err != nil {
		return Record{}, err
	}

	showID := strings.TrimSpace(row[0])
	if showID == "" {
		return Record{}, errors.New("empty show_id")
	}

	year, err := strconv.Atoi(strings.TrimSpace(row[7]))
	if err != nil {
		return Record{}, fmt.Errorf("release_year %q is not an integer", row[7])
	}

	return Record{
		ShowID:      showID,
		Type:        typ,
		Title:       row[2],
		Director:    row[3],
		Cast:        row[4],
		Country:     row[5],
		DateAdded:   row[6],
		ReleaseYear: year,
		Rating:      row[8],
		Duration:    row[9],
		ListedIn:    row[10],
		Description: row[11],
	}, nil
}
