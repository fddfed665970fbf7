package report

import (
	"sort"
	"strings"
	"time"

	"stream-insights/catalog"

	"github.com/samber/lo"
)

// MovieLength is one row of the longest-movie report.
type MovieLength struct {
	Title   string
	Minutes int
}

// ShowSeasons is one row of the long-running-shows report.
type ShowSeasons struct {
	Title   string
	Seasons int
}

// MoviesReleasedIn lists all movies with the given release year, by title.
func (e *Engine) MoviesReleasedIn(year int) []catalog.Record {
	out := lo.Filter(e.records, func(r catalog.Record, _ int) bool {
		return r.Type == catalog.TypeMovie && r.ReleaseYear == year
	})
	sortByTitle(out)
	return out
}

// LongestMovies returns the movie(s) with the maximum parsed duration in
// minutes. Movies whose duration field does not start with a number are
// skipped rather than failing the report.
func (e *Engine) LongestMovies() []MovieLength {
	longest := -1
	var out []MovieLength

	for _, r := range e.records {
		if r.Type != catalog.TypeMovie {
			continue
		}
		minutes, err := r.DurationValue()
		if err != nil {
			continue
		}
		switch {
		case minutes > longest:
			longest = minutes
			out = []MovieLength{{Title: r.Title, Minutes: minutes}}
		case minutes == longest:
			out = append(out, MovieLength{Title: r.Title, Minutes: minutes})
		}
	}

	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out
}

// AddedSince lists the records added to the catalog within the last
// `years` years of the engine's reference time, newest first. Records with
// a missing or unparseable date_added are excluded, never treated as a
// match.
func (e *Engine) AddedSince(years int) []catalog.Record {
	cutoff := e.now.AddDate(-years, 0, 0)

	type dated struct {
		rec   catalog.Record
		added time.Time
	}

	var matched []dated
	for _, r := range e.records {
		added, err := r.AddedAt()
		if err != nil {
			continue
		}
		if !added.Before(cutoff) {
			matched = append(matched, dated{rec: r, added: added})
		}
	}

	sort.Slice(matched, func(i, j int) bool {
		if !matched[i].added.Equal(matched[j].added) {
			return matched[i].added.After(matched[j].added)
		}
		return matched[i].rec.Title < matched[j].rec.Title
	})

	return lo.Map(matched, func(d dated, _ int) catalog.Record { return d.rec })
}

// TitlesByDirector lists all content directed by the given name. The
// director field is expanded first, so a co-directing credit still
// matches. Comparison is case-insensitive on the expanded entries.
func (e *Engine) TitlesByDirector(name string) []catalog.Record {
	out := lo.Filter(e.records, func(r catalog.Record, _ int) bool {
		return lo.ContainsBy(r.Directors(), func(d string) bool {
			return strings.EqualFold(d, name)
		})
	})
	sortByTitle(out)
	return out
}

// LongRunningShows lists TV shows with strictly more than minSeasons
// seasons, longest first. Shows with an unparseable duration are skipped.
func (e *Engine) LongRunningShows(minSeasons int) []ShowSeasons {
	var out []ShowSeasons
	for _, r := range e.records {
		if r.Type != catalog.TypeTVShow {
			continue
		}
		seasons, err := r.DurationValue()
		if err != nil {
			continue
		}
		if seasons > minSeasons {
			out = append(out, ShowSeasons{Title: r.Title, Seasons: seasons})
		}
	}

	sort.Slice(out, func(i, j int) bool {
		if out[i].Seasons != out[j].Seasons {
			return out[i].Seasons > out[j].Seasons
		}
		return out[i].Title < out[j].Title
	})
	return out
}

// MoviesInGenre lists all movies whose listed_in field contains the genre
// as a case-insensitive substring.
func (e *Engine) MoviesInGenre(genre string) []catalog.Record {
	out := lo.Filter(e.records, func(r catalog.Record, _ int) bool {
		return r.Type == catalog.TypeMovie && containsFold(r.ListedIn, genre)
	})
	sortByTitle(out)
	return out
}

// MissingDirector lists every record without a director. Absent, null and
// whitespace-only values all qualify.
func (e *Engine) MissingDirector() []catalog.Record {
	out := lo.Filter(e.records, func(r catalog.Record, _ int) bool {
		return !r.HasDirector()
	})
	sortByTitle(out)
	return out
}

// ActorRecentMovies lists movies featuring the actor (case-insensitive
// substring over the cast field) released strictly after
// referenceYear - years, newest release first.
func (e *Engine) ActorRecentMovies(actor string, years int) []catalog.Record {
	minYear := e.now.Year() - years

	out := lo.Filter(e.records, func(r catalog.Record, _ int) bool {
		return r.Type == catalog.TypeMovie &&
			r.ReleaseYear > minYear &&
			containsFold(r.Cast, actor)
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].ReleaseYear != out[j].ReleaseYear {
			return out[i].ReleaseYear > out[j].ReleaseYear
		}
		return out[i].Title < out[j].Title
	})
	return out
}
