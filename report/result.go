package report

import (
	"fmt"
	"strconv"

	"stream-insights/catalog"

	"github.com/samber/lo"
)

// Result is the uniform tabular form of any report, used by the CLI
// printer and the email digest.
type Result struct {
	Name    string
	Title   string
	Columns []string
	Rows    [][]string
}

// Params carries the tunable inputs of the parameterized reports. The
// zero value is not useful; start from DefaultParams.
type Params struct {
	ReleaseYear  int
	Director     string
	Actor        string
	Country      string
	Genre        string
	MinSeasons   int
	AddedYears   int
	ActorYears   int
	TopCountries int
	TopYears     int
	TopActors    int
}

// DefaultParams returns the classic parameter set the report suite was
// designed around.
func DefaultParams() Params {
	return Params{
		ReleaseYear:  2020,
		Director:     "Rajiv Chilaka",
		Actor:        "Salman Khan",
		Country:      "India",
		Genre:        "Documentaries",
		MinSeasons:   5,
		AddedYears:   5,
		ActorYears:   10,
		TopCountries: 5,
		TopYears:     5,
		TopActors:    10,
	}
}

// Definition binds a report name to its evaluation.
type Definition struct {
	Name  string
	Title func(p Params) string
	Run   func(e *Engine, p Params) Result
}

// Definitions returns the full report suite in presentation order.
func Definitions() []Definition {
	return []Definition{
		{
			Name:  "titles-by-type",
			Title: func(Params) string { return "Movies vs TV shows" },
			Run: func(e *Engine, _ Params) Result {
				rows := lo.Map(e.TitleCountByType(), func(c TypeCount, _ int) []string {
					return []string{string(c.Type), strconv.Itoa(c.Total)}
				})
				return Result{Columns: []string{"type", "total_count"}, Rows: rows}
			},
		},
		{
			Name:  "top-rating-by-type",
			Title: func(Params) string { return "Most common rating per type" },
			Run: func(e *Engine, _ Params) Result {
				rows := lo.Map(e.MostCommonRatingByType(), func(l RatingLeader, _ int) []string {
					return []string{string(l.Type), l.Rating, strconv.Itoa(l.Total)}
				})
				return Result{Columns: []string{"type", "rating", "total_count"}, Rows: rows}
			},
		},
		{
			Name:  "movies-released-in-year",
			Title: func(p Params) string { return fmt.Sprintf("Movies released in %d", p.ReleaseYear) },
			Run: func(e *Engine, p Params) Result {
				return recordResult(e.MoviesReleasedIn(p.ReleaseYear))
			},
		},
		{
			Name:  "top-countries",
			Title: func(p Params) string { return fmt.Sprintf("Top %d countries by content", p.TopCountries) },
			Run: func(e *Engine, p Params) Result {
				rows := lo.Map(e.TopCountries(p.TopCountries), func(c CountryCount, _ int) []string {
					return []string{c.Country, strconv.Itoa(c.Total)}
				})
				return Result{Columns: []string{"country", "total_content"}, Rows: rows}
			},
		},
		{
			Name:  "longest-movies",
			Title: func(Params) string { return "Longest movie" },
			Run: func(e *Engine, _ Params) Result {
				rows := lo.Map(e.LongestMovies(), func(m MovieLength, _ int) []string {
					return []string{m.Title, strconv.Itoa(m.Minutes)}
				})
				return Result{Columns: []string{"title", "minutes"}, Rows: rows}
			},
		},
		{
			Name:  "recently-added",
			Title: func(p Params) string { return fmt.Sprintf("Content added in the last %d years", p.AddedYears) },
			Run: func(e *Engine, p Params) Result {
				rows := lo.Map(e.AddedSince(p.AddedYears), func(r catalog.Record, _ int) []string {
					return []string{r.ShowID, string(r.Type), r.Title, r.DateAdded}
				})
				return Result{Columns: []string{"show_id", "type", "title", "date_added"}, Rows: rows}
			},
		},
		{
			Name:  "titles-by-director",
			Title: func(p Params) string { return fmt.Sprintf("Content directed by %s", p.Director) },
			Run: func(e *Engine, p Params) Result {
				return recordResult(e.TitlesByDirector(p.Director))
			},
		},
		{
			Name:  "long-running-shows",
			Title: func(p Params) string { return fmt.Sprintf("TV shows with more than %d seasons", p.MinSeasons) },
			Run: func(e *Engine, p Params) Result {
				rows := lo.Map(e.LongRunningShows(p.MinSeasons), func(s ShowSeasons, _ int) []string {
					return []string{s.Title, strconv.Itoa(s.Seasons)}
				})
				return Result{Columns: []string{"title", "seasons"}, Rows: rows}
			},
		},
		{
			Name:  "genre-counts",
			Title: func(Params) string { return "Content per genre" },
			Run: func(e *Engine, _ Params) Result {
				rows := lo.Map(e.GenreCounts(), func(g GenreCount, _ int) []string {
					return []string{g.Genre, strconv.Itoa(g.Total)}
				})
				return Result{Columns: []string{"genre", "total_content"}, Rows: rows}
			},
		},
		{
			Name: "country-release-share",
			Title: func(p Params) string {
				return fmt.Sprintf("Top %d release years in %s by share", p.TopYears, p.Country)
			},
			Run: func(e *Engine, p Params) Result {
				rows := lo.Map(e.TopYearsByCountryShare(p.Country, p.TopYears), func(y YearShare, _ int) []string {
					return []string{strconv.Itoa(y.Year), strconv.Itoa(y.Total), fmt.Sprintf("%.2f", y.Share)}
				})
				return Result{Columns: []string{"release_year", "total_release", "share_pct"}, Rows: rows}
			},
		},
		{
			Name:  "movies-in-genre",
			Title: func(p Params) string { return fmt.Sprintf("Movies listed in %s", p.Genre) },
			Run: func(e *Engine, p Params) Result {
				return recordResult(e.MoviesInGenre(p.Genre))
			},
		},
		{
			Name:  "missing-director",
			Title: func(Params) string { return "Content without a director" },
			Run: func(e *Engine, _ Params) Result {
				return recordResult(e.MissingDirector())
			},
		},
		{
			Name: "actor-recent-movies",
			Title: func(p Params) string {
				return fmt.Sprintf("Movies with %s from the last %d years", p.Actor, p.ActorYears)
			},
			Run: func(e *Engine, p Params) Result {
				return recordResult(e.ActorRecentMovies(p.Actor, p.ActorYears))
			},
		},
		{
			Name: "top-actors",
			Title: func(p Params) string {
				return fmt.Sprintf("Top %d actors in movies produced in %s", p.TopActors, p.Country)
			},
			Run: func(e *Engine, p Params) Result {
				rows := lo.Map(e.TopActors(p.Country, p.TopActors), func(a ActorCount, _ int) []string {
					return []string{a.Actor, strconv.Itoa(a.Total)}
				})
				return Result{Columns: []string{"actor", "total_content"}, Rows: rows}
			},
		},
		{
			Name:  "content-sentiment",
			Title: func(Params) string { return "Good vs Bad content by description keywords" },
			Run: func(e *Engine, _ Params) Result {
				rows := lo.Map(e.ContentSentiment(), func(s SentimentCount, _ int) []string {
					return []string{s.Category, string(s.Type), strconv.Itoa(s.Total)}
				})
				return Result{Columns: []string{"category", "type", "content_count"}, Rows: rows}
			},
		},
	}
}

// Names returns the registry names in presentation order.
func Names() []string {
	return lo.Map(Definitions(), func(d Definition, _ int) string { return d.Name })
}

// Run evaluates one report by name.
func (e *Engine) Run(name string, p Params) (Result, error) {
	for _, def := range Definitions() {
		if def.Name == name {
			return run(e, def, p), nil
		}
	}
	return Result{}, fmt.Errorf("unknown report %q", name)
}

// RunAll evaluates the full report suite in order.
func (e *Engine) RunAll(p Params) []Result {
	return lo.Map(Definitions(), func(d Definition, _ int) Result {
		return run(e, d, p)
	})
}

func run(e *Engine, def Definition, p Params) Result {
	res := def.Run(e, p)
	res.Name = def.Name
	res.Title = def.Title(p)
	return res
}

// recordResult renders a list of records with the standard listing
// columns.
func recordResult(records []catalog.Record) Result {
	rows := lo.Map(records, func(r catalog.Record, _ int) []string {
		return []string{r.ShowID, string(r.Type), r.Title, strconv.Itoa(r.ReleaseYear)}
	})
	return Result{Columns: []string{"show_id", "type", "title", "release_year"}, Rows: rows}
}
