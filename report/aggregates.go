package report

import (
	"math"
	"sort"
	"strings"

	"stream-insights/catalog"

	"github.com/samber/lo"
)

// TypeCount is one row of the catalog composition report.
type TypeCount struct {
	Type  catalog.Type
	Total int
}

// RatingLeader is the most frequent rating within one content type.
type RatingLeader struct {
	Type   catalog.Type
	Rating string
	Total  int
}

// CountryCount is one row of the per-country content count.
type CountryCount struct {
	Country string
	Total   int
}

// GenreCount is one row of the per-genre content count.
type GenreCount struct {
	Genre string
	Total int
}

// YearShare is one row of the per-year release share within a country
// subset. Share is a percentage of the subset total, rounded to two
// decimal places.
type YearShare struct {
	Year  int
	Total int
	Share float64
}

// ActorCount is one row of the per-actor appearance count.
type ActorCount struct {
	Actor string
	Total int
}

// SentimentCount is one row of the keyword-based content categorization.
type SentimentCount struct {
	Category string
	Type     catalog.Type
	Total    int
}

// TitleCountByType counts movies and TV shows. The totals sum to the
// snapshot size.
func (e *Engine) TitleCountByType() []TypeCount {
	counts := lo.CountValuesBy(e.records, func(r catalog.Record) catalog.Type { return r.Type })

	out := lo.MapToSlice(counts, func(t catalog.Type, n int) TypeCount {
		return TypeCount{Type: t, Total: n}
	})
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// MostCommonRatingByType returns, for each content type, the rating with
// the highest count. Records without a rating are ignored. Ties go to the
// lexicographically smallest rating so repeated runs stay deterministic.
func (e *Engine) MostCommonRatingByType() []RatingLeader {
	type key struct {
		typ    catalog.Type
		rating string
	}

	counts := make(map[key]int)
	for _, r := range e.records {
		rating := strings.TrimSpace(r.Rating)
		if rating == "" {
			continue
		}
		counts[key{r.Type, rating}]++
	}

	best := make(map[catalog.Type]RatingLeader)
	for k, n := range counts {
		cur, ok := best[k.typ]
		if !ok || n > cur.Total || (n == cur.Total && k.rating < cur.Rating) {
			best[k.typ] = RatingLeader{Type: k.typ, Rating: k.rating, Total: n}
		}
	}

	out := lo.Values(best)
	sort.Slice(out, func(i, j int) bool { return out[i].Type < out[j].Type })
	return out
}

// TopCountries expands the country field and returns the n countries with
// the most content. A row listing several countries counts once per
// country; rows with no country are excluded.
func (e *Engine) TopCountries(n int) []CountryCount {
	counts := lo.CountValues(lo.FlatMap(e.records, func(r catalog.Record, _ int) []string {
		return r.Countries()
	}))

	out := lo.MapToSlice(counts, func(country string, total int) CountryCount {
		return CountryCount{Country: country, Total: total}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Country < out[j].Country
	})
	return topN(out, n)
}

// GenreCounts expands the listed_in field and counts content per genre
// tag, most frequent first.
func (e *Engine) GenreCounts() []GenreCount {
	counts := lo.CountValues(lo.FlatMap(e.records, func(r catalog.Record, _ int) []string {
		return r.Genres()
	}))

	out := lo.MapToSlice(counts, func(genre string, total int) GenreCount {
		return GenreCount{Genre: genre, Total: total}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Genre < out[j].Genre
	})
	return out
}

// TopYearsByCountryShare filters the snapshot to one country, counts
// releases per year, and returns the n years with the highest share of
// that subset's total. Shares are percentages of the filtered subset, not
// of the whole catalog.
func (e *Engine) TopYearsByCountryShare(country string, n int) []YearShare {
	subset := lo.Filter(e.records, func(r catalog.Record, _ int) bool {
		return inCountry(r, country)
	})
	if len(subset) == 0 {
		return nil
	}

	counts := lo.CountValuesBy(subset, func(r catalog.Record) int { return r.ReleaseYear })
	total := float64(len(subset))

	out := lo.MapToSlice(counts, func(year, count int) YearShare {
		return YearShare{
			Year:  year,
			Total: count,
			Share: math.Round(float64(count)/total*100*100) / 100,
		}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Share != out[j].Share {
			return out[i].Share > out[j].Share
		}
		return out[i].Year < out[j].Year
	})
	return topN(out, n)
}

// TopActors counts actor appearances in movies produced in the given
// country and returns the n most frequent.
func (e *Engine) TopActors(country string, n int) []ActorCount {
	movies := lo.Filter(e.records, func(r catalog.Record, _ int) bool {
		return r.Type == catalog.TypeMovie && inCountry(r, country)
	})

	counts := lo.CountValues(lo.FlatMap(movies, func(r catalog.Record, _ int) []string {
		return r.CastMembers()
	}))

	out := lo.MapToSlice(counts, func(actor string, total int) ActorCount {
		return ActorCount{Actor: actor, Total: total}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Total != out[j].Total {
			return out[i].Total > out[j].Total
		}
		return out[i].Actor < out[j].Actor
	})
	return topN(out, n)
}

// ContentSentiment labels every record "Bad" when its description mentions
// "kill" or "violence" (case-insensitive substring) and "Good" otherwise,
// then counts records per (category, type). The totals sum to the snapshot
// size.
func (e *Engine) ContentSentiment() []SentimentCount {
	type key struct {
		category string
		typ      catalog.Type
	}

	counts := make(map[key]int)
	for _, r := range e.records {
		category := "Good"
		if containsFold(r.Description, "kill") || containsFold(r.Description, "violence") {
			category = "Bad"
		}
		counts[key{category, r.Type}]++
	}

	out := lo.MapToSlice(counts, func(k key, n int) SentimentCount {
		return SentimentCount{Category: k.category, Type: k.typ, Total: n}
	})
	sort.Slice(out, func(i, j int) bool {
		if out[i].Category != out[j].Category {
			return out[i].Category < out[j].Category
		}
		return out[i].Type < out[j].Type
	})
	return out
}
