package catalog

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplitMulti(t *testing.T) {
	assert.Equal(t, []string{"India", "France"}, SplitMulti("India, France"))
	assert.Equal(t, []string{"India"}, SplitMulti("India"))
	assert.Equal(t, []string{"A", "B"}, SplitMulti(" A ,,  B , "))
	assert.Nil(t, SplitMulti(""))
	assert.Nil(t, SplitMulti("   "))
}

func TestSplitMultiRoundTrip(t *testing.T) {
	// Splitting, re-joining with the same delimiter and splitting again
	// must reproduce the same set of entries.
	fields := []string{
		"Dramas, International Movies, Thrillers",
		"United States",
		"Rajiv Chilaka, Someone Else",
		" A , B ,C",
	}

	for _, field := range fields {
		values := SplitMulti(field)
		again := SplitMulti(strings.Join(values, ", "))
		assert.Equal(t, values, again, "round trip of %q", field)
	}
}

func TestDurationValue(t *testing.T) {
	cases := []struct {
		duration string
		want     int
		wantErr  bool
	}{
		{"90 min", 90, false},
		{"1 Season", 1, false},
		{"3 Seasons", 3, false},
		{" 104 min ", 104, false},
		{"", 0, true},
		{"min 90", 0, true},
		{"abc", 0, true},
		{"-5 min", 0, true},
	}

	for _, tc := range cases {
		got, err := Record{Duration: tc.duration}.DurationValue()
		if tc.wantErr {
			require.Error(t, err, "duration %q", tc.duration)

			var parseErr *ParseError
			assert.True(t, errors.As(err, &parseErr), "duration %q should yield a ParseError", tc.duration)
		} else {
			require.NoError(t, err, "duration %q", tc.duration)
			assert.Equal(t, tc.want, got, "duration %q", tc.duration)
		}
	}
}

func TestAddedAt(t *testing.T) {
	added, err := Record{DateAdded: "September 25, 2021"}.AddedAt()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2021, time.September, 25, 0, 0, 0, 0, time.UTC), added)

	// Leading whitespace appears in real exports.
	added, err = Record{DateAdded: " January 1, 2020"}.AddedAt()
	require.NoError(t, err)
	assert.Equal(t, 2020, added.Year())

	for _, bad := range []string{"", "   ", "2021-09-25", "Sometime 2021"} {
		_, err := Record{DateAdded: bad}.AddedAt()
		require.Error(t, err, "date %q", bad)

		var parseErr *ParseError
		assert.True(t, errors.As(err, &parseErr), "date %q should yield a ParseError", bad)
	}
}

func TestParseType(t *testing.T) {
	typ, err := ParseType("Movie")
	require.NoError(t, err)
	assert.Equal(t, TypeMovie, typ)

	typ, err = ParseType(" TV Show ")
	require.NoError(t, err)
	assert.Equal(t, TypeTVShow, typ)

	_, err = ParseType("Documentary")
	assert.Error(t, err)
}

func TestHasDirector(t *testing.T) {
	assert.True(t, Record{Director: "Rajiv Chilaka"}.HasDirector())
	assert.False(t, Record{Director: ""}.HasDirector())
	assert.False(t, Record{Director: "   "}.HasDirector())
}

func TestMultiValueAccessors(t *testing.T) {
	r := Record{
		Director: "Rajiv Chilaka, Someone Else",
		Cast:     "Salman Khan",
		Country:  "India, France",
		ListedIn: "Dramas, Comedies",
	}

	assert.Equal(t, []string{"Rajiv Chilaka", "Someone Else"}, r.Directors())
	assert.Equal(t, []string{"Salman Khan"}, r.CastMembers())
	assert.Equal(t, []string{"India", "France"}, r.Countries())
	assert.Equal(t, []string{"Dramas", "Comedies"}, r.Genres())

	assert.Empty(t, Record{}.Countries())
}
