package insights

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"stream-insights/report"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeGenerator struct {
	text string
	err  error
	hits int
}

func (f *fakeGenerator) name() string { return "fake" }

func (f *fakeGenerator) generateText(ctx context.Context, prompt string) (string, error) {
	f.hits++
	return f.text, f.err
}

func sampleResults() []report.Result {
	return []report.Result{{
		Name:    "titles-by-type",
		Title:   "Movies vs TV shows",
		Columns: []string{"type", "total_count"},
		Rows:    [][]string{{"Movie", "5"}, {"TV Show", "2"}},
	}}
}

func TestNarrate(t *testing.T) {
	gen := &fakeGenerator{text: "  The catalog leans heavily toward movies.  "}
	n := &ModelNarrator{generators: []generator{gen}}

	text, err := n.Narrate(context.Background(), sampleResults())
	require.NoError(t, err)
	assert.Equal(t, "The catalog leans heavily toward movies.", text)
	assert.Equal(t, 1, gen.hits)
}

func TestNarrateFallsBack(t *testing.T) {
	broken := &fakeGenerator{err: fmt.Errorf("quota exceeded")}
	working := &fakeGenerator{text: "Summary."}
	n := &ModelNarrator{generators: []generator{broken, working}}

	text, err := n.Narrate(context.Background(), sampleResults())
	require.NoError(t, err)
	assert.Equal(t, "Summary.", text)
	assert.Equal(t, 1, broken.hits)
	assert.Equal(t, 1, working.hits)
}

func TestNarrateAllBackendsFail(t *testing.T) {
	n := &ModelNarrator{generators: []generator{
		&fakeGenerator{err: fmt.Errorf("down")},
		&fakeGenerator{err: fmt.Errorf("also down")},
	}}

	_, err := n.Narrate(context.Background(), sampleResults())
	assert.Error(t, err)
}

func TestBuildNarrationPromptTruncatesLongReports(t *testing.T) {
	rows := make([][]string, 50)
	for i := range rows {
		rows[i] = []string{fmt.Sprintf("title-%d", i)}
	}

	prompt := buildNarrationPrompt([]report.Result{{
		Title:   "A long listing",
		Columns: []string{"title"},
		Rows:    rows,
	}})

	assert.Contains(t, prompt, "A long listing")
	assert.Contains(t, prompt, "(50 rows total)")
	assert.NotContains(t, prompt, "title-11")
	assert.Equal(t, 1, strings.Count(prompt, "title-9"))
}

func TestNewFromEnvWithoutKeys(t *testing.T) {
	t.Setenv("GEMINI_API_KEY", "")
	t.Setenv("OPENAI_API_KEY", "")

	assert.Nil(t, NewFromEnv())
}
