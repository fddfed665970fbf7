// Package insights turns computed report tables into a short written
// summary, the kind of narration a human analyst would put at the top of
// a report digest. It is entirely optional: without API keys configured
// the digest simply goes out without a narrative.
package insights

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"

	"stream-insights/report"
)

// Narrator produces a prose summary of a set of report results.
type Narrator interface {
	Narrate(ctx context.Context, results []report.Result) (string, error)
}

// generator is one text-generation backend (Gemini, OpenAI).
type generator interface {
	name() string
	generateText(ctx context.Context, prompt string) (string, error)
}

// ModelNarrator narrates via a chain of generation backends, falling back
// to the next one when a backend fails.
type ModelNarrator struct {
	generators []generator
}

// NewFromEnv builds a narrator from GEMINI_API_KEY and OPENAI_API_KEY.
// Gemini is preferred when both are set. Returns nil when neither is
// configured.
func NewFromEnv() Narrator {
	var gens []generator

	if key := os.Getenv("GEMINI_API_KEY"); key != "" {
		gens = append(gens, newGemini(key, os.Getenv("GEMINI_MODEL")))
	}
	if key := os.Getenv("OPENAI_API_KEY"); key != "" {
		gens = append(gens, newOpenAI(key, os.Getenv("OPENAI_MODEL")))
	}

	if len(gens) == 0 {
		log.Println("Report narration disabled: no model API key configured")
		return nil
	}
	return &ModelNarrator{generators: gens}
}

// Narrate renders the results into a prompt and asks each backend in turn
// until one answers.
func (n *ModelNarrator) Narrate(ctx context.Context, results []report.Result) (string, error) {
	prompt := buildNarrationPrompt(results)

	var lastErr error
	for _, g := range n.generators {
		text, err := g.generateText(ctx, prompt)
		if err != nil {
			log.Printf("Narration with %s failed: %v", g.name(), err)
			lastErr = err
			continue
		}
		return strings.TrimSpace(text), nil
	}

	return "", fmt.Errorf("all narration backends failed, last error: %v", lastErr)
}

func buildNarrationPrompt(results []report.Result) string {
	var b strings.Builder

	b.WriteString(`You are a media catalog analyst. Below are the result tables of a
set of business-intelligence reports over a streaming catalog. Write one
short paragraph (4-6 sentences, plain text, no markdown, no bullet
points) summarizing the most interesting findings for a newsletter
audience.

`)

	for _, res := range results {
		b.WriteString(res.Title)
		b.WriteString("\n")
		b.WriteString(strings.Join(res.Columns, " | "))
		b.WriteString("\n")
		for i, row := range res.Rows {
			// Listing reports can be long; the narrator only needs a sample.
			if i == 10 {
				fmt.Fprintf(&b, "... (%d rows total)\n", len(res.Rows))
				break
			}
			b.WriteString(strings.Join(row, " | "))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return b.String()
}
