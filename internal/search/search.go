package search

import (
	"context"
	"fmt"
	"log"
	"strings"
)

// Result is one web search hit, kept only long enough to format evidence.
type Result struct {
	Title       string
	Description string
	URL         string
}

type Provider interface {
	Name() string
	Search(ctx context.Context, query string) ([]Result, error)
}

// maxEvidenceResults caps how many hits make it into the judge prompt.
const maxEvidenceResults = 3

// Gatherer queries the primary provider and falls back to the secondary.
// Evidence gathering is best-effort: it never fails the request.
type Gatherer struct {
	providers []Provider
}

func NewGatherer(primary, secondary Provider) *Gatherer {
	var ps []Provider
	for _, p := range []Provider{primary, secondary} {
		if p != nil {
			ps = append(ps, p)
		}
	}
	return &Gatherer{providers: ps}
}

// Gather returns a formatted evidence block for the query, or a placeholder
// string when every provider fails or comes back empty.
func (g *Gatherer) Gather(ctx context.Context, query string) string {
	for _, p := range g.providers {
		results, err := p.Search(ctx, query)
		if err != nil {
			log.Printf("Search provider %s failed: %v", p.Name(), err)
			continue
		}
		if len(results) == 0 {
			log.Printf("Search provider %s returned no results", p.Name())
			continue
		}
		return FormatEvidence(query, results)
	}

	return fmt.Sprintf("Não foi possível realizar busca web para: %s", query)
}

// FormatEvidence renders results as the numbered block the judge prompt
// expects: title, snippet, source per entry.
func FormatEvidence(query string, results []Result) string {
	if len(results) > maxEvidenceResults {
		results = results[:maxEvidenceResults]
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Resultados da busca para %q:\n\n", query))
	for i, r := range results {
		sb.WriteString(fmt.Sprintf("%d. %s\n%s\nFonte: %s\n\n", i+1, r.Title, r.Description, r.URL))
	}
	return sb.String()
}
