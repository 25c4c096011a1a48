package assistant

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/ashk12/phone-assistant/internal/domain"
)

const noResultsText = "No phones found matching your criteria. " +
	"Try adjusting your requirements."

// recommend runs the hybrid retrieval path: structured filtering for
// numeric queries, similarity search intersected with filters otherwise.
func (s *Service) recommend(ctx context.Context, query string, ir domain.IntentResult) Answer {
	var results []domain.ScoredProduct

	if ir.QueryType == domain.Structured {
		for _, p := range s.catalog.Search(ir.Filters) {
			results = append(results, domain.ScoredProduct{Product: p, Score: 1.0})
		}
	} else {
		results = s.searcher.Query(query, s.topK)
		if !ir.Filters.IsEmpty() {
			kept := results[:0]
			for _, r := range results {
				if ir.Filters.Matches(r.Product) {
					kept = append(kept, r)
				}
			}
			results = kept
		}
	}

	if len(results) == 0 {
		// A valid user-facing empty state, not an error.
		return Answer{Text: noResultsText, Source: Fallback}
	}

	if len(results) > s.maxContext {
		results = results[:s.maxContext]
	}
	summary := summaryBlock(results)

	text, err := s.generator.Generate(ctx, recommendPrompt(query, summary))
	if err != nil {
		s.logger.Warn("recommendation generation failed, returning summary", zap.Error(err))
		return Answer{
			Text:   "Here are phones matching your criteria:\n\n" + summary,
			Source: Fallback,
		}
	}
	return Answer{Text: text, Source: Generated}
}

// compare requires at least two resolvable phone names; exactly the first
// two matches feed the comparison.
func (s *Service) compare(ctx context.Context, query string, ir domain.IntentResult) Answer {
	if len(ir.PhoneNames) < 2 {
		return Answer{
			Text: "Please specify at least two phones to compare " +
				"(e.g., 'Compare Phone A vs Phone B').",
			Source: Fallback,
		}
	}

	phones := s.catalog.Resolve(ir.PhoneNames)
	if len(phones) < 2 {
		found := "None"
		if len(phones) > 0 {
			names := make([]string, len(phones))
			for i, p := range phones {
				names[i] = p.Name
			}
			found = strings.Join(names, ", ")
		}
		return Answer{
			Text:   fmt.Sprintf("Could not find both phones. Found: %s", found),
			Source: Fallback,
		}
	}

	a, b := phones[0], phones[1]

	text, err := s.generator.Generate(ctx, comparePrompt(query, a, b))
	if err != nil {
		s.logger.Warn("comparison generation failed, synthesizing table", zap.Error(err))
		return Answer{Text: comparisonBlock(a, b), Source: Fallback}
	}
	return Answer{Text: text, Source: Generated}
}

// explain forwards the concept (or the raw query) to the generator.
func (s *Service) explain(ctx context.Context, query string, ir domain.IntentResult) Answer {
	concept := ir.Concept
	if concept == "" {
		concept = query
	}

	text, err := s.generator.Generate(ctx, explainPrompt(query, concept))
	if err != nil {
		s.logger.Warn("explanation generation failed, returning acknowledgment", zap.Error(err))
		return Answer{
			Text: fmt.Sprintf("I can explain '%s'. This feature relates to phone "+
				"capabilities and user experience. For detailed technical "+
				"explanations, please rephrase your question.", concept),
			Source: Fallback,
		}
	}
	return Answer{Text: text, Source: Generated}
}

// detail requires one resolvable phone name; only the first match is used.
func (s *Service) detail(ctx context.Context, query string, ir domain.IntentResult) Answer {
	if len(ir.PhoneNames) == 0 {
		return Answer{
			Text: "Please specify which phone you want details about " +
				"(e.g., 'Tell me about iPhone 15').",
			Source: Fallback,
		}
	}

	phones := s.catalog.Resolve(ir.PhoneNames)
	if len(phones) == 0 {
		return Answer{
			Text: fmt.Sprintf("Sorry, I couldn't find information about '%s'. "+
				"Please check the phone name and try again.", ir.PhoneNames[0]),
			Source: Fallback,
		}
	}

	p := phones[0]

	text, err := s.generator.Generate(ctx, detailPrompt(query, p))
	if err != nil {
		s.logger.Warn("detail generation failed, returning attribute dump", zap.Error(err))
		return Answer{Text: detailBlock(p), Source: Fallback}
	}
	return Answer{Text: text, Source: Generated}
}

// summaryBlock renders the per-phone context lines for the recommendation
// prompt, and doubles as the degraded answer when generation fails.
func summaryBlock(results []domain.ScoredProduct) string {
	var b strings.Builder
	b.WriteString("Available phones matching your query:\n\n")
	for i, r := range results {
		p := r.Product
		fmt.Fprintf(&b, "%d. %s - %.0f\n", i+1, p.Name, p.Price)
		fmt.Fprintf(&b, "   Camera: %.0fMP | Battery: %.0fmAh | Charging: %.0fW | RAM: %.0fGB\n",
			p.Camera, p.Battery, p.Charging, p.RAM)
		fmt.Fprintf(&b, "   Features: %s\n\n", strings.Join(p.Features, ", "))
	}
	return b.String()
}

// comparisonBlock synthesizes a minimal comparison from two records.
func comparisonBlock(a, b domain.Product) string {
	var sb strings.Builder
	fmt.Fprintf(&sb, "**Comparison: %s vs %s**\n\n", a.Name, b.Name)
	for _, p := range []domain.Product{a, b} {
		fmt.Fprintf(&sb, "**%s** - %.0f\n", p.Name, p.Price)
		fmt.Fprintf(&sb, "- Camera: %.0fMP | Battery: %.0fmAh\n", p.Camera, p.Battery)
		fmt.Fprintf(&sb, "- Charging: %.0fW | RAM: %.0fGB\n\n", p.Charging, p.RAM)
	}
	return sb.String()
}

// detailBlock synthesizes a minimal attribute dump from one record.
func detailBlock(p domain.Product) string {
	var b strings.Builder
	fmt.Fprintf(&b, "**%s - Details**\n\n", p.Name)
	fmt.Fprintf(&b, "**Price:** %.0f\n", p.Price)
	fmt.Fprintf(&b, "**Camera:** %.0fMP\n", p.Camera)
	fmt.Fprintf(&b, "**Battery:** %.0fmAh with %.0fW charging\n", p.Battery, p.Charging)
	fmt.Fprintf(&b, "**RAM:** %.0fGB\n", p.RAM)
	fmt.Fprintf(&b, "**Screen:** %g inches\n", p.ScreenSize)
	fmt.Fprintf(&b, "**OS:** %s\n", p.OS)
	fmt.Fprintf(&b, "**Features:** %s\n", strings.Join(p.Features, ", "))
	return b.String()
}
