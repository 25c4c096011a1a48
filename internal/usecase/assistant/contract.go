package assistant

import (
	"context"

	"github.com/ashk12/phone-assistant/internal/domain"
)

// Generator produces narrative text from an assembled prompt.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// IntentClassifier classifies the raw query into an IntentResult.
type IntentClassifier interface {
	ClassifyIntent(ctx context.Context, query string) (domain.IntentResult, error)
}

// SafetyGate screens queries before any processing.
type SafetyGate interface {
	Unsafe(ctx context.Context, query string) bool
}

// Catalog provides structured search and entity resolution over the
// product collection.
type Catalog interface {
	Search(f domain.FilterSet) []domain.Product
	Resolve(names []string) []domain.Product
}

// Searcher ranks products by similarity to free-text queries.
type Searcher interface {
	Query(text string, topK int) []domain.ScoredProduct
}
