// Package assistant routes classified queries to intent handlers and
// assembles answers from structured or semantic retrieval.
package assistant

import (
	"context"
	"iter"

	"go.uber.org/zap"

	"github.com/ashk12/phone-assistant/internal/domain"
	"github.com/ashk12/phone-assistant/internal/segment"
)

// Default retrieval tunables. Both are empirical constants, overridable
// through WithTunables.
const (
	// DefaultTopK is how many semantic hits are retrieved before filtering.
	DefaultTopK = 8
	// DefaultMaxContext is how many results go into the generation context.
	DefaultMaxContext = 6
)

const refusalText = "Sorry, I can't process that request. " +
	"Let's stick to helpful, factual phone-related questions."

// Service is the multi-intent query router. It holds no per-request state:
// every dependency is read-only after startup, so one Service instance
// serves concurrent requests without locking.
type Service struct {
	catalog    Catalog
	searcher   Searcher
	classifier IntentClassifier
	generator  Generator
	gate       SafetyGate
	topK       int
	maxContext int
	logger     *zap.Logger
}

// Tunables overrides retrieval constants.
type Tunables struct {
	TopK       int
	MaxContext int
}

// New creates the assistant service. gate may be nil to disable the safety
// check (tests).
func New(
	catalog Catalog,
	searcher Searcher,
	classifier IntentClassifier,
	generator Generator,
	gate SafetyGate,
	logger *zap.Logger,
) *Service {
	return &Service{
		catalog:    catalog,
		searcher:   searcher,
		classifier: classifier,
		generator:  generator,
		gate:       gate,
		topK:       DefaultTopK,
		maxContext: DefaultMaxContext,
		logger:     logger,
	}
}

// WithTunables overrides the retrieval constants. Zero values keep defaults.
func (s *Service) WithTunables(t Tunables) *Service {
	if t.TopK > 0 {
		s.topK = t.TopK
	}
	if t.MaxContext > 0 {
		s.maxContext = t.MaxContext
	}
	return s
}

// Process answers one query: safety gate, intent classification, dispatch.
// It never returns an error: every failure degrades to a usable answer.
func (s *Service) Process(ctx context.Context, query string) Answer {
	if s.gate != nil && s.gate.Unsafe(ctx, query) {
		return Answer{
			Intent:     domain.Unknown,
			Confidence: 1,
			Text:       refusalText,
			Source:     Fallback,
		}
	}

	ir, err := s.classifier.ClassifyIntent(ctx, query)
	if err != nil {
		// Classifier down: fall back to the default recommendation path
		// rather than surfacing the failure to the caller.
		s.logger.Warn("intent classification failed, using default", zap.Error(err))
		ir = domain.DefaultIntentResult()
	}

	s.logger.Info("intent classified",
		zap.String("intent", string(ir.Intent)),
		zap.Float64("confidence", ir.Confidence),
		zap.String("query_type", string(ir.QueryType)),
	)

	var ans Answer
	switch ir.Intent {
	case domain.Comparison:
		ans = s.compare(ctx, query, ir)
	case domain.Explanation:
		ans = s.explain(ctx, query, ir)
	case domain.Details:
		ans = s.detail(ctx, query, ir)
	default:
		// Recommendation, Unknown, and anything unexpected all take the
		// recommendation path.
		ans = s.recommend(ctx, query, ir)
	}

	ans.Intent = ir.Intent
	ans.Confidence = ir.Confidence
	return ans
}

// Stream answers one query and yields the narrative in sentence-sized
// chunks. The whole answer is generated before segmentation begins;
// only delivery is incremental.
func (s *Service) Stream(ctx context.Context, query string) iter.Seq[string] {
	ans := s.Process(ctx, query)
	return segment.Segments(ans.Text)
}
