// Package safety screens queries for adversarial or abusive content before
// any retrieval or generation work happens.
package safety

import (
	"context"
	"regexp"
	"strings"

	"go.uber.org/zap"
)

// adversarialPatterns catches obvious prompt-injection and abuse attempts
// without an external call.
var adversarialPatterns = []*regexp.Regexp{
	regexp.MustCompile(`reveal.*prompt`),
	regexp.MustCompile(`show.*api.?key`),
	regexp.MustCompile(`ignore.*rules`),
	regexp.MustCompile(`internal.*logic`),
	regexp.MustCompile(`jailbreak`),
	regexp.MustCompile(`(bypass|disable).*safety`),
	regexp.MustCompile(`trash|insult|hate|defame|attack|bias`),
}

// Classifier is the external safety check contract.
type Classifier interface {
	ClassifySafety(ctx context.Context, query string) (bool, error)
}

// Gate combines the fixed pattern list with an external classifier.
type Gate struct {
	classifier Classifier
	logger     *zap.Logger
}

// NewGate creates a safety gate. classifier may be nil, in which case only
// the pattern list applies.
func NewGate(classifier Classifier, logger *zap.Logger) *Gate {
	return &Gate{classifier: classifier, logger: logger}
}

// Unsafe reports whether the query should be refused. The pattern check runs
// first and short-circuits before any external call. A classifier error
// counts as safe: availability problems must not block legitimate queries.
func (g *Gate) Unsafe(ctx context.Context, query string) bool {
	if MatchesPattern(query) {
		g.logger.Warn("query matched adversarial pattern")
		return true
	}
	if g.classifier == nil {
		return false
	}

	unsafe, err := g.classifier.ClassifySafety(ctx, query)
	if err != nil {
		g.logger.Warn("safety classifier unavailable, allowing query", zap.Error(err))
		return false
	}
	if unsafe {
		g.logger.Warn("query flagged unsafe by classifier")
	}
	return unsafe
}

// MatchesPattern checks the query against the fixed adversarial-phrase list.
func MatchesPattern(query string) bool {
	q := strings.ToLower(strings.TrimSpace(query))
	for _, p := range adversarialPatterns {
		if p.MatchString(q) {
			return true
		}
	}
	return false
}
