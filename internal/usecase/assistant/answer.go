package assistant

import "github.com/ashk12/phone-assistant/internal/domain"

// Source tags whether an answer came from real generation or a degraded
// path, so callers and tests can tell the two apart instead of comparing
// final strings.
type Source string

// Answer source constants.
const (
	// Generated means the external model produced the text.
	Generated Source = "generated"
	// Fallback means the text was synthesized locally: a canned message,
	// a raw context block, or an attribute dump.
	Fallback Source = "fallback"
)

// Answer is the outcome of processing one query.
type Answer struct {
	Intent     domain.Intent
	Confidence float64
	Text       string
	Source     Source
}
