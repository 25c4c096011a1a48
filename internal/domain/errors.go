package domain

import "errors"

var (
	// ErrEmptyQuery signals an empty or whitespace-only query.
	ErrEmptyQuery = errors.New("query is empty")
	// ErrGenerationFailed signals a narrative generation provider failure.
	ErrGenerationFailed = errors.New("generation failed")
	// ErrClassificationFailed signals an intent classifier provider failure.
	ErrClassificationFailed = errors.New("classification failed")
	// ErrNoResults signals an empty retrieval result. Not a hard failure:
	// handlers degrade to a user-facing "no results" answer.
	ErrNoResults = errors.New("no matching products")
)
