package domain

// Intent is the classified purpose of a user query.
type Intent string

// Intent constants.
const (
	Recommendation Intent = "recommendation"
	Comparison     Intent = "comparison"
	Explanation    Intent = "explanation"
	Details        Intent = "details"
	Unknown        Intent = "unknown"
)

// ParseIntent maps a raw classifier label to a closed Intent value.
// Anything unrecognized becomes Unknown.
func ParseIntent(s string) Intent {
	switch Intent(s) {
	case Recommendation, Comparison, Explanation, Details:
		return Intent(s)
	default:
		return Unknown
	}
}

// IsValid checks if the intent is one of the supported values.
func (i Intent) IsValid() bool {
	return i == Recommendation || i == Comparison || i == Explanation ||
		i == Details || i == Unknown
}

// QueryType distinguishes numeric-constraint queries from conceptual ones.
type QueryType string

// Query type constants.
const (
	Structured QueryType = "structured"
	Semantic   QueryType = "semantic"
)

// IntentResult is the classifier output for one query. Not persisted;
// lifetime is a single request.
type IntentResult struct {
	Intent     Intent
	Confidence float64
	Filters    FilterSet
	PhoneNames []string
	Concept    string
	QueryType  QueryType

	// RawText preserves the classifier body when it was not parseable.
	RawText string
}

// DefaultIntentResult is the substitute used when the classifier call fails
// entirely: the query still gets the default recommendation path.
func DefaultIntentResult() IntentResult {
	return IntentResult{
		Intent:     Recommendation,
		Confidence: 0.7,
		QueryType:  Semantic,
	}
}
