// Package index implements TF-IDF similarity search over the product catalog.
package index

import (
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/ashk12/phone-assistant/internal/domain"
)

// Default tuning constants. Both are empirical, not structural: the relevance
// floor and vocabulary cap can be overridden through Options.
const (
	DefaultMaxVocabulary = 1000
	DefaultMinScore      = 0.1
)

// Options holds index tuning parameters.
type Options struct {
	// MaxVocabulary caps the vocabulary at the most frequent terms.
	MaxVocabulary int
	// MinScore is the relevance floor: results scoring at or below it are
	// excluded (hard cutoff).
	MinScore float64
}

func (o Options) withDefaults() Options {
	if o.MaxVocabulary <= 0 {
		o.MaxVocabulary = DefaultMaxVocabulary
	}
	if o.MinScore <= 0 {
		o.MinScore = DefaultMinScore
	}
	return o
}

// Index is a TF-IDF similarity index over product documents. Products and
// document vectors are parallel slices built atomically in Build: position i
// in vectors always corresponds to position i in products, and neither is
// mutated after construction, so the index is safe for concurrent queries.
type Index struct {
	products  []domain.Product
	vectors   []sparseVec
	vocab     map[string]int
	idf       []float64
	minScore  float64
	tokenizer *regexp.Regexp
	stopwords map[string]struct{}
}

// sparseVec maps vocabulary term index to L2-normalized TF-IDF weight.
type sparseVec map[int]float64

// Build tokenizes one document per product, fits the vocabulary and IDF
// values over the whole corpus, and vectorizes every document. An empty
// catalog yields an index that answers every query with no results.
func Build(products []domain.Product, opts Options) *Index {
	opts = opts.withDefaults()

	idx := &Index{
		products:  products,
		minScore:  opts.MinScore,
		tokenizer: regexp.MustCompile(`[\p{L}\p{N}]+`),
		stopwords: stopwords(),
	}

	docTokens := make([][]string, len(products))
	for i, p := range products {
		docTokens[i] = idx.tokenize(Document(p))
	}

	idx.fit(docTokens, opts.MaxVocabulary)

	idx.vectors = make([]sparseVec, len(products))
	for i, tokens := range docTokens {
		idx.vectors[i] = idx.vectorize(tokens)
	}
	return idx
}

// Query projects the text into the index vector space and returns at most
// topK products by descending cosine similarity. Results scoring at or below
// the relevance floor are dropped; ties keep catalog order (stable sort).
// Identical query text against an unchanged index yields identical output.
func (idx *Index) Query(text string, topK int) []domain.ScoredProduct {
	if topK <= 0 || len(idx.products) == 0 {
		return nil
	}

	qv := idx.vectorize(idx.tokenize(text))
	if len(qv) == 0 {
		return nil
	}

	var results []domain.ScoredProduct
	for i, dv := range idx.vectors {
		score := dot(qv, dv)
		if score > idx.minScore {
			results = append(results, domain.ScoredProduct{
				Product: idx.products[i],
				Score:   score,
			})
		}
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})

	if len(results) > topK {
		results = results[:topK]
	}
	return results
}

// fit builds the vocabulary (capped at maxVocab terms by corpus frequency,
// alphabetical on ties) and smoothed IDF values.
func (idx *Index) fit(docTokens [][]string, maxVocab int) {
	counts := make(map[string]int)
	df := make(map[string]int)
	for _, tokens := range docTokens {
		seen := make(map[string]struct{})
		for _, tok := range tokens {
			counts[tok]++
			if _, ok := seen[tok]; !ok {
				seen[tok] = struct{}{}
				df[tok]++
			}
		}
	}

	terms := make([]string, 0, len(counts))
	for term := range counts {
		terms = append(terms, term)
	}
	sort.Slice(terms, func(i, j int) bool {
		if counts[terms[i]] != counts[terms[j]] {
			return counts[terms[i]] > counts[terms[j]]
		}
		return terms[i] < terms[j]
	})
	if len(terms) > maxVocab {
		terms = terms[:maxVocab]
	}
	sort.Strings(terms)

	idx.vocab = make(map[string]int, len(terms))
	idx.idf = make([]float64, len(terms))
	n := float64(len(docTokens))
	for i, term := range terms {
		idx.vocab[term] = i
		idx.idf[i] = math.Log((1+n)/(1+float64(df[term]))) + 1
	}
}

// vectorize computes the L2-normalized TF-IDF vector for the tokens.
// Tokens outside the vocabulary are ignored.
func (idx *Index) vectorize(tokens []string) sparseVec {
	tf := make(map[int]int)
	for _, tok := range tokens {
		if i, ok := idx.vocab[tok]; ok {
			tf[i]++
		}
	}
	if len(tf) == 0 {
		return nil
	}

	vec := make(sparseVec, len(tf))
	var norm float64
	for i, count := range tf {
		w := float64(count) * idx.idf[i]
		vec[i] = w
		norm += w * w
	}
	norm = math.Sqrt(norm)
	for i := range vec {
		vec[i] /= norm
	}
	return vec
}

func (idx *Index) tokenize(text string) []string {
	raw := idx.tokenizer.FindAllString(strings.ToLower(text), -1)
	tokens := raw[:0]
	for _, t := range raw {
		if _, stop := idx.stopwords[t]; stop {
			continue
		}
		tokens = append(tokens, t)
	}
	return tokens
}

// dot computes the dot product of two sparse vectors. Both sides are
// L2-normalized, so this is the cosine similarity.
func dot(a, b sparseVec) float64 {
	if len(b) < len(a) {
		a, b = b, a
	}
	var sum float64
	for i, v := range a {
		sum += v * b[i]
	}
	return sum
}

func stopwords() map[string]struct{} {
	words := []string{
		"a", "an", "the", "and", "or", "but", "if", "then", "else", "for",
		"to", "of", "in", "on", "at", "by", "with", "as", "is", "are", "was",
		"were", "be", "been", "being", "it", "this", "that", "these", "those",
		"from", "up", "down", "over", "under", "again", "further", "than",
		"so", "such", "into", "about", "between", "through", "during",
		"before", "after", "above", "below", "out", "off", "own", "same",
		"too", "very", "can", "will", "just", "should", "now", "what",
		"which", "who", "whom", "i", "me", "my", "you", "your", "he", "she",
		"we", "they", "them", "their", "have", "has", "had", "do", "does",
		"did", "not", "no", "nor", "only", "more", "most", "other", "some",
	}
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return m
}
