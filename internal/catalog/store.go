package catalog

import (
	"strings"

	"github.com/ashk12/phone-assistant/internal/domain"
)

// Store is the in-memory ordered product collection. Built once at startup
// and never mutated afterwards, so it is safe to share across concurrent
// requests without locking.
type Store struct {
	products []domain.Product
}

// NewStore creates a store over the loaded products. The slice is not copied;
// callers must not mutate it after construction.
func NewStore(products []domain.Product) *Store {
	return &Store{products: products}
}

// Products returns the full catalog in load order.
func (s *Store) Products() []domain.Product { return s.products }

// Len returns the number of catalog entries.
func (s *Store) Len() int { return len(s.products) }

// Search applies the filter set across the full catalog, preserving catalog
// order. An empty filter set matches everything.
func (s *Store) Search(f domain.FilterSet) []domain.Product {
	var results []domain.Product
	for _, p := range s.products {
		if f.Matches(p) {
			results = append(results, p)
		}
	}
	return results
}

// Resolve maps free-text phone name fragments to catalog entries. For each
// input name the first product whose name or brand contains it
// (case-insensitive) wins; names with no match are silently dropped.
// When multiple products share a fragment (e.g. "Pro"), catalog order
// decides: precedence beyond that is deliberately undefined.
func (s *Store) Resolve(names []string) []domain.Product {
	var found []domain.Product
	for _, name := range names {
		needle := strings.ToLower(strings.TrimSpace(name))
		if needle == "" {
			continue
		}
		for _, p := range s.products {
			if strings.Contains(strings.ToLower(p.Name), needle) ||
				strings.Contains(strings.ToLower(p.Brand), needle) {
				found = append(found, p)
				break
			}
		}
	}
	return found
}
