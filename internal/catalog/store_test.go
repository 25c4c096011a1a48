package catalog

import (
	"testing"

	"github.com/ashk12/phone-assistant/internal/domain"
)

func f64(v float64) *float64 { return &v }

func testProducts() []domain.Product {
	return []domain.Product{
		{Brand: "Apple", Name: "iPhone 15 Pro", Price: 134900, Battery: 3274},
		{Brand: "Samsung", Name: "Galaxy S24 Ultra", Price: 129999, Battery: 5000},
		{Brand: "OnePlus", Name: "12R", Price: 39999, Battery: 5500},
		{Brand: "Xiaomi", Name: "Redmi Note 13 Pro", Price: 23999, Battery: 5100},
	}
}

func TestStore_Search_PreservesOrder(t *testing.T) {
	store := NewStore(testProducts())

	results := store.Search(domain.FilterSet{MinBattery: f64(5000)})
	if len(results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(results))
	}

	// Catalog order, not score or price order.
	wantNames := []string{"Galaxy S24 Ultra", "12R", "Redmi Note 13 Pro"}
	for i, p := range results {
		if p.Name != wantNames[i] {
			t.Errorf("result[%d] = %q, want %q", i, p.Name, wantNames[i])
		}
	}
}

func TestStore_Search_EveryHitSatisfiesFilters(t *testing.T) {
	store := NewStore(testProducts())
	filters := domain.FilterSet{MaxPrice: f64(50000)}

	for _, p := range store.Search(filters) {
		if !filters.Matches(p) {
			t.Errorf("result %q does not satisfy the filter set", p.Name)
		}
	}
}

func TestStore_Search_EmptyCatalog(t *testing.T) {
	store := NewStore(nil)
	if results := store.Search(domain.FilterSet{}); len(results) != 0 {
		t.Errorf("expected no results from empty catalog, got %d", len(results))
	}
}

func TestStore_Resolve_SubstringMatch(t *testing.T) {
	store := NewStore(testProducts())

	found := store.Resolve([]string{"iPhone 15"})
	if len(found) != 1 {
		t.Fatalf("expected 1 match, got %d", len(found))
	}
	if found[0].Name != "iPhone 15 Pro" {
		t.Errorf("resolved %q, want iPhone 15 Pro", found[0].Name)
	}
}

func TestStore_Resolve_BrandMatch(t *testing.T) {
	store := NewStore(testProducts())

	found := store.Resolve([]string{"samsung"})
	if len(found) != 1 || found[0].Name != "Galaxy S24 Ultra" {
		t.Fatalf("expected Galaxy S24 Ultra via brand match, got %v", found)
	}
}

func TestStore_Resolve_FirstMatchWins(t *testing.T) {
	store := NewStore(testProducts())

	// "Pro" matches both iPhone 15 Pro and Redmi Note 13 Pro; catalog order decides.
	found := store.Resolve([]string{"Pro"})
	if len(found) != 1 {
		t.Fatalf("expected exactly 1 match per input name, got %d", len(found))
	}
	if found[0].Name != "iPhone 15 Pro" {
		t.Errorf("resolved %q, want first catalog match iPhone 15 Pro", found[0].Name)
	}
}

func TestStore_Resolve_MissesDropped(t *testing.T) {
	store := NewStore(testProducts())

	found := store.Resolve([]string{"Nonexistent Model"})
	if len(found) != 0 {
		t.Errorf("expected no matches, got %d", len(found))
	}

	found = store.Resolve([]string{"Nonexistent", "Galaxy", ""})
	if len(found) != 1 || found[0].Name != "Galaxy S24 Ultra" {
		t.Fatalf("misses and empty names should be dropped, got %v", found)
	}
}
