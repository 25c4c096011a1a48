package catalog

import (
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"go.uber.org/zap"

	"github.com/ashk12/phone-assistant/internal/domain"
)

const catalogJSON = `[
	{"brand": "Apple", "name": "iPhone 15 Pro", "price": 134900},
	{"brand": "Samsung", "name": "Galaxy S24 Ultra", "price": 129999}
]`

func writeLocalCatalog(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "products.json")
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write local catalog: %v", err)
	}
	return path
}

func TestLoader_RemoteSuccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(catalogJSON))
	}))
	defer server.Close()

	loader := NewLoader(server.URL, "does-not-exist.json", zap.NewNop())
	snap := loader.Load(context.Background())

	if snap.Source != SourceRemote {
		t.Errorf("source = %v, want %v", snap.Source, SourceRemote)
	}
	if len(snap.Products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(snap.Products))
	}
	if snap.Products[0].Name != "iPhone 15 Pro" {
		t.Errorf("first product = %q", snap.Products[0].Name)
	}
}

func TestLoader_RemoteFailureFallsBackToLocal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	local := writeLocalCatalog(t, catalogJSON)
	loader := NewLoader(server.URL, local, zap.NewNop())
	snap := loader.Load(context.Background())

	if snap.Source != SourceLocal {
		t.Errorf("source = %v, want %v", snap.Source, SourceLocal)
	}
	if len(snap.Products) != 2 {
		t.Fatalf("expected 2 products from local file, got %d", len(snap.Products))
	}
}

func TestLoader_MalformedRemoteFallsBackToLocal(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte("not json at all"))
	}))
	defer server.Close()

	local := writeLocalCatalog(t, catalogJSON)
	loader := NewLoader(server.URL, local, zap.NewNop())
	snap := loader.Load(context.Background())

	if snap.Source != SourceLocal {
		t.Errorf("source = %v, want %v", snap.Source, SourceLocal)
	}
}

func TestLoader_BothSourcesFail(t *testing.T) {
	loader := NewLoader("http://127.0.0.1:1/products.json", "does-not-exist.json", zap.NewNop())
	snap := loader.Load(context.Background())

	if snap.Source != SourceNone {
		t.Errorf("source = %v, want %v", snap.Source, SourceNone)
	}
	if len(snap.Products) != 0 {
		t.Errorf("expected empty catalog, got %d products", len(snap.Products))
	}

	// Searches over the empty catalog return empty results, not errors.
	store := NewStore(snap.Products)
	if results := store.Search(domain.FilterSet{}); len(results) != 0 {
		t.Errorf("expected no results, got %d", len(results))
	}
}
