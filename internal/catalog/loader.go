// Package catalog loads and holds the immutable product collection.
package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"go.uber.org/zap"

	"github.com/ashk12/phone-assistant/internal/domain"
)

// Source identifies where the active catalog came from.
type Source string

// Catalog source constants.
const (
	// SourceRemote means the primary remote fetch succeeded.
	SourceRemote Source = "remote"
	// SourceLocal means the remote fetch failed and the local file was used.
	SourceLocal Source = "local"
	// SourceNone means both sources failed; the catalog is empty.
	SourceNone Source = "none"
)

// Snapshot is the outcome of a catalog load: the products plus which source
// produced them, so callers and tests can tell a degraded load from a real one.
type Snapshot struct {
	Products []domain.Product
	Source   Source
}

// Loader fetches the catalog from a remote URL, falling back to a local file.
type Loader struct {
	remoteURL string
	localPath string
	client    *http.Client
	logger    *zap.Logger
}

// NewLoader creates a catalog loader.
func NewLoader(remoteURL, localPath string, logger *zap.Logger) *Loader {
	return &Loader{
		remoteURL: remoteURL,
		localPath: localPath,
		client:    &http.Client{Timeout: 15 * time.Second},
		logger:    logger,
	}
}

// Load fetches the catalog. Remote failure of any kind (network, bad status,
// malformed payload) triggers exactly one local-file fallback; if that fails
// too, the snapshot is empty. Load never returns an error: the system must
// stay queryable with an empty catalog.
func (l *Loader) Load(ctx context.Context) Snapshot {
	products, err := l.fetchRemote(ctx)
	if err == nil {
		l.logger.Info("catalog loaded from remote",
			zap.String("url", l.remoteURL),
			zap.Int("products", len(products)),
		)
		return Snapshot{Products: products, Source: SourceRemote}
	}
	l.logger.Warn("remote catalog load failed, trying local file",
		zap.String("url", l.remoteURL),
		zap.Error(err),
	)

	products, err = l.readLocal()
	if err == nil {
		l.logger.Info("catalog loaded from local file",
			zap.String("path", l.localPath),
			zap.Int("products", len(products)),
		)
		return Snapshot{Products: products, Source: SourceLocal}
	}
	l.logger.Error("local catalog load failed, starting with empty catalog",
		zap.String("path", l.localPath),
		zap.Error(err),
	)

	return Snapshot{Source: SourceNone}
}

func (l *Loader) fetchRemote(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, l.remoteURL, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}

	resp, err := l.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch catalog: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status %d", resp.StatusCode)
	}

	var products []domain.Product
	if err := json.NewDecoder(resp.Body).Decode(&products); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}
	return products, nil
}

func (l *Loader) readLocal() ([]domain.Product, error) {
	data, err := os.ReadFile(filepath.Clean(l.localPath))
	if err != nil {
		return nil, fmt.Errorf("read catalog file: %w", err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog file: %w", err)
	}
	return products, nil
}
