package manifest

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"

	"manifest-sync/core/logger"
	"manifest-sync/feature/manifest/models"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// IndexPath is the manifest index endpoint, relative to the base URL.
const IndexPath = "/Platform/Destiny2/Manifest/"

// Source produces the index and the definition table.
type Source interface {
	FetchIndex(ctx context.Context) (*models.Index, error)
	FetchDefinitions(ctx context.Context, index *models.Index) (*models.Table, error)
}

// Fetcher retrieves the manifest over HTTP.
type Fetcher struct {
	client *http.Client
	cfg    Config
	logger *zap.Logger
}

// NewFetcher creates a fetcher for cfg.
func NewFetcher(cfg Config, logger *zap.Logger) *Fetcher {
	return &Fetcher{
		client: &http.Client{Timeout: cfg.Timeout()},
		cfg:    cfg,
		logger: logger.Named("fetcher"),
	}
}

// FetchIndex retrieves the index document and checks it names the item table for the configured locale.
func (f *Fetcher) FetchIndex(ctx context.Context) (*models.Index, error) {
	l := logger.WithStage(f.logger, StageIndex)
	l.Info("Fetching manifest index", zap.String("url", f.url(IndexPath)))

	body, err := f.get(ctx, IndexPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrManifestUnavailable, err)
	}
	defer body.Close()

	var envelope models.IndexEnvelope
	if err := json.NewDecoder(body).Decode(&envelope); err != nil {
		return nil, fmt.Errorf("%w: failed to decode index: %v", ErrManifestUnavailable, err)
	}
	// ErrorCode 1 is Success; 0 is what stripped-down mirrors send.
	if envelope.ErrorCode > 1 {
		return nil, fmt.Errorf("%w: remote error %d %s: %s", ErrManifestUnavailable, envelope.ErrorCode, envelope.ErrorStatus, envelope.Message)
	}

	index := envelope.Response
	if index == nil {
		return nil, fmt.Errorf("%w: index has no Response", ErrManifestUnavailable)
	}
	if index.Version == "" {
		return nil, fmt.Errorf("%w: index has no version", ErrManifestUnavailable)
	}
	if index.ContentPath(f.cfg.Locale, f.cfg.Table) == "" {
		return nil, fmt.Errorf("%w: no %s path for locale %q", ErrManifestUnavailable, f.cfg.Table, f.cfg.Locale)
	}

	l.Info("Manifest index fetched", zap.String("version", index.Version))
	return index, nil
}

// FetchTable retrieves and parses one content table.
func (f *Fetcher) FetchTable(ctx context.Context, contentPath string) (*models.Table, error) {
	l := logger.WithStage(f.logger, StageFetch)
	l.Info("Fetching definition table", zap.String("url", f.url(contentPath)))

	body, err := f.get(ctx, contentPath)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrDefinitionFetchFailed, err)
	}
	defer body.Close()

	table, err := models.DecodeTable(body)
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrDefinitionFetchFailed, contentPath, err)
	}

	l.Info("Definition table fetched", zap.String("path", contentPath), zap.Int("entries", table.Len()))
	return table, nil
}

// FetchDefinitions retrieves the item table and, when configured and listed, the plug-set table.
// Both downloads run concurrently; plug-set entries only fill hashes the item table lacks.
func (f *Fetcher) FetchDefinitions(ctx context.Context, index *models.Index) (*models.Table, error) {
	itemPath := index.ContentPath(f.cfg.Locale, f.cfg.Table)
	if itemPath == "" {
		return nil, fmt.Errorf("%w: no %s path for locale %q", ErrManifestUnavailable, f.cfg.Table, f.cfg.Locale)
	}

	plugSetPath := ""
	if f.cfg.PlugSetTable != "" {
		plugSetPath = index.ContentPath(f.cfg.Locale, f.cfg.PlugSetTable)
		if plugSetPath == "" {
			f.logger.Warn("Plug set table not listed in index, resolving plug sets from the item table only",
				zap.String("table", f.cfg.PlugSetTable))
		}
	}

	var items, plugSets *models.Table
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		t, err := f.FetchTable(gctx, itemPath)
		items = t
		return err
	})
	if plugSetPath != "" {
		g.Go(func() error {
			t, err := f.FetchTable(gctx, plugSetPath)
			plugSets = t
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if plugSets != nil {
		added := items.Merge(plugSets)
		f.logger.Debug("Merged plug set definitions", zap.Int("added", added))
	}
	return items, nil
}

// Fetch runs both stages: index, then definitions.
func (f *Fetcher) Fetch(ctx context.Context) (*models.Index, *models.Table, error) {
	index, err := f.FetchIndex(ctx)
	if err != nil {
		return nil, nil, err
	}
	table, err := f.FetchDefinitions(ctx, index)
	if err != nil {
		return nil, nil, err
	}
	return index, table, nil
}

func (f *Fetcher) url(p string) string {
	if strings.HasPrefix(p, "http://") || strings.HasPrefix(p, "https://") {
		return p
	}
	return strings.TrimSuffix(f.cfg.BaseURL, "/") + "/" + strings.TrimPrefix(p, "/")
}

func (f *Fetcher) get(ctx context.Context, p string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.url(p), nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	if f.cfg.ApiKey != "" {
		req.Header.Set("X-API-Key", f.cfg.ApiKey)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := f.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		resp.Body.Close()
		return nil, fmt.Errorf("%s returned status %d: %s", p, resp.StatusCode, strings.TrimSpace(string(snippet)))
	}
	return resp.Body, nil
}
