package manifest

import (
	"context"
	"fmt"

	"manifest-sync/core/storage"
	"manifest-sync/feature/manifest/models"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const jsonContentType = "application/json"

// Writer persists the artifacts of a run.
type Writer struct {
	client  storage.Client
	bucket  string
	cfg     Config
	shape   models.Shape
	tracker *Tracker
	logger  *zap.Logger
}

// NewWriter creates a writer; the version token goes through tracker.
func NewWriter(client storage.Client, bucket string, cfg Config, shape models.Shape, tracker *Tracker, logger *zap.Logger) *Writer {
	return &Writer{
		client:  client,
		bucket:  bucket,
		cfg:     cfg,
		shape:   shape,
		tracker: tracker,
		logger:  logger.Named("writer"),
	}
}

// Encode renders the weapon and plug artifacts.
// Map keys are emitted sorted, so equal inputs give byte-identical output.
func (w *Writer) Encode(weapons []models.WeaponRecord, plugs models.PlugClosure) (weaponsJSON, plugsJSON []byte, err error) {
	weaponsJSON, err = json.MarshalIndent(w.shape.Project(weapons), "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode weapons: %w", err)
	}
	if plugs == nil {
		plugs = models.PlugClosure{}
	}
	plugsJSON, err = json.MarshalIndent(plugs, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("failed to encode plugs: %w", err)
	}
	return weaponsJSON, plugsJSON, nil
}

// Write uploads the weapon and plug artifacts concurrently, then commits version.
// Any failure returns before the version is touched.
func (w *Writer) Write(ctx context.Context, weapons []models.WeaponRecord, plugs models.PlugClosure, version string) error {
	weaponsJSON, plugsJSON, err := w.Encode(weapons, plugs)
	if err != nil {
		return &StageError{Stage: StageWrite, Err: fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return storage.PutBytes(gctx, w.client, w.bucket, w.cfg.ObjectKey(WeaponsObject), weaponsJSON, jsonContentType)
	})
	g.Go(func() error {
		return storage.PutBytes(gctx, w.client, w.bucket, w.cfg.ObjectKey(PlugsObject), plugsJSON, jsonContentType)
	})
	if err := g.Wait(); err != nil {
		w.logger.Error("Artifact upload failed, version left unchanged", zap.Error(err))
		return &StageError{Stage: StageWrite, Err: fmt.Errorf("%w: %v", ErrStorageWriteFailed, err)}
	}

	w.logger.Info("Artifacts written",
		zap.Int("weapons", len(weapons)),
		zap.Int("plugs", len(plugs)),
		zap.Int("weapons_bytes", len(weaponsJSON)),
		zap.Int("plugs_bytes", len(plugsJSON)),
		zap.String("shape", string(w.shape)))

	if err := w.tracker.Commit(ctx, version); err != nil {
		return &StageError{Stage: StageCommit, Err: err}
	}
	return nil
}
