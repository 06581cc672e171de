package integrity

import (
	"context"

	"manifest-sync/core/storage"
	"manifest-sync/feature/integrity/checks"
	"manifest-sync/feature/manifest"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Service handles integrity checks.
type Service struct {
	client   storage.Client
	bucket   string
	region   string
	manifest manifest.Config
	db       *gorm.DB
	logger   *zap.Logger
}

// NewService creates a new integrity service. db may be nil.
func NewService(client storage.Client, storageCfg storage.Config, manifestCfg manifest.Config, db *gorm.DB, logger *zap.Logger) *Service {
	return &Service{
		client:   client,
		bucket:   storageCfg.Bucket,
		region:   storageCfg.Region,
		manifest: manifestCfg,
		db:       db,
		logger:   logger,
	}
}

// Folders lists the folders the pipeline writes into.
func (s *Service) Folders() []string {
	if s.manifest.Prefix == "" {
		return nil
	}
	return []string{s.manifest.Prefix}
}

// CheckStructure returns a list of missing folders.
func (s *Service) CheckStructure(ctx context.Context) ([]string, error) {
	return checks.CheckStructure(ctx, s.client, s.bucket, s.Folders())
}

// FixStructure creates the bucket and the missing folders.
func (s *Service) FixStructure(ctx context.Context, missing []string) error {
	return checks.FixStructure(ctx, s.client, s.bucket, s.region, s.logger, missing)
}

// CheckArtifacts returns the artifact keys absent from the bucket.
func (s *Service) CheckArtifacts(ctx context.Context) ([]string, error) {
	return checks.CheckArtifacts(ctx, s.client, s.bucket, s.manifest.ArtifactKeys())
}

// CheckHistory compares the run history table with the expected schema.
func (s *Service) CheckHistory() (*checks.HistoryReport, error) {
	return checks.CheckHistorySchema(s.db)
}
