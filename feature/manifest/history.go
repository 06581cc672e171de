package manifest

import (
	"context"
	"errors"
	"fmt"

	"manifest-sync/feature/manifest/models"

	"gorm.io/gorm"
)

// History records runs in the optional database. A nil *History is valid and records nothing.
type History struct {
	db *gorm.DB
}

// NewHistory migrates the history table. A nil db disables history and returns nil.
func NewHistory(db *gorm.DB) (*History, error) {
	if db == nil {
		return nil, nil
	}
	if err := db.AutoMigrate(&models.ManifestRun{}); err != nil {
		return nil, fmt.Errorf("failed to migrate run history: %w", err)
	}
	return &History{db: db}, nil
}

// Enabled reports whether runs are recorded.
func (h *History) Enabled() bool {
	return h != nil && h.db != nil
}

// Record stores one run.
func (h *History) Record(ctx context.Context, run *models.ManifestRun) error {
	if !h.Enabled() {
		return nil
	}
	if err := h.db.WithContext(ctx).Create(run).Error; err != nil {
		return fmt.Errorf("failed to record run: %w", err)
	}
	return nil
}

// Recent returns up to limit runs, newest first.
func (h *History) Recent(ctx context.Context, limit int) ([]models.ManifestRun, error) {
	if !h.Enabled() {
		return nil, ErrHistoryDisabled
	}
	if limit <= 0 {
		limit = 20
	}
	var runs []models.ManifestRun
	if err := h.db.WithContext(ctx).Order("id DESC").Limit(limit).Find(&runs).Error; err != nil {
		return nil, fmt.Errorf("failed to list runs: %w", err)
	}
	return runs, nil
}

// Latest returns the newest run, or nil when none is recorded.
func (h *History) Latest(ctx context.Context) (*models.ManifestRun, error) {
	if !h.Enabled() {
		return nil, ErrHistoryDisabled
	}
	var run models.ManifestRun
	err := h.db.WithContext(ctx).Order("id DESC").First(&run).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load latest run: %w", err)
	}
	return &run, nil
}
