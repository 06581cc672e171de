package cmd

import (
	"fmt"

	"manifest-sync/core/config"
	"manifest-sync/core/database"
	"manifest-sync/core/logger"
	"manifest-sync/core/storage"
	"manifest-sync/feature/manifest"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// environment bundles the dependencies every command needs.
type environment struct {
	cfg    *config.Config
	logger *zap.Logger
	store  storage.Client
	db     *gorm.DB
}

func newEnvironment() (*environment, error) {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	logg, err := logger.New(&cfg.Log)
	if err != nil {
		return nil, fmt.Errorf("failed to create logger: %w", err)
	}

	store, err := storage.NewClient(cfg.Storage)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}

	env := &environment{cfg: cfg, logger: logg, store: store}

	// Run history is optional; a broken database only disables it.
	if cfg.Database.Enabled {
		if db, err := database.Connect(cfg.Database); err != nil {
			logg.Warn("Run history disabled, database connection failed", zap.Error(err))
		} else {
			env.db = db
			logg.Info("Connected to history database", zap.String("driver", cfg.Database.Driver))
		}
	}

	return env, nil
}

// manifestService wires the pipeline against the remote manifest.
func (e *environment) manifestService() (*manifest.Service, error) {
	history, err := manifest.NewHistory(e.db)
	if err != nil {
		e.logger.Warn("Run history disabled, migration failed", zap.Error(err))
		history = nil
	}

	if e.cfg.Manifest.ApiKey == "" {
		e.logger.Warn("MANIFEST_API_KEY is empty; the remote may reject requests")
	}

	return manifest.NewService(
		manifest.NewFetcher(e.cfg.Manifest, e.logger),
		e.store,
		e.cfg.Storage.Bucket,
		e.cfg.Manifest,
		history,
		e.logger,
	)
}

func (e *environment) close() {
	if e.db != nil {
		if sqlDB, err := e.db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}
	_ = e.logger.Sync()
}
