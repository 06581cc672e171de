package manifest

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"manifest-sync/core/storage"
	"manifest-sync/feature/manifest/models"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
	"golang.org/x/sync/singleflight"
)

// RunOptions controls a single pipeline run.
type RunOptions struct {
	// Force re-processes the table even when the remote version is unchanged.
	Force bool
}

// RunResult summarises a pipeline run.
type RunResult struct {
	RemoteVersion   string    `json:"remote_version"`
	PreviousVersion string    `json:"previous_version"`
	Skipped         bool      `json:"skipped"`
	TableEntries    int       `json:"table_entries"`
	Weapons         int       `json:"weapons"`
	Plugs           int       `json:"plugs"`
	StartedAt       time.Time `json:"started_at"`
	FinishedAt      time.Time `json:"finished_at"`
	ExecutionTime   string    `json:"execution_time"`
}

// Status describes the stored artifacts and the latest recorded run.
type Status struct {
	StoredVersion  string              `json:"stored_version"`
	Running        bool                `json:"running"`
	HistoryEnabled bool                `json:"history_enabled"`
	LastRun        *models.ManifestRun `json:"last_run,omitempty"`
}

// Service orchestrates the pipeline: version gate, fetch, classify, resolve, write.
type Service struct {
	source  Source
	client  storage.Client
	bucket  string
	cfg     Config
	tracker *Tracker
	writer  *Writer
	history *History
	logger  *zap.Logger

	mu      sync.Mutex
	running atomic.Bool
	reads   singleflight.Group
}

// NewService wires the pipeline. history may be nil.
func NewService(source Source, client storage.Client, bucket string, cfg Config, history *History, logger *zap.Logger) (*Service, error) {
	shape, err := models.ParseShape(cfg.OutputShape)
	if err != nil {
		return nil, err
	}
	tracker := NewTracker(client, bucket, cfg.ObjectKey(VersionObject), logger)
	return &Service{
		source:  source,
		client:  client,
		bucket:  bucket,
		cfg:     cfg,
		tracker: tracker,
		writer:  NewWriter(client, bucket, cfg, shape, tracker, logger),
		history: history,
		logger:  logger,
	}, nil
}

// Run executes the pipeline once. Only one run may be in flight per Service;
// a concurrent call fails fast with ErrRunInProgress.
func (s *Service) Run(ctx context.Context, opts RunOptions) (*RunResult, error) {
	if !s.mu.TryLock() {
		return nil, ErrRunInProgress
	}
	defer s.mu.Unlock()
	s.running.Store(true)
	defer s.running.Store(false)

	result := &RunResult{StartedAt: time.Now()}
	err := s.run(ctx, opts, result)
	result.FinishedAt = time.Now()
	result.ExecutionTime = result.FinishedAt.Sub(result.StartedAt).String()

	s.record(ctx, result, err)

	if err != nil {
		s.logger.Error("Manifest run failed", zap.String("stage", FailedStage(err)), zap.Error(err))
		return result, err
	}
	return result, nil
}

func (s *Service) run(ctx context.Context, opts RunOptions, result *RunResult) error {
	index, err := s.source.FetchIndex(ctx)
	if err != nil {
		return &StageError{Stage: StageIndex, Err: err}
	}
	result.RemoteVersion = index.Version
	result.PreviousVersion = s.tracker.Stored(ctx)

	if !opts.Force && !ShouldProcess(result.RemoteVersion, result.PreviousVersion) {
		result.Skipped = true
		s.logger.Info("Manifest unchanged, skipping", zap.String("version", result.RemoteVersion))
		return nil
	}
	s.logger.Info("Processing manifest",
		zap.String("version", result.RemoteVersion),
		zap.String("previous", result.PreviousVersion),
		zap.Bool("forced", opts.Force))

	table, err := s.source.FetchDefinitions(ctx, index)
	if err != nil {
		return &StageError{Stage: StageFetch, Err: err}
	}
	result.TableEntries = table.Len()

	weapons := Classify(table)
	result.Weapons = len(weapons)
	s.logger.Info("Weapons classified", zap.Int("entries", table.Len()), zap.Int("weapons", len(weapons)))

	plugs := ResolvePlugs(table, weapons)
	result.Plugs = len(plugs)
	s.logger.Info("Plugs resolved", zap.Int("plugs", len(plugs)))

	// Nothing has been written yet, so cancellation here leaves the previous run intact.
	if err := ctx.Err(); err != nil {
		return &StageError{Stage: StageResolve, Err: err}
	}

	return s.writer.Write(ctx, weapons, plugs, index.Version)
}

func (s *Service) record(ctx context.Context, result *RunResult, runErr error) {
	if !s.history.Enabled() {
		return
	}
	run := &models.ManifestRun{
		RemoteVersion:   result.RemoteVersion,
		PreviousVersion: result.PreviousVersion,
		Status:          models.RunStatusSucceeded,
		TableEntries:    result.TableEntries,
		Weapons:         result.Weapons,
		Plugs:           result.Plugs,
		StartedAt:       result.StartedAt,
		FinishedAt:      result.FinishedAt,
	}
	switch {
	case runErr != nil:
		run.Status = models.RunStatusFailed
		run.FailedStage = FailedStage(runErr)
		run.Error = runErr.Error()
	case result.Skipped:
		run.Status = models.RunStatusSkipped
	}
	// The run context may already be cancelled; history is best effort.
	if err := s.history.Record(context.WithoutCancel(ctx), run); err != nil {
		s.logger.Warn("Failed to record run history", zap.Error(err))
	}
}

// Status reports the stored version and, when history is enabled, the latest run.
func (s *Service) Status(ctx context.Context) (*Status, error) {
	status := &Status{
		StoredVersion:  s.tracker.Stored(ctx),
		Running:        s.running.Load(),
		HistoryEnabled: s.history.Enabled(),
	}
	if status.HistoryEnabled {
		last, err := s.history.Latest(ctx)
		if err != nil {
			return nil, err
		}
		status.LastRun = last
	}
	return status, nil
}

// Runs lists recent runs from history.
func (s *Service) Runs(ctx context.Context, limit int) ([]models.ManifestRun, error) {
	return s.history.Recent(ctx, limit)
}

// WeaponsArtifact returns the stored weapon artifact bytes.
func (s *Service) WeaponsArtifact(ctx context.Context) ([]byte, error) {
	return s.readArtifact(ctx, WeaponsObject)
}

// Plug returns one record of the stored plug closure.
func (s *Service) Plug(ctx context.Context, hash string) (*models.PlugRecord, error) {
	data, err := s.readArtifact(ctx, PlugsObject)
	if err != nil {
		return nil, err
	}
	var closure models.PlugClosure
	if err := json.Unmarshal(data, &closure); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", PlugsObject, err)
	}
	record, ok := closure[hash]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrPlugNotFound, hash)
	}
	return &record, nil
}

// readArtifact collapses concurrent reads of the same object into one download.
func (s *Service) readArtifact(ctx context.Context, name string) ([]byte, error) {
	key := s.cfg.ObjectKey(name)
	v, err, _ := s.reads.Do(key, func() (any, error) {
		// Shared by every waiting caller, so one caller's cancellation must not fail the others.
		return storage.GetBytes(context.WithoutCancel(ctx), s.client, s.bucket, key)
	})
	if err != nil {
		if storage.IsNotFound(err) {
			return nil, fmt.Errorf("%w: %s", ErrArtifactMissing, key)
		}
		return nil, err
	}
	return v.([]byte), nil
}

// IsClientError reports whether err is caused by the request rather than the service.
func IsClientError(err error) bool {
	return errors.Is(err, ErrPlugNotFound) || errors.Is(err, ErrArtifactMissing)
}
