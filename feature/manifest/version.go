package manifest

import (
	"context"
	"fmt"
	"strings"

	"manifest-sync/core/storage"

	"go.uber.org/zap"
)

// ShouldProcess reports whether a run must re-process the table: always on first run
// (no stored version), otherwise only when the remote version differs.
func ShouldProcess(remoteVersion, storedVersion string) bool {
	return storedVersion == "" || remoteVersion != storedVersion
}

// Tracker persists the version token of the last successful run.
type Tracker struct {
	client storage.Client
	bucket string
	key    string
	logger *zap.Logger
}

// NewTracker creates a tracker storing the token under key.
func NewTracker(client storage.Client, bucket, key string, logger *zap.Logger) *Tracker {
	return &Tracker{
		client: client,
		bucket: bucket,
		key:    key,
		logger: logger.Named("version"),
	}
}

// Stored returns the persisted version, or "" when there is none.
// Read failures are logged and treated as "no prior version".
func (t *Tracker) Stored(ctx context.Context) string {
	data, err := storage.GetBytes(ctx, t.client, t.bucket, t.key)
	if err != nil {
		if storage.IsNotFound(err) {
			t.logger.Info("No stored version, treating as first run", zap.String("key", t.key))
		} else {
			t.logger.Warn("Failed to read stored version, treating as first run", zap.String("key", t.key), zap.Error(err))
		}
		return ""
	}
	return strings.TrimSpace(string(data))
}

// Commit persists version. It must be the last write of a successful run.
func (t *Tracker) Commit(ctx context.Context, version string) error {
	if err := storage.PutBytes(ctx, t.client, t.bucket, t.key, []byte(version), "text/plain; charset=utf-8"); err != nil {
		return fmt.Errorf("%w: version token: %v", ErrStorageWriteFailed, err)
	}
	t.logger.Info("Stored version updated", zap.String("version", version))
	return nil
}
