package checks

import (
	"context"
	"fmt"

	"manifest-sync/core/storage"
)

// CheckArtifacts returns the keys that are not present in the bucket.
func CheckArtifacts(ctx context.Context, client storage.Client, bucket string, keys []string) ([]string, error) {
	var missing []string
	for _, key := range keys {
		ok, err := storage.Exists(ctx, client, bucket, key)
		if err != nil {
			return nil, fmt.Errorf("failed to stat %s: %w", key, err)
		}
		if !ok {
			missing = append(missing, key)
		}
	}
	return missing, nil
}
