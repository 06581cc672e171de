// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so the extracted manifest artifacts can live in AWS S3
// or a self-hosted MinIO instance.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easier
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Blob Helpers
//
//   - PutBytes / GetBytes: treat an object as a single byte blob.
//   - Exists: presence check through StatObject.
//   - EnsureBucket: verify (and optionally create) the target bucket.
//   - IsNotFound: classify missing key/bucket responses.
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	err = storage.PutBytes(ctx, client, "assets", "manifest/version.txt", []byte(v), "text/plain")
package storage
