// Package storage provides an abstraction layer for object storage services.
//
// It wraps the MinIO Go client so that the size chart can be published to and read from
// an S3-compatible bucket instead of the local filesystem. This supports both AWS S3 and
// self-hosted MinIO instances.
//
// # Client Interface
//
// The Client interface abstracts the underlying storage provider, making it easy
// to mock storage interactions for unit testing (see core/storage/mocks).
//
// # Operations
//
//   - BucketExists: Verifies access to the target bucket.
//   - PutObject: Uploads content (used by `size-sync chart push`).
//   - GetObject: Retrieves content as a stream (used by the storage size chart source).
//
// # Usage
//
//	client, err := storage.NewClient(config)
//	exists, err := client.BucketExists(ctx, "size-charts")
package storage
