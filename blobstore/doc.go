// Package blobstore provides storage abstraction for candidate list files.
//
// BlobStore is the interface for reading immutable blobs. Implementations
// must be safe for concurrent use. Candidate lists are read-mostly: the CLI
// opens a blob once, streams or maps it, and never writes through the store
// (MemoryStore keeps a Put for seeding tests and fixtures).
//
// # Built-in Implementations
//
//   - LocalStore: local filesystem with mmap-backed zero-copy reads
//   - MemoryStore: in-memory, for tests
//   - s3.Store: Amazon S3 with ranged reads
//   - minio.Store: MinIO and other S3-compatible endpoints
//
// # Custom Implementations
//
// Implement the BlobStore interface to support custom storage backends:
//
//	type BlobStore interface {
//	    Open(ctx, name) (Blob, error)       // Open for reading
//	    List(ctx, prefix) ([]string, error)
//	}
package blobstore
