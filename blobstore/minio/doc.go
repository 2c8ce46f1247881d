// Package minio implements a read-only blobstore.BlobStore for MinIO and
// other S3-compatible endpoints. ReadAt is served through ranged GetObject
// requests.
package minio
