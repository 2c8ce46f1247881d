// Package s3 implements a read-only blobstore.BlobStore backed by Amazon S3.
//
// Candidate lists live as plain objects. Open verifies existence with a
// HeadObject call and serves ReadAt through ranged GetObject requests, so a
// caller that only needs the head of a large list never downloads the whole
// object. Fetch pulls a complete object in parallel parts when the list is
// going to be scored in full anyway.
package s3
