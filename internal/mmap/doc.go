// Package mmap provides read-only memory-mapped file access.
//
// Mapping a candidate list file lets the matcher slice it into lines without
// copying a multi-gigabyte file through kernel buffers first. The returned
// byte slices alias the mapping and stay valid until Close.
//
// # Platform Support
//
//   - Unix (Linux, macOS, BSD): mmap(2) with madvise(2) for access hints
//   - Windows: CreateFileMapping/MapViewOfFile (madvise is a no-op)
//
// # Thread Safety
//
// A Mapping is safe for concurrent read access. Close is idempotent, but
// callers must ensure no goroutine touches Bytes() after Close returns.
package mmap
