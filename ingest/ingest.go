// Package ingest loads candidate lists from files, streams, and blob
// stores, one line per candidate.
//
// Compressed inputs (gzip, zstd, lz4) are detected by their magic bytes and
// decompressed transparently, so `fuzzgo --input list.txt.gz` just works.
package ingest

import (
	"bufio"
	"context"
	"io"
	"os"

	"github.com/hupe1980/fuzzgo/blobstore"
	"github.com/hupe1980/fuzzgo/resource"
)

const (
	// initialScanBuffer is the scanner's starting buffer size.
	initialScanBuffer = 64 * 1024

	// maxLineLength bounds a single candidate line. Lines longer than this
	// make the scanner fail rather than silently truncate.
	maxLineLength = 1 << 20
)

// ReadLines reads candidate lines from r until EOF. Each returned line is an
// independent copy; the reader's buffer is never aliased. Trailing \r is
// stripped so CRLF input ranks the same as LF input.
func ReadLines(r io.Reader) ([][]byte, error) {
	dec, err := NewDecompressor(r)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	sc := bufio.NewScanner(dec)
	sc.Buffer(make([]byte, initialScanBuffer), maxLineLength)

	var lines [][]byte
	for sc.Scan() {
		b := sc.Bytes()
		if n := len(b); n > 0 && b[n-1] == '\r' {
			b = b[:n-1]
		}
		line := make([]byte, len(b))
		copy(line, b)
		lines = append(lines, line)
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	return lines, nil
}

// ReadFile reads candidate lines from the file at path.
func ReadFile(path string) ([][]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return ReadLines(f)
}

// FromBlob reads candidate lines from a named blob. A non-nil resource
// controller rate-limits the read so a large remote list cannot saturate
// the link.
func FromBlob(ctx context.Context, store blobstore.BlobStore, name string, rc *resource.Controller) ([][]byte, error) {
	blob, err := store.Open(ctx, name)
	if err != nil {
		return nil, err
	}
	defer blob.Close()

	var r io.Reader = io.NewSectionReader(blob, 0, blob.Size())
	if rc != nil {
		r = resource.NewRateLimitedReader(ctx, r, rc)
	}

	return ReadLines(r)
}
