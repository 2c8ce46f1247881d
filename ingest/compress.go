package ingest

import (
	"bufio"
	"bytes"
	"io"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Magic prefixes of the supported compression formats.
var (
	magicGzip = []byte{0x1f, 0x8b}
	magicZstd = []byte{0x28, 0xb5, 0x2f, 0xfd}
	magicLZ4  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// Decompressor wraps a reader and transparently decompresses gzip, zstd,
// and lz4 streams. Uncompressed input passes through untouched.
type Decompressor struct {
	r     io.Reader
	close func()
}

// NewDecompressor sniffs the stream's magic bytes and returns a reader
// producing the uncompressed content.
func NewDecompressor(r io.Reader) (*Decompressor, error) {
	br := bufio.NewReader(r)

	magic, err := br.Peek(4)
	if err != nil && err != io.EOF {
		return nil, err
	}

	switch {
	case bytes.HasPrefix(magic, magicGzip):
		zr, err := gzip.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &Decompressor{r: zr, close: func() { zr.Close() }}, nil

	case bytes.HasPrefix(magic, magicZstd):
		zr, err := zstd.NewReader(br)
		if err != nil {
			return nil, err
		}
		return &Decompressor{r: zr, close: zr.Close}, nil

	case bytes.HasPrefix(magic, magicLZ4):
		return &Decompressor{r: lz4.NewReader(br)}, nil

	default:
		return &Decompressor{r: br}, nil
	}
}

// Read implements io.Reader.
func (d *Decompressor) Read(p []byte) (int, error) {
	return d.r.Read(p)
}

// Close releases any decoder state. Closing never closes the underlying
// reader; the caller owns it.
func (d *Decompressor) Close() error {
	if d.close != nil {
		d.close()
	}
	return nil
}
