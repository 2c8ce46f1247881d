package ingest

import (
	"github.com/hupe1980/fuzzgo/internal/mmap"
)

// MmapLines memory-maps the file at path and splits it into lines that alias
// the mapping, so a multi-gigabyte candidate list costs no copies. The
// returned close function unmaps the file; no line may be used after it runs.
//
// Only uncompressed files can be mapped. Compressed input has to go through
// ReadFile.
func MmapLines(path string) ([][]byte, func() error, error) {
	m, err := mmap.Open(path)
	if err != nil {
		return nil, nil, err
	}

	// The split walks the whole file once; tell the kernel so.
	_ = m.Advise(mmap.AccessSequential)

	return SplitLines(m.Bytes()), m.Close, nil
}

// SplitLines splits data into lines sharing data's backing array. A trailing
// \r is stripped from each line; a trailing newline at EOF produces no empty
// final line.
func SplitLines(data []byte) [][]byte {
	var lines [][]byte
	start := 0
	for i, b := range data {
		if b == '\n' {
			line := data[start:i]
			if n := len(line); n > 0 && line[n-1] == '\r' {
				line = line[:n-1]
			}
			lines = append(lines, line)
			start = i + 1
		}
	}
	if start < len(data) {
		line := data[start:]
		if n := len(line); n > 0 && line[n-1] == '\r' {
			line = line[:n-1]
		}
		lines = append(lines, line)
	}
	return lines
}
