package ingest

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hupe1980/fuzzgo/blobstore"
	"github.com/hupe1980/fuzzgo/resource"
)

func TestReadLines(t *testing.T) {
	t.Run("plain lines", func(t *testing.T) {
		lines, err := ReadLines(strings.NewReader("alpha\nbeta\ngamma\n"))
		require.NoError(t, err)
		assert.Equal(t, [][]byte{[]byte("alpha"), []byte("beta"), []byte("gamma")}, lines)
	})

	t.Run("no trailing newline", func(t *testing.T) {
		lines, err := ReadLines(strings.NewReader("alpha\nbeta"))
		require.NoError(t, err)
		assert.Len(t, lines, 2)
		assert.Equal(t, []byte("beta"), lines[1])
	})

	t.Run("crlf input", func(t *testing.T) {
		lines, err := ReadLines(strings.NewReader("alpha\r\nbeta\r\n"))
		require.NoError(t, err)
		assert.Equal(t, [][]byte{[]byte("alpha"), []byte("beta")}, lines)
	})

	t.Run("empty input", func(t *testing.T) {
		lines, err := ReadLines(strings.NewReader(""))
		require.NoError(t, err)
		assert.Empty(t, lines)
	})

	t.Run("lines are independent copies", func(t *testing.T) {
		lines, err := ReadLines(strings.NewReader(strings.Repeat("candidate line\n", 1000)))
		require.NoError(t, err)
		require.Len(t, lines, 1000)

		// Mutating one line must not bleed into another through a shared
		// scanner buffer.
		lines[0][0] = 'X'
		assert.Equal(t, []byte("candidate line"), lines[1])
	})
}

func TestReadLines_Compressed(t *testing.T) {
	const content = "alpha\nbeta\ngamma\n"
	want := [][]byte{[]byte("alpha"), []byte("beta"), []byte("gamma")}

	t.Run("gzip", func(t *testing.T) {
		var buf bytes.Buffer
		zw := gzip.NewWriter(&buf)
		_, err := zw.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		lines, err := ReadLines(&buf)
		require.NoError(t, err)
		assert.Equal(t, want, lines)
	})

	t.Run("zstd", func(t *testing.T) {
		var buf bytes.Buffer
		zw, err := zstd.NewWriter(&buf)
		require.NoError(t, err)
		_, err = zw.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		lines, err := ReadLines(&buf)
		require.NoError(t, err)
		assert.Equal(t, want, lines)
	})

	t.Run("lz4", func(t *testing.T) {
		var buf bytes.Buffer
		zw := lz4.NewWriter(&buf)
		_, err := zw.Write([]byte(content))
		require.NoError(t, err)
		require.NoError(t, zw.Close())

		lines, err := ReadLines(&buf)
		require.NoError(t, err)
		assert.Equal(t, want, lines)
	})

	t.Run("short uncompressed input", func(t *testing.T) {
		// Shorter than any magic prefix.
		lines, err := ReadLines(strings.NewReader("ab"))
		require.NoError(t, err)
		assert.Equal(t, [][]byte{[]byte("ab")}, lines)
	})
}

func TestReadFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "candidates.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\n"), 0o644))

	lines, err := ReadFile(path)
	require.NoError(t, err)
	assert.Len(t, lines, 2)

	_, err = ReadFile(filepath.Join(dir, "missing.txt"))
	assert.Error(t, err)
}

func TestFromBlob(t *testing.T) {
	ctx := context.Background()

	store := blobstore.NewMemoryStore()
	require.NoError(t, store.Put(ctx, "list.txt", []byte("alpha\nbeta\n")))

	t.Run("plain", func(t *testing.T) {
		lines, err := FromBlob(ctx, store, "list.txt", nil)
		require.NoError(t, err)
		assert.Equal(t, [][]byte{[]byte("alpha"), []byte("beta")}, lines)
	})

	t.Run("rate limited", func(t *testing.T) {
		rc := resource.NewController(resource.Config{IOLimitBytesPerSec: 1 << 20})
		lines, err := FromBlob(ctx, store, "list.txt", rc)
		require.NoError(t, err)
		assert.Len(t, lines, 2)
	})

	t.Run("missing blob", func(t *testing.T) {
		_, err := FromBlob(ctx, store, "nope.txt", nil)
		assert.ErrorIs(t, err, blobstore.ErrNotFound)
	})
}

func TestSplitLines(t *testing.T) {
	t.Run("aliases the input", func(t *testing.T) {
		data := []byte("alpha\nbeta\n")
		lines := SplitLines(data)
		require.Len(t, lines, 2)

		// Lines share data's backing array.
		data[0] = 'X'
		assert.Equal(t, []byte("Xlpha"), lines[0])
	})

	t.Run("no trailing empty line", func(t *testing.T) {
		assert.Len(t, SplitLines([]byte("a\nb\n")), 2)
		assert.Len(t, SplitLines([]byte("a\nb")), 2)
	})

	t.Run("crlf", func(t *testing.T) {
		lines := SplitLines([]byte("a\r\nb\r\n"))
		assert.Equal(t, [][]byte{[]byte("a"), []byte("b")}, lines)
	})

	t.Run("empty", func(t *testing.T) {
		assert.Empty(t, SplitLines(nil))
	})
}

func TestMmapLines(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "candidates.txt")
	require.NoError(t, os.WriteFile(path, []byte("one\ntwo\nthree\n"), 0o644))

	lines, closeFn, err := MmapLines(path)
	require.NoError(t, err)
	require.NotNil(t, closeFn)

	assert.Equal(t, [][]byte{[]byte("one"), []byte("two"), []byte("three")}, lines)
	require.NoError(t, closeFn())
}
