package csvfind

import (
	"compress/bzip2"
	"compress/gzip"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Compression extensions recognized on input files.
const (
	extGZ   = ".gz"
	extBZ2  = ".bz2"
	extXZ   = ".xz"
	extZSTD = ".zst"
)

// hasCompressionExt reports whether the path carries a recognized
// compression suffix.
func hasCompressionExt(path string) bool {
	lower := strings.ToLower(path)
	for _, ext := range []string{extGZ, extBZ2, extXZ, extZSTD} {
		if strings.HasSuffix(lower, ext) {
			return true
		}
	}
	return false
}

// trimCompressionExt removes a recognized compression suffix, if present,
// so the underlying file type can be judged from the remaining extension.
func trimCompressionExt(path string) string {
	lower := strings.ToLower(path)
	for _, ext := range []string{extGZ, extBZ2, extXZ, extZSTD} {
		if strings.HasSuffix(lower, ext) {
			return path[:len(path)-len(ext)]
		}
	}
	return path
}

// openReader opens path and wraps it with a decompression reader chosen by
// extension. The returned cleanup closes the decompressor and the file and
// must be called on every exit path.
func openReader(path string) (io.Reader, func() error, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("%w: %s: %v", ErrAccess, path, err)
	}

	reader, cleanup, err := wrapDecompression(file, path)
	if err != nil {
		_ = file.Close()
		return nil, nil, err
	}

	composite := func() error {
		var cleanupErr error
		if cleanup != nil {
			cleanupErr = cleanup()
		}
		if closeErr := file.Close(); closeErr != nil && cleanupErr == nil {
			cleanupErr = closeErr
		}
		return cleanupErr
	}
	return reader, composite, nil
}

// wrapDecompression wraps reader with the decompressor matching the path's
// compression suffix, or returns it unchanged for plain files.
func wrapDecompression(reader io.Reader, path string) (io.Reader, func() error, error) {
	lower := strings.ToLower(path)
	switch {
	case strings.HasSuffix(lower, extGZ):
		gzReader, err := gzip.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: gzip: %v", ErrAccess, path, err)
		}
		return gzReader, gzReader.Close, nil

	case strings.HasSuffix(lower, extBZ2):
		// bzip2.NewReader doesn't need closing
		return bzip2.NewReader(reader), func() error { return nil }, nil

	case strings.HasSuffix(lower, extXZ):
		xzReader, err := xz.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: xz: %v", ErrAccess, path, err)
		}
		// xz.Reader doesn't have a Close method
		return xzReader, func() error { return nil }, nil

	case strings.HasSuffix(lower, extZSTD):
		decoder, err := zstd.NewReader(reader)
		if err != nil {
			return nil, nil, fmt.Errorf("%w: %s: zstd: %v", ErrAccess, path, err)
		}
		return decoder, func() error {
			decoder.Close()
			return nil
		}, nil

	default:
		return reader, func() error { return nil }, nil
	}
}
