// Package compress stores rendered head fragments compressed with snappy or
// lz4. The algorithm is recorded in the file extension.
package compress

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/snappy"
	"github.com/pierrec/lz4/v4"
)

// ErrDecompression is returned when decompression fails.
// Use errors.Is(err, ErrDecompression) to check for it.
var ErrDecompression = errors.New("decompression failed")

// Algorithm names a compression format.
type Algorithm string

const (
	None   Algorithm = "none"
	Snappy Algorithm = "snappy"
	LZ4    Algorithm = "lz4"
)

// File extensions appended to compressed output
const (
	ExtSnappy = ".snappy"
	ExtLZ4    = ".lz4"
)

// MinSize is the smallest content, in bytes, that is worth compressing.
const MinSize = 512

// ParseAlgorithm maps a config value to an Algorithm. Empty means None.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch a := Algorithm(strings.ToLower(strings.TrimSpace(s))); a {
	case "", None:
		return None, nil
	case Snappy, LZ4:
		return a, nil
	default:
		return "", fmt.Errorf("unknown compression algorithm %q (want none, snappy or lz4)", s)
	}
}

// Ext returns the file extension for a, or "" for None.
func (a Algorithm) Ext() string {
	switch a {
	case Snappy:
		return ExtSnappy
	case LZ4:
		return ExtLZ4
	default:
		return ""
	}
}

// Detect returns the algorithm implied by the extension of path.
func Detect(path string) Algorithm {
	switch {
	case strings.HasSuffix(path, ExtSnappy):
		return Snappy
	case strings.HasSuffix(path, ExtLZ4):
		return LZ4
	default:
		return None
	}
}

// Compress compresses content with a. Content shorter than MinSize, and any
// content when a is None, is returned unchanged with None as the used
// algorithm.
func Compress(content []byte, a Algorithm) ([]byte, Algorithm, error) {
	if len(content) < MinSize {
		return content, None, nil
	}

	switch a {
	case Snappy:
		return snappy.Encode(nil, content), Snappy, nil

	case LZ4:
		// Stream format embeds the size, so Decompress needs no length hint
		var buf bytes.Buffer
		w := lz4.NewWriter(&buf)
		if _, err := w.Write(content); err != nil {
			_ = w.Close()
			return nil, "", fmt.Errorf("lz4 compression failed: %w", err)
		}
		if err := w.Close(); err != nil {
			return nil, "", fmt.Errorf("lz4 compression close failed: %w", err)
		}
		return buf.Bytes(), LZ4, nil

	case None, "":
		return content, None, nil

	default:
		return nil, "", fmt.Errorf("unknown compression algorithm %q", a)
	}
}

// Decompress reverses Compress. None returns content as-is.
func Decompress(content []byte, a Algorithm) ([]byte, error) {
	switch a {
	case Snappy:
		out, err := snappy.Decode(nil, content)
		if err != nil {
			return nil, fmt.Errorf("%w: snappy: %v", ErrDecompression, err)
		}
		return out, nil

	case LZ4:
		out, err := io.ReadAll(lz4.NewReader(bytes.NewReader(content)))
		if err != nil {
			return nil, fmt.Errorf("%w: lz4: %v", ErrDecompression, err)
		}
		return out, nil

	default:
		return content, nil
	}
}

// WriteFile compresses content and writes it to path plus the extension of
// the algorithm actually used. It returns the written path and byte count.
func WriteFile(path string, content []byte, a Algorithm) (string, int, error) {
	out, used, err := Compress(content, a)
	if err != nil {
		return "", 0, err
	}

	target := path + used.Ext()
	if err := os.WriteFile(target, out, 0o644); err != nil {
		return "", 0, fmt.Errorf("failed to write %s: %w", target, err)
	}
	return target, len(out), nil
}

// ReadFile reads path and decompresses it according to its extension.
func ReadFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return Decompress(data, Detect(path))
}
