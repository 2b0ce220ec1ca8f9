package linecount

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/cespare/xxhash/v2"

	"github.com/arloliu/tradegrid/compress"
	"github.com/arloliu/tradegrid/errs"
	"github.com/arloliu/tradegrid/format"
	"github.com/arloliu/tradegrid/internal/hash"
	"github.com/arloliu/tradegrid/internal/pool"
)

var newline = []byte{'\n'}

// Summary describes the content of a file or stream.
type Summary struct {
	// Lines is the number of 0x0A bytes.
	Lines int64
	// Bytes is the number of (decompressed) content bytes.
	Bytes int64
	// Checksum is the xxHash64 of the (decompressed) content.
	Checksum uint64
}

// File returns the number of newline bytes in the file at path.
//
// Parameters:
//   - path: File to read
//   - opts: WithBufferSize, WithCompression, WithAutoDetect
//
// Returns:
//   - int: Number of 0x0A bytes
//   - error: Option errors, or an errs.ErrIO wrapped open/read/decode failure
func File(path string, opts ...Option) (int, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return 0, err
	}

	sum, err := summarizeFile(path, cfg, nil)
	if err != nil {
		return 0, err
	}

	return int(sum.Lines), nil
}

// Reader returns the number of newline bytes read from r until end of stream.
//
// WithCompression decodes r before counting; WithAutoDetect is ignored.
func Reader(r io.Reader, opts ...Option) (int, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return 0, err
	}

	sum, err := summarizeStream(r, cfg.compression, cfg.bufferSize, nil)
	if err != nil {
		return 0, err
	}

	return int(sum.Lines), nil
}

// Summarize returns the newline count, byte count and xxHash64 checksum of the file
// at path. It accepts the same options as File.
func Summarize(path string, opts ...Option) (Summary, error) {
	cfg, err := newConfig(opts)
	if err != nil {
		return Summary{}, err
	}

	return summarizeFile(path, cfg, hash.NewDigest())
}

func summarizeFile(path string, cfg *config, digest *xxhash.Digest) (Summary, error) {
	compression := cfg.compression
	if cfg.autoDetect && !cfg.compressionSet {
		compression = format.DetectCompression(path)
	}

	f, err := os.Open(path)
	if err != nil {
		return Summary{}, fmt.Errorf("%w: %w", errs.ErrIO, err)
	}
	defer f.Close()

	sum, err := summarizeStream(f, compression, cfg.bufferSize, digest)
	if err != nil {
		return Summary{}, fmt.Errorf("%s: %w", path, err)
	}

	return sum, nil
}

// summarizeStream counts newlines chunk by chunk. digest may be nil when no checksum
// is needed.
func summarizeStream(r io.Reader, compression format.CompressionType, bufferSize int, digest *xxhash.Digest) (Summary, error) {
	src, err := compress.NewReader(compression, r)
	if err != nil {
		return Summary{}, err
	}
	defer src.Close()

	chunk := pool.GetReadChunk(bufferSize)
	defer pool.PutReadChunk(chunk)

	var sum Summary
	for {
		n, err := src.Read(chunk.B)
		if n > 0 {
			data := chunk.B[:n]
			sum.Lines += int64(bytes.Count(data, newline))
			sum.Bytes += int64(n)
			if digest != nil {
				_, _ = digest.Write(data)
			}
		}

		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return Summary{}, fmt.Errorf("%w: %w", errs.ErrIO, err)
		}
	}

	if digest != nil {
		sum.Checksum = digest.Sum64()
	}

	return sum, nil
}
