package compress

import (
	"errors"
	"fmt"
	"io"

	"github.com/arloliu/tradegrid/errs"
	"github.com/arloliu/tradegrid/format"
)

var errReaderClosed = errors.New("compress: read from closed reader")

// NewReader wraps r in a decompressing reader for the given compression type.
//
// Parameters:
//   - compressionType: Compression of the data read from r
//   - r: Source stream, still owned by the caller
//
// Returns:
//   - io.ReadCloser: Decompressed stream. Close releases decoder resources only.
//   - error: errs.ErrInvalidCompression for unknown types, or decoder setup errors
func NewReader(compressionType format.CompressionType, r io.Reader) (io.ReadCloser, error) {
	switch compressionType {
	case format.CompressionNone:
		return io.NopCloser(r), nil
	case format.CompressionZstd:
		return newZstdReader(r)
	case format.CompressionS2:
		return newS2Reader(r), nil
	case format.CompressionLZ4:
		return newLZ4Reader(r), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
	}
}

// NewWriter wraps w in a compressing writer for the given compression type.
//
// The returned writer must be closed to flush the final frame. Closing it does not
// close w.
//
// Parameters:
//   - compressionType: Compression to apply
//   - w: Destination stream, still owned by the caller
//
// Returns:
//   - io.WriteCloser: Compressing stream
//   - error: errs.ErrInvalidCompression for unknown types, or encoder setup errors
func NewWriter(compressionType format.CompressionType, w io.Writer) (io.WriteCloser, error) {
	switch compressionType {
	case format.CompressionNone:
		return nopWriteCloser{w}, nil
	case format.CompressionZstd:
		return newZstdWriter(w)
	case format.CompressionS2:
		return newS2Writer(w), nil
	case format.CompressionLZ4:
		return newLZ4Writer(w), nil
	default:
		return nil, fmt.Errorf("%w: %s", errs.ErrInvalidCompression, compressionType)
	}
}
