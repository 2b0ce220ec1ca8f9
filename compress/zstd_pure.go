//go:build !(gozstd && cgo)

package compress

import (
	"fmt"
	"io"
	"sync"

	"github.com/klauspost/compress/zstd"
)

// zstdDecoderPool pools zstd decoders for reuse across streams.
// The klauspost/compress/zstd decoder is designed to be kept and Reset rather than
// recreated for every stream.
var zstdDecoderPool = sync.Pool{
	New: func() any {
		decoder, err := zstd.NewReader(nil,
			zstd.WithDecoderConcurrency(1), // synchronous stream decoding, no background goroutines
			zstd.WithDecoderLowmem(false),
		)
		if err != nil {
			// This should never happen with valid options
			panic(fmt.Sprintf("failed to create zstd decoder for pool: %v", err))
		}

		return decoder
	},
}

// zstdReader borrows a pooled decoder until Close.
type zstdReader struct {
	dec *zstd.Decoder
}

func newZstdReader(r io.Reader) (io.ReadCloser, error) {
	dec, _ := zstdDecoderPool.Get().(*zstd.Decoder)
	if err := dec.Reset(r); err != nil {
		zstdDecoderPool.Put(dec)
		return nil, fmt.Errorf("zstd reader: %w", err)
	}

	return &zstdReader{dec: dec}, nil
}

func (z *zstdReader) Read(p []byte) (int, error) {
	if z.dec == nil {
		return 0, errReaderClosed
	}

	return z.dec.Read(p)
}

// Close detaches the source stream and returns the decoder to the pool.
func (z *zstdReader) Close() error {
	if z.dec == nil {
		return nil
	}

	_ = z.dec.Reset(nil)
	zstdDecoderPool.Put(z.dec)
	z.dec = nil

	return nil
}

func newZstdWriter(w io.Writer) (io.WriteCloser, error) {
	enc, err := zstd.NewWriter(w,
		zstd.WithEncoderLevel(zstd.SpeedDefault),
		zstd.WithEncoderConcurrency(1),
	)
	if err != nil {
		return nil, fmt.Errorf("zstd writer: %w", err)
	}

	return enc, nil
}
