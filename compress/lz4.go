package compress

import (
	"io"

	"github.com/pierrec/lz4/v4"
)

func newLZ4Reader(r io.Reader) io.ReadCloser {
	return io.NopCloser(lz4.NewReader(r))
}

// newLZ4Writer returns an LZ4 frame writer. (*lz4.Writer).Close writes the frame
// footer without closing w.
func newLZ4Writer(w io.Writer) io.WriteCloser {
	return lz4.NewWriter(w)
}
