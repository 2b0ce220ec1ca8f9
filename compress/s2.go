package compress

import (
	"io"

	"github.com/klauspost/compress/s2"
)

func newS2Reader(r io.Reader) io.ReadCloser {
	return io.NopCloser(s2.NewReader(r))
}

// newS2Writer returns an S2 stream writer. (*s2.Writer).Close flushes the stream
// without closing w.
func newS2Writer(w io.Writer) io.WriteCloser {
	return s2.NewWriter(w)
}
