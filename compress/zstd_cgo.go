//go:build gozstd && cgo

package compress

import (
	"io"

	"github.com/valyala/gozstd"
)

// gozstdReader releases the cgo decoder on Close.
type gozstdReader struct {
	zr *gozstd.Reader
}

func newZstdReader(r io.Reader) (io.ReadCloser, error) {
	return &gozstdReader{zr: gozstd.NewReader(r)}, nil
}

func (g *gozstdReader) Read(p []byte) (int, error) {
	if g.zr == nil {
		return 0, errReaderClosed
	}

	return g.zr.Read(p)
}

func (g *gozstdReader) Close() error {
	if g.zr == nil {
		return nil
	}

	g.zr.Release()
	g.zr = nil

	return nil
}

// gozstdWriter flushes and releases the cgo encoder on Close.
type gozstdWriter struct {
	zw *gozstd.Writer
}

func newZstdWriter(w io.Writer) (io.WriteCloser, error) {
	return &gozstdWriter{zw: gozstd.NewWriterLevel(w, gozstd.DefaultCompressionLevel)}, nil
}

func (g *gozstdWriter) Write(p []byte) (int, error) {
	return g.zw.Write(p)
}

func (g *gozstdWriter) Close() error {
	err := g.zw.Close()
	g.zw.Release()

	return err
}
