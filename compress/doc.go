// Package compress provides streaming decompression and compression for raw ingest files.
//
// Raw dumps are frequently shipped compressed. Consumers such as the line counter read
// them through the io.ReadCloser returned by NewReader, which transparently decodes the
// stream; producers and tests create such files with NewWriter.
//
// # Supported Algorithms
//
//   - format.CompressionNone: pass-through
//   - format.CompressionZstd: Zstandard frames (klauspost/compress/zstd, or valyala/gozstd
//     when built with the gozstd tag and cgo enabled)
//   - format.CompressionS2: S2 framed stream (klauspost/compress/s2), which also reads
//     Snappy framed streams
//   - format.CompressionLZ4: LZ4 frames (pierrec/lz4/v4)
//
// # Basic Usage
//
//	f, _ := os.Open("listings.csv.zst")
//	defer f.Close()
//
//	rc, err := compress.NewReader(format.CompressionZstd, f)
//	if err != nil {
//	    return err
//	}
//	defer rc.Close()
//
//	io.Copy(dst, rc)
//
// Closing a reader or writer returned by this package never closes the underlying
// io.Reader or io.Writer; the caller keeps ownership of it.
//
// # Thread Safety
//
// NewReader and NewWriter are safe for concurrent use. The returned streams are not.
package compress
