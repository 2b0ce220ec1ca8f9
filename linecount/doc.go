// Package linecount counts newline bytes in raw files and streams.
//
// Input is read in fixed-size chunks (128 KiB by default) and every 0x0A byte is
// counted, so the result is exact regardless of where newlines fall relative to chunk
// boundaries. A final line without a trailing newline is not counted.
//
// # Basic Usage
//
//	lines, err := linecount.File("listings.csv")
//
// Compressed dumps are decoded on the fly:
//
//	lines, err := linecount.File("listings.csv.zst", linecount.WithAutoDetect())
//
// Summarize additionally reports the byte count and an xxHash64 digest of the
// (decompressed) content, which makes it cheap to tell whether a re-downloaded dump
// changed:
//
//	sum, err := linecount.Summarize("listings.csv")
//	fmt.Println(sum.Lines, sum.Bytes, sum.Checksum)
//
// # Errors
//
// Failures to open or read the input are wrapped so that both errs.ErrIO and the
// underlying error (for example fs.ErrNotExist) match with errors.Is. Nothing is
// retried and no partial count is returned.
package linecount
