// Package tradegrid reduces raw ingest data to compact representations.
//
// It covers three kinds of input:
//
//   - 3-D coordinates, packed into 64-bit grid keys that group nearby points
//     into 32-unit buckets (package grid)
//   - supply-level tokens such as "424242m", decoded into a (quantity, level)
//     pair (package supply)
//   - raw, optionally compressed files, reduced to a newline count and a
//     content digest (package linecount)
//
// # Basic Usage
//
//	key := tradegrid.GridKey(-33, -65, -97) // 0xFFFFFFFDFFFEFFFC
//
//	units, level, err := tradegrid.ParseSupplyLevel("424242m") // 424242, 2
//
//	lines, err := tradegrid.CountFileLines("listings.csv")
//
// # Package Structure
//
// This package provides convenient top-level wrappers around the grid, supply and
// linecount packages. For batch encoding, checked encoding, compressed input or
// content digests, use those packages directly.
package tradegrid

import (
	"github.com/arloliu/tradegrid/grid"
	"github.com/arloliu/tradegrid/linecount"
	"github.com/arloliu/tradegrid/supply"
)

// GridKey returns the 64-bit grid key of the coordinate (x, y, z).
//
// Each component is quantized to floor(component / 32) as a signed 16-bit value. The
// y bucket is sign-extended into the upper 32 bits, x and z are zero-extended into
// bits 16-31 and 0-15. Components must be finite and below 1,048,576 in magnitude;
// see grid.EncodeChecked for a validating variant.
//
// Example:
//
//	tradegrid.GridKey(32, 64, 96) // 0x0000000200010003
func GridKey(x, y, z float64) uint64 {
	return grid.Encode(x, y, z)
}

// ParseSupplyLevel decodes a supply reading into a (units, level) pair.
//
// "?" yields (-1, -1), "-" and "0" yield (0, 0), and "<digits><l|m|h|?>" yields the
// unit count with level 1, 2, 3 or -1. The suffix is case-insensitive.
//
// Returns:
//   - int64: unit count
//   - int64: level
//   - error: one of the errs.Err*Reading / errs.ErrInvalid* sentinels
//
// Example:
//
//	units, level, err := tradegrid.ParseSupplyLevel("2134567891H") // 2134567891, 3
func ParseSupplyLevel(reading string) (int64, int64, error) {
	r, err := supply.Parse(reading)
	if err != nil {
		return 0, 0, err
	}
	units, level := r.Pair()

	return units, level, nil
}

// CountFileLines returns the number of newline bytes in the file at filename.
//
// The file is streamed in 128 KiB chunks. Open and read failures match errs.ErrIO.
//
// Example:
//
//	lines, err := tradegrid.CountFileLines("listings.csv")
//	if err != nil {
//	    log.Fatal(err)
//	}
func CountFileLines(filename string) (int, error) {
	return linecount.File(filename)
}
