// Package grid derives 64-bit grid keys from 3-D coordinates.
//
// A grid key groups nearby points into buckets of BucketWidth units per axis so that
// they can be batched for lookup or partitioning by a spatial index. Deriving a key is
// two pure steps: per-axis quantization, then fixed-layout bit packing.
//
// # Quantization
//
// Each axis is mapped to floor(component / 32) and narrowed to a signed 16-bit value.
// Floor semantics matter for negative input: -0.5 lands in bucket -1, not 0, and an
// exact multiple of 32 belongs to the bucket it starts:
//
//	grid.Quantize(31.9999)  // 0
//	grid.Quantize(32.0)     // 1
//	grid.Quantize(-32.0)    // -1
//	grid.Quantize(-32.0001) // -2
//
// # Key Layout
//
// The y axis occupies the most significant word because it has the smallest extent in
// the data sets this key is designed for. It is sign-extended to 64 bits before being
// shifted, while x and z are zero-extended from their raw 16-bit pattern:
//
//	bits 48-63  sign fill of qy (all ones when qy < 0)
//	bits 32-47  qy
//	bits 16-31  qx
//	bits  0-15  qz
//
// The layout is the contract consumed by downstream indexes and must stay byte-for-byte
// stable:
//
//	grid.Encode(-33, -65, -97) // 0xFFFFFFFDFFFEFFFC
//
// # Preconditions
//
// Encode and Quantize accept any finite float64 whose bucket index fits in int16
// (|component| below 1,048,576). Larger magnitudes wrap modulo 2^16 and non-finite input
// yields an unspecified key. EncodeChecked reports both conditions as errors instead.
//
// # Thread Safety
//
// Every function in this package is stateless and safe for concurrent use.
package grid
