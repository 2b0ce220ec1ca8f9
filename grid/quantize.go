package grid

import "math"

// BucketWidth is the extent of one bucket along each axis, in coordinate units.
const BucketWidth = 32

// Quantize maps a coordinate component to its bucket index, floor(component / 32),
// narrowed to a signed 16-bit value.
//
// The floor result is converted through int64 before narrowing, so bucket indexes
// outside [-32768, 32767] wrap modulo 2^16 rather than saturate:
//
//	Quantize(1048576) // -32768
//
// Non-finite input is a precondition violation and produces an unspecified value.
func Quantize(component float64) int16 {
	return int16(int64(math.Floor(component / BucketWidth)))
}

// SignExtend16 widens v to 64 bits by replicating its sign bit into the 48 new
// high-order bits and returns the result as an unsigned pattern.
//
//	SignExtend16(-1) // 0xFFFFFFFFFFFFFFFF
//	SignExtend16(2)  // 0x0000000000000002
func SignExtend16(v int16) uint64 {
	return uint64(int64(v))
}

// ZeroExtend16 widens the raw 16-bit two's-complement pattern of v to 64 bits,
// filling the new high-order bits with zero.
//
//	ZeroExtend16(-1) // 0x000000000000FFFF
//	ZeroExtend16(2)  // 0x0000000000000002
func ZeroExtend16(v int16) uint64 {
	return uint64(uint16(v))
}
