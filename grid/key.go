package grid

import (
	"fmt"
	"math"

	"github.com/arloliu/tradegrid/errs"
)

// Bit offsets of each quantized component inside a key.
const (
	ZShift = 0
	XShift = 16
	YShift = 32
)

// Key is a packed grid key. It carries no state beyond its bit pattern.
type Key uint64

// Point is a 3-D coordinate.
type Point struct {
	X, Y, Z float64
}

// Encode derives the grid key of the coordinate (x, y, z).
//
// The y bucket is sign-extended to 64 bits and shifted left by 32, so only its low
// 32 bits survive: bits 32-47 hold qy and bits 48-63 are its sign fill. The x and z
// buckets are zero-extended and placed at bits 16-31 and 0-15.
//
// Encode never fails; see the package documentation for its input preconditions.
func Encode(x, y, z float64) uint64 {
	gy := SignExtend16(Quantize(y))
	gx := ZeroExtend16(Quantize(x))
	gz := ZeroExtend16(Quantize(z))

	return (gy << YShift) | (gx << XShift) | (gz << ZShift)
}

// EncodePoint is Encode applied to p.
func EncodePoint(p Point) uint64 {
	return Encode(p.X, p.Y, p.Z)
}

// EncodeKey is Encode returning a typed Key.
func EncodeKey(x, y, z float64) Key {
	return Key(Encode(x, y, z))
}

// EncodeChecked is Encode with its preconditions verified.
//
// Returns:
//   - uint64: the grid key, 0 on error
//   - error: ErrNonFiniteCoordinate for NaN or ±Inf components, ErrCoordinateOutOfRange
//     when a bucket index does not fit in int16
func EncodeChecked(x, y, z float64) (uint64, error) {
	for _, c := range [3]struct {
		axis string
		val  float64
	}{{"x", x}, {"y", y}, {"z", z}} {
		if err := checkComponent(c.axis, c.val); err != nil {
			return 0, err
		}
	}

	return Encode(x, y, z), nil
}

func checkComponent(axis string, c float64) error {
	if math.IsNaN(c) || math.IsInf(c, 0) {
		return fmt.Errorf("%w: %s=%v", errs.ErrNonFiniteCoordinate, axis, c)
	}

	bucket := math.Floor(c / BucketWidth)
	if bucket < math.MinInt16 || bucket > math.MaxInt16 {
		return fmt.Errorf("%w: %s=%v", errs.ErrCoordinateOutOfRange, axis, c)
	}

	return nil
}

// X returns the quantized x component stored in bits 16-31.
func (k Key) X() int16 {
	return int16(uint16(k >> XShift))
}

// Y returns the quantized y component stored in bits 32-47.
func (k Key) Y() int16 {
	return int16(uint16(k >> YShift))
}

// Z returns the quantized z component stored in bits 0-15.
func (k Key) Z() int16 {
	return int16(uint16(k >> ZShift))
}

// Uint64 returns the raw key.
func (k Key) Uint64() uint64 {
	return uint64(k)
}

func (k Key) String() string {
	return fmt.Sprintf("grid(%d,%d,%d)", k.X(), k.Y(), k.Z())
}
