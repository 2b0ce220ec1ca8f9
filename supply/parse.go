package supply

import (
	"strconv"

	"github.com/arloliu/tradegrid/errs"
)

// Reading is a parsed supply reading.
type Reading struct {
	// Quantity is the unit count, -1 when unknown.
	Quantity int64
	Level    Level
}

var (
	unknownReading = Reading{Quantity: -1, Level: LevelUnknown}
	zeroReading    = Reading{Quantity: 0, Level: LevelZero}
)

// Parse decodes a supply reading.
//
// Tokens longer than one byte must start with an ASCII digit; everything but the last
// byte is parsed as a base-10 uint32 and the last byte selects the level,
// case-insensitively. Single-byte tokens must be "?", "-" or "0".
//
// Returns:
//   - Reading: the decoded (quantity, level) pair
//   - error: one of errs.ErrEmptyReading, errs.ErrMalformedReading, errs.ErrInvalidNumber,
//     errs.ErrMissingLevelSuffix, errs.ErrInvalidUnit or errs.ErrInvalidReading
func Parse(reading string) (Reading, error) {
	if len(reading) > 1 {
		if !isDigit(reading[0]) {
			return Reading{}, errs.ErrMalformedReading
		}

		digits, suffix := reading[:len(reading)-1], reading[len(reading)-1]
		units, err := strconv.ParseUint(digits, 10, 32)
		if err != nil {
			return Reading{}, errs.ErrInvalidNumber
		}

		suffix = toLower(suffix)
		if isDigit(suffix) {
			return Reading{}, errs.ErrMissingLevelSuffix
		}

		level, ok := levelFromSuffix(suffix)
		if !ok {
			return Reading{}, errs.ErrInvalidUnit
		}

		return Reading{Quantity: int64(units), Level: level}, nil
	}

	switch reading {
	case "?":
		return unknownReading, nil
	case "-", "0":
		return zeroReading, nil
	case "":
		return Reading{}, errs.ErrEmptyReading
	default:
		return Reading{}, errs.ErrInvalidReading
	}
}

// MustParse is like Parse but panics if the reading cannot be parsed.
func MustParse(reading string) Reading {
	r, err := Parse(reading)
	if err != nil {
		panic("supply: Parse(" + strconv.Quote(reading) + "): " + err.Error())
	}

	return r
}

// Pair returns the reading as a (quantity, level) pair.
func (r Reading) Pair() (int64, int64) {
	return r.Quantity, int64(r.Level)
}

// IsUnknown reports whether the reading is the "?" token.
func (r Reading) IsUnknown() bool {
	return r == unknownReading
}

func (r Reading) String() string {
	return strconv.FormatInt(r.Quantity, 10) + "/" + r.Level.String()
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}

	return c
}
