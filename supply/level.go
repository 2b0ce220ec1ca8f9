package supply

import "strconv"

// Level is the supply level encoded by the suffix of a reading.
type Level int8

const (
	LevelUnknown Level = -1 // LevelUnknown is reported by the '?' suffix and the "?" reading.
	LevelZero    Level = 0  // LevelZero is reported by the "-" and "0" readings.
	LevelLow     Level = 1  // LevelLow is the 'l' suffix.
	LevelMedium  Level = 2  // LevelMedium is the 'm' suffix.
	LevelHigh    Level = 3  // LevelHigh is the 'h' suffix.
)

func (l Level) String() string {
	switch l {
	case LevelUnknown:
		return "Unknown"
	case LevelZero:
		return "Zero"
	case LevelLow:
		return "Low"
	case LevelMedium:
		return "Medium"
	case LevelHigh:
		return "High"
	default:
		return "Level(" + strconv.Itoa(int(l)) + ")"
	}
}

// levelFromSuffix maps a lower-cased suffix byte to its level.
func levelFromSuffix(c byte) (Level, bool) {
	switch c {
	case 'l':
		return LevelLow, true
	case 'm':
		return LevelMedium, true
	case 'h':
		return LevelHigh, true
	case '?':
		return LevelUnknown, true
	default:
		return 0, false
	}
}
