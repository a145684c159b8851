package core

import "math/bits"

// Level is a bitmask of debug categories. Each set bit is one independently
// toggleable category; a logger's mask selects which categories are emitted.
//
// The zero Level is special on both sides of the gate: as a logger mask it
// disables every numeric level, while as a requested level it always passes
// (an unconditional "print" escape hatch).
type Level uint64

// LevelAll enables every category.
const LevelAll Level = ^Level(0)

// Bit returns the Level with only bit n set.
func Bit(n uint) Level {
	return 1 << n
}

// Enabled reports whether a call at the requested level passes the mask.
// Level 0 always passes; any other level passes when it shares at least one
// bit with the mask.
func Enabled(mask, level Level) bool {
	return level == 0 || mask&level != 0
}

// Bits returns the number of set bits.
func (l Level) Bits() int {
	return bits.OnesCount64(uint64(l))
}

// Category is one of the fixed convenience severities. Unlike numeric levels,
// categories bypass the bitmask gate entirely and are controlled by a
// per-category switch on the Logger, default enabled.
type Category uint8

const (
	// CategoryNone marks a plain numeric-level call (no severity tag).
	CategoryNone Category = iota
	// CategoryDebug for detailed debugging information
	CategoryDebug
	// CategoryInfo for general informational messages
	CategoryInfo
	// CategoryWarning for warning messages
	CategoryWarning

	// NumCategories is the number of distinct categories, CategoryNone
	// included. Useful for sizing per-category switch tables.
	NumCategories
)

// String returns the tag rendered for the category, empty for CategoryNone.
func (c Category) String() string {
	switch c {
	case CategoryDebug:
		return "DEBUG"
	case CategoryInfo:
		return "INFO"
	case CategoryWarning:
		return "WARNING"
	default:
		return ""
	}
}
