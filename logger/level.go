package logger

import (
	"strconv"
	"strings"

	"github.com/evandrocoan/DebugTools/core"
)

// Level Re-export type and constants for convenience
type Level = core.Level

// Category re-export for the convenience severity switches
type Category = core.Category

const (
	LevelAll        = core.LevelAll
	CategoryDebug   = core.CategoryDebug
	CategoryInfo    = core.CategoryInfo
	CategoryWarning = core.CategoryWarning
)

// Bit returns the Level with only bit n set
func Bit(n uint) Level {
	return core.Bit(n)
}

// ParseLevel converts a string to a bitmask Level. It accepts "all",
// "none", and unsigned integers in any base strconv understands ("127",
// "0x7f", "0b101"). Anything unparsable yields 0 (fully silent), so a
// broken configuration mutes numeric levels instead of flooding output.
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "all":
		return core.LevelAll
	case "none", "":
		return 0
	}
	v, err := strconv.ParseUint(strings.TrimSpace(s), 0, 64)
	if err != nil {
		return 0
	}
	return Level(v)
}
