package logger

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Environment variables recognized by NewBuilderFromEnv. A .env file in the
// working directory is loaded first when present, so a project can keep its
// debug categories next to its code without touching the shell.
const (
	// EnvLevel holds the initial bitmask ("127", "0x7f", "all", "none").
	EnvLevel = "DEBUG_TOOLS_LEVEL"
	// EnvShowDate toggles the date segment ("true"/"false").
	EnvShowDate = "DEBUG_TOOLS_SHOW_DATE"
	// EnvCaller toggles function/line capture.
	EnvCaller = "DEBUG_TOOLS_CALLER"
	// EnvUTC toggles UTC timestamps.
	EnvUTC = "DEBUG_TOOLS_UTC"
)

// NewBuilderFromEnv creates a Builder for name configured from the
// environment. Unset variables keep the Builder defaults; a malformed
// boolean counts as false, and a malformed level mutes numeric levels
// (see ParseLevel).
func NewBuilderFromEnv(name string) *Builder {
	// Missing .env files are the normal case, not an error.
	_ = godotenv.Load()

	b := NewBuilder(name)
	if v, ok := os.LookupEnv(EnvLevel); ok {
		b.WithLevel(ParseLevel(v))
	}
	if envBool(EnvShowDate) {
		b.WithShowDate(true)
	}
	if envBool(EnvCaller) {
		b.WithCaller(true)
	}
	if envBool(EnvUTC) {
		b.WithUTC(true)
	}
	return b
}

// envBool reads an environment variable as a boolean, treating unset or
// unparsable values as false.
func envBool(key string) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	parsed, err := strconv.ParseBool(v)
	if err != nil {
		return false
	}
	return parsed
}
