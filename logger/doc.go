// Package logger is the public API of DebugTools. Most users only need to
// import this package.
//
// A Logger gates numeric-level calls against a bitmask: each bit is one
// user-defined debug category, and a call passes when any requested bit is
// set in the mask. Level 0 is an unconditional escape hatch that always
// prints, while a mask of 0 silences every numeric level. The Debug, Info
// and Warning convenience calls sit outside the bitmask and are controlled
// by per-category switches, default enabled.
//
// Every line carries the logger name, a high-resolution timestamp and the
// elapsed time since the logger's previous line, which makes interleaved
// debug output double as a cheap profiler:
//
//	log := logger.GetLogger(127, "main")
//	log.Log(1, "Debugging")
//	log.Log(4, "some cache hit path")
//
// GetLogger returns the shared instance per name from a process-wide
// registry, so setting a level in one place affects every holder of that
// name. For private instances use the Builder:
//
//	log := logger.NewBuilder("worker").
//	    WithLevel(logger.Bit(0) | logger.Bit(3)).
//	    WithCaller(true).
//	    Build()
//
// The clock, the call-site resolver and the output sink are all injectable
// through the Builder, which keeps emitted lines fully deterministic under
// test. NewBuilderFromEnv configures a Builder from DEBUG_TOOLS_*
// environment variables, loading a .env file when one is present.
package logger
