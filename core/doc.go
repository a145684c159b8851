// Package core defines the shared types used across the DebugTools module.
//
// It provides the Level bitmask and the gate predicate Enabled, the Category
// type for the fixed convenience severities, the Entry type that represents
// a single log event, and the two injectable capabilities the emission path
// depends on: Clock (time source) and FrameResolver (call-site capture).
//
// Levels are not an ordered severity scale. Each bit of a Level is an
// independent debug category the user defines; a logger's mask selects which
// categories pass, and a call may request several bits at once — the gate
// opens when any requested bit is also set in the mask. Level 0 requested by
// a caller is the unconditional escape hatch and always passes, which is
// distinct from a mask of 0 (fully silent).
//
// Entry objects are pooled via sync.Pool to keep the hot path allocation
// free. Callers get an Entry with GetEntry and must return it with PutEntry
// once the handler has consumed it.
package core
