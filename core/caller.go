package core

import (
	"runtime"
	"strings"
)

// CallerInfo identifies the call site of an emission
type CallerInfo struct {
	// Function is the caller's function name, trimmed to its last path
	// element (e.g. "logger.TestGate" rather than the full import path).
	Function string
	// Line is the caller's source line number.
	Line int
	// Defined is false when no frame could be resolved; formatters must
	// then omit the caller segment silently.
	Defined bool
}

// FrameResolver resolves the call site skip frames above the Resolve call.
// A resolver that cannot inspect the stack returns an undefined CallerInfo;
// resolution failure is never an error.
type FrameResolver interface {
	Resolve(skip int) CallerInfo
}

// RuntimeResolver resolves frames through runtime.Caller.
type RuntimeResolver struct{}

// Resolve returns the frame skip levels above this call, or an undefined
// CallerInfo when the stack is not that deep.
func (RuntimeResolver) Resolve(skip int) CallerInfo {
	pc, _, line, ok := runtime.Caller(skip)
	if !ok {
		return CallerInfo{}
	}

	fn := runtime.FuncForPC(pc)
	if fn == nil {
		return CallerInfo{}
	}

	name := fn.Name()
	if idx := strings.LastIndexByte(name, '/'); idx >= 0 {
		name = name[idx+1:]
	}

	return CallerInfo{
		Function: name,
		Line:     line,
		Defined:  true,
	}
}

// NopResolver never resolves a frame. It exists for hosts where stack
// inspection is unavailable or unwanted; the caller segment is then omitted.
type NopResolver struct{}

// Resolve always returns an undefined CallerInfo.
func (NopResolver) Resolve(int) CallerInfo {
	return CallerInfo{}
}
