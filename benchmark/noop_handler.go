package benchmark

import (
	"github.com/evandrocoan/DebugTools/core"
)

// noopHandler swallows entries without formatting or writing, isolating
// the gate + emission pipeline cost from sink and formatter cost.
type noopHandler struct{}

func (noopHandler) Handle(*core.Entry) error { return nil }

func (noopHandler) Close() error { return nil }

func (noopHandler) CanRecycleEntry() bool { return true }
