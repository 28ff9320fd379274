package uid

import "sync/atomic"

var defaultGen atomic.Pointer[Generator]

func init() {
	defaultGen.Store(New(WithName("process")))
}

// Default returns the process-wide generator.
func Default() *Generator {
	return defaultGen.Load()
}

// SetDefault replaces the process-wide generator and returns the previous one.
// Intended for tests and for wiring an observer at startup.
func SetDefault(g *Generator) *Generator {
	if g == nil {
		g = New(WithName("process"))
	}
	return defaultGen.Swap(g)
}

// NewID issues an identifier from the process-wide generator.
// An empty prefix selects DefaultPrefix.
func NewID(prefix string) string {
	return Default().NewID(prefix)
}
