// Package uid hands out unique, human-readable element identifiers.
//
// A Generator owns a counter that starts at zero and is incremented
// exactly once per issued identifier, before the identifier is formatted:
//
//	gen := uid.New()
//	gen.Next()        // "id-1"
//	gen.Next()        // "id-2"
//	gen.NewID("x-")   // "x-3"
//
// Identifiers are unique only within the lifetime of one Generator. Two
// generators, for example one used while rendering on the server and one
// used when the page becomes interactive, advance independently and may
// hand out the same identifier for different elements.
//
// # Ownership
//
// Generators are plain values that callers own and pass around. A rendering
// pass carries its generator in a context.Context (WithGenerator,
// FromContext). A Source decides whether every request shares one process
// generator or gets a fresh one (ScopeProcess, ScopeRequest).
//
// The package-level NewID is backed by a process-wide default generator for
// code that has no generator at hand.
//
// # Exhaustion
//
// The counter is a uint64 and never wraps. Once it has reached
// math.MaxUint64, issuing another identifier panics with an error carrying
// code E201, see ErrExhausted.
package uid
