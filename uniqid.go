// Package uniqid provides the public API for unique element identifiers.
//
// This is the recommended import for most applications:
//
//	import "github.com/vango-dev/uniqid"
//
// Usage:
//
//	id := uniqid.NewID("")          // "id-1"
//	email := uniqid.Bind("")        // SSR-safe binding
//	form := vdom.Form(
//	    vdom.Label(email.For(), vdom.Text("Email")),
//	    vdom.Input(email.ID(), vdom.Type("email")),
//	)
package uniqid

import (
	"context"

	"github.com/vango-dev/uniqid/pkg/uid"
	"github.com/vango-dev/uniqid/pkg/uniqueid"
	"github.com/vango-dev/uniqid/pkg/vdom"
)

// =============================================================================
// Generators (re-export from pkg/uid)
// =============================================================================

// Generator issues prefixed identifiers from an owned counter.
type Generator = uid.Generator

// DefaultPrefix is used when neither the call nor the generator names one.
const DefaultPrefix = uid.DefaultPrefix

// NewID returns the next identifier from the process-wide generator.
// An empty prefix selects DefaultPrefix.
//
//	uniqid.NewID("")       // "id-1"
//	uniqid.NewID("field-") // "field-2"
func NewID(prefix string) string {
	return uid.NewID(prefix)
}

// NewGenerator creates a generator with its counter at zero.
var NewGenerator = uid.New

// Generator options.
var (
	WithPrefix   = uid.WithPrefix
	WithStart    = uid.WithStart
	WithName     = uid.WithName
	WithObserver = uid.WithObserver
)

// WithGenerator returns a context whose renders draw identifiers from g.
func WithGenerator(ctx context.Context, g *Generator) context.Context {
	return uid.WithGenerator(ctx, g)
}

// =============================================================================
// Bindings (re-export from pkg/uniqueid)
// =============================================================================

// Binding is an identifier that is generated during server render and
// regenerated when the client activates the element.
type Binding = uniqueid.Binding

// Bind creates a Binding. A non-empty explicit value is used in both phases.
func Bind(explicit string, opts ...uniqueid.Option) *Binding {
	return uniqueid.New(explicit, opts...)
}

// Field builds a label and control linked by a fresh binding.
func Field(label string, control ...any) *vdom.VNode {
	return uniqueid.Field(label, control...)
}
