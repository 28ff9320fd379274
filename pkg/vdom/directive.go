package vdom

import "context"

// Directive is low-level element behaviour with a server and a client hook.
//
// ServerRender runs while the server produces the element's markup and may
// write the owned attribute into el.Props. Mount runs when the element
// becomes interactive; it writes the attribute directly and returns the
// patches that carry the write to the client. A directive mounts at most
// once: later calls return false and no patches.
type Directive interface {
	// Name identifies the directive in logs and traces.
	Name() string

	// Attr is the attribute the directive owns.
	Attr() string

	ServerRender(ctx context.Context, el *VNode)
	Mount(ctx context.Context, el *VNode) (patches []Patch, ok bool)
}

// directiveArg wraps a directive passed to an element constructor.
type directiveArg struct {
	d Directive
}

// UseDirective attaches d to the element it is passed to.
//
//	Input(UseDirective(d), Type("text"))
func UseDirective(d Directive) any {
	if d == nil {
		return nil
	}
	return directiveArg{d: d}
}

// Walk visits node and its descendants depth-first in document order.
// Component nodes are not expanded. Returning false stops descent into
// the node's children.
func Walk(node *VNode, fn func(*VNode) bool) {
	if node == nil {
		return
	}
	if !fn(node) {
		return
	}
	for _, child := range node.Children {
		Walk(child, fn)
	}
}
