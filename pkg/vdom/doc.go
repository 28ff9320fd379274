// Package vdom provides the small virtual DOM that hosts element directives.
//
// A VNode tree is built with variadic element functions and rendered to HTML
// by package render on the server. Package hydrate later walks the same tree
// when the page becomes interactive.
//
// # Element API
//
//	Form(Class("signup"),
//	    Label(For("email"), Text("Email")),
//	    Input(ID("email"), Type("email")),
//	)
//
// # Directives
//
// A Directive attaches low-level behaviour to one element. It owns a single
// attribute and has two lifecycle hooks: ServerRender, called while the
// server writes the element's markup, and Mount, called once when the
// element becomes interactive. Attributes owned by a directive are excluded
// from Diff; the directive's Mount patches are the only way they change on
// the client.
//
// # Hydration IDs
//
// AssignHIDs gives every element that carries a directive a hydration ID
// ("h1", "h2", ...) so patches can address it.
package vdom
