// Package vtest provides testing helpers for markup built with unique-id
// bindings.
//
// # Quick Start
//
//	func TestSignup(t *testing.T) {
//	    ctx := vtest.NewCtx().WithStart(10).Build()
//	    form := SignupForm()
//	    vtest.ExpectAttribute(t, ctx, form, "for", "id-11")
//	    vtest.ExpectLinked(t, form)
//
//	    res := vtest.Activate(t, form)
//	    vtest.ExpectAttribute(t, ctx, form, "for", "id-1")
//	    _ = res.Patches
//	}
//
// # Fluent Context Builder
//
// The context builder sets up the generator a render draws from:
//
//	ctx := vtest.NewCtx().
//	    WithPrefix("field-").
//	    WithStart(3).
//	    Build()
//
// # Reference Checks
//
// ExpectLinked asserts that every id in a tree is unique and that every
// for, aria-describedby, aria-labelledby and aria-controls value points at
// one of them.
package vtest
