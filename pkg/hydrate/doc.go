// Package hydrate runs the client phase of element directives.
//
// When a server-rendered page becomes interactive, Hydrate walks the tree,
// fires every directive's Mount hook exactly once per element and collects
// the forced attribute writes the directives return. The generator used for
// the client phase is taken from the context, so the server's and the
// client's counters stay independent.
//
//	ctx = uid.WithGenerator(ctx, clientGen)
//	res, err := hydrate.New().Hydrate(ctx, tree)
//	// res.Patches holds one SetAttr per directive, each with Force set.
package hydrate
