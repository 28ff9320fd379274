// Package render provides server-side rendering of vdom trees to HTML.
//
// Rendering is the server phase of an element directive's lifecycle: before
// an element's attributes are written, each of its directives gets its
// ServerRender hook, and the element receives a data-hid attribute so the
// client phase can address it later.
//
//	ctx = uid.WithGenerator(ctx, uid.New(uid.WithName("server")))
//	r := render.NewRenderer(render.RendererConfig{})
//	html, err := r.RenderToString(ctx, node)
//
// Directives draw identifiers from the generator carried by ctx, see
// uid.FromContext.
//
// # Full Page Rendering
//
//	err := r.RenderPage(ctx, w, render.PageData{Title: "Sign up", Body: body})
//
// All text content and attribute values are escaped. KindRaw nodes are
// written verbatim and should only carry trusted content.
package render
