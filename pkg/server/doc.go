// Package server serves pages containing unique-id directives and performs
// the client-side resync over a websocket.
//
// A page is registered with Handle. GET requests render it on the server
// using a generator acquired from the configured uid.Source. The response
// announces the live route and a session ID. A client that opens the live
// route sends a ClientHello naming the page path. The server then rebuilds
// that page with a generator owned by the session and hydrates it. The
// forced attribute writes produced by the unique-id mounts are sent back as
// one or more patches frames.
//
//	srv := server.New(server.DefaultServerConfig())
//	srv.Handle("/signup", server.Page{Title: "Sign up", Body: signupForm})
//	err := srv.ListenAndServe(ctx)
package server
