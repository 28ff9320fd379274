// Package uniqueid binds generated identifiers to elements of server-rendered
// pages and resynchronises them when the page becomes interactive.
//
// The server and the interactive client each own an independent uid
// generator. If the two issue identifiers in a different order, markup
// produced on the server can carry an id the client would never hand out,
// breaking label-to-input or ARIA links that the client relies on. A Binding
// fixes this by regenerating the id from the client's generator at mount
// time and writing it to the element directly, together with every element
// that references it.
//
//	email := uniqueid.New("")
//	Form(
//	    Label(email.For(), Text("Email")),
//	    Input(email.ID(), Type("email")),
//	)
//
// # States
//
// A Binding starts Unbound. The first server render moves it to ServerBound.
// The first mount moves it from either state to ClientBound, which is
// terminal. An explicit identifier passed to New is used in both phases.
package uniqueid
