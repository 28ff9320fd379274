// Package errors provides coded, structured errors for uniqid.
//
// Every error carries a code (e.g. "E201") that maps to a registered
// template with a category, a short message, a longer explanation and a
// documentation link. Call sites decorate the error with a detail or a
// suggestion before returning it.
//
// # Categories
//
//   - config: the project configuration could not be loaded or is invalid
//   - runtime: generator state problems (counter exhaustion)
//   - hydration: client activation could not reach an element
//   - protocol: the live websocket channel misbehaved
//   - cli: command line usage errors
//
// # Usage
//
//	err := errors.New("E121").
//	    WithDetail(`scope "tenant" is not one of process, request`).
//	    WithSuggestion(`Set "scope" to "process" or "request"`)
//
//	fmt.Println(err.Format())
package errors
