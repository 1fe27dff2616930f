// Package guard is the rendering gate the presentation layer uses to show or
// hide UI affordances based on capability checks. It is the sole integration
// point between views and the access core: a guard picks one of two
// components and never performs the check itself twice.
//
// A guard is a visibility gate, not a security perimeter. It must not be the
// only enforcement for privileged writes performed outside the rendering
// layer.
//
//	hireButton := templ.Raw(`<button>Hire</button>`)
//	component := guard.Show(user, access.CapHireReject, hireButton,
//	    guard.WithFallback(templ.Raw(`<p>Access Restricted</p>`)))
//
// Without a fallback the denied branch renders nothing. Nested guards compose
// by logical AND: each layer independently fails closed.
//
// FromContext defers the decision to render time, reading the acting user
// from the component's context. Require gates whole routes the same way as an
// HTTP middleware, and Render writes a component either as plain HTML or as a
// DataStar SSE patch depending on the request.
package guard
