// Package render wraps localized strings as templ components.
//
// Components resolve their resource key at render time against the
// translation table carried by the render context, which templ passes through
// from the request when the middlewares package is installed:
//
//	templ profileCard() {
//		<h2>{ children... }</h2>
//		@render.Text("FirstName")
//	}
//
// Output is HTML-escaped. Unresolved keys render bracketed, so a missing
// translation shows up as [FirstName] in the page rather than an error.
package render
