package middlewares

import (
	"context"
	"net/http"

	"github.com/dmitrymomot/localize"
	"github.com/dmitrymomot/localize/internal"
)

// Localization returns middleware that stores a fixed translation table in
// every request context.
func Localization(loc localize.Localization) func(http.Handler) http.Handler {
	return LocalizationSelector(func(*http.Request) localize.Localization {
		return loc
	})
}

// LocalizationSelector returns middleware that picks the translation table
// per request through fn. Table choice belongs entirely to the selector; this
// package performs no language negotiation.
func LocalizationSelector(fn func(*http.Request) localize.Localization) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := NewContext(r.Context(), fn(r))
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// NewContext returns a copy of ctx carrying the given translation table.
func NewContext(ctx context.Context, loc localize.Localization) context.Context {
	return context.WithValue(ctx, internal.LocalizationKey{}, loc)
}

// FromContext extracts the translation table stored by the middleware.
// Without the middleware it returns an empty table and false, so handlers
// degrade to bracketed keys instead of panicking.
func FromContext(ctx context.Context) (localize.Localization, bool) {
	if loc, ok := ctx.Value(internal.LocalizationKey{}).(localize.Localization); ok {
		return loc, true
	}
	return localize.Empty(), false
}

// FromRequest extracts the translation table from the request context.
func FromRequest(r *http.Request) (localize.Localization, bool) {
	return FromContext(r.Context())
}
