// Package internal holds context keys shared between the middlewares and
// pkg/render packages.
package internal

// LocalizationKey is the context key under which the active translation table
// is stored for a request.
type LocalizationKey struct{}
