package render

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/dmitrymomot/localize"
	"github.com/dmitrymomot/localize/internal"
)

// Text returns a component that resolves key against the table carried by the
// render context and writes the localized string, HTML-escaped. Without the
// middlewares package in front of the handler the table is empty and the
// output is the bracketed key.
func Text(key string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w, fromContext(ctx).Get(key))
	})
}

// TextOr is Text with an explicit fallback for unresolved keys.
func TextOr(key, fallback string) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return write(w, fromContext(ctx).GetOr(key, fallback))
	})
}

// TextIn resolves key against an explicit table, ignoring the context. Useful
// outside the request flow, in mails or background rendering.
func TextIn(loc localize.Localization, key string) templ.Component {
	return templ.ComponentFunc(func(_ context.Context, w io.Writer) error {
		return write(w, loc.Get(key))
	})
}

func fromContext(ctx context.Context) localize.Localization {
	if loc, ok := ctx.Value(internal.LocalizationKey{}).(localize.Localization); ok {
		return loc
	}
	return localize.Empty()
}

func write(w io.Writer, s string) error {
	_, err := io.WriteString(w, templ.EscapeString(s))
	return err
}
