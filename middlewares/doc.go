// Package middlewares provides net/http middleware that carries a translation
// table through the request context.
//
// The middleware is a thin pass-through: it stores a [localize.Localization]
// and performs no lookups and no language negotiation of its own. Handlers
// and templ components read the table back through FromRequest, FromContext,
// or pkg/render.
//
// # Fixed Table
//
// Serve one locale for the whole application:
//
//	loc, _ := localize.LoadFS(translationsFS, "translations/en.json")
//
//	r := chi.NewRouter()
//	r.Use(middlewares.Localization(loc))
//	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
//	    loc, _ := middlewares.FromRequest(r)
//	    fmt.Fprintln(w, loc.Get("Greeting"))
//	})
//
// # Per-Request Table
//
// Pick the table per request with a selector. How the locale is chosen is
// entirely up to the caller:
//
//	tables, _ := localize.LoadDirFS(translationsFS, "translations")
//
//	r.Use(middlewares.LocalizationSelector(func(r *http.Request) localize.Localization {
//	    if loc, ok := tables[r.URL.Query().Get("lang")]; ok {
//	        return loc
//	    }
//	    return tables["en"]
//	}))
//
// # Missing Middleware
//
// The accessors never fail: without the middleware they return an empty table
// and false, so lookups degrade to bracketed keys instead of panicking.
package middlewares
