// Package localize normalizes JSON translation tables into an immutable
// in-memory form and resolves localized strings by resource key.
//
// The package targets the DotNetNuke resource table convention: keys are
// case-insensitive, entries are commonly stored under "FIELD.TEXT" or
// "FIELD.ERROR" names, and a key with no translation renders as the key
// wrapped in square brackets so gaps stay visible instead of breaking pages.
//
// # Table Shapes
//
// Translation endpoints serve the same table in different shapes depending on
// the producing service. Decode accepts all three and normalizes them into
// one uppercase-keyed mapping:
//
//	[{"key": "FirstName", "value": "First name"}]
//	[{"Key": "FirstName", "Value": "First name"}]
//	{"FirstName": "First name"}
//
// Shapes are tried in that order and the first one that matches wins. A
// document matching none of them fails with an error joining every attempted
// shape, and decoding is all-or-nothing: no partial table is ever produced.
//
//	loc, err := localize.Decode(body)
//	if err != nil {
//		return err
//	}
//
// Localization also implements json.Unmarshaler, so a table can be a field of
// a larger response struct:
//
//	var resp struct {
//		Strings localize.Localization `json:"strings"`
//	}
//	err := json.Unmarshal(body, &resp)
//
// # Lookup
//
// Get resolves a key case-insensitively, probing the bare key first, then the
// ".TEXT" and ".ERROR" suffixed forms:
//
//	loc.Get("FirstName")        // "First name" via FIRSTNAME.TEXT
//	loc.Get("firstname.text")   // same entry
//	loc.Get("Missing")          // "[Missing]"
//
// GetOr swaps the bracketed default for a caller-supplied fallback, returned
// verbatim on a miss:
//
//	loc.GetOr("Missing", "n/a") // "n/a"
//
// Lookups are total: they never fail and never mutate the table.
//
// # Loading From Files
//
// Applications that embed their tables can load them with LoadFS and
// LoadDirFS. JSON files go through the full shape handling above; YAML and
// TOML files carry flat string tables:
//
//	//go:embed translations
//	var translationsFS embed.FS
//
//	tables, err := localize.LoadDirFS(translationsFS, "translations")
//	greeting := tables["en"].Get("Greeting")
//
// # HTTP Integration
//
// The middlewares package stores a table in the request context, and
// pkg/render wraps resolved strings as HTML-escaped templ components that
// read that table at render time. Neither layer adds lookup behavior of its
// own.
//
// # Thread Safety
//
// A Localization is immutable after construction and safe for concurrent
// readers without synchronization. Rebuild via FromMap to change entries.
package localize
