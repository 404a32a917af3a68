package localize

import (
	"maps"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Localization holds a normalized translation table for a single locale.
// Keys are stored uppercased, so lookups are case-insensitive. It is immutable
// after creation, making it safe for concurrent use. The zero value behaves as
// an empty table.
type Localization struct {
	entries map[string]string
}

// Empty returns a Localization with no entries. Every lookup on it resolves to
// its fallback.
func Empty() Localization {
	return Localization{}
}

// FromMap builds a Localization from an arbitrary string map, uppercasing
// every key. When two keys collide after uppercasing, the surviving value is
// unspecified because Go map iteration order is unspecified. The input map is
// not retained.
func FromMap(m map[string]string) Localization {
	if len(m) == 0 {
		return Localization{}
	}
	return Localization{entries: foldMap(m)}
}

// Len returns the number of entries in the table.
func (l Localization) Len() int {
	return len(l.entries)
}

// Map returns a copy of the table with its canonical uppercased keys.
// Mutating the returned map does not affect the Localization; rebuild one via
// FromMap to apply changes.
func (l Localization) Map() map[string]string {
	if l.entries == nil {
		return map[string]string{}
	}
	return maps.Clone(l.entries)
}

// foldMap uppercases every key of m into a fresh map.
func foldMap(m map[string]string) map[string]string {
	entries := make(map[string]string, len(m))
	for key, value := range m {
		entries[upperKey(key)] = value
	}
	return entries
}

// upperKey folds a resource key to its canonical form using Unicode full case
// mapping, so "straße" and "STRASSE" address the same entry. A cases.Caser is
// stateful and not safe for concurrent use, so one is built per call.
func upperKey(key string) string {
	return cases.Upper(language.Und).String(key)
}
